package cli

import (
	"testing"
)

func TestParseMounts(t *testing.T) {
	tests := []struct {
		name     string
		specs    []string
		want     int
		readOnly bool
		wantErr  bool
	}{
		{
			name:  "plain mount",
			specs: []string{"/tmp/in:/data"},
			want:  1,
		},
		{
			name:     "read-only mount",
			specs:    []string{"/tmp/in:/data:ro"},
			want:     1,
			readOnly: true,
		},
		{
			name:    "missing target",
			specs:   []string{"/tmp/in"},
			wantErr: true,
		},
		{
			name:    "bad suffix",
			specs:   []string{"/tmp/in:/data:rw:extra"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mounts, err := parseMounts(tt.specs)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(mounts) != tt.want {
				t.Fatalf("got %d mounts, want %d", len(mounts), tt.want)
			}
			if mounts[0].ReadOnly != tt.readOnly {
				t.Errorf("read-only = %v, want %v", mounts[0].ReadOnly, tt.readOnly)
			}
		})
	}
}

func TestParseFileSpec(t *testing.T) {
	src, dest, err := parseFileSpec("input.txt:/input/data.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if src != "input.txt" || dest != "/input/data.txt" {
		t.Errorf("parsed %q, %q", src, dest)
	}

	for _, bad := range []string{"input.txt", ":dest", "src:", ""} {
		if _, _, err := parseFileSpec(bad); err == nil {
			t.Errorf("expected error for %q", bad)
		}
	}
}
