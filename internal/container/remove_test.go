package container

import (
	"context"
	"errors"
	"testing"
)

func TestRemoveForceFlags(t *testing.T) {
	eng := &fakeEngine{}
	ctr := New(eng, "ctr-1", true, true)

	if err := ctr.Remove(context.Background()); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if err := ctr.ForceRemove(context.Background()); err != nil {
		t.Fatalf("force remove: %v", err)
	}

	want := []bool{false, true}
	if len(eng.removeForce) != len(want) {
		t.Fatalf("remove calls = %v, want %v", eng.removeForce, want)
	}
	for i := range want {
		if eng.removeForce[i] != want[i] {
			t.Fatalf("remove calls = %v, want %v", eng.removeForce, want)
		}
	}
}

func TestRemoveEngineError(t *testing.T) {
	boom := errors.New("no such container")
	eng := &fakeEngine{removeErr: boom}
	ctr := New(eng, "ctr-1", true, true)

	if err := ctr.Remove(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("error = %v, want wrapped %v", err, boom)
	}
	if err := ctr.ForceRemove(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("error = %v, want wrapped %v", err, boom)
	}
}
