package container

import (
	"context"
	"errors"
	"testing"

	"github.com/hullworks/stevedore/internal/engine"
)

func TestCreate(t *testing.T) {
	eng := &fakeEngine{createID: "ctr-abc"}

	ctr, err := Create(context.Background(), eng, CreateOptions{
		Image:      "alpine:3.20",
		Cmd:        []string{"sh", "-c", "true"},
		Env:        []string{"FOO=bar"},
		WorkingDir: "/work",
		Mounts:     []engine.Mount{{Source: "/tmp", Target: "/data", ReadOnly: true}},
		Ports:      []engine.PortBinding{{ContainerPort: 8080}},
		Platform:   "linux/amd64",
		Stdout:     true,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if ctr.Name() != "ctr-abc" {
		t.Errorf("identity = %q, want engine-assigned ctr-abc", ctr.Name())
	}
	if len(eng.ensured) != 1 || eng.ensured[0] != "alpine:3.20" {
		t.Errorf("ensured images = %v", eng.ensured)
	}
	if eng.createCfg.Image != "alpine:3.20" || eng.createCfg.WorkingDir != "/work" {
		t.Errorf("create config = %+v", eng.createCfg)
	}
	if len(eng.createCfg.Mounts) != 1 || eng.createCfg.Mounts[0].Target != "/data" {
		t.Errorf("mounts = %+v", eng.createCfg.Mounts)
	}
	if eng.createCfg.Platform != "linux/amd64" {
		t.Errorf("platform = %q", eng.createCfg.Platform)
	}
}

func TestCreateRequiresImage(t *testing.T) {
	if _, err := Create(context.Background(), &fakeEngine{}, CreateOptions{}); err == nil {
		t.Fatal("expected an error for a missing image")
	}
}

func TestCreateErrorsPropagate(t *testing.T) {
	boom := errors.New("registry unreachable")

	_, err := Create(context.Background(), &fakeEngine{ensureErr: boom}, CreateOptions{Image: "a"})
	if !errors.Is(err, boom) {
		t.Fatalf("error = %v, want %v", err, boom)
	}

	_, err = Create(context.Background(), &fakeEngine{createErr: boom}, CreateOptions{Image: "a"})
	if !errors.Is(err, boom) {
		t.Fatalf("error = %v, want %v", err, boom)
	}
}
