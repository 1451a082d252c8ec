package container

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hullworks/stevedore/internal/engine"
)

// Options for creating a container.
type CreateOptions struct {
	Name       string               // Requested container name; empty lets the engine assign one.
	Image      string               // Image reference to run.
	Cmd        []string             // Command override; empty uses the image default.
	Env        []string             // Environment entries in KEY=VALUE form.
	WorkingDir string               // Working directory override.
	Mounts     []engine.Mount       // Bind mounts from the host.
	Ports      []engine.PortBinding // Container ports published on the host.
	Platform   string               // OCI platform; empty uses the host default.
	Stdout     bool                 // Capture standard output during Run.
	Stderr     bool                 // Capture standard error during Run.
}

// Creates a container with the engine and returns a handle bound to the
// identity the engine assigned.
//
// The image is pulled when it is not available locally. The container is
// created but not started; upload files with [Container.UploadFile] before
// calling [Container.Run].
func Create(ctx context.Context, client engine.Client, opts CreateOptions) (*Container, error) {
	if opts.Image == "" {
		return nil, fmt.Errorf("creating container: no image specified")
	}

	if err := client.EnsureImage(ctx, opts.Image); err != nil {
		return nil, err
	}

	id, err := client.Create(ctx, engine.CreateConfig{
		Name:       opts.Name,
		Image:      opts.Image,
		Cmd:        opts.Cmd,
		Env:        opts.Env,
		WorkingDir: opts.WorkingDir,
		Mounts:     opts.Mounts,
		Ports:      opts.Ports,
		Platform:   opts.Platform,
	})
	if err != nil {
		return nil, err
	}

	slog.Debug("container created", "container", id, "image", opts.Image)

	return New(client, id, opts.Stdout, opts.Stderr), nil
}
