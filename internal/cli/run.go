package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/hullworks/stevedore/internal/container"
	"github.com/hullworks/stevedore/internal/engine"
)

// Represents the 'stevedore run' command.
type RunCmd struct {
	Name     string   `help:"Assign a name to the container." placeholder:"NAME"`
	Env      []string `short:"e" help:"Set an environment variable." placeholder:"KEY=VALUE"`
	Workdir  string   `short:"w" help:"Working directory inside the container." placeholder:"DIR"`
	Mount    []string `help:"Bind mount a host path." placeholder:"SRC:DEST[:ro]"`
	Publish  []int    `short:"p" help:"Publish a container TCP port on the host." placeholder:"PORT"`
	Platform string   `help:"Platform of the image." placeholder:"OS/ARCH"`
	File     []string `help:"Upload a host file into the container before start." placeholder:"SRC:DEST"`
	Keep     bool     `help:"Keep the container after it exits."`

	Image   string   `arg:"" help:"Image reference to run."`
	Command []string `arg:"" optional:"" passthrough:"" help:"Command and arguments."`
}

// Executes the run command.
//
// Creates a container, uploads any requested files, runs it to completion,
// writes the captured output to stdout and stderr, and removes the
// container unless --keep is given. The container's exit code becomes the
// process exit code.
func (c *RunCmd) Run(ctx context.Context) error {
	eng, err := connect()
	if err != nil {
		return err
	}
	defer eng.Close()

	mounts, err := parseMounts(c.Mount)
	if err != nil {
		return err
	}

	ports := make([]engine.PortBinding, len(c.Publish))
	for i, p := range c.Publish {
		ports[i] = engine.PortBinding{ContainerPort: p}
	}

	ctr, err := container.Create(ctx, eng, container.CreateOptions{
		Name:       c.Name,
		Image:      c.Image,
		Cmd:        c.Command,
		Env:        c.Env,
		WorkingDir: c.Workdir,
		Mounts:     mounts,
		Ports:      ports,
		Platform:   c.Platform,
		Stdout:     true,
		Stderr:     true,
	})
	if err != nil {
		return err
	}

	if !c.Keep {
		defer func() {
			// Removal still runs when the surrounding context was cancelled.
			cleanupCtx := context.WithoutCancel(ctx)
			if err := ctr.ForceRemove(cleanupCtx); err != nil {
				slog.Warn("failed to remove container", "container", ctr.Name(), "error", err)
			}
		}()
	}

	for _, spec := range c.File {
		src, dest, err := parseFileSpec(spec)
		if err != nil {
			return err
		}

		data, err := os.ReadFile(src)
		if err != nil {
			return fmt.Errorf("reading %q: %w", src, err)
		}

		if err := ctr.UploadFile(ctx, dest, data); err != nil {
			return err
		}
	}

	out, err := ctr.Run(ctx, func() {
		slog.Debug("container running", "container", ctr.Name())
	})
	if err != nil {
		return err
	}

	os.Stdout.Write(out.Stdout)
	os.Stderr.Write(out.Stderr)

	if code := out.Status.ExitStatus(); code != 0 {
		return &ExitCodeError{Code: code}
	}

	return nil
}

// Parses bind mount specs of the form "src:dest[:ro]".
func parseMounts(specs []string) ([]engine.Mount, error) {
	mounts := make([]engine.Mount, 0, len(specs))
	for _, spec := range specs {
		parts := strings.Split(spec, ":")
		switch {
		case len(parts) == 2:
			mounts = append(mounts, engine.Mount{Source: parts[0], Target: parts[1]})
		case len(parts) == 3 && parts[2] == "ro":
			mounts = append(mounts, engine.Mount{Source: parts[0], Target: parts[1], ReadOnly: true})
		default:
			return nil, fmt.Errorf("invalid mount spec %q, expected SRC:DEST[:ro]", spec)
		}
	}
	return mounts, nil
}

// Parses an upload spec of the form "src:dest".
func parseFileSpec(spec string) (src, dest string, err error) {
	src, dest, ok := strings.Cut(spec, ":")
	if !ok || src == "" || dest == "" {
		return "", "", fmt.Errorf("invalid file spec %q, expected SRC:DEST", spec)
	}
	return src, dest, nil
}
