package cli

import (
	"context"
	"fmt"

	"github.com/containerd/errdefs"

	"github.com/hullworks/stevedore/internal/container"
)

// Represents the 'stevedore rm' command.
type RemoveCmd struct {
	Force bool   `short:"f" help:"Force removal of a running container."`
	Name  string `arg:"" help:"Container name or ID."`
}

// Executes the rm command.
func (c *RemoveCmd) Run(ctx context.Context) error {
	eng, err := connect()
	if err != nil {
		return err
	}
	defer eng.Close()

	ctr := container.New(eng, c.Name, false, false)

	if c.Force {
		err = ctr.ForceRemove(ctx)
	} else {
		err = ctr.Remove(ctx)
	}

	if errdefs.IsNotFound(err) {
		return fmt.Errorf("no such container %q", c.Name)
	}
	return err
}
