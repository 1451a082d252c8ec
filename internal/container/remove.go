package container

import (
	"context"
	"fmt"
	"log/slog"
)

// Removes the container, forcibly if requested.
//
// Both public removal variants delegate here. Engine errors, including
// not-found for an already-removed container, are propagated unchanged;
// there is no retry.
func (c *Container) removeInner(ctx context.Context, force bool) error {
	if err := c.eng.Remove(ctx, c.name, force); err != nil {
		return fmt.Errorf("removing container %q: %w", c.name, err)
	}
	return nil
}

// Removes the container.
//
// The removal is not forced; a running container will be refused by the
// engine. See [Container.ForceRemove] to remove regardless.
func (c *Container) Remove(ctx context.Context) error {
	slog.Debug("removing container", "container", c.name)
	return c.removeInner(ctx, false)
}

// Removes the container with force.
//
// See [Container.Remove] for the unforced variant.
func (c *Container) ForceRemove(ctx context.Context) error {
	slog.Debug("force removing container", "container", c.name)
	return c.removeInner(ctx, true)
}
