package container

import (
	"github.com/hullworks/stevedore/internal/engine"
)

// A handle to one container managed by a remote engine.
//
// The handle carries no mutable state: every operation is a fresh round trip
// to the engine, so a handle may be shared and reused freely for read-only
// operations. The engine permits only one active run per container, so two
// concurrent [Container.Run] calls on the same identity are a caller error
// with undefined engine-side behavior.
type Container struct {
	eng          engine.API // Shared engine client; not owned by this handle.
	name         string     // Engine-assigned identity; immutable.
	attachStdout bool       // Whether standard output is captured during Run.
	attachStderr bool       // Whether standard error is captured during Run.
}

// Returns a handle for a container whose identity is already known.
//
// Use [Create] instead when the container does not exist yet; New is for
// identities received externally, for example on the command line.
func New(eng engine.API, name string, attachStdout, attachStderr bool) *Container {
	return &Container{
		eng:          eng,
		name:         name,
		attachStdout: attachStdout,
		attachStderr: attachStderr,
	}
}

// Returns the container's engine-assigned identity.
func (c *Container) Name() string {
	return c.name
}
