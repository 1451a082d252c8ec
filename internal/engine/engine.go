package engine

import (
	"context"
	"fmt"
	"io"
)

// Options controlling which streams an attach call subscribes to.
type AttachOptions struct {
	Stdout bool // Include the container's standard output.
	Stderr bool // Include the container's standard error.
	Stream bool // Stream continuously instead of taking a one-shot snapshot.
}

// Identifies which stream a log chunk belongs to.
type StreamKind int

const (
	StreamOther  StreamKind = iota // Neither standard output nor standard error.
	StreamStdout                   // Standard output.
	StreamStderr                   // Standard error.
)

// A tagged piece of container output.
type Chunk struct {
	Kind StreamKind // Stream the bytes were emitted on.
	Data []byte     // Raw bytes of the chunk.
}

// An attached container log stream.
//
// Chunks delivers output in arrival order and is closed when the engine ends
// the stream. Err reports the transport error, if any, once Chunks is closed.
// Close releases the underlying connection; it is safe to call at any time.
type LogStream interface {
	Chunks() <-chan Chunk
	Err() error
	Close() error
}

// The outcome of one wait-event subscription.
//
// Exactly one of the three shapes applies: a normal completion carries Code
// with a nil Err; an exit reported through the engine's error path carries a
// [*WaitExitError]; any other Err is a transport or protocol failure.
type WaitResult struct {
	Code int64 // Exit code for a normal completion.
	Err  error // Non-nil for the error-shaped outcomes.
}

// An exit reported by the engine as an error rather than a completion event.
//
// Some engines deliver non-zero exits this way. The code is still
// authoritative and callers should treat it exactly like a normal completion.
type WaitExitError struct {
	Code    int64  // Exit code carried by the error.
	Message string // Engine-provided description.
}

func (e *WaitExitError) Error() string {
	return fmt.Sprintf("container exited with status %d: %s", e.Code, e.Message)
}

// Point-in-time state of a container as reported by an inspect call.
//
// Both State and State.ExitCode are optional so that a response violating the
// engine's documented contract is observable instead of silently defaulting.
type ContainerDetails struct {
	State *State // Nil when the engine reported no state.
}

// Process state within [ContainerDetails].
type State struct {
	Running  bool   // Whether the container is currently running.
	ExitCode *int64 // Exit code of the last run; nil when not reported.
}

// The capability set this package requires from a container engine.
//
// Implementations must be safe for use by multiple goroutines; a single
// client is shared across every container handle. Every call is one round
// trip to the engine.
type API interface {
	// Opens a log stream for the named container.
	Attach(ctx context.Context, name string, opts AttachOptions) (LogStream, error)

	// Starts the named container.
	Start(ctx context.Context, name string) error

	// Subscribes to the container's exit notification. The channel yields at
	// most one result and is closed afterwards. A channel closed without a
	// result means the wait was already resolved before subscribing.
	Wait(ctx context.Context, name string) <-chan WaitResult

	// Queries the container's current state.
	Inspect(ctx context.Context, name string) (ContainerDetails, error)

	// Extracts a tar archive into the container's filesystem rooted at path.
	Upload(ctx context.Context, name, path string, archive io.Reader) error

	// Removes the container, forcibly if requested.
	Remove(ctx context.Context, name string, force bool) error
}

// Configuration for creating a container.
type CreateConfig struct {
	Name       string        // Requested container name; empty lets the engine assign one.
	Image      string        // Image reference to run.
	Cmd        []string      // Command override; empty uses the image default.
	Env        []string      // Environment entries in KEY=VALUE form.
	WorkingDir string        // Working directory override.
	Mounts     []Mount       // Bind mounts from the host.
	Ports      []PortBinding // Container ports published on the host.
	Platform   string        // OCI platform (e.g. "linux/amd64"); empty uses the host default.
}

// A host directory bind-mounted into a container.
type Mount struct {
	Source   string // Host path.
	Target   string // Path inside the container.
	ReadOnly bool   // Mount read-only.
}

// A container port published to the host.
type PortBinding struct {
	ContainerPort int    // TCP port inside the container.
	HostIP        string // Host interface to bind; empty binds all.
}

// Container-creation capabilities, kept separate from [API] because the
// lifecycle core never creates containers itself.
type Creator interface {
	// Makes the image available locally, pulling it when missing.
	EnsureImage(ctx context.Context, ref string) error

	// Creates a container and returns the identity assigned by the engine.
	Create(ctx context.Context, cfg CreateConfig) (string, error)
}

// The full capability set of a concrete engine client.
type Client interface {
	API
	Creator
}
