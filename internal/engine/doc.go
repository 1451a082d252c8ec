// Package engine defines the capability set this tool requires from a
// container engine and provides the Docker-backed implementation.
//
// The [API] interface covers exactly the operations the container lifecycle
// core performs: attach, start, wait, inspect, upload, and remove. The
// [Creator] interface adds image and container creation for callers that
// build containers before running them. [Docker] implements both over the
// Docker Engine API.
//
// Engines disagree on how a container's exit is reported. A normal
// completion event carries the exit code directly; some exits instead
// surface as an error that still carries the code, modelled here as
// [WaitExitError]; and a wait that resolves before the subscription is
// opened yields nothing at all, in which case callers fall back to an
// inspect call. The facade preserves all three shapes rather than
// collapsing them.
package engine
