package container

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"syscall"

	"github.com/hullworks/stevedore/internal/engine"
)

// Initial capacity of the stdout and stderr capture buffers.
const captureCapacity = 0x0FFF

// The complete result of one container run.
type Output struct {
	Status syscall.WaitStatus // Platform-native exit status.
	Stdout []byte             // Captured standard output.
	Stderr []byte             // Captured standard error.
}

// Runs the container and waits for the execution to end.
//
// The sequence is fixed: attach to the log stream, start the container,
// invoke started, collect output until the engine closes the stream, then
// determine the exit code. started is called synchronously exactly once,
// after the start call succeeds and before any output is consumed; it is
// the caller's hook for marking the process as running (e.g. arming a
// timeout).
//
// The exit code is taken from the wait-event subscription when it yields
// one, whether as a normal completion or as the engine's error-shaped exit
// report. When the subscription yields nothing — the wait already resolved
// before subscribing, though a silent disconnect is indistinguishable from
// that — the code is read from an inspect call instead. An inspect response
// with no state or no exit code violates the engine's contract and fails
// the run rather than defaulting to zero.
//
// Any failure aborts the whole run; partially collected output is never
// returned. No timeout is enforced here; callers needing a deadline wrap
// the context.
func (c *Container) Run(ctx context.Context, started func()) (*Output, error) {
	stream, err := c.eng.Attach(ctx, c.name, engine.AttachOptions{
		Stdout: c.attachStdout,
		Stderr: c.attachStderr,
		Stream: true,
	})
	if err != nil {
		return nil, fmt.Errorf("attaching to container %q: %w", c.name, err)
	}
	defer stream.Close()

	slog.Debug("starting container", "container", c.name)

	if err := c.eng.Start(ctx, c.name); err != nil {
		return nil, fmt.Errorf("starting container %q: %w", c.name, err)
	}

	started()

	stdout, stderr, err := collect(stream)
	if err != nil {
		return nil, fmt.Errorf("collecting output from container %q: %w", c.name, err)
	}

	slog.Debug("waiting for container to exit", "container", c.name)

	code, observed, err := c.awaitExit(ctx)
	if err != nil {
		return nil, err
	}
	if !observed {
		// The wait resolved before the subscription was opened.
		code, err = c.inspectExitCode(ctx)
		if err != nil {
			return nil, err
		}
	}

	return &Output{
		Status: exitStatus(code),
		Stdout: stdout,
		Stderr: stderr,
	}, nil
}

// Folds the log stream into stdout and stderr buffers.
//
// Chunks tagged neither stdout nor stderr are discarded. The fold runs until
// the engine closes the stream; a transport error discards everything.
func collect(stream engine.LogStream) (stdout, stderr []byte, err error) {
	stdout = make([]byte, 0, captureCapacity)
	stderr = make([]byte, 0, captureCapacity)

	for chunk := range stream.Chunks() {
		switch chunk.Kind {
		case engine.StreamStdout:
			stdout = append(stdout, chunk.Data...)
		case engine.StreamStderr:
			stderr = append(stderr, chunk.Data...)
		default:
			slog.Debug("unhandled log chunk", "kind", int(chunk.Kind), "size", len(chunk.Data))
		}
	}

	if err := stream.Err(); err != nil {
		return nil, nil, err
	}

	return stdout, stderr, nil
}

// Takes at most one result from the wait-event subscription.
//
// Both a normal completion and an error-shaped exit report count as an
// observed exit code; the two are indistinguishable to callers. Any other
// error is fatal. observed is false when the subscription yielded nothing.
func (c *Container) awaitExit(ctx context.Context) (code int64, observed bool, err error) {
	res, ok := <-c.eng.Wait(ctx, c.name)
	if !ok {
		return 0, false, nil
	}

	if res.Err == nil {
		return res.Code, true, nil
	}

	var exitErr *engine.WaitExitError
	if errors.As(res.Err, &exitErr) {
		return exitErr.Code, true, nil
	}

	return 0, false, fmt.Errorf("waiting for container %q: %w", c.name, res.Err)
}

// Reads the exit code from an inspect call.
//
// Used when the wait subscription yielded nothing. A container without a
// state, or a state without an exit code, breaks the engine's documented
// contract and must not be papered over with a default.
func (c *Container) inspectExitCode(ctx context.Context) (int64, error) {
	details, err := c.eng.Inspect(ctx, c.name)
	if err != nil {
		return 0, fmt.Errorf("inspecting container %q: %w", c.name, err)
	}

	if details.State == nil {
		return 0, fmt.Errorf("%w: engine reported container %q without a state", ErrEngineContract, c.name)
	}
	if details.State.ExitCode == nil {
		return 0, fmt.Errorf("%w: engine reported container %q without an exit code", ErrEngineContract, c.name)
	}

	return *details.State.ExitCode, nil
}
