// Package container orchestrates the lifecycle of a single container
// instance managed by a remote engine.
//
// A [Container] is a lightweight handle: an identity plus attachment flags
// over a shared [engine.API] client. It exposes four operations — upload a
// file before start, run to completion, and remove with or without force.
// Running a container coordinates the engine's independent channels (log
// stream, start call, wait-event stream, inspect call) into one
// deterministic result of exit status plus captured stdout and stderr.
//
// Example usage:
//
//	ctr, err := container.Create(ctx, client, container.CreateOptions{
//	    Image:  "alpine:3.20",
//	    Cmd:    []string{"sh", "-c", "echo hello"},
//	    Stdout: true,
//	    Stderr: true,
//	})
//	if err != nil {
//	    return err
//	}
//	defer ctr.ForceRemove(ctx)
//
//	if err := ctr.UploadFile(ctx, "/input/data.txt", data); err != nil {
//	    return err
//	}
//
//	out, err := ctr.Run(ctx, func() { slog.Debug("running") })
//	if err != nil {
//	    return err
//	}
//
// No timeout or cancellation policy lives here; callers wrap the context.
// If a run is abandoned mid-flight the container may be left running.
package container
