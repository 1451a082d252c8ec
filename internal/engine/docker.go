package engine

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/containerd/errdefs"
	"github.com/docker/docker/api/types"
	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/api/types/image"
	"github.com/docker/docker/api/types/mount"
	"github.com/docker/docker/client"
	"github.com/docker/docker/pkg/stdcopy"
	"github.com/docker/go-connections/nat"
	ocispec "github.com/opencontainers/image-spec/specs-go/v1"
)

// A [Client] backed by the Docker Engine API.
type Docker struct {
	cli *client.Client // Shared SDK client; safe for concurrent use.
}

// Connects to the Docker daemon.
//
// The connection is configured from the standard environment (DOCKER_HOST
// and friends). A non-empty host overrides the environment. When apiVersion
// is empty the version is negotiated with the daemon.
func NewDocker(host, apiVersion string) (*Docker, error) {
	opts := []client.Opt{client.FromEnv}

	if apiVersion != "" {
		opts = append(opts, client.WithVersion(apiVersion))
	} else {
		opts = append(opts, client.WithAPIVersionNegotiation())
	}
	if host != "" {
		opts = append(opts, client.WithHost(host))
	}

	cli, err := client.NewClientWithOpts(opts...)
	if err != nil {
		return nil, fmt.Errorf("creating docker client: %w", err)
	}

	return &Docker{cli: cli}, nil
}

// Closes the connection to the daemon.
func (d *Docker) Close() error {
	return d.cli.Close()
}

// Opens a log stream for the named container.
//
// The daemon multiplexes stdout and stderr over one hijacked connection;
// the returned stream demultiplexes it back into tagged chunks.
func (d *Docker) Attach(ctx context.Context, name string, opts AttachOptions) (LogStream, error) {
	resp, err := d.cli.ContainerAttach(ctx, name, container.AttachOptions{
		Stream: opts.Stream,
		Stdout: opts.Stdout,
		Stderr: opts.Stderr,
	})
	if err != nil {
		return nil, fmt.Errorf("attaching to container %q: %w", name, err)
	}

	return newDockerLogStream(resp), nil
}

// Starts the named container.
func (d *Docker) Start(ctx context.Context, name string) error {
	if err := d.cli.ContainerStart(ctx, name, container.StartOptions{}); err != nil {
		return fmt.Errorf("starting container %q: %w", name, err)
	}
	return nil
}

// Subscribes to the container's exit notification.
//
// The SDK reports the outcome on a pair of channels; they are folded into a
// single result channel carrying at most one [WaitResult]. A wait response
// with an embedded error becomes a [*WaitExitError] that retains the status
// code, since the daemon reports some exits through that path.
func (d *Docker) Wait(ctx context.Context, name string) <-chan WaitResult {
	out := make(chan WaitResult, 1)
	statusCh, errCh := d.cli.ContainerWait(ctx, name, container.WaitConditionNotRunning)

	go func() {
		defer close(out)
		select {
		case resp := <-statusCh:
			out <- waitResultFromResponse(resp)
		case err := <-errCh:
			if err != nil {
				out <- WaitResult{Err: err}
			}
		case <-ctx.Done():
			out <- WaitResult{Err: ctx.Err()}
		}
	}()

	return out
}

// Translates an SDK wait response into a [WaitResult].
func waitResultFromResponse(resp container.WaitResponse) WaitResult {
	if resp.Error != nil {
		return WaitResult{Err: &WaitExitError{Code: resp.StatusCode, Message: resp.Error.Message}}
	}
	return WaitResult{Code: resp.StatusCode}
}

// Queries the container's current state.
func (d *Docker) Inspect(ctx context.Context, name string) (ContainerDetails, error) {
	info, err := d.cli.ContainerInspect(ctx, name)
	if err != nil {
		return ContainerDetails{}, fmt.Errorf("inspecting container %q: %w", name, err)
	}
	return detailsFromInspect(info), nil
}

// Maps an SDK inspect response onto the facade's optional-state shape.
func detailsFromInspect(info container.InspectResponse) ContainerDetails {
	if info.ContainerJSONBase == nil || info.State == nil {
		return ContainerDetails{}
	}
	code := int64(info.State.ExitCode)
	return ContainerDetails{
		State: &State{
			Running:  info.State.Running,
			ExitCode: &code,
		},
	}
}

// Extracts a tar archive into the container's filesystem rooted at path.
func (d *Docker) Upload(ctx context.Context, name, path string, archive io.Reader) error {
	err := d.cli.CopyToContainer(ctx, name, path, archive, container.CopyToContainerOptions{})
	if err != nil {
		return fmt.Errorf("uploading to container %q: %w", name, err)
	}
	return nil
}

// Removes the container, forcibly if requested.
func (d *Docker) Remove(ctx context.Context, name string, force bool) error {
	err := d.cli.ContainerRemove(ctx, name, container.RemoveOptions{Force: force})
	if err != nil {
		return fmt.Errorf("removing container %q: %w", name, err)
	}
	return nil
}

// Makes the image available locally, pulling it when missing.
func (d *Docker) EnsureImage(ctx context.Context, ref string) error {
	_, err := d.cli.ImageInspect(ctx, ref)
	if err == nil {
		return nil
	}
	if !errdefs.IsNotFound(err) {
		return fmt.Errorf("inspecting image %q: %w", ref, err)
	}

	reader, err := d.cli.ImagePull(ctx, ref, image.PullOptions{})
	if err != nil {
		return fmt.Errorf("pulling image %q: %w", ref, err)
	}
	defer reader.Close()

	// The pull completes only once its progress stream is drained.
	if _, err := io.Copy(io.Discard, reader); err != nil {
		return fmt.Errorf("pulling image %q: %w", ref, err)
	}

	return nil
}

// Creates a container and returns the identity assigned by the engine.
func (d *Docker) Create(ctx context.Context, cfg CreateConfig) (string, error) {
	mounts := make([]mount.Mount, len(cfg.Mounts))
	for i, m := range cfg.Mounts {
		mounts[i] = mount.Mount{
			Type:     mount.TypeBind,
			Source:   m.Source,
			Target:   m.Target,
			ReadOnly: m.ReadOnly,
		}
	}

	var exposed nat.PortSet
	var bindings nat.PortMap
	if len(cfg.Ports) > 0 {
		exposed = make(nat.PortSet)
		bindings = make(nat.PortMap)
		for _, p := range cfg.Ports {
			port := nat.Port(fmt.Sprintf("%d/tcp", p.ContainerPort))
			exposed[port] = struct{}{}
			bindings[port] = []nat.PortBinding{{HostIP: p.HostIP}}
		}
	}

	var platform *ocispec.Platform
	if cfg.Platform != "" {
		platform = parsePlatform(cfg.Platform)
	}

	resp, err := d.cli.ContainerCreate(ctx,
		&container.Config{
			Image:        cfg.Image,
			Cmd:          cfg.Cmd,
			Env:          cfg.Env,
			WorkingDir:   cfg.WorkingDir,
			ExposedPorts: exposed,
		},
		&container.HostConfig{
			Mounts:       mounts,
			PortBindings: bindings,
		},
		nil,
		platform,
		cfg.Name,
	)
	if err != nil {
		return "", fmt.Errorf("creating container: %w", err)
	}

	return resp.ID, nil
}

// Parses an OCI platform string of the form "os[/arch[/variant]]".
func parsePlatform(s string) *ocispec.Platform {
	parts := strings.SplitN(s, "/", 3)

	p := &ocispec.Platform{OS: parts[0]}
	if len(parts) > 1 {
		p.Architecture = parts[1]
	}
	if len(parts) > 2 {
		p.Variant = parts[2]
	}
	return p
}

// A [LogStream] over a hijacked Docker attach connection.
type dockerLogStream struct {
	resp types.HijackedResponse
	ch   chan Chunk
	err  error // Written by run before ch is closed, read after.
}

// Starts demultiplexing the hijacked connection into tagged chunks.
func newDockerLogStream(resp types.HijackedResponse) *dockerLogStream {
	s := &dockerLogStream{resp: resp, ch: make(chan Chunk)}
	go s.run()
	return s
}

func (s *dockerLogStream) run() {
	err := demux(s.resp.Reader, s.ch)
	s.resp.Close()
	if err != nil && !errors.Is(err, io.EOF) {
		s.err = err
	}
	close(s.ch)
}

func (s *dockerLogStream) Chunks() <-chan Chunk {
	return s.ch
}

func (s *dockerLogStream) Err() error {
	return s.err
}

func (s *dockerLogStream) Close() error {
	s.resp.Close()
	return nil
}

// Splits a multiplexed attach stream into tagged chunks on ch.
//
// The daemon frames stdout and stderr with stream headers; stdcopy strips
// the framing and routes each payload to the matching writer.
func demux(r io.Reader, ch chan<- Chunk) error {
	_, err := stdcopy.StdCopy(
		chunkWriter{kind: StreamStdout, ch: ch},
		chunkWriter{kind: StreamStderr, ch: ch},
		r,
	)
	return err
}

// An [io.Writer] that emits every write as one tagged chunk.
type chunkWriter struct {
	kind StreamKind
	ch   chan<- Chunk
}

func (w chunkWriter) Write(p []byte) (int, error) {
	// stdcopy reuses its buffer between frames, so the payload is copied.
	data := make([]byte, len(p))
	copy(data, p)
	w.ch <- Chunk{Kind: w.kind, Data: data}
	return len(p), nil
}
