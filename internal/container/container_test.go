package container

import (
	"context"
	"io"

	"github.com/hullworks/stevedore/internal/engine"
)

// A pre-scripted [engine.LogStream] for tests.
type fakeStream struct {
	ch     chan engine.Chunk
	err    error
	closed bool
}

func newFakeStream(err error, chunks ...engine.Chunk) *fakeStream {
	ch := make(chan engine.Chunk, len(chunks))
	for _, c := range chunks {
		ch <- c
	}
	close(ch)
	return &fakeStream{ch: ch, err: err}
}

func (s *fakeStream) Chunks() <-chan engine.Chunk { return s.ch }
func (s *fakeStream) Err() error                  { return s.err }
func (s *fakeStream) Close() error                { s.closed = true; return nil }

// A scriptable [engine.Client] that records calls in order.
type fakeEngine struct {
	calls []string

	stream    *fakeStream
	attachErr error

	startErr error

	// Sent on the wait channel, then the channel is closed. An empty slice
	// models a wait that already resolved before subscribing.
	waitResults []engine.WaitResult

	details    engine.ContainerDetails
	inspectErr error

	uploadRoot string
	uploadData []byte
	uploadErr  error

	removeForce []bool
	removeErr   error

	ensured   []string
	ensureErr error

	createCfg engine.CreateConfig
	createID  string
	createErr error
}

func (f *fakeEngine) Attach(ctx context.Context, name string, opts engine.AttachOptions) (engine.LogStream, error) {
	f.calls = append(f.calls, "attach")
	if f.attachErr != nil {
		return nil, f.attachErr
	}
	if f.stream == nil {
		f.stream = newFakeStream(nil)
	}
	return f.stream, nil
}

func (f *fakeEngine) Start(ctx context.Context, name string) error {
	f.calls = append(f.calls, "start")
	return f.startErr
}

func (f *fakeEngine) Wait(ctx context.Context, name string) <-chan engine.WaitResult {
	f.calls = append(f.calls, "wait")
	ch := make(chan engine.WaitResult, len(f.waitResults))
	for _, res := range f.waitResults {
		ch <- res
	}
	close(ch)
	return ch
}

func (f *fakeEngine) Inspect(ctx context.Context, name string) (engine.ContainerDetails, error) {
	f.calls = append(f.calls, "inspect")
	return f.details, f.inspectErr
}

func (f *fakeEngine) Upload(ctx context.Context, name, path string, archive io.Reader) error {
	f.calls = append(f.calls, "upload")
	f.uploadRoot = path
	data, err := io.ReadAll(archive)
	if err != nil {
		return err
	}
	f.uploadData = data
	return f.uploadErr
}

func (f *fakeEngine) Remove(ctx context.Context, name string, force bool) error {
	f.calls = append(f.calls, "remove")
	f.removeForce = append(f.removeForce, force)
	return f.removeErr
}

func (f *fakeEngine) EnsureImage(ctx context.Context, ref string) error {
	f.calls = append(f.calls, "ensure-image")
	f.ensured = append(f.ensured, ref)
	return f.ensureErr
}

func (f *fakeEngine) Create(ctx context.Context, cfg engine.CreateConfig) (string, error) {
	f.calls = append(f.calls, "create")
	f.createCfg = cfg
	if f.createErr != nil {
		return "", f.createErr
	}
	if f.createID == "" {
		return "ctr-1", nil
	}
	return f.createID, nil
}

// Convenience pointer for scripting inspect results.
func int64p(v int64) *int64 { return &v }
