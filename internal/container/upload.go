package container

import (
	"archive/tar"
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/opencontainers/go-digest"
)

// Initial capacity of the in-memory archive buffer.
//
// Most uploads fit well under this, so a single allocation covers the
// common case.
const tarCapacity = 0xFFFF

// File mode applied to uploaded files.
const uploadFileMode = 0o644

// Uploads a file into the container's filesystem.
//
// Leading slashes are stripped from path, so the file always lands relative
// to the filesystem root. The contents are packaged as a single-entry tar
// archive with mode 0644 and extracted by the engine at "/". Re-uploading
// the same path overwrites the file; uploading concurrently with Run is a
// caller error.
func (c *Container) UploadFile(ctx context.Context, path string, contents []byte) error {
	name := strings.TrimLeft(path, "/")
	archive := packageFile(name, contents)

	slog.Debug("uploading file",
		"container", c.name,
		"path", name,
		"size", len(contents),
		"digest", digest.FromBytes(contents),
	)

	if err := c.eng.Upload(ctx, c.name, "/", archive); err != nil {
		return fmt.Errorf("uploading %q to container %q: %w", name, c.name, err)
	}

	return nil
}

// Builds an in-memory tar archive holding one regular file.
//
// Encoding into a byte buffer cannot fail for well-formed inputs; a failure
// here means the header construction itself is broken, which is a
// programming error rather than a runtime condition, so it panics.
func packageFile(name string, contents []byte) *bytes.Buffer {
	buf := bytes.NewBuffer(make([]byte, 0, tarCapacity))
	tw := tar.NewWriter(buf)

	header := &tar.Header{
		Typeflag: tar.TypeReg,
		Name:     name,
		Mode:     uploadFileMode,
		Size:     int64(len(contents)),
	}

	if err := tw.WriteHeader(header); err != nil {
		panic(fmt.Sprintf("writing tar header for %q: %v", name, err))
	}
	if _, err := tw.Write(contents); err != nil {
		panic(fmt.Sprintf("writing tar body for %q: %v", name, err))
	}
	if err := tw.Close(); err != nil {
		panic(fmt.Sprintf("finalizing tar archive for %q: %v", name, err))
	}

	return buf
}
