// Package fileutil streams files between paths with a fixed-size buffer.
package fileutil

import (
	"bytes"
	"context"
	"crypto/sha256"
	"fmt"
	"hash"
	"io"
	"os"
)

// DefaultBufferSize is the transfer buffer used when callers pass zero.
const DefaultBufferSize = 64 << 20

// Options tunes a copy.
type Options struct {
	// BufferSize is the transfer chunk size; zero selects DefaultBufferSize.
	BufferSize int
	// Mode is the permission set on a newly created destination; zero selects 0o644.
	Mode os.FileMode
	// Verify hashes the source while copying, re-reads dst once it is synced,
	// and removes dst on size or hash mismatch.
	Verify bool
}

// Copy streams src to dst. The destination is synced and closed before
// Copy returns; the first read, write, sync or close error fails the copy.
// Cancellation is checked between chunks.
func Copy(ctx context.Context, src, dst string, opts Options) (int64, error) {
	bufSize := opts.BufferSize
	if bufSize <= 0 {
		bufSize = DefaultBufferSize
	}
	mode := opts.Mode
	if mode == 0 {
		mode = 0o644
	}

	in, err := os.Open(src)
	if err != nil {
		return 0, err
	}
	defer in.Close()

	var srcSize int64
	if opts.Verify {
		info, err := in.Stat()
		if err != nil {
			return 0, fmt.Errorf("stat source: %w", err)
		}
		srcSize = info.Size()
	}

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, mode)
	if err != nil {
		return 0, err
	}
	defer func() {
		_ = out.Close()
	}()

	var reader io.Reader = &contextReader{ctx: ctx, r: in}
	var srcHasher hash.Hash
	if opts.Verify {
		srcHasher = sha256.New()
		reader = io.TeeReader(reader, srcHasher)
	}

	buf := make([]byte, bufSize)
	written, err := io.CopyBuffer(writerOnly{out}, reader, buf)
	if err != nil {
		return written, err
	}
	if err := out.Sync(); err != nil {
		return written, fmt.Errorf("sync destination: %w", err)
	}
	if err := out.Close(); err != nil {
		return written, err
	}

	if opts.Verify {
		if written != srcSize {
			_ = os.Remove(dst)
			return written, fmt.Errorf("copy size mismatch: source %d bytes, copied %d bytes", srcSize, written)
		}
		if err := verifyDestination(ctx, dst, srcSize, srcHasher.Sum(nil), buf); err != nil {
			return written, err
		}
	}
	return written, nil
}

// verifyDestination reads dst back from disk and removes it unless its size
// and SHA-256 match the expected values.
func verifyDestination(ctx context.Context, dst string, wantSize int64, wantSum, buf []byte) error {
	file, err := os.Open(dst)
	if err != nil {
		return fmt.Errorf("reopen destination: %w", err)
	}
	hasher := sha256.New()
	size, err := io.CopyBuffer(hasher, &contextReader{ctx: ctx, r: file}, buf)
	_ = file.Close()
	if err != nil {
		return fmt.Errorf("read back destination: %w", err)
	}
	if size != wantSize {
		_ = os.Remove(dst)
		return fmt.Errorf("copy size mismatch: source %d bytes, destination %d bytes", wantSize, size)
	}
	if !bytes.Equal(hasher.Sum(nil), wantSum) {
		_ = os.Remove(dst)
		return fmt.Errorf("copy hash mismatch: destination differs from source")
	}
	return nil
}

// writerOnly hides *os.File's ReadFrom so io.CopyBuffer uses our buffer.
type writerOnly struct {
	io.Writer
}

// contextReader fails reads once ctx is done.
type contextReader struct {
	ctx context.Context
	r   io.Reader
}

func (c *contextReader) Read(p []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err
	}
	return c.r.Read(p)
}
