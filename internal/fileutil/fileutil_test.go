package fileutil

import (
	"context"
	"crypto/sha256"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestCopyDefaults(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.txt")
	dst := filepath.Join(dir, "dst.txt")

	content := []byte("hello world")
	if err := os.WriteFile(src, content, 0o644); err != nil {
		t.Fatal(err)
	}

	written, err := Copy(context.Background(), src, dst, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if written != int64(len(content)) {
		t.Fatalf("written = %d, want %d", written, len(content))
	}

	got, err := os.ReadFile(dst)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != string(content) {
		t.Fatalf("content mismatch: got %q, want %q", got, content)
	}
}

func TestCopySmallBufferSpansChunks(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.bin")
	dst := filepath.Join(dir, "dst.bin")

	content := make([]byte, 10_000)
	for i := range content {
		content[i] = byte(i % 251)
	}
	if err := os.WriteFile(src, content, 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Copy(context.Background(), src, dst, Options{BufferSize: 512, Verify: true}); err != nil {
		t.Fatal(err)
	}
	got, err := os.ReadFile(dst)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != string(content) {
		t.Fatal("content mismatch after chunked copy")
	}
}

func TestCopyMode(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.bin")
	dst := filepath.Join(dir, "dst.bin")

	if err := os.WriteFile(src, []byte("data"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Copy(context.Background(), src, dst, Options{Mode: 0o755}); err != nil {
		t.Fatal(err)
	}

	info, err := os.Stat(dst)
	if err != nil {
		t.Fatal(err)
	}
	// Check executable bits are set (umask may clear some bits).
	if info.Mode().Perm()&0o111 == 0 {
		t.Fatalf("expected executable bits, got %o", info.Mode().Perm())
	}
}

func TestCopyCanceledContext(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.bin")
	if err := os.WriteFile(src, []byte("data"), 0o644); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Copy(ctx, src, filepath.Join(dir, "dst.bin"), Options{})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestCopyMissingSource(t *testing.T) {
	dir := t.TempDir()
	_, err := Copy(context.Background(), filepath.Join(dir, "nope"), filepath.Join(dir, "dst"), Options{})
	if err == nil {
		t.Fatal("expected error for missing source")
	}
}

func TestCopyMissingDestinationDir(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.bin")
	if err := os.WriteFile(src, []byte("data"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := Copy(context.Background(), src, filepath.Join(dir, "missing", "dst.bin"), Options{})
	if err == nil {
		t.Fatal("expected error when destination directory does not exist")
	}
}

func TestVerifyDestinationDetectsOnDiskDifference(t *testing.T) {
	dir := t.TempDir()
	dst := filepath.Join(dir, "dst.bin")
	if err := os.WriteFile(dst, []byte("data-corrupted"), 0o644); err != nil {
		t.Fatal(err)
	}
	want := sha256.Sum256([]byte("data-original!"))

	err := verifyDestination(context.Background(), dst, int64(len("data-original!")), want[:], make([]byte, 4))
	if err == nil {
		t.Fatal("expected hash mismatch")
	}
	if _, statErr := os.Stat(dst); !os.IsNotExist(statErr) {
		t.Fatalf("expected corrupted destination to be removed, stat err = %v", statErr)
	}
}

func TestVerifyDestinationSizeMismatch(t *testing.T) {
	dir := t.TempDir()
	dst := filepath.Join(dir, "dst.bin")
	if err := os.WriteFile(dst, []byte("short"), 0o644); err != nil {
		t.Fatal(err)
	}
	want := sha256.Sum256([]byte("short"))

	if err := verifyDestination(context.Background(), dst, 10, want[:], make([]byte, 4)); err == nil {
		t.Fatal("expected size mismatch")
	}
	if _, statErr := os.Stat(dst); !os.IsNotExist(statErr) {
		t.Fatalf("expected destination to be removed, stat err = %v", statErr)
	}
}

func TestVerifyDestinationAcceptsMatchingFile(t *testing.T) {
	dir := t.TempDir()
	dst := filepath.Join(dir, "dst.bin")
	content := []byte("matching content spanning chunks")
	if err := os.WriteFile(dst, content, 0o644); err != nil {
		t.Fatal(err)
	}
	want := sha256.Sum256(content)

	if err := verifyDestination(context.Background(), dst, int64(len(content)), want[:], make([]byte, 4)); err != nil {
		t.Fatalf("verifyDestination: %v", err)
	}
}
