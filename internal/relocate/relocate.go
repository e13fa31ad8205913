package relocate

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofrs/flock"

	"streamgate/internal/fileutil"
	"streamgate/internal/logging"
	"streamgate/internal/services"
)

const lockRetryDelay = 250 * time.Millisecond

// Options configures a Copier.
type Options struct {
	// BufferSize is the transfer chunk size; zero selects fileutil.DefaultBufferSize.
	BufferSize int
	// Verify hashes the transfer and removes the destination on mismatch.
	Verify bool
	// LockDir holds advisory lock files; empty selects os.TempDir().
	LockDir string
	Logger  *slog.Logger
}

// Result reports where the file went.
type Result struct {
	Destination string
	// WorkingFile is the path downstream steps should operate on.
	WorkingFile string
	// Skipped is set when source and destination were the same path.
	Skipped bool
	Bytes   int64
}

// Copier performs relocation copies.
type Copier struct {
	opts   Options
	logger *slog.Logger
	statfs func(string) (uint64, error)
}

// New constructs a Copier.
func New(opts Options) *Copier {
	return &Copier{
		opts:   opts,
		logger: logging.NewComponentLogger(opts.Logger, "relocate"),
		statfs: realStatfs,
	}
}

// Copy copies req.Source into the computed destination directory.
func (c *Copier) Copy(ctx context.Context, req Request) (Result, error) {
	dir, dest, err := Destination(req)
	if err != nil {
		return Result{}, err
	}
	working := req.Source
	if req.MakeWorkingFile {
		working = dest
	}
	c.logger.Debug("resolved copy paths",
		logging.String("input_path", req.Source),
		logging.String("output_path", dir),
	)
	if samePath(req.Source, dest) {
		c.logger.Info("input and output path are the same, skipping copy", logging.String("path", dest))
		return Result{Destination: dest, WorkingFile: req.Source, Skipped: true}, nil
	}

	written, err := c.transfer(ctx, req.Source, dir, dest)
	if err != nil {
		return Result{}, err
	}
	return Result{Destination: dest, WorkingFile: working, Bytes: written}, nil
}

// ToWorkDir copies source into workDir and makes the copy the working file.
func (c *Copier) ToWorkDir(ctx context.Context, source, workDir string) (Result, error) {
	source = strings.TrimSpace(source)
	if source == "" {
		return Result{}, services.Wrap(services.ErrValidation, "relocate", "work dir", "source path is required", nil)
	}
	workDir = strings.TrimSpace(workDir)
	if workDir == "" {
		return Result{}, services.Wrap(services.ErrValidation, "relocate", "work dir", "work directory is required", nil)
	}
	dest := filepath.Join(filepath.Clean(workDir), filepath.Base(source))
	c.logger.Info("copy to work directory", logging.String("input_path", source), logging.String("output_path", dest))
	if samePath(source, dest) {
		c.logger.Info("input and output path are the same, skipping copy", logging.String("path", dest))
		return Result{Destination: dest, WorkingFile: source, Skipped: true}, nil
	}

	written, err := c.transfer(ctx, source, filepath.Dir(dest), dest)
	if err != nil {
		return Result{}, err
	}
	return Result{Destination: dest, WorkingFile: dest, Bytes: written}, nil
}

func (c *Copier) transfer(ctx context.Context, source, dir, dest string) (int64, error) {
	info, err := os.Stat(source)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, services.Wrap(services.ErrNotFound, "relocate", "stat source", source, err)
		}
		return 0, services.Wrap(services.ErrIO, "relocate", "stat source", source, err)
	}
	if info.IsDir() {
		return 0, services.Wrap(services.ErrValidation, "relocate", "stat source", fmt.Sprintf("%s is a directory", source), nil)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return 0, services.Wrap(services.ErrIO, "relocate", "ensure directory", dir, err)
	}
	if err := c.checkSpace(dir, info.Size()); err != nil {
		return 0, err
	}

	lock, err := acquireLock(ctx, c.lockPath(dest))
	if err != nil {
		return 0, services.Wrap(services.ErrIO, "relocate", "lock destination", dest, err)
	}
	defer c.releaseLock(lock)

	start := time.Now()
	written, err := fileutil.Copy(ctx, source, dest, fileutil.Options{
		BufferSize: c.opts.BufferSize,
		Mode:       info.Mode().Perm(),
		Verify:     c.opts.Verify,
	})
	if err != nil {
		return written, services.Wrap(services.ErrIO, "relocate", "copy", fmt.Sprintf("%s -> %s", source, dest), err)
	}
	c.logger.Info("copy complete",
		logging.String("input_path", source),
		logging.String("output_path", dest),
		logging.Int64("bytes", written),
		logging.Duration("elapsed", time.Since(start)),
		logging.Bool("verified", c.opts.Verify),
	)
	return written, nil
}

// acquireLock takes the destination's advisory lock. The holder removes the
// lock file before unlocking, so a lock taken on a file that is no longer at
// path is dropped and retried.
func acquireLock(ctx context.Context, path string) (*flock.Flock, error) {
	for {
		lock := flock.New(path)
		locked, err := lock.TryLockContext(ctx, lockRetryDelay)
		if err != nil {
			return nil, err
		}
		if !locked {
			return nil, ctx.Err()
		}
		held, heldErr := lock.Stat()
		current, currentErr := os.Stat(path)
		if heldErr == nil && currentErr == nil && os.SameFile(held, current) {
			return lock, nil
		}
		_ = lock.Unlock()
		_ = lock.Close()
		if err := ctx.Err(); err != nil {
			return nil, err
		}
	}
}

func (c *Copier) releaseLock(lock *flock.Flock) {
	if err := os.Remove(lock.Path()); err != nil && !os.IsNotExist(err) {
		c.logger.Warn("failed to remove copy lock", logging.Error(err), logging.String("lock", lock.Path()))
	}
	if err := lock.Unlock(); err != nil {
		c.logger.Warn("failed to release copy lock", logging.Error(err), logging.String("lock", lock.Path()))
	}
	_ = lock.Close()
}

func (c *Copier) checkSpace(dir string, need int64) error {
	if c.statfs == nil || need <= 0 {
		return nil
	}
	free, err := c.statfs(dir)
	if err != nil {
		c.logger.Debug("free space check unavailable", logging.Error(err), logging.String("dir", dir))
		return nil
	}
	if free < uint64(need) {
		return services.Wrap(services.ErrIO, "relocate", "free space", fmt.Sprintf("%s has %d bytes free, need %d", dir, free, need), nil)
	}
	return nil
}

func (c *Copier) lockPath(dest string) string {
	dir := strings.TrimSpace(c.opts.LockDir)
	if dir == "" {
		dir = os.TempDir()
	}
	abs, err := filepath.Abs(dest)
	if err != nil {
		abs = dest
	}
	sum := sha256.Sum256([]byte(abs))
	return filepath.Join(dir, "streamgate-"+hex.EncodeToString(sum[:8])+".lock")
}
