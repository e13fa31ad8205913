package relocate

import (
	"fmt"
	"path/filepath"
	"strings"

	"streamgate/internal/services"
)

// Request describes one copy-to-directory operation.
type Request struct {
	// Source is the current working file.
	Source string
	// OriginalFile is the library file the job started from. It anchors the
	// relative sub-path; Source is used when empty.
	OriginalFile string
	// LibraryRoot is the library folder OriginalFile lives under.
	LibraryRoot string
	// OutputDir is the destination root.
	OutputDir string
	// KeepRelativePath recreates OriginalFile's directory below LibraryRoot
	// inside OutputDir.
	KeepRelativePath bool
	// MakeWorkingFile reports the copy as the new working file.
	MakeWorkingFile bool
}

// Destination returns the directory the copy lands in and the full
// destination file path.
func Destination(req Request) (string, string, error) {
	source := strings.TrimSpace(req.Source)
	if source == "" {
		return "", "", services.Wrap(services.ErrValidation, "relocate", "destination", "source path is required", nil)
	}
	outputDir := strings.TrimSpace(req.OutputDir)
	if outputDir == "" {
		return "", "", services.Wrap(services.ErrValidation, "relocate", "destination", "output directory is required", nil)
	}

	dir := filepath.Clean(outputDir)
	if req.KeepRelativePath {
		sub, err := subPath(req)
		if err != nil {
			return "", "", err
		}
		dir = filepath.Join(dir, sub)
	}
	return dir, filepath.Join(dir, filepath.Base(source)), nil
}

// subPath returns the original file's directory relative to the library root.
func subPath(req Request) (string, error) {
	root := strings.TrimSpace(req.LibraryRoot)
	if root == "" {
		return "", services.Wrap(services.ErrValidation, "relocate", "destination", "library root is required to keep the relative path", nil)
	}
	original := strings.TrimSpace(req.OriginalFile)
	if original == "" {
		original = strings.TrimSpace(req.Source)
	}
	rel, err := filepath.Rel(filepath.Clean(root), filepath.Dir(filepath.Clean(original)))
	if err != nil {
		return "", services.Wrap(services.ErrValidation, "relocate", "destination", fmt.Sprintf("resolve %q below %q", original, root), err)
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", services.Wrap(services.ErrValidation, "relocate", "destination", fmt.Sprintf("%q is not inside library root %q", original, root), nil)
	}
	if rel == "." {
		return "", nil
	}
	return rel, nil
}

func samePath(a, b string) bool {
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	if errA != nil || errB != nil {
		return filepath.Clean(a) == filepath.Clean(b)
	}
	return absA == absB
}
