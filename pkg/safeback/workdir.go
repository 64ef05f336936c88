package safeback

import (
	"path"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/safeback/pkg/safeback/core"
)

// Path is a validated location inside a working directory.
type Path struct {
	// Name is the slash-cleaned form, relative to the workdir root, used
	// against the rooted filesystem.
	Name string
	// Abs is the workdir root joined with the input as supplied. No
	// canonicalization happens here, so symlinks are not resolved.
	Abs string
}

// Base returns the final path segment of the validated name.
func (p Path) Base() string {
	return path.Base(p.Name)
}

// Workdir validates user-supplied file names against a fixed working
// directory. The directory is explicit state rather than ambient
// os.Getwd(), which keeps validation a pure function of its inputs.
type Workdir struct {
	root string
}

// NewWorkdir creates a validator anchored at root. An empty root means
// the process working directory.
func NewWorkdir(root string) (*Workdir, error) {
	if root == "" {
		root = "."
	}
	abs, err := filepath.Abs(filepath.Clean(root))
	if err != nil {
		return nil, err
	}
	return &Workdir{root: abs}, nil
}

// Root returns the absolute working directory this validator is anchored at.
func (w *Workdir) Root() string {
	return w.root
}

// Abs joins a workdir-relative name with the root.
func (w *Workdir) Abs(name string) string {
	return filepath.Join(w.root, filepath.FromSlash(name))
}

// Validate rejects empty, absolute, and traversal-containing names, and
// resolves an accepted name against the working directory. Backslashes
// are normalized to forward slashes for the traversal check only; the
// accepted value keeps the name as supplied.
func (w *Workdir) Validate(name string) (Path, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return Path{}, &core.ValidationError{Name: name, Reason: "empty file name"}
	}
	if filepath.IsAbs(trimmed) {
		return Path{}, &core.ValidationError{Name: name, Reason: "absolute paths not allowed"}
	}
	normalized := strings.ReplaceAll(trimmed, "\\", "/")
	for _, segment := range strings.Split(normalized, "/") {
		if segment == ".." {
			return Path{}, &core.ValidationError{Name: name, Reason: "parent traversal not allowed"}
		}
	}
	return Path{
		Name: path.Clean(trimmed),
		Abs:  w.root + string(filepath.Separator) + trimmed,
	}, nil
}
