// Package scaffolding generates the standardized data-science project
// layout: a fixed tree of directories plus a fixed, ordered set of template
// files rendered from the validated project and package names.
package scaffolding

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/afero"
)

// ProjectSpec is the validated, immutable input driving generation. It is
// constructed once from CLI input and never mutated afterwards.
type ProjectSpec struct {
	// ProjectName is the Train-Case root directory name.
	ProjectName string

	// PackageName is the snake_case Python package under src/.
	PackageName string

	// IncludeDocs adds a docs/ directory to the tree.
	IncludeDocs bool
}

// ErrProjectExists is returned when the project root directory already
// exists under the base directory. The builder never overwrites or merges.
var ErrProjectExists = errors.New("project directory already exists")

// BuildError wraps a filesystem failure with the offending path.
type BuildError struct {
	Path string
	Err  error
}

// Error implements the error interface.
func (e *BuildError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *BuildError) Unwrap() error {
	return e.Err
}

// Builder creates project trees on a filesystem. The filesystem is an
// afero.Fs so production uses the OS filesystem while tests run against an
// in-memory one.
type Builder struct {
	fs     afero.Fs
	logger *log.Logger
}

// NewBuilder creates a builder writing to fs and logging progress to logger.
func NewBuilder(fs afero.Fs, logger *log.Logger) *Builder {
	return &Builder{fs: fs, logger: logger}
}

// DirectoryPlan returns the project-relative directories in creation order.
// docs/ is appended only when spec.IncludeDocs is set; notebooks/ and
// files/ are always present even though no file is generated into them.
func DirectoryPlan(spec ProjectSpec) []string {
	dirs := []string{
		"config",
		"files",
		"notebooks",
		"test",
		"src",
		filepath.Join("src", spec.PackageName),
	}
	if spec.IncludeDocs {
		dirs = append(dirs, "docs")
	}
	return dirs
}

// Build creates the project root under baseDir, then every directory in the
// plan, then every rendered template file, in fixed order. There is no
// rollback: on failure, whatever was created so far stays on disk and the
// first error is returned with its path.
func (b *Builder) Build(spec ProjectSpec, baseDir string) error {
	root := filepath.Join(baseDir, spec.ProjectName)

	exists, err := afero.Exists(b.fs, root)
	if err != nil {
		return &BuildError{Path: root, Err: err}
	}
	if exists {
		return &BuildError{Path: root, Err: ErrProjectExists}
	}

	b.logger.Debug("creating directory", "path", root)
	if err := b.fs.Mkdir(root, 0o755); err != nil {
		return &BuildError{Path: root, Err: err}
	}
	for _, dir := range DirectoryPlan(spec) {
		path := filepath.Join(root, dir)
		b.logger.Debug("creating directory", "path", path)
		if err := b.fs.Mkdir(path, 0o755); err != nil {
			return &BuildError{Path: path, Err: err}
		}
	}

	files, err := RenderTemplates(spec)
	if err != nil {
		return err
	}
	for _, f := range files {
		path := filepath.Join(root, f.Path)
		b.logger.Debug("writing file", "path", path)
		if err := afero.WriteFile(b.fs, path, []byte(f.Content), 0o644); err != nil {
			return &BuildError{Path: path, Err: err}
		}
	}

	return nil
}
