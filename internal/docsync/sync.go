package docsync

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/natefinch/atomic"
)

// Default locations, relative to the project root.
const (
	DefaultExamplePath = "src/example.rs"
	DefaultLibraryPath = "src/lib.rs"
	DefaultReadmePath  = "ReadMe.md"
)

// Paths locates the three documents. Relative entries are resolved against
// Root; empty entries fall back to the defaults.
type Paths struct {
	Root    string
	Example string
	Library string
	Readme  string
}

// DefaultPaths returns the conventional layout rooted at root.
func DefaultPaths(root string) Paths {
	return Paths{
		Root:    root,
		Example: DefaultExamplePath,
		Library: DefaultLibraryPath,
		Readme:  DefaultReadmePath,
	}
}

func (p Paths) resolve(rel, fallback string) string {
	if strings.TrimSpace(rel) == "" {
		rel = fallback
	}
	if filepath.IsAbs(rel) {
		return filepath.Clean(rel)
	}
	root := p.Root
	if root == "" {
		root = "."
	}
	return filepath.Join(root, rel)
}

func (p Paths) examplePath() string { return p.resolve(p.Example, DefaultExamplePath) }
func (p Paths) libraryPath() string { return p.resolve(p.Library, DefaultLibraryPath) }
func (p Paths) readmePath() string  { return p.resolve(p.Readme, DefaultReadmePath) }

// Output records one file rewritten by a run.
type Output struct {
	Path  string
	Bytes int
}

// Result lists the outputs of a successful run, library first.
type Result struct {
	Outputs []Output
}

// Synchronizer rewrites the library and README from the example.
type Synchronizer struct {
	paths     Paths
	logger    *slog.Logger
	writeFile func(path string, r io.Reader) error
}

// Option configures a Synchronizer.
type Option func(*Synchronizer)

// WithLogger routes progress records to logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Synchronizer) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// New returns a Synchronizer for paths.
func New(paths Paths, opts ...Option) *Synchronizer {
	s := &Synchronizer{
		paths:     paths,
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		writeFile: atomic.WriteFile,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run reads all three inputs, splices both outputs, then writes the library
// followed by the README. A read or splice failure aborts before anything is
// written. A failed README write leaves the new library in place.
func (s *Synchronizer) Run(ctx context.Context) (Result, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	examplePath := s.paths.examplePath()
	libraryPath := s.paths.libraryPath()
	readmePath := s.paths.readmePath()

	example, err := s.read("example", examplePath)
	if err != nil {
		return Result{}, err
	}
	library, err := s.read("library", libraryPath)
	if err != nil {
		return Result{}, err
	}
	readme, err := s.read("readme", readmePath)
	if err != nil {
		return Result{}, err
	}

	newLibrary, err := SpliceLibrary(example, library)
	if err != nil {
		return Result{}, err
	}
	newReadme, err := SpliceReadme(example, readme)
	if err != nil {
		return Result{}, err
	}

	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	var res Result
	for _, out := range []struct {
		path string
		text string
	}{
		{libraryPath, newLibrary},
		{readmePath, newReadme},
	} {
		written, err := s.write(out.path, out.text)
		if err != nil {
			return res, err
		}
		res.Outputs = append(res.Outputs, Output{Path: written, Bytes: len(out.text)})
	}
	return res, nil
}

func (s *Synchronizer) read(role, path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", &ResourceError{Role: role, Path: path, Err: err}
	}
	s.logger.Debug("read", "role", role, "path", path, "bytes", len(data))
	return string(data), nil
}

// write replaces the file at path, following symlinks so a linked README
// is updated at its target instead of having the link swapped for a copy.
// It returns the path actually written.
func (s *Synchronizer) write(path, text string) (string, error) {
	target := resolveTarget(path)
	if err := s.writeFile(target, strings.NewReader(text)); err != nil {
		return target, &WriteError{Path: target, Err: err}
	}
	s.logger.Info("wrote", "path", target, "bytes", len(text))
	return target, nil
}

// resolveTarget returns the file path refers to after following symlinks,
// or path itself when it cannot be resolved (for example it does not exist).
func resolveTarget(path string) string {
	if resolved, err := filepath.EvalSymlinks(path); err == nil {
		return resolved
	}
	return path
}
