package assets

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FilesystemLoader serves assets from an operator-provided directory
// laid out as {base}/styles/{name}.css and {base}/templates/{name}.html.
// It validates names and confines every read to the base directory, so
// a hostile name or symlink cannot reach other files.
type FilesystemLoader struct {
	base string // absolute, symlink-resolved
}

// NewFilesystemLoader verifies dir is a readable directory and returns a
// loader rooted there. ErrInvalidBasePath covers every rejection so the
// caller can surface one configuration error.
func NewFilesystemLoader(dir string) (*FilesystemLoader, error) {
	if dir == "" {
		return nil, fmt.Errorf("%w: empty path", ErrInvalidBasePath)
	}

	base, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBasePath, err)
	}
	// Resolve symlinks up front so the containment prefix check below
	// compares real paths with real paths.
	if real, err := filepath.EvalSymlinks(base); err == nil {
		base = real
	}

	info, err := os.Stat(base)
	switch {
	case os.IsNotExist(err):
		return nil, fmt.Errorf("%w: %s does not exist", ErrInvalidBasePath, base)
	case err != nil:
		return nil, fmt.Errorf("%w: %v", ErrInvalidBasePath, err)
	case !info.IsDir():
		return nil, fmt.Errorf("%w: %s is not a directory", ErrInvalidBasePath, base)
	}
	if _, err := os.ReadDir(base); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBasePath, err)
	}

	return &FilesystemLoader{base: base}, nil
}

func (f *FilesystemLoader) LoadStyle(name string) (string, error) {
	return f.read("styles", name, ".css", ErrStyleNotFound)
}

func (f *FilesystemLoader) LoadTemplate(name string) (string, error) {
	return f.read("templates", name, ".html", ErrTemplateNotFound)
}

// read validates the name, confines the resulting path to the base
// directory, and reads it. A missing file maps to notFound so the
// resolver can fall back to the embedded copy; other failures are
// reported as ErrAssetRead and do not fall back.
func (f *FilesystemLoader) read(subdir, name, ext string, notFound error) (string, error) {
	if err := ValidateAssetName(name); err != nil {
		return "", err
	}

	path := filepath.Join(f.base, subdir, name+ext)
	if err := f.confine(path); err != nil {
		return "", err
	}

	content, err := os.ReadFile(path) // #nosec G304 -- name validated and path confined above
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w: %q", notFound, name)
		}
		return "", fmt.Errorf("%w: %v", ErrAssetRead, err)
	}
	return string(content), nil
}

// confine rejects any path that resolves outside the base directory,
// following symlinks. A path that does not exist yet is checked as
// written; the read that follows fails with not-found anyway.
func (f *FilesystemLoader) confine(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("%w: unresolvable path", ErrPathTraversal)
	}
	if real, err := filepath.EvalSymlinks(abs); err == nil {
		abs = real
	}

	// Separator-suffixed prefix so /base/x does not pass for /base/xy.
	if !strings.HasPrefix(abs, f.base+string(filepath.Separator)) {
		return fmt.Errorf("%w: %s", ErrPathTraversal, path)
	}
	return nil
}

var _ AssetLoader = (*FilesystemLoader)(nil)
