// Package fileutil provides small file helpers shared by the converters.
package fileutil

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// ErrBadExtension reports an extension unusable in a temp file name.
var ErrBadExtension = errors.New("invalid temp file extension")

// tempPattern builds the os.CreateTemp pattern for a scratch file. The
// fixed prefix keeps service files recognizable in the temp directory,
// which the artifact sweeper and operators rely on.
func tempPattern(extension string) (string, error) {
	switch {
	case extension == "":
		return "", fmt.Errorf("%w: empty", ErrBadExtension)
	case strings.ContainsAny(extension, "/\\\x00"):
		return "", fmt.Errorf("%w: %q contains a path separator or null byte", ErrBadExtension, extension)
	}
	return "reportpdf-*." + extension, nil
}

// WriteTempFile writes content to a fresh temp file named with the given
// extension ("html", "css"). The caller removes the file via cleanup; on
// error no file is left behind.
func WriteTempFile(content, extension string) (path string, cleanup func(), err error) {
	pattern, err := tempPattern(extension)
	if err != nil {
		return "", nil, err
	}

	f, err := os.CreateTemp("", pattern)
	if err != nil {
		return "", nil, fmt.Errorf("creating temp file: %w", err)
	}
	path = f.Name()
	cleanup = func() { _ = os.Remove(path) }

	_, err = f.WriteString(content)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		cleanup()
		return "", nil, fmt.Errorf("writing temp file %s: %w", path, err)
	}
	return path, cleanup, nil
}

// FileExists reports whether path names an existing regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
