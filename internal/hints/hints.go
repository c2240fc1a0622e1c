// Package hints builds the "\n  hint: <text>" suffixes appended to
// operator-facing errors, so a failed start names its likely fix.
package hints

import (
	"os"
	"strings"

	"github.com/mss-eng/reportpdf/internal/fileutil"
)

// ciEnvVars mark the hosted CI systems this service is deployed from.
var ciEnvVars = []string{"CI", "GITHUB_ACTIONS", "GITLAB_CI", "JENKINS_URL"}

// IsInContainer reports whether the process runs inside Docker, keyed
// off the /.dockerenv marker. Overridable for tests.
var IsInContainer = func() bool {
	return fileutil.FileExists("/.dockerenv")
}

func inCI() bool {
	for _, v := range ciEnvVars {
		if os.Getenv(v) != "" {
			return true
		}
	}
	return false
}

// ForBrowserConnect suggests the rod environment knobs that unblock
// Chrome startup in containers and CI runners.
func ForBrowserConnect() string {
	var suggestions []string
	if (inCI() || IsInContainer()) && os.Getenv("ROD_NO_SANDBOX") != "1" {
		suggestions = append(suggestions, "set ROD_NO_SANDBOX=1 for Docker/CI")
	}
	if os.Getenv("ROD_BROWSER_BIN") == "" {
		suggestions = append(suggestions, "set ROD_BROWSER_BIN to use custom Chrome")
	}
	if len(suggestions) == 0 {
		return ""
	}
	return format(strings.Join(suggestions, "; "))
}

// ForTimeout returns a hint about increasing the render timeout.
func ForTimeout() string {
	return format("for large reports, raise render timeout_seconds in the config")
}

// ForConfigNotFound returns a hint for config file not found errors.
func ForConfigNotFound() string {
	return format("use --config /path/to/config.yaml or rely on environment variables")
}

// ForSpoolDir returns a hint for spool directory errors.
func ForSpoolDir() string {
	return format("check the spool directory exists and is writable, or set SPOOL_DIR")
}

// ForAssetsDir returns a hint for custom assets directory errors.
func ForAssetsDir() string {
	return format("check the assets directory exists with styles/ and templates/ subdirectories, or unset ASSETS_DIR")
}

func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}
