package hints

// Notes:
// - The ForBrowserConnect tests mutate the process environment and the
//   IsInContainer hook, so none of them run in parallel.

import (
	"strings"
	"testing"
)

// setBrowserEnv pins every input ForBrowserConnect reads so the ambient
// test environment (which may itself be CI) cannot leak in.
func setBrowserEnv(t *testing.T, inContainer bool, env map[string]string) {
	t.Helper()

	orig := IsInContainer
	t.Cleanup(func() { IsInContainer = orig })
	IsInContainer = func() bool { return inContainer }

	for _, v := range append([]string{"ROD_NO_SANDBOX", "ROD_BROWSER_BIN"}, ciEnvVars...) {
		t.Setenv(v, "")
	}
	for k, v := range env {
		t.Setenv(k, v)
	}
}

func TestForBrowserConnect(t *testing.T) {
	tests := []struct {
		name        string
		inContainer bool
		env         map[string]string
		want        []string
		wantAbsent  []string
	}{
		{
			name: "CI without sandbox flag",
			env:  map[string]string{"CI": "true"},
			want: []string{"hint:", "ROD_NO_SANDBOX", "ROD_BROWSER_BIN"},
		},
		{
			name:        "container without sandbox flag",
			inContainer: true,
			want:        []string{"ROD_NO_SANDBOX"},
		},
		{
			name:        "sandbox flag already set",
			inContainer: true,
			env:         map[string]string{"ROD_NO_SANDBOX": "1"},
			wantAbsent:  []string{"ROD_NO_SANDBOX"},
		},
		{
			name:       "browser bin already set",
			env:        map[string]string{"ROD_BROWSER_BIN": "/usr/bin/chromium"},
			wantAbsent: []string{"ROD_BROWSER_BIN"},
		},
		{
			name:        "everything configured yields no hint",
			inContainer: true,
			env: map[string]string{
				"CI":              "true",
				"ROD_NO_SANDBOX":  "1",
				"ROD_BROWSER_BIN": "/usr/bin/chromium",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setBrowserEnv(t, tt.inContainer, tt.env)

			hint := ForBrowserConnect()

			if len(tt.want) == 0 && len(tt.wantAbsent) == 0 && hint != "" {
				t.Fatalf("ForBrowserConnect() = %q, want empty", hint)
			}
			for _, w := range tt.want {
				if !strings.Contains(hint, w) {
					t.Errorf("ForBrowserConnect() = %q, missing %q", hint, w)
				}
			}
			for _, w := range tt.wantAbsent {
				if strings.Contains(hint, w) {
					t.Errorf("ForBrowserConnect() = %q, should not mention %q", hint, w)
				}
			}
		})
	}
}

func TestStaticHints(t *testing.T) {
	tests := []struct {
		name string
		hint string
		want string
	}{
		{name: "timeout", hint: ForTimeout(), want: "timeout_seconds"},
		{name: "config not found", hint: ForConfigNotFound(), want: "--config"},
		{name: "spool dir", hint: ForSpoolDir(), want: "SPOOL_DIR"},
		{name: "assets dir", hint: ForAssetsDir(), want: "ASSETS_DIR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !strings.HasPrefix(tt.hint, "\n  hint: ") {
				t.Errorf("hint %q missing the standard prefix", tt.hint)
			}
			if !strings.Contains(tt.hint, tt.want) {
				t.Errorf("hint %q missing %q", tt.hint, tt.want)
			}
		})
	}
}
