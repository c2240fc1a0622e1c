package assets

import (
	"errors"
	"strings"
	"testing"
)

func TestValidateAssetName(t *testing.T) {
	t.Parallel()

	valid := []string{"report", "legacy", "report-v2", "report_2024", "Report7"}
	for _, name := range valid {
		if err := ValidateAssetName(name); err != nil {
			t.Errorf("ValidateAssetName(%q) = %v, want nil", name, err)
		}
	}

	invalid := []struct {
		name  string
		input string
	}{
		{name: "empty", input: ""},
		{name: "subdirectory", input: "styles/report"},
		{name: "windows path", input: `styles\report`},
		{name: "parent traversal", input: "../secret"},
		{name: "deep traversal", input: "../../etc/passwd"},
		{name: "extension smuggling", input: "report.css"},
		{name: "hidden file", input: ".hidden"},
		{name: "absolute path", input: "/etc/passwd"},
		{name: "drive path", input: `C:\Windows`},
		{name: "dot", input: "."},
		{name: "dot dot", input: ".."},
		{name: "null byte", input: "report\x00"},
	}
	for _, tt := range invalid {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := ValidateAssetName(tt.input)
			if !errors.Is(err, ErrInvalidAssetName) {
				t.Errorf("ValidateAssetName(%q) = %v, want %v", tt.input, err, ErrInvalidAssetName)
			}
		})
	}
}

func TestValidateAssetName_ErrorNamesTheInput(t *testing.T) {
	t.Parallel()

	err := ValidateAssetName("../evil")
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "../evil") {
		t.Errorf("error %q should quote the rejected name", err)
	}
}
