package assets

import "fmt"

// ValidateAssetName rejects names that could address files outside the
// asset directories. Names are bare identifiers ("report", "legacy");
// loaders append the directory and extension themselves, so separators
// and dots have no legitimate use in a name.
func ValidateAssetName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidAssetName)
	}
	for _, r := range name {
		switch r {
		case '/', '\\', '.', 0:
			return fmt.Errorf("%w: %q", ErrInvalidAssetName, name)
		}
	}
	return nil
}
