package assets

import "errors"

// Errors reported by loaders and the resolver. The not-found sentinels
// are what AssetResolver keys its embedded fallback on, so loaders
// return them either bare or wrapped with %w.
var (
	// ErrStyleNotFound reports a style name with no backing .css file.
	ErrStyleNotFound = errors.New("style not found")

	// ErrTemplateNotFound reports a template name with no backing .html file.
	ErrTemplateNotFound = errors.New("template not found")

	// ErrInvalidAssetName rejects names carrying path separators, dots,
	// or null bytes.
	ErrInvalidAssetName = errors.New("invalid asset name")

	// ErrInvalidBasePath rejects an override directory that is missing,
	// unreadable, or not a directory.
	ErrInvalidBasePath = errors.New("invalid asset base path")

	// ErrPathTraversal reports a resolved asset path escaping the
	// override directory, usually through a symlink.
	ErrPathTraversal = errors.New("asset path escapes base directory")

	// ErrAssetRead reports an asset that exists but could not be read.
	ErrAssetRead = errors.New("failed to read asset")

	// ErrLogoNotFound reports a configured logo path with no file behind it.
	ErrLogoNotFound = errors.New("logo file not found")

	// ErrLogoFormat reports a logo in an image format the data URI
	// embedding does not support.
	ErrLogoFormat = errors.New("unsupported logo format")
)
