package assets

import "errors"

// AssetResolver layers an optional custom directory over the embedded
// assets. A custom file shadows its embedded counterpart; a name absent
// from the custom directory falls through to the embedded copy. Errors
// other than not-found (bad names, unreadable files, escaped paths) are
// returned as-is rather than masked by a fallback.
type AssetResolver struct {
	custom   AssetLoader // nil without an override directory
	embedded AssetLoader
}

// NewAssetResolver builds the loader stack for the service. With an
// empty customDir only embedded assets are served; otherwise customDir
// must be a usable override directory.
func NewAssetResolver(customDir string) (*AssetResolver, error) {
	r := &AssetResolver{embedded: NewEmbeddedLoader()}
	if customDir == "" {
		return r, nil
	}

	fs, err := NewFilesystemLoader(customDir)
	if err != nil {
		return nil, err
	}
	r.custom = fs
	return r, nil
}

func (r *AssetResolver) LoadStyle(name string) (string, error) {
	return resolve(r, name, AssetLoader.LoadStyle)
}

func (r *AssetResolver) LoadTemplate(name string) (string, error) {
	return resolve(r, name, AssetLoader.LoadTemplate)
}

// resolve applies the shadowing rule for one asset lookup.
func resolve(r *AssetResolver, name string, load func(AssetLoader, string) (string, error)) (string, error) {
	if r.custom != nil {
		content, err := load(r.custom, name)
		if err == nil {
			return content, nil
		}
		if !isNotFoundError(err) {
			return "", err
		}
	}
	return load(r.embedded, name)
}

// isNotFoundError reports whether err only means the asset is absent,
// the one condition that permits falling back to the embedded copy.
func isNotFoundError(err error) bool {
	return errors.Is(err, ErrStyleNotFound) || errors.Is(err, ErrTemplateNotFound)
}

// HasCustomLoader reports whether an override directory is configured.
func (r *AssetResolver) HasCustomLoader() bool {
	return r.custom != nil
}

var _ AssetLoader = (*AssetResolver)(nil)
