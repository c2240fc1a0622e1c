package assets

// AssetLoader supplies the stylesheets and page templates the renderers
// are built from. The service uses two implementations: EmbeddedLoader
// for the compiled-in defaults and FilesystemLoader for an operator
// override directory, combined by AssetResolver.
type AssetLoader interface {
	// LoadStyle returns the CSS registered under name ("report",
	// "legacy"). ErrStyleNotFound when absent, ErrInvalidAssetName when
	// the name is not a bare identifier.
	LoadStyle(name string) (string, error)

	// LoadTemplate returns the HTML template registered under name.
	// ErrTemplateNotFound when absent, ErrInvalidAssetName when the
	// name is not a bare identifier.
	LoadTemplate(name string) (string, error)
}
