// Package assets provides the CSS styles, HTML templates, and branding
// images used for report generation.
//
// Styles and templates are embedded at compile time under styles/ and
// templates/ and loaded by name. Deployments can shadow individual files
// through an override directory (AssetResolver); names missing there
// fall back to the embedded copies. The company logo is the one asset
// always read from disk: it is configured per deployment, loaded once
// at startup, and inlined into documents as a data URI so conversion
// never touches the network.
//
// Asset names are validated and filesystem reads are confined to the
// override directory to prevent path traversal.
package assets
