package assets

import (
	"encoding/base64"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// logoMIMETypes maps file extensions to MIME types for logo inlining.
var logoMIMETypes = map[string]string{
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".gif":  "image/gif",
	".webp": "image/webp",
	".svg":  "image/svg+xml",
}

// LoadLogoDataURI reads an image file and returns it as a base64 data URI
// suitable for inlining in an <img> src attribute.
// Returns ErrLogoNotFound if the file does not exist and ErrLogoFormat if
// the content is not recognized as an image.
func LoadLogoDataURI(path string) (string, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- logo path comes from deployment config
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w: %s", ErrLogoNotFound, path)
		}
		return "", fmt.Errorf("reading logo: %w", err)
	}

	mimeType, ok := logoMIMETypes[strings.ToLower(filepath.Ext(path))]
	if !ok {
		// Unknown extension: sniff the content instead of refusing outright.
		mimeType = http.DetectContentType(data)
		if !strings.HasPrefix(mimeType, "image/") {
			return "", fmt.Errorf("%w: %s", ErrLogoFormat, path)
		}
	}

	encoded := base64.StdEncoding.EncodeToString(data)
	return "data:" + mimeType + ";base64," + encoded, nil
}
