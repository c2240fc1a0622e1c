// Package yamlutil isolates the YAML dependency behind a strict decoder.
//
// Service configuration is the only YAML surface in this repository, and
// unknown keys there are almost always typos, so lenient decoding is not
// offered.
package yamlutil

import (
	"errors"
	"fmt"

	"github.com/goccy/go-yaml"
)

// MaxInputSize caps accepted YAML input. Config files are a few hundred
// bytes; anything near this limit is not a config file.
var MaxInputSize = 1 << 20

var (
	ErrEmptyInput = errors.New("yamlutil: empty input")
	ErrTooLarge   = errors.New("yamlutil: input exceeds size limit")
	ErrBadTarget  = errors.New("yamlutil: nil decode target")
)

// DecodeStrict parses data into v and rejects unknown fields.
func DecodeStrict(data []byte, v any) error {
	if len(data) == 0 {
		return ErrEmptyInput
	}
	if len(data) > MaxInputSize {
		return fmt.Errorf("%w: %d bytes (max %d)", ErrTooLarge, len(data), MaxInputSize)
	}
	if v == nil {
		return ErrBadTarget
	}

	if err := yaml.UnmarshalWithOptions(data, v, yaml.Strict()); err != nil {
		return fmt.Errorf("yamlutil: %w", err)
	}
	return nil
}
