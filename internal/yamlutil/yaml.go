// Package yamlutil keeps the YAML library behind one small seam so config
// loading never imports it directly.
package yamlutil

import (
	"errors"
	"fmt"

	"github.com/goccy/go-yaml"
)

// MaxInputSize caps config documents (1MB).
var MaxInputSize = 1 << 20

var (
	ErrNilData        = errors.New("yamlutil: nil or empty data")
	ErrNilDestination = errors.New("yamlutil: nil destination pointer")
	ErrInputTooLarge  = errors.New("yamlutil: input exceeds maximum size")
)

func checkInput(data []byte, v any) error {
	switch {
	case len(data) == 0:
		return ErrNilData
	case len(data) > MaxInputSize:
		return fmt.Errorf("%w: %d bytes (max %d)", ErrInputTooLarge, len(data), MaxInputSize)
	case v == nil:
		return ErrNilDestination
	}
	return nil
}

// UnmarshalStrict decodes data into v and rejects unknown keys, so a typo in
// a config file surfaces instead of being silently dropped.
func UnmarshalStrict(data []byte, v any) error {
	return decode(data, v, yaml.Strict())
}

// Marshal encodes v as YAML.
func Marshal(v any) ([]byte, error) {
	out, err := yaml.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("yamlutil: %w", err)
	}
	return out, nil
}

func decode(data []byte, v any, opts ...yaml.DecodeOption) error {
	if err := checkInput(data, v); err != nil {
		return err
	}
	if err := yaml.UnmarshalWithOptions(data, v, opts...); err != nil {
		return fmt.Errorf("yamlutil: %w", err)
	}
	return nil
}
