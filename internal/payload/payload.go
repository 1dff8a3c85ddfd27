// Package payload loads model evaluation payloads and colour override files from disk.
package payload

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mmmkit/decomp/schema"
	"gopkg.in/yaml.v3"
)

// ErrUnsupportedFormat is returned for files whose extension is not understood.
var ErrUnsupportedFormat = errors.New("unsupported file format")

// LoadModel reads a model payload from a JSON file. The model name defaults
// to the file's base name, and groups without their own dates inherit the
// top-level dates.
func LoadModel(path string) (*schema.ModelPayload, error) {
	if ext := strings.ToLower(filepath.Ext(path)); ext != ".json" {
		return nil, fmt.Errorf("%w: %s (expected .json)", ErrUnsupportedFormat, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read payload %s: %w", path, err)
	}

	return DecodeModel(data, strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)))
}

// DecodeModel parses a JSON model payload. defaultName is used when the
// payload carries no model name.
func DecodeModel(data []byte, defaultName string) (*schema.ModelPayload, error) {
	var p schema.ModelPayload
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to decode payload: %w", err)
	}
	if strings.TrimSpace(p.Model) == "" {
		p.Model = defaultName
	}
	for i := range p.Groups {
		if p.Groups[i].Dates == nil {
			p.Groups[i].Dates = p.Dates
		}
	}
	return &p, nil
}

// LoadColorOverrides reads a key -> colour mapping from a YAML or JSON file.
// Keys keep their case.
func LoadColorOverrides(path string) (map[string]string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml", ".json":
	default:
		return nil, fmt.Errorf("%w: %s (expected .yaml, .yml or .json)", ErrUnsupportedFormat, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read colour overrides %s: %w", path, err)
	}

	overrides := make(map[string]string)
	if err := yaml.Unmarshal(data, &overrides); err != nil {
		return nil, fmt.Errorf("failed to decode colour overrides %s: %w", path, err)
	}
	for k, v := range overrides {
		if strings.TrimSpace(v) == "" {
			return nil, fmt.Errorf("colour override for %q is empty", k)
		}
	}
	return overrides, nil
}
