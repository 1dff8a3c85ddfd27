package core

import (
	"slices"
	"strings"

	"github.com/mmmkit/decomp/schema"
	"github.com/zeebo/xxh3"
)

// ColorFor returns the display colour for a series key.
func ColorFor(key string, overrides map[string]string) string {
	return ResolveColor(key, overrides).Color
}

// ResolveColor returns the colour for key along with where it came from.
// Precedence: exact override, curated well-known key, hashed palette entry.
func ResolveColor(key string, overrides map[string]string) schema.ColorAssignment {
	if c, ok := overrides[key]; ok {
		return schema.ColorAssignment{Key: key, Color: c, Source: schema.OverrideColorSource}
	}
	if c, ok := schema.GroupColors[strings.ToLower(key)]; ok {
		return schema.ColorAssignment{Key: key, Color: c, Source: schema.WellKnownColorSource}
	}
	return schema.ColorAssignment{Key: key, Color: hashedColor(key), Source: schema.HashColorSource}
}

// VariableColor colours a variable by its position within the group's
// variable list. Names outside the list fall back to the hashed palette.
func VariableColor(name string, all []string, overrides map[string]string) schema.ColorAssignment {
	if c, ok := overrides[name]; ok {
		return schema.ColorAssignment{Key: name, Color: c, Source: schema.OverrideColorSource}
	}
	if idx := slices.Index(all, name); idx >= 0 {
		palette := schema.VariablePalette
		return schema.ColorAssignment{Key: name, Color: palette[idx%len(palette)], Source: schema.PaletteColorSource}
	}
	return schema.ColorAssignment{Key: name, Color: hashedColor(name), Source: schema.HashColorSource}
}

// ColorMap resolves colours for keys, as group keys or as variables.
func ColorMap(keys []string, overrides map[string]string, asVariables bool) map[string]string {
	colors := make(map[string]string, len(keys))
	for _, k := range keys {
		if asVariables {
			colors[k] = VariableColor(k, keys, overrides).Color
		} else {
			colors[k] = ColorFor(k, overrides)
		}
	}
	return colors
}

// hashedColor is stable across processes for the same key.
func hashedColor(key string) string {
	palette := schema.FallbackPalette
	return palette[xxh3.HashString(key)%uint64(len(palette))]
}
