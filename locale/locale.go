// Package locale provides localized display names for the filter's
// user-facing strings: shape and blend mode labels, property captions and
// preset names.
//
// The package is pure data plus a language matcher; it renders no UI.
// Hosts pass the user's preferred BCP 47 tags (for example from the
// LANG environment variable) to Match and look strings up under the
// returned tag. Unknown languages fall back to English, as does any
// individually missing string.
package locale

import (
	"strings"

	"golang.org/x/text/language"
)

// Supported lists the languages shipped with the filter, English first.
var Supported = []language.Tag{
	language.English,
	language.German,
	language.Spanish,
	language.French,
	language.Japanese,
	language.Russian,
}

var matcher = language.NewMatcher(Supported)

// Match selects the best supported language for the given preferences.
// Preferences are BCP 47 tags ("de-AT", "ja"); malformed entries are
// skipped. With no usable preference it returns English.
func Match(prefs ...string) language.Tag {
	tags := make([]language.Tag, 0, len(prefs))
	for _, p := range prefs {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		// Accept POSIX locale strings: strip an encoding suffix like
		// ".UTF-8" and use BCP 47 subtag separators.
		if i := strings.IndexByte(p, '.'); i >= 0 {
			p = p[:i]
		}
		p = strings.ReplaceAll(p, "_", "-")
		if t, err := language.Parse(p); err == nil {
			tags = append(tags, t)
		}
	}
	if len(tags) == 0 {
		return language.English
	}
	_, idx, _ := matcher.Match(tags...)
	return Supported[idx]
}

type table map[string]string

// lookup returns the string for key under tag, falling back to English.
func lookup(tag language.Tag, key string) string {
	base, _ := tag.Base()
	if t, ok := strings2[base.String()]; ok {
		if s, ok := t[key]; ok {
			return s
		}
	}
	return strings2["en"][key]
}

// ShapeName returns the localized label for a shape's canonical name
// ("oval", "rectangle", "diamond", "star").
func ShapeName(tag language.Tag, shape string) string {
	return lookup(tag, "shape."+shape)
}

// BlendName returns the localized label for a blend mode's canonical
// name ("normal", "multiply", "screen", "overlay").
func BlendName(tag language.Tag, mode string) string {
	return lookup(tag, "blend."+mode)
}

// PropertyName returns the localized caption for a settings property
// ("inner_radius", "outer_radius", "opacity", "center", "aspect_ratio",
// "rotation", "shape", "shape_strength", "use_color", "color", "blend").
func PropertyName(tag language.Tag, prop string) string {
	return lookup(tag, "prop."+prop)
}

// PresetName returns the localized display name of a preset.
func PresetName(tag language.Tag, preset string) string {
	return lookup(tag, "preset."+preset)
}
