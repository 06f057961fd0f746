package language

import "slices"

// pairs lists, per source language, the targets the backend can serve.
// Target order is significant: the first entry is the default selection.
// Pairs are not symmetric.
var pairs = map[string][]string{
	"en": {"es", "ru", "zh", "hi", "ar", "fr"},
	"es": {"en"},
	"ru": {"en", "zh", "hi"},
	"zh": {"en", "ru", "es", "fr", "hi", "ar", "ja"},
	"fr": {"en", "zh", "hi"},
	"de": {"en", "ru", "hi"},
	"ar": {"en", "zh", "hi"},
	"hi": {"en"},
	"ja": {"en", "es", "hi"},
}

// PermittedTargets returns the targets permitted for source, in registry
// order. Unknown sources have no targets.
func PermittedTargets(source string) []string {
	targets, ok := pairs[source]
	if !ok {
		return []string{}
	}
	return slices.Clone(targets)
}

// IsPermitted reports whether source→target is a registered pair.
func IsPermitted(source, target string) bool {
	return slices.Contains(pairs[source], target)
}

// DefaultTarget returns the first permitted target for source, or "" when
// source has none.
func DefaultTarget(source string) string {
	targets := pairs[source]
	if len(targets) == 0 {
		return ""
	}
	return targets[0]
}

// TargetOptions returns catalog entries for the permitted targets of source.
func TargetOptions(source string) []Option {
	targets := pairs[source]
	out := make([]Option, 0, len(targets))
	for _, code := range targets {
		out = append(out, Describe(code))
	}
	return out
}
