/*
Package locate finds fallback fonts outside the verified manifest.

When the manifest has no coverage for a script and the caller opts into
degraded rendering, a system-installed font may be substituted. Fonts
found here are NOT integrity-checked; callers log their use as an
anomaly.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023–2026 Norbert Pillmayer <norbert@pillmayer.com>
*/
package locate

import (
	"github.com/flopp/go-findfont"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/textprep/core/font"
)

// tracer writes to trace with key 'textprep.fonts'
func tracer() tracing.Trace {
	return tracing.Select("textprep.fonts")
}

// SystemFont searches the platform's font directories for a font file
// matching name.
func SystemFont(name string) (string, error) {
	return findfont.Find(name)
}

// FallbackFont returns a best-effort substitute font: a system font
// matching name if one is installed, the embedded Go Sans otherwise.
// It never fails.
func FallbackFont(name string) *font.ScalableFont {
	if name != "" {
		if fpath, err := findfont.Find(name); err == nil && fpath != "" {
			if f, err := font.LoadOpenTypeFont(fpath); err == nil {
				tracer().Infof("substituting system font %s for %q", fpath, name)
				return f
			}
		}
	}
	tracer().Infof("no system font for %q, falling back on Go Sans", name)
	return font.FallbackFont()
}
