/*
Package scriptrun splits sanitized text into maximal runs of a single
script category and separates runs whose glyph metrics must not be
shaped together.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023–2026 Norbert Pillmayer <norbert@pillmayer.com>
*/
package scriptrun

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'textprep.text'
func tracer() tracing.Trace {
	return tracing.Select("textprep.text")
}
