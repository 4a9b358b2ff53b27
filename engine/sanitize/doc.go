/*
Package sanitize repairs raw database strings into render-safe text.

Sanitization is a fixed, ordered list of total transformations over an
immutable input: NFC normalization, stripping of a banned character set,
smart-punctuation mapping, Thai grapheme repair, space collapsing. Each
stage returns a new string; the whole chain is idempotent and can never
fail. Irregularities found along the way are reported as anomalies, not
errors.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023–2026 Norbert Pillmayer <norbert@pillmayer.com>
*/
package sanitize

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'textprep.text'
func tracer() tracing.Trace {
	return tracing.Select("textprep.text")
}
