/*
Package font handles loading and identifying font files.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023–2026 Norbert Pillmayer <norbert@pillmayer.com>
*/
package font

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'textprep.fonts'
func tracer() tracing.Trace {
	return tracing.Select("textprep.fonts")
}
