/*
Package manifest loads and verifies the font catalog of the render
pipeline.

A manifest is a JSON file, produced by an offline provisioning step,
listing every font file the renderer may ever register: family name,
weight, covered script, relative file path, SHA-256 digest and size.
Load reads the catalog once, re-hashes every referenced file and refuses
to start on any mismatch. A corrupted or substituted font must never be
served.

After a successful Load the manifest is immutable and safe for
concurrent readers.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023–2026 Norbert Pillmayer <norbert@pillmayer.com>
*/
package manifest

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'textprep.fonts'
func tracer() tracing.Trace {
	return tracing.Select("textprep.fonts")
}
