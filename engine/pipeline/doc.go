/*
Package pipeline prepares free-text record fields for PDF rendering.

The pipeline is the glue over the individual stages: sanitize the raw
string, segment it into script runs, separate shaping-incompatible runs,
and resolve every run against the verified font manifest. Each call is
pure and synchronous; the only shared resource is the immutable
manifest, so any number of documents may be prepared concurrently.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023–2026 Norbert Pillmayer <norbert@pillmayer.com>
*/
package pipeline

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'textprep.pipeline'
func tracer() tracing.Trace {
	return tracing.Select("textprep.pipeline")
}
