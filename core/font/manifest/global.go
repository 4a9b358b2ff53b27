package manifest

import (
	"sync"

	"github.com/npillmayer/schuko/gconf"
	"github.com/npillmayer/textprep/core"
)

var globalManifest *Manifest
var globalErr error
var globalLoading sync.Once

// LoadGlobal loads the application-wide manifest singleton. The first
// call decides the manifest path; later calls return the same manifest
// (or the same load failure) regardless of their argument. An empty
// path falls back to the application configuration key "font-manifest".
//
// Downstream code holds the returned manifest read-only, so it may be
// shared by any number of concurrent render requests without locking.
func LoadGlobal(manifestPath string) (*Manifest, error) {
	globalLoading.Do(func() {
		if manifestPath == "" {
			manifestPath = gconf.GetString("font-manifest")
		}
		if manifestPath == "" {
			globalErr = core.Error(core.EMISSING, "no font manifest path given or configured")
			return
		}
		globalManifest, globalErr = Load(manifestPath)
	})
	return globalManifest, globalErr
}

// Global returns the manifest singleton, or nil if LoadGlobal has not
// been called successfully yet.
func Global() *Manifest {
	return globalManifest
}
