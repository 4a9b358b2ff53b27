// Package dimen implements dimensions and units.
/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023–2026 Norbert Pillmayer <norbert@pillmayer.com>
*/
package dimen

import "fmt"

// Dimen is a dimension type.
// Values are in scaled big points.
type Dimen int32

// Some pre-defined dimensions
const (
	Zero Dimen = 0
	SP   Dimen = 1     // scaled point = BP / 65536
	BP   Dimen = 65536 // big point (PDF) = 1/72 inch
	PT   Dimen = 65291 // printers point 1/72.27 inch
)

// Stringer implementation.
func (d Dimen) String() string {
	return fmt.Sprintf("%dsp", int32(d))
}

// Points returns a dimension in big (PDF) points.
func (d Dimen) Points() float64 {
	return float64(d) / float64(BP)
}
