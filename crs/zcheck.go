package crs

import "math"

// Conversion factors between the two vertical units common in hydrologic
// datasets. Unit-only detection compares at two decimals, matching the
// coarse precision of published foot-based datums.
const (
	FtToM = 0.3048
	MToFt = 3.28084
)

// DefaultTolerance is the elevation comparison epsilon applied when a
// request does not set one.
const DefaultTolerance = 1e-6

// WarningKind classifies advisory findings about an elevation conversion.
type WarningKind string

const (
	WarnZUnchanged WarningKind = "z_unchanged" // transform left every z as it was
	WarnZUnitOnly  WarningKind = "z_unit_only" // only a meters/feet rescale happened
)

// Warning is advisory. It is reported alongside a successful result and
// logged, never returned as an error.
type Warning struct {
	Kind    WarningKind
	Message string
}

func (w *Warning) String() string { return w.Message }

// ZChanged reports whether any elevation moved by more than tol.
func ZChanged(z, tz []float64, tol float64) bool {
	for i := range z {
		if math.Abs(z[i]-tz[i]) > tol {
			return true
		}
	}
	return false
}

// ClassifyZ inspects elevations after a transform that was expected to alter
// them and returns the matching advisory, or nil when the change looks like
// a genuine datum shift.
func ClassifyZ(z, tz []float64, tol float64) *Warning {
	if !ZChanged(z, tz, tol) {
		return &Warning{
			Kind:    WarnZUnchanged,
			Message: "z values were not altered by the transformation; the CRS pair may lack a vertical element",
		}
	}
	if unitOnly(z, tz) {
		return &Warning{
			Kind:    WarnZUnitOnly,
			Message: "z values only moved between meters and feet; the CRS pair may lack a vertical element",
		}
	}
	return nil
}

// unitOnly reports whether every output z is the input rescaled by exactly
// one of the two unit factors.
func unitOnly(z, tz []float64) bool {
	if len(z) == 0 {
		return false
	}
	ftm, mft := true, true
	for i := range z {
		out := round2(tz[i])
		if out != round2(z[i]*FtToM) {
			ftm = false
		}
		if out != round2(z[i]*MToFt) {
			mft = false
		}
		if !ftm && !mft {
			return false
		}
	}
	return ftm || mft
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }
