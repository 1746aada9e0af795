package crs

import (
	"context"
	"errors"
)

// Request is one conversion pass. X and Y must be equal length; Z is
// optional and empty means a 2D pass. Tolerance <= 0 selects
// DefaultTolerance.
type Request struct {
	SourceEPSG int
	TargetEPSG int
	X, Y, Z    []float64
	Tolerance  float64
	ZWarn      bool // advise when an expected elevation change did not happen
}

// Result holds the transformed coordinates and the elevation verdict.
type Result struct {
	X, Y, Z  []float64
	ZChanged bool
	Warning  *Warning
}

// Convert runs one conversion pass through t and validates the elevation
// outcome. Identity pairs never reach the driver: the outputs are copies of
// the inputs and no advisory applies.
func Convert(ctx context.Context, t Transformer, req Request) (Result, error) {
	if len(req.X) != len(req.Y) || (len(req.Z) > 0 && len(req.Z) != len(req.X)) {
		return Result{}, &ShapeMismatchError{XLen: len(req.X), YLen: len(req.Y), ZLen: len(req.Z)}
	}
	if req.SourceEPSG <= 0 || req.TargetEPSG <= 0 {
		return Result{}, &InvalidCRSError{
			SourceEPSG: req.SourceEPSG,
			TargetEPSG: req.TargetEPSG,
			Err:        errors.New("EPSG codes must be positive integers"),
		}
	}

	if req.SourceEPSG == req.TargetEPSG {
		return Result{
			X: append([]float64(nil), req.X...),
			Y: append([]float64(nil), req.Y...),
			Z: append([]float64(nil), req.Z...),
		}, nil
	}

	tx, ty, tz, err := t.Transform(ctx, req.SourceEPSG, req.TargetEPSG, req.X, req.Y, req.Z)
	if err != nil {
		return Result{}, err
	}

	res := Result{X: tx, Y: ty, Z: tz}
	if len(req.Z) > 0 {
		tol := req.Tolerance
		if tol <= 0 {
			tol = DefaultTolerance
		}
		res.ZChanged = ZChanged(req.Z, tz, tol)
		if req.ZWarn {
			res.Warning = ClassifyZ(req.Z, tz, tol)
		}
	}
	return res, nil
}
