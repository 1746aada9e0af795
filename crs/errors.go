package crs

import "fmt"

// InvalidCRSError reports an EPSG pair the underlying engine cannot service.
type InvalidCRSError struct {
	SourceEPSG int
	TargetEPSG int
	Err        error
}

func (e *InvalidCRSError) Error() string {
	return fmt.Sprintf("crs: no transformation from EPSG:%d to EPSG:%d: %v", e.SourceEPSG, e.TargetEPSG, e.Err)
}

func (e *InvalidCRSError) Unwrap() error { return e.Err }

// ShapeMismatchError reports coordinate slices of unequal length.
type ShapeMismatchError struct {
	XLen, YLen, ZLen int
}

func (e *ShapeMismatchError) Error() string {
	return fmt.Sprintf("crs: coordinate arrays must be equal length (x=%d y=%d z=%d)", e.XLen, e.YLen, e.ZLen)
}
