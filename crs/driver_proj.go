//go:build cgo

package crs

import (
	"context"
	"fmt"
	"os"

	proj "github.com/twpayne/go-proj/v11"
)

// ProjAvailable reports whether this binary carries the native PROJ engine.
const ProjAvailable = true

func init() { Register("proj", func() Transformer { return &ProjDriver{} }) }

// ProjDriver delegates conversion to the PROJ engine through its C bindings.
// One CRS-to-CRS transformation is built per EPSG pair and reused across
// calls; building one may download transformation grids when networking is
// enabled. A driver instance serves a single caller at a time.
type ProjDriver struct {
	cfg   Config
	cache map[[2]int]*proj.PJ
}

func (d *ProjDriver) Configure(cfg Config) error {
	d.cfg = cfg
	d.cache = make(map[[2]int]*proj.PJ)
	if cfg.Network {
		// PROJ reads this when it builds a transformation; grids for
		// vertical datum shifts are fetched from cdn.proj.org on demand.
		return os.Setenv("PROJ_NETWORK", "ON")
	}
	return os.Unsetenv("PROJ_NETWORK")
}

func (d *ProjDriver) pipeline(source, target int) (*proj.PJ, error) {
	key := [2]int{source, target}
	if pj, ok := d.cache[key]; ok {
		return pj, nil
	}
	pj, err := proj.NewCRSToCRS(fmt.Sprintf("EPSG:%d", source), fmt.Sprintf("EPSG:%d", target), nil)
	if err != nil {
		return nil, &InvalidCRSError{SourceEPSG: source, TargetEPSG: target, Err: err}
	}
	// Accept lon/lat (x, y) ordering regardless of the authority axis
	// definition, like cs2cs -f and pyproj's always_xy.
	pj, err = pj.NormalizeForVisualization()
	if err != nil {
		return nil, &InvalidCRSError{SourceEPSG: source, TargetEPSG: target, Err: err}
	}
	d.cache[key] = pj
	return pj, nil
}

func (d *ProjDriver) Transform(ctx context.Context, sourceEPSG, targetEPSG int, x, y, z []float64) ([]float64, []float64, []float64, error) {
	if d.cache == nil {
		return nil, nil, nil, fmt.Errorf("proj: driver not configured")
	}
	if err := ctx.Err(); err != nil {
		return nil, nil, nil, err
	}
	pj, err := d.pipeline(sourceEPSG, targetEPSG)
	if err != nil {
		return nil, nil, nil, err
	}

	tx := make([]float64, len(x))
	ty := make([]float64, len(y))
	var tz []float64
	if z != nil {
		tz = make([]float64, len(z))
	}
	for i := range x {
		var zi float64
		if tz != nil {
			zi = z[i]
		}
		out, err := pj.Forward(proj.NewCoord(x[i], y[i], zi, 0))
		if err != nil {
			return nil, nil, nil, fmt.Errorf("proj: transform point %d: %w", i, err)
		}
		tx[i], ty[i] = out.X(), out.Y()
		if tz != nil {
			tz[i] = out.Z()
		}
	}
	return tx, ty, tz, nil
}

// Close drops the cached transformations; the bindings reclaim the native
// objects through their finalizers.
func (d *ProjDriver) Close() error {
	d.cache = nil
	return nil
}
