package crs

import (
	"context"
	"errors"
	"math"
	"testing"
)

// fakeDriver stands in for a projection engine: x/y pass through, z is
// rescaled and shifted per the fixture.
type fakeDriver struct {
	zScale   float64
	zShift   float64
	calls    int
	failWith error
}

func (f *fakeDriver) Configure(Config) error { return nil }

func (f *fakeDriver) Transform(_ context.Context, _, _ int, x, y, z []float64) ([]float64, []float64, []float64, error) {
	f.calls++
	if f.failWith != nil {
		return nil, nil, nil, f.failWith
	}
	scale := f.zScale
	if scale == 0 {
		scale = 1
	}
	var tz []float64
	if z != nil {
		tz = make([]float64, len(z))
		for i, v := range z {
			tz[i] = v*scale + f.zShift
		}
	}
	return append([]float64(nil), x...), append([]float64(nil), y...), tz, nil
}

func (f *fakeDriver) Close() error { return nil }

func TestConvertIdentityPairSkipsDriver(t *testing.T) {
	f := &fakeDriver{failWith: errors.New("must not be called")}
	req := Request{
		SourceEPSG: 4326, TargetEPSG: 4326,
		X: []float64{-79.4}, Y: []float64{43.7}, Z: []float64{100},
		ZWarn: true,
	}
	res, err := Convert(context.Background(), f, req)
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	if f.calls != 0 {
		t.Fatalf("driver was invoked %d times on an identity pair", f.calls)
	}
	if res.X[0] != -79.4 || res.Y[0] != 43.7 || res.Z[0] != 100 {
		t.Fatalf("identity pass altered coordinates: %+v", res)
	}
	if res.ZChanged || res.Warning != nil {
		t.Fatalf("identity pass must carry no verdict, got changed=%v warning=%v", res.ZChanged, res.Warning)
	}
	res.X[0] = 0
	if req.X[0] != -79.4 {
		t.Fatal("result aliases the request slice")
	}
}

func TestConvertShapeMismatch(t *testing.T) {
	req := Request{SourceEPSG: 4326, TargetEPSG: 5703, X: []float64{1, 2}, Y: []float64{1}}
	_, err := Convert(context.Background(), &fakeDriver{}, req)
	var sm *ShapeMismatchError
	if !errors.As(err, &sm) {
		t.Fatalf("want ShapeMismatchError, got %v", err)
	}
	if sm.XLen != 2 || sm.YLen != 1 {
		t.Fatalf("mismatch lengths wrong: %+v", sm)
	}

	req = Request{SourceEPSG: 4326, TargetEPSG: 5703, X: []float64{1}, Y: []float64{1}, Z: []float64{1, 2}}
	if _, err := Convert(context.Background(), &fakeDriver{}, req); !errors.As(err, &sm) {
		t.Fatalf("want ShapeMismatchError for z, got %v", err)
	}
}

func TestConvertRejectsBadEPSG(t *testing.T) {
	req := Request{SourceEPSG: 0, TargetEPSG: 5703, X: []float64{1}, Y: []float64{1}}
	_, err := Convert(context.Background(), &fakeDriver{}, req)
	var ic *InvalidCRSError
	if !errors.As(err, &ic) {
		t.Fatalf("want InvalidCRSError, got %v", err)
	}
}

func TestConvertGenuineShift(t *testing.T) {
	f := &fakeDriver{zShift: 37.63}
	req := Request{
		SourceEPSG: 4979, TargetEPSG: 5498,
		X: []float64{-79.4, -79.0}, Y: []float64{43.7, 43.0}, Z: []float64{100, 110},
		ZWarn: true,
	}
	res, err := Convert(context.Background(), f, req)
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	if !res.ZChanged {
		t.Fatal("shifted elevations not reported as changed")
	}
	if res.Warning != nil {
		t.Fatalf("unexpected advisory: %v", res.Warning)
	}
	if math.Abs(res.Z[0]-137.63) > 1e-9 || math.Abs(res.Z[1]-147.63) > 1e-9 {
		t.Fatalf("z = %v, want shifted by 37.63", res.Z)
	}
}

func TestConvertUnchangedZWarns(t *testing.T) {
	req := Request{
		SourceEPSG: 5498, TargetEPSG: 5070,
		X: []float64{-79.4}, Y: []float64{43.7}, Z: []float64{100},
		ZWarn: true,
	}
	res, err := Convert(context.Background(), &fakeDriver{}, req)
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	if res.ZChanged {
		t.Fatal("identical z reported as changed")
	}
	if res.Warning == nil || res.Warning.Kind != WarnZUnchanged {
		t.Fatalf("want %s advisory, got %v", WarnZUnchanged, res.Warning)
	}
}

func TestConvertZWarnOffSuppressesAdvisory(t *testing.T) {
	req := Request{
		SourceEPSG: 5498, TargetEPSG: 5070,
		X: []float64{-79.4}, Y: []float64{43.7}, Z: []float64{100},
	}
	res, err := Convert(context.Background(), &fakeDriver{}, req)
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	if res.Warning != nil {
		t.Fatalf("advisory produced with ZWarn off: %v", res.Warning)
	}
	if res.ZChanged {
		t.Fatal("identical z reported as changed")
	}
}

func TestConvertUnitOnlyWarns(t *testing.T) {
	f := &fakeDriver{zScale: MToFt}
	req := Request{
		SourceEPSG: 5703, TargetEPSG: 6360,
		X: []float64{-79.4}, Y: []float64{43.7}, Z: []float64{100},
		ZWarn: true,
	}
	res, err := Convert(context.Background(), f, req)
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	if !res.ZChanged {
		t.Fatal("rescaled z not reported as changed")
	}
	if res.Warning == nil || res.Warning.Kind != WarnZUnitOnly {
		t.Fatalf("want %s advisory, got %v", WarnZUnitOnly, res.Warning)
	}
}

func TestConvert2DPass(t *testing.T) {
	f := &fakeDriver{zShift: 99}
	req := Request{
		SourceEPSG: 4326, TargetEPSG: 5070,
		X: []float64{-79.4}, Y: []float64{43.7},
		ZWarn: true,
	}
	res, err := Convert(context.Background(), f, req)
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	if res.Z != nil {
		t.Fatalf("2D pass produced z: %v", res.Z)
	}
	if res.ZChanged || res.Warning != nil {
		t.Fatalf("2D pass must carry no verdict, got changed=%v warning=%v", res.ZChanged, res.Warning)
	}
}

func TestConvertDriverErrorPropagates(t *testing.T) {
	boom := errors.New("grid download failed")
	f := &fakeDriver{failWith: boom}
	req := Request{SourceEPSG: 4326, TargetEPSG: 5703, X: []float64{1}, Y: []float64{1}}
	if _, err := Convert(context.Background(), f, req); !errors.Is(err, boom) {
		t.Fatalf("driver error lost: %v", err)
	}
}

func TestRegistry(t *testing.T) {
	tr, err := NewTransformer("identity")
	if err != nil {
		t.Fatalf("NewTransformer(identity): %v", err)
	}
	if _, ok := tr.(*IdentityDriver); !ok {
		t.Fatalf("got %T, want *IdentityDriver", tr)
	}
	if _, err := NewTransformer("nonesuch"); err == nil {
		t.Fatal("unknown driver did not error")
	}
}

func TestIdentityDriverRefusesDistinctPair(t *testing.T) {
	d := &IdentityDriver{}
	_, _, _, err := d.Transform(context.Background(), 4326, 5703, []float64{1}, []float64{1}, nil)
	var ic *InvalidCRSError
	if !errors.As(err, &ic) {
		t.Fatalf("want InvalidCRSError, got %v", err)
	}
	if ic.SourceEPSG != 4326 || ic.TargetEPSG != 5703 {
		t.Fatalf("error pair wrong: %+v", ic)
	}
}

// invertibleDriver applies a vertical shift whose sign follows the pair
// direction, so converting back recovers the original elevation.
type invertibleDriver struct{}

func (invertibleDriver) Configure(Config) error { return nil }

func (invertibleDriver) Transform(_ context.Context, src, dst int, x, y, z []float64) ([]float64, []float64, []float64, error) {
	shift := 37.6331231
	if src > dst {
		shift = -shift
	}
	var tz []float64
	if z != nil {
		tz = make([]float64, len(z))
		for i, v := range z {
			tz[i] = v + shift
		}
	}
	return append([]float64(nil), x...), append([]float64(nil), y...), tz, nil
}

func (invertibleDriver) Close() error { return nil }

func TestConvertRoundTrip(t *testing.T) {
	fwd := Request{
		SourceEPSG: 4979, TargetEPSG: 5498,
		X: []float64{-79.4, -79.0}, Y: []float64{43.7, 43.0}, Z: []float64{100, 146.6187439},
	}
	mid, err := Convert(context.Background(), invertibleDriver{}, fwd)
	if err != nil {
		t.Fatalf("forward Convert: %v", err)
	}
	if !mid.ZChanged {
		t.Fatal("forward pass did not register a z change")
	}
	back := Request{
		SourceEPSG: 5498, TargetEPSG: 4979,
		X: mid.X, Y: mid.Y, Z: mid.Z,
	}
	res, err := Convert(context.Background(), invertibleDriver{}, back)
	if err != nil {
		t.Fatalf("return Convert: %v", err)
	}
	for i := range fwd.Z {
		if math.Abs(res.Z[i]-fwd.Z[i]) > DefaultTolerance {
			t.Fatalf("round trip drifted at %d: %v -> %v", i, fwd.Z[i], res.Z[i])
		}
		if res.X[i] != fwd.X[i] || res.Y[i] != fwd.Y[i] {
			t.Fatalf("round trip moved the horizontal at %d", i)
		}
	}
}
