package bmi

import (
	"context"
	"fmt"
	"math"

	"datumsync/crs"
	"datumsync/internal/logging"
	"datumsync/internal/telemetry"
)

// Phase is the lifecycle position of a model instance.
type Phase int

const (
	Uninitialized Phase = iota
	Initialized
	Updated
	Finalized
)

func (p Phase) String() string {
	switch p {
	case Uninitialized:
		return "uninitialized"
	case Initialized:
		return "initialized"
	case Updated:
		return "updated"
	case Finalized:
		return "finalized"
	}
	return fmt.Sprintf("phase(%d)", int(p))
}

// DatumSync re-projects coordinate variables between two reference systems
// on every update pass. An instance serves one caller and is not safe for
// concurrent use.
type DatumSync struct {
	phase Phase
	cfg   Config
	tr    crs.Transformer

	inputNames  []string
	outputNames []string
	values      map[string][]float64

	clock    float64 // completed update passes, or the UpdateUntil target
	zChanged bool
}

var _ Model = (*DatumSync)(nil)

// NewDatumSync returns a model in the Uninitialized phase.
func NewDatumSync() *DatumSync {
	return &DatumSync{phase: Uninitialized}
}

/*──────────────────────── lifecycle ───────────────────────*/

// Initialize loads configuration, builds the transform driver, and exposes
// the model variables. Valid exactly once, from the Uninitialized phase.
func (m *DatumSync) Initialize(configFile string) error {
	if m.phase != Uninitialized {
		return &LifecycleError{Op: "Initialize", Phase: m.phase}
	}
	cfg, err := LoadConfig(configFile)
	if err != nil {
		return err
	}
	tr, err := crs.NewTransformer(cfg.Driver)
	if err != nil {
		return &ConfigError{Err: err}
	}
	if err := tr.Configure(crs.Config{Network: cfg.Network}); err != nil {
		return &ConfigError{Err: err}
	}

	m.cfg = cfg
	m.tr = tr
	m.inputNames = []string{cfg.Variables.X, cfg.Variables.Y, cfg.Variables.Z, VarCRSInput, VarCRSOutput, VarZWarn}
	m.outputNames = []string{cfg.Variables.Output}
	m.values = map[string][]float64{
		VarCRSInput:  {float64(cfg.CRSInput)},
		VarCRSOutput: {float64(cfg.CRSOutput)},
		VarZWarn:     {boolVal(cfg.ZWarn)},
	}
	m.clock = 0
	m.phase = Initialized
	logging.L().Info("datumsync initialized",
		"crs_in", cfg.CRSInput, "crs_out", cfg.CRSOutput, "driver", cfg.Driver)
	return nil
}

// Update runs one conversion pass over the currently bound coordinates and
// stores [x..., y..., z...] in the output variable. Longitude and latitude
// must have been set; elevation is optional and a 2D pass skips the
// elevation verdict.
func (m *DatumSync) Update() error {
	if m.phase != Initialized && m.phase != Updated {
		return &LifecycleError{Op: "Update", Phase: m.phase}
	}
	x := m.values[m.cfg.Variables.X]
	y := m.values[m.cfg.Variables.Y]
	z := m.values[m.cfg.Variables.Z]
	if len(x) == 0 || len(y) == 0 {
		return fmt.Errorf("bmi: no coordinates bound: set %q and %q before Update",
			m.cfg.Variables.X, m.cfg.Variables.Y)
	}

	req := crs.Request{
		SourceEPSG: int(m.values[VarCRSInput][0]),
		TargetEPSG: int(m.values[VarCRSOutput][0]),
		X:          x,
		Y:          y,
		Z:          z,
		Tolerance:  m.cfg.Tolerance,
		ZWarn:      m.values[VarZWarn][0] != 0,
	}
	res, err := crs.Convert(context.Background(), m.tr, req)
	if err != nil {
		telemetry.TransformErrors.Inc()
		return err
	}
	if res.Warning != nil {
		telemetry.ZWarnings.WithLabelValues(string(res.Warning.Kind)).Inc()
		logging.L().Warn("elevation advisory",
			"kind", res.Warning.Kind,
			"detail", res.Warning.Message,
			"crs_in", req.SourceEPSG, "crs_out", req.TargetEPSG)
	}

	out := make([]float64, 0, len(res.X)+len(res.Y)+len(res.Z))
	out = append(out, res.X...)
	out = append(out, res.Y...)
	out = append(out, res.Z...)
	m.values[m.cfg.Variables.Output] = out
	m.zChanged = res.ZChanged

	telemetry.Conversions.Inc()
	telemetry.Points.Add(float64(len(res.X)))
	m.clock++
	m.phase = Updated
	return nil
}

// UpdateUntil runs a single pass (the model has no intrinsic dynamics) and
// advances the clock to t when t is ahead of it.
func (m *DatumSync) UpdateUntil(t float64) error {
	if err := m.Update(); err != nil {
		return err
	}
	if t > m.clock {
		m.clock = t
	}
	return nil
}

// Finalize releases the transform driver and drops model state. Every call
// after a successful Finalize fails with a LifecycleError.
func (m *DatumSync) Finalize() error {
	if m.phase != Initialized && m.phase != Updated {
		return &LifecycleError{Op: "Finalize", Phase: m.phase}
	}
	err := m.tr.Close()
	m.tr = nil
	m.values = nil
	m.phase = Finalized
	logging.L().Info("datumsync finalized", "clock", m.clock)
	if err != nil {
		return fmt.Errorf("bmi: close transform driver: %w", err)
	}
	return nil
}

/*──────────────────────── metadata ───────────────────────*/

// ComponentName identifies this model to coupling frameworks.
func (m *DatumSync) ComponentName() string { return "Datum Sync" }

func (m *DatumSync) InputItemCount() int  { return len(m.inputNames) }
func (m *DatumSync) OutputItemCount() int { return len(m.outputNames) }

func (m *DatumSync) InputVarNames() []string {
	return append([]string(nil), m.inputNames...)
}

func (m *DatumSync) OutputVarNames() []string {
	return append([]string(nil), m.outputNames...)
}

// VarType reports the element type of a variable. Every variable this model
// exposes is a float64 array.
func (m *DatumSync) VarType(name string) (string, error) {
	if err := m.accessible("VarType", name); err != nil {
		return "", err
	}
	return "float64", nil
}

// VarUnits reports "m" for the elevation variable and "1" for the
// dimensionless parameters. Horizontal units depend on the bound CRS and
// are reported as "none".
func (m *DatumSync) VarUnits(name string) (string, error) {
	if err := m.accessible("VarUnits", name); err != nil {
		return "", err
	}
	switch name {
	case m.cfg.Variables.Z:
		return "m", nil
	case VarCRSInput, VarCRSOutput, VarZWarn:
		return "1", nil
	}
	return "none", nil
}

func (m *DatumSync) VarItemSize(name string) (int, error) {
	if err := m.accessible("VarItemSize", name); err != nil {
		return 0, err
	}
	return 8, nil
}

// VarNBytes reports the byte size of the variable's current value.
func (m *DatumSync) VarNBytes(name string) (int, error) {
	if err := m.accessible("VarNBytes", name); err != nil {
		return 0, err
	}
	return 8 * len(m.values[name]), nil
}

/*──────────────────────── values ───────────────────────*/

// GetValue copies the named variable into dest, which must hold exactly its
// current length.
func (m *DatumSync) GetValue(name string, dest []float64) error {
	if err := m.accessible("GetValue", name); err != nil {
		return err
	}
	src := m.values[name]
	if len(dest) != len(src) {
		return fmt.Errorf("bmi: destination holds %d values, variable %q holds %d", len(dest), name, len(src))
	}
	copy(dest, src)
	return nil
}

// ValueRef returns the live backing slice of the named variable. Callers
// must treat it as read-only.
func (m *DatumSync) ValueRef(name string) ([]float64, error) {
	if err := m.accessible("ValueRef", name); err != nil {
		return nil, err
	}
	return m.values[name], nil
}

// SetValue replaces the named input variable's values. The slice is copied;
// the caller keeps ownership of its own.
func (m *DatumSync) SetValue(name string, values []float64) error {
	if err := m.accessible("SetValue", name); err != nil {
		return err
	}
	switch name {
	case VarCRSInput, VarCRSOutput, VarZWarn:
		if len(values) != 1 {
			return fmt.Errorf("bmi: parameter variable %q takes exactly one value, got %d", name, len(values))
		}
	case m.cfg.Variables.Output:
		return fmt.Errorf("bmi: variable %q is an output and cannot be set", name)
	}
	m.values[name] = append([]float64(nil), values...)
	return nil
}

/*──────────────────────── time ───────────────────────*/

// The model has no intrinsic dynamics: the clock counts update passes.
func (m *DatumSync) StartTime() float64   { return 0 }
func (m *DatumSync) CurrentTime() float64 { return m.clock }
func (m *DatumSync) EndTime() float64     { return math.Inf(1) }
func (m *DatumSync) TimeStep() float64    { return 1 }
func (m *DatumSync) TimeUnits() string    { return "s" }

/*──────────────────────── extras ───────────────────────*/

// Config returns the loaded model configuration. Zero before Initialize.
func (m *DatumSync) Config() Config { return m.cfg }

// LastZChanged reports whether the most recent pass altered any elevation.
func (m *DatumSync) LastZChanged() bool { return m.zChanged }

func (m *DatumSync) accessible(op, name string) error {
	if m.phase != Initialized && m.phase != Updated {
		return &LifecycleError{Op: op, Phase: m.phase}
	}
	if !m.knownVar(name) {
		return &UnknownVariableError{Name: name}
	}
	return nil
}

func (m *DatumSync) knownVar(name string) bool {
	for _, n := range m.inputNames {
		if n == name {
			return true
		}
	}
	for _, n := range m.outputNames {
		if n == name {
			return true
		}
	}
	return false
}

func boolVal(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
