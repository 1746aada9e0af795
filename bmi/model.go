// Package bmi exposes the datum conversion pipeline through the Basic Model
// Interface lifecycle used by hydrologic model coupling frameworks.
package bmi

// Model is the BMI surface a coupling framework drives: lifecycle calls,
// variable metadata, value access, and the model clock.
type Model interface {
	Initialize(configFile string) error
	Update() error
	UpdateUntil(t float64) error
	Finalize() error

	ComponentName() string
	InputItemCount() int
	OutputItemCount() int
	InputVarNames() []string
	OutputVarNames() []string

	VarType(name string) (string, error)
	VarUnits(name string) (string, error)
	VarItemSize(name string) (int, error)
	VarNBytes(name string) (int, error)

	GetValue(name string, dest []float64) error
	ValueRef(name string) ([]float64, error)
	SetValue(name string, values []float64) error

	StartTime() float64
	CurrentTime() float64
	EndTime() float64
	TimeStep() float64
	TimeUnits() string
}
