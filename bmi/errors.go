package bmi

import "fmt"

// ConfigError reports configuration that cannot initialize the model.
type ConfigError struct {
	Err error
}

func (e *ConfigError) Error() string { return fmt.Sprintf("bmi: config: %v", e.Err) }

func (e *ConfigError) Unwrap() error { return e.Err }

// LifecycleError reports an operation invoked out of phase order.
type LifecycleError struct {
	Op    string
	Phase Phase
}

func (e *LifecycleError) Error() string {
	return fmt.Sprintf("bmi: %s is not valid in phase %s", e.Op, e.Phase)
}

// UnknownVariableError reports access to a variable the model does not
// expose.
type UnknownVariableError struct {
	Name string
}

func (e *UnknownVariableError) Error() string {
	return fmt.Sprintf("bmi: unknown variable %q", e.Name)
}
