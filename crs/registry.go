package crs

import "fmt"

// Factory builds a Transformer (e.g., ProjDriver, IdentityDriver, …).
type Factory func() Transformer

var registry = map[string]Factory{}

// Register is called from each driver's init() or main() factory map.
func Register(name string, f Factory) {
	registry[name] = f
}

// NewTransformer returns a driver by name ("proj", "identity", …).
func NewTransformer(name string) (Transformer, error) {
	if f, ok := registry[name]; ok {
		return f(), nil
	}
	return nil, fmt.Errorf("crs: unsupported driver %q", name)
}
