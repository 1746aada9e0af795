// Package runfile defines the YAML run descriptor consumed by the batch
// pipeline.
package runfile

// Job is one conversion: coordinates read from Input, converted, written to
// Output.
type Job struct {
	Input  string `yaml:"input"`
	Output string `yaml:"output"`
}

type File struct {
	SchemaVersion string `yaml:"schema_version"`

	// Model config passed to Initialize.
	Config string `yaml:"config"`

	// Output driver: "csv" (default) or "stdout".
	Sink string `yaml:"sink"`

	Jobs []Job `yaml:"jobs"`
}
