package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"datumsync/internal/runfile"
)

const SupportedSchema = "v1"

// LoadRunFile parses a run YAML, validates schema_version, and resolves the
// model config and job paths relative to the run file's directory.
func LoadRunFile(path string) (runfile.File, error) {
	var rf runfile.File
	raw, err := os.ReadFile(path)
	if err != nil {
		return rf, err
	}
	if err := yaml.Unmarshal(raw, &rf); err != nil {
		return rf, err
	}
	if rf.SchemaVersion == "" {
		rf.SchemaVersion = SupportedSchema
	}
	if rf.SchemaVersion != SupportedSchema {
		return rf, fmt.Errorf("run schema_version %q not supported (want %q)", rf.SchemaVersion, SupportedSchema)
	}
	base := filepath.Dir(path)
	rf.Config = resolve(base, rf.Config)
	for i := range rf.Jobs {
		rf.Jobs[i].Input = resolve(base, rf.Jobs[i].Input)
		rf.Jobs[i].Output = resolve(base, rf.Jobs[i].Output)
	}
	return rf, nil
}

func resolve(base, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(base, p)
}
