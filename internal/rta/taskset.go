package rta

import (
	"fmt"
	"os"

	yaml "github.com/goccy/go-yaml"
)

// TaskSpec is one entry of a YAML task-set file.
type TaskSpec struct {
	Execution float64 `yaml:"execution"`
	Period    float64 `yaml:"period"`
	Deadline  float64 `yaml:"deadline"`
}

type taskSetFile struct {
	Tasks []TaskSpec `yaml:"tasks"`
}

// LoadTaskSet reads a YAML task-set file: a "tasks:" list of
// execution/period/deadline entries, declaration order = priority
// order.
func LoadTaskSet(path string) ([]TaskSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var f taskSetFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("task set %s: %w", path, err)
	}
	return f.Tasks, nil
}
