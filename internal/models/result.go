package models

// Step records a single observable action taken by a demonstration.
type Step struct {
	Description string `yaml:"description"`
	Path        string `yaml:"path,omitempty"`
	Detail      string `yaml:"detail,omitempty"`
}

// DemoResult aggregates the steps performed by one demonstration.
type DemoResult struct {
	Name  string `yaml:"name"`
	Steps []Step `yaml:"steps"`
}

// AddStep appends a step to the result.
func (r *DemoResult) AddStep(description, path, detail string) {
	r.Steps = append(r.Steps, Step{Description: description, Path: path, Detail: detail})
}

// ScriptResult captures the outcome of a spawned temporary script.
type ScriptResult struct {
	Stdout   string `yaml:"stdout"`
	Stderr   string `yaml:"stderr,omitempty"`
	ExitCode int    `yaml:"exitCode"`
}

// RunReport is the machine-readable summary of a full run.
type RunReport struct {
	Version string       `yaml:"version"`
	Demos   []DemoResult `yaml:"demos"`
}
