// Package cases provides loading and validation of probe case files.
package cases

// Suite is the root structure of a case file loaded from YAML.
type Suite struct {
	// Repeat is how many times each case is run to check determinism.
	Repeat int `yaml:"repeat,omitempty" json:"repeat,omitempty" jsonschema:"minimum=1,maximum=100,default=2,description=Runs per case; every run must produce identical output and status"`

	// Cases are the probe inputs and their expectations.
	Cases []Case `yaml:"cases" json:"cases" jsonschema:"minItems=1,description=Probe inputs and expected results"`

	// Source is the file the suite was loaded from.
	Source string `yaml:"-" json:"-"`
}

// Case describes one probe input and its expected result.
// Exactly one of Output or Abort applies: a case either expects
// a specific output or expects the probe to abort.
type Case struct {
	Name        string `yaml:"name" json:"name"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`

	// Input is fed to the probe as standard input.
	Input string `yaml:"input" json:"input"`

	// Output is the exact expected standard output.
	Output string `yaml:"output,omitempty" json:"output,omitempty"`

	// Abort expects a failed validity check and no output.
	Abort bool `yaml:"abort,omitempty" json:"abort,omitempty"`
}
