package config

// File represents the structure of the airlock.yaml configuration file.
// Every field is optional; zero values fall back to the plan defaults.
type File struct {
	Version   string    `yaml:"version"`
	Probe     ProbeDTO  `yaml:"probe"`
	EnvFile   string    `yaml:"env_file"`
	SourceDir string    `yaml:"source_dir"`
	Build     BuildDTO  `yaml:"build"`
	Smoke     *SmokeDTO `yaml:"smoke"`
	Report    string    `yaml:"report"`
}

// ProbeDTO configures the network isolation check.
type ProbeDTO struct {
	Targets []string `yaml:"targets"`
	Timeout string   `yaml:"timeout"`
}

// BuildDTO configures the offline build invocation.
type BuildDTO struct {
	Toolchain string   `yaml:"toolchain"`
	Args      []string `yaml:"args"`
	Package   string   `yaml:"package"`
	Artifact  string   `yaml:"artifact"`
}

// SmokeDTO configures the artifact smoke invocation. A present but empty
// args list means "run the artifact with no arguments".
type SmokeDTO struct {
	Args []string `yaml:"args"`
}
