package domain

// Command is a process invocation requested by the pipeline.
type Command struct {
	// Name is the label used in logs and telemetry.
	Name string
	// Argv is the program and its arguments. Argv[0] is resolved against the
	// merged environment's PATH when it is not an absolute path.
	Argv []string
	// Dir is the working directory. Empty means the harness's own cwd.
	Dir string
	// Env contains per-invocation overrides applied on top of the overlay.
	Env map[string]string
}
