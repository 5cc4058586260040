package domain

import "go.trai.ch/zerr"

var (
	// ErrHermeticityViolation is returned when a probe target answers during the isolation check.
	ErrHermeticityViolation = zerr.New("network is reachable, environment is not hermetic")

	// ErrEnvironmentLoad is returned when the prefetched environment file cannot be read or parsed.
	ErrEnvironmentLoad = zerr.New("failed to load dependency environment")

	// ErrBuildFailure is returned when the offline build cannot be started or exits non-zero.
	ErrBuildFailure = zerr.New("offline build failed")

	// ErrSmokeTestFailure is returned when the built artifact fails its smoke invocation.
	ErrSmokeTestFailure = zerr.New("artifact smoke test failed")

	// ErrInvalidTransition is returned when the pipeline attempts a backward or skipping state change.
	ErrInvalidTransition = zerr.New("invalid pipeline transition")

	// ErrNoProbeTargets is returned when the verification plan lists no probe targets.
	ErrNoProbeTargets = zerr.New("no probe targets configured")

	// ErrEnvFileNotFound is returned when the environment file does not exist.
	ErrEnvFileNotFound = zerr.New("environment file not found")

	// ErrEnvFileMalformed is returned when a line of the environment file cannot be parsed.
	ErrEnvFileMalformed = zerr.New("malformed environment file")

	// ErrSourceTreeMissing is returned when the configured source directory does not exist.
	ErrSourceTreeMissing = zerr.New("source tree not found")

	// ErrSourceTreeEmpty is returned when the configured source directory contains no entries.
	ErrSourceTreeEmpty = zerr.New("source tree is empty")

	// ErrArtifactMissing is returned when the expected artifact is absent after the build.
	ErrArtifactMissing = zerr.New("build artifact not found")

	// ErrArtifactNotExecutable is returned when the artifact exists but lacks the executable bit.
	ErrArtifactNotExecutable = zerr.New("build artifact is not executable")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrConfigNotFound is returned when an explicitly named config file does not exist.
	ErrConfigNotFound = zerr.New("config file not found")

	// ErrConfigInvalid is returned when the config file is well-formed but semantically wrong.
	ErrConfigInvalid = zerr.New("invalid config")

	// ErrReportNotFound is returned when no persisted verification report exists.
	ErrReportNotFound = zerr.New("no verification report found")

	// ErrReportMarshalFailed is returned when the report cannot be marshaled.
	ErrReportMarshalFailed = zerr.New("failed to marshal report")

	// ErrReportWriteFailed is returned when the report cannot be written.
	ErrReportWriteFailed = zerr.New("failed to write report")

	// ErrReportReadFailed is returned when the report cannot be read.
	ErrReportReadFailed = zerr.New("failed to read report")

	// ErrReportUnmarshalFailed is returned when the report cannot be unmarshaled.
	ErrReportUnmarshalFailed = zerr.New("failed to unmarshal report")
)
