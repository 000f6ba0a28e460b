package entities

// BuildOutcome is the three-valued result of a build attempt.
type BuildOutcome string

const (
	BuildSucceeded BuildOutcome = "succeeded"
	BuildFailed    BuildOutcome = "failed"  // the build ran and exited non-zero
	BuildErrored   BuildOutcome = "errored" // the build could not be run or its log not saved
)

// BuildResult describes one build attempt.
type BuildResult struct {
	Outcome  BuildOutcome
	ExitCode int
	Output   string
	LogPath  string // set when the output was persisted
	Err      error  // set when Outcome is BuildErrored
}

// NeedsAnalysis reports whether the build log should be handed to the analyzer.
func (r BuildResult) NeedsAnalysis() bool {
	return r.Outcome == BuildFailed
}

// UpgradeResult describes one dependency upgrade run.
type UpgradeResult struct {
	PackageManager string
	Changes        []DependencyChange
	Written        bool // manifest was rewritten
	Installed      bool // install ran and exited zero
}
