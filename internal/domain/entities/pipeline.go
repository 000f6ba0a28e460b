package entities

// PipelineReport collects what each stage of a pipeline run produced. Stages
// that did not run leave their field nil.
type PipelineReport struct {
	Upgrade     *UpgradeResult
	Build       *BuildResult
	Suggestions []Suggestion
}
