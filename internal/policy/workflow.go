package policy

// Workflow is an ordered sequence of distinct release stage names. It is built
// once per evaluation from configuration input and immutable thereafter.
type Workflow struct {
	stages []string
}

// NewWorkflow validates the stage list and returns a Workflow. A directional
// policy needs at least two stages, and stage names must be distinct and
// non-empty; anything else is a ConfigurationError.
func NewWorkflow(stages []string) (*Workflow, error) {
	if len(stages) < 2 {
		return nil, NewConfigurationError("workflow needs at least 2 stages, got %d", len(stages))
	}

	seen := make(map[string]bool, len(stages))
	for _, stage := range stages {
		if stage == "" {
			return nil, NewConfigurationError("workflow contains an empty stage name")
		}
		if seen[stage] {
			return nil, NewConfigurationError("workflow contains duplicate stage %q", stage)
		}
		seen[stage] = true
	}

	copied := make([]string, len(stages))
	copy(copied, stages)

	return &Workflow{stages: copied}, nil
}

// IndexOf returns the zero-based position of the named stage, or -1 if the
// name is not a stage. Linear scan, first match wins.
func (w *Workflow) IndexOf(name string) int {
	for i, stage := range w.stages {
		if stage == name {
			return i
		}
	}
	return -1
}

// Len returns the number of stages.
func (w *Workflow) Len() int {
	return len(w.stages)
}

// StageAt returns the stage name at position i, valid for 0 <= i < Len().
func (w *Workflow) StageAt(i int) string {
	return w.stages[i]
}

// IsLastStage reports whether name is the terminal stage of the workflow.
func (w *Workflow) IsLastStage(name string) bool {
	return w.IndexOf(name) == w.Len()-1
}
