package models

// StepType distinguishes the two kinds of derivation steps.
type StepType string

const (
	// StepRule records a forward-chaining rule firing.
	StepRule StepType = "rule"
	// StepBlock records the auto-solver adding a block to the selection.
	StepBlock StepType = "block"
)

// Step is a single entry in a derivation trace: which rule or block acted,
// what facts or capabilities it added, and why.
type Step struct {
	Type   StepType `json:"step_type"`
	ID     string   `json:"id"`
	Added  []string `json:"added"`
	Reason string   `json:"reason"`
}

// Trace is the ordered, append-only record of every inference step in
// application order. It is owned by the caller after a solve returns and is
// never persisted by the solver itself.
type Trace []Step

// Append adds a step and returns the extended trace.
func (t Trace) Append(step Step) Trace {
	return append(t, step)
}

// RuleSteps returns only the rule-firing steps.
func (t Trace) RuleSteps() []Step {
	return t.filter(StepRule)
}

// BlockSteps returns only the block-addition steps.
func (t Trace) BlockSteps() []Step {
	return t.filter(StepBlock)
}

func (t Trace) filter(typ StepType) []Step {
	var steps []Step
	for _, s := range t {
		if s.Type == typ {
			steps = append(steps, s)
		}
	}
	return steps
}
