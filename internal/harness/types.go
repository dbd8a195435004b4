package harness

// StepResult is the outcome of one CLI invocation.
type StepResult struct {
	Args   []string
	Exit   int
	Stdout string
	Stderr string
}

// Result is the outcome of a scenario execution.
type Result struct {
	// Pass is true if every step exited as expected and the final state matched.
	Pass bool

	// Steps holds one entry per executed step.
	Steps []StepResult

	// Errors contains validation error messages.
	// Empty if Pass is true.
	Errors []string
}

// NewResult creates a new passing result.
func NewResult() *Result {
	return &Result{
		Pass:   true,
		Steps:  []StepResult{},
		Errors: []string{},
	}
}

// AddError adds a validation error and marks the result as failed.
func (r *Result) AddError(err string) {
	r.Errors = append(r.Errors, err)
	r.Pass = false
}
