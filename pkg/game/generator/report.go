package generator

import "fmt"

// Report summarizes one CreateLand run.
type Report struct {
	Seed            int64
	Passes          int // Raise and sink passes executed
	Raises          int
	Sinks           int
	TargetBudget    int // Land cells requested
	RemainingBudget int // Land cells still missing when the run stopped
	Incomplete      bool
}

// LandCreated returns the net number of cells turned into land.
func (r Report) LandCreated() int {
	return r.TargetBudget - r.RemainingBudget
}

// Warning returns a non-nil error wrapping ErrBudgetExhausted when the run
// stopped at the pass cap. The terrain is still usable.
func (r Report) Warning() error {
	if !r.Incomplete {
		return nil
	}
	return fmt.Errorf("%w: %d of %d land cells missing after %d passes",
		ErrBudgetExhausted, r.RemainingBudget, r.TargetBudget, r.Passes)
}
