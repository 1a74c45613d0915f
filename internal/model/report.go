package model

// Outcome represents what happened to a single candidate during a run.
type Outcome string

const (
	// OutcomeLifted indicates the candidate was moved into its module
	// directory and the header guard ran.
	OutcomeLifted Outcome = "lifted"
	// OutcomeSkipped indicates the module file already existed, so the
	// candidate was left in place untouched.
	OutcomeSkipped Outcome = "skipped"
)

// Action records the result of processing one candidate.
type Action struct {
	Candidate Candidate
	Outcome   Outcome
	// HeaderPrepended is true when the rewrite actually inserted the header
	// block; false when the file already started with it.
	HeaderPrepended bool
}

// Report aggregates the actions of a full run.
type Report struct {
	Actions []Action
}

// Lifted returns the number of candidates moved into module directories.
func (r Report) Lifted() int {
	return r.count(OutcomeLifted)
}

// Skipped returns the number of candidates left in place.
func (r Report) Skipped() int {
	return r.count(OutcomeSkipped)
}

func (r Report) count(outcome Outcome) int {
	n := 0

	for _, action := range r.Actions {
		if action.Outcome == outcome {
			n++
		}
	}

	return n
}
