package watch

// DoneStatus classifies the completion of the displayed exercise.
// Exactly one case is active at a time; it is recomputed after every
// run and never carried stale into a render.
type DoneStatus interface {
	doneStatus()
}

// StatusPending marks an exercise that is not passing yet.
type StatusPending struct{}

// StatusDoneWithoutSolution marks a passing exercise with no reference
// solution to show.
type StatusDoneWithoutSolution struct{}

// StatusDoneWithSolution marks a passing exercise whose reference
// solution lives at Path.
type StatusDoneWithSolution struct {
	Path string
}

func (StatusPending) doneStatus()             {}
func (StatusDoneWithoutSolution) doneStatus() {}
func (StatusDoneWithSolution) doneStatus()    {}

// isPending reports whether s is the pending case.
func isPending(s DoneStatus) bool {
	_, ok := s.(StatusPending)
	return ok
}
