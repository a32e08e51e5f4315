package processor

// Result records the outcome of synthesizing one slide.
type Result struct {
	Index int
	Path  string
	Err   error
}

// Succeeded reports whether the slide was produced.
func (r Result) Succeeded() bool {
	return r.Err == nil
}

// Results is the per-slide accounting for one batch run. A nil or empty
// Results with a nil error means there was nothing to do, which is distinct
// from a run where every slide failed.
type Results []Result

// SucceededCount returns the number of slides produced.
func (rs Results) SucceededCount() int {
	n := 0
	for _, r := range rs {
		if r.Succeeded() {
			n++
		}
	}
	return n
}

// FailedCount returns the number of slides that could not be produced.
func (rs Results) FailedCount() int {
	return len(rs) - rs.SucceededCount()
}
