package dpalpha

// A releaser stacks the release step of each acquired resource so that
// teardown always runs in reverse acquisition order, also when a later
// acquisition step fails halfway through construction.
type releaser struct {
	stack []func() error
}

// add pushes the release step for a freshly acquired resource.
func (r *releaser) add(release func() error) {
	r.stack = append(r.stack, release)
}

// release runs the stacked steps newest-first, exactly once. All steps
// run even if one fails; the first error wins.
func (r *releaser) release() error {
	var first error
	for i := len(r.stack) - 1; i >= 0; i-- {
		if err := r.stack[i](); err != nil && first == nil {
			first = err
		}
	}
	r.stack = nil
	return first
}
