package spsc

// PushMany pushes items in order until all are queued or the queue fills.
// Returns the count actually pushed (0 <= count <= len(items)).
//
// This is a plain bounded loop over TryPush: it is not an atomic batch,
// and a short count is a normal partial-success outcome, not a failure.
// The consumer may drain items from the same batch while it is still
// being pushed.
func (r *Ring[T]) PushMany(items []T) int {
	pushed := 0
	for pushed < len(items) {
		if !r.TryPush(items[pushed]) {
			break
		}
		pushed++
	}
	return pushed
}

// PopMany pops items into out until out is filled or the queue empties.
// Returns the count actually popped (0 <= count <= len(out)).
//
// Same contract as PushMany: partial counts are normal, no rollback.
func (r *Ring[T]) PopMany(out []T) int {
	popped := 0
	for popped < len(out) {
		v, ok := r.TryPop()
		if !ok {
			break
		}
		out[popped] = v
		popped++
	}
	return popped
}
