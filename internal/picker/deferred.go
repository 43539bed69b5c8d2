package picker

// Queue is the deferred task queue the session schedules mode transitions
// and output notifications on. Tasks run FIFO, to completion, with no
// cancellation. The owner of the session decides when to drain, strictly
// after the synchronous portion of the triggering event has returned, so
// a deferred transition is never observed before in-flight focus/blur
// handling settles.
type Queue struct {
	tasks []func()
}

// Defer appends a task to the queue.
func (q *Queue) Defer(fn func()) {
	q.tasks = append(q.tasks, fn)
}

// Len reports how many tasks are pending.
func (q *Queue) Len() int { return len(q.tasks) }

// Drain runs every pending task in order. Tasks enqueued while draining
// run in the same drain, after everything queued before them.
func (q *Queue) Drain() {
	for len(q.tasks) > 0 {
		fn := q.tasks[0]
		q.tasks = q.tasks[1:]
		fn()
	}
}
