package focus

// Task is a pending deferred callback.
type Task interface {
	Cancel()
}

// Scheduler defers a callback until after the next frame is painted.
// Cancelled tasks must never run.
type Scheduler interface {
	Schedule(fn func()) Task
}
