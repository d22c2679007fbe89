package oak

import "github.com/charmbracelet/log"

// ChangeType names a kind of store mutation
type ChangeType string

const (
	ChangeAdded    ChangeType = "task_added"
	ChangeDeleted  ChangeType = "task_deleted"
	ChangeMarked   ChangeType = "task_marked"
	ChangeUnmarked ChangeType = "task_unmarked"
)

// Change describes a mutation that has been persisted
type Change struct {
	Type  ChangeType
	Index int // 0-based position at the time of the change
	Task  Task
}

// Listener is notified after every successful mutation
type Listener interface {
	OnChange(change Change)
}

// ListenerFunc converts a plain function into a Listener
type ListenerFunc func(Change)

func (f ListenerFunc) OnChange(change Change) {
	f(change)
}

// LogListener records every change at info level
func LogListener(logger *log.Logger) Listener {
	return ListenerFunc(func(c Change) {
		logger.Info(string(c.Type),
			"number", c.Index+1,
			"kind", c.Task.Kind.String(),
			"task", c.Task.String(),
		)
	})
}
