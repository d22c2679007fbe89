package oak

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
)

var ErrIndexOutOfRange = errors.New("task index out of range")

// Oak is the task store: an ordered task list mirrored to a Repository.
// It is not safe for concurrent use.
type Oak struct {
	repo      Repository
	tasks     []*Task
	logger    *log.Logger
	listeners []Listener
}

// Option configures an Oak
type Option func(*Oak)

// WithLogger sets the logger used for load diagnostics and failures
func WithLogger(logger *log.Logger) Option {
	return func(o *Oak) {
		o.logger = logger
	}
}

// WithListener registers a listener for persisted changes
func WithListener(l Listener) Option {
	return func(o *Oak) {
		o.listeners = append(o.listeners, l)
	}
}

// New creates a store and loads every task the repository holds.
// A missing backing file starts an empty list; unparseable lines are skipped.
func New(repo Repository, opts ...Option) (*Oak, error) {
	o := &Oak{
		repo:   repo,
		tasks:  make([]*Task, 0),
		logger: discardLogger(),
	}
	for _, opt := range opts {
		opt(o)
	}

	if err := o.load(); err != nil {
		return nil, err
	}

	return o, nil
}

// load parses every persisted line into memory
func (o *Oak) load() error {
	lines, err := o.repo.LoadAll()
	if errors.Is(err, ErrNotFound) {
		o.logger.Warn("no task file yet, starting with an empty list", "err", err)
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to load tasks: %w", err)
	}

	for i, line := range lines {
		task, err := ParseLine(line)
		if err != nil {
			o.logger.Warn("skipping invalid task line", "line", i+1, "content", line, "err", err)
			continue
		}
		o.tasks = append(o.tasks, task)
	}

	o.logger.Debug("loaded tasks", "count", len(o.tasks), "skipped", len(lines)-len(o.tasks))
	return nil
}

// Len returns the number of tasks
func (o *Oak) Len() int {
	return len(o.tasks)
}

// Tasks returns a copy of the task list
func (o *Oak) Tasks() []Task {
	out := make([]Task, len(o.tasks))
	for i, t := range o.tasks {
		out[i] = *t
	}
	return out
}

// Task returns a copy of the task at index
func (o *Oak) Task(index int) (Task, error) {
	if err := o.checkIndex(index); err != nil {
		return Task{}, err
	}
	return *o.tasks[index], nil
}

// AddTodo appends a todo to the list and the backing file
func (o *Oak) AddTodo(name string) (string, error) {
	if err := o.add(NewTodo(name)); err != nil {
		return "", err
	}
	return fmt.Sprintf("Added new Todo: %s", name), nil
}

// AddDeadline appends a deadline to the list and the backing file
func (o *Oak) AddDeadline(name, by string) (string, error) {
	if err := o.add(NewDeadline(name, by)); err != nil {
		return "", err
	}
	return fmt.Sprintf("Added new Deadline: %s with Due Date: %s", name, by), nil
}

// AddEvent appends an event to the list and the backing file
func (o *Oak) AddEvent(name, from, to string) (string, error) {
	if err := o.add(NewEvent(name, from, to)); err != nil {
		return "", err
	}
	return fmt.Sprintf("Added new Event: %s occurring from %s to %s", name, from, to), nil
}

func (o *Oak) add(task *Task) error {
	if err := task.Validate(); err != nil {
		return err
	}

	if err := o.repo.Append(task.Serialize()); err != nil {
		o.logger.Error("failed to save task", "task", task.String(), "err", err)
		return fmt.Errorf("failed to save task: %w", err)
	}

	o.tasks = append(o.tasks, task)
	o.notify(ChangeAdded, len(o.tasks)-1, task)
	return nil
}

// DeleteTask removes the task at index (0-based) from the list and the backing file
func (o *Oak) DeleteTask(index int) (string, error) {
	if err := o.checkIndex(index); err != nil {
		return "", err
	}

	task := o.tasks[index]
	if err := o.repo.RemoveLine(task.Serialize()); err != nil {
		o.logger.Error("failed to delete task", "number", index+1, "err", err)
		return "", fmt.Errorf("failed to delete task %d: %w", index+1, err)
	}

	o.tasks = append(o.tasks[:index], o.tasks[index+1:]...)
	o.notify(ChangeDeleted, index, task)

	return fmt.Sprintf("I've deleted Task %d for you: %s", index+1, task), nil
}

// MarkTaskCompleted marks the task at index (0-based) as completed
func (o *Oak) MarkTaskCompleted(index int) (string, error) {
	if err := o.setCompleted(index, true); err != nil {
		return "", err
	}
	return fmt.Sprintf("Ok! I've marked Task %d as completed!\n  %s", index+1, o.tasks[index]), nil
}

// MarkTaskUncompleted marks the task at index (0-based) as not completed
func (o *Oak) MarkTaskUncompleted(index int) (string, error) {
	if err := o.setCompleted(index, false); err != nil {
		return "", err
	}
	return fmt.Sprintf("Well, I've marked Task %d as uncompleted.\n  %s", index+1, o.tasks[index]), nil
}

// setCompleted persists the updated line first and only then updates memory
func (o *Oak) setCompleted(index int, completed bool) error {
	if err := o.checkIndex(index); err != nil {
		return err
	}

	task := o.tasks[index]
	updated := *task
	changeType := ChangeUnmarked
	if completed {
		updated.MarkCompleted()
		changeType = ChangeMarked
	} else {
		updated.MarkNotCompleted()
	}

	// Skipped invalid lines never equal a serialized task, so the n-th
	// identical task in memory is the n-th identical line in the file
	oldLine := task.Serialize()
	if err := o.repo.ReplaceNthLine(oldLine, updated.Serialize(), o.occurrence(index, oldLine)); err != nil {
		o.logger.Error("failed to update task", "number", index+1, "err", err)
		return fmt.Errorf("failed to update task %d: %w", index+1, err)
	}

	task.Completed = updated.Completed
	o.notify(changeType, index, task)
	return nil
}

// GetAllTasks renders every task as "<n>. <task>", one per line
func (o *Oak) GetAllTasks() string {
	return o.render(func(*Task) bool { return true })
}

// FindTasks renders the tasks whose name contains substr (case-sensitive).
// Numbers are the tasks' positions in the full list.
func (o *Oak) FindTasks(substr string) string {
	return o.render(func(t *Task) bool {
		return strings.Contains(t.Name, substr)
	})
}

func (o *Oak) render(include func(*Task) bool) string {
	var lines []string
	for i, task := range o.tasks {
		if include(task) {
			lines = append(lines, fmt.Sprintf("%d. %s", i+1, task))
		}
	}
	return strings.Join(lines, "\n")
}

// occurrence counts the tasks before index that serialize to line
func (o *Oak) occurrence(index int, line string) int {
	n := 0
	for _, t := range o.tasks[:index] {
		if t.Serialize() == line {
			n++
		}
	}
	return n
}

func (o *Oak) checkIndex(index int) error {
	if index < 0 || index >= len(o.tasks) {
		return fmt.Errorf("%w: %d (have %d tasks)", ErrIndexOutOfRange, index+1, len(o.tasks))
	}
	return nil
}

func (o *Oak) notify(changeType ChangeType, index int, task *Task) {
	change := Change{Type: changeType, Index: index, Task: *task}
	for _, l := range o.listeners {
		l.OnChange(change)
	}
}
