package oak

import (
	"errors"
	"fmt"
	"strings"
)

// Delimiter separates fields in a serialized task line
const Delimiter = "|"

var (
	ErrInvalidLine = errors.New("invalid task line")
	ErrInvalidTask = errors.New("invalid task")
)

// Kind identifies one of the three task variants
type Kind int

const (
	KindTodo Kind = iota
	KindDeadline
	KindEvent
)

// kindSpec describes how a kind is tagged and how many fields its line carries
type kindSpec struct {
	tag    string
	label  string
	fields int
}

var kindSpecs = map[Kind]kindSpec{
	KindTodo:     {tag: "T", label: "Todo", fields: 3},
	KindDeadline: {tag: "D", label: "Deadline", fields: 4},
	KindEvent:    {tag: "E", label: "Event", fields: 5},
}

// kindsByTag is the parse dispatch table
var kindsByTag = func() map[string]Kind {
	m := make(map[string]Kind, len(kindSpecs))
	for k, s := range kindSpecs {
		m[s.tag] = k
	}
	return m
}()

// Tag returns the serialized type tag (T, D or E)
func (k Kind) Tag() string {
	return kindSpecs[k].tag
}

func (k Kind) String() string {
	if s, ok := kindSpecs[k]; ok {
		return s.label
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Task is a single entry in the task list.
// By is set for deadlines, From and To for events.
type Task struct {
	Kind      Kind
	Name      string
	Completed bool
	By        string
	From      string
	To        string
}

// NewTodo creates an incomplete todo
func NewTodo(name string) *Task {
	return &Task{Kind: KindTodo, Name: name}
}

// NewDeadline creates an incomplete deadline due by the given time
func NewDeadline(name, by string) *Task {
	return &Task{Kind: KindDeadline, Name: name, By: by}
}

// NewEvent creates an incomplete event spanning from..to
func NewEvent(name, from, to string) *Task {
	return &Task{Kind: KindEvent, Name: name, From: from, To: to}
}

// MarkCompleted sets the completion flag. Marking twice is a no-op.
func (t *Task) MarkCompleted() {
	t.Completed = true
}

// MarkNotCompleted clears the completion flag
func (t *Task) MarkNotCompleted() {
	t.Completed = false
}

// dates returns the kind-specific date fields in serialized order
func (t *Task) dates() []string {
	switch t.Kind {
	case KindDeadline:
		return []string{t.By}
	case KindEvent:
		return []string{t.From, t.To}
	default:
		return nil
	}
}

// Serialize renders the task as one backing-file line (without newline)
func (t *Task) Serialize() string {
	flag := "0"
	if t.Completed {
		flag = "1"
	}

	fields := append([]string{t.Kind.Tag(), flag, t.Name}, t.dates()...)
	return strings.Join(fields, Delimiter)
}

// String renders the task for display, e.g. "[D][X] report (by: friday)"
func (t *Task) String() string {
	mark := " "
	if t.Completed {
		mark = "X"
	}

	s := fmt.Sprintf("[%s][%s] %s", t.Kind.Tag(), mark, t.Name)
	switch t.Kind {
	case KindDeadline:
		s += fmt.Sprintf(" (by: %s)", t.By)
	case KindEvent:
		s += fmt.Sprintf(" (from: %s to: %s)", t.From, t.To)
	}
	return s
}

// Validate checks that the task serializes to a line ParseLine accepts
func (t *Task) Validate() error {
	if _, ok := kindSpecs[t.Kind]; !ok {
		return fmt.Errorf("%w: unknown kind %d", ErrInvalidTask, int(t.Kind))
	}

	if err := validateField("name", t.Name); err != nil {
		return err
	}

	switch t.Kind {
	case KindDeadline:
		return validateField("by", t.By)
	case KindEvent:
		if err := validateField("from", t.From); err != nil {
			return err
		}
		return validateField("to", t.To)
	}
	return nil
}

func validateField(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%w: %s is empty", ErrInvalidTask, field)
	}
	if strings.Contains(value, Delimiter) {
		return fmt.Errorf("%w: %s contains %q", ErrInvalidTask, field, Delimiter)
	}
	if strings.ContainsAny(value, "\r\n") {
		return fmt.Errorf("%w: %s contains a line break", ErrInvalidTask, field)
	}
	return nil
}

// ParseLine turns a backing-file line back into a task.
// The returned error always wraps ErrInvalidLine.
func ParseLine(line string) (*Task, error) {
	fields := strings.Split(line, Delimiter)
	if len(fields) < 2 {
		return nil, fmt.Errorf("%w: expected at least 2 fields, got %d", ErrInvalidLine, len(fields))
	}

	kind, ok := kindsByTag[fields[0]]
	if !ok {
		return nil, fmt.Errorf("%w: unknown tag %q", ErrInvalidLine, fields[0])
	}

	spec := kindSpecs[kind]
	if len(fields) != spec.fields {
		return nil, fmt.Errorf("%w: %s expects %d fields, got %d", ErrInvalidLine, spec.label, spec.fields, len(fields))
	}

	var completed bool
	switch fields[1] {
	case "1":
		completed = true
	case "0":
	default:
		return nil, fmt.Errorf("%w: completion flag must be 0 or 1, got %q", ErrInvalidLine, fields[1])
	}

	if fields[2] == "" {
		return nil, fmt.Errorf("%w: empty name", ErrInvalidLine)
	}

	task := &Task{Kind: kind, Name: fields[2], Completed: completed}
	switch kind {
	case KindDeadline:
		task.By = fields[3]
	case KindEvent:
		task.From = fields[3]
		task.To = fields[4]
	}

	return task, nil
}
