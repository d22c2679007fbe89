package oak

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrInvalidCommand = errors.New("invalid command")

// CommandType is the keyword that starts a shell line
type CommandType string

const (
	CommandBye      CommandType = "bye"
	CommandList     CommandType = "list"
	CommandMark     CommandType = "mark"
	CommandUnmark   CommandType = "unmark"
	CommandDelete   CommandType = "delete"
	CommandTodo     CommandType = "todo"
	CommandDeadline CommandType = "deadline"
	CommandEvent    CommandType = "event"
	CommandFind     CommandType = "find"
)

// Usage lists the accepted shell command forms
const Usage = `Commands:
  list
  todo <name>
  deadline <name> /by <when>
  event <name> /from <start> /to <end>
  mark <number>
  unmark <number>
  delete <number>
  find <text>
  bye`

// Command is one parsed shell line.
// Number is 1-based, as shown by list.
type Command struct {
	Type   CommandType
	Name   string
	By     string
	From   string
	To     string
	Query  string
	Number int
}

// ParseCommand parses a line such as "deadline report /by friday"
func ParseCommand(input string) (Command, error) {
	keyword, rest, _ := strings.Cut(strings.TrimSpace(input), " ")
	rest = strings.TrimSpace(rest)
	cmd := Command{Type: CommandType(strings.ToLower(keyword))}

	switch cmd.Type {
	case CommandBye, CommandList:
		if rest != "" {
			return Command{}, fmt.Errorf("%w: %s takes no arguments, got %q", ErrInvalidCommand, cmd.Type, rest)
		}
		return cmd, nil

	case CommandMark, CommandUnmark, CommandDelete:
		n, err := strconv.Atoi(rest)
		if err != nil {
			return Command{}, fmt.Errorf("%w: %s needs a task number, got %q", ErrInvalidCommand, cmd.Type, rest)
		}
		cmd.Number = n
		return cmd, nil

	case CommandTodo:
		if rest == "" {
			return Command{}, fmt.Errorf("%w: todo needs a name", ErrInvalidCommand)
		}
		cmd.Name = rest
		return cmd, nil

	case CommandDeadline:
		name, by, found := strings.Cut(rest, "/by")
		cmd.Name, cmd.By = strings.TrimSpace(name), strings.TrimSpace(by)
		if !found || cmd.Name == "" || cmd.By == "" {
			return Command{}, fmt.Errorf("%w: usage: deadline <name> /by <when>", ErrInvalidCommand)
		}
		return cmd, nil

	case CommandEvent:
		name, span, found := strings.Cut(rest, "/from")
		from, to, foundTo := strings.Cut(span, "/to")
		cmd.Name = strings.TrimSpace(name)
		cmd.From, cmd.To = strings.TrimSpace(from), strings.TrimSpace(to)
		if !found || !foundTo || cmd.Name == "" || cmd.From == "" || cmd.To == "" {
			return Command{}, fmt.Errorf("%w: usage: event <name> /from <start> /to <end>", ErrInvalidCommand)
		}
		return cmd, nil

	case CommandFind:
		if rest == "" {
			return Command{}, fmt.Errorf("%w: find needs some text to look for", ErrInvalidCommand)
		}
		cmd.Query = rest
		return cmd, nil
	}

	return Command{}, fmt.Errorf("%w: unknown command %q", ErrInvalidCommand, keyword)
}

// Run executes a parsed command against the store and returns the reply
func (o *Oak) Run(cmd Command) (string, error) {
	switch cmd.Type {
	case CommandBye:
		return "Bye. Hope to see you again soon!", nil
	case CommandList:
		if o.Len() == 0 {
			return "You have no tasks yet.", nil
		}
		return o.GetAllTasks(), nil
	case CommandMark:
		return o.MarkTaskCompleted(cmd.Number - 1)
	case CommandUnmark:
		return o.MarkTaskUncompleted(cmd.Number - 1)
	case CommandDelete:
		return o.DeleteTask(cmd.Number - 1)
	case CommandTodo:
		return o.AddTodo(cmd.Name)
	case CommandDeadline:
		return o.AddDeadline(cmd.Name, cmd.By)
	case CommandEvent:
		return o.AddEvent(cmd.Name, cmd.From, cmd.To)
	case CommandFind:
		found := o.FindTasks(cmd.Query)
		if found == "" {
			return fmt.Sprintf("No tasks match %q.", cmd.Query), nil
		}
		return "Here are the matching tasks:\n" + found, nil
	}

	return "", fmt.Errorf("%w: unknown command %q", ErrInvalidCommand, cmd.Type)
}
