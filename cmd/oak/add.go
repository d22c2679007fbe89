package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var (
	deadlineBy string
	eventFrom  string
	eventTo    string
)

var todoCmd = &cobra.Command{
	Use:   "todo <name...>",
	Short: "Add a todo",
	Args:  cobra.MinimumNArgs(1),
	Run:   addTodo,
}

var deadlineCmd = &cobra.Command{
	Use:   "deadline <name...> --by <when>",
	Short: "Add a task that is due by a date",
	Args:  cobra.MinimumNArgs(1),
	Run:   addDeadline,
}

var eventCmd = &cobra.Command{
	Use:   "event <name...> --from <start> --to <end>",
	Short: "Add an event spanning a time range",
	Args:  cobra.MinimumNArgs(1),
	Run:   addEvent,
}

func init() {
	deadlineCmd.Flags().StringVarP(&deadlineBy, "by", "b", "", "Due date (required)")
	if err := deadlineCmd.MarkFlagRequired("by"); err != nil {
		panic(fmt.Sprintf("Failed to mark by flag as required: %v", err))
	}

	eventCmd.Flags().StringVar(&eventFrom, "from", "", "Start (required)")
	eventCmd.Flags().StringVar(&eventTo, "to", "", "End (required)")
	for _, name := range []string{"from", "to"} {
		if err := eventCmd.MarkFlagRequired(name); err != nil {
			panic(fmt.Sprintf("Failed to mark %s flag as required: %v", name, err))
		}
	}
}

func addTodo(cmd *cobra.Command, args []string) {
	o, err := openStore()
	if err != nil {
		fatal("%v", err)
	}

	msg, err := o.AddTodo(strings.Join(args, " "))
	if err != nil {
		fatal("Failed to add todo: %v", err)
	}
	fmt.Println("✓ " + msg)
}

func addDeadline(cmd *cobra.Command, args []string) {
	o, err := openStore()
	if err != nil {
		fatal("%v", err)
	}

	msg, err := o.AddDeadline(strings.Join(args, " "), deadlineBy)
	if err != nil {
		fatal("Failed to add deadline: %v", err)
	}
	fmt.Println("✓ " + msg)
}

func addEvent(cmd *cobra.Command, args []string) {
	o, err := openStore()
	if err != nil {
		fatal("%v", err)
	}

	msg, err := o.AddEvent(strings.Join(args, " "), eventFrom, eventTo)
	if err != nil {
		fatal("Failed to add event: %v", err)
	}
	fmt.Println("✓ " + msg)
}
