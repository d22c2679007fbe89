package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var markCmd = &cobra.Command{
	Use:   "mark <number>",
	Short: "Mark a task as completed",
	Args:  cobra.ExactArgs(1),
	Run:   markTask,
}

var unmarkCmd = &cobra.Command{
	Use:   "unmark <number>",
	Short: "Mark a task as not completed",
	Args:  cobra.ExactArgs(1),
	Run:   unmarkTask,
}

var deleteCmd = &cobra.Command{
	Use:   "delete <number>",
	Short: "Delete a task",
	Args:  cobra.ExactArgs(1),
	Run:   deleteTask,
}

func markTask(cmd *cobra.Command, args []string) {
	index, err := parseTaskNumber(args[0])
	if err != nil {
		fatal("%v", err)
	}

	o, err := openStore()
	if err != nil {
		fatal("%v", err)
	}

	// Check if already completed
	if task, err := o.Task(index); err == nil && task.Completed {
		fmt.Printf("Task %d is already completed.\n", index+1)
		return
	}

	msg, err := o.MarkTaskCompleted(index)
	if err != nil {
		fatal("Failed to complete task: %v", err)
	}
	fmt.Println("✓ " + msg)
}

func unmarkTask(cmd *cobra.Command, args []string) {
	index, err := parseTaskNumber(args[0])
	if err != nil {
		fatal("%v", err)
	}

	o, err := openStore()
	if err != nil {
		fatal("%v", err)
	}

	msg, err := o.MarkTaskUncompleted(index)
	if err != nil {
		fatal("Failed to uncomplete task: %v", err)
	}
	fmt.Println("✓ " + msg)
}

func deleteTask(cmd *cobra.Command, args []string) {
	index, err := parseTaskNumber(args[0])
	if err != nil {
		fatal("%v", err)
	}

	o, err := openStore()
	if err != nil {
		fatal("%v", err)
	}

	msg, err := o.DeleteTask(index)
	if err != nil {
		fatal("Failed to delete task: %v", err)
	}
	fmt.Println("✓ " + msg)
}
