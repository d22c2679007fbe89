package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all tasks",
	Long:  `List all tasks with their numbers. Numbers are used by mark, unmark and delete.`,
	Run:   listTasks,
}

var findCmd = &cobra.Command{
	Use:   "find <text>",
	Short: "Find tasks whose name contains text",
	Long:  `Find tasks whose name contains text (case-sensitive). Numbers match the full list.`,
	Args:  cobra.ExactArgs(1),
	Run:   findTasks,
}

func listTasks(cmd *cobra.Command, args []string) {
	o, err := openStore()
	if err != nil {
		fatal("%v", err)
	}

	if o.Len() == 0 {
		fmt.Println("No tasks found.")
		return
	}

	fmt.Println("📋 Tasks:")
	fmt.Println(o.GetAllTasks())
}

func findTasks(cmd *cobra.Command, args []string) {
	o, err := openStore()
	if err != nil {
		fatal("%v", err)
	}

	found := o.FindTasks(args[0])
	if found == "" {
		fmt.Printf("No tasks match %q.\n", args[0])
		return
	}

	fmt.Println("🔍 Matching tasks:")
	fmt.Println(found)
}
