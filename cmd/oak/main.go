package main

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	workspaceFlag string
	fileFlag      string
	logLevelFlag  string
)

var rootCmd = &cobra.Command{
	Use:   "oak",
	Short: "Oak - a personal task tracker",
	Long:  `Oak keeps todos, deadlines and events in a plain text file. Run "oak shell" for the interactive prompt.`,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&workspaceFlag, "workspace", "w", "", "Workspace directory (default: current directory)")
	rootCmd.PersistentFlags().StringVarP(&fileFlag, "file", "f", "", "Task file (overrides oak.toml and OAK_FILE)")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(todoCmd, deadlineCmd, eventCmd)
	rootCmd.AddCommand(listCmd, findCmd)
	rootCmd.AddCommand(markCmd, unmarkCmd, deleteCmd)
	rootCmd.AddCommand(shellCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
