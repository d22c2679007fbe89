package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fmizzell/oak"
	"github.com/spf13/cobra"
)

var (
	ruleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	rule       = ruleStyle.Render(strings.Repeat("─", 46))
)

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Start the interactive task prompt",
	Long:  `Read commands line by line until "bye". Type "help" for the list of commands.`,
	Run:   startShell,
}

func startShell(cmd *cobra.Command, args []string) {
	o, err := openStore()
	if err != nil {
		fatal("%v", err)
	}

	if err := runShell(o, os.Stdin, os.Stdout); err != nil {
		fatal("%v", err)
	}
}

// runShell reads commands from in until "bye" or end of input.
// Errors from a command are printed and the loop carries on.
func runShell(o *oak.Oak, in io.Reader, out io.Writer) error {
	fmt.Fprintln(out, "Hello! I'm Oak. What can I do for you?")

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}

		if strings.EqualFold(input, "help") {
			printReply(out, oak.Usage)
			continue
		}

		command, err := oak.ParseCommand(input)
		if err != nil {
			printReply(out, errorStyle.Render(err.Error()))
			continue
		}

		reply, err := o.Run(command)
		if err != nil {
			printReply(out, errorStyle.Render(err.Error()))
			continue
		}
		printReply(out, reply)

		if command.Type == oak.CommandBye {
			return nil
		}
	}

	return scanner.Err()
}

func printReply(out io.Writer, reply string) {
	fmt.Fprintln(out, rule)
	fmt.Fprintln(out, reply)
	fmt.Fprintln(out, rule)
}
