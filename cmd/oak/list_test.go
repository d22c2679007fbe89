package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/fmizzell/oak"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestWorkspace points the CLI at a temporary workspace
func setupTestWorkspace(t *testing.T) string {
	tmpDir := t.TempDir()
	t.Setenv("OAK_FILE", "")

	oldWorkspaceFlag := workspaceFlag
	workspaceFlag = tmpDir
	t.Cleanup(func() { workspaceFlag = oldWorkspaceFlag })

	return tmpDir
}

// captureOutput captures stdout during command execution
func captureOutput(f func()) string {
	var buf bytes.Buffer
	old := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	f()

	w.Close()
	os.Stdout = old
	buf.ReadFrom(r)
	return buf.String()
}

func TestListTasks_Empty(t *testing.T) {
	setupTestWorkspace(t)

	output := captureOutput(func() {
		listTasks(&cobra.Command{}, []string{})
	})

	assert.Contains(t, output, "No tasks found.")
}

func TestAddListMarkDelete(t *testing.T) {
	tmpDir := setupTestWorkspace(t)

	output := captureOutput(func() {
		addTodo(&cobra.Command{}, []string{"buy", "milk"})
	})
	assert.Contains(t, output, "Added new Todo: buy milk")

	deadlineBy = "friday"
	t.Cleanup(func() { deadlineBy = "" })
	output = captureOutput(func() {
		addDeadline(&cobra.Command{}, []string{"submit report"})
	})
	assert.Contains(t, output, "submit report with Due Date: friday")

	eventFrom, eventTo = "6pm", "11pm"
	t.Cleanup(func() { eventFrom, eventTo = "", "" })
	captureOutput(func() {
		addEvent(&cobra.Command{}, []string{"party"})
	})

	output = captureOutput(func() {
		markTask(&cobra.Command{}, []string{"2"})
	})
	assert.Contains(t, output, "marked Task 2 as completed")

	output = captureOutput(func() {
		markTask(&cobra.Command{}, []string{"2"})
	})
	assert.Contains(t, output, "Task 2 is already completed.")

	output = captureOutput(func() {
		listTasks(&cobra.Command{}, []string{})
	})
	assert.Contains(t, output, "1. [T][ ] buy milk")
	assert.Contains(t, output, "2. [D][X] submit report (by: friday)")
	assert.Contains(t, output, "3. [E][ ] party (from: 6pm to: 11pm)")

	output = captureOutput(func() {
		deleteTask(&cobra.Command{}, []string{"1"})
	})
	assert.Contains(t, output, "deleted Task 1")

	output = captureOutput(func() {
		unmarkTask(&cobra.Command{}, []string{"1"})
	})
	assert.Contains(t, output, "marked Task 1 as uncompleted")

	// Default task file lives under .oak in the workspace
	o, err := oak.NewOakWithPersistence(filepath.Join(tmpDir, oak.DefaultTaskFile))
	require.NoError(t, err)
	assert.Equal(t, "1. [D][ ] submit report (by: friday)\n2. [E][ ] party (from: 6pm to: 11pm)", o.GetAllTasks())
}

func TestFindTasks(t *testing.T) {
	tmpDir := setupTestWorkspace(t)

	o, err := oak.NewOakWithPersistence(filepath.Join(tmpDir, oak.DefaultTaskFile))
	require.NoError(t, err)
	for _, name := range []string{"buy milk", "buy bread", "call mom"} {
		_, err := o.AddTodo(name)
		require.NoError(t, err)
	}

	output := captureOutput(func() {
		findTasks(&cobra.Command{}, []string{"mom"})
	})
	assert.Contains(t, output, "3. [T][ ] call mom")
	assert.NotContains(t, output, "buy")

	output = captureOutput(func() {
		findTasks(&cobra.Command{}, []string{"xyz"})
	})
	assert.Contains(t, output, `No tasks match "xyz".`)
}

func TestFileFlagOverridesConfig(t *testing.T) {
	tmpDir := setupTestWorkspace(t)
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "oak.toml"), []byte(`file = "from-config.txt"`), 0644))

	oldFileFlag := fileFlag
	fileFlag = "from-flag.txt"
	t.Cleanup(func() { fileFlag = oldFileFlag })

	captureOutput(func() {
		addTodo(&cobra.Command{}, []string{"flagged"})
	})

	assert.FileExists(t, filepath.Join(tmpDir, "from-flag.txt"))
	assert.NoFileExists(t, filepath.Join(tmpDir, "from-config.txt"))
}

func TestParseTaskNumber(t *testing.T) {
	index, err := parseTaskNumber("3")
	require.NoError(t, err)
	assert.Equal(t, 2, index)

	_, err = parseTaskNumber("three")
	assert.Error(t, err)
}
