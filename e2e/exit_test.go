//go:build e2e && unix

package main

import (
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestApplicationExit(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	_, err := tf.CreateTestWorkspace()
	require.NoError(t, err, "Failed to create test workspace")
	def, err := tf.CreateDefinition("fruit.yaml")
	require.NoError(t, err, "Failed to write definition")

	require.NoError(t, tf.StartPicker(def), "Failed to start app")

	// Wait for TUI to initialize and render
	require.True(t, tf.Ready(), "Should receive ready signal")
	require.True(t, tf.SeePlain("Select an option"), "Should show the placeholder")

	t.Logf("Sending 'q' to quit application...")
	tf.Quit()

	code, err := tf.WaitExit(1500 * time.Millisecond)
	if err != nil {
		tf.DumpTailOnFail(t, "exit-failure", 4096)
		t.Fatalf("app did not exit after quit: %v", err)
	}
	require.Equal(t, 0, code, "quitting without a value is a normal exit")
}

func TestApplicationAbortWithCtrlC(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	_, err := tf.CreateTestWorkspace()
	require.NoError(t, err, "Failed to create test workspace")
	def, err := tf.CreateDefinition("fruit.yaml", WithValue("banana"))
	require.NoError(t, err, "Failed to write definition")

	require.NoError(t, tf.StartPicker(def), "Failed to start app")
	require.True(t, tf.Ready(), "Should receive ready signal")
	require.True(t, tf.SeePlain("Banana"), "Should show the initial value")

	tf.SendCtrlC()

	code, err := tf.WaitExit(1500 * time.Millisecond)
	require.NoError(t, err, "app should exit on Ctrl+C")
	require.Equal(t, 130, code, "aborting exits with 130")

	// the value is only printed on a normal exit
	require.False(t, strings.Contains(tf.SnapshotPlain(), "banana"), "aborted run should not print the value")
}

func TestApplicationExitWithStateSave(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	_, err := tf.CreateTestWorkspace()
	require.NoError(t, err, "Failed to create test workspace")
	def, err := tf.CreateDefinition("fruit.yaml", WithName("fruit"))
	require.NoError(t, err, "Failed to write definition")

	require.NoError(t, tf.StartPicker(def), "Failed to start app")
	require.True(t, tf.Ready(), "Should receive ready signal")

	// open, highlight Apple, commit
	tf.Down()
	tf.Down()
	tf.Enter()
	require.True(t, tf.SeePlain("Apple"), "Should show the committed label")

	tf.Quit()
	code, err := tf.WaitExit(2 * time.Second)
	require.NoError(t, err, "app did not exit after quit")
	require.Equal(t, 0, code)

	data, err := os.ReadFile(tf.StatePath())
	require.NoError(t, err, "state file should be written on change")
	require.Contains(t, string(data), "[widgets.fruit]")
	require.Contains(t, string(data), "apple")
}
