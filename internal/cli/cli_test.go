package cli

import (
	"bytes"
	"os"
	"testing"
)

// isolateHome points the user home at a temp dir so tests never read a
// developer's real ~/.spring/config.json. Called once per test; repeated
// execute calls within the test share the same home.
func isolateHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)
	return home
}

// execute runs the root command with args and returns combined output.
// Package-level flag values are reset first so one test's flags cannot
// leak into the next.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	if _, ok := os.LookupEnv("SPRING_TEST_HOME_SET"); !ok {
		isolateHome(t)
		t.Setenv("SPRING_TEST_HOME_SET", "1")
	}

	newPath = ""
	addFrom = ""
	addPath = ""
	removePath = ""
	listPath = ""
	configInitForce = false

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return buf.String(), err
}
