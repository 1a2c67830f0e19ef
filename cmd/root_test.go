package cmd

import (
	"bytes"
	"strings"
	"testing"
)

func TestRootCommandMetadata(t *testing.T) {
	if rootCmd.Use != "clashview" {
		t.Errorf("Expected Use to be 'clashview', got %s", rootCmd.Use)
	}
	if !rootCmd.SilenceUsage {
		t.Error("Expected SilenceUsage to be true")
	}
	if rootCmd.Flags().Lookup("api-url") == nil {
		t.Error("Expected --api-url flag to be registered")
	}
	if rootCmd.Flags().Lookup("interval") == nil {
		t.Error("Expected --interval flag to be registered")
	}
}

func TestVersionCommand(t *testing.T) {
	originalVersion := rootCmd.Version
	defer func() { rootCmd.Version = originalVersion }()
	rootCmd.Version = "1.2.3"

	versionCmd := newVersionCmd()
	if versionCmd.Use != "version" {
		t.Errorf("Expected Use to be 'version', got %s", versionCmd.Use)
	}
	if versionCmd.Short == "" {
		t.Error("Expected Short description to be set")
	}
}

func TestSelfUpdateCommandHelp(t *testing.T) {
	selfUpdateCmd := newSelfUpdateCmd()
	var buf bytes.Buffer
	selfUpdateCmd.SetOut(&buf)
	selfUpdateCmd.SetErr(&buf)
	selfUpdateCmd.SetArgs([]string{"--help"})

	if err := selfUpdateCmd.Execute(); err != nil {
		t.Fatalf("Error executing self-update help: %v", err)
	}
	if !strings.Contains(buf.String(), "Checks for the latest release") {
		t.Errorf("Help output should contain long description. Got: %q", buf.String())
	}
}

func TestRunSelfUpdateWithDevVersion(t *testing.T) {
	originalVersion := rootCmd.Version
	defer func() { rootCmd.Version = originalVersion }()

	for _, v := range []string{"dev", ""} {
		rootCmd.Version = v
		err := runSelfUpdate(nil, nil)
		if err == nil {
			t.Errorf("Expected error for version %q", v)
			continue
		}
		if !strings.Contains(err.Error(), "cannot self-update a development version") {
			t.Errorf("Expected specific error message, got: %s", err.Error())
		}
	}
}
