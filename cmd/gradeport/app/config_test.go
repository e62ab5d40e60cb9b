package app

import (
	"os"
	"testing"
)

// TestLoadConfig verifies basic config loading.
func TestLoadConfig(t *testing.T) {
	config, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() failed: %v", err)
	}

	if config == nil {
		t.Fatal("LoadConfig() returned nil config")
	}

	// LogLevel may be empty (triggers precedence logic in logger.go);
	// LogFormat and LogOutput should have defaults.
	if config.LogFormat == "" {
		t.Error("LogFormat not set to default")
	}
	if config.LogOutput == "" {
		t.Error("LogOutput not set to default")
	}
}

// TestConfig_EnvironmentVariables verifies environment variable loading
// with the GRADEPORT_ prefix.
func TestConfig_EnvironmentVariables(t *testing.T) {
	oldPlatform := os.Getenv("GRADEPORT_PLATFORM")
	oldOut := os.Getenv("GRADEPORT_OUT")
	defer func() {
		os.Setenv("GRADEPORT_PLATFORM", oldPlatform)
		os.Setenv("GRADEPORT_OUT", oldOut)
	}()

	os.Setenv("GRADEPORT_PLATFORM", "codehs")
	os.Setenv("GRADEPORT_OUT", "import.csv")

	config, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() failed: %v", err)
	}

	if config.Platform != "codehs" {
		t.Errorf("Platform = %q, want codehs", config.Platform)
	}
	if config.OutputPath != "import.csv" {
		t.Errorf("OutputPath = %q, want import.csv", config.OutputPath)
	}
}

// TestConfig_UpdateFromFlags verifies flags take precedence.
func TestConfig_UpdateFromFlags(t *testing.T) {
	config := &Config{Format: "json", LogLevel: "info"}

	config.UpdateFromFlags(true, false, true, "table", "debug")

	if !config.Verbose {
		t.Error("Verbose not updated from flag")
	}
	if !config.NoColor {
		t.Error("NoColor not updated from flag")
	}
	if config.Format != "table" {
		t.Errorf("Format = %q, want table", config.Format)
	}
	if config.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", config.LogLevel)
	}

	// Empty flag values must not clobber existing settings.
	config.UpdateFromFlags(false, false, false, "", "")
	if config.Format != "table" {
		t.Errorf("empty format flag clobbered Format: %q", config.Format)
	}
	if config.LogLevel != "debug" {
		t.Errorf("empty log-level flag clobbered LogLevel: %q", config.LogLevel)
	}
}
