package app

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestApp_New verifies app initialization.
func TestApp_New(t *testing.T) {
	app, err := New("1.0.0", "abc123", "2024-01-01")
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	if app.Version() != "1.0.0" {
		t.Errorf("Version() = %s, want 1.0.0", app.Version())
	}
	if app.Commit() != "abc123" {
		t.Errorf("Commit() = %s, want abc123", app.Commit())
	}
	if app.Date() != "2024-01-01" {
		t.Errorf("Date() = %s, want 2024-01-01", app.Date())
	}
	if app.Logger() == nil {
		t.Error("Logger() returned nil")
	}
	if app.Config() == nil {
		t.Error("Config() returned nil")
	}
}

// TestApp_VersionCommand verifies version output.
func TestApp_VersionCommand(t *testing.T) {
	app, err := New("1.2.3", "deadbeef", "2024-06-01")
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	var out bytes.Buffer
	cmd := app.createRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"version"})

	if err := cmd.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("version command failed: %v", err)
	}
	if !strings.Contains(out.String(), "gradeport 1.2.3") {
		t.Errorf("version output missing version string: %q", out.String())
	}
	if !strings.Contains(out.String(), "deadbeef") {
		t.Errorf("version output missing commit: %q", out.String())
	}
}

// TestApp_ValidateRoster verifies the validate roster subcommand against
// a file on disk.
func TestApp_ValidateRoster(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "students.csv")
	csv := "Student Email,First Name,Last Name,Unique User ID\n" +
		"ab12@school.org,Ada,Byron,1_12\n"
	if err := os.WriteFile(path, []byte(csv), 0o644); err != nil {
		t.Fatal(err)
	}

	app, err := New("dev", "", "")
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	var out bytes.Buffer
	cmd := app.createRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"validate", "roster", path, "--format", "table", "-q"})

	if err := cmd.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("validate roster failed: %v", err)
	}
	if !strings.Contains(out.String(), "status: valid") {
		t.Errorf("expected valid status, got: %q", out.String())
	}
}

// TestApp_ValidateRoster_IdentityMismatch verifies the command fails and
// reports the offending row when the two id columns disagree.
func TestApp_ValidateRoster_IdentityMismatch(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "students.csv")
	csv := "Student Email,First Name,Last Name,Unique User ID\n" +
		"ab12@school.org,Ada,Byron,1_99\n"
	if err := os.WriteFile(path, []byte(csv), 0o644); err != nil {
		t.Fatal(err)
	}

	app, err := New("dev", "", "")
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	var out bytes.Buffer
	cmd := app.createRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"validate", "roster", path, "--format", "json", "-q"})

	if err := cmd.ExecuteContext(context.Background()); err == nil {
		t.Fatal("expected validation error, got nil")
	}
	if !strings.Contains(out.String(), "id mismatch") {
		t.Errorf("report missing mismatch violation: %q", out.String())
	}
}

// TestApp_Import_NonInteractive runs the full import through the CLI with
// every parameter supplied by flag.
func TestApp_Import_NonInteractive(t *testing.T) {
	dir := t.TempDir()
	rosterPath := filepath.Join(dir, "students.csv")
	gradesPath := filepath.Join(dir, "grades.csv")
	outPath := filepath.Join(dir, "import.csv")

	rosterCSV := "Student Email,First Name,Last Name,Unique User ID\n" +
		"ab12@school.org,Ada,Byron,1_12\n"
	gradesCSV := "Period,Name,Email,Total,1.1 Intro,1.2 Quiz\n" +
		"3,Ada Byron,ab12@school.org,95,90,100\n"
	if err := os.WriteFile(rosterPath, []byte(rosterCSV), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(gradesPath, []byte(gradesCSV), 0o644); err != nil {
		t.Fatal(err)
	}

	app, err := New("dev", "", "")
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	var out bytes.Buffer
	cmd := app.createRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{
		"import", "-q", "--format", "table",
		"--platform", "projectstem",
		"--roster", rosterPath,
		"--grades", gradesPath,
		"--out", outPath,
	})

	if err := cmd.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("import failed: %v", err)
	}

	written, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("output file not written: %v", err)
	}
	if !strings.Contains(string(written), "Email,First Name,Last Name,Unique User ID,1.1 Intro,1.2 Quiz") {
		t.Errorf("unexpected output header: %q", string(written))
	}
	if !strings.Contains(out.String(), "matched: 1") {
		t.Errorf("summary missing match count: %q", out.String())
	}
}

// TestApp_Import_ConfigSupplied verifies a run whose parameters all come
// from the config file never prompts, not even for the optional range.
func TestApp_Import_ConfigSupplied(t *testing.T) {
	dir := t.TempDir()
	rosterPath := filepath.Join(dir, "students.csv")
	gradesPath := filepath.Join(dir, "grades.csv")
	outPath := filepath.Join(dir, "import.csv")

	rosterCSV := "Student Email,First Name,Last Name,Unique User ID\n" +
		"ab12@school.org,Ada,Byron,1_12\n"
	gradesCSV := "Period,Name,Email,Total,1.1 Intro\n" +
		"3,Ada Byron,ab12@school.org,95,90\n"
	if err := os.WriteFile(rosterPath, []byte(rosterCSV), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(gradesPath, []byte(gradesCSV), 0o644); err != nil {
		t.Fatal(err)
	}

	app, err := New("dev", "", "")
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	app.config.Platform = "projectstem"
	app.config.RosterPath = rosterPath
	app.config.GradesPath = gradesPath
	app.config.OutputPath = outPath

	var out bytes.Buffer
	cmd := app.createRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"import", "-q", "--format", "table"})

	if err := cmd.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("import failed: %v", err)
	}
	if _, statErr := os.Stat(outPath); statErr != nil {
		t.Fatalf("output file not written: %v", statErr)
	}
}

// TestApp_Import_ValidationAbort verifies no output file appears when the
// roster is invalid.
func TestApp_Import_ValidationAbort(t *testing.T) {
	dir := t.TempDir()
	rosterPath := filepath.Join(dir, "students.csv")
	gradesPath := filepath.Join(dir, "grades.csv")
	outPath := filepath.Join(dir, "import.csv")

	rosterCSV := "Student Email,First Name,Last Name,Unique User ID\n" +
		"ab12@school.org,Ada,Byron,1_99\n"
	gradesCSV := "Period,Name,Email,Total,1.1 Intro\n" +
		"3,Ada Byron,ab12@school.org,95,90\n"
	if err := os.WriteFile(rosterPath, []byte(rosterCSV), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(gradesPath, []byte(gradesCSV), 0o644); err != nil {
		t.Fatal(err)
	}

	app, err := New("dev", "", "")
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	var out bytes.Buffer
	cmd := app.createRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{
		"import", "-q", "--format", "table",
		"--platform", "P",
		"--roster", rosterPath,
		"--grades", gradesPath,
		"--out", outPath,
	})

	if err := cmd.ExecuteContext(context.Background()); err == nil {
		t.Fatal("expected validation error, got nil")
	}
	if _, statErr := os.Stat(outPath); !os.IsNotExist(statErr) {
		t.Error("output file was written despite validation failure")
	}
	if !strings.Contains(out.String(), "id mismatch") {
		t.Errorf("report missing mismatch violation: %q", out.String())
	}
}

// TestApp_Import_UnknownPlatform verifies a bad platform name fails fast.
func TestApp_Import_UnknownPlatform(t *testing.T) {
	app, err := New("dev", "", "")
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	var out bytes.Buffer
	cmd := app.createRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{
		"import", "-q",
		"--platform", "canvas",
		"--roster", "x.csv",
		"--grades", "y.csv",
		"--out", "z.csv",
	})

	execErr := cmd.ExecuteContext(context.Background())
	if execErr == nil {
		t.Fatal("expected error for unknown platform")
	}
	if !strings.Contains(execErr.Error(), "unknown platform") {
		t.Errorf("unexpected error: %v", execErr)
	}
}
