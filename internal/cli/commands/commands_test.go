package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

const validCases = `repeat: 2
cases:
  - name: basic
    description: integer then line
    input: "42\nhello\n"
    output: "{42}{hello}"
  - name: malformed
    input: "abc\n"
    abort: true
`

func writeCaseFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to create case file: %v", err)
	}
	return path
}

func resetExitCode(t *testing.T) {
	t.Helper()
	ExitCode = ExitOK
	t.Cleanup(func() { ExitCode = ExitOK })
}

func TestRunProbe(t *testing.T) {
	resetExitCode(t)

	cmd := &cobra.Command{RunE: RunProbe}
	var stdout, stderr bytes.Buffer
	cmd.SetIn(strings.NewReader("42\nhello\n"))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs([]string{})

	if err := cmd.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("RunProbe failed: %v", err)
	}
	if stdout.String() != "{42}{hello}" {
		t.Errorf("stdout = %q, want %q", stdout.String(), "{42}{hello}")
	}
	if stderr.Len() != 0 {
		t.Errorf("stderr = %q, want empty", stderr.String())
	}
	if ExitCode != ExitOK {
		t.Errorf("ExitCode = %d, want %d", ExitCode, ExitOK)
	}
}

func TestRunProbe_Abort(t *testing.T) {
	resetExitCode(t)

	cmd := &cobra.Command{RunE: RunProbe}
	var stdout, stderr bytes.Buffer
	cmd.SetIn(strings.NewReader("abc\n"))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs([]string{})

	if err := cmd.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("RunProbe returned error: %v", err)
	}
	if stdout.Len() != 0 {
		t.Errorf("stdout = %q, want nothing", stdout.String())
	}
	if !strings.Contains(stderr.String(), "assertion failed") {
		t.Errorf("stderr = %q, want assertion message", stderr.String())
	}
	if ExitCode != ExitAbort {
		t.Errorf("ExitCode = %d, want %d", ExitCode, ExitAbort)
	}
}

func TestNewVerifyCommand(t *testing.T) {
	cmd := NewVerifyCommand()

	if cmd.Use != "verify <case-file>..." {
		t.Errorf("Unexpected Use: %s", cmd.Use)
	}

	for _, flag := range []string{"output", "verbose", "quiet"} {
		if cmd.Flags().Lookup(flag) == nil {
			t.Errorf("Missing flag: %s", flag)
		}
	}
}

func TestRunVerify_AllPass(t *testing.T) {
	resetExitCode(t)
	path := writeCaseFile(t, t.TempDir(), "cases.yaml", validCases)

	cmd := NewVerifyCommand()
	cmd.SetArgs([]string{path})
	var buf bytes.Buffer
	cmd.SetOut(&buf)

	if err := cmd.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("Verify failed: %v", err)
	}
	if !strings.Contains(buf.String(), "2 cases checked, 2 passed, 0 failed") {
		t.Errorf("Unexpected output:\n%s", buf.String())
	}
	if ExitCode != ExitOK {
		t.Errorf("ExitCode = %d, want %d", ExitCode, ExitOK)
	}
}

func TestRunVerify_Failure(t *testing.T) {
	resetExitCode(t)
	content := `cases:
  - name: wrong
    input: "1\nx\n"
    output: "{1}{y}"
`
	path := writeCaseFile(t, t.TempDir(), "cases.yaml", content)

	cmd := NewVerifyCommand()
	cmd.SetArgs([]string{path})
	var buf bytes.Buffer
	cmd.SetOut(&buf)

	if err := cmd.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("Verify failed: %v", err)
	}
	if !strings.Contains(buf.String(), "[FAIL] wrong") {
		t.Errorf("Unexpected output:\n%s", buf.String())
	}
	if ExitCode != ExitFailures {
		t.Errorf("ExitCode = %d, want %d", ExitCode, ExitFailures)
	}
}

func TestRunVerify_GlobAndJSON(t *testing.T) {
	resetExitCode(t)
	dir := t.TempDir()
	writeCaseFile(t, dir, "a.yaml", validCases)
	writeCaseFile(t, dir, "b.yaml", "cases:\n  - name: only\n    input: \"9\"\n    output: \"{9}{}\"\n")

	cmd := NewVerifyCommand()
	cmd.SetArgs([]string{"-o", "json", filepath.Join(dir, "*.yaml")})
	var buf bytes.Buffer
	cmd.SetOut(&buf)

	if err := cmd.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("Verify failed: %v", err)
	}

	var parsed struct {
		Summary struct {
			SuitesChecked int `json:"suites_checked"`
			CasesChecked  int `json:"cases_checked"`
			CasesPassed   int `json:"cases_passed"`
		} `json:"summary"`
	}
	if err := json.Unmarshal(buf.Bytes(), &parsed); err != nil {
		t.Fatalf("Output is not valid JSON: %v\n%s", err, buf.String())
	}
	if parsed.Summary.SuitesChecked != 2 || parsed.Summary.CasesChecked != 3 || parsed.Summary.CasesPassed != 3 {
		t.Errorf("Summary = %+v", parsed.Summary)
	}
}

func TestRunVerify_InvalidFormat(t *testing.T) {
	resetExitCode(t)
	path := writeCaseFile(t, t.TempDir(), "cases.yaml", validCases)

	cmd := NewVerifyCommand()
	cmd.SetArgs([]string{"-o", "xml", path})
	cmd.SetOut(&bytes.Buffer{})

	if err := cmd.ExecuteContext(context.Background()); err == nil {
		t.Error("Expected error for unknown output format")
	}
}

func TestRunVerify_MissingFile(t *testing.T) {
	resetExitCode(t)
	cmd := NewVerifyCommand()
	cmd.SetArgs([]string{"/nonexistent/cases.yaml"})
	cmd.SetOut(&bytes.Buffer{})

	if err := cmd.ExecuteContext(context.Background()); err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestNewValidateCommand(t *testing.T) {
	cmd := NewValidateCommand()

	if cmd.Use != "validate <case-file>" {
		t.Errorf("Unexpected Use: %s", cmd.Use)
	}
	if !strings.Contains(cmd.Long, "Validate") {
		t.Error("Missing description in Long")
	}
}

func TestRunValidate_Success(t *testing.T) {
	path := writeCaseFile(t, t.TempDir(), "cases.yaml", validCases)

	cmd := NewValidateCommand()
	cmd.SetArgs([]string{path})
	var buf bytes.Buffer
	cmd.SetOut(&buf)

	if err := cmd.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("Validate failed: %v", err)
	}

	output := buf.String()
	for _, want := range []string{"Case file valid!", "Cases:  2", `1. basic (expects output "{42}{hello}")`, "2. malformed (expects abort)", "integer then line"} {
		if !strings.Contains(output, want) {
			t.Errorf("Output missing %q:\n%s", want, output)
		}
	}
}

func TestRunValidate_InvalidCases(t *testing.T) {
	path := writeCaseFile(t, t.TempDir(), "invalid.yaml", "cases:\n  - input: \"1\"\n")

	cmd := NewValidateCommand()
	cmd.SetArgs([]string{path})
	cmd.SetOut(&bytes.Buffer{})

	err := cmd.ExecuteContext(context.Background())
	if err == nil || !strings.Contains(err.Error(), "name is required") {
		t.Errorf("Expected name error, got %v", err)
	}
}

func TestRunValidate_MissingFile(t *testing.T) {
	cmd := NewValidateCommand()
	cmd.SetArgs([]string{"/nonexistent/cases.yaml"})
	cmd.SetOut(&bytes.Buffer{})

	if err := cmd.ExecuteContext(context.Background()); err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestSchemaCommand(t *testing.T) {
	cmd := NewSchemaCommand()
	cmd.SetArgs([]string{})
	var buf bytes.Buffer
	cmd.SetOut(&buf)

	if err := cmd.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("Schema failed: %v", err)
	}

	var parsed map[string]any
	if err := json.Unmarshal(buf.Bytes(), &parsed); err != nil {
		t.Fatalf("Schema output is not valid JSON: %v", err)
	}
}

func TestVersionCommand(t *testing.T) {
	cmd := NewVersionCommand()
	if cmd.Use != "version" {
		t.Errorf("Unexpected Use: %s", cmd.Use)
	}

	cmd.SetArgs([]string{})
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	if err := cmd.Execute(); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "streamprobe dev\n" {
		t.Errorf("version output = %q", buf.String())
	}
}
