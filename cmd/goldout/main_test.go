package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"goldout/internal/harness"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestRun_RecordThenTest(t *testing.T) {
	inputDir := t.TempDir()
	writeFile(t, inputDir, "hello.txt", "hello\n")
	expectedDir := filepath.Join(t.TempDir(), "expected")

	var stdout, stderr bytes.Buffer
	code := run([]string{"-r", "-d", inputDir, "-ed", expectedDir, "-c", "cat", "$"}, &stdout, &stderr)

	if code != 0 {
		t.Fatalf("exit code = %d, want 0\nstderr: %s", code, stderr.String())
	}
	if !strings.Contains(stdout.String(), "Recording examples") {
		t.Error("missing record section header")
	}
	if !strings.Contains(stdout.String(), "`hello` test: OK") {
		t.Errorf("missing pass line, got:\n%s", stdout.String())
	}

	baselinePath := filepath.Join(expectedDir, "hello.txt")
	content, err := os.ReadFile(baselinePath)
	if err != nil {
		t.Fatalf("baseline not written: %v", err)
	}
	if string(content) != "hello\n" {
		t.Errorf("baseline content = %q, want %q", content, "hello\n")
	}
}

func TestRun_MismatchKeepsExitZero(t *testing.T) {
	inputDir := t.TempDir()
	writeFile(t, inputDir, "case.txt", "fresh\n")
	expectedDir := t.TempDir()
	writeFile(t, expectedDir, "case.txt", "stale\n")

	var stdout, stderr bytes.Buffer
	code := run([]string{"-d", inputDir, "-ed", expectedDir, "-c", "cat", "$"}, &stdout, &stderr)

	if code != 0 {
		t.Fatalf("exit code = %d, want 0", code)
	}
	if !strings.Contains(stdout.String(), "`case`: FAILED") {
		t.Errorf("missing failure line, got:\n%s", stdout.String())
	}
}

func TestRun_MissingInputDirIsFatal(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"-d", filepath.Join(t.TempDir(), "nope"), "-c", "cat", "$"}, &stdout, &stderr)

	if code != 1 {
		t.Fatalf("exit code = %d, want 1", code)
	}
	if !strings.Contains(stderr.String(), "[PANIC]") {
		t.Errorf("missing fatal marker, got: %s", stderr.String())
	}
}

func TestRun_SubprocessFailureIsFatal(t *testing.T) {
	inputDir := t.TempDir()
	writeFile(t, inputDir, "a.txt", "x")

	var stdout, stderr bytes.Buffer
	code := run([]string{"-d", inputDir, "-ed", t.TempDir(), "-c", "sh -c 'echo boom >&2; exit 1'"}, &stdout, &stderr)

	if code != 1 {
		t.Fatalf("exit code = %d, want 1", code)
	}
	if !strings.Contains(stderr.String(), "[PANIC]") {
		t.Errorf("missing fatal marker, got: %s", stderr.String())
	}
	if !strings.Contains(stderr.String(), "boom") {
		t.Errorf("child stderr not surfaced, got: %s", stderr.String())
	}
}

func TestRun_BadRangeIsFatalBeforeExecution(t *testing.T) {
	inputDir := t.TempDir()
	writeFile(t, inputDir, "a.txt", "x")

	var stdout, stderr bytes.Buffer
	code := run([]string{"-d", inputDir, "-ed", t.TempDir(), "-rng", "5", "-c", "cat", "$"}, &stdout, &stderr)

	if code != 1 {
		t.Fatalf("exit code = %d, want 1", code)
	}
	if strings.Contains(stdout.String(), "[CMD]") {
		t.Error("command ran despite invalid range")
	}
	if !strings.Contains(stderr.String(), "invalid range") {
		t.Errorf("missing range diagnostic, got: %s", stderr.String())
	}
}

func TestRun_UsageErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "no flags at all", args: []string{}},
		{name: "missing command template", args: []string{"-d", "."}},
		{name: "unknown flag", args: []string{"--bogus"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			code := run(tt.args, &stdout, &stderr)
			if code != 1 {
				t.Errorf("exit code = %d, want 1", code)
			}
			if !strings.Contains(stderr.String(), "Error:") {
				t.Errorf("missing usage error, got: %s", stderr.String())
			}
		})
	}
}

func TestRun_JSONSummary(t *testing.T) {
	inputDir := t.TempDir()
	writeFile(t, inputDir, "case.txt", "out\n")

	var stdout, stderr bytes.Buffer
	code := run([]string{"-r", "--json", "-d", inputDir, "-ed", t.TempDir(), "-c", "cat", "$"}, &stdout, &stderr)

	if code != 0 {
		t.Fatalf("exit code = %d, want 0\nstderr: %s", code, stderr.String())
	}

	// The JSON document follows the human-readable output
	idx := strings.Index(stdout.String(), "{")
	if idx < 0 {
		t.Fatalf("no JSON in output:\n%s", stdout.String())
	}
	var sum harness.Summary
	if err := json.Unmarshal([]byte(stdout.String()[idx:]), &sum); err != nil {
		t.Fatalf("invalid JSON summary: %v", err)
	}
	if len(sum.Tested) != 1 || sum.Tested[0].Status != harness.StatusPass {
		t.Errorf("summary = %+v, want one passing case", sum)
	}
}

func TestRun_ListBaselines(t *testing.T) {
	inputDir := t.TempDir()
	writeFile(t, inputDir, "case.txt", "out\n")
	expectedDir := t.TempDir()

	var stdout, stderr bytes.Buffer
	if code := run([]string{"-r", "-d", inputDir, "-ed", expectedDir, "-c", "cat", "$"}, &stdout, &stderr); code != 0 {
		t.Fatalf("record run failed: %s", stderr.String())
	}

	stdout.Reset()
	stderr.Reset()
	if code := run([]string{"--list", "-ed", expectedDir}, &stdout, &stderr); code != 0 {
		t.Fatalf("list run failed: %s", stderr.String())
	}
	if !strings.Contains(stdout.String(), "case") {
		t.Errorf("list output missing baseline, got:\n%s", stdout.String())
	}
}

func TestRun_ListEmpty(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"--list", "-ed", t.TempDir()}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("exit code = %d, want 0", code)
	}
	if !strings.Contains(stdout.String(), "No baselines found") {
		t.Errorf("unexpected list output: %s", stdout.String())
	}
}

func TestRun_ConfigFileProvidesDefaults(t *testing.T) {
	inputDir := t.TempDir()
	writeFile(t, inputDir, "case.txt", "out\n")
	expectedDir := filepath.Join(t.TempDir(), "expected")

	configPath := writeFile(t, t.TempDir(), "goldout.yaml",
		"dir: "+inputDir+"\nexpected_dir: "+expectedDir+"\ncommand: [cat, $]\n")

	var stdout, stderr bytes.Buffer
	code := run([]string{"--config", configPath, "-r"}, &stdout, &stderr)

	if code != 0 {
		t.Fatalf("exit code = %d, want 0\nstderr: %s", code, stderr.String())
	}
	if !strings.Contains(stdout.String(), "`case` test: OK") {
		t.Errorf("config-driven run did not pass, got:\n%s", stdout.String())
	}
}
