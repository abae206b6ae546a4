package shellrun

import (
	"strings"
	"testing"
)

func TestRunCapturesOutputAndExitCode(t *testing.T) {
	res, err := Run([]string{"echo", "hello"}, t.TempDir())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !strings.Contains(res.Output, "hello") {
		t.Errorf("output = %q, want it to contain hello", res.Output)
	}
	if res.ExitCode != 0 {
		t.Errorf("exit code = %d, want 0", res.ExitCode)
	}
	if res.RunID == "" {
		t.Errorf("expected a non-empty run id")
	}
}

func TestRunReportsNonZeroExit(t *testing.T) {
	res, err := Run([]string{"sh", "-c", "exit 3"}, t.TempDir())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.ExitCode != 3 {
		t.Errorf("exit code = %d, want 3", res.ExitCode)
	}
}

func TestRunRejectsEmptyCommand(t *testing.T) {
	if _, err := Run(nil, t.TempDir()); err == nil {
		t.Errorf("expected error for empty command")
	}
}

func TestDecodeOutputPassesThroughValidUTF8(t *testing.T) {
	out, err := decodeOutput([]byte("héllo"))
	if err != nil {
		t.Fatalf("decodeOutput: %v", err)
	}
	if out != "héllo" {
		t.Errorf("got %q", out)
	}
}

func TestDecodeOutputFallsBackToLatin1(t *testing.T) {
	// 0xe9 is 'é' in Latin-1 but not valid standalone UTF-8.
	out, err := decodeOutput([]byte{'h', 0xe9, 'i'})
	if err != nil {
		t.Fatalf("decodeOutput: %v", err)
	}
	if out != "héi" {
		t.Errorf("got %q, want héi", out)
	}
}
