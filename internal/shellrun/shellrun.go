// Package shellrun spawns a shell command under a pseudoterminal and
// captures its combined output, including the ANSI escapes the caller
// hands off to tohtml. It is the CLI's only process-spawning surface; the
// core converter never touches os/exec.
package shellrun

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/exec"
	"syscall"
	"unicode/utf8"

	"github.com/creack/pty"
	"github.com/google/uuid"
	"golang.org/x/term"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/Aloso/to-html/internal/logging"
)

const (
	defaultRows uint16 = 24
	defaultCols uint16 = 80
)

// Result is the captured output and final status of one shell invocation.
type Result struct {
	RunID    string
	Output   string
	ExitCode int
}

// Run spawns command in dir under a pseudoterminal, capturing everything it
// writes until it exits. The child sees a real TTY (colors and interactive
// prompts behave as they would in a normal terminal), but Setpgid keeps the
// PTY from becoming its controlling terminal, matching the one-shot,
// non-interactive nature of this caller.
func Run(command []string, dir string) (Result, error) {
	if len(command) == 0 {
		return Result{}, errors.New("shellrun: empty command")
	}

	runID := uuid.NewString()
	log := logging.WithRunID(runID)

	cmd := exec.Command(command[0], command[1:]...)
	cmd.Dir = dir
	cmd.Env = os.Environ()
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}

	rows, cols := probeSize()
	ptmx, err := pty.StartWithAttrs(cmd, &pty.Winsize{Rows: rows, Cols: cols}, cmd.SysProcAttr)
	if err != nil {
		log.Error().Err(err).Str("command", command[0]).Msg("failed to start command under pty")
		return Result{}, fmt.Errorf("shellrun: spawn %q: %w", command[0], err)
	}
	defer ptmx.Close()

	var buf bytes.Buffer
	if _, copyErr := io.Copy(&buf, ptmx); copyErr != nil && !isExpectedPTYClose(copyErr) {
		log.Error().Err(copyErr).Msg("error reading pty output")
	}

	exitCode := 0
	if waitErr := cmd.Wait(); waitErr != nil {
		var exitErr *exec.ExitError
		if errors.As(waitErr, &exitErr) {
			exitCode = exitErr.ExitCode()
		} else {
			return Result{}, fmt.Errorf("shellrun: wait %q: %w", command[0], waitErr)
		}
	}

	output, err := decodeOutput(buf.Bytes())
	if err != nil {
		return Result{}, err
	}

	log.Debug().Int("exit_code", exitCode).Int("bytes", buf.Len()).Msg("command finished")
	return Result{RunID: runID, Output: output, ExitCode: exitCode}, nil
}

// probeSize reports the size to allocate the PTY with: the real terminal
// size when stdout is a TTY, or a sane fallback when output is piped or
// redirected (e.g. under a test harness or CI).
func probeSize() (rows, cols uint16) {
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		if w, h, err := term.GetSize(fd); err == nil {
			return uint16(h), uint16(w)
		}
	}
	return defaultRows, defaultCols
}

// isExpectedPTYClose reports whether err is the EIO a PTY master read
// returns once the child has exited and closed its slave side — the
// ordinary end of output, not a failure worth surfacing.
func isExpectedPTYClose(err error) bool {
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		return errors.Is(pathErr.Err, syscall.EIO)
	}
	return errors.Is(err, io.EOF)
}

// decodeOutput returns b as a UTF-8 string, falling back to Latin-1
// transcoding when b is not valid UTF-8. Some shells and legacy tools still
// emit 8-bit output outside UTF-8; the core converter requires valid UTF-8
// input, so this is where that guarantee is established.
func decodeOutput(b []byte) (string, error) {
	if utf8.Valid(b) {
		return string(b), nil
	}
	decoded, _, err := transform.Bytes(charmap.ISO8859_1.NewDecoder(), b)
	if err != nil {
		return "", fmt.Errorf("shellrun: non-UTF-8 output could not be recovered as latin-1: %w", err)
	}
	return string(decoded), nil
}
