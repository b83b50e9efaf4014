// ABOUTME: PTY harness for e2e tests: builds the ked binary and runs it on a pseudo-terminal.
// ABOUTME: Provides expect-with-timeout, key sending, and exit assertions.

//go:build linux

package e2e

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/creack/pty"
)

var (
	buildOnce sync.Once
	buildPath string
	buildErr  error
)

// buildKed compiles cmd/ked once per test run and returns the binary path.
func buildKed(t *testing.T) string {
	t.Helper()

	buildOnce.Do(func() {
		dir, err := os.MkdirTemp("", "ked-e2e-*")
		if err != nil {
			buildErr = err
			return
		}
		buildPath = filepath.Join(dir, "ked")

		cmd := exec.Command("go", "build", "-o", buildPath, "./cmd/ked")
		cmd.Dir = ".."
		if out, err := cmd.CombinedOutput(); err != nil {
			buildErr = fmt.Errorf("building ked: %v\n%s", err, out)
		}
	})
	if buildErr != nil {
		t.Fatalf("buildKed: %v", buildErr)
	}
	return buildPath
}

// kedSession is one running ked process on a PTY.
type kedSession struct {
	cmd    *exec.Cmd
	ptmx   *os.File
	mu     sync.Mutex
	out    bytes.Buffer
	exited chan error
}

// startKed launches the binary on a 24x80 PTY with the given extra flags.
func startKed(t *testing.T, extraArgs ...string) *kedSession {
	t.Helper()

	cmd := exec.Command(buildKed(t), extraArgs...)
	ptmx, err := pty.StartWithSize(cmd, &pty.Winsize{Rows: 24, Cols: 80})
	if err != nil {
		t.Fatalf("starting ked on a pty: %v", err)
	}

	s := &kedSession{cmd: cmd, ptmx: ptmx, exited: make(chan error, 1)}

	go func() {
		buf := make([]byte, 4096)
		for {
			n, err := ptmx.Read(buf)
			if n > 0 {
				s.mu.Lock()
				s.out.Write(buf[:n])
				s.mu.Unlock()
			}
			if err != nil {
				return
			}
		}
	}()
	go func() {
		s.exited <- cmd.Wait()
	}()

	return s
}

func (s *kedSession) close() {
	s.ptmx.Close()
	if s.cmd.ProcessState == nil {
		s.cmd.Process.Kill()
		<-s.exited
	}
}

// output returns everything the process has written so far.
func (s *kedSession) output() []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]byte(nil), s.out.Bytes()...)
}

// expectBytes polls the output until want appears or the timeout expires.
func (s *kedSession) expectBytes(t *testing.T, want []byte, timeout time.Duration) {
	t.Helper()

	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if bytes.Contains(s.output(), want) {
			return
		}
		time.Sleep(20 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for %q in output %q", want, s.output())
}

// send writes raw bytes to the PTY as if typed.
func (s *kedSession) send(t *testing.T, b []byte) {
	t.Helper()
	if _, err := s.ptmx.Write(b); err != nil {
		t.Fatalf("writing to pty: %v", err)
	}
}

// sendCtrl sends the control chord of a letter.
func (s *kedSession) sendCtrl(t *testing.T, letter byte) {
	t.Helper()
	s.send(t, []byte{letter & 0x1f})
}

// waitExit asserts the process ends with the given exit code in time.
func (s *kedSession) waitExit(t *testing.T, code int, timeout time.Duration) {
	t.Helper()

	select {
	case <-s.exited:
		if got := s.cmd.ProcessState.ExitCode(); got != code {
			t.Fatalf("exit code = %d, want %d", got, code)
		}
	case <-time.After(timeout):
		t.Fatalf("process did not exit within %v", timeout)
	}
}
