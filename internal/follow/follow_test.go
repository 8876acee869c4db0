package follow

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func appendTo(t *testing.T, path, s string) {
	t.Helper()
	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if _, err := f.WriteString(s); err != nil {
		t.Fatal(err)
	}
}

func expectLines(t *testing.T, lines <-chan string, want ...string) {
	t.Helper()
	for _, w := range want {
		select {
		case got := <-lines:
			if got != w {
				t.Fatalf("line = %q, want %q", got, w)
			}
		case <-time.After(5 * time.Second):
			t.Fatalf("timed out waiting for line %q", w)
		}
	}
}

func TestTailerFollowsAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "epochs.log")
	if err := os.WriteFile(path, []byte("1\n2\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	lines := make(chan string, 16)
	done := make(chan error, 1)
	go func() {
		done <- New(path, nil).Run(ctx, func(line string) error {
			lines <- line
			return nil
		})
	}()

	expectLines(t, lines, "1", "2")

	appendTo(t, path, "3\n4")
	expectLines(t, lines, "3")

	appendTo(t, path, "5\r\n")
	expectLines(t, lines, "45")

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run() error = %v, want nil after cancel", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run() did not return after cancel")
	}
}

func TestTailerRestartsOnReplacement(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "epochs.log")
	if err := os.WriteFile(path, []byte("1\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	lines := make(chan string, 16)
	done := make(chan error, 1)
	go func() {
		done <- New(path, nil).Run(ctx, func(line string) error {
			lines <- line
			return nil
		})
	}()

	expectLines(t, lines, "1")

	// Atomic replace with a larger file: only a Create event reaches the path.
	tmp := filepath.Join(dir, "epochs.log.tmp")
	if err := os.WriteFile(tmp, []byte("10\n20\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.Rename(tmp, path); err != nil {
		t.Fatal(err)
	}
	expectLines(t, lines, "10", "20")

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run() error = %v, want nil after cancel", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run() did not return after cancel")
	}
}

func TestTailerHandlerErrorStops(t *testing.T) {
	path := filepath.Join(t.TempDir(), "epochs.log")
	if err := os.WriteFile(path, []byte("ok\nbad\nnever\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	errBad := errors.New("bad line")
	var seen []string
	err := New(path, nil).Run(context.Background(), func(line string) error {
		seen = append(seen, line)
		if line == "bad" {
			return errBad
		}
		return nil
	})

	if !errors.Is(err, errBad) {
		t.Fatalf("Run() error = %v, want %v", err, errBad)
	}
	if len(seen) != 2 {
		t.Errorf("handler saw %v, want [ok bad]", seen)
	}
}

func TestTailerMissingFile(t *testing.T) {
	err := New(filepath.Join(t.TempDir(), "missing.log"), nil).Run(context.Background(), func(string) error { return nil })
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("Run() error = %v, want os.ErrNotExist", err)
	}
}
