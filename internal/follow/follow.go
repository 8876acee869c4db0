// Package follow streams the lines of a growing file, in the manner of
// tail -f, using filesystem notifications instead of polling.
package follow

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/bft-labs/et/pkg/log"
)

// Handler receives one complete line, without its newline.
// A non-nil error stops the Tailer.
type Handler func(line string) error

// Tailer follows a single file.
type Tailer struct {
	path   string
	logger log.Logger

	pos     int64
	partial []byte
	// file identifies what pos refers to.
	file os.FileInfo
}

// New creates a Tailer for path. A nil logger discards.
func New(path string, logger log.Logger) *Tailer {
	if logger == nil {
		logger = log.Nop
	}
	return &Tailer{path: filepath.Clean(path), logger: logger}
}

// Run hands every line already in the file to h, then every line appended
// later, until ctx is done or h fails. A trailing line without a newline is
// held back until it is completed. Truncation or replacement of the file
// restarts reading from its beginning.
//
// Run returns nil when ctx is canceled.
func (t *Tailer) Run(ctx context.Context, h Handler) error {
	if _, err := os.Stat(t.path); err != nil {
		return fmt.Errorf("follow: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("follow: create watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the directory so the file can be replaced or recreated.
	dir := filepath.Dir(t.path)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("follow: watch %s: %w", dir, err)
	}
	t.logger.Debug("following file", log.String("path", t.path))

	if err := t.drain(h); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != t.path {
				continue
			}
			switch {
			case event.Op&(fsnotify.Write|fsnotify.Create) != 0:
				if err := t.drain(h); err != nil {
					return err
				}
			case event.Op&(fsnotify.Remove|fsnotify.Rename) != 0:
				t.logger.Info("file moved away, waiting for it to reappear", log.String("path", t.path))
				t.reset()
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			t.logger.Warn("watcher error", log.Err(err))
		}
	}
}

// drain reads everything past the last position and emits complete lines.
func (t *Tailer) drain(h Handler) error {
	f, err := os.Open(t.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("follow: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("follow: %w", err)
	}
	switch {
	case t.file != nil && !os.SameFile(t.file, info):
		t.logger.Info("file replaced, reading from the start", log.String("path", t.path))
		t.reset()
	case info.Size() < t.pos:
		t.logger.Info("file truncated, reading from the start", log.String("path", t.path))
		t.reset()
	}
	t.file = info

	if _, err := f.Seek(t.pos, io.SeekStart); err != nil {
		return fmt.Errorf("follow: %w", err)
	}
	data, err := io.ReadAll(f)
	if err != nil {
		return fmt.Errorf("follow: %w", err)
	}
	t.pos += int64(len(data))
	t.partial = append(t.partial, data...)

	for {
		i := bytes.IndexByte(t.partial, '\n')
		if i < 0 {
			return nil
		}
		line := string(bytes.TrimSuffix(t.partial[:i], []byte{'\r'}))
		t.partial = t.partial[i+1:]
		if err := h(line); err != nil {
			return err
		}
	}
}

func (t *Tailer) reset() {
	t.pos = 0
	t.partial = nil
}
