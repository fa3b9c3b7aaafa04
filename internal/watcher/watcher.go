// Package watcher feeds the clipboard monitor from a drop directory: every
// file created or rewritten there becomes a new capture.
package watcher

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/berrythewa/copycopy/internal/types"
	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// DefaultMaxFileBytes bounds how much of a dropped file is read
const DefaultMaxFileBytes = 16 * 1024 * 1024

var ErrTooLarge = errors.New("file exceeds size limit")

// DirSource implements clipboard.Source on top of a watched directory.
// Read returns the most recent capture; its ChangeCount grows with every
// accepted file event.
type DirSource struct {
	dir      string
	maxBytes int64
	watcher  *fsnotify.Watcher
	logger   *zap.Logger

	mu     sync.Mutex
	latest *types.Payload
	count  int64
	now    func() time.Time
}

// NewDirSource starts watching dir. Files already present are ignored.
func NewDirSource(dir string, maxBytes int64, logger *zap.Logger) (*DirSource, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if maxBytes <= 0 {
		maxBytes = DefaultMaxFileBytes
	}

	info, err := os.Stat(dir)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", dir)
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := w.Add(dir); err != nil {
		w.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	return &DirSource{
		dir:      dir,
		maxBytes: maxBytes,
		watcher:  w,
		logger:   logger,
		now:      time.Now,
	}, nil
}

// Run consumes file events until ctx is done or the watcher is closed
func (s *DirSource) Run(ctx context.Context) error {
	s.logger.Info("Watching directory", zap.String("dir", s.dir))
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-s.watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
				continue
			}
			s.handle(event.Name)
		case err, ok := <-s.watcher.Errors:
			if !ok {
				return nil
			}
			s.logger.Warn("Watcher error", zap.Error(err))
		}
	}
}

func (s *DirSource) handle(path string) {
	if strings.HasPrefix(filepath.Base(path), ".") {
		return
	}
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return
	}

	payload, err := ReadPayload(path, s.maxBytes)
	if err != nil {
		s.logger.Warn("Skipping file", zap.String("path", path), zap.Error(err))
		return
	}

	s.mu.Lock()
	s.count++
	payload.ChangeCount = s.count
	payload.Captured = s.now()
	s.latest = payload
	s.mu.Unlock()

	s.logger.Debug("Captured file", zap.String("path", path), zap.Int64("change_count", payload.ChangeCount))
}

// Read returns the latest capture, or nil before the first one
func (s *DirSource) Read(ctx context.Context) (*types.Payload, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.latest, nil
}

func (s *DirSource) Close() error {
	return s.watcher.Close()
}
