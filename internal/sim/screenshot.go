// Package sim implements a stand-in for the AgenticSeek backend.
package sim

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spaolacci/murmur3"
)

// ScreenshotStore holds the bytes served by GET /screenshot.
//
// It starts out seeded with a generated placeholder image. When a
// screenshot directory is watched, the newest PNG written there
// replaces the current bytes. Content hashing suppresses reloads of
// unchanged files, which editors and watchers tend to produce.
type ScreenshotStore struct {
	logger *slog.Logger

	mu   sync.RWMutex
	data []byte
	sum  uint64

	watcher *fsnotify.Watcher
	done    chan struct{}
}

// NewScreenshotStore creates a store seeded with the placeholder image.
func NewScreenshotStore(logger *slog.Logger) *ScreenshotStore {
	if logger == nil {
		logger = slog.Default()
	}
	s := &ScreenshotStore{logger: logger}
	s.Set(placeholderPNG())
	return s
}

// Latest returns the current screenshot bytes.
// The second return is false when no screenshot is available.
func (s *ScreenshotStore) Latest() ([]byte, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.data) == 0 {
		return nil, false
	}
	return s.data, true
}

// Set replaces the current screenshot bytes.
// It returns false for empty data or when the content is unchanged.
func (s *ScreenshotStore) Set(data []byte) bool {
	if len(data) == 0 {
		return false
	}
	sum := murmur3.Sum64(data)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.data != nil && sum == s.sum {
		return false
	}
	s.data = data
	s.sum = sum
	return true
}

// Watch starts serving the newest PNG from dir, reloading on changes.
// The watch runs until Close is called.
func (s *ScreenshotStore) Watch(dir string) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	if err := w.Add(dir); err != nil {
		w.Close()
		return err
	}
	s.watcher = w
	s.done = make(chan struct{})

	// Serve whatever is already there before events start flowing.
	if path, ok := newestPNG(dir); ok {
		s.loadFile(path)
	}

	go s.watchLoop()
	s.logger.Info("watching screenshot directory", "dir", dir)
	return nil
}

// Close stops the directory watch, if one was started.
func (s *ScreenshotStore) Close() error {
	if s.watcher == nil {
		return nil
	}
	close(s.done)
	return s.watcher.Close()
}

func (s *ScreenshotStore) watchLoop() {
	for {
		select {
		case event, ok := <-s.watcher.Events:
			if !ok {
				return
			}
			// Only write and create events carry new content.
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if !strings.EqualFold(filepath.Ext(event.Name), ".png") {
				continue
			}
			s.loadFile(event.Name)
		case err, ok := <-s.watcher.Errors:
			if !ok {
				return
			}
			s.logger.Error("screenshot watcher error", "error", err)
		case <-s.done:
			return
		}
	}
}

func (s *ScreenshotStore) loadFile(path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		s.logger.Warn("read screenshot", "path", path, "error", err)
		return
	}
	if s.Set(data) {
		s.logger.Debug("screenshot updated", "path", path, "bytes", len(data))
	}
}

// newestPNG returns the most recently modified PNG file in dir.
func newestPNG(dir string) (string, bool) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", false
	}

	var newest string
	var newestMod time.Time
	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), ".png") {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		if newest == "" || info.ModTime().After(newestMod) {
			newest = e.Name()
			newestMod = info.ModTime()
		}
	}

	if newest == "" {
		return "", false
	}
	return filepath.Join(dir, newest), true
}

// placeholderPNG renders a small gradient so GET /screenshot has bytes
// to serve before any real screenshot arrives.
func placeholderPNG() []byte {
	const width, height = 320, 200
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.RGBA{
				R: uint8(40 + x/4),
				G: uint8(40 + y/2),
				B: 90,
				A: 255,
			})
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil
	}
	return buf.Bytes()
}
