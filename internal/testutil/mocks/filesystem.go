// Package mocks provides test doubles for the ports package.
package mocks

import (
	"fmt"
	"os"
	"sort"
	"sync"
	"time"

	"github.com/felixgeelhaar/cornershape/internal/ports"
)

// FileSystem is a thread-safe in-memory test double for ports.FileSystem.
type FileSystem struct {
	mu        sync.RWMutex
	files     map[string][]byte
	modes     map[string]os.FileMode
	readErrs  map[string]error
	writeErrs map[string]error
	writes    []string
}

// NewFileSystem creates a new FileSystem mock.
func NewFileSystem() *FileSystem {
	return &FileSystem{
		files:     make(map[string][]byte),
		modes:     make(map[string]os.FileMode),
		readErrs:  make(map[string]error),
		writeErrs: make(map[string]error),
	}
}

// AddFile adds a file to the mock filesystem.
func (fs *FileSystem) AddFile(path string, content string) {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	fs.files[path] = []byte(content)
}

// SetMode records the permission bits reported for path.
func (fs *FileSystem) SetMode(path string, mode os.FileMode) {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	fs.modes[path] = mode
}

// FailRead makes every ReadFile of path return err.
func (fs *FileSystem) FailRead(path string, err error) {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	fs.readErrs[path] = err
}

// FailWrite makes every WriteFile of path return err.
func (fs *FileSystem) FailWrite(path string, err error) {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	fs.writeErrs[path] = err
}

// ReadFile reads a file from the mock filesystem.
func (fs *FileSystem) ReadFile(path string) ([]byte, error) {
	fs.mu.RLock()
	defer fs.mu.RUnlock()
	if err, ok := fs.readErrs[path]; ok {
		return nil, err
	}
	if content, ok := fs.files[path]; ok {
		out := make([]byte, len(content))
		copy(out, content)
		return out, nil
	}
	return nil, fmt.Errorf("open %s: %w", path, os.ErrNotExist)
}

// WriteFile writes a file to the mock filesystem.
func (fs *FileSystem) WriteFile(path string, data []byte, perm os.FileMode) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	if err, ok := fs.writeErrs[path]; ok {
		return err
	}
	stored := make([]byte, len(data))
	copy(stored, data)
	fs.files[path] = stored
	fs.modes[path] = perm
	fs.writes = append(fs.writes, path)
	return nil
}

// Exists checks if a file exists in the mock filesystem.
func (fs *FileSystem) Exists(path string) bool {
	fs.mu.RLock()
	defer fs.mu.RUnlock()
	_, ok := fs.files[path]
	return ok
}

// GetFileInfo returns metadata for a file in the mock filesystem.
func (fs *FileSystem) GetFileInfo(path string) (ports.FileInfo, error) {
	fs.mu.RLock()
	defer fs.mu.RUnlock()
	content, ok := fs.files[path]
	if !ok {
		return ports.FileInfo{}, fmt.Errorf("stat %s: %w", path, os.ErrNotExist)
	}
	mode, ok := fs.modes[path]
	if !ok {
		mode = ports.DefaultFileMode
	}
	return ports.FileInfo{
		Size:    int64(len(content)),
		Mode:    mode,
		ModTime: time.Time{},
	}, nil
}

// Content returns the current content of path, or "" when absent.
func (fs *FileSystem) Content(path string) string {
	fs.mu.RLock()
	defer fs.mu.RUnlock()
	return string(fs.files[path])
}

// Writes returns the paths written so far, in order.
func (fs *FileSystem) Writes() []string {
	fs.mu.RLock()
	defer fs.mu.RUnlock()
	out := make([]string, len(fs.writes))
	copy(out, fs.writes)
	return out
}

// Paths returns every stored path, sorted.
func (fs *FileSystem) Paths() []string {
	fs.mu.RLock()
	defer fs.mu.RUnlock()
	out := make([]string, 0, len(fs.files))
	for p := range fs.files {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}

var _ ports.FileSystem = (*FileSystem)(nil)
