package ports

import (
	"os"
	"time"
)

// FileInfo contains file metadata.
type FileInfo struct {
	Size    int64
	Mode    os.FileMode
	ModTime time.Time
	IsDir   bool
}

// FileSystem is the narrow set of file operations the setup service needs:
// probing candidate files, reading them whole and writing them back once.
type FileSystem interface {
	ReadFile(path string) ([]byte, error)
	WriteFile(path string, data []byte, perm os.FileMode) error
	Exists(path string) bool
	GetFileInfo(path string) (FileInfo, error)
}

// DefaultFileMode is used when the mode of an existing file cannot be read.
const DefaultFileMode os.FileMode = 0o644
