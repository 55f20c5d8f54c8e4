// Package scratch holds generated images on local disk between generation
// and upload.
package scratch

import (
	"errors"
	"fmt"
	"net/http"
	"os"
)

type File struct {
	Path        string
	ContentType string
}

// Write stores data in a new uniquely named file under dir, creating dir if
// needed. The returned file must be released with Remove.
func Write(dir string, data []byte) (*File, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create scratch dir: %w", err)
	}

	contentType := http.DetectContentType(data)
	f, err := os.CreateTemp(dir, "thumbnail-*"+extensionFor(contentType))
	if err != nil {
		return nil, fmt.Errorf("failed to create scratch file: %w", err)
	}

	file := &File{Path: f.Name(), ContentType: contentType}
	if _, err := f.Write(data); err != nil {
		f.Close()
		file.Remove()
		return nil, fmt.Errorf("failed to write scratch file: %w", err)
	}
	if err := f.Close(); err != nil {
		file.Remove()
		return nil, fmt.Errorf("failed to close scratch file: %w", err)
	}

	return file, nil
}

// Remove deletes the file. It is safe to call on a nil File and more than once.
func (f *File) Remove() error {
	if f == nil || f.Path == "" {
		return nil
	}
	if err := os.Remove(f.Path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove scratch file: %w", err)
	}
	return nil
}

func extensionFor(contentType string) string {
	switch contentType {
	case "image/png":
		return ".png"
	case "image/jpeg":
		return ".jpg"
	case "image/webp":
		return ".webp"
	case "image/gif":
		return ".gif"
	}
	return ".bin"
}
