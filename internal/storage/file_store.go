// Package storage persists uploaded image files under a deterministic
// directory layout and derives the public URLs that point at them.
package storage

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Folder partitions the upload tree by entity kind so products and events
// never collide even with numerically identical ids.
type Folder string

const (
	FolderProducts Folder = "products"
	FolderEvents   Folder = "events"
)

// ErrImageStore wraps any I/O failure while storing or deleting an image.
var ErrImageStore = errors.New("image store failure")

// FileStore saves uploaded files to disk under a base directory, laid out as
// {root}/{folder}/{entityID}/{fileName}.
type FileStore struct {
	root string
}

// NewFileStore creates the base directory if missing.
func NewFileStore(root string) (*FileStore, error) {
	if strings.TrimSpace(root) == "" {
		return nil, fmt.Errorf("%w: storage root is required", ErrImageStore)
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("%w: create storage root: %v", ErrImageStore, err)
	}
	return &FileStore{root: root}, nil
}

// Store writes the file's bytes into the entity's folder, replacing any
// existing file of the same name (last write wins).
func (f *FileStore) Store(folder Folder, entityID uint64, fileName string, r io.Reader) error {
	dir := filepath.Join(f.root, string(folder), strconv.FormatUint(entityID, 10))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("%w: create entity dir %s: %v", ErrImageStore, dir, err)
	}
	target := filepath.Join(dir, CleanFileName(fileName))
	out, err := os.Create(target)
	if err != nil {
		return fmt.Errorf("%w: create file %s: %v", ErrImageStore, target, err)
	}
	defer out.Close()
	if _, err := io.Copy(out, r); err != nil {
		return fmt.Errorf("%w: write file %s: %v", ErrImageStore, target, err)
	}
	return nil
}

// Delete removes the named file if it exists. Deleting a file that is
// already gone is not an error.
func (f *FileStore) Delete(folder Folder, entityID uint64, fileName string) error {
	target := filepath.Join(f.root, string(folder), strconv.FormatUint(entityID, 10), CleanFileName(fileName))
	if err := os.Remove(target); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: delete file %s: %v", ErrImageStore, target, err)
	}
	return nil
}

// CleanFileName strips any path components from an uploaded name so files can
// never escape their entity folder. Callers recording a name alongside the
// stored file must record the cleaned form, which is what ends up on disk.
func CleanFileName(name string) string {
	name = filepath.Base(strings.TrimSpace(name))
	name = strings.ReplaceAll(name, string(os.PathSeparator), "_")
	if name == "" || name == "." || name == ".." {
		return "upload"
	}
	return name
}
