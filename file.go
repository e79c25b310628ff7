package closer

import (
	"errors"
	"os"
)

// File binds *os.File into the teardown contract with durability: Close
// flushes buffered writes and metadata to stable storage (Sync) before
// releasing the descriptor. The plain os.File Close never syncs, so a
// write that only reached the page cache can be lost without any error
// surfacing; this binding closes that gap.
type File struct {
	*os.File
}

// NewFile binds an already-open file.
func NewFile(f *os.File) File {
	return File{File: f}
}

// Create opens name for writing, truncating it if it exists, bound into
// the durable-close contract.
func Create(name string) (File, error) {
	f, err := os.Create(name)
	if err != nil {
		return File{}, err
	}
	return NewFile(f), nil
}

// Close syncs, then releases the descriptor. A Sync failure is the close
// failure; the descriptor is released either way.
func (f File) Close() error {
	serr := f.Sync()
	cerr := f.File.Close()
	return errors.Join(serr, cerr)
}
