package journal

import (
	"bufio"
	"os"
)

// File is a Writer bound to a file, committed atomically. Commands are
// buffered into path+".part"; Commit renames it over the target, and
// Discard removes it, so a failed run never leaves a half-written
// script where the modeler could pick it up.
//
// Usage: Create, defer Discard, Commit on success.
type File struct {
	*Writer
	path string
	tmp  string
	f    *os.File
	buf  *bufio.Writer
	done bool
}

// Create opens the temporary journal file next to path.
func Create(path string) (*File, error) {
	tmp := path + ".part"
	f, err := os.Create(tmp)
	if err != nil {
		return nil, err
	}
	buf := bufio.NewWriter(f)
	return &File{Writer: New(buf), path: path, tmp: tmp, f: f, buf: buf}, nil
}

// Commit flushes, closes, and renames the temporary file over the
// target path. The File is unusable afterwards.
func (j *File) Commit() error {
	if j.done {
		return nil
	}
	j.done = true
	if err := j.buf.Flush(); err != nil {
		j.f.Close()
		os.Remove(j.tmp)
		return err
	}
	if err := j.f.Close(); err != nil {
		os.Remove(j.tmp)
		return err
	}
	return os.Rename(j.tmp, j.path)
}

// Discard closes and removes the temporary file. Safe to defer
// unconditionally: it is a no-op after Commit.
func (j *File) Discard() {
	if j.done {
		return
	}
	j.done = true
	j.f.Close()
	os.Remove(j.tmp)
}
