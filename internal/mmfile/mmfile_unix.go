//go:build unix

package mmfile

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// Map maps the file at path read-only and returns its contents with a release
// function. Empty files yield an empty slice and a no-op release.
func Map(path string) ([]byte, func() error, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close() // mapping keeps pages alive

	info, err := f.Stat()
	if err != nil {
		return nil, nil, err
	}
	size := info.Size()
	if size == 0 {
		return []byte{}, noop, nil
	}
	if size > MaxSize || size > int64(^uint(0)>>1) {
		return nil, nil, fmt.Errorf("%w (%d bytes)", ErrTooLarge, size)
	}
	data, err := unix.Mmap(int(f.Fd()), 0, int(size), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		// Some filesystems (procfs, fuse) refuse mmap; read instead.
		if errors.Is(err, unix.ENODEV) || errors.Is(err, unix.EACCES) {
			buf, rerr := ReadAll(path)
			return buf, noop, rerr
		}
		return nil, nil, err
	}
	// Records are consumed front to back.
	_ = unix.Madvise(data, unix.MADV_SEQUENTIAL)

	released := false
	release := func() error {
		if released {
			return nil
		}
		released = true
		return unix.Munmap(data)
	}
	return data, release, nil
}
