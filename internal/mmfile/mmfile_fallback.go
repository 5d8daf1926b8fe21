//go:build !unix

package mmfile

// Map reads the entire file when mmap is not available.
func Map(path string) ([]byte, func() error, error) {
	data, err := ReadAll(path)
	if err != nil {
		return nil, noop, err
	}
	return data, noop, nil
}
