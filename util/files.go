package util

import (
	"golang.org/x/sys/unix"
)

// IsSocketFile checks if the given path exists as a unix domain socket
func IsSocketFile(path string) bool {
	var stat unix.Stat_t
	if err := unix.Stat(path, &stat); err != nil {
		return false
	}
	return stat.Mode&unix.S_IFMT == unix.S_IFSOCK
}

// FindSocketFile returns the first path of a unix domain socket in the given candidates
func FindSocketFile(candidates []string) (string, bool) {
	for _, path := range candidates {
		if IsSocketFile(path) {
			return path, true
		}
	}
	return "", false
}
