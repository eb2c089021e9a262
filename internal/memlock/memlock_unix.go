//go:build unix

package memlock

import (
	"golang.org/x/sys/unix"
)

// Lock 将 b 锁进物理内存，避免被换出到 swap。
func Lock(b []byte) error {
	if len(b) == 0 {
		return nil
	}
	return unix.Mlock(b)
}

// Unlock 解除锁定。
func Unlock(b []byte) error {
	if len(b) == 0 {
		return nil
	}
	return unix.Munlock(b)
}
