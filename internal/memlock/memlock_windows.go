//go:build windows

package memlock

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

// Lock 将 b 锁进物理内存，避免被换出到页面文件。
func Lock(b []byte) error {
	if len(b) == 0 {
		return nil
	}
	return windows.VirtualLock(uintptr(unsafe.Pointer(&b[0])), uintptr(len(b)))
}

// Unlock 解除锁定。
func Unlock(b []byte) error {
	if len(b) == 0 {
		return nil
	}
	return windows.VirtualUnlock(uintptr(unsafe.Pointer(&b[0])), uintptr(len(b)))
}
