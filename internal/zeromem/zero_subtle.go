//go:build secmem_subtle

package zeromem

import "crypto/subtle"

// 标准库保证路径：ConstantTimeCopy 的拷贝不会被整体消除。
func zeroBytes(b []byte) {
	zero := make([]byte, len(b))
	subtle.ConstantTimeCopy(1, b, zero)
}
