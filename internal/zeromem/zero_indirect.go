//go:build !secmem_subtle

package zeromem

import "runtime"

// 填零经由包级函数变量间接调用，优化器无法证明调用目标，
// 也就无法证明这些写入是死存储。等价于 C 里 volatile 函数指针的做法。
var zeroFunc = zeroLoop

//go:noinline
func zeroLoop(b []byte) {
	for i := range b {
		b[i] = 0
	}
	runtime.KeepAlive(b)
}

func zeroBytes(b []byte) {
	zeroFunc(b)
}
