package secmem

import (
	"secmem/internal/trivial"
	"secmem/internal/zeromem"
)

// Erase 将字节区域清零，保证写入不被死存储消除优化掉。
// nil 或空切片为 no-op，永不失败。
func Erase(b []byte) {
	zeromem.Zero(b)
}

// EraseSlice 清零切片底层存储的 len(s)*sizeof(T) 字节。
// 注意：元素自身另行分配的内存（指针指向的数据等）不会被擦除。
// 先带类型清零再走字节路径，避免 GC 扫到撕裂的指针字。
func EraseSlice[T any](s []T) {
	clear(s)
	zeromem.Zero(trivial.SliceBytes(s))
}

// EraseValue 清零单个值（标量、枚举样整型、指针或无指针聚合）。
// T 含 string/slice/map 等引用头时返回错误；v 为 nil 时 no-op。
// 擦除指针只清掉指针本身，不清它指向的数据。
func EraseValue[T any](v *T) error {
	if err := trivial.AssertNoPointers[T](); err != nil {
		return err
	}
	if v == nil {
		return nil
	}
	var zero T
	*v = zero
	zeromem.Zero(trivial.BytesOf(v))
	return nil
}
