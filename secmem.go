// Package secmem 提供敏感内存（密钥、口令、凭据）的可靠擦除：
// 不会被编译器优化掉的清零原语、释放前清零的擦除分配器、
// 定长敏感缓冲、动态容器别名，以及擦除型所有权记录。
//
// 注意：只擦除各类型自身的底层存储；元素另行持有的内存
// （例如 String 序列里每个元素自己的分配）不会被递归擦除。
package secmem

import (
	"secmem/internal/alloc"
	"secmem/internal/errs"
)

// 对外暴露的 sentinel errors，便于调用方 errors.Is。
var (
	ErrNoSpace     = errs.ErrNoSpace
	ErrBadArgument = errs.ErrBadArgument
)

// Allocator 通用分配器能力接口，见 internal/alloc。
type Allocator[T any] = alloc.Allocator[T]

// ErasingAllocator 无状态擦除分配器：归还存储前整块清零。
type ErasingAllocator[T any] = alloc.Erasing[T]

// CountingAllocator 统计分配/归还次数的包装分配器。
type CountingAllocator[T any] = alloc.Counting[T]

// NewCountingAllocator 创建计数分配器，inner 为 nil 时包装默认擦除分配器。
func NewCountingAllocator[T any](inner Allocator[T]) *CountingAllocator[T] {
	return alloc.NewCounting(inner)
}
