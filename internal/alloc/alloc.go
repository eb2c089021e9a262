package alloc

import (
	"math"
	"unsafe"

	"secmem/internal/errs"
	"secmem/internal/trivial"
	"secmem/internal/zeromem"
)

// Allocator 通用分配器能力接口：存储的取得与归还，外加元素生命周期钩子。
// 钩子与擦除无关，擦除（若有）只发生在 Deallocate。
type Allocator[T any] interface {
	// Allocate 分配 n 个元素的存储，失败返回 error。
	Allocate(n int) ([]T, error)
	// Deallocate 归还 Allocate 返回的存储，不会失败；nil/空为 no-op。
	Deallocate(p []T)
	// Construct 在 p 处就地写入 v。
	Construct(p *T, v T)
	// Destroy 结束 p 处元素的生命周期。
	Destroy(p *T)
	// Equal 判断两个分配器能否互换归还对方分配的存储。
	Equal(other Allocator[T]) bool
}

// Erasing 无状态擦除分配器：Deallocate 先把整块存储清零再归还。
// 同一 T 的所有实例可互换，容器移动/交换无需重新分配。
type Erasing[T any] struct{}

var _ Allocator[byte] = Erasing[byte]{}

// Allocate 分配 n 个零值元素；n<0 报 ErrBadArgument，
// n*sizeof(T) 超出地址空间报 ErrNoSpace。
func (Erasing[T]) Allocate(n int) ([]T, error) {
	if n < 0 {
		return nil, errs.ErrBadArgument
	}
	if n == 0 {
		return nil, nil
	}
	var zero T
	if size := unsafe.Sizeof(zero); size > 0 && uintptr(n) > math.MaxInt/size {
		return nil, errs.ErrNoSpace
	}
	return make([]T, n), nil
}

// Deallocate 清零 len(p)*sizeof(T) 字节后丢弃引用。
// 先做带类型的清零：T 含指针时 GC 并发扫描不能看到逐字节写出的
// 撕裂指针字；随后再走保证不被优化掉的字节路径。
func (Erasing[T]) Deallocate(p []T) {
	clear(p)
	zeromem.Zero(trivial.SliceBytes(p))
}

// Construct 就地写入。
func (Erasing[T]) Construct(p *T, v T) {
	*p = v
}

// Destroy 元素析构。刻意不清零：清零只在存储归还时做一次。
func (Erasing[T]) Destroy(p *T) {
}

// Equal 同一 T 的 Erasing 分配器总是相等。
func (Erasing[T]) Equal(other Allocator[T]) bool {
	_, ok := other.(Erasing[T])
	return ok
}

// Counting 包装另一个分配器并统计调用，用于验证分配/归还 1:1 配对
// 以及擦除归还的字节数。非并发安全，单 goroutine 使用。
type Counting[T any] struct {
	Inner      Allocator[T]
	Allocs     int
	Deallocs   int
	Constructs int
	Destroys   int
	FreedBytes int
}

var _ Allocator[byte] = (*Counting[byte])(nil)

// NewCounting 创建计数分配器，inner 为 nil 时包装默认 Erasing。
func NewCounting[T any](inner Allocator[T]) *Counting[T] {
	if inner == nil {
		inner = Erasing[T]{}
	}
	return &Counting[T]{Inner: inner}
}

func (c *Counting[T]) Allocate(n int) ([]T, error) {
	p, err := c.Inner.Allocate(n)
	if err == nil && len(p) > 0 {
		c.Allocs++
	}
	return p, err
}

func (c *Counting[T]) Deallocate(p []T) {
	if len(p) > 0 {
		c.Deallocs++
		var zero T
		c.FreedBytes += len(p) * int(unsafe.Sizeof(zero))
	}
	c.Inner.Deallocate(p)
}

func (c *Counting[T]) Construct(p *T, v T) {
	c.Constructs++
	c.Inner.Construct(p, v)
}

func (c *Counting[T]) Destroy(p *T) {
	c.Destroys++
	c.Inner.Destroy(p)
}

// Equal 计数器带状态，仅与自身相等。
func (c *Counting[T]) Equal(other Allocator[T]) bool {
	o, ok := other.(*Counting[T])
	return ok && o == c
}
