package secmem

import (
	"secmem/internal/alloc"
	"secmem/internal/errs"
	"secmem/internal/memlock"
	"secmem/internal/trivial"
	"secmem/internal/zeromem"
)

// Buffer 定长敏感缓冲：持有 n 个平凡类型元素，Destroy 时把
// n*sizeof(T) 字节整块清零，作为拆除的最后一步，然后才释放存储。
// 仅接受可无条件清零的类型（构造时校验），因为清零对含引用头
// 或需要成员数据存活到析构的类型不安全。
type Buffer[T any] struct {
	data   []T
	locked bool
}

// NewBuffer 创建容量 n 的缓冲。init 依序填充前 len(init) 个元素，
// 其余元素零值初始化；len(init) > n 或 n < 0 返回 ErrBadArgument。
// 创建后尽力锁页防换出，锁失败（如 RLIMIT_MEMLOCK）不算错误。
func NewBuffer[T any](n int, init ...T) (*Buffer[T], error) {
	if err := trivial.AssertNoPointers[T](); err != nil {
		return nil, err
	}
	if n < 0 || len(init) > n {
		return nil, errs.ErrBadArgument
	}
	data, err := alloc.Erasing[T]{}.Allocate(n)
	if err != nil {
		return nil, err
	}
	copy(data, init)
	b := &Buffer[T]{data: data}
	if memlock.Lock(trivial.SliceBytes(data)) == nil {
		b.locked = true
	}
	return b, nil
}

// Len 返回容量 n。
func (b *Buffer[T]) Len() int {
	if b == nil {
		return 0
	}
	return len(b.data)
}

// At 返回第 i 个元素，越界 panic。
func (b *Buffer[T]) At(i int) T {
	return b.data[i]
}

// Set 写入第 i 个元素，越界 panic。
func (b *Buffer[T]) Set(i int, v T) {
	b.data[i] = v
}

// Data 返回底层切片（供读写与迭代），Destroy 后勿用。
func (b *Buffer[T]) Data() []T {
	if b == nil {
		return nil
	}
	return b.data
}

// Clone 拷贝出存储独立的新缓冲，两者可各自擦除互不影响。
func (b *Buffer[T]) Clone() (*Buffer[T], error) {
	if b == nil || b.data == nil {
		return NewBuffer[T](0)
	}
	return NewBuffer(len(b.data), b.data...)
}

// Destroy 整块清零后释放存储，幂等。顺序固定：先清零、再解锁、
// 最后丢弃引用，任何颠倒都会留下未擦除的残留。
func (b *Buffer[T]) Destroy() {
	if b == nil || b.data == nil {
		return
	}
	region := trivial.SliceBytes(b.data)
	clear(b.data)
	zeromem.Zero(region)
	if b.locked {
		_ = memlock.Unlock(region)
		b.locked = false
	}
	b.data = nil
}
