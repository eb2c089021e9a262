package secmem

import (
	"secmem/internal/alloc"
)

// Deque 双端队列：环形缓冲，存储全部经由擦除分配器取得与归还。
// 与 Vector 一样，擦除只发生在存储归还时，弹出元素不清零。
type Deque[T any] struct {
	a    Allocator[T]
	data []T
	head int
	n    int
}

// NewDeque 用默认擦除分配器创建空队列。
func NewDeque[T any]() *Deque[T] {
	return NewDequeIn[T](nil)
}

// NewDequeIn 用指定分配器创建空队列，a 为 nil 时用默认擦除分配器。
func NewDequeIn[T any](a Allocator[T]) *Deque[T] {
	if a == nil {
		a = alloc.Erasing[T]{}
	}
	return &Deque[T]{a: a}
}

// Len 返回当前长度。
func (d *Deque[T]) Len() int {
	if d == nil {
		return 0
	}
	return d.n
}

// At 返回从队首数第 i 个元素，越界 panic。
func (d *Deque[T]) At(i int) T {
	if i < 0 || i >= d.n {
		panic("secmem: deque index out of range")
	}
	return d.data[(d.head+i)%len(d.data)]
}

// PushBack 在队尾追加。
func (d *Deque[T]) PushBack(x T) error {
	if err := d.grow(d.n + 1); err != nil {
		return err
	}
	d.a.Construct(&d.data[(d.head+d.n)%len(d.data)], x)
	d.n++
	return nil
}

// PushFront 在队首追加。
func (d *Deque[T]) PushFront(x T) error {
	if err := d.grow(d.n + 1); err != nil {
		return err
	}
	d.head = (d.head - 1 + len(d.data)) % len(d.data)
	d.a.Construct(&d.data[d.head], x)
	d.n++
	return nil
}

// PopFront 弹出队首元素；空队列返回零值与 false。
func (d *Deque[T]) PopFront() (T, bool) {
	var zero T
	if d == nil || d.n == 0 {
		return zero, false
	}
	x := d.data[d.head]
	d.a.Destroy(&d.data[d.head])
	d.head = (d.head + 1) % len(d.data)
	d.n--
	return x, true
}

// PopBack 弹出队尾元素；空队列返回零值与 false。
func (d *Deque[T]) PopBack() (T, bool) {
	var zero T
	if d == nil || d.n == 0 {
		return zero, false
	}
	i := (d.head + d.n - 1) % len(d.data)
	x := d.data[i]
	d.a.Destroy(&d.data[i])
	d.n--
	return x, true
}

// Clone 用同一分配器拷贝出存储独立的新队列。
func (d *Deque[T]) Clone() (*Deque[T], error) {
	c := NewDequeIn(d.a)
	for i := 0; i < d.Len(); i++ {
		if err := c.PushBack(d.At(i)); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Destroy 析构全部元素并归还存储（由分配器清零），幂等。
func (d *Deque[T]) Destroy() {
	if d == nil {
		return
	}
	if d.data != nil {
		for i := 0; i < d.n; i++ {
			d.a.Destroy(&d.data[(d.head+i)%len(d.data)])
		}
		d.a.Deallocate(d.data)
		d.data = nil
	}
	d.head = 0
	d.n = 0
}

// grow 确保容量不小于 want；搬迁时按逻辑顺序摊平到新存储，
// 旧存储由分配器清零释放。
func (d *Deque[T]) grow(want int) error {
	if want <= len(d.data) {
		return nil
	}
	newCap := len(d.data) * 2
	if newCap < want {
		newCap = want
	}
	if newCap < 4 {
		newCap = 4
	}
	nd, err := d.a.Allocate(newCap)
	if err != nil {
		return err
	}
	for i := 0; i < d.n; i++ {
		nd[i] = d.data[(d.head+i)%len(d.data)]
	}
	d.a.Deallocate(d.data)
	d.data = nd
	d.head = 0
	return nil
}
