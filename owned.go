package secmem

import (
	"sync/atomic"
	"unsafe"

	"secmem/internal/alloc"
)

// 擦除型删除器与所有权记录。裸指针不携带长度，数组删除器只能
// 相信构造时给它的 count；count 与实际分配错配会导致擦除范围
// 不正确，删除器自身无法校验。工厂函数把指针、长度、删除器绑在
// 同一条记录里一次建好，调用方就不必自己维护这份同步。

// ArrayDeleter 数组删除器：持有元素个数，Invoke 时逐元素析构，
// 再擦除 Count*sizeof(T) 字节并释放。
type ArrayDeleter[T any] struct {
	Count int
	a     Allocator[T]
}

// NewArrayDeleter 绑定元素个数与分配器，a 为 nil 时用默认擦除分配器。
func NewArrayDeleter[T any](count int, a Allocator[T]) ArrayDeleter[T] {
	if a == nil {
		a = alloc.Erasing[T]{}
	}
	return ArrayDeleter[T]{Count: count, a: a}
}

// Invoke 删除数组 p：析构前 Count 个元素，擦除 Count*sizeof(T)
// 字节后释放。p 为 nil 时 no-op；Count 超过 p 的实际长度会 panic。
func (d ArrayDeleter[T]) Invoke(p []T) {
	if p == nil {
		return
	}
	a := d.a
	if a == nil {
		a = alloc.Erasing[T]{}
	}
	s := p[:d.Count]
	for i := range s {
		a.Destroy(&s[i])
	}
	a.Deallocate(s)
}

// ObjectDeleter 单对象删除器：无计数状态，Invoke 时擦除
// sizeof(T) 字节并释放。只擦对象自身字段，不含其成员间接持有的
// 内存；含另行分配数据的对象应改用 Vector/String。
type ObjectDeleter[T any] struct {
	a Allocator[T]
}

// NewObjectDeleter 绑定分配器，a 为 nil 时用默认擦除分配器。
func NewObjectDeleter[T any](a Allocator[T]) ObjectDeleter[T] {
	return ObjectDeleter[T]{a: a}
}

// Invoke 删除对象 p：析构、擦除 sizeof(T) 字节后释放。nil no-op。
func (d ObjectDeleter[T]) Invoke(p *T) {
	if p == nil {
		return
	}
	a := d.a
	if a == nil {
		a = alloc.Erasing[T]{}
	}
	a.Destroy(p)
	a.Deallocate(unsafe.Slice(p, 1))
}

// UniqueArray 独占所有权的数组记录：指针、长度、删除器三者绑定，
// 只能由工厂创建。Free 幂等。
type UniqueArray[T any] struct {
	data []T
	del  ArrayDeleter[T]
}

// NewUniqueArray 分配 n 个零值元素并绑定匹配的数组删除器。
func NewUniqueArray[T any](n int) (*UniqueArray[T], error) {
	return NewUniqueArrayIn[T](nil, n)
}

// NewUniqueArrayIn 同上，存储经由指定分配器取得与归还。
func NewUniqueArrayIn[T any](a Allocator[T], n int) (*UniqueArray[T], error) {
	if a == nil {
		a = alloc.Erasing[T]{}
	}
	p, err := a.Allocate(n)
	if err != nil {
		return nil, err
	}
	var zero T
	for i := range p {
		a.Construct(&p[i], zero)
	}
	return &UniqueArray[T]{data: p, del: ArrayDeleter[T]{Count: len(p), a: a}}, nil
}

// Data 返回底层切片，Free 后勿用。
func (u *UniqueArray[T]) Data() []T {
	if u == nil {
		return nil
	}
	return u.data
}

// Len 返回元素个数。
func (u *UniqueArray[T]) Len() int {
	if u == nil {
		return 0
	}
	return len(u.data)
}

// Free 擦除并释放，幂等。
func (u *UniqueArray[T]) Free() {
	if u == nil || u.data == nil {
		return
	}
	u.del.Invoke(u.data)
	u.data = nil
}

// UniqueObject 独占所有权的单对象记录。
type UniqueObject[T any] struct {
	p   *T
	del ObjectDeleter[T]
}

// NewUniqueObject 分配单个对象、就地构造为 v，并绑定对象删除器。
func NewUniqueObject[T any](v T) (*UniqueObject[T], error) {
	return NewUniqueObjectIn[T](nil, v)
}

// NewUniqueObjectIn 同上，存储经由指定分配器取得与归还。
func NewUniqueObjectIn[T any](a Allocator[T], v T) (*UniqueObject[T], error) {
	if a == nil {
		a = alloc.Erasing[T]{}
	}
	s, err := a.Allocate(1)
	if err != nil {
		return nil, err
	}
	a.Construct(&s[0], v)
	return &UniqueObject[T]{p: &s[0], del: ObjectDeleter[T]{a: a}}, nil
}

// Get 返回对象指针，Free 后勿用。
func (u *UniqueObject[T]) Get() *T {
	if u == nil {
		return nil
	}
	return u.p
}

// Free 擦除并释放，幂等。
func (u *UniqueObject[T]) Free() {
	if u == nil || u.p == nil {
		return
	}
	u.del.Invoke(u.p)
	u.p = nil
}

type sharedArrayState[T any] struct {
	refs atomic.Int64
	data []T
	del  ArrayDeleter[T]
}

// SharedArray 共享所有权的数组记录：每个句柄计一个引用，
// 最后一个 Release 触发唯一一次擦除释放。
type SharedArray[T any] struct {
	s *sharedArrayState[T]
}

// NewSharedArray 分配 n 个零值元素并绑定匹配的数组删除器，引用计 1。
func NewSharedArray[T any](n int) (*SharedArray[T], error) {
	return NewSharedArrayIn[T](nil, n)
}

// NewSharedArrayIn 同上，存储经由指定分配器取得与归还。
func NewSharedArrayIn[T any](a Allocator[T], n int) (*SharedArray[T], error) {
	u, err := NewUniqueArrayIn(a, n)
	if err != nil {
		return nil, err
	}
	st := &sharedArrayState[T]{data: u.data, del: u.del}
	st.refs.Store(1)
	u.data = nil // 所有权转入共享状态
	return &SharedArray[T]{s: st}, nil
}

// Data 返回底层切片，最后一个 Release 后勿用。
func (h *SharedArray[T]) Data() []T {
	if h == nil || h.s == nil {
		return nil
	}
	return h.s.data
}

// Len 返回元素个数。
func (h *SharedArray[T]) Len() int {
	return len(h.Data())
}

// Retain 新增一个持有者，返回新句柄。
func (h *SharedArray[T]) Retain() *SharedArray[T] {
	if h == nil || h.s == nil {
		return nil
	}
	h.s.refs.Add(1)
	return &SharedArray[T]{s: h.s}
}

// Release 放弃本句柄的持有；最后一个持有者触发擦除释放。
// 对同一句柄重复调用为 no-op。
func (h *SharedArray[T]) Release() {
	if h == nil || h.s == nil {
		return
	}
	s := h.s
	h.s = nil
	if s.refs.Add(-1) == 0 {
		s.del.Invoke(s.data)
		s.data = nil
	}
}

type sharedObjectState[T any] struct {
	refs atomic.Int64
	p    *T
	del  ObjectDeleter[T]
}

// SharedObject 共享所有权的单对象记录。
type SharedObject[T any] struct {
	s *sharedObjectState[T]
}

// NewSharedObject 分配单个对象、就地构造为 v，引用计 1。
func NewSharedObject[T any](v T) (*SharedObject[T], error) {
	return NewSharedObjectIn[T](nil, v)
}

// NewSharedObjectIn 同上，存储经由指定分配器取得与归还。
func NewSharedObjectIn[T any](a Allocator[T], v T) (*SharedObject[T], error) {
	u, err := NewUniqueObjectIn(a, v)
	if err != nil {
		return nil, err
	}
	st := &sharedObjectState[T]{p: u.p, del: u.del}
	st.refs.Store(1)
	u.p = nil
	return &SharedObject[T]{s: st}, nil
}

// Get 返回对象指针，最后一个 Release 后勿用。
func (h *SharedObject[T]) Get() *T {
	if h == nil || h.s == nil {
		return nil
	}
	return h.s.p
}

// Retain 新增一个持有者，返回新句柄。
func (h *SharedObject[T]) Retain() *SharedObject[T] {
	if h == nil || h.s == nil {
		return nil
	}
	h.s.refs.Add(1)
	return &SharedObject[T]{s: h.s}
}

// Release 放弃本句柄的持有；最后一个持有者触发擦除释放。
func (h *SharedObject[T]) Release() {
	if h == nil || h.s == nil {
		return
	}
	s := h.s
	h.s = nil
	if s.refs.Add(-1) == 0 {
		s.del.Invoke(s.p)
		s.p = nil
	}
}
