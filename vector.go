package secmem

import (
	"secmem/internal/alloc"
	"secmem/internal/errs"
)

// Vector 动态序列：存储全部经由擦除分配器取得与归还，扩容换下的
// 旧存储由分配器清零后释放。擦除责任完全委托给分配器，容器自身
// 不做任何清零。元素另行持有的内存不会被递归擦除。
type Vector[T any] struct {
	a    Allocator[T]
	data []T
	n    int
}

// NewVector 用默认擦除分配器创建空序列。
func NewVector[T any]() *Vector[T] {
	return NewVectorIn[T](nil)
}

// NewVectorIn 用指定分配器创建空序列，a 为 nil 时用默认擦除分配器。
func NewVectorIn[T any](a Allocator[T]) *Vector[T] {
	if a == nil {
		a = alloc.Erasing[T]{}
	}
	return &Vector[T]{a: a}
}

// Len 返回当前长度。
func (v *Vector[T]) Len() int {
	if v == nil {
		return 0
	}
	return v.n
}

// Cap 返回当前容量。
func (v *Vector[T]) Cap() int {
	if v == nil {
		return 0
	}
	return len(v.data)
}

// At 返回第 i 个元素，越界 panic。
func (v *Vector[T]) At(i int) T {
	return v.data[:v.n][i]
}

// Set 写入第 i 个元素，越界 panic。
func (v *Vector[T]) Set(i int, x T) {
	v.data[:v.n][i] = x
}

// Data 返回 [0, Len) 的切片视图，扩容或 Destroy 后勿用。
func (v *Vector[T]) Data() []T {
	if v == nil {
		return nil
	}
	return v.data[:v.n]
}

// Push 追加一个元素，容量不足时扩容。
func (v *Vector[T]) Push(x T) error {
	if err := v.reserve(v.n + 1); err != nil {
		return err
	}
	v.a.Construct(&v.data[v.n], x)
	v.n++
	return nil
}

// Append 依序追加多个元素。
func (v *Vector[T]) Append(xs ...T) error {
	if err := v.reserve(v.n + len(xs)); err != nil {
		return err
	}
	for _, x := range xs {
		v.a.Construct(&v.data[v.n], x)
		v.n++
	}
	return nil
}

// Pop 弹出末尾元素；空序列返回零值与 false。弹出只析构不清零，
// 残留数据到存储归还时才被擦除。
func (v *Vector[T]) Pop() (T, bool) {
	var zero T
	if v == nil || v.n == 0 {
		return zero, false
	}
	v.n--
	x := v.data[v.n]
	v.a.Destroy(&v.data[v.n])
	return x, true
}

// Resize 调整长度为 n：变长部分零值初始化，变短部分只析构。
func (v *Vector[T]) Resize(n int) error {
	if n < 0 {
		return errs.ErrBadArgument
	}
	if n > v.n {
		if err := v.reserve(n); err != nil {
			return err
		}
		var zero T
		for i := v.n; i < n; i++ {
			v.a.Construct(&v.data[i], zero)
		}
	} else {
		for i := n; i < v.n; i++ {
			v.a.Destroy(&v.data[i])
		}
	}
	v.n = n
	return nil
}

// Clone 用同一分配器拷贝出存储独立的新序列。
func (v *Vector[T]) Clone() (*Vector[T], error) {
	c := NewVectorIn(v.a)
	if err := c.Append(v.Data()...); err != nil {
		return nil, err
	}
	return c, nil
}

// Destroy 析构全部元素并归还存储（由分配器清零），幂等。
func (v *Vector[T]) Destroy() {
	if v == nil || v.data == nil {
		v.reset()
		return
	}
	for i := 0; i < v.n; i++ {
		v.a.Destroy(&v.data[i])
	}
	v.a.Deallocate(v.data)
	v.data = nil
	v.n = 0
}

func (v *Vector[T]) reset() {
	if v != nil {
		v.n = 0
	}
}

func (v *Vector[T]) reserve(want int) error {
	if want <= len(v.data) {
		return nil
	}
	newCap := len(v.data) * 2
	if newCap < want {
		newCap = want
	}
	if newCap < 4 {
		newCap = 4
	}
	nd, err := v.a.Allocate(newCap)
	if err != nil {
		return err
	}
	copy(nd, v.data[:v.n])
	v.a.Deallocate(v.data)
	v.data = nd
	return nil
}
