package trivial

import (
	"fmt"
	"reflect"
	"unsafe"
)

// AssertNoPointers 校验 T 可以无条件整块清零：标量、枚举样整型、
// 指针、以及只含这些成员的数组/结构体。含 string/slice/map 等
// 引用头的类型清零会破坏其簿记信息，予以拒绝。
func AssertNoPointers[T any]() error {
	// TypeFor 对接口类型参数返回接口类型本身，走下面的拒绝分支；
	// TypeOf(zero) 在这种情况下会返回 nil。
	return typeNoPointers(reflect.TypeFor[T]())
}

func typeNoPointers(t reflect.Type) error {
	switch t.Kind() {
	case reflect.Bool, reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128,
		reflect.Pointer, reflect.UnsafePointer:
		return nil
	case reflect.Array:
		return typeNoPointers(t.Elem())
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if err := typeNoPointers(t.Field(i).Type); err != nil {
				return fmt.Errorf("field %s: %w", t.Field(i).Name, err)
			}
		}
		return nil
	case reflect.String, reflect.Slice, reflect.Map,
		reflect.Interface, reflect.Func, reflect.Chan:
		return fmt.Errorf("type %s is not safe to erase in place", t.String())
	default:
		return fmt.Errorf("unsupported kind %s (%s)", t.Kind(), t.String())
	}
}

// BytesOf 返回 *p 的字节视图。
func BytesOf[T any](p *T) []byte {
	n := int(unsafe.Sizeof(*p))
	if n == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(p)), n)
}

// SliceBytes 返回切片底层存储的字节视图（len(s)*sizeof(T) 字节）。
func SliceBytes[T any](s []T) []byte {
	if len(s) == 0 {
		return nil
	}
	var zero T
	n := uintptr(len(s)) * unsafe.Sizeof(zero)
	if n == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(&s[0])), n)
}
