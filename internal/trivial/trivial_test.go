package trivial

import "testing"

type flatKey struct {
	ID   uint64
	Salt [16]byte
	Cost float64
}

type leakyKey struct {
	ID    uint64
	Label string
}

func TestAssertNoPointersAccepts(t *testing.T) {
	if err := AssertNoPointers[int](); err != nil {
		t.Errorf("int: %v", err)
	}
	if err := AssertNoPointers[byte](); err != nil {
		t.Errorf("byte: %v", err)
	}
	if err := AssertNoPointers[float64](); err != nil {
		t.Errorf("float64: %v", err)
	}
	if err := AssertNoPointers[[32]byte](); err != nil {
		t.Errorf("[32]byte: %v", err)
	}
	if err := AssertNoPointers[flatKey](); err != nil {
		t.Errorf("flat struct: %v", err)
	}
	// 指针本身可以清零（只清指针，不清指向的数据）
	if err := AssertNoPointers[*int](); err != nil {
		t.Errorf("*int: %v", err)
	}
}

func TestAssertNoPointersRejects(t *testing.T) {
	if err := AssertNoPointers[string](); err == nil {
		t.Error("string should be rejected")
	}
	if err := AssertNoPointers[[]byte](); err == nil {
		t.Error("[]byte should be rejected")
	}
	if err := AssertNoPointers[map[string]int](); err == nil {
		t.Error("map should be rejected")
	}
	if err := AssertNoPointers[chan int](); err == nil {
		t.Error("chan should be rejected")
	}
	if err := AssertNoPointers[func()](); err == nil {
		t.Error("func should be rejected")
	}
	if err := AssertNoPointers[leakyKey](); err == nil {
		t.Error("struct with string field should be rejected")
	}
}

// 接口类型参数必须走拒绝分支返回错误，而不是 panic。
func TestAssertNoPointersInterfaceTypeParam(t *testing.T) {
	if err := AssertNoPointers[any](); err == nil {
		t.Error("any should be rejected")
	}
	if err := AssertNoPointers[error](); err == nil {
		t.Error("error should be rejected")
	}
	type boxed struct {
		V any
	}
	if err := AssertNoPointers[boxed](); err == nil {
		t.Error("struct with interface field should be rejected")
	}
}

func TestBytesOf(t *testing.T) {
	var x uint32 = 0x01020304
	b := BytesOf(&x)
	if len(b) != 4 {
		t.Fatalf("BytesOf len: got %d want 4", len(b))
	}
	b[0], b[1], b[2], b[3] = 0, 0, 0, 0
	if x != 0 {
		t.Fatalf("view is not aliased: x=%#x", x)
	}
}

func TestSliceBytes(t *testing.T) {
	s := []uint32{1, 2, 3}
	b := SliceBytes(s)
	if len(b) != 12 {
		t.Fatalf("SliceBytes len: got %d want 12", len(b))
	}
	for i := range b {
		b[i] = 0
	}
	for i, x := range s {
		if x != 0 {
			t.Fatalf("element %d not zeroed through view", i)
		}
	}
	if SliceBytes([]uint32(nil)) != nil {
		t.Error("nil slice should give nil view")
	}
	if SliceBytes([]struct{}{{}, {}}) != nil {
		t.Error("zero-size elements should give nil view")
	}
}
