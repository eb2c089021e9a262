package zeromem

import (
	"sync"
	"testing"
)

func allZero(b []byte) bool {
	for _, x := range b {
		if x != 0 {
			return false
		}
	}
	return true
}

func TestZeroBasic(t *testing.T) {
	b := make([]byte, 64)
	for i := range b {
		b[i] = byte(i + 1)
	}
	if allZero(b) {
		t.Fatal("buffer should not start all-zero")
	}
	Zero(b)
	if !allZero(b) {
		t.Fatalf("buffer not erased: %v", b)
	}
}

func TestZeroNilAndEmpty(t *testing.T) {
	Zero(nil)
	Zero([]byte{})
}

func TestZeroOddSizes(t *testing.T) {
	for _, n := range []int{1, 3, 7, 15, 16, 17, 63, 255, 4096, 4097} {
		b := make([]byte, n)
		for i := range b {
			b[i] = 0xff
		}
		Zero(b)
		if !allZero(b) {
			t.Fatalf("size %d: buffer not erased", n)
		}
	}
}

func TestZeroSubregion(t *testing.T) {
	b := make([]byte, 32)
	for i := range b {
		b[i] = 0xaa
	}
	Zero(b[8:24])
	for i, x := range b {
		if i >= 8 && i < 24 {
			if x != 0 {
				t.Fatalf("byte %d not erased", i)
			}
		} else if x != 0xaa {
			t.Fatalf("byte %d outside region modified", i)
		}
	}
}

// 不相交区域并发擦除必须安全：原语无共享可变状态。
func TestZeroConcurrentDisjoint(t *testing.T) {
	const gs = 8
	const chunk = 1 << 12
	b := make([]byte, gs*chunk)
	for i := range b {
		b[i] = 0x5a
	}
	var wg sync.WaitGroup
	wg.Add(gs)
	for g := 0; g < gs; g++ {
		go func(g int) {
			defer wg.Done()
			Zero(b[g*chunk : (g+1)*chunk])
		}(g)
	}
	wg.Wait()
	if !allZero(b) {
		t.Fatal("concurrent erase left non-zero bytes")
	}
}

func BenchmarkZero(b *testing.B) {
	for _, n := range []int{32, 1 << 10, 1 << 16} {
		buf := make([]byte, n)
		b.Run(byteCount(n), func(b *testing.B) {
			b.SetBytes(int64(n))
			for i := 0; i < b.N; i++ {
				Zero(buf)
			}
		})
	}
}

func byteCount(n int) string {
	switch {
	case n >= 1<<20:
		return "1MiB"
	case n >= 1<<16:
		return "64KiB"
	case n >= 1<<10:
		return "1KiB"
	default:
		return "32B"
	}
}
