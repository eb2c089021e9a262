package main

import (
	"crypto/rand"
	"fmt"

	"secmem"
)

func main() {
	// 定长密钥缓冲：用完整块清零
	key, err := secmem.NewBuffer[byte](32)
	if err != nil {
		panic(err)
	}
	_, _ = rand.Read(key.Data())
	fmt.Printf("key:        %x\n", key.Data())
	key.Destroy()
	fmt.Printf("key freed:  len=%d\n", key.Len())

	// 可擦除口令缓冲
	pw, _ := secmem.NewString("correct horse battery staple")
	fmt.Printf("passphrase: %d bytes\n", pw.Len())
	pw.Destroy()

	// 经计数分配器验证分配/归还 1:1 配对
	c := secmem.NewCountingAllocator[uint64](nil)
	v := secmem.NewVectorIn[uint64](c)
	for i := 0; i < 100; i++ {
		_ = v.Push(uint64(i) * 0x9e3779b97f4a7c15)
	}
	v.Destroy()
	fmt.Printf("vector:     allocs=%d deallocs=%d freed=%dB\n", c.Allocs, c.Deallocs, c.FreedBytes)

	// 工厂一次绑好指针、长度与删除器
	arr, _ := secmem.NewUniqueArray[uint32](8)
	for i := range arr.Data() {
		arr.Data()[i] = uint32(i + 1)
	}
	fmt.Printf("array:      %v\n", arr.Data())
	arr.Free()
}
