package zeromem

// Zero 把 b 全部填零，并保证写入不被死存储消除优化掉。
// nil 或空切片为 no-op，永不失败。对不相交的区域可并发调用。
func Zero(b []byte) {
	if len(b) == 0 {
		return
	}
	zeroBytes(b)
}
