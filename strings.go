package secmem

// 文本缓冲别名：纯粹是「标准序列 + 擦除分配器」的组合，本文件
// 没有独立逻辑。Go 里窄字符与 UTF-8 码元同为 byte，宽字符为 rune。

// String 窄字符 / UTF-8 码元文本缓冲。
type String = Vector[byte]

// WString 宽字符文本缓冲。
type WString = Vector[rune]

// NewString 从 s 拷贝出可擦除文本缓冲。注意：传入的 Go string
// 本身不可变、无法擦除，敏感数据应尽量直接写入返回的缓冲，
// 而不是先经手一个 string。
func NewString(s string) (*String, error) {
	v := NewVector[byte]()
	if err := v.Append([]byte(s)...); err != nil {
		return nil, err
	}
	return v, nil
}

// NewWString 从 s 按 rune 拷贝出可擦除宽字符缓冲。
func NewWString(s string) (*WString, error) {
	v := NewVector[rune]()
	if err := v.Append([]rune(s)...); err != nil {
		return nil, err
	}
	return v, nil
}
