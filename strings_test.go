package secmem

import (
	"bytes"
	"testing"

	"secmem/internal/trivial"
)

func TestNewString(t *testing.T) {
	s, err := NewString("hunter2")
	if err != nil {
		t.Fatalf("NewString: %v", err)
	}
	defer s.Destroy()
	if !bytes.Equal(s.Data(), []byte("hunter2")) {
		t.Fatalf("content: got %q", s.Data())
	}
	if err := s.Append('!'); err != nil {
		t.Fatalf("Append: %v", err)
	}
	if !bytes.Equal(s.Data(), []byte("hunter2!")) {
		t.Fatalf("after append: got %q", s.Data())
	}
}

func TestStringDestroyErases(t *testing.T) {
	s, _ := NewString("super secret passphrase")
	alias := s.Data()
	s.Destroy()
	if !allZeroBytes(alias) {
		t.Fatalf("passphrase survived Destroy: %q", alias)
	}
}

func TestNewWString(t *testing.T) {
	w, err := NewWString("пароль")
	if err != nil {
		t.Fatalf("NewWString: %v", err)
	}
	if w.Len() != 6 {
		t.Fatalf("rune count: got %d want 6", w.Len())
	}
	alias := w.Data()
	w.Destroy()
	if !allZeroBytes(trivial.SliceBytes(alias)) {
		t.Fatal("wide text survived Destroy")
	}
}

func TestStringEmpty(t *testing.T) {
	s, err := NewString("")
	if err != nil {
		t.Fatalf("NewString(\"\"): %v", err)
	}
	if s.Len() != 0 {
		t.Fatalf("Len: got %d want 0", s.Len())
	}
	s.Destroy()
}
