package common

import "testing"

func TestWipeByteArray_ZerosBuffer(t *testing.T) {
	buf := []byte{1, 2, 3, 4, 5}
	WipeByteArray(buf)
	for i, v := range buf {
		if v != 0 {
			t.Fatalf("expected buf[%d]==0, got %d", i, v)
		}
	}
}

func TestWipeByteArray_NilIsNoop(t *testing.T) {
	WipeByteArray(nil) // must not panic
}

func TestWipeByteArray_EmptyIsNoop(t *testing.T) {
	buf := []byte{}
	WipeByteArray(buf)
	if len(buf) != 0 {
		t.Fatalf("expected empty buffer to stay empty")
	}
}
