package render

import (
	"testing"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
)

func TestInfoLog(t *testing.T) {
	const msg = "0:3(2): error: syntax error"

	getiv := func(object uint32, pname uint32, params *int32) {
		if object != 7 || pname != gl.INFO_LOG_LENGTH {
			t.Fatalf("getiv(%d, %#x)", object, pname)
		}
		*params = int32(len(msg) + 1)
	}
	getLog := func(object uint32, bufSize int32, length *int32, infoLog *uint8) {
		if bufSize != int32(len(msg)+1) {
			t.Fatalf("bufSize = %d", bufSize)
		}
		copy(unsafe.Slice(infoLog, bufSize), msg)
	}

	if got := infoLog(7, getiv, getLog); got != msg {
		t.Fatalf("infoLog = %q, want %q", got, msg)
	}
}

func TestInfoLogEmpty(t *testing.T) {
	getiv := func(uint32, uint32, *int32) {}
	getLog := func(uint32, int32, *int32, *uint8) {}
	if got := infoLog(1, getiv, getLog); got != "" {
		t.Fatalf("infoLog = %q", got)
	}
}
