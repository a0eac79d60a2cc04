package util

import (
	"unsafe"
)

// BytesToStr reinterprets buf as a string without copying or validating it.
// The string shares memory with buf, so buf must not be modified while the
// string is in use.
func BytesToStr(buf []byte) string {
	if len(buf) == 0 {
		return ""
	}
	return unsafe.String(unsafe.SliceData(buf), len(buf))
}

// StrToBytes returns the bytes backing s without copying. The result is
// read-only: writing to it is undefined behaviour.
func StrToBytes(s string) []byte {
	if len(s) == 0 {
		return nil
	}
	return unsafe.Slice(unsafe.StringData(s), len(s))
}
