package util

import (
	"unsafe"
)

// DeepCopyString copies the given string to a newly-allocated one
//
// Without references to the original backing bytes, e.g. a record buffer which is about to be reused
func DeepCopyString(str string) string {
	// Force creation of new backing byte-array by converting to mutable []byte first
	// See https://stackoverflow.com/a/35993927/3488757
	return string([]byte(str))
}

// MutableString is a string backed by raw []byte, instead of in the immutable memory area like normal Go strings.
//
// Its contents may be changed. But we cannot create a new type or string functions wouldn't work with it.
type MutableString = string

// StringFromBytes makes a string backed by a specified []byte.
//
// There is no copying and the resulting string shares the same []byte contents.
//
// If data in the backing slice is changed, the string contents would reflect the changes (NOT normal Go string behavior).
func StringFromBytes(buf []byte) MutableString {
	// code from strings.Builder.String()
	return unsafe.String(unsafe.SliceData(buf), len(buf))
}

// BytesFromString makes a []byte backed by the given string without copying
//
// The result must never be modified, e.g. it may only be passed to writers which don't retain it.
func BytesFromString(str string) []byte {
	return unsafe.Slice(unsafe.StringData(str), len(str))
}
