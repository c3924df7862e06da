package common

// WipeByteArray overwrites every byte of the slice with zero.
// This is used to remove sensitive data such as passwords from memory after
// use.
//
// If the slice is nil, the function does nothing.
func WipeByteArray(b []byte) {
	if b == nil {
		return
	}
	for i := range b {
		b[i] = 0
	}
}
