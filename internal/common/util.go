package common

// WipeByteArray overwrites b with zeroes. It is used for passwords read
// from the terminal once they have been sent.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
