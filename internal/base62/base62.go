// Package base62 converts sequence numbers into compact alias codes.
//
// The alphabet is digits first, then uppercase, then lowercase letters, so
// the byte order of codes coincides with the alphabet order: codes grow in
// length only after every shorter code is exhausted, and codes of equal
// length sort lexicographically by the value they encode.
package base62

const alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

// Encode converts n to its base-62 representation, most-significant digit
// first, with no padding. Encode(0) returns "0". Encode is injective: two
// distinct sequence numbers never share a code.
func Encode(n uint64) string {
	if n == 0 {
		return "0"
	}

	// 62^10 < 2^64 <= 62^11, so eleven digits always suffice.
	var buf [11]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = alphabet[n%62]
		n /= 62
	}

	return string(buf[i:])
}
