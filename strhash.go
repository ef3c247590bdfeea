package schash

import "unicode/utf16"

const stringMultiplier = 37

// StringKey is a string element hashed with the same polynomial as HashString.
type StringKey string

// Hash returns the unreduced polynomial hash of k.
func (k StringKey) Hash() int {
	return int(polyHash(string(k)))
}

// Equal reports whether k and other are the same string.
func (k StringKey) Equal(other StringKey) bool {
	return k == other
}

// HashString hashes key into [0, tableSize). tableSize must be positive.
func HashString(key string, tableSize int) int {
	h := polyHash(key) % int32(tableSize)
	if h < 0 {
		h += int32(tableSize)
	}
	return int(h)
}

// polyHash computes h = 37*h + c over the UTF-16 code units of s, wrapping
// at 32 bits. Characters outside the BMP contribute both surrogates.
func polyHash(s string) int32 {
	var h int32
	for _, c := range utf16.Encode([]rune(s)) {
		h = stringMultiplier*h + int32(c)
	}
	return h
}
