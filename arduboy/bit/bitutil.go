package bit

// IsSet will check if the bit at the specified index is Set to 1 or not.
func IsSet(index, byte uint8) bool {
	return ((byte >> index) & 1) == 1
}

// Clear will return the passed byte with the bit at the specified index Set to 0.
func Clear(index, byte uint8) uint8 {
	return byte & ^(1 << index)
}

// Set will return the passed byte with the bit at the specified index Set to 1.
func Set(index, byte uint8) uint8 {
	return byte | (1 << index)
}

// Assign returns the passed byte with the bit at index set to 1 when on is
// true and to 0 otherwise.
func Assign(index, byte uint8, on bool) uint8 {
	if on {
		return Set(index, byte)
	}
	return Clear(index, byte)
}
