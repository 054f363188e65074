package history

import (
	"bytes"
	"unicode/utf8"
)

// replacementChar is the UTF-8 encoding of U+FFFD.
var replacementChar = []byte{0xEF, 0xBF, 0xBD}

// ToLossyUTF8 converts a history line to a valid UTF-8 string.
// Invalid sequences and NUL bytes are replaced with U+FFFD; valid input is
// returned unchanged without copying through the slow path.
func ToLossyUTF8(data []byte) string {
	if utf8.Valid(data) && bytes.IndexByte(data, 0) == -1 {
		return string(data)
	}

	result := make([]byte, 0, len(data))
	for i := 0; i < len(data); {
		if data[i] == 0 {
			result = append(result, replacementChar...)
			i++
			continue
		}
		r, size := utf8.DecodeRune(data[i:])
		if r == utf8.RuneError && size == 1 {
			result = append(result, replacementChar...)
			i++
			continue
		}
		result = append(result, data[i:i+size]...)
		i += size
	}
	return string(result)
}
