package hexutil

import (
	"errors"
	"fmt"
)

// ErrOddLength indicates a hex string with an odd number of characters.
var ErrOddLength = errors.New("hexutil: odd length hex string")

// InvalidByteError describes a character that is not a hex digit.
type InvalidByteError struct {
	Byte   byte
	Offset int
}

func (e InvalidByteError) Error() string {
	return fmt.Sprintf("hexutil: invalid byte %#U at offset %d", rune(e.Byte), e.Offset)
}
