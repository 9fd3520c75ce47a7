package neon

import (
	"fmt"
	"math"
	"strings"

	"github.com/joshuapare/pqwire/pkg/hexutil"
	"github.com/joshuapare/pqwire/pkg/pqmsg"
)

// Lsn is a byte position in the write-ahead log.
type Lsn uint64

// InvalidLsn is the zero position, never assigned to a real record.
const InvalidLsn Lsn = 0

// ParseLsn parses the "X/X" form, where each half is one to eight hex digits
// holding the high and low 32 bits.
func ParseLsn(s string) (Lsn, error) {
	hi, lo, ok := strings.Cut(s, "/")
	if !ok {
		return InvalidLsn, fmt.Errorf("%w: %q lacks '/' separator", ErrInvalidLsn, s)
	}
	h, err := parseHalf(hi)
	if err != nil {
		return InvalidLsn, fmt.Errorf("%w: %q: %v", ErrInvalidLsn, s, err)
	}
	l, err := parseHalf(lo)
	if err != nil {
		return InvalidLsn, fmt.Errorf("%w: %q: %v", ErrInvalidLsn, s, err)
	}
	return Lsn(uint64(h)<<32 | uint64(l)), nil
}

func parseHalf(s string) (uint32, error) {
	if len(s) == 0 || len(s) > 8 {
		return 0, fmt.Errorf("half %q must have 1 to 8 digits", s)
	}
	var v uint32
	for i := 0; i < len(s); i++ {
		d, ok := hexutil.Digit(s[i])
		if !ok {
			return 0, hexutil.InvalidByteError{Byte: s[i], Offset: i}
		}
		v = v<<4 | uint32(d)
	}
	return v, nil
}

// String formats the LSN as "X/X" with uppercase digits.
func (l Lsn) String() string {
	return fmt.Sprintf("%X/%X", uint32(l>>32), uint32(l))
}

// IsValid reports whether l is not InvalidLsn.
func (l Lsn) IsValid() bool { return l != InvalidLsn }

// Add returns l advanced by n bytes.
func (l Lsn) Add(n uint64) Lsn { return l + Lsn(n) }

// maxAlignedLsn is the highest multiple of 8 an Lsn can hold.
const maxAlignedLsn = Lsn(math.MaxUint64) &^ 7

// DefaultSegmentSize is the WAL segment size PostgreSQL is built with unless
// configured otherwise.
const DefaultSegmentSize = 16 << 20

// Align rounds l up to the next multiple of 8, the alignment of WAL records.
// Positions above the last aligned value saturate to it instead of wrapping.
func (l Lsn) Align() Lsn {
	if l > maxAlignedLsn {
		return maxAlignedLsn
	}
	return (l + 7) &^ 7
}

// Segment returns the number of the WAL segment containing l.
// A segSize of 0 selects DefaultSegmentSize.
func (l Lsn) Segment(segSize uint64) uint64 { return uint64(l) / segmentSize(segSize) }

// SegmentOffset returns the byte offset of l within its segment.
// A segSize of 0 selects DefaultSegmentSize.
func (l Lsn) SegmentOffset(segSize uint64) uint64 { return uint64(l) % segmentSize(segSize) }

func segmentSize(n uint64) uint64 {
	if n == 0 {
		return DefaultSegmentSize
	}
	return n
}

// GetLsnLE reads a little-endian LSN from msg.
func GetLsnLE(msg *pqmsg.Buffer) (Lsn, error) {
	v, err := msg.GetInt64LE()
	if err != nil {
		return InvalidLsn, fmt.Errorf("lsn: %w", err)
	}
	return Lsn(v), nil
}

// SendLsnLE appends l to b in little-endian byte order.
func SendLsnLE(b *pqmsg.Buffer, l Lsn) { b.SendInt64LE(uint64(l)) }
