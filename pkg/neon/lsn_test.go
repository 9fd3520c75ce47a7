package neon

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/pqwire/pkg/pqmsg"
)

func TestParseLsn(t *testing.T) {
	tests := []struct {
		in   string
		want Lsn
	}{
		{"0/0", InvalidLsn},
		{"16/B374D848", 0x16B374D848},
		{"16/b374d848", 0x16B374D848},
		{"0/1", 1},
		{"FFFFFFFF/FFFFFFFF", math.MaxUint64},
		{"1/0", 1 << 32},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLsn(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseLsnErrors(t *testing.T) {
	for _, in := range []string{"", "16", "/1", "1/", "123456789/0", "0/G", "1/2/3"} {
		t.Run(in, func(t *testing.T) {
			_, err := ParseLsn(in)
			assert.ErrorIs(t, err, ErrInvalidLsn)
		})
	}
}

func TestLsnString(t *testing.T) {
	assert.Equal(t, "0/0", InvalidLsn.String())
	assert.Equal(t, "16/B374D848", Lsn(0x16B374D848).String())
	assert.Equal(t, "1/0", Lsn(1<<32).String())

	for _, l := range []Lsn{0, 1, 0x16B374D848, math.MaxUint64} {
		back, err := ParseLsn(l.String())
		require.NoError(t, err)
		assert.Equal(t, l, back)
	}
}

func TestLsnArithmetic(t *testing.T) {
	l := Lsn(0x1000001)
	assert.True(t, l.IsValid())
	assert.False(t, InvalidLsn.IsValid())
	assert.Equal(t, Lsn(0x1000009), l.Add(8))
	assert.Equal(t, Lsn(0x1000008), l.Align())
	assert.Equal(t, Lsn(0x1000008), Lsn(0x1000008).Align())

	const segSize = 16 << 20
	assert.Equal(t, uint64(1), l.Segment(segSize))
	assert.Equal(t, uint64(1), l.SegmentOffset(segSize))
}

func TestLsnWire(t *testing.T) {
	b := pqmsg.New()
	SendLsnLE(b, 0x16B374D848)
	assert.Equal(t, []byte{0x48, 0xD8, 0x74, 0xB3, 0x16, 0, 0, 0}, b.Bytes())

	got, err := GetLsnLE(b)
	require.NoError(t, err)
	assert.Equal(t, Lsn(0x16B374D848), got)

	_, err = GetLsnLE(b)
	assert.ErrorIs(t, err, pqmsg.ErrInsufficientData)
}

func TestLsnAlignSaturates(t *testing.T) {
	top := Lsn(math.MaxUint64) &^ 7
	assert.Equal(t, top, top.Align())
	assert.Equal(t, top, (top + 1).Align())
	assert.Equal(t, top, Lsn(math.MaxUint64).Align())
	assert.Equal(t, InvalidLsn, InvalidLsn.Align())
}

func TestLsnSegmentDefaultSize(t *testing.T) {
	l := Lsn(3*DefaultSegmentSize + 5)
	assert.Equal(t, uint64(3), l.Segment(0))
	assert.Equal(t, uint64(5), l.SegmentOffset(0))
	assert.Equal(t, l.Segment(DefaultSegmentSize), l.Segment(0))
}
