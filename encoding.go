// SPDX-License-Identifier: BSD-3-Clause
// Source: github.com/KammutierSpule/dzcobs

package dzcobs

// Encoding selects the frame variant. Values are fixed because they appear
// on the wire (packed into the low 2 bits of the trailer's tag byte).
type Encoding uint8

const (
	// Plain is the uncompressed DZCOBS encoding (classical COBS, code jump
	// at 0xFF).
	Plain Encoding = 0
	// Dict1 substitutes words found in dictionary slot 1.
	Dict1 Encoding = 1
	// Dict2 substitutes words found in dictionary slot 2.
	Dict2 Encoding = 2
	// reserved is not a valid encoding to produce or accept; Decode returns
	// ErrBadEncodedPayload for it.
	reserved Encoding = 3
)

// String implements fmt.Stringer for diagnostics.
func (e Encoding) String() string {
	switch e {
	case Plain:
		return "PLAIN"
	case Dict1:
		return "DICT_1"
	case Dict2:
		return "DICT_2"
	case reserved:
		return "RESERVED"
	default:
		return "UNKNOWN"
	}
}

const (
	// frameTrailerSize is the number of bytes at the end of a frame that
	// carry the tag and hash (not part of the body).
	frameTrailerSize = 2
	// oneByteOverheadEvery is the number of payload bytes MaxEncodedLen
	// charges one byte of code overhead for.
	oneByteOverheadEvery = 127
)

// divRoundUp divides n by d, rounding up.
func divRoundUp(n, d int) int {
	return (n + d - 1) / d
}

// MaxEncodedLen returns n + ceil(n/127) + 2 (3 for n == 0): the maximum
// number of bytes a Plain frame of a payload of length n can occupy,
// including the 2-byte trailer. It does not include the external 0x00
// terminator, which callers append themselves. Dict1/Dict2 literal groups
// hold at most 126 bytes, so a dictionary frame whose payload has long runs
// matching no word can be larger than this (127 such bytes take 131).
func MaxEncodedLen(n int) int {
	overhead := divRoundUp(n, oneByteOverheadEvery)
	extra := 0
	if n == 0 {
		extra = 1
	}
	return n + overhead + extra + frameTrailerSize
}
