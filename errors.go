// SPDX-License-Identifier: BSD-3-Clause
// Source: github.com/KammutierSpule/dzcobs

package dzcobs

import "errors"

// Sentinel errors returned by the encoder, decoder, and dictionary.
var (
	// ErrBadArg is returned for a nil buffer, zero capacity, an impossible
	// enum value, or a missing required dictionary.
	ErrBadArg = errors.New("dzcobs: bad argument")
	// ErrNotInitialized is returned when Feed or End is called before a
	// successful Begin.
	ErrNotInitialized = errors.New("dzcobs: encoder not initialized")
	// ErrWriteOverflow is returned when the encoded or decoded output would
	// exceed the destination buffer's capacity.
	ErrWriteOverflow = errors.New("dzcobs: write overflow")
	// ErrReadOverflow is returned when a code group claims more literal
	// bytes than remain in the encoded input.
	ErrReadOverflow = errors.New("dzcobs: read overflow")
	// ErrBadEncodedPayload is returned for a 0x00 byte inside the frame
	// body, a reserved encoding selector, or a zero trailer byte.
	ErrBadEncodedPayload = errors.New("dzcobs: malformed encoded payload")
	// ErrCRC is returned when the recomputed multiset hash does not match
	// the trailer's hash byte.
	ErrCRC = errors.New("dzcobs: checksum mismatch")
	// ErrNoDictionaryToDecode is returned when a frame selects DICT_1 or
	// DICT_2 but the caller supplied no dictionary for that slot.
	ErrNoDictionaryToDecode = errors.New("dzcobs: no dictionary supplied for encoding")
	// ErrWordNotFoundOnDictionary is returned when a dictionary token
	// references an index outside the active dictionary's range.
	ErrWordNotFoundOnDictionary = errors.New("dzcobs: dictionary token not found")
	// ErrInvalidUser6Bits is returned by End when UserTag is 0.
	ErrInvalidUser6Bits = errors.New("dzcobs: user tag must be in [1,63]")

	// ErrDictNotSorted is returned by ValidateDictionary when a word is not
	// strictly less (byte-lexicographically) than the previous word in its
	// bucket.
	ErrDictNotSorted = errors.New("dzcobs: dictionary bucket is not in descending order")
	// ErrDictOutOfBounds is returned when a declared word size would read
	// past the end of the blob.
	ErrDictOutOfBounds = errors.New("dzcobs: dictionary word reads out of bounds")
	// ErrDictWordCounting is returned when the total word count across all
	// buckets would exceed 127.
	ErrDictWordCounting = errors.New("dzcobs: dictionary has more than 127 words")
	// ErrDictWordSize is returned when a word-size byte is outside [2,5]
	// or word sizes decrease across buckets.
	ErrDictWordSize = errors.New("dzcobs: dictionary word size out of range or out of order")
	// ErrDictEarlierEnd is returned when the blob terminates mid-word.
	ErrDictEarlierEnd = errors.New("dzcobs: dictionary blob ends mid-word")
	// ErrDictTooManyWordSizes is returned when more than four distinct
	// word sizes are encountered.
	ErrDictTooManyWordSizes = errors.New("dzcobs: dictionary has more than 4 word sizes")
)
