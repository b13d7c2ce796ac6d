// SPDX-License-Identifier: BSD-3-Clause
// Source: github.com/KammutierSpule/dzcobs

package dzcobs

import "bytes"

const (
	// minWordSize and maxWordSize bound a dictionary word's byte length.
	minWordSize = 2
	maxWordSize = 5
	// maxWordSizes is the number of distinct word-length buckets a
	// dictionary may carry.
	maxWordSizes = 4
	// maxDictionaryWords is the largest total word count across all
	// buckets; global indices occupy [1, maxDictionaryWords].
	maxDictionaryWords = 127
)

// wordBucket indexes one fixed-length run of words inside a dictionary blob.
// Words in a bucket are stored contiguously as (length-byte, L literal
// bytes) and are sorted in descending byte-lexicographic order.
type wordBucket struct {
	wordSize    int // L, in [2,5]
	stride      int // wordSize + 1 (includes the length-prefix byte)
	start       int // byte offset into the blob of this bucket's first word
	count       int // number of words in this bucket
	globalStart int // global index (1-based) of this bucket's first word
}

func (w wordBucket) wordAt(blob []byte, i int) []byte {
	off := w.start + i*w.stride
	return blob[off+1 : off+1+w.wordSize]
}

// Dictionary is a parsed, read-only dictionary container. Build one with
// NewDictionary; share the result freely across concurrent encoders and
// decoders.
type Dictionary struct {
	blob    []byte
	buckets []wordBucket // ascending word-length order
}

// ValidateDictionary scans blob and reports the first structural problem it
// finds, or nil if blob is well-formed per the dictionary blob format: a flat
// sequence of (length-byte, word) pairs, length byte is ASCII '0'+L with
// L in [2,5], words in a bucket of equal length appear in strictly
// descending byte-lexicographic order, buckets appear in ascending length
// order, at most 4 distinct lengths, at most 127 words total. A single
// trailing 0x00 byte is tolerated.
func ValidateDictionary(blob []byte) error {
	_, err := parseDictionary(blob)
	return err
}

// NewDictionary parses and validates blob, returning a ready-to-use
// Dictionary. The returned Dictionary retains blob; callers must not mutate
// it afterward.
func NewDictionary(blob []byte) (*Dictionary, error) {
	buckets, err := parseDictionary(blob)
	if err != nil {
		return nil, err
	}
	return &Dictionary{blob: blob, buckets: buckets}, nil
}

// parseDictionary is the shared scan used by both ValidateDictionary and
// NewDictionary so the two can never disagree about what "valid" means.
func parseDictionary(blob []byte) ([]wordBucket, error) {
	var buckets []wordBucket
	var totalWords int

	pos := 0
	lastWordSize := 0
	var lastWordInBucket []byte

	for pos < len(blob) {
		if blob[pos] == 0 {
			// A single trailing terminator is tolerated; anything else
			// that isn't a valid length byte is a malformed bucket.
			if pos == len(blob)-1 {
				break
			}
			return nil, ErrDictEarlierEnd
		}

		size := int(blob[pos]) - '0'
		if size < minWordSize || size > maxWordSize || size < lastWordSize {
			return nil, ErrDictWordSize
		}

		if size > lastWordSize {
			if len(buckets) == maxWordSizes {
				return nil, ErrDictTooManyWordSizes
			}
			buckets = append(buckets, wordBucket{
				wordSize:    size,
				stride:      size + 1,
				start:       pos,
				globalStart: totalWords + 1,
			})
			lastWordSize = size
			lastWordInBucket = nil
		}

		if pos+1 == len(blob) {
			return nil, ErrDictEarlierEnd
		}
		if pos+1+size > len(blob) {
			return nil, ErrDictOutOfBounds
		}

		word := blob[pos+1 : pos+1+size]
		if lastWordInBucket != nil && bytes.Compare(word, lastWordInBucket) >= 0 {
			return nil, ErrDictNotSorted
		}
		lastWordInBucket = word

		bucket := &buckets[len(buckets)-1]
		bucket.count++
		totalWords++
		if totalWords > maxDictionaryWords {
			return nil, ErrDictWordCounting
		}

		pos += size + 1
	}

	return buckets, nil
}

// search returns the longest dictionary word that is a prefix of key and
// whose length does not exceed maxLen, as a 1-based global index (0 if no
// word matches) and the matched word's length. Buckets are tried from the
// largest word size down so the first match found is the longest.
func (d *Dictionary) search(key []byte, maxLen int) (globalIndex int, matchedLen int) {
	if d == nil {
		return 0, 0
	}
	for i := len(d.buckets) - 1; i >= 0; i-- {
		b := d.buckets[i]
		if b.wordSize > maxLen || b.wordSize > len(key) {
			continue
		}
		prefix := key[:b.wordSize]
		if idx, ok := b.binarySearch(d.blob, prefix); ok {
			return b.globalStart + idx, b.wordSize
		}
	}
	return 0, 0
}

// binarySearch locates key inside a descending byte-lexicographically
// sorted, fixed-stride bucket.
func (b wordBucket) binarySearch(blob []byte, key []byte) (index int, found bool) {
	lo, hi := 0, b.count-1
	for lo <= hi {
		mid := (lo + hi) / 2
		cmp := bytes.Compare(b.wordAt(blob, mid), key)
		switch {
		case cmp == 0:
			return mid, true
		case cmp > 0:
			lo = mid + 1
		default:
			hi = mid - 1
		}
	}
	return 0, false
}

// get reverse-looks-up a 0-based dictionary token index (0..126) to its
// word bytes. ok is false if index falls outside every bucket's range.
func (d *Dictionary) get(index int) (word []byte, ok bool) {
	if d == nil || index < 0 {
		return nil, false
	}
	for _, b := range d.buckets {
		lo := b.globalStart - 1
		hi := lo + b.count - 1
		if index >= lo && index <= hi {
			return b.wordAt(d.blob, index-lo), true
		}
	}
	return nil, false
}
