// SPDX-License-Identifier: BSD-3-Clause
// Source: github.com/KammutierSpule/dzcobs

package dzcobs

import "sync"

// DefaultDictionary is a small starter dictionary biased toward the kinds
// of runs common in embedded payloads: zero-padded counters and structs,
// and a CRLF line ending. It is arbitrary user data, not part of the core
// codec, and exists only for convenience; callers with their own corpus
// should build and validate their own blob instead.
//
// Words are listed in descending byte-lexicographic order within each
// word-size bucket, as ValidateDictionary requires.
var DefaultDictionary = []byte{
	'2', 0x0D, 0x0A,
	'2', 0x01, 0x00,
	'2', 0x00, 0x01,
	'2', 0x00, 0x00,
	'3', 0x01, 0x00, 0x00,
	'3', 0x00, 0x01, 0x00,
	'3', 0x00, 0x00, 0x01,
	'3', 0x00, 0x00, 0x00,
}

var (
	defaultDictOnce sync.Once
	defaultDict     *Dictionary
)

// DefaultDict lazily parses and returns DefaultDictionary. It panics if
// DefaultDictionary is malformed, which would indicate a bug in this
// package rather than caller error.
func DefaultDict() *Dictionary {
	defaultDictOnce.Do(func() {
		d, err := NewDictionary(DefaultDictionary)
		if err != nil {
			panic("dzcobs: DefaultDictionary is malformed: " + err.Error())
		}
		defaultDict = d
	})
	return defaultDict
}
