// SPDX-License-Identifier: BSD-3-Clause
// Source: github.com/KammutierSpule/dzcobs

/*
Package dzcobs implements DZCOBS (Dictionary-Zero Consistent Overhead Byte
Stuffing), a framing codec that removes the byte 0x00 from an arbitrary
binary payload so 0x00 can serve as an external frame terminator on a serial
link.

DZCOBS extends classical COBS with an optional dictionary substitution (short
2-5 byte sequences replaced by a single-byte token) and a two-byte trailer
carrying a 6-bit user tag and a 2-bit encoding selector, protected by an
order-independent 8-bit multiset hash.

# Encode

Encoding is incremental: create an Encoder, optionally attach dictionaries,
Begin a frame, Feed payload in any number of chunks, then End it:

	enc := dzcobs.NewEncoder()
	if err := enc.Begin(dzcobs.Plain, dst); err != nil {
		return err
	}
	if err := enc.Feed(payload); err != nil {
		return err
	}
	enc.UserTag = 0x3F
	n, err := enc.End()

# Decode

Decoding is whole-frame:

	n, tag, err := dzcobs.Decode(frame, dst, dict1, dict2)

# Dictionaries

A dictionary blob packs words of length 2-5 into word-size buckets. Validate
untrusted blobs with ValidateDictionary before calling NewDictionary.
*/
package dzcobs
