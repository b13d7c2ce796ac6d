// SPDX-License-Identifier: BSD-3-Clause
// Source: github.com/KammutierSpule/dzcobs

package dzcobs

// Decode reconstructs the payload encoded in src, a complete DZCOBS frame
// (without its external 0x00 terminator), writing it into dst and returning
// the decoded length and the frame's 6-bit user tag.
//
// dict1 and dict2 are consulted when the frame selects Dict1 or Dict2
// respectively; either may be nil if that slot is unused by the caller.
// Decode is whole-frame: there is no incremental/streaming variant.
func Decode(src, dst []byte, dict1, dict2 *Dictionary) (decodedLen int, userTag byte, err error) {
	if src == nil || dst == nil || len(dst) == 0 || len(src) < 3 {
		return 0, 0, ErrBadArg
	}

	receivedHash := src[len(src)-1]
	receivedTag := src[len(src)-2]
	if receivedHash == 0 || receivedTag == 0 {
		return 0, 0, ErrBadEncodedPayload
	}

	computed := frameHash(src[:len(src)-1])
	if (computed != 0 && computed != receivedHash) || (computed == 0 && receivedHash != hashValueWhenZero) {
		return 0, 0, ErrCRC
	}

	body := src[:len(src)-frameTrailerSize]
	encoding := Encoding(receivedTag & 0x03)

	switch encoding {
	case Plain:
		decodedLen, err = decodePlain(body, dst)
	case Dict1:
		if dict1 == nil {
			return 0, 0, ErrNoDictionaryToDecode
		}
		decodedLen, err = decodeDictionary(body, dst, dict1)
	case Dict2:
		if dict2 == nil {
			return 0, 0, ErrNoDictionaryToDecode
		}
		decodedLen, err = decodeDictionary(body, dst, dict2)
	default:
		return 0, 0, ErrBadEncodedPayload
	}
	if err != nil {
		return 0, 0, err
	}

	return decodedLen, (receivedTag >> 2) & 0x3F, nil
}

// decodePlain walks the PLAIN-encoded body (the frame minus its 2-byte
// trailer), reconstructing literal runs and the zero bytes COBS removed.
func decodePlain(body, dst []byte) (int, error) {
	in, out := 0, 0

	for in < len(body) {
		code := body[in]
		in++
		if code == 0 {
			return 0, ErrBadEncodedPayload
		}

		litLen := int(code) - 1
		if litLen > len(dst)-out {
			return 0, ErrWriteOverflow
		}
		if litLen > len(body)-in {
			return 0, ErrReadOverflow
		}
		for i := 0; i < litLen; i++ {
			v := body[in]
			in++
			if v == 0 {
				return 0, ErrBadEncodedPayload
			}
			dst[out] = v
			out++
		}

		if in >= len(body) {
			break
		}
		if code != jumpCodePlain {
			if out >= len(dst) {
				return 0, ErrWriteOverflow
			}
			dst[out] = 0
			out++
		}
	}

	return out, nil
}

// decodeDictionary is decodePlain's dictionary-aware counterpart. A code
// with the high bit set is a dictionary token rather than a literal count.
// Because the high bit is reserved for tokens, the jump threshold is 0x7F
// instead of 0xFF, and the implied trailing zero after a literal group is
// deferred to the start of the next literal group so it never gets
// synthesized in front of a following token (see spec's deferred-zero
// rule and vector #9 for the case of an explicit zero group bordering a
// token).
func decodeDictionary(body, dst []byte, dict *Dictionary) (int, error) {
	in, out := 0, 0
	pendingZero := false

	for in < len(body) {
		code := body[in]
		in++
		if code == 0 {
			return 0, ErrBadEncodedPayload
		}

		if code&dictionaryBitmask != 0 {
			pendingZero = false

			word, ok := dict.get(int(code &^ dictionaryBitmask))
			if !ok {
				return 0, ErrWordNotFoundOnDictionary
			}
			if len(word) > len(dst)-out {
				return 0, ErrWriteOverflow
			}
			out += copy(dst[out:], word)

			if in >= len(body) {
				break
			}
			continue
		}

		if pendingZero {
			if out >= len(dst) {
				return 0, ErrWriteOverflow
			}
			dst[out] = 0
			out++
			pendingZero = false
		}

		litLen := int(code) - 1
		if litLen > len(dst)-out {
			return 0, ErrWriteOverflow
		}
		if litLen > len(body)-in {
			return 0, ErrReadOverflow
		}
		for i := 0; i < litLen; i++ {
			v := body[in]
			in++
			if v == 0 {
				return 0, ErrBadEncodedPayload
			}
			dst[out] = v
			out++
		}

		if in >= len(body) {
			break
		}

		if litLen == 0 {
			if out >= len(dst) {
				return 0, ErrWriteOverflow
			}
			dst[out] = 0
			out++
		} else if code != jumpCodeDict {
			pendingZero = true
		}
	}

	return out, nil
}
