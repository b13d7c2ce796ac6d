// SPDX-License-Identifier: BSD-3-Clause
// Source: github.com/KammutierSpule/dzcobs

package dzcobs

const (
	// jumpCodePlain is the PLAIN-mode code value signalling a maximal
	// literal run (254 bytes) with no implied trailing zero.
	jumpCodePlain = 0xFF
	// jumpCodeDict is the DICT-mode equivalent, capped at 126 literal
	// bytes because the high bit of the code byte is reserved for
	// dictionary tokens.
	jumpCodeDict = 0x7F
	// dictionaryBitmask marks a code byte as a dictionary token; the low 7
	// bits are the token's 0-based dictionary index.
	dictionaryBitmask = 0x80
)

// Encoder builds one DZCOBS frame at a time into a caller-supplied
// destination buffer. Reuse an Encoder across frames by calling Begin again;
// a failed Feed or End leaves the encoder unusable until the next Begin.
//
// An Encoder is not safe for concurrent use by multiple goroutines; a single
// context models one outgoing frame, not a shared object.
type Encoder struct {
	// UserTag is the caller's 6-bit application tag, [1,63]. Set it any
	// time between Begin and End; End fails with ErrInvalidUser6Bits if
	// it is still 0 (or out of range) when called.
	UserTag byte

	dst      []byte
	codeIdx  int // index of the reserved, not-yet-written code byte
	cur      int // next write position
	code     byte
	hashsum  byte
	encoding Encoding
	dict     [2]*Dictionary

	isLastCodeDictionary bool
	began                bool
}

// NewEncoder returns a ready-to-use, idle Encoder. Call Begin before Feed.
func NewEncoder() *Encoder {
	return &Encoder{}
}

// SetDictionary attaches dict to slot (Dict1 or Dict2) for subsequent Begin
// calls that select that encoding. Dictionaries are read-only after
// construction and may be shared across any number of encoders and
// decoders.
func (e *Encoder) SetDictionary(dict *Dictionary, slot Encoding) error {
	if dict == nil || (slot != Dict1 && slot != Dict2) {
		return ErrBadArg
	}
	e.dict[slot-Dict1] = dict
	return nil
}

// Begin starts a new frame into dst, which must have room for at least the
// 2-byte trailer. Begin resets all per-frame state except UserTag.
func (e *Encoder) Begin(encoding Encoding, dst []byte) error {
	if dst == nil || len(dst) < 2 {
		return ErrBadArg
	}
	switch encoding {
	case Plain:
	case Dict1:
		if e.dict[0] == nil {
			return ErrBadArg
		}
	case Dict2:
		if e.dict[1] == nil {
			return ErrBadArg
		}
	default:
		return ErrBadArg
	}

	e.dst = dst
	e.codeIdx = 0
	e.cur = 1
	e.code = 1
	e.hashsum = 0
	e.encoding = encoding
	e.isLastCodeDictionary = false
	e.began = true

	return nil
}

// Feed adds src to the frame under construction. It may be called any
// number of times between Begin and End; a zero-length src is a no-op.
func (e *Encoder) Feed(src []byte) error {
	if !e.began {
		return ErrNotInitialized
	}
	if len(src) == 0 {
		return nil
	}
	if e.encoding == Plain {
		return e.feedPlain(src)
	}
	return e.feedDictionary(src)
}

func (e *Encoder) feedPlain(src []byte) error {
	for _, b := range src {
		// A full group is closed as a jump only once more input arrives,
		// which may be in a later Feed call.
		if e.code == jumpCodePlain {
			if err := e.closeGroup(); err != nil {
				return err
			}
		}
		if b == 0 {
			if err := e.closeGroup(); err != nil {
				return err
			}
			continue
		}
		if err := e.appendLiteral(b); err != nil {
			return err
		}
	}
	return nil
}

func (e *Encoder) feedDictionary(src []byte) error {
	dict := e.dict[e.encoding-Dict1]

	pos := 0
	for pos < len(src) {
		if idx, matchLen := dict.search(src[pos:], len(src)-pos); idx != 0 {
			if e.code != 1 {
				if err := e.commitCode(e.code); err != nil {
					return err
				}
			}
			if err := e.commitCode(dictionaryBitmask | byte(idx-1)); err != nil {
				return err
			}
			e.isLastCodeDictionary = true
			pos += matchLen
			continue
		}

		e.isLastCodeDictionary = false

		if e.code == jumpCodeDict {
			if err := e.closeGroup(); err != nil {
				return err
			}
		}

		b := src[pos]
		pos++

		if b == 0 {
			if err := e.closeGroup(); err != nil {
				return err
			}
			continue
		}
		if err := e.appendLiteral(b); err != nil {
			return err
		}
	}
	return nil
}

// appendLiteral writes b at the current cursor and extends the pending
// group's literal count.
func (e *Encoder) appendLiteral(b byte) error {
	if e.cur >= len(e.dst) {
		return ErrWriteOverflow
	}
	e.hashsum += hash8(b)
	e.dst[e.cur] = b
	e.cur++
	e.code++
	return nil
}

// closeGroup commits the pending group's code value and opens a new one.
func (e *Encoder) closeGroup() error {
	if err := e.commitCode(e.code); err != nil {
		return err
	}
	e.isLastCodeDictionary = false
	return nil
}

// commitCode writes value into the reserved code slot, hashes it, and
// reserves the next slot at the current cursor.
func (e *Encoder) commitCode(value byte) error {
	e.hashsum += hash8(value)
	e.dst[e.codeIdx] = value
	if e.cur >= len(e.dst) {
		return ErrWriteOverflow
	}
	e.codeIdx = e.cur
	e.cur++
	e.code = 1
	return nil
}

// End finalizes the frame: it closes the last pending group (unless a
// dictionary token already closed it), appends the tag byte and the
// multiset hash, and reports the encoded length. The encoder is unusable
// until the next Begin, whether End succeeds or fails.
func (e *Encoder) End() (int, error) {
	if !e.began {
		return 0, ErrNotInitialized
	}
	defer func() { e.began = false }()

	if e.cur >= len(e.dst) {
		return 0, ErrWriteOverflow
	}
	if e.UserTag == 0 || e.UserTag > 0x3F {
		return 0, ErrInvalidUser6Bits
	}

	if e.isLastCodeDictionary {
		e.cur--
	} else {
		e.hashsum += hash8(e.code)
		e.dst[e.codeIdx] = e.code
	}

	if e.cur >= len(e.dst) {
		return 0, ErrWriteOverflow
	}
	tag := (e.UserTag << 2) | byte(e.encoding&0x03)
	e.hashsum += hash8(tag)
	e.dst[e.cur] = tag
	e.cur++

	if e.cur >= len(e.dst) {
		return 0, ErrWriteOverflow
	}
	e.dst[e.cur] = trailerHash(e.hashsum)
	e.cur++

	return e.cur, nil
}
