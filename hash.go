// SPDX-License-Identifier: BSD-3-Clause
// Source: github.com/KammutierSpule/dzcobs

package dzcobs

// hashValueWhenZero is substituted for a trailer hash byte that computes to
// 0x00, since 0x00 is reserved to mean "no/invalid trailer".
const hashValueWhenZero = 0xFF

// hash8 is an order-independent multiset hash term for a single byte. It is
// more sensitive to 2- and 3-bit errors than XOR or a modular sum while
// staying commutative, so frame bytes can be hashed incrementally in any
// order as they're written.
func hash8(b byte) byte {
	return ((b ^ (b >> 3)) * 167) ^ (b << 1)
}

// frameHash computes the order-independent multiset hash over b, the value
// stored (after zero substitution) in the last byte of a frame.
func frameHash(b []byte) byte {
	var sum byte
	for _, v := range b {
		sum += hash8(v)
	}
	return sum
}

// trailerHash substitutes hashValueWhenZero for a zero result so the trailer
// never contains a 0x00 byte.
func trailerHash(sum byte) byte {
	if sum == 0 {
		return hashValueWhenZero
	}
	return sum
}
