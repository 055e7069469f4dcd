package steg

import "fmt"

// headerBits is the size of the length header: a 32-bit big-endian
// count of the payload bits that follow it.
const headerBits = 32

// frame converts a payload into its bit sequence: the 32-bit length
// header, then each payload byte MSB-first. Bits are represented one
// per byte (0 or 1) for direct pairing with slots.
func frame(payload []byte) []byte {
	bits := make([]byte, 0, headerBits+8*len(payload))
	bitLen := uint32(8 * len(payload))
	for i := headerBits - 1; i >= 0; i-- {
		bits = append(bits, byte(bitLen>>uint(i))&1)
	}
	for _, b := range payload {
		for i := 7; i >= 0; i-- {
			bits = append(bits, (b>>uint(i))&1)
		}
	}
	return bits
}

// unframe reads the header and payload bits out of the permuted slot
// sequence and reassembles the payload bytes. A header that does not
// fit the carrier, or a declared length that is not a whole number of
// bytes, surfaces as ErrCapacityMismatch: the key is wrong or the
// document was never embedded.
func unframe(slots []Slot) ([]byte, error) {
	if len(slots) < headerBits {
		return nil, fmt.Errorf("%w (carrier has %d slots, header needs %d)", ErrCapacityMismatch, len(slots), headerBits)
	}

	var bitLen uint32
	for i := 0; i < headerBits; i++ {
		bit, err := extractBit(slots[i])
		if err != nil {
			return nil, err
		}
		bitLen = bitLen<<1 | uint32(bit)
	}

	if uint64(bitLen)+headerBits > uint64(len(slots)) {
		return nil, fmt.Errorf("%w (declared %d bits, carrier has %d slots)", ErrCapacityMismatch, bitLen, len(slots))
	}
	if bitLen%8 != 0 {
		return nil, fmt.Errorf("%w (declared length %d bits is not byte-aligned)", ErrCapacityMismatch, bitLen)
	}

	payload := make([]byte, 0, bitLen/8)
	var cur byte
	for i := 0; i < int(bitLen); i++ {
		bit, err := extractBit(slots[headerBits+i])
		if err != nil {
			return nil, err
		}
		cur = cur<<1 | byte(bit)
		if i%8 == 7 {
			payload = append(payload, cur)
			cur = 0
		}
	}
	return payload, nil
}
