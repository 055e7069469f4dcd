package steg

import (
	"crypto/rand"
	"fmt"
)

// embedBit rewrites the final digit of the slot's literal with a digit
// of the right parity: {2,4,6,8} for bit 0, {3,5,7,9} for bit 1. The
// digits 0 and 1 are never written, so embedded literals do not stand
// out from hand-authored ones. The digit choice comes from crypto/rand,
// kept separate from the permutation keystream so embedding bits does
// not advance the keyed generator.
//
// The replacement is a single same-length character write, so spans of
// sibling slots sharing the attribute value stay valid.
func embedBit(bit int, slot Slot) error {
	val, ok := slot.Element.Attr(slot.Attr)
	if !ok || slot.End > len(val) {
		return fmt.Errorf("slot [%d:%d) no longer addresses attribute %q", slot.Start, slot.End, slot.Attr)
	}
	digit, err := parityDigit(bit)
	if err != nil {
		return err
	}
	buf := []byte(val)
	buf[slot.End-1] = digit
	slot.Element.SetAttr(slot.Attr, string(buf))
	return nil
}

// extractBit returns the parity of the literal's final digit: 0 for
// even, 1 for odd. Read-only.
func extractBit(slot Slot) (int, error) {
	val, ok := slot.Element.Attr(slot.Attr)
	if !ok || slot.End > len(val) {
		return 0, fmt.Errorf("slot [%d:%d) no longer addresses attribute %q", slot.Start, slot.End, slot.Attr)
	}
	c := val[slot.End-1]
	if c < '0' || c > '9' {
		return 0, fmt.Errorf("slot %s[%d:%d] does not end in a digit", slot.Attr, slot.Start, slot.End)
	}
	return int(c-'0') & 1, nil
}

func parityDigit(bit int) (byte, error) {
	var b [1]byte
	if _, err := rand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("draw embedding digit: %w", err)
	}
	return '2' + 2*(b[0]%4) + byte(bit), nil
}
