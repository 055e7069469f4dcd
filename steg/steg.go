// Package steg hides byte payloads in SVG documents by adjusting the
// parity of the least-significant digit of selected decimal literals.
// Carrier positions are discovered canonically, then reordered by a
// keyed deterministic permutation; the permutation, not the digits
// themselves, is what a reader without the key cannot reproduce.
package steg

import (
	"fmt"

	"github.com/wudi/svgsteg/observability"
	"github.com/wudi/svgsteg/profile"
	"github.com/wudi/svgsteg/svg"
)

// Options configures a single embed, extract, or capacity invocation.
// The zero value uses the built-in SVG profile, no slot filter, and no
// logging.
type Options struct {
	// Profile selects the carrier tag/attribute map. Both sides of the
	// channel must use the same profile.
	Profile profile.Profile

	// Filter, when set, drops slots before permutation. Both sides
	// must apply the same filter.
	Filter SlotFilter

	// Logger receives debug-level progress events.
	Logger observability.Logger
}

func (o Options) carrierProfile() profile.Profile {
	if o.Profile != nil {
		return o.Profile
	}
	return profile.Default()
}

func (o Options) logger() observability.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return observability.NopLogger{}
}

// carrierSlots runs discovery, filtering, and the keyed permutation.
// Shared by both directions of the channel so they cannot diverge.
func carrierSlots(doc *svg.Document, key string, opts Options) ([]Slot, error) {
	log := opts.logger()
	slots := DiscoverSlots(doc, opts.carrierProfile())
	log.Debug("discovered slots", observability.Int("count", len(slots)))
	slots, err := filterSlots(slots, opts.Filter)
	if err != nil {
		return nil, fmt.Errorf("slot filter: %w", err)
	}
	if opts.Filter != nil {
		log.Debug("filtered slots", observability.Int("count", len(slots)))
	}
	PermuteSlots(slots, key)
	return slots, nil
}

// Embed writes payload into doc under key, mutating attribute values in
// place. The document is untouched on error: capacity is checked
// against the framed payload before the first bit is written.
func Embed(doc *svg.Document, key string, payload []byte, opts Options) error {
	slots, err := carrierSlots(doc, key, opts)
	if err != nil {
		return err
	}
	bits := frame(payload)
	if len(bits) > len(slots) {
		return fmt.Errorf("%w (need %d slots, carrier has %d)", ErrCapacityExceeded, len(bits), len(slots))
	}
	for i, bit := range bits {
		if err := embedBit(int(bit), slots[i]); err != nil {
			return err
		}
	}
	opts.logger().Debug("embedded payload",
		observability.Int("payload_bytes", len(payload)),
		observability.Int("bits", len(bits)))
	return nil
}

// Extract recovers the payload embedded in doc under key. The document
// is never mutated, so retrying with different keys is safe. A wrong
// key yields ErrCapacityMismatch or garbage bytes; it never silently
// yields the true payload.
func Extract(doc *svg.Document, key string, opts Options) ([]byte, error) {
	slots, err := carrierSlots(doc, key, opts)
	if err != nil {
		return nil, err
	}
	payload, err := unframe(slots)
	if err != nil {
		return nil, err
	}
	opts.logger().Debug("extracted payload", observability.Int("payload_bytes", len(payload)))
	return payload, nil
}

// Capacity reports how many payload bytes doc can carry: the slot
// count minus the 32-bit header, in whole bytes. The result is
// negative for documents with fewer than 32 slots; callers decide how
// to present that (the CLI reports it as-is, matching the arithmetic).
func Capacity(doc *svg.Document, opts Options) (int, error) {
	slots := DiscoverSlots(doc, opts.carrierProfile())
	slots, err := filterSlots(slots, opts.Filter)
	if err != nil {
		return 0, fmt.Errorf("slot filter: %w", err)
	}
	return floorDiv(len(slots)-headerBits, 8), nil
}

// floorDiv is integer division rounding toward negative infinity, so
// sub-header carriers report a distinctly negative capacity instead of
// rounding up toward zero.
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
