package steg

import (
	"crypto/sha256"
	"encoding/binary"
	"math"

	"golang.org/x/crypto/chacha20"
)

// PermutationVersion identifies the keyed shuffle construction. Both
// sides of the channel derive the permutation independently from the
// shared key, so the construction is frozen: SHA-256 of the key bytes
// as a ChaCha20 cipher key, an all-zero nonce, 64-bit big-endian draws
// from the keystream with rejection sampling, driving a Fisher-Yates
// shuffle from the top index down. Any change here is a new version
// and a new, incompatible stego format.
const PermutationVersion = 1

// PermuteSlots reorders slots in place under the stego-key. The same
// key and slot count always produce the same permutation.
func PermuteSlots(slots []Slot, key string) {
	ks := newKeystream(key)
	for i := len(slots) - 1; i > 0; i-- {
		j := ks.intn(i + 1)
		slots[i], slots[j] = slots[j], slots[i]
	}
}

// keystream yields deterministic uniform integers from a ChaCha20
// stream seeded by the key digest.
type keystream struct {
	cipher *chacha20.Cipher
}

func newKeystream(key string) *keystream {
	seed := sha256.Sum256([]byte(key))
	nonce := make([]byte, chacha20.NonceSize)
	c, err := chacha20.NewUnauthenticatedCipher(seed[:], nonce)
	if err != nil {
		// Key and nonce sizes are fixed above; this cannot fail.
		panic(err)
	}
	return &keystream{cipher: c}
}

func (k *keystream) next() uint64 {
	var buf [8]byte
	k.cipher.XORKeyStream(buf[:], buf[:])
	return binary.BigEndian.Uint64(buf[:])
}

// intn returns a uniform integer in [0, n). Draws falling into the
// truncated top range of 2^64 are rejected so small n stays unbiased.
func (k *keystream) intn(n int) int {
	if n <= 0 {
		panic("intn: n must be positive")
	}
	un := uint64(n)
	reject := (math.MaxUint64%un + 1) % un
	limit := math.MaxUint64 - reject
	for {
		v := k.next()
		if v <= limit {
			return int(v % un)
		}
	}
}
