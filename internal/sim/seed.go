package sim

import (
	"crypto/rand"
	"encoding/binary"
	mrand "math/rand/v2"
	"strconv"
	"strings"
	"time"
)

// NormalizeSeed trims surrounding whitespace. An empty result means the
// caller should pick a random seed.
func NormalizeSeed(raw string) string {
	return strings.TrimSpace(raw)
}

// readEntropy fills b with random bytes. Swapped in tests.
var readEntropy = func(b []byte) error {
	_, err := rand.Read(b)
	return err
}

// RandomSeed returns a fresh base-36 seed from crypto/rand, falling back to
// a time-seeded PCG when the system source fails.
func RandomSeed() string {
	var buf [8]byte
	var v uint64
	if err := readEntropy(buf[:]); err == nil {
		v = binary.BigEndian.Uint64(buf[:])
	} else {
		now := uint64(time.Now().UnixNano())
		v = mrand.New(mrand.NewPCG(now, now>>17|1)).Uint64()
	}
	return strconv.FormatUint(v, 36)
}

// ResolveSeed normalises raw and substitutes a random seed for empty input.
func ResolveSeed(raw string) string {
	if seed := NormalizeSeed(raw); seed != "" {
		return seed
	}
	return RandomSeed()
}
