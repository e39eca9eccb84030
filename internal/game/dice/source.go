package dice

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// cryptoSource implements Source using crypto/rand.
//
// Invariant: values are uniformly distributed in [0, n) for any n > 0.
type cryptoSource struct{}

// NewCryptoSource returns a Source backed by crypto/rand.
//
// Postcondition: Every value returned by Intn is in [0, n).
func NewCryptoSource() Source {
	return &cryptoSource{}
}

// Intn returns a cryptographically secure random int in [0, n).
//
// Precondition: n > 0. Panics with "dice: Intn called with n <= 0" if n <= 0.
func (c *cryptoSource) Intn(n int) int {
	if n <= 0 {
		panic("dice: Intn called with n <= 0")
	}
	val, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		panic("dice: crypto/rand failure: " + err.Error())
	}
	return int(val.Int64())
}

// FixedSource replays a predetermined sequence of values, wrapping around when
// exhausted. Each value is reduced modulo n so any sequence stays in range.
//
// FixedSource is not safe for concurrent use.
type FixedSource struct {
	values []int
	next   int
}

// NewFixedSource returns a FixedSource that yields values in order.
//
// Precondition: at least one value must be supplied; values must be >= 0.
func NewFixedSource(values ...int) *FixedSource {
	if len(values) == 0 {
		panic("dice: NewFixedSource requires at least one value")
	}
	for _, v := range values {
		if v < 0 {
			panic(fmt.Sprintf("dice: NewFixedSource value %d is negative", v))
		}
	}
	return &FixedSource{values: values}
}

// Intn returns the next value in the sequence modulo n.
//
// Precondition: n > 0.
// Postcondition: return value is in [0, n).
func (f *FixedSource) Intn(n int) int {
	if n <= 0 {
		panic("dice: Intn called with n <= 0")
	}
	v := f.values[f.next%len(f.values)]
	f.next++
	return v % n
}

// Calls reports how many values have been drawn so far.
func (f *FixedSource) Calls() int { return f.next }
