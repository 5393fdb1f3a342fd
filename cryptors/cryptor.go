// cryptor
package cryptors

import (
	"fmt"

	"github.com/friendsofgo/errors"
)

const (
	// AlphabetSize is the number of contacts on every rotor, reflector and
	// plugboard.
	AlphabetSize = 26
	// Alphabet lists the letters in index order.
	Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

// ErrNotLetter is returned when a character outside A-Z (either case) is
// handed to the cipher.
var ErrNotLetter = errors.New("not a letter")

// Crypter is a single stage of the signal path.  ApplyF is used on the way
// in from the keyboard, ApplyG on the way back to the lamps.
type Crypter interface {
	ApplyF(int) int
	ApplyG(int) int
}

// Mod returns a mod AlphabetSize in the range [0, AlphabetSize).
func Mod(a int) int {
	a %= AlphabetSize
	if a < 0 {
		a += AlphabetSize
	}
	return a
}

// IsLetter reports whether c is an ASCII letter.
func IsLetter(c rune) bool {
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}

// Encode converts a letter to its index, A -> 0 etc.  Lower case letters are
// accepted.
func Encode(c rune) (int, error) {
	if !IsLetter(c) {
		return 0, errors.Wrapf(ErrNotLetter, "%q", c)
	}
	if c >= 'a' {
		c -= 'a' - 'A'
	}
	return int(c - 'A'), nil
}

// Decode converts an index to its letter, 0 -> A etc.  An index outside
// [0, AlphabetSize) means the modular arithmetic is broken, so it panics.
func Decode(i int) rune {
	if i < 0 || i >= AlphabetSize {
		panic(fmt.Sprintf("cryptors: index %d out of range", i))
	}
	return rune('A' + i)
}

// Reflect passes c through the chain of crypters using ApplyF, turns it
// around with the reflector and passes it back through the chain in reverse
// order using ApplyG.  Every index produced along the way is sent to visit,
// if it is not nil.
func Reflect(c int, chain []Crypter, reflector Crypter, visit func(int)) int {
	if visit == nil {
		visit = func(int) {}
	}

	for _, ecm := range chain {
		c = ecm.ApplyF(c)
		visit(c)
	}

	c = reflector.ApplyF(c)
	visit(c)

	for idx := len(chain) - 1; idx >= 0; idx-- {
		c = chain[idx].ApplyG(c)
		visit(c)
	}

	return c
}
