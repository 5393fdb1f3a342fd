// rotor
package rotor

import (
	"bytes"
	"fmt"

	"github.com/bgallie/enigma/cryptors"
	"github.com/friendsofgo/errors"
)

// Directions through a rotor.
const (
	Forward = 0 // keyboard towards the reflector
	Reverse = 1 // reflector back towards the lamps
)

// ErrBadWiring is returned when a wiring string is not a permutation of the
// alphabet or the notch is not a letter.
var ErrBadWiring = errors.New("bad wiring")

// Rotor holds the wiring of a named rotor as differences: a signal entering
// at contact p in the forward direction leaves at p + diff[Forward][p].
type Rotor struct {
	name   string
	wiring string
	diff   [2][cryptors.AlphabetSize]int
	notch  int
}

// New builds a rotor from a 26 letter wiring string, where the letter at
// position i is the contact plaintext index i is wired to, and the letter of
// its notch.
func New(name, wiring string, notch rune) (*Rotor, error) {
	var r Rotor
	if err := r.update(name, wiring, notch); err != nil {
		return nil, err
	}
	return &r, nil
}

// update fills in r; New is the only caller, so a Rotor never changes once built.
func (r *Rotor) update(name, wiring string, notch rune) error {
	if len(wiring) != cryptors.AlphabetSize {
		return errors.Wrapf(ErrBadWiring, "rotor %s: wiring has %d letters", name, len(wiring))
	}

	n, err := cryptors.Encode(notch)
	if err != nil {
		return errors.Wrapf(ErrBadWiring, "rotor %s: notch %q", name, notch)
	}

	var seen [cryptors.AlphabetSize]bool
	var diff [2][cryptors.AlphabetSize]int
	for i, c := range wiring {
		o, err := cryptors.Encode(c)
		if err != nil {
			return errors.Wrapf(ErrBadWiring, "rotor %s: contact %d is %q", name, i, c)
		}
		if seen[o] {
			return errors.Wrapf(ErrBadWiring, "rotor %s: %c is wired twice", name, cryptors.Decode(o))
		}
		seen[o] = true
		d := cryptors.Mod(o - i)
		diff[Forward][i] = d
		diff[Reverse][cryptors.Mod(i+d)] = cryptors.Mod(-d)
	}

	r.name = name
	r.wiring = string(bytes.ToUpper([]byte(wiring)))
	r.diff = diff
	r.notch = n
	return nil
}

// Name returns the rotor's name.
func (r *Rotor) Name() string {
	return r.name
}

// Wiring returns the (upper case) wiring string the rotor was built from.
func (r *Rotor) Wiring() string {
	return r.wiring
}

// Notch returns the index of the rotor's notch.
func (r *Rotor) Notch() int {
	return r.notch
}

// Diff returns the difference applied at contact p in direction d.
func (r *Rotor) Diff(d, p int) int {
	return r.diff[d][p]
}

// Check verifies that the reverse wiring undoes the forward wiring at every
// contact.
func (r *Rotor) Check() error {
	for p, d := range r.diff[Forward] {
		if r.diff[Reverse][cryptors.Mod(p+d)] != cryptors.Mod(-d) {
			return errors.Errorf("rotor %s: reverse wiring does not undo contact %c", r.name, cryptors.Decode(p))
		}
	}
	return nil
}

func (r *Rotor) String() string {
	var output bytes.Buffer
	output.WriteString(fmt.Sprintf("rotor.New(%q, %q, '%c') {\n", r.name, r.wiring, cryptors.Decode(r.notch)))
	for d, name := range [...]string{"forward", "reverse"} {
		output.WriteString(fmt.Sprintf("\t%s: ", name))
		for i, k := range r.diff[d] {
			if i != 0 {
				output.WriteString(", ")
			}
			output.WriteString(fmt.Sprintf("%d", k))
		}
		output.WriteString("\n")
	}
	output.WriteString("}")
	return output.String()
}
