package engine

import (
	"github.com/bgallie/enigma/cryptors"
	"github.com/bgallie/enigma/library"
	"github.com/friendsofgo/errors"
)

// PringlesConfig is the simplified three rotor machine that can be built
// from a crisp tube.  Its offsets, notches and reflector alignment all come
// from a keyword; see InitialiseCan.
var PringlesConfig = Config{
	Rotors:       []string{"P3", "P2", "P1"},
	RingSettings: []int{1, 1, 1},
	Reflector:    "P",
	StepOrder:    Sequential,
}

// InitialiseCan derives the machine's starting state from a keyword.  The
// first letter is the alignment mark; the last sets the reflector offset
// relative to it.  The letters in between, read backwards, give both the
// starting offset and the notch of each rotor in turn, so the keyword must
// be two letters longer than the number of rotors.
func (m *Machine) InitialiseCan(keyword string) error {
	k := []rune(keyword)
	if len(k) < 3 {
		return configError("keyword", errors.Wrapf(ErrKeyword, "%q is shorter than 3 letters", keyword))
	}
	if len(k)-2 != len(m.rotors) {
		return configError("keyword", errors.Wrapf(ErrKeyword, "%q needs %d letters for %d rotors", keyword, len(m.rotors)+2, len(m.rotors)))
	}

	idx := make([]int, len(k))
	for i, c := range k {
		v, err := cryptors.Encode(c)
		if err != nil {
			return configError("keyword", errors.Wrapf(ErrKeyword, "%q: %v", keyword, err))
		}
		idx[i] = v
	}

	o := idx[0]
	notches := make([]int, 0, len(m.rotors))
	for i := len(idx) - 2; i >= 1; i-- {
		notches = append(notches, cryptors.Mod(idx[i]-o-1))
	}

	m.SetReflectorOffset(idx[len(idx)-1] - o)
	if err := m.OverrideNotches(notches); err != nil {
		return err
	}
	m.offsets = append(m.offsets[:0], notches...)
	return nil
}

// NewPringles builds a Pringles can machine from lib (nil means
// library.Standard()) and initialises it with keyword.
func NewPringles(lib *library.Library, keyword string) (*Machine, error) {
	m, err := New(lib, PringlesConfig)
	if err != nil {
		return nil, err
	}
	if err = m.InitialiseCan(keyword); err != nil {
		return nil, err
	}
	return m, nil
}

// EncryptPringlesMessage encrypts (or decrypts) s on a freshly initialised
// Pringles can machine.
func EncryptPringlesMessage(lib *library.Library, keyword, s string) (string, error) {
	m, err := NewPringles(lib, keyword)
	if err != nil {
		return "", err
	}
	return m.EncryptMessage(s)
}
