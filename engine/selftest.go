package engine

import (
	"bytes"

	"github.com/bgallie/enigma/cryptors"
	"github.com/bgallie/enigma/cryptors/rotor"
	"github.com/friendsofgo/errors"
)

// roundTrip applies f to every index, then g to the result, and returns the
// images of both passes as letters.
func roundTrip(f, g func(int) int) (string, string) {
	var first, second bytes.Buffer
	for i := 0; i < cryptors.AlphabetSize; i++ {
		c := f(i)
		first.WriteRune(cryptors.Decode(c))
		second.WriteRune(cryptors.Decode(g(c)))
	}
	return first.String(), second.String()
}

// TestRotor passes every letter forward through the rotor at position pos
// and then back.  It returns the forward images and the round trip, which
// is the alphabet for a correctly wired rotor.
func (m *Machine) TestRotor(pos int) (string, string) {
	return roundTrip(
		func(c int) int { return m.ApplyRotor(pos, rotor.Forward, c) },
		func(c int) int { return m.ApplyRotor(pos, rotor.Reverse, c) })
}

// TestReflector passes every letter through the reflector twice.
func (m *Machine) TestReflector() (string, string) {
	return roundTrip(m.ApplyReflector, m.ApplyReflector)
}

// TestPlugboard passes every letter through the plugboard twice.
func (m *Machine) TestPlugboard() (string, string) {
	return roundTrip(m.ApplyPlugboard, m.ApplyPlugboard)
}

// SelfTest runs TestRotor for every position, TestReflector and
// TestPlugboard at the current offsets and reports the first stage whose
// round trip is not the identity.
func (m *Machine) SelfTest() error {
	alphabet := cryptors.Alphabet
	for pos, r := range m.rotors {
		if _, t := m.TestRotor(pos); t != alphabet {
			return errors.Errorf("rotor %s at position %d: round trip gives %s", r.Name(), pos, t)
		}
	}
	if _, t := m.TestReflector(); t != alphabet {
		return errors.Errorf("reflector %s: round trip gives %s", m.reflector.Name(), t)
	}
	if _, t := m.TestPlugboard(); t != alphabet {
		return errors.Errorf("plugboard: round trip gives %s", t)
	}
	return nil
}
