// Package engine drives a rotor machine of the Enigma family one character
// at a time.
//
// A Machine is assembled from the rotors and reflectors of a
// library.Library.  Every call to EncryptChar first steps the rotors and then
// passes the letter through the plugboard, the rotors from right to left,
// the reflector, the rotors from left to right and the plugboard again.
// Because the reflector turns the signal around, a machine started from the
// same offsets decrypts what it encrypted.
//
// A Machine is not safe for concurrent use.  The Library it was built from
// is never modified and may be shared.
package engine

import (
	"bytes"
	"log"

	"github.com/bgallie/enigma/cryptors"
	"github.com/bgallie/enigma/cryptors/permutator"
	"github.com/bgallie/enigma/cryptors/rotor"
	"github.com/bgallie/enigma/library"
	"github.com/friendsofgo/errors"
)

// Config describes the settings of a machine.  Rotors are listed left to
// right, RingSettings (1..26) match them one for one.  Start gives the
// initial offset letter of every rotor; empty means all 'A'.
type Config struct {
	Rotors       []string
	RingSettings []int
	Reflector    string
	Plugboard    string
	StepOrder    StepOrder
	Start        string
}

// Machine holds the mounted rotors and their current offsets.
type Machine struct {
	rotors          []*rotor.Rotor
	rings           []int
	offsets         []int
	notches         map[string]int // overrides of the library notches
	reflector       *permutator.Permutator
	reflectorOffset int
	plugboard       *permutator.Permutator
	stepOrder       []int
	chain           []cryptors.Crypter
	logger          *log.Logger
}

// New builds a machine from cfg using the rotors and reflectors in lib.  A
// nil lib means library.Standard().
func New(lib *library.Library, cfg Config) (*Machine, error) {
	if lib == nil {
		lib = library.Standard()
	}
	if len(cfg.Rotors) == 0 {
		return nil, configError("rotors", errNoRotors)
	}

	m := Machine{
		rotors:  make([]*rotor.Rotor, len(cfg.Rotors)),
		rings:   make([]int, len(cfg.Rotors)),
		offsets: make([]int, len(cfg.Rotors)),
		notches: make(map[string]int),
	}

	for i, name := range cfg.Rotors {
		r, err := lib.Rotor(name)
		if err != nil {
			return nil, configError("rotors", err)
		}
		m.rotors[i] = r
	}

	if len(cfg.RingSettings) != len(cfg.Rotors) {
		return nil, configError("ring settings",
			errors.Errorf("%d ring settings for %d rotors", len(cfg.RingSettings), len(cfg.Rotors)))
	}
	for i, rs := range cfg.RingSettings {
		if rs < 1 || rs > cryptors.AlphabetSize {
			return nil, configError("ring settings", errors.Errorf("ring setting %d is not in 1..%d", rs, cryptors.AlphabetSize))
		}
		m.rings[i] = rs
	}

	var err error
	if m.reflector, err = lib.Reflector(cfg.Reflector); err != nil {
		return nil, configError("reflector", err)
	}
	if m.plugboard, err = permutator.NewPlugboard(cfg.Plugboard); err != nil {
		return nil, configError("plugboard", err)
	}
	if err = m.SetStepOrder(cfg.StepOrder); err != nil {
		return nil, err
	}
	if len(cfg.Start) > 0 {
		if err = m.SetOffsets(cfg.Start); err != nil {
			return nil, err
		}
	}

	// The signal meets the plugboard first and then the rotors from the
	// right hand end of the list.
	m.chain = append(m.chain, m.plugboard)
	for i := len(m.rotors) - 1; i >= 0; i-- {
		m.chain = append(m.chain, wheel{&m, i})
	}
	return &m, nil
}

// wheel is the rotor mounted at a position of a machine, seen as a stage of
// the signal path.
type wheel struct {
	m   *Machine
	pos int
}

func (w wheel) ApplyF(c int) int { return w.m.ApplyRotor(w.pos, rotor.Forward, c) }
func (w wheel) ApplyG(c int) int { return w.m.ApplyRotor(w.pos, rotor.Reverse, c) }

type reflector struct{ m *Machine }

func (r reflector) ApplyF(c int) int { return r.m.ApplyReflector(c) }
func (r reflector) ApplyG(c int) int { return r.m.ApplyReflector(c) }

// SetLogger turns on a trace of every encrypted character.  A nil logger
// turns it off.
func (m *Machine) SetLogger(l *log.Logger) {
	m.logger = l
}

// Len returns the number of mounted rotors.
func (m *Machine) Len() int {
	return len(m.rotors)
}

// Rotors returns the names of the mounted rotors, left to right.
func (m *Machine) Rotors() []string {
	names := make([]string, len(m.rotors))
	for i, r := range m.rotors {
		names[i] = r.Name()
	}
	return names
}

// RingSettings returns a copy of the ring settings.
func (m *Machine) RingSettings() []int {
	return append([]int(nil), m.rings...)
}

// Reflector returns the name of the mounted reflector.
func (m *Machine) Reflector() string {
	return m.reflector.Name()
}

// Plugboard returns the plugboard pairs.
func (m *Machine) Plugboard() string {
	return m.plugboard.Pairs()
}

// StepOrder returns the resolved step order, fastest rotor first.
func (m *Machine) StepOrder() []int {
	return append([]int(nil), m.stepOrder...)
}

// SetStepOrder resolves s for the mounted rotors.
func (m *Machine) SetStepOrder(s StepOrder) error {
	order, err := s.Resolve(len(m.rotors))
	if err != nil {
		return configError("step order", err)
	}
	m.stepOrder = order
	return nil
}

// Offsets returns the current offsets as letters, e.g. "ADU".
func (m *Machine) Offsets() string {
	var output bytes.Buffer
	for _, o := range m.offsets {
		output.WriteRune(cryptors.Decode(o))
	}
	return output.String()
}

// SetOffsets sets the offset of every rotor from a string of letters.
func (m *Machine) SetOffsets(s string) error {
	runes := []rune(s)
	if len(runes) != len(m.rotors) {
		return configError("offsets", errors.Errorf("%q has %d letters for %d rotors", s, len(runes), len(m.rotors)))
	}
	offsets := make([]int, len(runes))
	for i, c := range runes {
		o, err := cryptors.Encode(c)
		if err != nil {
			return configError("offsets", err)
		}
		offsets[i] = o
	}
	m.offsets = offsets
	return nil
}

// ReflectorOffset returns the rotation applied to the reflector wiring.
func (m *Machine) ReflectorOffset() int {
	return m.reflectorOffset
}

// SetReflectorOffset rotates the reflector wiring by o.
func (m *Machine) SetReflectorOffset(o int) {
	m.reflectorOffset = cryptors.Mod(o)
}

// OverrideNotches replaces the library notch of the rotor at each position
// of notches for this machine only.
func (m *Machine) OverrideNotches(notches []int) error {
	if len(notches) > len(m.rotors) {
		return configError("notches", errors.Errorf("%d notches for %d rotors", len(notches), len(m.rotors)))
	}
	for i, n := range notches {
		m.notches[m.rotors[i].Name()] = cryptors.Mod(n)
	}
	return nil
}

// Notch returns the notch in effect for the rotor at position pos.
func (m *Machine) Notch(pos int) int {
	r := m.rotors[pos]
	if n, ok := m.notches[r.Name()]; ok {
		return n
	}
	return r.Notch()
}

// ApplyRotor passes c through the rotor at position pos in direction d
// (rotor.Forward or rotor.Reverse), allowing for its offset and ring
// setting.
func (m *Machine) ApplyRotor(pos, d, c int) int {
	o := cryptors.Mod(m.offsets[pos] - (m.rings[pos] - 1) + c)
	return cryptors.Mod(c + m.rotors[pos].Diff(d, o))
}

// ApplyReflector passes c through the reflector, rotated by the reflector
// offset.
func (m *Machine) ApplyReflector(c int) int {
	return m.reflector.Apply(c, m.reflectorOffset)
}

// ApplyPlugboard passes c through the plugboard.
func (m *Machine) ApplyPlugboard(c int) int {
	return m.plugboard.ApplyF(c)
}

// StepOffsets advances the rotors for one key press.  The fastest rotor
// always advances.  A rotor sitting at its notch advances the next rotor in
// the step order and itself, which gives the double step of the middle
// rotor.  All decisions are taken before any offset changes.
func (m *Machine) StepOffsets() {
	advance := make([]int, len(m.offsets))
	advance[m.stepOrder[0]] = 1

	for i := len(m.stepOrder) - 2; i >= 0; i-- {
		r := m.stepOrder[i]
		if m.offsets[r] == m.Notch(r) {
			advance[m.stepOrder[i+1]] = 1
			advance[r] = 1
		}
	}

	for i := range m.offsets {
		m.offsets[i] = cryptors.Mod(m.offsets[i] + advance[i])
	}
}

// EncryptChar steps the rotors and encrypts a single letter.  Lower case is
// accepted; the result is always upper case.  A character that is not a
// letter is rejected with cryptors.ErrNotLetter and the rotors do not move.
func (m *Machine) EncryptChar(c rune) (rune, error) {
	d, err := cryptors.Encode(c)
	if err != nil {
		return 0, err
	}

	m.StepOffsets()

	var path []int
	var visit func(int)
	if m.logger != nil {
		visit = func(i int) { path = append(path, i) }
	}

	e := cryptors.Decode(cryptors.Reflect(d, m.chain, reflector{m}, visit))

	if m.logger != nil {
		m.logger.Printf("%c offsets=%s in=%d path=%v out=%c", c, m.Offsets(), d, path, e)
	}
	return e, nil
}

// EncryptMessage encrypts every character of s in turn.  Encryption and
// decryption are the same operation.  On error the rotors are left where the
// offending character found them.
func (m *Machine) EncryptMessage(s string) (string, error) {
	var output bytes.Buffer
	for i, c := range s {
		e, err := m.EncryptChar(c)
		if err != nil {
			return "", errors.Wrapf(err, "position %d", i)
		}
		output.WriteRune(e)
	}
	return output.String(), nil
}
