// Package library holds the named rotor and reflector wirings machines are
// assembled from.  A Builder collects definitions; Build freezes them into a
// Library, which is never modified afterwards and may be shared by any
// number of machines.
package library

import (
	"sort"
	"sync"

	"github.com/bgallie/enigma/cryptors/permutator"
	"github.com/bgallie/enigma/cryptors/rotor"
	"github.com/friendsofgo/errors"
)

var (
	ErrUnknownRotor     = errors.New("unknown rotor")
	ErrUnknownReflector = errors.New("unknown reflector")
)

// Library is an immutable set of rotors and reflectors keyed by name.
type Library struct {
	rotors     map[string]*rotor.Rotor
	reflectors map[string]*permutator.Permutator
}

// Builder collects rotor and reflector definitions.  A later definition
// with the same name replaces the earlier one.  The first error
// encountered is kept and reported by Build.
type Builder struct {
	rotors     map[string]*rotor.Rotor
	reflectors map[string]*permutator.Permutator
	err        error
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{
		rotors:     make(map[string]*rotor.Rotor),
		reflectors: make(map[string]*permutator.Permutator),
	}
}

// DefineRotor adds a rotor built from wiring with its notch at the letter
// notch.
func (b *Builder) DefineRotor(name, wiring string, notch rune) *Builder {
	if b.err != nil {
		return b
	}
	r, err := rotor.New(name, wiring, notch)
	if err != nil {
		b.err = err
		return b
	}
	b.rotors[name] = r
	return b
}

// DefineReflector adds a reflector built from wiring.
func (b *Builder) DefineReflector(name, wiring string) *Builder {
	if b.err != nil {
		return b
	}
	p, err := permutator.NewReflector(name, wiring)
	if err != nil {
		b.err = err
		return b
	}
	b.reflectors[name] = p
	return b
}

// Standard adds the historical Enigma I rotors I-V and reflectors A-C, and
// the simplified Pringles can rotors P1-P3 and reflector P.
func (b *Builder) Standard() *Builder {
	return b.
		DefineRotor("I", "EKMFLGDQVZNTOWYHXUSPAIBRCJ", 'Q').
		DefineRotor("II", "AJDKSIRUXBLHWTMCQGZNPYFVOE", 'E').
		DefineRotor("III", "BDFHJLCPRTXVZNYEIWGAKMUSQO", 'V').
		DefineRotor("IV", "ESOVPZJAYQUIRHXLNFTGKDCMWB", 'J').
		DefineRotor("V", "VZBRGITYUPSDNHLXAWMJQOFECK", 'Z').
		DefineReflector("A", "EJMZALYXVBWFCRQUONTSPIKHGD").
		DefineReflector("B", "YRUHQSLDPXNGOKMIEBFZCWVJAT").
		DefineReflector("C", "FVPJIAOYEDRZXWGCTKUQSBNMHL").
		//                   ABCDEFGHIJKLMNOPQRSTUVWXYZ
		DefineRotor("P1", "CDEABGIFHLJMOKRNTUPQWSVZXY", 'Y').
		DefineRotor("P2", "BADEFCIGHLMJKONQRPUSTYZVWX", 'Y').
		DefineRotor("P3", "DABGHCEFJILKPMNOSTQRXYZUVW", 'Y').
		DefineReflector("P", "EDHBAILCFMOGJSKRUPNWQYTZVX")
}

// Build verifies every rotor and freezes the definitions.
func (b *Builder) Build() (*Library, error) {
	if b.err != nil {
		return nil, b.err
	}

	lib := Library{
		rotors:     make(map[string]*rotor.Rotor, len(b.rotors)),
		reflectors: make(map[string]*permutator.Permutator, len(b.reflectors)),
	}
	for name, r := range b.rotors {
		if err := r.Check(); err != nil {
			return nil, err
		}
		lib.rotors[name] = r
	}
	for name, p := range b.reflectors {
		lib.reflectors[name] = p
	}
	return &lib, nil
}

var (
	standardOnce sync.Once
	standard     *Library
)

// Standard returns the library holding only the standard definitions.  It
// is built on first use and shared by every caller.
func Standard() *Library {
	standardOnce.Do(func() {
		lib, err := NewBuilder().Standard().Build()
		if err != nil {
			panic(err)
		}
		standard = lib
	})
	return standard
}

// Rotor returns a copy of the named rotor.
func (l *Library) Rotor(name string) (*rotor.Rotor, error) {
	r, ok := l.rotors[name]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownRotor, "%q", name)
	}
	c := *r
	return &c, nil
}

// Reflector returns the named reflector.
func (l *Library) Reflector(name string) (*permutator.Permutator, error) {
	p, ok := l.reflectors[name]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownReflector, "%q", name)
	}
	return p, nil
}

// RotorNames returns the names of all rotors in sorted order.
func (l *Library) RotorNames() []string {
	names := make([]string, 0, len(l.rotors))
	for name := range l.rotors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ReflectorNames returns the names of all reflectors in sorted order.
func (l *Library) ReflectorNames() []string {
	names := make([]string, 0, len(l.reflectors))
	for name := range l.reflectors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
