package library_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bgallie/enigma/cryptors/permutator"
	"github.com/bgallie/enigma/cryptors/rotor"
	"github.com/bgallie/enigma/library"
	"github.com/friendsofgo/errors"
)

func TestStandard(t *testing.T) {
	lib := library.Standard()
	if lib != library.Standard() {
		t.Error("Standard built twice")
	}

	rotors := []struct {
		name  string
		notch int
	}{
		{"I", 16}, {"II", 4}, {"III", 21}, {"IV", 9}, {"V", 25},
		{"P1", 24}, {"P2", 24}, {"P3", 24},
	}
	for _, tt := range rotors {
		r, err := lib.Rotor(tt.name)
		if err != nil {
			t.Fatal(err)
		}
		if r.Notch() != tt.notch {
			t.Errorf("rotor %s notch = %d, want %d", tt.name, r.Notch(), tt.notch)
		}
		if err := r.Check(); err != nil {
			t.Error(err)
		}
	}

	for _, name := range []string{"A", "B", "C", "P"} {
		p, err := lib.Reflector(name)
		if err != nil {
			t.Fatal(err)
		}
		if _, ok := p.SelfInverse(); !ok {
			t.Errorf("reflector %s is not self-inverse", name)
		}
	}

	if got := len(lib.RotorNames()); got != 8 {
		t.Errorf("%d rotors, want 8", got)
	}
	if got := lib.ReflectorNames(); len(got) != 4 || got[0] != "A" || got[3] != "P" {
		t.Errorf("ReflectorNames = %v", got)
	}
}

func TestStandardRotorsAreCopies(t *testing.T) {
	fresh, err := library.NewBuilder().Standard().Build()
	if err != nil {
		t.Fatal(err)
	}
	for _, name := range library.Standard().RotorNames() {
		r1, err := library.Standard().Rotor(name)
		if err != nil {
			t.Fatal(err)
		}
		r2, _ := library.Standard().Rotor(name)
		if r1 == r2 {
			t.Errorf("%s: two lookups share one rotor", name)
		}
		want, _ := fresh.Rotor(name)
		if r1.Wiring() != want.Wiring() || r1.Notch() != want.Notch() {
			t.Errorf("%s: %s notch %d, want %s notch %d", name, r1.Wiring(), r1.Notch(), want.Wiring(), want.Notch())
		}
	}
}

func TestUnknown(t *testing.T) {
	lib := library.Standard()
	if _, err := lib.Rotor("VI"); !errors.Is(err, library.ErrUnknownRotor) {
		t.Errorf("Rotor(VI) err = %v", err)
	}
	if _, err := lib.Reflector("D"); !errors.Is(err, library.ErrUnknownReflector) {
		t.Errorf("Reflector(D) err = %v", err)
	}
}

func TestBuilderRedefine(t *testing.T) {
	lib, err := library.NewBuilder().
		Standard().
		DefineRotor("I", "ABCDEFGHIJKLMNOPQRSTUVWXYZ", 'A').
		Build()
	if err != nil {
		t.Fatal(err)
	}
	r, _ := lib.Rotor("I")
	if r.Wiring() != "ABCDEFGHIJKLMNOPQRSTUVWXYZ" {
		t.Errorf("rotor I was not replaced: %s", r.Wiring())
	}
	// The shared standard library is untouched.
	r, _ = library.Standard().Rotor("I")
	if r.Wiring() != "EKMFLGDQVZNTOWYHXUSPAIBRCJ" {
		t.Errorf("standard rotor I changed: %s", r.Wiring())
	}
}

func TestBuilderKeepsFirstError(t *testing.T) {
	_, err := library.NewBuilder().
		DefineRotor("bad", "ABC", 'A').
		DefineReflector("worse", "ABC").
		Build()
	if !errors.Is(err, rotor.ErrBadWiring) {
		t.Errorf("err = %v, want rotor.ErrBadWiring", err)
	}

	_, err = library.NewBuilder().DefineReflector("R", "BCADEFGHIJKLMNOPQRSTUVWXYZ").Build()
	if !errors.Is(err, permutator.ErrBadWiring) {
		t.Errorf("err = %v, want permutator.ErrBadWiring", err)
	}
}

const extra = `
rotors:
  VI:
    wiring: JPGVOUMFYQBENHZRDKASXLICTW
    notch: Z
  VII: {wiring: NZJHGRCXMYSWBOUFAIVLPEKQDT, notch: z}
reflectors:
  B-thin: ENKQAUYWJICOPBLMDXZVFTHRGS
`

func TestParse(t *testing.T) {
	lib, err := library.NewBuilder().Standard().Parse([]byte(extra)).Build()
	if err != nil {
		t.Fatal(err)
	}
	r, err := lib.Rotor("VII")
	if err != nil {
		t.Fatal(err)
	}
	if r.Notch() != 25 {
		t.Errorf("VII notch = %d", r.Notch())
	}
	if _, err := lib.Reflector("B-thin"); err != nil {
		t.Error(err)
	}
	if _, err := lib.Rotor("III"); err != nil {
		t.Error(err)
	}
}

func TestParseErrors(t *testing.T) {
	tests := map[string]string{
		"yaml":   "rotors: [",
		"notch":  "rotors: {X: {wiring: ABCDEFGHIJKLMNOPQRSTUVWXYZ, notch: AB}}",
		"empty":  "rotors: {X: {wiring: ABCDEFGHIJKLMNOPQRSTUVWXYZ}}",
		"wiring": "rotors: {X: {wiring: ABC, notch: A}}",
		"mirror": "reflectors: {X: ABCDEFGHIJKLMNOPQRSTUVWXYZZ}",
	}
	for name, data := range tests {
		if _, err := library.NewBuilder().Parse([]byte(data)).Build(); err == nil {
			t.Errorf("%s: no error", name)
		}
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wirings.yaml")
	if err := os.WriteFile(path, []byte(extra), 0600); err != nil {
		t.Fatal(err)
	}
	lib, err := library.NewBuilder().LoadFile(path).Build()
	if err != nil {
		t.Fatal(err)
	}
	if got := lib.RotorNames(); len(got) != 2 || got[0] != "VI" {
		t.Errorf("RotorNames = %v", got)
	}

	if _, err := library.NewBuilder().LoadFile(path + ".missing").Build(); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file err = %v", err)
	}
}
