package rotor_test

import (
	"strings"
	"testing"

	"github.com/bgallie/enigma/cryptors"
	"github.com/bgallie/enigma/cryptors/rotor"
	"github.com/friendsofgo/errors"
)

func TestNew(t *testing.T) {
	r, err := rotor.New("I", "EKMFLGDQVZNTOWYHXUSPAIBRCJ", 'Q')
	if err != nil {
		t.Fatal(err)
	}
	if r.Name() != "I" || r.Notch() != 16 {
		t.Errorf("name %s notch %d", r.Name(), r.Notch())
	}
	// A is wired to E: forward difference 4, and E comes back to A.
	if d := r.Diff(rotor.Forward, 0); d != 4 {
		t.Errorf("forward diff at A = %d, want 4", d)
	}
	if d := r.Diff(rotor.Reverse, 4); d != 22 {
		t.Errorf("reverse diff at E = %d, want 22", d)
	}
	if err := r.Check(); err != nil {
		t.Error(err)
	}
}

func TestInvolution(t *testing.T) {
	wirings := []string{
		"EKMFLGDQVZNTOWYHXUSPAIBRCJ",
		"AJDKSIRUXBLHWTMCQGZNPYFVOE",
		"BDFHJLCPRTXVZNYEIWGAKMUSQO",
		"ESOVPZJAYQUIRHXLNFTGKDCMWB",
		"VZBRGITYUPSDNHLXAWMJQOFECK",
		"CDEABGIFHLJMOKRNTUPQWSVZXY",
		cryptors.Alphabet,
	}
	for _, w := range wirings {
		r, err := rotor.New(w[:3], w, 'A')
		if err != nil {
			t.Fatal(err)
		}
		for p := 0; p < cryptors.AlphabetSize; p++ {
			d := r.Diff(rotor.Forward, p)
			if r.Diff(rotor.Reverse, cryptors.Mod(p+d)) != cryptors.Mod(-d) {
				t.Errorf("%s: contact %d does not return", w, p)
			}
		}
	}
}

func TestLowerCaseWiring(t *testing.T) {
	r, err := rotor.New("x", strings.ToLower(cryptors.Alphabet), 'z')
	if err != nil {
		t.Fatal(err)
	}
	if r.Wiring() != cryptors.Alphabet || r.Notch() != 25 {
		t.Errorf("wiring %s notch %d", r.Wiring(), r.Notch())
	}
}

func TestBadWiring(t *testing.T) {
	tests := []struct {
		name, wiring string
		notch        rune
	}{
		{"short", "ABC", 'A'},
		{"long", cryptors.Alphabet + "A", 'A'},
		{"repeated", "AACDEFGHIJKLMNOPQRSTUVWXYZ", 'A'},
		{"digit", "1BCDEFGHIJKLMNOPQRSTUVWXYZ", 'A'},
		{"notch", cryptors.Alphabet, '?'},
	}
	for _, tt := range tests {
		if _, err := rotor.New(tt.name, tt.wiring, tt.notch); !errors.Is(err, rotor.ErrBadWiring) {
			t.Errorf("%s: err = %v, want ErrBadWiring", tt.name, err)
		}
	}
}

func TestString(t *testing.T) {
	r, err := rotor.New("III", "BDFHJLCPRTXVZNYEIWGAKMUSQO", 'V')
	if err != nil {
		t.Fatal(err)
	}
	s := r.String()
	if !strings.HasPrefix(s, `rotor.New("III", "BDFHJLCPRTXVZNYEIWGAKMUSQO", 'V')`) {
		t.Errorf("String() = %s", s)
	}
	if !strings.Contains(s, "forward: 1, 2, 3,") {
		t.Errorf("String() missing forward table: %s", s)
	}
}
