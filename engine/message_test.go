package engine_test

import (
	"fmt"
	"testing"

	"github.com/bgallie/enigma/engine"
)

func TestPrepareMessage(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"It's 4 o'clock!", "ITXSXXXOXCLOCKX"},
		{"", ""},
		{"that’s", "THATXS"},
		{"café", "CAFX"},
	}
	for _, tt := range tests {
		if got := engine.PrepareMessage(tt.in, 'X'); got != tt.want {
			t.Errorf("PrepareMessage(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
	if got := engine.PrepareMessage("a b", 'Q'); got != "AQB" {
		t.Errorf("substitute Q gave %q", got)
	}
}

func TestShowMessage(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", ""},
		{"ABCD", "ABCD"},
		{"ABCDE", "ABCDE"},
		{"ABCDEFG", "ABCDE FG"},
		{"ABCDEFGHIJ", "ABCDE FGHIJ"},
	}
	for _, tt := range tests {
		got := engine.ShowMessage(tt.in)
		if got != tt.want {
			t.Errorf("ShowMessage(%q) = %q, want %q", tt.in, got, tt.want)
		}
		if back := engine.StripMessage(got); back != tt.in {
			t.Errorf("StripMessage(%q) = %q", got, back)
		}
	}
}

func Example() {
	m, err := engine.New(nil, engine.Config{
		Rotors:       []string{"I", "II", "III"},
		RingSettings: []int{2, 2, 2},
		Reflector:    "B",
		Plugboard:    "EJ OY IV AQ KW FX MT PS LU BD",
		Start:        "AAA",
	})
	if err != nil {
		panic(err)
	}

	cipher, _ := m.EncryptMessage("AAAAAAAAAA")
	fmt.Println(engine.ShowMessage(cipher), m.Offsets())

	_ = m.SetOffsets("AAA")
	plain, _ := m.EncryptMessage(cipher)
	fmt.Println(plain)
	// Output:
	// IFJED QVSYH AAK
	// AAAAAAAAAA
}

func ExampleEncryptPringlesMessage() {
	out, err := engine.EncryptPringlesMessage(nil, "CODES", "hufvegz")
	if err != nil {
		panic(err)
	}
	fmt.Println(out)
	// Output: AMERICA
}
