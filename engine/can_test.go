package engine_test

import (
	"testing"

	"github.com/bgallie/enigma/engine"
	"github.com/friendsofgo/errors"
)

func TestPringlesCan(t *testing.T) {
	tests := []struct {
		keyword string
		in      string
		want    string
	}{
		{"AAAAA", "ACE", "LBV"},
		{"AAAAA", "IVWYQDV", "DECODED"},
		{"AAAAA", "PVWZARCYHRRCKW", "SECRETXMESSAGE"},
		{"CYBER", "YPELONUPTOZS", "CYBERXISXFUN"},
		{"CODES", "hufvegz", "AMERICA"},
		{"TUBES", "actrqinxrnqlmvg", "EXPLURIBUSXUNUM"},
		{"RADIO", "yedwpqbubrjhwsetlhden", "WHATXHATHXGODXWROUGHT"},
		{"CYBER", "bvhftd", "ENIGMA"},
	}

	for _, tt := range tests {
		t.Run(tt.keyword+"/"+tt.want, func(t *testing.T) {
			got, err := engine.EncryptPringlesMessage(nil, tt.keyword, tt.in)
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("got %s, want %s", got, tt.want)
			}
		})
	}
}

func TestPringlesLongMessage(t *testing.T) {
	plain := engine.PrepareMessage("They glided up the creek, and the Mole shipped his sculls as they passed into "+
		"the shadow of a large boat-house. Here they saw many handsome boats, slung from the cross beams or "+
		"hauled up on a slip, but none in the water; and the place had an unused and a deserted air.", 'X')
	want := "SCOICBVPKSHUROOSAJWFYJAJBBWKAUOUDCIQOZEOCOLICRDUJADUAPHMMCCLZWPPVCQFULVJAGPOTFUDAVNVSVTYKLMCJMNBOZBY" +
		"OLWUTFSOZBCTQAYGVWCKSWWBATKXKOEEBMAZPHBEGLDYIJJZNSLCWCPMHTJWAYRNKXTLXBCCYTFQCEFVRHBTBRAVPVWSTXGHURGMD" +
		"VUFOJCOUBBJSDKKLTVWRBOCJLIDYGKOABZKXEGWMDLPXYBQJIOMTTBIUZTWSAAOGFLW"

	got, err := engine.EncryptPringlesMessage(nil, "RATTY", plain)
	if err != nil {
		t.Fatal(err)
	}
	if got != want {
		t.Errorf("got  %s\nwant %s", got, want)
	}

	back, err := engine.EncryptPringlesMessage(nil, "RATTY", got)
	if err != nil {
		t.Fatal(err)
	}
	if back != plain {
		t.Errorf("round trip gave %s", back)
	}
}

func TestInitialiseCanState(t *testing.T) {
	m, err := engine.NewPringles(nil, "CYBER")
	if err != nil {
		t.Fatal(err)
	}
	if m.Offsets() != "BYV" {
		t.Errorf("offsets = %s, want BYV", m.Offsets())
	}
	if m.ReflectorOffset() != 15 {
		t.Errorf("reflector offset = %d, want 15", m.ReflectorOffset())
	}
	for pos, want := range []int{1, 24, 21} {
		if got := m.Notch(pos); got != want {
			t.Errorf("notch %d = %d, want %d", pos, got, want)
		}
	}
	f, r := m.TestReflector()
	if f != "CFAYHBJEKGIPOSMLTWNQXZRUDV" || r != "ABCDEFGHIJKLMNOPQRSTUVWXYZ" {
		t.Errorf("TestReflector = %s, %s", f, r)
	}

	// Re-initialising restarts the stream.
	if _, err = m.EncryptMessage("ABCDEFGHIJKLMNOPQRSTUVWXYZ"); err != nil {
		t.Fatal(err)
	}
	if err = m.InitialiseCan("CYBER"); err != nil {
		t.Fatal(err)
	}
	if got, _ := m.EncryptMessage("bvhftd"); got != "ENIGMA" {
		t.Errorf("after re-initialise got %s", got)
	}
}

func TestNotchOverrideIsPerMachine(t *testing.T) {
	a, err := engine.NewPringles(nil, "CYBER")
	if err != nil {
		t.Fatal(err)
	}
	b, err := engine.NewPringles(nil, "AAAAA")
	if err != nil {
		t.Fatal(err)
	}
	if a.Notch(0) == b.Notch(0) {
		t.Errorf("machines share notch %d", a.Notch(0))
	}
	plain, err := engine.New(nil, engine.PringlesConfig)
	if err != nil {
		t.Fatal(err)
	}
	if got := plain.Notch(0); got != 24 {
		t.Errorf("library notch of P3 = %d, want 24", got)
	}
}

func TestInitialiseCanErrors(t *testing.T) {
	m, err := engine.New(nil, engine.PringlesConfig)
	if err != nil {
		t.Fatal(err)
	}
	for _, kw := range []string{"", "A", "AB", "ABCD", "ABCDEF", "AB1DE"} {
		err := m.InitialiseCan(kw)
		if !errors.Is(err, engine.ErrKeyword) {
			t.Errorf("InitialiseCan(%q) err = %v, want ErrKeyword", kw, err)
		}
		var ce *engine.ConfigError
		if !errors.As(err, &ce) || ce.Field != "keyword" {
			t.Errorf("InitialiseCan(%q) err = %v, want a keyword ConfigError", kw, err)
		}
	}
	if m.Offsets() != "AAA" || m.ReflectorOffset() != 0 {
		t.Errorf("rejected keywords changed the machine: %s %d", m.Offsets(), m.ReflectorOffset())
	}
	if _, err := engine.NewPringles(nil, "NO"); !errors.Is(err, engine.ErrKeyword) {
		t.Errorf("NewPringles err = %v", err)
	}
}
