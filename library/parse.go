package library

import (
	"os"
	"sort"
	"unicode/utf8"

	"github.com/bgallie/enigma/cryptors/rotor"
	"github.com/friendsofgo/errors"
	"gopkg.in/yaml.v3"
)

// Raw YAML structures for unmarshaling.

type rawFile struct {
	Rotors     map[string]rawRotor `yaml:"rotors"`
	Reflectors map[string]string   `yaml:"reflectors"`
}

type rawRotor struct {
	Wiring string `yaml:"wiring"`
	Notch  string `yaml:"notch"`
}

// LoadFile adds the definitions in a YAML wiring file to the builder.
func (b *Builder) LoadFile(path string) *Builder {
	if b.err != nil {
		return b
	}
	data, err := os.ReadFile(path)
	if err != nil {
		b.err = errors.Wrapf(err, "read %s", path)
		return b
	}
	return b.Parse(data)
}

// Parse adds the definitions in YAML bytes of the form
//
//	rotors:
//	  VI: {wiring: JPGVOUMFYQBENHZRDKASXLICTW, notch: Z}
//	reflectors:
//	  B-thin: ENKQAUYWJICOPBLMDXZVFTHRGS
//
// to the builder.  Definitions are added in name order.
func (b *Builder) Parse(data []byte) *Builder {
	if b.err != nil {
		return b
	}

	var raw rawFile
	if err := yaml.Unmarshal(data, &raw); err != nil {
		b.err = errors.Wrap(err, "yaml parse")
		return b
	}

	for _, name := range sortedKeys(raw.Rotors) {
		r := raw.Rotors[name]
		notch, size := utf8.DecodeRuneInString(r.Notch)
		if size == 0 || size != len(r.Notch) {
			b.err = errors.Wrapf(rotor.ErrBadWiring, "rotor %s: notch must be a single letter, got %q", name, r.Notch)
			return b
		}
		b.DefineRotor(name, r.Wiring, notch)
	}

	for _, name := range sortedKeys(raw.Reflectors) {
		b.DefineReflector(name, raw.Reflectors[name])
	}
	return b
}

func sortedKeys[T any](m map[string]T) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
