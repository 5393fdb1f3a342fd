// permutator project main.go
package permutator

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/bgallie/enigma/cryptors"
	"github.com/friendsofgo/errors"
)

var (
	// ErrBadWiring is returned when a reflector wiring is not a self-inverse
	// permutation of the alphabet.
	ErrBadWiring = errors.New("bad reflector wiring")
	// ErrBadPlugboard is returned for malformed plugboard pairs.
	ErrBadPlugboard = errors.New("bad plugboard")
)

// Permutator is a fixed permutation of the alphabet.  Reflectors and
// plugboards are both permutators; their tables are self-inverse.
type Permutator struct {
	name  string
	table [cryptors.AlphabetSize]int
}

// Identity returns the permutator that maps every index to itself.
func Identity() *Permutator {
	var p Permutator
	for i := range p.table {
		p.table[i] = i
	}
	return &p
}

// NewReflector builds a reflector from a 26 letter wiring string, where the
// letter at position i is the image of index i.
func NewReflector(name, wiring string) (*Permutator, error) {
	if len(wiring) != cryptors.AlphabetSize {
		return nil, errors.Wrapf(ErrBadWiring, "reflector %s: wiring has %d letters", name, len(wiring))
	}

	p := Permutator{name: name}
	for i, c := range wiring {
		o, err := cryptors.Encode(c)
		if err != nil {
			return nil, errors.Wrapf(ErrBadWiring, "reflector %s: contact %d is %q", name, i, c)
		}
		p.table[i] = o
	}

	if i, ok := p.SelfInverse(); !ok {
		return nil, errors.Wrapf(ErrBadWiring, "reflector %s: %c does not reflect back", name, cryptors.Decode(i))
	}
	return &p, nil
}

// NewPlugboard builds a plugboard from whitespace separated letter pairs
// such as "EJ OY".  An empty spec is the identity.  Every letter may appear
// in at most one pair.
func NewPlugboard(spec string) (*Permutator, error) {
	p := Identity()
	p.name = "plugboard"
	var used [cryptors.AlphabetSize]bool

	for _, pair := range strings.Fields(spec) {
		if len(pair) != 2 {
			return nil, errors.Wrapf(ErrBadPlugboard, "pair %q is not two letters", pair)
		}
		a, err := cryptors.Encode(rune(pair[0]))
		if err != nil {
			return nil, errors.Wrapf(ErrBadPlugboard, "pair %q", pair)
		}
		b, err := cryptors.Encode(rune(pair[1]))
		if err != nil {
			return nil, errors.Wrapf(ErrBadPlugboard, "pair %q", pair)
		}
		for _, v := range [...]int{a, b} {
			if used[v] {
				return nil, errors.Wrapf(ErrBadPlugboard, "%c is plugged more than once", cryptors.Decode(v))
			}
			used[v] = true
		}
		p.table[a] = b
		p.table[b] = a
	}

	return p, nil
}

// Name returns the permutator's name.
func (p *Permutator) Name() string {
	return p.name
}

// Apply maps c through the table after rotating the table by offset.  An
// offset of zero is a plain table lookup.
func (p *Permutator) Apply(c, offset int) int {
	return cryptors.Mod(p.table[cryptors.Mod(c+offset)] - offset)
}

// ApplyF implements cryptors.Crypter.
func (p *Permutator) ApplyF(c int) int {
	return p.table[c]
}

// ApplyG implements cryptors.Crypter.  The table is self-inverse, so it is
// the same as ApplyF.
func (p *Permutator) ApplyG(c int) int {
	return p.table[c]
}

// SelfInverse reports whether applying the table twice is the identity.  If
// not, the first index that fails is returned.
func (p *Permutator) SelfInverse() (int, bool) {
	for i, v := range p.table {
		if p.table[v] != i {
			return i, false
		}
	}
	return 0, true
}

// FixedPoints returns the indices that map to themselves.
func (p *Permutator) FixedPoints() []int {
	var fp []int
	for i, v := range p.table {
		if i == v {
			fp = append(fp, i)
		}
	}
	return fp
}

// Wiring returns the table as a 26 letter string.
func (p *Permutator) Wiring() string {
	var output bytes.Buffer
	for _, v := range p.table {
		output.WriteRune(cryptors.Decode(v))
	}
	return output.String()
}

// Pairs returns the swapped pairs, e.g. "EJ OY".
func (p *Permutator) Pairs() string {
	var pairs []string
	for i, v := range p.table {
		if i < v {
			pairs = append(pairs, fmt.Sprintf("%c%c", cryptors.Decode(i), cryptors.Decode(v)))
		}
	}
	return strings.Join(pairs, " ")
}

func (p *Permutator) String() string {
	return fmt.Sprintf("permutator.NewReflector(%q, %q)", p.name, p.Wiring())
}
