package engine

import (
	"strconv"
	"strings"

	"github.com/friendsofgo/errors"
)

type stepKind int

const (
	historical stepKind = iota
	sequential
	custom
)

// StepOrder decides the order in which rotors are considered when stepping.
// The first rotor in the resolved order always advances; each following
// rotor advances when the one before it is at its notch.
type StepOrder struct {
	kind stepKind
	perm []int
}

var (
	// Historical steps the last rotor in the list fastest, as on the
	// Enigma where rotors are listed left to right.  It is the zero value.
	Historical = StepOrder{kind: historical}
	// Sequential steps the first rotor in the list fastest, as on the
	// Pringles can.
	Sequential = StepOrder{kind: sequential}
)

// Custom returns a step order that considers rotor positions in the order
// given, fastest first.
func Custom(perm ...int) StepOrder {
	return StepOrder{kind: custom, perm: append([]int(nil), perm...)}
}

// ParseStepOrder parses "enigma" (or "historical"), "pringles" (or
// "sequential"), or a comma separated list of rotor positions such as
// "2,1,0".
func ParseStepOrder(s string) (StepOrder, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "enigma", "historical":
		return Historical, nil
	case "pringles", "sequential":
		return Sequential, nil
	}

	flds := strings.Split(s, ",")
	perm := make([]int, len(flds))
	for i, f := range flds {
		v, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return StepOrder{}, errors.Wrapf(err, "step order %q", s)
		}
		perm[i] = v
	}
	return Custom(perm...), nil
}

// Resolve returns the concrete order of rotor positions for a machine with
// n rotors.
func (s StepOrder) Resolve(n int) ([]int, error) {
	order := make([]int, n)
	switch s.kind {
	case historical:
		for i := range order {
			order[i] = n - 1 - i
		}
	case sequential:
		for i := range order {
			order[i] = i
		}
	default:
		if len(s.perm) != n {
			return nil, errors.Errorf("step order %v has %d positions, machine has %d rotors", s.perm, len(s.perm), n)
		}
		seen := make([]bool, n)
		for i, p := range s.perm {
			if p < 0 || p >= n || seen[p] {
				return nil, errors.Errorf("step order %v is not a permutation of 0..%d", s.perm, n-1)
			}
			seen[p] = true
			order[i] = p
		}
	}
	return order, nil
}

func (s StepOrder) String() string {
	switch s.kind {
	case historical:
		return "enigma"
	case sequential:
		return "pringles"
	}
	flds := make([]string, len(s.perm))
	for i, p := range s.perm {
		flds[i] = strconv.Itoa(p)
	}
	return strings.Join(flds, ",")
}
