/*
Copyright © 2021 Billy G. Allie <bill.allie@defiant.mug.org>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bgallie/enigma/engine"
	"github.com/bgallie/enigma/library"
	"github.com/friendsofgo/errors"
)

const (
	modeEnigma = "enigma"
	modeCan    = "can"
)

// settings are the machine settings gathered from flags, the config file,
// the environment and, when decrypting, the message headers.
type settings struct {
	mode        string
	rotors      []string
	rings       []int
	reflector   string
	plugboard   string
	start       string
	stepOrder   engine.StepOrder
	keyword     string
	compression bool
}

// splitList splits every element of v on commas, so that "I,II,III" from
// the environment and [I, II, III] from the config file give the same list.
func splitList(v []string) []string {
	var list []string
	for _, e := range v {
		for _, f := range strings.Split(e, ",") {
			if f = strings.TrimSpace(f); len(f) > 0 {
				list = append(list, f)
			}
		}
	}
	return list
}

// parseRings converts ring settings such as ["2", "2", "2"] to integers.
func parseRings(flds []string) ([]int, error) {
	rings := make([]int, len(flds))
	for i, f := range flds {
		v, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, errors.Wrapf(err, "ring setting %q", f)
		}
		rings[i] = v
	}
	return rings, nil
}

func joinInts(v []int) string {
	flds := make([]string, len(v))
	for i, n := range v {
		flds[i] = strconv.Itoa(n)
	}
	return strings.Join(flds, ",")
}

// machine builds the machine described by s from lib.  For the can the
// starting state comes from the keyword, so the start setting is ignored.
func (s *settings) machine(lib *library.Library) (*engine.Machine, error) {
	if s.mode == modeCan {
		if len(s.keyword) == 0 {
			return nil, errors.New("the can needs a keyword")
		}
		return engine.NewPringles(lib, s.keyword)
	}
	return engine.New(lib, engine.Config{
		Rotors:       s.rotors,
		RingSettings: s.rings,
		Reflector:    s.reflector,
		Plugboard:    s.plugboard,
		StepOrder:    s.stepOrder,
		Start:        s.start,
	})
}

// headers returns the settings recorded in a PEM block.  The plugboard and
// the keyword are never recorded.
func (s *settings) headers() map[string]string {
	h := map[string]string{
		"ApiLevel":    strconv.Itoa(enigmaApiLevel),
		"Mode":        s.mode,
		"Compression": fmt.Sprintf("%v", s.compression),
	}
	if s.mode != modeCan {
		h["Rotors"] = strings.Join(s.rotors, ",")
		h["Rings"] = joinInts(s.rings)
		h["Reflector"] = s.reflector
		h["Start"] = s.start
		h["StepOrder"] = s.stepOrder.String()
	}
	return h
}

// applyHeaders replaces the settings with those recorded in a PEM block.
func (s *settings) applyHeaders(h map[string]string) error {
	if lvl, ok := h["ApiLevel"]; !ok || lvl != strconv.Itoa(enigmaApiLevel) {
		return errors.Errorf("API level mismatch: message %q, enigma %d", lvl, enigmaApiLevel)
	}
	if mode, ok := h["Mode"]; ok {
		s.mode = mode
	}
	if cmpr, ok := h["Compression"]; ok {
		s.compression = cmpr == "true"
	}
	if s.mode == modeCan {
		return nil
	}
	if v, ok := h["Rotors"]; ok {
		s.rotors = strings.Split(v, ",")
	}
	if v, ok := h["Rings"]; ok {
		rings, err := parseRings(strings.Split(v, ","))
		if err != nil {
			return err
		}
		s.rings = rings
	}
	if v, ok := h["Reflector"]; ok {
		s.reflector = v
	}
	if v, ok := h["Start"]; ok {
		s.start = v
	}
	if v, ok := h["StepOrder"]; ok {
		order, err := engine.ParseStepOrder(v)
		if err != nil {
			return err
		}
		s.stepOrder = order
	}
	return nil
}

// headerLine returns the line written in front of ascii85 armoured output:
//
//	+ENIGMA|apiLevel|mode|rotors|rings|reflector|start|stepOrder|compression
func (s *settings) headerLine() string {
	return fmt.Sprintf("+ENIGMA|%d|%s|%s|%s|%s|%s|%s|%v\n", enigmaApiLevel, s.mode,
		strings.Join(s.rotors, ","), joinInts(s.rings), s.reflector, s.start, s.stepOrder, s.compression)
}

// parseHeaderLine is the inverse of headerLine.
func (s *settings) parseHeaderLine(line string) error {
	fields := strings.Split(strings.TrimRight(line, "\r\n"), "|")
	if len(fields) != 9 || fields[0] != "+ENIGMA" {
		return errors.Errorf("malformed header line %q", line)
	}
	h := map[string]string{
		"ApiLevel":    fields[1],
		"Mode":        fields[2],
		"Rotors":      fields[3],
		"Rings":       fields[4],
		"Reflector":   fields[5],
		"Start":       fields[6],
		"StepOrder":   fields[7],
		"Compression": fields[8],
	}
	return s.applyHeaders(h)
}
