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
	"io"
	"os"

	"github.com/bgallie/enigma/cryptors"
	"github.com/bgallie/enigma/engine"
	"github.com/spf13/cobra"
)

// selftestCmd represents the selftest command
var selftestCmd = &cobra.Command{
	Use:   "selftest",
	Short: "Check the wiring of the configured machine",
	Long: `Pass every letter through each rotor forward and back, and through the reflector
and the plugboard twice, at the starting offsets.  Every round trip must give
back the alphabet.`,
	Run: func(cmd *cobra.Command, args []string) {
		machine := initEngine(initSettings())
		writeSelfTest(os.Stdout, machine)
		cobra.CheckErr(machine.SelfTest())
	},
}

func init() {
	rootCmd.AddCommand(selftestCmd)
}

func writeSelfTest(w io.Writer, m *engine.Machine) {
	fmt.Fprintf(w, "%-12s %s\n", "offsets", m.Offsets())
	fmt.Fprintf(w, "%-12s %s\n", "", cryptors.Alphabet)
	for pos, name := range m.Rotors() {
		f, r := m.TestRotor(pos)
		fmt.Fprintf(w, "%-12s %s\n%-12s %s\n", "rotor "+name, f, "", r)
	}
	f, r := m.TestReflector()
	fmt.Fprintf(w, "%-12s %s\n%-12s %s\n", "reflector "+m.Reflector(), f, "", r)
	f, r = m.TestPlugboard()
	fmt.Fprintf(w, "%-12s %s\n%-12s %s\n", "plugboard", f, "", r)
}
