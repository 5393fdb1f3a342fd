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
	"github.com/bgallie/enigma/library"
	"github.com/spf13/cobra"
)

// wiringsCmd represents the wirings command
var wiringsCmd = &cobra.Command{
	Use:   "wirings",
	Short: "List the available rotors and reflectors",
	Run: func(cmd *cobra.Command, args []string) {
		writeWirings(os.Stdout, initLibrary())
	},
}

func init() {
	rootCmd.AddCommand(wiringsCmd)
}

func writeWirings(w io.Writer, lib *library.Library) {
	fmt.Fprintf(w, "%-10s %s  notch\n", "rotor", cryptors.Alphabet)
	for _, name := range lib.RotorNames() {
		r, err := lib.Rotor(name)
		cobra.CheckErr(err)
		fmt.Fprintf(w, "%-10s %s  %c\n", name, r.Wiring(), cryptors.Decode(r.Notch()))
	}
	fmt.Fprintf(w, "\n%-10s %s\n", "reflector", cryptors.Alphabet)
	for _, name := range lib.ReflectorNames() {
		p, err := lib.Reflector(name)
		cobra.CheckErr(err)
		fmt.Fprintf(w, "%-10s %s\n", name, p.Wiring())
	}
}
