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
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/bgallie/enigma/engine"
	"github.com/bgallie/filters/ascii85"
	"github.com/bgallie/filters/flate"
	"github.com/bgallie/filters/lines"
	"github.com/bgallie/filters/pem"
	"github.com/spf13/cobra"
)

var grouped bool

// decryptCmd represents the decrypt command
var decryptCmd = &cobra.Command{
	Use:   "decrypt [ciphertext...]",
	Short: "Decrypt a message encrypted on the Enigma machine.",
	Long: `Decrypt a message encrypted on the Enigma machine.

PEM and ASCII85 armoured messages carry the machine settings (except the plugboard
and the keyword) and those settings are used in place of the flags.  Plain
ciphertext may be split into groups and lines; white space is ignored.`,
	Run: func(cmd *cobra.Command, args []string) {
		decrypt(args)
	},
}

func init() {
	rootCmd.AddCommand(decryptCmd)
	decryptCmd.Flags().BoolVarP(&grouped, "grouped", "G", false, "split the plaintext into groups of five letters")
}

func decrypt(args []string) {
	s := initSettings()
	fin, fout := getInputAndOutputFiles(false)
	defer fout.Close()

	var cipherText string
	if len(args) > 0 {
		cipherText = readMessage(args, nil)
	} else {
		cipherText = readArmour(s, bufio.NewReader(fin))
	}

	machine := initEngine(s)
	plainText, err := machine.EncryptMessage(engine.StripMessage(cipherText))
	cobra.CheckErr(err)
	if grouped {
		plainText = engine.ShowMessage(plainText)
	}
	_, err = fmt.Fprintln(fout, plainText)
	checkError(err)
}

// readArmour reads the ciphertext from bRdr, removing PEM or ASCII85
// armour if present and updating s from the recorded settings.
func readArmour(s *settings, bRdr *bufio.Reader) string {
	var aRdr io.Reader
	b, err := bRdr.Peek(5)
	checkError(err)

	switch {
	case string(b) == "-----":
		pRdr, blck := pem.FromPem(bRdr)
		cobra.CheckErr(s.applyHeaders(blck.Headers))
		if len(outputFileName) == 0 {
			if fName, ok := blck.Headers["FileName"]; ok {
				fmt.Fprintf(os.Stderr, "Message was encrypted from %s\n", fName)
			}
		}
		aRdr = pRdr
	case string(b) == "+ENIG":
		line, err := bRdr.ReadString('\n')
		checkError(err)
		cobra.CheckErr(s.parseHeaderLine(line))
		aRdr = ascii85.FromASCII85(lines.CombineLines(bRdr))
	default:
		aRdr = bRdr
	}

	if s.compression {
		aRdr = flate.FromFlate(aRdr)
	}
	text, err := io.ReadAll(aRdr)
	checkError(err)
	return string(text)
}
