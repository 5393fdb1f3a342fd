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
	"strings"
	"unicode/utf8"

	"github.com/bgallie/enigma/engine"
	"github.com/bgallie/filters/ascii85"
	"github.com/bgallie/filters/flate"
	"github.com/bgallie/filters/lines"
	"github.com/bgallie/filters/pem"
	"github.com/spf13/cobra"
)

var (
	useASCII85  bool
	usePem      bool
	compression bool
	ungrouped   bool
	substitute  string
)

// encryptCmd represents the encrypt command
var encryptCmd = &cobra.Command{
	Use:   "encrypt [text...]",
	Short: "Encrypt a message on the Enigma machine",
	Long: `Encrypt a message on the Enigma machine.

The message is taken from the command line, the input file or stdin.  Letters are
upper cased and every other character is replaced by the substitute letter.`,
	Run: func(cmd *cobra.Command, args []string) {
		cobra.CheckErr(validateSubstitute())
		encrypt(args)
	},
}

func init() {
	rootCmd.AddCommand(encryptCmd)
	encryptCmd.Flags().BoolVarP(&useASCII85, "useASCII85", "a", false, "use ASCII85 encoding")
	encryptCmd.Flags().BoolVarP(&usePem, "usePem", "p", false, "use PEM encoding.")
	encryptCmd.Flags().BoolVarP(&compression, "compress", "c", false, "compress the ciphertext using flate (with -a or -p)")
	encryptCmd.Flags().BoolVarP(&ungrouped, "ungrouped", "u", false, "do not split the ciphertext into groups of five letters")
	encryptCmd.Flags().StringVarP(&substitute, "substitute", "x", "X", "letter used in place of characters that are not letters")
}

func validateSubstitute() error {
	r, size := utf8.DecodeRuneInString(substitute)
	if size == 0 || size != len(substitute) || !strings.ContainsRune("ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz", r) {
		return fmt.Errorf("the substitute must be a single letter, not %q", substitute)
	}
	return nil
}

// readMessage returns the message from the command line arguments or, if
// there are none, from fin.  Trailing line ends are dropped.
func readMessage(args []string, fin io.Reader) string {
	if len(args) > 0 {
		return strings.Join(args, " ")
	}
	b, err := io.ReadAll(fin)
	checkError(err)
	return strings.TrimRight(string(b), "\r\n")
}

func encrypt(args []string) {
	s := initSettings()
	s.compression = compression
	machine := initEngine(s)
	s.start = machine.Offsets()

	fin, fout := getInputAndOutputFiles(true)
	defer fout.Close()
	plainText := engine.PrepareMessage(readMessage(args, fin), []rune(strings.ToUpper(substitute))[0])
	cipherText, err := machine.EncryptMessage(plainText)
	cobra.CheckErr(err)

	if !(useASCII85 || usePem) {
		if compression {
			fmt.Fprintln(os.Stderr, "Ignoring --compress: it needs -a or -p.")
		}
		if !ungrouped {
			cipherText = engine.ShowMessage(cipherText)
		}
		_, err = fmt.Fprintln(fout, cipherText)
		checkError(err)
		return
	}

	fileName := ""
	if len(inputFileName) > 0 && inputFileName != "-" {
		fileName = inputFileName
	}
	checkError(writeArmour(fout, s, cipherText, usePem, fileName))
}

// writeArmour writes cipherText to w as a PEM block (asPem) or as ASCII85
// lines following the settings header line, compressing it first when
// s.compression is set.  A non-empty fileName is recorded in the PEM headers.
func writeArmour(w io.Writer, s *settings, cipherText string, asPem bool, fileName string) error {
	var encIn *io.PipeReader
	if s.compression {
		encIn = flate.ToFlate(textHelper(cipherText))
	} else {
		encIn = textHelper(cipherText)
	}

	if asPem {
		var blck pem.Block
		blck.Type = "ENIGMA MESSAGE"
		blck.Headers = s.headers()
		if len(fileName) > 0 {
			blck.Headers["FileName"] = fileName
		}
		_, err := io.Copy(w, pem.ToPem(bufio.NewReader(encIn), blck))
		return err
	}
	if _, err := io.WriteString(w, s.headerLine()); err != nil {
		return err
	}
	_, err := io.Copy(w, lines.SplitToLines(ascii85.ToASCII85(encIn)))
	return err
}

// textHelper provides the means to feed a string into the filter chain,
// which reads from pipes.
func textHelper(s string) *io.PipeReader {
	rRdr, rWrtr := io.Pipe()
	go func() {
		defer rWrtr.Close()
		_, err := io.Copy(rWrtr, strings.NewReader(s))
		checkError(err)
	}()
	return rRdr
}
