package engine

import (
	"strings"
	"unicode"

	"github.com/bgallie/enigma/cryptors"
)

// PrepareMessage upper cases every letter of s and replaces every other
// character with substitute, so the result can be fed to EncryptMessage.
func PrepareMessage(s string, substitute rune) string {
	var output strings.Builder
	for _, c := range s {
		if cryptors.IsLetter(c) {
			output.WriteRune(unicode.ToUpper(c))
		} else {
			output.WriteRune(substitute)
		}
	}
	return output.String()
}

// ShowMessage splits s into groups of five characters separated by single
// spaces.
func ShowMessage(s string) string {
	var output strings.Builder
	runes := []rune(s)
	for i, c := range runes {
		output.WriteRune(c)
		if i%5 == 4 && i != len(runes)-1 {
			output.WriteByte(' ')
		}
	}
	return output.String()
}

// StripMessage removes white space from s, undoing ShowMessage and any line
// breaks added to the text.
func StripMessage(s string) string {
	return strings.Join(strings.Fields(s), "")
}
