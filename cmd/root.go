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
	"log"
	"os"
	"strings"

	"github.com/bgallie/enigma/engine"
	"github.com/bgallie/enigma/library"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/spf13/viper"
)

var (
	cfgFile         string
	libraryFileName string
	inputFileName   string
	outputFileName  string
	verbose         bool
	GitCommit       string = "not set"
	GitBranch       string = "not set"
	GitState        string = "not set"
	GitSummary      string = "not set"
	BuildDate       string = "not set"
	Version         string = "dev"
)

const (
	enigmaApiLevel = 1
	enigmaSuffix   = ".enigma"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "enigma",
	Short: "An Enigma rotor machine simulator",
	Long: `enigma encrypts and decrypts messages on a simulated three rotor Enigma machine,
or on the simplified Pringles can machine whose settings all come from a single keyword.

Encryption and decryption are the same operation: a message encrypted with a set
of settings is decrypted by encrypting it again with the same settings.`,
	Version: Version,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.SetVersionTemplate(fmt.Sprintf("{{.Name}} version {{.Version}}\n  branch %s, commit %s (%s)\n  %s\n  built %s\n",
		GitBranch, GitCommit, GitState, GitSummary, BuildDate))
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default is $HOME/.enigma.yaml)")
	pf.StringVarP(&libraryFileName, "library", "l", "", "YAML file with additional rotor and reflector wirings")
	pf.StringVarP(&inputFileName, "inputFile", "i", "-", "Name of the file to encrypt/decrypt.")
	pf.StringVarP(&outputFileName, "outputFile", "o", "", "Name of the file to write the result to.")
	pf.BoolVarP(&verbose, "verbose", "v", false, "trace every character on stderr")
	pf.StringSliceP("rotors", "r", []string{"I", "II", "III"}, "rotors, left to right")
	pf.StringSliceP("rings", "g", []string{"1", "1", "1"}, "ring settings (1-26), one per rotor")
	pf.StringP("reflector", "R", "B", "reflector")
	pf.String("plugboard", "", `plugboard pairs, e.g. "EJ OY IV"`)
	pf.StringP("start", "s", "", "starting offsets, one letter per rotor (default all A)")
	pf.String("step-order", "enigma", `rotor step order: "enigma", "pringles" or positions such as "2,1,0"`)
	pf.Bool("can", false, "use the Pringles can machine set up from a keyword")
	pf.StringP("keyword", "k", "", "keyword for the Pringles can (or set ENIGMA_KEYWORD)")
	for _, name := range []string{"rotors", "rings", "reflector", "plugboard", "start", "step-order", "can", "keyword", "library"} {
		cobra.CheckErr(viper.BindPFlag(name, pf.Lookup(name)))
	}
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		// Search config in home directory with name ".enigma" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".enigma")
	}

	viper.SetEnvPrefix("ENIGMA")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// initSettings gathers the machine settings from flags, config file and
// environment.
func initSettings() *settings {
	var s settings
	var err error

	s.mode = modeEnigma
	if viper.GetBool("can") {
		s.mode = modeCan
	}
	s.rotors = splitList(viper.GetStringSlice("rotors"))
	s.rings, err = parseRings(splitList(viper.GetStringSlice("rings")))
	cobra.CheckErr(err)
	s.reflector = viper.GetString("reflector")
	s.plugboard = viper.GetString("plugboard")
	s.start = strings.ToUpper(viper.GetString("start"))
	s.stepOrder, err = engine.ParseStepOrder(viper.GetString("step-order"))
	cobra.CheckErr(err)
	s.keyword = viper.GetString("keyword")
	return &s
}

// initLibrary builds the standard library, extended with the wirings in the
// library file if one was given.
func initLibrary() *library.Library {
	fName := viper.GetString("library")
	if len(fName) == 0 {
		return library.Standard()
	}
	lib, err := library.NewBuilder().Standard().LoadFile(fName).Build()
	cobra.CheckErr(err)
	return lib
}

func initEngine(s *settings) *engine.Machine {
	// Obtain the keyword for the can from either:
	// 1. The --keyword flag or the config file
	// 2. The 'ENIGMA_KEYWORD' environment variable
	// 3. User input from the terminal
	if s.mode == modeCan && len(s.keyword) == 0 {
		if term.IsTerminal(int(os.Stdin.Fd())) {
			fmt.Fprintf(os.Stderr, "Enter the keyword: ")
			byteKeyword, err := term.ReadPassword(int(os.Stdin.Fd()))
			cobra.CheckErr(err)
			fmt.Fprintln(os.Stderr, "")
			s.keyword = strings.TrimSpace(string(byteKeyword))
		}
		if len(s.keyword) == 0 {
			cobra.CheckErr("You must supply a keyword.")
		}
	}

	machine, err := s.machine(initLibrary())
	cobra.CheckErr(err)
	if verbose {
		machine.SetLogger(log.New(os.Stderr, "enigma: ", 0))
	}
	return machine
}

/*
	getInputAndOutputFiles will return the input and output files to use while
	encrypting/decrypting data.  If input and/or output files names were given,
	then those files will be opened.  Otherwise stdin and stdout are used.
*/
func getInputAndOutputFiles(encrypt bool) (*os.File, *os.File) {
	var fin *os.File
	var err error

	if len(inputFileName) > 0 && inputFileName != "-" {
		fin, err = os.Open(inputFileName)
		cobra.CheckErr(err)
	} else {
		fin = os.Stdin
	}

	var fout *os.File

	if len(outputFileName) > 0 {
		if outputFileName == "-" {
			fout = os.Stdout
		} else {
			fout, err = os.Create(outputFileName)
			cobra.CheckErr(err)
		}
	} else if len(inputFileName) == 0 || inputFileName == "-" {
		fout = os.Stdout
	} else if encrypt {
		outputFileName = inputFileName + enigmaSuffix
		fout, err = os.Create(outputFileName)
		cobra.CheckErr(err)
	} else if strings.HasSuffix(inputFileName, enigmaSuffix) {
		outputFileName = strings.TrimSuffix(inputFileName, enigmaSuffix)
		fout, err = os.Create(outputFileName)
		cobra.CheckErr(err)
	} else {
		fout = os.Stdout
	}
	return fin, fout
}

// checkError checks for error that are not io.EOF and io.ErrUnexpectedEOF and logs them.
func checkError(e error) {
	if e != nil && e != io.EOF && e != io.ErrUnexpectedEOF {
		cobra.CheckErr(e)
	}
}
