// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package cmd

import (
	"errors"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/consensys/go-sparsepoly/pkg/source"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// Version is filled when building with make, but *not* when installing via "go
// install".
var Version string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "sparsepoly [flags] [input_file]",
	Short: "Arithmetic over sparse integer polynomials.",
	Long: `Read two polynomials, each given as a term count followed by that
	many (coefficient, exponent) pairs, from a file or standard input.
	Print both polynomials, their sum, difference and product, and the
	first polynomial evaluated at a sample point.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if getFlag(cmd, "version") {
			printVersion()
			return
		}
		//
		cfg, err := buildConfig(cmd)
		if err != nil {
			log.Error(err)
			os.Exit(1)
		}
		// Configure log level
		if cfg.Verbose {
			log.SetLevel(log.DebugLevel)
		}
		//
		log.Debugf("sample point %v (field evaluation %t)", cfg.Sample, cfg.Field)
		//
		srcfile, err := readInput(args)
		if err != nil {
			log.Error(err)
			os.Exit(1)
		}
		//
		var serr *source.SyntaxError
		//
		if err = Run(cfg, srcfile, os.Stdout); errors.As(err, &serr) {
			printSyntaxError(os.Stderr, serr)
			os.Exit(2)
		} else if err != nil {
			log.Error(err)
			os.Exit(1)
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().Bool("version", false, "Report version of this executable")
	rootCmd.Flags().Float64("at", DefaultConfig().Sample, "point at which to evaluate the first polynomial")
	rootCmd.Flags().Bool("field", false, "also evaluate the first polynomial over the BLS12-377 scalar field")
	rootCmd.Flags().String("config", "", "read settings from a YAML file")
	rootCmd.Flags().BoolP("verbose", "v", false, "increase logging verbosity")
}

func printVersion() {
	fmt.Print("sparsepoly ")
	//
	if Version != "" {
		// Built via "make"
		fmt.Printf("%s", Version)
	} else if info, ok := debug.ReadBuildInfo(); ok {
		// Built via "go install"
		fmt.Printf("%s", info.Main.Version)
	} else {
		// Unknown, perhaps "go run"
		fmt.Printf("(unknown version)")
	}
	//
	fmt.Println()
}

// readInput reads the named input file or, if none is given, standard input.
func readInput(args []string) (*source.File, error) {
	if len(args) == 1 {
		return source.ReadFile(args[0])
	}
	//
	if term.IsTerminal(int(os.Stdin.Fd())) {
		fmt.Fprintln(os.Stderr, "Enter two polynomials, each as a term count followed by coefficient/exponent pairs (Ctrl-D to finish):")
	}
	//
	return source.ReadAll("<stdin>", os.Stdin)
}
