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
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// Config determines what is computed and reported for a pair of input
// polynomials.  It can be loaded from a YAML file, with any flags given
// explicitly on the command line taking precedence.
type Config struct {
	// Sample is the point at which the first polynomial is evaluated.
	Sample float64 `yaml:"sample"`
	// Field additionally reports the first polynomial evaluated over the
	// BLS12-377 scalar field, at the integer part of Sample.
	Field bool `yaml:"field"`
	// Verbose enables debug logging.
	Verbose bool `yaml:"verbose"`
}

// DefaultConfig returns the configuration used when neither a file nor flags
// say otherwise.
func DefaultConfig() Config {
	return Config{Sample: 2.0}
}

// LoadConfig reads a configuration file, where any settings it omits retain
// their default values.  Unknown keys are rejected.
func LoadConfig(filename string) (Config, error) {
	var cfg = DefaultConfig()
	//
	contents, err := os.ReadFile(filename)
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	//
	decoder := yaml.NewDecoder(bytes.NewReader(contents))
	decoder.KnownFields(true)
	// An empty file decodes as EOF
	if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("parsing config %s: %w", filename, err)
	}
	//
	return cfg, cfg.Validate()
}

// Validate checks the sample point is a finite number.
func (c Config) Validate() error {
	if math.IsNaN(c.Sample) || math.IsInf(c.Sample, 0) {
		return fmt.Errorf("invalid sample point %v", c.Sample)
	}
	//
	return nil
}

// buildConfig determines the configuration for a command invocation, starting
// from the config file (if given) and then applying explicitly set flags.
func buildConfig(cmd *cobra.Command) (Config, error) {
	var (
		cfg = DefaultConfig()
		err error
	)
	//
	if filename := getString(cmd, "config"); filename != "" {
		if cfg, err = LoadConfig(filename); err != nil {
			return cfg, err
		}
	}
	//
	if cmd.Flags().Changed("at") {
		cfg.Sample = getFloat(cmd, "at")
	}
	//
	if cmd.Flags().Changed("field") {
		cfg.Field = getFlag(cmd, "field")
	}
	//
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = getFlag(cmd, "verbose")
	}
	//
	return cfg, cfg.Validate()
}
