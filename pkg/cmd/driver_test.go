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
	"os"
	"path/filepath"
	"testing"

	"github.com/consensys/go-sparsepoly/pkg/source"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Run_01(t *testing.T) {
	// 3x^2+2 and x
	checkRun(t, DefaultConfig(), "2 2 0 3 2\n1 1 1\n",
		"3 2, 2 0",
		"1 1",
		"3 2, 1 1, 2 0",
		"3 2, -1 1, 2 0",
		"3 3, 2 1",
		"14")
}

func Test_Run_02(t *testing.T) {
	// Identical inputs cancel
	checkRun(t, DefaultConfig(), "1 3 2 1 3 2",
		"3 2",
		"3 2",
		"6 2",
		"",
		"9 4",
		"12")
}

func Test_Run_03(t *testing.T) {
	// x+1 and x-1
	checkRun(t, DefaultConfig(), "2 1 1 1 0 2 1 1 -1 0",
		"1 1, 1 0",
		"1 1, -1 0",
		"2 1",
		"2 0",
		"1 2, -1 0",
		"3")
}

func Test_Run_04(t *testing.T) {
	// Empty polynomials
	checkRun(t, DefaultConfig(), "0 0", "", "", "", "", "", "0")
}

func Test_Run_05(t *testing.T) {
	cfg := Config{Sample: 0.5}
	// x^2+1 at 0.5
	checkRun(t, cfg, "2 1 2 1 0 0", "1 2, 1 0", "", "1 2, 1 0", "1 2, 1 0", "", "1.25")
}

func Test_Run_Field(t *testing.T) {
	cfg := Config{Sample: 3, Field: true}
	// x^2+1 at 3
	checkRun(t, cfg, "2 1 2 1 0 0", "1 2, 1 0", "", "1 2, 1 0", "1 2, 1 0", "", "10", "10")
}

func Test_Run_Invalid(t *testing.T) {
	var (
		out     bytes.Buffer
		serr    *source.SyntaxError
		srcfile = source.NewSourceFile("input.txt", []byte("2 1 1\n1 -1\n"))
	)
	//
	err := Run(DefaultConfig(), srcfile, &out)
	//
	require.True(t, errors.As(err, &serr))
	assert.Equal(t, "negative exponent", serr.Message())
	assert.Empty(t, out.String())
}

func Test_FormatFloat(t *testing.T) {
	assert.Equal(t, "5", formatFloat(5))
	assert.Equal(t, "-0.25", formatFloat(-0.25))
	assert.Equal(t, "100", formatFloat(100))
	assert.Equal(t, "1.23457e+06", formatFloat(1234567))
	assert.Equal(t, "1e-05", formatFloat(0.00001))
}

func Test_PrintSyntaxError_01(t *testing.T) {
	var out bytes.Buffer
	//
	srcfile := source.NewSourceFile("input.txt", []byte("1\n3 -2\n"))
	serr := srcfile.SyntaxError(source.NewSpan(4, 6), "negative exponent")
	//
	printSyntaxError(&out, serr)
	assert.Equal(t, "input.txt:2: negative exponent\n3 -2\n  ^^\n", out.String())
}

func Test_PrintSyntaxError_02(t *testing.T) {
	var out bytes.Buffer
	// End of input on a terminated line
	srcfile := source.NewSourceFile("input.txt", []byte("2 1 1\n"))
	serr := srcfile.SyntaxError(source.NewSpan(6, 6), "unexpected end of input")
	//
	printSyntaxError(&out, serr)
	assert.Equal(t, "input.txt:1: unexpected end of input\n2 1 1\n     ^\n", out.String())
}

func Test_Config_Load(t *testing.T) {
	filename := writeConfig(t, "sample: 1.5\nfield: true\n")
	//
	cfg, err := LoadConfig(filename)
	require.NoError(t, err)
	assert.Equal(t, Config{Sample: 1.5, Field: true}, cfg)
}

func Test_Config_Defaults(t *testing.T) {
	// Omitted keys keep their defaults, as does an empty file.
	for _, contents := range []string{"verbose: true\n", ""} {
		cfg, err := LoadConfig(writeConfig(t, contents))
		require.NoError(t, err)
		assert.Equal(t, 2.0, cfg.Sample)
	}
}

func Test_Config_Invalid(t *testing.T) {
	_, err := LoadConfig(writeConfig(t, "sampel: 3\n"))
	assert.Error(t, err)
	//
	_, err = LoadConfig(writeConfig(t, "sample: .nan\n"))
	assert.Error(t, err)
	//
	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func Test_Config_Flags(t *testing.T) {
	filename := writeConfig(t, "sample: 1.5\nfield: true\n")
	//
	require.NoError(t, rootCmd.ParseFlags([]string{"--config", filename, "--at=-4"}))
	//
	cfg, err := buildConfig(rootCmd)
	require.NoError(t, err)
	// Explicit flags override the file
	assert.Equal(t, Config{Sample: -4, Field: true}, cfg)
}

// ==================================================================
// Framework
// ==================================================================

func checkRun(t *testing.T, cfg Config, input string, expected ...string) {
	t.Helper()
	//
	var (
		out     bytes.Buffer
		srcfile = source.NewSourceFile("test", []byte(input))
	)
	//
	require.NoError(t, Run(cfg, srcfile, &out))
	//
	lines := bytes.Split(bytes.TrimSuffix(out.Bytes(), []byte("\n")), []byte("\n"))
	require.Len(t, lines, len(expected))
	//
	for i, line := range lines {
		assert.Equal(t, expected[i], string(line), "line %d", i+1)
	}
}

func writeConfig(t *testing.T, contents string) string {
	filename := filepath.Join(t.TempDir(), "sparsepoly.yaml")
	require.NoError(t, os.WriteFile(filename, []byte(contents), 0o600))
	//
	return filename
}
