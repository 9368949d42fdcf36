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
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/consensys/go-stackc/pkg/stackc/code"
	"github.com/consensys/go-stackc/pkg/stackc/parser"
	"github.com/consensys/go-stackc/pkg/stackc/vm/word"
	"github.com/consensys/go-stackc/pkg/util/assert"
	"github.com/consensys/go-stackc/pkg/util/source"
)

func TestVersion_00(t *testing.T) {
	assert.Equal(t, "1.2.3", versionString("v1.2.3"))
	assert.Equal(t, "0.4.0-rc.1", versionString("0.4.0-rc.1"))
	assert.Equal(t, "(unknown version)", versionString("(devel)"))
}

func TestPrompt_00(t *testing.T) {
	var out bytes.Buffer
	//
	filename, err := promptInputFile(strings.NewReader("missing.txt\n\n"), &out, "input.txt", exists("input.txt"))
	//
	assert.NoError(t, err)
	assert.Equal(t, "input.txt", filename)
	assert.Equal(t, "Input file name [Default input.txt]: could not find file missing.txt\n"+
		"Input file name [Default input.txt]: Found file input.txt\n", out.String())
}

func TestPrompt_01(t *testing.T) {
	var out bytes.Buffer
	//
	filename, err := promptInputFile(strings.NewReader("  prog.stk \n"), &out, "input.txt", exists("prog.stk"))
	//
	assert.NoError(t, err)
	assert.Equal(t, "prog.stk", filename)
}

func TestPrompt_02(t *testing.T) {
	var out bytes.Buffer
	// Input exhausted
	_, err := promptInputFile(strings.NewReader("nothing\n"), &out, "input.txt", exists())
	//
	assert.Error(t, err)
}

func TestTranslate_00(t *testing.T) {
	var out bytes.Buffer
	//
	srcfile := source.NewSourceText("test", []string{"begin x := 1 end"})
	program, errs := translate(&out, srcfile, translateConfig{})
	//
	assert.Equal(t, 0, len(errs))
	assert.Equal(t, 4, len(program.Code))
	assert.Equal(t, "Finished parsing with no errors.\n\nPrinting generated output:\n"+
		"LVALUE x\nPUSH 1\nSTO\nHALT\n", out.String())
}

func TestTranslate_01(t *testing.T) {
	var out bytes.Buffer
	//
	srcfile := source.NewSourceText("test", []string{"begin end"})
	_, errs := translate(&out, srcfile, translateConfig{print: true, time: true})
	//
	assert.Equal(t, 0, len(errs))
	assert.True(t, strings.HasPrefix(out.String(), "<program @0\n"))
	assert.True(t, strings.Contains(out.String(), "Parse time: "))
	assert.True(t, strings.HasSuffix(out.String(), "HALT\n"))
}

func TestTranslate_02(t *testing.T) {
	var out bytes.Buffer
	//
	srcfile := source.NewSourceText("test", []string{"begin x := end"})
	_, errs := translate(&out, srcfile, translateConfig{})
	//
	assert.Equal(t, 3, len(errs))
	assert.Equal(t, "", out.String())
}

func TestDiagnostics_00(t *testing.T) {
	var out bytes.Buffer
	//
	srcfile := source.NewSourceText("test", []string{"begin x := end"})
	_, errs := parser.Parse(srcfile)
	printDiagnostics(&out, errs[:1], false)
	//
	assert.Equal(t, "Possible errors:\n"+
		"0 invalid identifier (reserved keyword 'end') at line 1 pos 12\n"+
		"test:1: begin x := end\n"+
		"                   ^^^\n", out.String())
}

func TestDiagnostics_01(t *testing.T) {
	var out bytes.Buffer
	//
	srcfile := source.NewSourceText("prog", []string{"begin\n", "  x := 1 $ 2\n", "end\n"})
	_, errs := parser.Parse(srcfile)
	printDiagnostics(&out, errs[:1], false)
	//
	assert.Equal(t, "Possible errors:\n"+
		"0 invalid word ($) at line 2 pos 10\n"+
		"prog:2:   x := 1 $ 2\n"+
		"                 ^\n", out.String())
}

func TestExecute_00(t *testing.T) {
	insns := translateText(t, "begin x := 2 + 3 * 4; y := x mod 5 end")
	steps, vars, err := execute[word.Int](insns, true)
	//
	assert.NoError(t, err)
	assert.Equal(t, len(insns), len(steps))
	assert.Equal(t, 2, len(vars))
	assert.Equal(t, "x", vars[0].Name)
	assert.Equal(t, "14", vars[0].Value.String())
	assert.Equal(t, "4", vars[1].Value.String())
}

func TestExecute_01(t *testing.T) {
	insns := translateText(t, "begin x := 1; y := x div (x - 1) end")
	steps, _, err := execute[word.Int](insns, true)
	//
	assert.Error(t, err)
	// Failing step is recorded
	assert.Equal(t, failingPc(err), steps[len(steps)-1].Pc)
}

func TestExecute_02(t *testing.T) {
	insns := translateText(t, "begin x := 3 end")
	steps, vars, err := execute[word.Bls12_377](insns, false)
	//
	assert.NoError(t, err)
	assert.Equal(t, 0, len(steps))
	assert.Equal(t, "3", vars[0].Value.String())
}

func TestConfig_00(t *testing.T) {
	t.Setenv(ENV_DOMAIN, "BLS12_377")
	t.Setenv(ENV_PRINT, "true")
	t.Setenv(ENV_INPUT, "")
	//
	config := ReadConfig()
	//
	assert.Equal(t, "BLS12_377", config.Domain)
	assert.True(t, config.Print)
	assert.False(t, config.Time)
}

func TestWatch_00(t *testing.T) {
	var (
		dir      = t.TempDir()
		filename = filepath.Join(dir, "prog.stk")
		out      = &syncBuffer{}
		stop     = make(chan os.Signal, 1)
		done     = make(chan error, 1)
	)
	//
	assert.NoError(t, os.WriteFile(filename, []byte("begin x := 1 end\n"), 0600))
	//
	go func() {
		done <- watch(out, filename, translateConfig{}, stop)
	}()
	// Initial translation
	waitFor(t, out, "PUSH 1")
	// Change triggers translation
	assert.NoError(t, os.WriteFile(filename, []byte("begin x := 2 end\n"), 0600))
	waitFor(t, out, "PUSH 2")
	//
	stop <- os.Interrupt
	assert.NoError(t, <-done)
}

// ==================================================================
// Framework
// ==================================================================

func exists(filenames ...string) func(string) bool {
	return func(filename string) bool {
		for _, f := range filenames {
			if f == filename {
				return true
			}
		}
		//
		return false
	}
}

func translateText(t *testing.T, text string) []code.Instruction {
	t.Helper()
	//
	program, errs := parser.Parse(source.NewSourceText("test", []string{text}))
	//
	for _, err := range errs {
		t.Fatalf("unexpected error: %s", err.Error())
	}
	//
	return program.Code
}

func waitFor(t *testing.T, out *syncBuffer, text string) {
	t.Helper()
	//
	for deadline := time.Now().Add(5 * time.Second); time.Now().Before(deadline); {
		if strings.Contains(out.String(), text) {
			return
		}
		//
		time.Sleep(10 * time.Millisecond)
	}
	//
	t.Fatalf("timed out waiting for \"%s\"", text)
}

// syncBuffer is a buffer which can be written and read concurrently.
type syncBuffer struct {
	mux sync.Mutex
	buf bytes.Buffer
}

func (p *syncBuffer) Write(bytes []byte) (int, error) {
	p.mux.Lock()
	defer p.mux.Unlock()
	//
	return p.buf.Write(bytes)
}

func (p *syncBuffer) String() string {
	p.mux.Lock()
	defer p.mux.Unlock()
	//
	return p.buf.String()
}
