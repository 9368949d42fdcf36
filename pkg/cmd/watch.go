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
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/consensys/go-stackc/pkg/util/source"
	"github.com/consensys/go-stackc/pkg/util/termio"
	"github.com/fsnotify/fsnotify"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var watchCmd = &cobra.Command{
	Use:   "watch [flags] source_file",
	Short: "Translate a source file whenever it changes.",
	Long: `Translate a given source file and then watch it for changes,
	translating it again whenever it is written.  This continues until
	interrupted.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(EXIT_USAGE)
		}
		//
		var (
			stop   = make(chan os.Signal, 1)
			config = translateConfig{
				print: GetFlag(cmd, "print"),
				time:  GetFlag(cmd, "time"),
				ansi:  termio.IsTerminal(os.Stdout),
			}
		)
		//
		signal.Notify(stop, os.Interrupt)
		//
		if err := watch(os.Stdout, args[0], config, stop); err != nil {
			log.Error(err)
			os.Exit(EXIT_INPUT)
		}
	},
}

// Translate a given file once and then again on every write, until signalled to
// stop (or the watcher is closed).
func watch(out io.Writer, filename string, config translateConfig, stop <-chan os.Signal) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	//
	defer watcher.Close()
	// Watch enclosing directory, as files may be replaced rather than written.
	if err := watcher.Add(filepath.Dir(filename)); err != nil {
		return err
	}
	//
	retranslate(out, filename, config)
	//
	for {
		select {
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			//
			if isWriteTo(ev, filename) {
				log.Debugf("%s changed (%s)", filename, ev.Op)
				retranslate(out, filename, config)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			//
			log.Error(err)
		case <-stop:
			return nil
		}
	}
}

func isWriteTo(ev fsnotify.Event, filename string) bool {
	return filepath.Clean(ev.Name) == filepath.Clean(filename) && ev.Op&(fsnotify.Write|fsnotify.Create) != 0
}

// Translate a given file, reporting (rather than exiting on) any errors.
func retranslate(out io.Writer, filename string, config translateConfig) {
	files, err := source.ReadFiles(filename)
	//
	if err != nil {
		log.Error(err)
		return
	}
	//
	if _, errs := translate(out, &files[0], config); len(errs) > 0 {
		printDiagnostics(out, errs, config.ansi)
	}
}

func init() {
	rootCmd.AddCommand(watchCmd)
	watchCmd.Flags().Bool("print", defaults.Print, "print the parse tree")
	watchCmd.Flags().Bool("time", defaults.Time, "report how long parsing takes")
}
