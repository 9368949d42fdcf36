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
	"github.com/xyproto/env/v2"
)

// ENV_PRINT enables printing of the parse tree by default.
const ENV_PRINT = "STACKC_PRINT"

// ENV_TIME enables reporting of the parse time by default.
const ENV_TIME = "STACKC_TIME"

// ENV_DOMAIN selects the default arithmetic domain for execution.
const ENV_DOMAIN = "STACKC_DOMAIN"

// ENV_INPUT selects the default input file offered when prompting.
const ENV_INPUT = "STACKC_INPUT"

// Config captures the defaults for command-line flags, as determined by the
// environment.
type Config struct {
	// Print parse tree
	Print bool
	// Report parse time
	Time bool
	// Arithmetic domain used for execution
	Domain string
	// Input file offered when prompting
	Input string
}

// ReadConfig determines the defaults for command-line flags from the
// environment.
func ReadConfig() Config {
	return Config{
		Print:  env.Bool(ENV_PRINT),
		Time:   env.Bool(ENV_TIME),
		Domain: env.Str(ENV_DOMAIN, DOMAIN_INT),
		Input:  env.Str(ENV_INPUT, "input.txt"),
	}
}

// defaults are read once, when flags are registered.
var defaults = ReadConfig()
