/*
 * CAMC
 *
 * Copyright 2020 Matthias Ladkau. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

/*
Package camconfig holds the handful of host-tunable knobs the core
packages need: the lexer's maximum token length and the optimizer's
defensive pass bound. Everything else about parsing,
optimizing and evaluating is fixed by the language semantics, not
configuration.
*/
package camconfig

import (
	"fmt"
	"strconv"

	"devt.de/krotik/common/errorutil"
)

/*
Known configuration keys.
*/
const (
	MaxTokenLen         = "MaxTokenLen"
	OptimizerPassFactor = "OptimizerPassFactor"
	OptimizerPassFloor  = "OptimizerPassFloor"
)

/*
DefaultConfig is the default configuration.
*/
var DefaultConfig = map[string]interface{}{
	MaxTokenLen:         64,
	OptimizerPassFactor: 64,
	OptimizerPassFloor:  256,
}

/*
Config is the configuration actually in effect. Mutate it (or replace keys
in it) before running the pipeline to change limits.
*/
var Config map[string]interface{}

func init() {
	data := make(map[string]interface{}, len(DefaultConfig))
	for k, v := range DefaultConfig {
		data[k] = v
	}
	Config = data
}

/*
Int reads a configuration value as an int. A key holding a value that
cannot be parsed as an int is a programmer error - it means the process
was misconfigured, not that the user supplied bad input - so this
asserts rather than returning an error.
*/
func Int(key string) int {
	ret, err := strconv.ParseInt(fmt.Sprint(Config[key]), 10, 64)

	errorutil.AssertTrue(err == nil,
		fmt.Sprintf("could not parse config key %v: %v", key, err))

	return int(ret)
}

/*
OptimizerPassBound returns the maximum number of fixpoint passes the
optimizer driver should attempt for an AST of the given node count,
per the documented defensive bound: a multiple of the tree size
with a floor, so that tiny programs still get a reasonable number of
tries.
*/
func OptimizerPassBound(nodeCount int) int {
	bound := nodeCount * Int(OptimizerPassFactor)
	if floor := Int(OptimizerPassFloor); bound < floor {
		return floor
	}
	return bound
}
