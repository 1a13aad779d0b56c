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
camc compiles and runs programs written in the restricted lambda calculus
this module targets: read the source, parse it to a categorical AST,
optionally optimize it, evaluate it on the Categorical Abstract Machine,
and print the resulting value. Given a file it runs that one program and
exits; given no file it drops into an interactive shell, one program per
line.
*/
package main

import (
	"flag"
	"fmt"
	"io/ioutil"
	"os"
	"strings"

	"devt.de/krotik/common/fileutil"
	"devt.de/krotik/common/termutil"

	"github.com/krotik/camc/cam"
	"github.com/krotik/camc/camlog"
	"github.com/krotik/camc/optimize"
	"github.com/krotik/camc/parser"
)

/*
logFileRolloverSize is the size a single -log-file chunk is allowed to
reach before fileutil.NewMultiFileBuffer rolls over to the next file.
*/
const logFileRolloverSize = 1000000

func main() {
	var (
		astFlag      = flag.Bool("ast", false, "print the parsed AST instead of evaluating it")
		noOptFlag    = flag.Bool("no-optimize", false, "skip the optimizer and run the parsed AST directly")
		statsFlag    = flag.Bool("stats", false, "print optimizer and evaluator statistics to stderr")
		logLevelFlag = flag.String("log-level", "error", "log level: error, info or debug")
		logFileFlag  = flag.String("log-file", "", "write log output to this file (rolled over every megabyte) instead of stderr")
	)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] [file]\n\n", os.Args[0])
		fmt.Fprintln(os.Stderr, "With no file, starts an interactive shell.")
		fmt.Fprintln(os.Stderr)
		flag.PrintDefaults()
	}
	flag.Parse()

	var sink camlog.Logger = camlog.NewStdLogger()
	if *logFileFlag != "" {
		rollover := fileutil.SizeBasedRolloverCondition(logFileRolloverSize)
		w, err := fileutil.NewMultiFileBuffer(*logFileFlag, fileutil.ConsecutiveNumberIterator(10), rollover)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(2)
		}
		sink = camlog.NewWriterLogger(w)
	}

	logger, err := camlog.NewLeveledLogger(sink, *logLevelFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(2)
	}

	if flag.NArg() == 0 {
		if err := repl(logger, *astFlag, *noOptFlag, *statsFlag); err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
		return
	}

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	if err := run(flag.Arg(0), *astFlag, *noOptFlag, *statsFlag, logger); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func run(path string, printAST, skipOptimize, printStats bool, logger *camlog.LeveledLogger) error {
	src, err := ioutil.ReadFile(path)
	if err != nil {
		return err
	}

	return evalSource(path, string(src), printAST, skipOptimize, printStats, logger)
}

/*
evalSource parses, optionally optimizes and evaluates one program, printing
either its AST or its result. Shared by run (one program per process) and
repl (one program per entered line).
*/
func evalSource(name, src string, printAST, skipOptimize, printStats bool, logger *camlog.LeveledLogger) error {
	tree, err := parser.Parse(name, src)
	if err != nil {
		return err
	}
	logger.LogDebug("parsed ", name)

	if printAST {
		fmt.Println(tree.String())
		return nil
	}

	code := tree
	if !skipOptimize {
		optimized, stats, err := optimize.Optimize(tree)
		if err != nil {
			return err
		}
		logger.LogInfo("optimizer " + stats.String())
		if printStats {
			fmt.Fprintf(os.Stderr, "optimizer: %s\n", stats.String())
		}
		code = optimized
	}

	result, evalStats := cam.Evaluate(code)
	if printStats {
		fmt.Fprintf(os.Stderr, "evaluator: %d step(s), max stack depth %d\n",
			evalStats.Steps, evalStats.MaxStackDepth)
	}
	logger.LogDebug("evaluated ", name)

	fmt.Println(result.String())
	return nil
}

/*
isExitLine reports whether a REPL line requests the shell to exit.
*/
func isExitLine(s string) bool {
	s = strings.TrimSpace(s)
	return s == "q" || s == "quit"
}

/*
repl drops into an interactive shell when camc is run with no file
argument: one program per line, using termutil's line terminal for
editing and up/down history.
*/
func repl(logger *camlog.LeveledLogger, printAST, skipOptimize, printStats bool) error {
	term, err := termutil.NewConsoleLineTerminal(os.Stdout)
	if err != nil {
		return err
	}

	term, err = termutil.AddHistoryMixin(term, "", isExitLine)
	if err != nil {
		return err
	}

	if err := term.StartTerm(); err != nil {
		return err
	}
	defer term.StopTerm()

	fmt.Fprintln(os.Stdout, "camc interactive mode - type 'quit' to exit")

	line, err := term.NextLine()
	for err == nil && !isExitLine(line) {
		if strings.TrimSpace(line) != "" {
			if evalErr := evalSource("<repl>", line, printAST, skipOptimize, printStats, logger); evalErr != nil {
				fmt.Fprintln(os.Stderr, evalErr)
			}
		}
		line, err = term.NextLine()
	}

	return nil
}
