package main

import (
	"flag"
	"os"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"

	"github.com/npillmayer/combi/expr"
)

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

// main() starts an interactive CLI ("C.REPL"), where users may enter
// arithmetic expressions. C.REPL will parse each line with the
// combinator-built grammar of package expr, evaluate it, and print out
// either the value or the parse failure message.
func main() {
	// set up logging
	initDisplay()
	gtrace.SyntaxTracer = gologadapter.New()
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	flag.Parse()
	tracer().SetTraceLevel(traceLevel(*tlevel))
	pterm.Info.Println("Welcome to CREPL") // colored welcome message
	tracer().Infof("Trace level is %s", *tlevel)
	//
	// expressions may be given as command line arguments, too
	input := strings.TrimSpace(strings.Join(flag.Args(), ""))
	if input != "" {
		evalAndPrint(input)
	}
	//
	// set up REPL
	tracer().Infof("Quit with <ctrl>D") // inform user how to stop the CLI
	repl, err := readline.New("crepl> ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	for {
		line, err := repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		evalAndPrint(line)
	}
	println("Good bye!")
}

func evalAndPrint(input string) {
	v, err := expr.Eval(input)
	if err != nil {
		pterm.Error.Println(err.Error())
		return
	}
	pterm.Info.Println(strconv.Itoa(v))
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

func traceLevel(l string) tracing.TraceLevel {
	return tracing.TraceLevelFromString(l)
}
