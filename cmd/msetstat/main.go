/*
Msetstat loads text files of integers into multisets and reports on them.

Usage:

	msetstat print [--plain] [--width N] FILE...
	msetstat top [-k N] [--html] FILE...
	msetstat compare A B
	msetstat dot FILE

Tokens of all files given to print, top and dot are counted together.
Global flags -v (verbose tracing) and --log (tracing backend: "go" or
"logrus") apply to every command.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2024, Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	cobra.EnableCommandSorting = false
	if err := newStat().Root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
