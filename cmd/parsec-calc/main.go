// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Command parsec-calc is a small four-function arithmetic REPL built
// entirely from exported parsec combinators, demonstrating the library
// end to end: a text grammar (parsec/text), operator precedence
// (parsec/prec), a string source (parsec/input), and the driver (Run).
package main

import (
	"bufio"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	addFlags := func(cmd *cobra.Command) error {
		cmd.PersistentFlags().Bool("log-with-default-flags", false, "log with default flags")
		cmd.PersistentFlags().Bool("log-with-shortfile", true, "log with short file name")
		cmd.PersistentFlags().Bool("log-with-timestamp", false, "log with timestamp")
		cmd.PersistentFlags().Bool("quiet", false, "suppress the prompt")
		return nil
	}
	var cmdRoot = &cobra.Command{
		Use:   "parsec-calc [expression]",
		Short: "evaluate arithmetic expressions with parsec",
		Long:  `parsec-calc demonstrates the parsec library with a four-function expression evaluator.`,
		Args:  cobra.ArbitraryArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logWithDefaultFlags, _ := cmd.Flags().GetBool("log-with-default-flags")
			logWithShortFileName, _ := cmd.Flags().GetBool("log-with-shortfile")
			logWithTimestamp, _ := cmd.Flags().GetBool("log-with-timestamp")
			logFlags := 0
			if logWithShortFileName {
				logFlags |= log.Lshortfile
			}
			if logWithTimestamp {
				logFlags |= log.Ltime
			}
			if logWithDefaultFlags || logFlags == 0 {
				logFlags = log.LstdFlags
			}
			log.SetFlags(logFlags)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			quiet, _ := cmd.Flags().GetBool("quiet")
			if len(args) > 0 {
				for _, expr := range args {
					v, err := Eval(expr)
					if err != nil {
						return err
					}
					fmt.Println(v)
				}
				return nil
			}
			return repl(quiet)
		},
	}
	if err := addFlags(cmdRoot); err != nil {
		log.Fatal(err)
	}
	if err := cmdRoot.Execute(); err != nil {
		os.Exit(1)
	}
}

func repl(quiet bool) error {
	sc := bufio.NewScanner(os.Stdin)
	for {
		if !quiet {
			fmt.Print("> ")
		}
		if !sc.Scan() {
			return sc.Err()
		}
		line := sc.Text()
		if line == "" {
			continue
		}
		v, err := Eval(line)
		if err != nil {
			log.Printf("error: %v", err)
			continue
		}
		fmt.Println(v)
	}
}
