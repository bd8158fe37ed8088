package main

import (
	"fmt"
	"os"

	"fjacquet/expense-tracker/cmd/categories"
	"fjacquet/expense-tracker/cmd/root"
	"fjacquet/expense-tracker/cmd/summary"
)

func init() {
	// 1. Initialize root command flags
	root.Init()

	// 2. Add all subcommands
	root.Cmd.AddCommand(summary.Cmd)
	root.Cmd.AddCommand(categories.Cmd)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
