package main

import (
	"flag"
	"fmt"

	"github.com/mgomes/rizzlang/rizz"
)

func tableCommand(args []string) error {
	fs := flag.NewFlagSet("table", flag.ContinueOnError)
	fs.SetOutput(new(flagErrorSink))
	plain := fs.Bool("plain", false, "print the table as plain text")
	if err := fs.Parse(args); err != nil {
		return err
	}

	t := rizz.DefaultTable()
	if *plain {
		fmt.Print(t.String())
		return nil
	}
	fmt.Println(renderTransitionTable(t))
	return nil
}
