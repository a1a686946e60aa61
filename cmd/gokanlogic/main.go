// Command gokanlogic is the CLI front end for the prolog package. With no
// subcommand it runs a baked-in demo program and prints its first five
// solutions; `load <file>` loads a program file and drops into an
// interactive REPL where each line is parsed as a query and its first
// solution (or the failure banner) is printed.
package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/gitrdm/gokanlogic/internal/syntax"
	"github.com/gitrdm/gokanlogic/internal/trace"
	"github.com/gitrdm/gokanlogic/pkg/prolog"
)

var traceLevel string

func main() {
	root := &cobra.Command{
		Use:   "gokanlogic",
		Short: "A Horn-clause logic interpreter",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd)
		},
	}
	root.PersistentFlags().StringVar(&traceLevel, "trace", "off", "resolver trace level (debug, warn, off)")

	loadCmd := &cobra.Command{
		Use:   "load <file>",
		Short: "Load a program file and start an interactive query REPL",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLoad(cmd, args[0])
		},
	}

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Run the baked-in demo program",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd)
		},
	}

	root.AddCommand(loadCmd, runCmd)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func tracerFor(cmd *cobra.Command) trace.Logger {
	if traceLevel == "" || traceLevel == "off" {
		return trace.NoOp()
	}
	return trace.New("resolver", traceLevel)
}

// demoProgram is a family-relations-plus-accumulator demo: an `nth/3` list
// accessor built on an accumulator-style `is/2` call, alongside the
// classic parent/male/father relations.
const demoProgram = `
nth([X|Xs], 0, X).
nth([Y|Xs], N, Z) :- is(M, N - 1), nth(Xs, M, Z).

female(marge).
female(lisa).
male(homer).
male(bart).
parent(marge, bart).
parent(marge, lisa).
parent(homer, bart).
parent(homer, lisa).
father(X, Y) :- parent(X, Y), male(X).
`

const demoQuery = `father(X, bart).`

func runDemo(cmd *cobra.Command) error {
	clauses, err := syntax.NewParser(demoProgram).ParseProgram()
	if err != nil {
		return fmt.Errorf("loading demo program: %w", err)
	}
	db := prolog.NewDatabase(clauses...)

	goal, err := syntax.NewParser(demoQuery).ParseQuery()
	if err != nil {
		return fmt.Errorf("parsing demo query: %w", err)
	}

	q := prolog.NewQuery(goal, db).WithTracer(tracerFor(cmd))
	printSolutions(q, 5)
	return nil
}

func runLoad(cmd *cobra.Command, filename string) error {
	contents, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("reading %s: %w", filename, err)
	}

	clauses, err := syntax.NewParser(string(contents)).ParseProgram()
	if err != nil {
		return fmt.Errorf("parsing %s: %w", filename, err)
	}
	db := prolog.NewDatabase(clauses...)
	tr := tracerFor(cmd)

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("?- ")
		if !scanner.Scan() {
			return scanner.Err()
		}
		line := scanner.Text()
		if line == "" {
			continue
		}

		goal, err := syntax.NewParser(line).ParseQuery()
		if err != nil {
			fmt.Println(color.RedString("Error"))
			continue
		}

		q := prolog.NewQuery(goal, db).WithTracer(tr)
		partial, ok := q.Solve()
		if !ok {
			fmt.Println(color.RedString("false."))
			continue
		}
		fmt.Println(color.GreenString(partial.Result.String()))
	}
}

// printSolutions enumerates up to n solutions of q, printing each in
// green and a trailing red "false." once the search is exhausted.
func printSolutions(q *prolog.Query, n int) {
	cursor := 0
	for i := 0; i < n; i++ {
		partial, ok := q.SolveFrom(cursor)
		if !ok {
			fmt.Println(color.RedString("false."))
			return
		}
		fmt.Println(color.GreenString(partial.Result.String()))
		cursor = partial.Cursor + 1
	}
}
