package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/profedbrown/molecule"
)

var tableFile string

var rootCmd = &cobra.Command{
	Use:   "molecule [formula...]",
	Short: "Chemical formula calculator",
	Long: `molecule parses chemical formulae such as Ca(NO3)2 and computes
molecular masses, per-element atom counts, and element inventories.

Run without arguments for an interactive prompt, or give formulae directly:

  molecule H2SO4
  molecule mass "Ca(NO3)2"
  molecule atoms "Be3Al2(SiO3)6" O

A --table file extends or overrides the standard atomic masses:

  [masses]
  D = 2.0141`,
	Args: cobra.ArbitraryArgs,
	RunE: runRoot,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&tableFile, "table", "", "TOML file with extra or replacement atomic masses")
	rootCmd.SilenceUsage = true
}

func main() {
	log.SetFlags(0)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runRoot(cmd *cobra.Command, args []string) error {
	opts, err := tableOptions()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if len(args) > 0 {
		for _, f := range args {
			if err := report(out, f, opts); err != nil {
				return err
			}
		}
		return nil
	}
	scan := bufio.NewScanner(cmd.InOrStdin())
	for {
		fmt.Fprint(out, promptStyle.Render("Enter molecular formula:")+" ")
		if !scan.Scan() {
			fmt.Fprintln(out)
			return scan.Err()
		}
		line := strings.TrimSpace(scan.Text())
		switch line {
		case "", "quit", "exit":
			return nil
		}
		if err := report(out, line, opts); err != nil {
			fmt.Fprintln(out, errStyle.Render(err.Error()))
		}
	}
}

// report prints the mass and element inventory of one formula.
func report(w io.Writer, formula string, opts []molecule.ContextOption) error {
	m, err := molecule.Mass(formula, opts...)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "The molecular mass of %s is %.7f\n", formula, m)
	fmt.Fprintln(w, headStyle.Render("The elements of "+formula+" are:"))
	seq, err := molecule.Elements(formula, opts...)
	if err != nil {
		return err
	}
	for sym, n := range seq {
		fmt.Fprintf(w, "  %s %d\n", symStyle.Render(fmt.Sprintf("%-3s", sym)), n)
	}
	return nil
}
