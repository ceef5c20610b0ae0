package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/profedbrown/molecule"
)

var massVerb string

var massCmd = &cobra.Command{
	Use:   "mass formula",
	Short: "Compute the molecular mass of a formula",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := tableOptions()
		if err != nil {
			return err
		}
		m, err := molecule.Mass(args[0], opts...)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), massVerb+"\n", m)
		return nil
	},
}

var atomsCmd = &cobra.Command{
	Use:   "atoms formula symbol",
	Short: "Count the atoms of one element in a formula",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := tableOptions()
		if err != nil {
			return err
		}
		n, err := molecule.Atoms(args[0], args[1], opts...)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), n)
		return nil
	},
}

var elementsCmd = &cobra.Command{
	Use:   "elements formula",
	Short: "List the distinct elements of a formula with their totals",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := tableOptions()
		if err != nil {
			return err
		}
		seq, err := molecule.Elements(args[0], opts...)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, headStyle.Render("ELEMENT  COUNT"))
		for sym, n := range seq {
			fmt.Fprintf(out, "%s  %d\n", symStyle.Render(fmt.Sprintf("%-7s", sym)), n)
		}
		return nil
	},
}

var checkCmd = &cobra.Command{
	Use:   "check formula",
	Short: "Validate a formula's symbols against the mass table",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := tableOptions()
		if err != nil {
			return err
		}
		if err := molecule.Check(args[0], opts...); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "ok")
		return nil
	},
}

var cleanCmd = &cobra.Command{
	Use:   "clean formula",
	Short: "Remove unrecognized tokens from a formula",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := tableOptions()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), molecule.Clean(args[0], opts...))
		return nil
	},
}

func init() {
	massCmd.Flags().StringVar(&massVerb, "fmt", "%.7f", "result formatting verb")
	rootCmd.AddCommand(massCmd, atomsCmd, elementsCmd, checkCmd, cleanCmd)
}
