package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"tapeline/internal/cli"
	"tapeline/internal/validator"
)

var validateCmd = &cobra.Command{
	Use:   "validate <machine-file>",
	Short: "Check a machine description for consistency",
	Long:  `Parses a machine description and reports structural problems and unreachable states.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		if err := runValidate(args[0]); err != nil {
			return err
		}
		fmt.Println("Machine is valid.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(path string) error {
	m, err := cli.LoadMachine(path)
	if err != nil {
		return err
	}

	if err := validator.Validate(m); err != nil {
		return err
	}

	if orphans := validator.Unreachable(m); len(orphans) > 0 {
		fmt.Fprintf(os.Stderr, "Warning: unreachable states: %v\n", orphans)
	}
	return nil
}
