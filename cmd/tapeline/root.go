package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"tapeline/internal/cli"
	"tapeline/pkg/codec"
	"tapeline/pkg/compose"
	"tapeline/pkg/domain"
	"tapeline/pkg/machines"
)

var rootCmd = &cobra.Command{
	Use:   "tapeline [input]",
	Short: "Tapeline runs and composes single-tape Turing machines",
	Long: `Tapeline executes deterministic single-tape Turing machines.

With no arguments it prints the machine's textual encoding. With one
argument it runs the machine over that input, tracing the tape after
every step.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		machineFile, _ := cmd.Flags().GetString("machine")
		limit, _ := cmd.Flags().GetInt("limit")
		noColor, _ := cmd.Flags().GetBool("no-color")

		m, err := loadOrSampleMachine(machineFile)
		if err != nil {
			return err
		}

		if len(args) == 0 {
			fmt.Print(codec.EncodeString(m))
			return nil
		}

		return cli.RunTrace(cmd.Context(), m, args[0], cli.TraceOptions{
			Limit:   limit,
			NoColor: noColor,
		})
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringP("machine", "m", "", "Machine description file (default: built-in sample)")
	rootCmd.Flags().Int("limit", 1000000, "Maximum number of steps (0 = unbounded)")
	rootCmd.Flags().Bool("no-color", false, "Disable ANSI colors in the trace")
}

func loadOrSampleMachine(path string) (*domain.Machine, error) {
	if path != "" {
		return cli.LoadMachine(path)
	}
	return sampleMachine(), nil
}

// sampleMachine scans right to the first '#', consumes it, then rewinds
// to the start of the tape.
func sampleMachine() *domain.Machine {
	alphabet := domain.NewAlphabet("ab#_")
	return compose.Multiconcat([]*domain.Machine{
		machines.FindRight('#', alphabet, "seek"),
		machines.Consume('#', "eat"),
		machines.FindLeft(domain.Blank, alphabet, "rewind"),
	}, alphabet, "sample")
}
