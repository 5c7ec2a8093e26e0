// Package cli implements the perudoc command-line interface.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/perudoc"
	"github.com/dmitrymomot/perudoc/pkg/logger"
)

var version = "dev"

type app struct {
	output    string
	printer   printer
	validator *perudoc.Validator
}

// NewRootCommand builds the perudoc command tree. The validator is configured
// from PERUDOC_* environment variables before any subcommand runs.
func NewRootCommand() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:           "perudoc",
		Short:         "Validate Peruvian identity and taxpayer document numbers",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			p, err := newPrinter(a.output)
			if err != nil {
				return err
			}
			a.printer = p
			return a.setup(cmd)
		},
	}
	cmd.PersistentFlags().StringVarP(&a.output, "output", "o", formatText, "output format: text, json or yaml")

	cmd.AddCommand(
		newValidateCmd(a),
		newCheckDigitCmd(a),
		newTypesCmd(a),
		newVersionCmd(),
	)
	return cmd
}

// Execute runs the command tree against os.Args and returns the process exit code.
func Execute() int {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "perudoc:", err)
		return 1
	}
	return 0
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := perudoc.LoadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	l, err := cfg.NewLogger(logger.WithOutput(cmd.ErrOrStderr()))
	if err != nil {
		return err
	}
	v, err := perudoc.New(cfg.Options(l)...)
	if err != nil {
		return fmt.Errorf("build validator: %w", err)
	}
	a.validator = v
	return nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return nil
		},
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Printf("perudoc version %s\n", version)
		},
	}
}
