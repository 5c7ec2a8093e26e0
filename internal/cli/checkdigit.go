package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/perudoc"
)

type checkDigitReport struct {
	Body       string `json:"body" yaml:"body"`
	CheckDigit string `json:"check_digit" yaml:"check_digit"`
	RUC        string `json:"ruc" yaml:"ruc"`
}

func newCheckDigitCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check-digit <body>...",
		Short: "Compute RUC check digits",
		Long: `Computes the modulo-11 check digit of each 10-digit RUC body.
An 11-digit RUC is accepted too; its last digit is ignored.`,
		Example: "  perudoc check-digit 2010007097",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runCheckDigit(cmd, args)
		},
	}
}

func (a *app) runCheckDigit(cmd *cobra.Command, bodies []string) error {
	reports := make([]checkDigitReport, 0, len(bodies))
	for _, raw := range bodies {
		body, err := perudoc.Normalize(raw)
		if err != nil {
			return fmt.Errorf("%q: %w", raw, err)
		}
		d, err := perudoc.RUCCheckDigit(body)
		if err != nil {
			return fmt.Errorf("%q: %w", raw, err)
		}
		body = body[:10]
		reports = append(reports, checkDigitReport{
			Body:       body,
			CheckDigit: string(d),
			RUC:        body + string(d),
		})
	}

	return a.printer.print(cmd.OutOrStdout(), reports, func(w io.Writer) error {
		for _, r := range reports {
			if _, err := fmt.Fprintf(w, "%s -> %s\n", r.Body, r.RUC); err != nil {
				return err
			}
		}
		return nil
	})
}
