package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/perudoc"
)

var (
	errRejected  = errors.New("documents rejected")
	errNoNumbers = errors.New("no document numbers given")
)

type report struct {
	Type         string `json:"type" yaml:"type"`
	Input        string `json:"input" yaml:"input"`
	Status       string `json:"status" yaml:"status"`
	Number       string `json:"number,omitempty" yaml:"number,omitempty"`
	Reason       string `json:"reason,omitempty" yaml:"reason,omitempty"`
	TaxpayerKind string `json:"taxpayer_kind,omitempty" yaml:"taxpayer_kind,omitempty"`
}

func newReport(res perudoc.Result) report {
	return report{
		Type:         res.Type.String(),
		Input:        res.Input,
		Status:       res.Status.String(),
		Number:       res.Number.String(),
		Reason:       res.Reason,
		TaxpayerKind: string(res.Number.TaxpayerKind()),
	}
}

func (r report) line() string {
	if r.Status != perudoc.StatusValid.String() {
		return fmt.Sprintf("INVALID  %s %q %s: %s", r.Type, r.Input, r.Status, r.Reason)
	}
	if r.TaxpayerKind != "" {
		return fmt.Sprintf("VALID    %s %s (%s)", r.Type, r.Number, r.TaxpayerKind)
	}
	return fmt.Sprintf("VALID    %s %s", r.Type, r.Number)
}

func newValidateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <type> [number...]",
		Short: "Validate document numbers of one type",
		Long: `Validates each number against the rules of the given document type.
Without numbers, reads one number per line from standard input.
Fails if any number is rejected.`,
		Example: `  perudoc validate ruc 20100070970
  cat dnis.txt | perudoc validate dni -o json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runValidate(cmd, args[0], args[1:])
		},
	}
}

func (a *app) runValidate(cmd *cobra.Command, label string, numbers []string) error {
	t, err := perudoc.ParseDocumentType(label)
	if err != nil {
		return err
	}
	if len(numbers) == 0 {
		if numbers, err = readLines(cmd.InOrStdin()); err != nil {
			return err
		}
	}
	if len(numbers) == 0 {
		return errNoNumbers
	}

	inputs := make([]perudoc.Input, len(numbers))
	for i, n := range numbers {
		inputs[i] = perudoc.Input{Type: t, Number: n}
	}

	rejected := 0
	reports := make([]report, 0, len(inputs))
	for _, res := range a.validator.ValidateAll(inputs...) {
		if !res.Valid() {
			rejected++
		}
		reports = append(reports, newReport(res))
	}

	err = a.printer.print(cmd.OutOrStdout(), reports, func(w io.Writer) error {
		for _, r := range reports {
			if _, err := fmt.Fprintln(w, r.line()); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	if rejected > 0 {
		return fmt.Errorf("%w: %d of %d", errRejected, rejected, len(reports))
	}
	return nil
}

// readLines returns the non-blank lines of r unchanged.
func readLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if strings.TrimSpace(sc.Text()) == "" {
			continue
		}
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read numbers: %w", err)
	}
	return lines, nil
}
