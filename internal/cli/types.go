package cli

import (
	"fmt"
	"io"
	"slices"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/perudoc"
)

type typeReport struct {
	Type         string            `json:"type" yaml:"type"`
	ShortName    string            `json:"short_name" yaml:"short_name"`
	Codes        map[string]string `json:"codes,omitempty" yaml:"codes,omitempty"`
	Foreign      bool              `json:"foreign" yaml:"foreign"`
	NonDomiciled bool              `json:"accepted_for_non_domiciled" yaml:"accepted_for_non_domiciled"`
}

func newTypesCmd(a *app) *cobra.Command {
	var context string

	cmd := &cobra.Command{
		Use:   "types",
		Short: "List the document type catalog",
		Long: `Lists every catalogued document type with its SUNAT system codes.
With --context, only the types accepted by that system are listed.`,
		Example: "  perudoc types --context plame",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runTypes(cmd, context)
		},
	}
	cmd.Flags().StringVarP(&context, "context", "c", "", "usage context: PLE, PLAME, AFPNET or FV3800")
	return cmd
}

func (a *app) runTypes(cmd *cobra.Command, context string) error {
	types := perudoc.DocumentTypes()
	if context != "" {
		ctx := perudoc.UsageContext(strings.ToUpper(strings.TrimSpace(context)))
		if !slices.Contains(perudoc.UsageContexts, ctx) {
			return fmt.Errorf("unknown usage context %q", context)
		}
		types = perudoc.SuitableTypes(ctx)
	}

	reports := make([]typeReport, 0, len(types))
	for _, t := range types {
		r := typeReport{
			Type:         t.String(),
			ShortName:    t.ShortName(),
			Foreign:      t.Foreign(),
			NonDomiciled: t.AcceptedForNonDomiciled(),
		}
		for _, ctx := range perudoc.UsageContexts {
			if code := t.Code(ctx); code != "" {
				if r.Codes == nil {
					r.Codes = make(map[string]string, len(perudoc.UsageContexts))
				}
				r.Codes[string(ctx)] = code
			}
		}
		reports = append(reports, r)
	}

	return a.printer.print(cmd.OutOrStdout(), reports, func(w io.Writer) error {
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		header := []string{"TYPE", "SHORT"}
		for _, ctx := range perudoc.UsageContexts {
			header = append(header, string(ctx))
		}
		fmt.Fprintln(tw, strings.Join(header, "\t"))
		for _, r := range reports {
			row := []string{r.Type, r.ShortName}
			for _, ctx := range perudoc.UsageContexts {
				code := r.Codes[string(ctx)]
				if code == "" {
					code = "-"
				}
				row = append(row, code)
			}
			fmt.Fprintln(tw, strings.Join(row, "\t"))
		}
		return tw.Flush()
	})
}
