package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/smartsales365/terminal/internal/core/domain"
)

func newReportsCmd(app *App) *cobra.Command {
	var format, out string

	cmd := &cobra.Command{
		Use:     "report <prompt...>",
		Short:   "Generate an AI-assisted report from a natural-language prompt",
		Example: `  smartsales report "ventas del mes pasado por categoria" --format pdf --out ventas.pdf`,
		Args:    cobra.MinimumNArgs(1),
		PreRunE: requireStaff(app),
		RunE: func(cmd *cobra.Command, args []string) error {
			reportFormat, err := domain.ParseReportFormat(format)
			if err != nil {
				return err
			}
			prompt := strings.Join(args, " ")
			outcome, err := app.Reports.Generate(cmd.Context(), prompt, reportFormat, out)
			if err != nil {
				return err
			}
			if outcome.SavedPath != "" {
				fmt.Fprintf(app.out(), "report saved to %s\n", outcome.SavedPath)
				return nil
			}
			fmt.Fprintln(app.out(), outcome.Text)
			return nil
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "pantalla", "output format: pantalla, pdf or excel")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file for binary formats")
	return cmd
}
