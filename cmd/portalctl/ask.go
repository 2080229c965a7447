package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"alfredoptarigan/hiring-portal/internal/app"
	"alfredoptarigan/hiring-portal/internal/config"
	"alfredoptarigan/hiring-portal/internal/models"
)

var askCmd = &cobra.Command{
	Use:   "ask <question>",
	Short: "Answer a natural-language question with a vetted read-only query",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runAsk,
}

var askShowSQL bool

func init() {
	askCmd.Flags().BoolVar(&askShowSQL, "show-sql", false, "Print the generated SQL instead of running it")

	rootCmd.AddCommand(askCmd)
}

func runAsk(cmd *cobra.Command, args []string) error {
	question := strings.Join(args, " ")

	ctx := cmd.Context()
	container, cleanup, err := app.Bootstrap(ctx, config.Load())
	if err != nil {
		return err
	}
	defer cleanup()

	if askShowSQL {
		sql, err := container.Translator.Translate(ctx, question)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), sql)
		return nil
	}

	result, err := container.Translator.TranslateAndRun(ctx, question)
	if err != nil {
		return err
	}

	return writeQueryResult(cmd.OutOrStdout(), result)
}

// writeQueryResult prints the column header and one line per row, tab separated.
func writeQueryResult(w io.Writer, result *models.QueryResult) error {
	if len(result.Columns) == 0 {
		_, err := fmt.Fprintln(w, "(no rows)")
		return err
	}

	if _, err := fmt.Fprintln(w, strings.Join(result.Columns, "\t")); err != nil {
		return err
	}

	for _, row := range result.Rows {
		cells := make([]string, len(row))
		for i, v := range row {
			if v == nil {
				cells[i] = "NULL"
				continue
			}
			cells[i] = fmt.Sprint(v)
		}
		if _, err := fmt.Fprintln(w, strings.Join(cells, "\t")); err != nil {
			return err
		}
	}

	return nil
}
