package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var catalogPage int

// catalogCmd prints the statement catalog
var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List the questionnaire statements",
	Long: `Prints every statement with its id and category. The ids are the
values accepted by "temperament score --select".

Example:
  temperament catalog
  temperament catalog --page 1`,
	Args: cobra.NoArgs,
	RunE: listCatalog,
}

func init() {
	catalogCmd.Flags().IntVar(&catalogPage, "page", -1, "Show a single 0-based page")
}

func listCatalog(cmd *cobra.Command, args []string) error {
	cat, err := openCatalog()
	if err != nil {
		return err
	}

	size := cfg.Questionnaire.PageSize
	total := cat.TotalPages(size)
	statements := cat.Statements()

	out := cmd.OutOrStdout()
	if catalogPage >= 0 {
		if catalogPage >= total {
			return fmt.Errorf("page %d out of range: catalog has %d page(s)", catalogPage, total)
		}
		statements = cat.Page(catalogPage, size)
		fmt.Fprintf(out, "Page %d of %d\n\n", catalogPage+1, total)
	}

	for _, s := range statements {
		fmt.Fprintf(out, "%3d  %-12s %s\n", s.ID, s.Category.Title(), s.Text)
	}
	return nil
}
