package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"sibbap-loan-engine/internal/domain/policy"
)

var typesCmd = &cobra.Command{
	Use:   "types",
	Short: "List loan types and their policy parameters",
	RunE:  runTypes,
}

func init() {
	rootCmd.AddCommand(typesCmd)
}

func runTypes(_ *cobra.Command, _ []string) error {
	table, err := loadTable()
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "type\tinterest %\tservice fee %\trule\tmax principal")
	for _, lt := range policy.All() {
		p, err := table.Lookup(lt)
		if err != nil {
			return err
		}
		maxP := "-"
		if !p.MaxPrincipal.IsZero() {
			maxP = p.MaxPrincipal.StringFixed(2)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			lt,
			p.InterestRatePercent.String(),
			p.ServiceFeeRatePercent.String(),
			p.Rule,
			maxP,
		)
	}
	return w.Flush()
}
