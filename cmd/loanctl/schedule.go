package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	quoteDomain "sibbap-loan-engine/internal/domain/quote"
	scheduleDomain "sibbap-loan-engine/internal/domain/schedule"
)

var flagStart string

var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Quote a loan and print its amortization schedule",
	RunE:  runSchedule,
}

func init() {
	scheduleCmd.Flags().StringVarP(&flagType, "type", "t", "", "loan type (e.g. marketing, regular, feeds)")
	scheduleCmd.Flags().StringVarP(&flagPrincipal, "principal", "a", "0", "requested principal")
	scheduleCmd.Flags().Int64VarP(&flagUnits, "units", "u", 0, "requested sacks (commodity types)")
	scheduleCmd.Flags().StringVarP(&flagShareCapital, "share-capital", "s", "0", "member share capital")
	scheduleCmd.Flags().IntVarP(&flagTerm, "term", "m", 0, "requested term in months (0 = policy decides)")
	scheduleCmd.Flags().StringVar(&flagStart, "start", "", "release date YYYY-MM-DD (default today)")
	_ = scheduleCmd.MarkFlagRequired("type")
	rootCmd.AddCommand(scheduleCmd)
}

func runSchedule(_ *cobra.Command, _ []string) error {
	table, err := loadTable()
	if err != nil {
		return err
	}
	req, err := buildRequest()
	if err != nil {
		return err
	}

	start := time.Now().UTC().Truncate(24 * time.Hour)
	if flagStart != "" {
		start, err = time.Parse("2006-01-02", flagStart)
		if err != nil {
			return fmt.Errorf("invalid --start %q: %w", flagStart, err)
		}
	}

	q, err := quoteDomain.NewBuilder(table).Build(req)
	if err != nil {
		return err
	}
	s, err := scheduleDomain.NewScheduler().Generate(q, start)
	if err != nil {
		return err
	}

	fmt.Printf("%s  principal %s  term %d\n\n", q.LoanType, q.Principal.StringFixed(2), q.TermMonths)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "#\tdue date\tamortization\tbalance")
	for _, in := range s.Installments {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n",
			in.Sequence,
			in.DueDate.Format("2006-01-02"),
			in.AmortizationAmount.StringFixed(2),
			in.RunningBalance.StringFixed(2),
		)
	}
	return w.Flush()
}
