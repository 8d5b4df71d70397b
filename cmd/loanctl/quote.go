package main

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	quoteDomain "sibbap-loan-engine/internal/domain/quote"
)

var (
	flagType         string
	flagPrincipal    string
	flagUnits        int64
	flagShareCapital string
	flagTerm         int
	flagPurpose      string
)

var quoteCmd = &cobra.Command{
	Use:   "quote",
	Short: "Compute a loan quote",
	RunE:  runQuote,
}

func init() {
	quoteCmd.Flags().StringVarP(&flagType, "type", "t", "", "loan type (e.g. marketing, regular, feeds)")
	quoteCmd.Flags().StringVarP(&flagPrincipal, "principal", "a", "0", "requested principal")
	quoteCmd.Flags().Int64VarP(&flagUnits, "units", "u", 0, "requested sacks (commodity types)")
	quoteCmd.Flags().StringVarP(&flagShareCapital, "share-capital", "s", "0", "member share capital")
	quoteCmd.Flags().IntVarP(&flagTerm, "term", "m", 0, "requested term in months (0 = policy decides)")
	quoteCmd.Flags().StringVar(&flagPurpose, "purpose", "", "loan purpose")
	_ = quoteCmd.MarkFlagRequired("type")
	rootCmd.AddCommand(quoteCmd)
}

func buildRequest() (quoteDomain.Request, error) {
	principal, err := decimal.NewFromString(flagPrincipal)
	if err != nil {
		return quoteDomain.Request{}, fmt.Errorf("invalid --principal %q: %w", flagPrincipal, err)
	}
	capital, err := decimal.NewFromString(flagShareCapital)
	if err != nil {
		return quoteDomain.Request{}, fmt.Errorf("invalid --share-capital %q: %w", flagShareCapital, err)
	}
	return quoteDomain.Request{
		LoanType:           flagType,
		RequestedPrincipal: principal,
		RequestedUnits:     flagUnits,
		ShareCapital:       capital,
		TermMonths:         flagTerm,
		Purpose:            flagPurpose,
	}, nil
}

func runQuote(_ *cobra.Command, _ []string) error {
	table, err := loadTable()
	if err != nil {
		return err
	}
	req, err := buildRequest()
	if err != nil {
		return err
	}

	q, err := quoteDomain.NewBuilder(table).Build(req)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "loan type\t%s\n", q.LoanType)
	fmt.Fprintf(w, "principal\t%s\n", q.Principal.StringFixed(2))
	if q.Units > 0 {
		fmt.Fprintf(w, "units\t%d\n", q.Units)
	}
	fmt.Fprintf(w, "term\t%d months\n", q.TermMonths)
	fmt.Fprintf(w, "max eligible\t%s\n", q.MaxEligiblePrincipal.StringFixed(2))
	fmt.Fprintf(w, "interest\t%s\n", q.InterestAmount.StringFixed(2))
	fmt.Fprintf(w, "service fee\t%s\n", q.ServiceFeeAmount.StringFixed(2))
	for _, name := range sortedFeeNames(q.AuxiliaryFees) {
		fmt.Fprintf(w, "%s\t%s\n", name, q.AuxiliaryFees[name].StringFixed(2))
	}
	fmt.Fprintf(w, "net proceeds\t%s\n", q.NetProceeds.StringFixed(2))
	return w.Flush()
}

func sortedFeeNames(fees quoteDomain.AuxFees) []string {
	names := make([]string, 0, len(fees))
	for name := range fees {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
