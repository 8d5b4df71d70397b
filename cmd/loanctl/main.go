// loanctl runs the origination policy engine offline: quote a loan,
// preview its amortization schedule, or list the rate table, without a
// running API, database, or redis.
package main

import (
	"os"

	"github.com/spf13/cobra"

	"sibbap-loan-engine/internal/config"
	"sibbap-loan-engine/internal/domain/policy"
)

var flagPolicyFile string

var rootCmd = &cobra.Command{
	Use:   "loanctl",
	Short: "Loan origination policy engine CLI",
	Long:  "Quote loans, preview amortization schedules, and inspect the rate policy table offline.",
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagPolicyFile, "policy", "", "TOML policy override file (defaults to built-in table)")
}

// loadTable builds the policy table, applying --policy overrides when given.
func loadTable() (*policy.Table, error) {
	if flagPolicyFile == "" {
		return policy.NewTable(), nil
	}
	cfg := &config.Config{PolicyFile: flagPolicyFile}
	return cfg.LoadPolicyTable()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
