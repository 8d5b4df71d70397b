package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/shopspring/decimal"

	"sibbap-loan-engine/internal/domain/policy"
)

// policyFile mirrors the TOML override layout:
//
//	[types.marketing]
//	interest_rate_percent = 4.0
//	service_fee_rate_percent = 5.0
//
//	[types.feeds]
//	unit_price = "1800.00"
type policyFile struct {
	Types map[string]policyEntry `toml:"types"`
}

type policyEntry struct {
	InterestRatePercent   *float64 `toml:"interest_rate_percent"`
	ServiceFeeRatePercent *float64 `toml:"service_fee_rate_percent"`
	UnitPrice             *string  `toml:"unit_price"`
	MaxTermMonths         *int     `toml:"max_term_months"`
}

// LoadPolicyTable builds the rate policy table, layering overrides from the
// configured TOML file (if any) over the built-in defaults.
func (c *Config) LoadPolicyTable() (*policy.Table, error) {
	if c.PolicyFile == "" {
		return policy.NewTable(), nil
	}

	raw, err := os.ReadFile(c.PolicyFile)
	if err != nil {
		return nil, fmt.Errorf("read policy file: %w", err)
	}
	var pf policyFile
	if err := toml.Unmarshal(raw, &pf); err != nil {
		return nil, fmt.Errorf("parse policy file %s: %w", c.PolicyFile, err)
	}

	overrides := make(map[policy.LoanType]policy.Override, len(pf.Types))
	for name, e := range pf.Types {
		lt, err := policy.Parse(name)
		if err != nil {
			return nil, fmt.Errorf("policy file %s: %w", c.PolicyFile, err)
		}
		var ov policy.Override
		if e.InterestRatePercent != nil {
			d := decimal.NewFromFloat(*e.InterestRatePercent)
			ov.InterestRatePercent = &d
		}
		if e.ServiceFeeRatePercent != nil {
			d := decimal.NewFromFloat(*e.ServiceFeeRatePercent)
			ov.ServiceFeeRatePercent = &d
		}
		if e.UnitPrice != nil {
			d, err := decimal.NewFromString(*e.UnitPrice)
			if err != nil {
				return nil, fmt.Errorf("policy file %s: unit_price for %s: %w", c.PolicyFile, name, err)
			}
			ov.UnitPrice = &d
		}
		if e.MaxTermMonths != nil {
			ov.MaxTermMonths = e.MaxTermMonths
		}
		overrides[lt] = ov
	}
	return policy.NewTableWith(overrides)
}
