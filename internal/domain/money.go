package domain

import "github.com/shopspring/decimal"

// Money is the currency representation used across billing and outsourcing.
type Money = decimal.Decimal

// Zero is the zero amount.
var Zero = decimal.Zero
