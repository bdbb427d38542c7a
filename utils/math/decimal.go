// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package math

import "github.com/shopspring/decimal"

var _ Arithmetic[decimal.Decimal] = DecimalArithmetic{}

// DecimalArithmetic averages arbitrary precision decimals.
type DecimalArithmetic struct {
	// Precision is the number of decimal places kept by a division. Zero means
	// decimal.DivisionPrecision.
	Precision int32
}

func (DecimalArithmetic) InitialResult() decimal.Decimal {
	return decimal.Zero
}

func (DecimalArithmetic) Sum(a, b decimal.Decimal) decimal.Decimal {
	return a.Add(b)
}

func (d DecimalArithmetic) DividedByNumberOfElements(a decimal.Decimal, numberOfElements int) decimal.Decimal {
	precision := d.Precision
	if precision == 0 {
		precision = int32(decimal.DivisionPrecision)
	}
	return a.DivRound(decimal.NewFromInt(int64(numberOfElements)), precision)
}
