// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package average

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/moraiseverton/moving-average/utils/math"
)

const (
	Int NumberType = iota
	Float
	Decimal
)

var errUnknownNumberType = errors.New("unknown number type")

// NumberType is the type elements are parsed into and averaged as.
type NumberType int

func ToNumberType(s string) (NumberType, error) {
	switch strings.ToLower(s) {
	case "int":
		return Int, nil
	case "float":
		return Float, nil
	case "decimal":
		return Decimal, nil
	default:
		return Int, fmt.Errorf("%w: %q", errUnknownNumberType, s)
	}
}

func (t NumberType) String() string {
	switch t {
	case Int:
		return "int"
	case Float:
		return "float"
	case Decimal:
		return "decimal"
	default:
		return "unknown"
	}
}

// codec binds a numeric type to its textual form and arithmetic.
type codec[T any] struct {
	ops    math.Arithmetic[T]
	parse  func(string) (T, error)
	format func(T) string
}

var (
	intCodec = codec[int64]{
		ops: math.NativeArithmetic[int64]{},
		parse: func(s string) (int64, error) {
			return strconv.ParseInt(s, 10, 64)
		},
		format: func(v int64) string {
			return strconv.FormatInt(v, 10)
		},
	}
	floatCodec = codec[float64]{
		ops: math.NativeArithmetic[float64]{},
		parse: func(s string) (float64, error) {
			return strconv.ParseFloat(s, 64)
		},
		format: func(v float64) string {
			return strconv.FormatFloat(v, 'g', -1, 64)
		},
	}
	decimalCodec = codec[decimal.Decimal]{
		ops:   math.DecimalArithmetic{},
		parse: decimal.NewFromString,
		format: func(v decimal.Decimal) string {
			return v.String()
		},
	}
)
