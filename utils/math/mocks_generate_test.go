// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package math

//go:generate go run go.uber.org/mock/mockgen@v0.5 -package=${GOPACKAGE}mock -source=numeric.go -destination=${GOPACKAGE}mock/arithmetic.go -mock_names=Arithmetic=Arithmetic -exclude_interfaces=Number
