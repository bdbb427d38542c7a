// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/moraiseverton/moving-average/cmd/movingaverage/average"
)

func init() {
	cobra.EnablePrefixMatching = true
}

func main() {
	cmd := &cobra.Command{
		Use:           "movingaverage",
		Short:         "Computes moving averages of numbers",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(average.Command())

	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "movingaverage failed %v\n", err)
		os.Exit(1)
	}
}
