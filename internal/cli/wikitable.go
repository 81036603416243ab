// Copyright (c) 2025 Orafly Authors. All rights reserved.

package cli

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/orafly/orafly/internal/wikitable"
)

var wikitableCmd = &cobra.Command{
	Use:   "wikitable [file.csv]",
	Short: "Render a CSV result set as a wiki-syntax table",
	Long: `Read comma-separated records and render them in wiki table syntax.
The first record supplies the column headers, every following record one
row. Input is read from the given file, or from standard input when no
file is named.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runWikitable,
}

func runWikitable(cmd *cobra.Command, args []string) error {
	input, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	r := csv.NewReader(strings.NewReader(input))
	r.FieldsPerRecord = -1

	buf := wikitable.New()
	rows := 0
	first := true
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("reading records: %w", err)
		}

		for _, cell := range record {
			buf.Feed(cell)
		}
		if first {
			buf.Prepare()
			first = false
		} else {
			rows++
		}
	}

	logger.Debug("Rendered wiki table",
		zap.Int("columns", buf.NumColumns()),
		zap.Int("rows", rows))

	fmt.Fprint(cmd.OutOrStdout(), buf.String())
	return nil
}
