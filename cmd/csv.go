/*
Copyright © 2025 Valentyn Solomko <valentyn.solomko@gmail.com>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/valpere/zonerefine/internal/orchestrator"
)

var (
	csvInputFile  string
	csvOutputFile string
	csvColumns    []int
	csvHeader     bool
)

var csvCmd = &cobra.Command{
	Use:   "csv",
	Short: "Refine columns of a CSV file",
	Long: `Refine one or more columns in a CSV file.

By default all columns are refined. Use -l to select specific columns
(0-indexed). The flag may be repeated to select multiple columns.
With --header the first row is copied through unchanged.

Example:
  zonerefine refine csv -i data.csv -o out.csv -l 1 -l 3 --header`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if csvInputFile == csvOutputFile {
			return fmt.Errorf("input file and output file cannot be the same")
		}

		f, err := os.Open(csvInputFile)
		if err != nil {
			return fmt.Errorf("failed to open input CSV: %w", err)
		}
		defer f.Close()

		records, err := csv.NewReader(f).ReadAll()
		if err != nil {
			return fmt.Errorf("failed to read CSV: %w", err)
		}

		if len(records) == 0 {
			return fmt.Errorf("CSV file is empty")
		}

		orch := orchestrator.New(nil, orchestrator.OrchestratorConfig{
			MaxCycles:     appConfig.MaxCycles,
			ProtectMarkup: appConfig.ProtectMarkup,
		}, logger.Named("orchestrator"))

		out, stats := refineRecords(orch, records, csvColumns, csvHeader)

		if err := os.MkdirAll(filepath.Dir(csvOutputFile), 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
		outFile, err := os.Create(csvOutputFile)
		if err != nil {
			return fmt.Errorf("failed to create output CSV: %w", err)
		}
		defer outFile.Close()

		writer := csv.NewWriter(outFile)
		if err := writer.WriteAll(out); err != nil {
			return fmt.Errorf("failed to write output CSV: %w", err)
		}
		if err := writer.Error(); err != nil {
			return fmt.Errorf("failed to flush output CSV: %w", err)
		}

		logger.Info("csv refined",
			zap.String("path", csvOutputFile),
			zap.Int("cells", stats.cells),
			zap.Int("changes", stats.changes),
			zap.Int("pending", stats.pending))

		fmt.Fprintf(cmd.OutOrStdout(), "CSV refined successfully: %s (%d cells, %d changes)\n", csvOutputFile, stats.cells, stats.changes)
		if stats.pending > 0 {
			fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %d cells still had unrefined zones after %d cycles\n", stats.pending, appConfig.MaxCycles)
		}
		return nil
	},
}

type csvStats struct {
	cells   int
	changes int
	pending int
}

// refineRecords returns a copy of records with the selected columns run
// through orch. Empty cells are left as they are.
func refineRecords(orch *orchestrator.Orchestrator, records [][]string, columns []int, header bool) ([][]string, csvStats) {
	colSet := make(map[int]bool, len(columns))
	for _, c := range columns {
		colSet[c] = true
	}
	refineAll := len(columns) == 0

	var stats csvStats
	out := make([][]string, len(records))
	for rowIdx, row := range records {
		out[rowIdx] = make([]string, len(row))
		copy(out[rowIdx], row)

		if header && rowIdx == 0 {
			continue
		}

		for colIdx, cell := range row {
			if !refineAll && !colSet[colIdx] {
				continue
			}
			if cell == "" {
				continue
			}

			result := orch.Run(cell)
			out[rowIdx][colIdx] = result.FinalText

			stats.cells++
			stats.changes += result.Metrics.TotalChanges
			for _, d := range result.Zones {
				if !d.Refined {
					stats.pending++
					break
				}
			}
		}
	}
	return out, stats
}

func init() {
	refineCmd.AddCommand(csvCmd)

	csvCmd.Flags().StringVarP(&csvInputFile, "input", "i", "", "Input CSV file (required)")
	csvCmd.Flags().StringVarP(&csvOutputFile, "output", "o", "", "Output CSV file (required)")
	csvCmd.Flags().IntSliceVarP(&csvColumns, "column", "l", nil, "Column index to refine (0-indexed, repeatable; default: all columns)")
	csvCmd.Flags().BoolVar(&csvHeader, "header", false, "Treat the first row as a header and leave it unchanged")

	csvCmd.MarkFlagRequired("input")
	csvCmd.MarkFlagRequired("output")
}
