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
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/valpere/zonerefine/internal/orchestrator"
	"github.com/valpere/zonerefine/internal/validator"
)

var (
	inputFile  string
	outputFile string
	showEvents bool
)

var refineCmd = &cobra.Command{
	Use:   "refine [text]",
	Short: "Refine prose zone by zone",
	Long: `Refine prose by splitting it into zones and correcting each zone until
it is clean.

Input is read from --input, the first argument, or stdin, in that order.
Markdown files (.md, .markdown) are flattened to plain text first.

Rules, in priority order:
  - add period             text has no end punctuation
  - fix spacing            runs of two or more spaces
  - fix contractions       im, dont, cant, wont, isnt, wasnt, ...
  - capitalize first       lowercase first character
  - capitalize name        "my name is john", "i am mary"
  - add compound comma     "..., but", "..., so", "..., yet"
  - capitalize after period

Example:
  zonerefine refine "i dont know.  its fine"
  zonerefine refine -i notes.md -o notes.txt --format json --events`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if inputFile != "" && inputFile == outputFile {
			return fmt.Errorf("input file and output file cannot be the same")
		}

		text, source, err := loadInput(inputFile, args, cmd.InOrStdin())
		if err != nil {
			return err
		}

		if err := validator.New().CheckEnglish(text); err != nil {
			if appConfig.RequireEnglish {
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %v\n", err)
		}

		orch := orchestrator.New(nil, orchestrator.OrchestratorConfig{
			MaxCycles:     appConfig.MaxCycles,
			ProtectMarkup: appConfig.ProtectMarkup,
		}, logger.Named("orchestrator"))

		result := orch.Run(text)

		if outputFile != "" {
			if err := writeOutput(outputFile, result.FinalText); err != nil {
				return err
			}
			logger.Info("refined text written", zap.String("path", outputFile))
		}

		report := newReport(source, result, showEvents)
		if appConfig.Format == "text" {
			return renderText(cmd.OutOrStdout(), report)
		}
		return encodeReport(cmd.OutOrStdout(), appConfig.Format, report)
	},
}

func init() {
	rootCmd.AddCommand(refineCmd)

	refineCmd.Flags().StringVarP(&inputFile, "input", "i", "", "Input file to refine (default: argument or stdin)")
	refineCmd.Flags().StringVarP(&outputFile, "output", "o", "", "Write the refined text to this file")
	refineCmd.Flags().BoolVar(&showEvents, "events", false, "Include the zone traversal log in the report")

	refineCmd.Flags().String("format", "text", "Report format: text, json or yaml")
	refineCmd.PersistentFlags().Int("max-cycles", orchestrator.DefaultMaxCycles, "Maximum sweeps over unrefined zones")
	refineCmd.PersistentFlags().Bool("protect", true, "Shield URLs, e-mail addresses and code from the rules")
	refineCmd.Flags().Bool("require-english", false, "Fail instead of warning when the input is not English")

	_ = v.BindPFlag("format", refineCmd.Flags().Lookup("format"))
	_ = v.BindPFlag("max_cycles", refineCmd.PersistentFlags().Lookup("max-cycles"))
	_ = v.BindPFlag("protect_markup", refineCmd.PersistentFlags().Lookup("protect"))
	_ = v.BindPFlag("require_english", refineCmd.Flags().Lookup("require-english"))
}
