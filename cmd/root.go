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
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/valpere/zonerefine/internal/config"
)

var version = "0.1.0"

var (
	cfgFile string
	verbose bool

	v         = config.New()
	appConfig *config.Config
	logger    = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "zonerefine",
	Short: "Zonal prose refinement",
	Long: `A CLI application that normalizes free-form prose zone by zone.

The text is split into zones of a few sentences each. Every zone is
inspected for one defect at a time (missing end punctuation, spacing,
bare contractions, casing, compound-sentence commas) and corrected until
it is clean or the cycle budget runs out. Clean zones are never revisited.

Use "zonerefine refine --help" for refinement options.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		appConfig, err = config.Load(v, cfgFile)
		if err != nil {
			return err
		}

		logConfig := zap.NewProductionConfig()
		logConfig.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
		if appConfig.Verbose {
			logConfig.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		logger, err = logConfig.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default: ./zonerefine.yaml or ~/.config/zonerefine/zonerefine.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging of every refinement pass")

	_ = v.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}
