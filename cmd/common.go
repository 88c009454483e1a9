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
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/valpere/zonerefine/internal"
	"github.com/valpere/zonerefine/internal/markdown"
	"github.com/valpere/zonerefine/internal/orchestrator"
)

const stdinSource = "-"

// loadInput resolves the text to refine. Priority: input file, positional
// argument, stdin. Markdown files are flattened to plain prose.
func loadInput(path string, args []string, stdin io.Reader) (text, source string, err error) {
	switch {
	case path != "":
		data, err := os.ReadFile(path)
		if err != nil {
			return "", "", fmt.Errorf("failed to read input file: %w", err)
		}
		if markdown.IsMarkdownFile(path) {
			return markdown.ToPlainText(data), path, nil
		}
		return string(data), path, nil
	case len(args) > 0:
		return args[0], "argument", nil
	default:
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), stdinSource, nil
	}
}

// writeOutput writes text to path, creating parent directories as needed.
func writeOutput(path, text string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}

func newReport(source string, result *orchestrator.Result, withEvents bool) internal.RunReport {
	report := internal.RunReport{
		ID:        uuid.New().String(),
		Source:    source,
		Timestamp: time.Now().UTC(),
		Cycles:    result.Cycles,
		FinalText: result.FinalText,
		Metrics:   result.Metrics,
		Zones:     result.Zones,
	}
	if withEvents {
		report.Events = result.Events
	}
	return report
}

// encodeReport writes report to w in the machine-readable format.
func encodeReport(w io.Writer, format string, report internal.RunReport) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(report); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported report format %q", format)
	}
}
