package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/mmmkit/decomp/internal/contract"
	"github.com/mmmkit/decomp/schema"
	"github.com/olekukonko/tablewriter"
)

// PrintColorAssignments outputs colour assignments to stdout or the configured output file.
func PrintColorAssignments(assignments []schema.ColorAssignment, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return WriteColorAssignments(w, assignments, cfg)
	}, fmt.Sprintf("Wrote %s colors", cfg.Output))
}

// WriteColorAssignments writes colour assignments in the configured output format.
func WriteColorAssignments(w io.Writer, assignments []schema.ColorAssignment, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeJSON(w, assignments)
	case schema.CSVOut:
		return writeCSVWithHeader(w, []string{"key", "color", "source"}, func(cw *csv.Writer) error {
			for _, a := range assignments {
				if err := cw.Write([]string{a.Key, a.Color, a.Source}); err != nil {
					return err
				}
			}
			return nil
		})
	case schema.ParquetOut:
		return fmt.Errorf("parquet output is not supported for colors")
	}

	table := tablewriter.NewWriter(w)
	defer func() { _ = table.Close() }()
	table.Header([]string{"Key", "Color", "Source", ""})

	data := make([][]string, 0, len(assignments))
	for _, a := range assignments {
		data = append(data, []string{a.Key, a.Color, a.Source, swatch(a.Color, cfg.UseColors)})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}

// PrintGroupSuggestions outputs group suggestions to stdout or the configured output file.
func PrintGroupSuggestions(assignments []schema.GroupAssignment, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return WriteGroupSuggestions(w, assignments, cfg)
	}, fmt.Sprintf("Wrote %s group suggestions", cfg.Output))
}

// WriteGroupSuggestions writes group suggestions in the configured output format.
func WriteGroupSuggestions(w io.Writer, assignments []schema.GroupAssignment, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeJSON(w, assignments)
	case schema.CSVOut:
		return writeCSVWithHeader(w, []string{"variable", "group"}, func(cw *csv.Writer) error {
			for _, a := range assignments {
				if err := cw.Write([]string{a.Variable, a.Group}); err != nil {
					return err
				}
			}
			return nil
		})
	case schema.ParquetOut:
		return fmt.Errorf("parquet output is not supported for group suggestions")
	}

	table := tablewriter.NewWriter(w)
	defer func() { _ = table.Close() }()
	table.Header([]string{"Variable", "Group"})

	data := make([][]string, 0, len(assignments))
	for _, a := range assignments {
		data = append(data, []string{a.Variable, a.Group})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}
