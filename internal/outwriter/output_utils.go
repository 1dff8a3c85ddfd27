package outwriter

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/mmmkit/decomp/internal/contract"
)

// missingValue is shown in tables where a value is absent.
const missingValue = "-"

// writeWithFile handles the common pattern of opening a file, writing to it, and cleaning up.
// It accepts a writer function that takes an io.Writer and returns an error.
func writeWithFile(outputFile string, writer func(io.Writer) error, successMsg string) error {
	file, err := contract.SelectOutputFile(outputFile)
	if err != nil {
		return err
	}
	// Only close if it's not stdout
	if file != os.Stdout {
		defer func() { _ = file.Close() }()
	}

	if err := writer(file); err != nil {
		return err
	}

	if file != os.Stdout {
		_, _ = fmt.Fprintf(os.Stderr, "💾 %s to %s\n", successMsg, outputFile)
	}
	return nil
}

// writeJSON is a generic JSON encoder that handles indentation consistently.
func writeJSON(w io.Writer, data any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

// writeCSVWithHeader handles the common pattern of creating a CSV writer,
// writing a header, and writing data rows.
func writeCSVWithHeader(w io.Writer, header []string, writeRows func(*csv.Writer) error) error {
	csvWriter := csv.NewWriter(w)

	if err := csvWriter.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	if err := writeRows(csvWriter); err != nil {
		return err
	}

	csvWriter.Flush()
	return csvWriter.Error()
}

// createFormatters creates the common formatter closures used across multiple output types.
// fmtOpt renders nil as missing.
func createFormatters(precision int) (fmtFloat func(float64) string, fmtOpt func(*float64, string) string) {
	fmtFloat = func(v float64) string {
		return strconv.FormatFloat(v, 'f', precision, 64)
	}
	fmtOpt = func(v *float64, missing string) string {
		if v == nil {
			return missing
		}
		return fmtFloat(*v)
	}
	return fmtFloat, fmtOpt
}

// colorFuncs returns the increase/decrease/neutral painters, or plain
// formatting when colours are disabled.
func colorFuncs(useColors bool) (up, down, neutral func(...any) string) {
	if !useColors {
		return fmt.Sprint, fmt.Sprint, fmt.Sprint
	}
	return contract.IncreaseColor.SprintFunc(), contract.DecreaseColor.SprintFunc(), contract.NeutralColor.SprintFunc()
}

// swatch renders a small block in the given hex colour.
func swatch(hex string, useColors bool) string {
	if !useColors {
		return ""
	}
	r, g, b, ok := parseHexColor(hex)
	if !ok {
		return ""
	}
	return color.RGB(r, g, b).Sprint("██")
}

// parseHexColor parses #RRGGBB.
func parseHexColor(hex string) (r, g, b int, ok bool) {
	s := strings.TrimPrefix(hex, "#")
	if len(s) != 6 {
		return 0, 0, 0, false
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, 0, 0, false
	}
	return int(v >> 16 & 0xff), int(v >> 8 & 0xff), int(v & 0xff), true
}
