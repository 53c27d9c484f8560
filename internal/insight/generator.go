package insight

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"sladrehank/internal/models"
)

// Notices returned in place of generated text. All failure paths of the
// generator resolve to a human-readable string; it never returns an error.
const (
	MissingKeyNotice = "Provide a Google Gemini API key to generate insights."
	NoDataNotice     = "No data available for this view."
)

// Generator turns a dashboard view into a natural-language summary via a
// single-turn Gemini call.
type Generator struct {
	client *GeminiClient
}

// NewGenerator wraps a Gemini client.
func NewGenerator(client *GeminiClient) *Generator {
	return &Generator{client: client}
}

// Generate returns the insight text for a view. With an empty credential it
// returns MissingKeyNotice without touching the network; any call failure
// is reported as descriptive text substituted for the insight.
func (g *Generator) Generate(ctx context.Context, view models.View, apiKey string) string {
	if strings.TrimSpace(apiKey) == "" {
		return MissingKeyNotice
	}
	if view.Empty() {
		return NoDataNotice
	}

	prompt := InstructionFor(view.Name) + "\n\nData:\n" + FormatTable(view)

	text, err := g.client.GenerateContent(ctx, apiKey, prompt)
	if err != nil {
		msg := fmt.Sprintf("Could not generate insight: %v", err)
		if strings.Contains(err.Error(), "API key not valid") {
			msg += "\nPlease check that the API key is correct."
		}
		return msg
	}
	return text
}

// FormatTable serializes the view's relevant columns as an aligned
// plain-text table for the prompt. Missing counts render as "-".
func FormatTable(view models.View) string {
	var b strings.Builder
	w := tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)

	header := make([]string, len(view.Columns))
	for i, col := range view.Columns {
		header[i] = columnHeader(col)
	}
	fmt.Fprintln(w, strings.Join(header, "\t"))

	for _, r := range view.Records {
		fields := make([]string, len(view.Columns))
		for i, col := range view.Columns {
			fields[i] = columnValue(r, col)
		}
		fmt.Fprintln(w, strings.Join(fields, "\t"))
	}

	w.Flush()
	return strings.TrimRight(b.String(), "\n")
}

func columnHeader(col string) string {
	switch col {
	case "year":
		return "Year"
	case "gender":
		return "Gender"
	case "age_group":
		return "Age group"
	case "count":
		return "Unemployed"
	default:
		return col
	}
}

func columnValue(r models.Record, col string) string {
	switch col {
	case "year":
		return strconv.Itoa(r.Year)
	case "gender":
		return r.Gender
	case "age_group":
		return r.AgeGroup
	case "count":
		if r.Count == nil {
			return "-"
		}
		return strconv.FormatFloat(*r.Count, 'f', -1, 64)
	default:
		return ""
	}
}
