package engine

import (
	"strconv"

	"sladrehank/internal/models"
)

// Default color palette for chart series.
var defaultColors = []string{
	"#4F46E5", "#10B981", "#F59E0B", "#EF4444", "#8B5CF6",
	"#06B6D4", "#EC4899", "#84CC16", "#F97316", "#6366F1",
}

// BuildChart produces a line chart config from a view. One series per
// split value (gender or age group); a single series for the overall view.
// Missing counts are skipped so the line shows a gap rather than a zero.
// An empty view yields nil; the caller reports the view warning instead.
func BuildChart(view models.View) *models.ChartConfig {
	if view.Empty() {
		return nil
	}

	config := &models.ChartConfig{
		ChartType:  "line",
		Title:      view.Title,
		XAxis:      "Year",
		YAxis:      "Unemployed persons",
		ShowLegend: view.SplitBy != "",
	}

	if view.SplitBy == "" {
		config.Series = buildSingleSeries(view)
	} else {
		config.Series = buildSplitSeries(view)
	}
	config.Colors = assignColors(len(config.Series))
	return config
}

func buildSingleSeries(view models.View) []models.ChartSeries {
	points := make([]models.ChartPoint, 0, len(view.Records))
	for _, r := range view.Records {
		if r.Count == nil {
			continue
		}
		points = append(points, models.ChartPoint{
			Label: strconv.Itoa(r.Year),
			Value: *r.Count,
		})
	}
	return []models.ChartSeries{{Name: view.Title, Data: points}}
}

// buildSplitSeries groups records by the split dimension. The table is
// year-ordered, so appending in record order keeps each series
// chronological; series order follows first appearance, which matches the
// axis order of the source table.
func buildSplitSeries(view models.View) []models.ChartSeries {
	order := make([]string, 0, 4)
	bySplit := make(map[string][]models.ChartPoint)

	for _, r := range view.Records {
		key := splitValue(r, view.SplitBy)
		if _, seen := bySplit[key]; !seen {
			order = append(order, key)
			bySplit[key] = make([]models.ChartPoint, 0, 10)
		}
		if r.Count == nil {
			continue
		}
		bySplit[key] = append(bySplit[key], models.ChartPoint{
			Label: strconv.Itoa(r.Year),
			Value: *r.Count,
		})
	}

	series := make([]models.ChartSeries, 0, len(order))
	for _, key := range order {
		series = append(series, models.ChartSeries{Name: key, Data: bySplit[key]})
	}
	return series
}

func splitValue(r models.Record, splitBy string) string {
	if splitBy == "gender" {
		return r.Gender
	}
	return r.AgeGroup
}

func assignColors(count int) []string {
	colors := make([]string, count)
	for i := range colors {
		colors[i] = defaultColors[i%len(defaultColors)]
	}
	return colors
}
