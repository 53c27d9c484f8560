package models

// Record is one row of the unpivoted unemployment table:
// one (year, gender, age group) combination and its person count.
// Count is nil when the source value is missing or unparseable.
type Record struct {
	Year     int      `json:"year"`
	Gender   string   `json:"gender"`
	AgeGroup string   `json:"age_group"`
	Count    *float64 `json:"count"`
}

// View is a named, read-only slice of the table prepared for one
// dashboard section (chart + insight panel).
type View struct {
	Name    string   `json:"name"`
	Title   string   `json:"title"`
	SplitBy string   `json:"split_by,omitempty"` // "gender" or "age_group"; empty for single-series views
	Columns []string `json:"columns"`            // columns relevant to the insight prompt
	Records []Record `json:"records"`
}

// Empty reports whether the view matched no rows.
func (v View) Empty() bool { return len(v.Records) == 0 }

// ChartConfig is a render-ready line chart description for the frontend.
type ChartConfig struct {
	ChartType  string        `json:"chartType"`
	Title      string        `json:"title"`
	XAxis      string        `json:"xAxis"`
	YAxis      string        `json:"yAxis"`
	Series     []ChartSeries `json:"series"`
	Colors     []string      `json:"colors,omitempty"`
	ShowLegend bool          `json:"showLegend"`
}

// ChartSeries is one line in a chart.
type ChartSeries struct {
	Name string       `json:"name"`
	Data []ChartPoint `json:"data"`
}

// ChartPoint is a single (year, count) point.
type ChartPoint struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}
