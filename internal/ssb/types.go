package ssb

// Dataset is the json-stat2 body returned by the StatBank table endpoint.
// Value entries are numbers or null; some tables emit numeric strings, so
// the slice is left untyped and coerced downstream.
type Dataset struct {
	Label     string               `json:"label"`
	Source    string               `json:"source"`
	Updated   string               `json:"updated"`
	Dimension map[string]Dimension `json:"dimension"`
	Value     []any                `json:"value"`
}

// Dimension describes one axis of the cube.
type Dimension struct {
	Label    string   `json:"label"`
	Category Category `json:"category"`
}

// Category maps axis codes to their flattening position and, when the
// table supplies them, to human-readable labels.
type Category struct {
	Index map[string]int    `json:"index"`
	Label map[string]string `json:"label"`
}
