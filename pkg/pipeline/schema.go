package pipeline

// Schema names the feature columns and the regression target of a dataset.
type Schema struct {
	Features []string
	Target   string
}

// DefaultSchema regresses name on value and age.
func DefaultSchema() Schema {
	return Schema{Features: []string{"value", "age"}, Target: "name"}
}
