package core

// FeatureType classifies a feature for expression type checking.
type FeatureType int

const (
	FeatureCategorical FeatureType = iota
	FeatureNumeric
)

// Schema maps feature names to their types.
type Schema map[string]FeatureType

// DefaultSchema is the feature schema produced by the generator:
// size and color are categorical, weight is numeric.
func DefaultSchema() Schema {
	return Schema{
		"size":   FeatureCategorical,
		"color":  FeatureCategorical,
		"weight": FeatureNumeric,
	}
}

// InferSchema derives a schema from a feature mapping, typing strings as
// categorical and numbers as numeric. Values of any other type are skipped.
func InferSchema(features Features) Schema {
	schema := make(Schema, len(features))
	for name, value := range features {
		switch value.(type) {
		case string:
			schema[name] = FeatureCategorical
		case float64, float32, int, int64:
			schema[name] = FeatureNumeric
		}
	}
	return schema
}
