package core

// Split names a dataset partition.
type Split string

const (
	SplitTrain Split = "train"
	SplitVal   Split = "val"
	SplitTest  Split = "test"
)

// Valid reports whether s is one of the three known splits.
func (s Split) Valid() bool {
	switch s {
	case SplitTrain, SplitVal, SplitTest:
		return true
	}
	return false
}

// Features maps a feature name to its value. Categorical features hold
// strings, numeric features hold float64 (the JSON number type).
type Features map[string]any

// Example is a single labeled record: a feature vector, the biased crowd
// label, and the ground-truth oracle label.
type Example struct {
	ID          string   `json:"id" yaml:"id"`
	Split       Split    `json:"split" yaml:"split"`
	Features    Features `json:"features" yaml:"features"`
	CrowdLabel  bool     `json:"crowd_label" yaml:"crowd_label"`
	OracleLabel bool     `json:"oracle_label" yaml:"oracle_label"`
}
