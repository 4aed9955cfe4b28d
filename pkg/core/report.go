package core

// Confusion tallies one predictor against oracle labels on one split.
// The four counts always sum to the split's example count.
type Confusion struct {
	TP int `json:"tp" yaml:"tp"`
	TN int `json:"tn" yaml:"tn"`
	FP int `json:"fp" yaml:"fp"`
	FN int `json:"fn" yaml:"fn"`
}

// Add classifies one (predicted, actual) pair into the tally.
func (c *Confusion) Add(predicted, actual bool) {
	switch {
	case predicted && actual:
		c.TP++
	case !predicted && !actual:
		c.TN++
	case predicted && !actual:
		c.FP++
	default:
		c.FN++
	}
}

// Total is the number of classified examples.
func (c Confusion) Total() int {
	return c.TP + c.TN + c.FP + c.FN
}

// Accuracy is (TP+TN)/total, or 0 for an empty tally.
func (c Confusion) Accuracy() float64 {
	total := c.Total()
	if total == 0 {
		return 0
	}
	return float64(c.TP+c.TN) / float64(total)
}

// Precision is TP/(TP+FP), or 0 when no positives were predicted.
func (c Confusion) Precision() float64 {
	if c.TP+c.FP == 0 {
		return 0
	}
	return float64(c.TP) / float64(c.TP+c.FP)
}

// Recall is TP/(TP+FN), or 0 when no positives exist.
func (c Confusion) Recall() float64 {
	if c.TP+c.FN == 0 {
		return 0
	}
	return float64(c.TP) / float64(c.TP+c.FN)
}

// F1 is the harmonic mean of precision and recall, defined as 0 when
// precision+recall is 0 so single-example splits never divide by zero.
func (c Confusion) F1() float64 {
	p := c.Precision()
	r := c.Recall()
	if p+r == 0 {
		return 0
	}
	return 2 * p * r / (p + r)
}

// MetricsReport compares the crowd and refined predictors against the
// oracle. Headline fields cover the test split; train_* fields and the
// subpopulation metrics cover the train split. The mix is deliberate:
// the train split characterizes the crowd's failure modes, the test split
// carries the headline comparison. A report is a pure function of
// (dataset, expression) and is never mutated after construction.
type MetricsReport struct {
	CountTest                      int       `json:"count_test" yaml:"count_test"`
	CrowdAccuracy                  float64   `json:"crowd_accuracy" yaml:"crowd_accuracy"`
	RefinedAccuracy                float64   `json:"refined_accuracy" yaml:"refined_accuracy"`
	AccuracyDelta                  float64   `json:"accuracy_delta" yaml:"accuracy_delta"`
	CrowdF1                        float64   `json:"crowd_f1" yaml:"crowd_f1"`
	RefinedF1                      float64   `json:"refined_f1" yaml:"refined_f1"`
	F1Delta                        float64   `json:"f1_delta" yaml:"f1_delta"`
	CrowdConfusion                 Confusion `json:"crowd_confusion" yaml:"crowd_confusion"`
	RefinedConfusion               Confusion `json:"refined_confusion" yaml:"refined_confusion"`
	SubpopulationErrorCount        int       `json:"subpopulation_error_count" yaml:"subpopulation_error_count"`
	RefinedAccuracyOnCrowdMistakes float64   `json:"refined_accuracy_on_crowd_mistakes" yaml:"refined_accuracy_on_crowd_mistakes"`
	TrainSize                      int       `json:"train_size" yaml:"train_size"`
	TrainCrowdErrors               int       `json:"train_crowd_errors" yaml:"train_crowd_errors"`
	TrainErrorRate                 float64   `json:"train_error_rate" yaml:"train_error_rate"`
}
