package core

// Dataset is an ordered sequence of examples. Summary statistics are
// derived on demand so they can never drift from the examples themselves.
type Dataset struct {
	Examples []Example `json:"examples" yaml:"examples"`
}

// SplitSummary holds per-split counts and the crowd error rate, the
// fraction of examples whose crowd label disagrees with the oracle.
type SplitSummary struct {
	Count          int     `json:"count" yaml:"count"`
	CrowdErrors    int     `json:"crowd_errors" yaml:"crowd_errors"`
	CrowdErrorRate float64 `json:"crowd_error_rate" yaml:"crowd_error_rate"`
}

// Summary aggregates dataset counts per split.
type Summary struct {
	Total  int                    `json:"total" yaml:"total"`
	Splits map[Split]SplitSummary `json:"splits" yaml:"splits"`
}

// Summary computes total and per-split counts plus crowd error rates.
func (d Dataset) Summary() Summary {
	splits := make(map[Split]SplitSummary, 3)
	for _, s := range []Split{SplitTrain, SplitVal, SplitTest} {
		splits[s] = SplitSummary{}
	}
	for _, ex := range d.Examples {
		entry := splits[ex.Split]
		entry.Count++
		if ex.CrowdLabel != ex.OracleLabel {
			entry.CrowdErrors++
		}
		splits[ex.Split] = entry
	}
	for split, entry := range splits {
		if entry.Count > 0 {
			entry.CrowdErrorRate = float64(entry.CrowdErrors) / float64(entry.Count)
		}
		splits[split] = entry
	}
	return Summary{Total: len(d.Examples), Splits: splits}
}

// BySplit returns the examples belonging to one split, in dataset order.
func (d Dataset) BySplit(split Split) []Example {
	var out []Example
	for _, ex := range d.Examples {
		if ex.Split == split {
			out = append(out, ex)
		}
	}
	return out
}
