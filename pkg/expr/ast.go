package expr

import (
	"fmt"

	"refinebench/pkg/core"
)

// node is one variant of the expression tree. The tree only ever reads
// from a feature mapping; there is no call, attribute, or assignment node,
// which is what keeps untrusted expressions safe to evaluate.
type node interface {
	eval(features core.Features) (bool, error)
}

type andNode struct {
	left, right node
}

func (n andNode) eval(features core.Features) (bool, error) {
	left, err := n.left.eval(features)
	if err != nil {
		return false, err
	}
	if !left {
		return false, nil
	}
	return n.right.eval(features)
}

type orNode struct {
	left, right node
}

func (n orNode) eval(features core.Features) (bool, error) {
	left, err := n.left.eval(features)
	if err != nil {
		return false, err
	}
	if left {
		return true, nil
	}
	return n.right.eval(features)
}

type notNode struct {
	operand node
}

func (n notNode) eval(features core.Features) (bool, error) {
	value, err := n.operand.eval(features)
	if err != nil {
		return false, err
	}
	return !value, nil
}

// comparisonNode compares one feature against a literal. The feature type
// and operator compatibility were checked at compile time; eval re-checks
// the runtime value because feature mappings come from loaded files.
type comparisonNode struct {
	feature string
	op      string
	typ     core.FeatureType
	str     string
	num     float64
}

func (n comparisonNode) eval(features core.Features) (bool, error) {
	value, ok := features[n.feature]
	if !ok {
		return false, fmt.Errorf("%w: feature %q not present in example", core.ErrSchemaMismatch, n.feature)
	}

	if n.typ == core.FeatureCategorical {
		s, ok := value.(string)
		if !ok {
			return false, fmt.Errorf("%w: feature %q holds %T, expected string", core.ErrTypeMismatch, n.feature, value)
		}
		if n.op == "==" {
			return s == n.str, nil
		}
		return s != n.str, nil
	}

	f, ok := toFloat(value)
	if !ok {
		return false, fmt.Errorf("%w: feature %q holds %T, expected number", core.ErrTypeMismatch, n.feature, value)
	}
	switch n.op {
	case "==":
		return f == n.num, nil
	case "!=":
		return f != n.num, nil
	case "<":
		return f < n.num, nil
	case "<=":
		return f <= n.num, nil
	case ">":
		return f > n.num, nil
	default: // ">="
		return f >= n.num, nil
	}
}

func toFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	}
	return 0, false
}
