package expr

import (
	"errors"
	"testing"

	"refinebench/pkg/core"

	"github.com/stretchr/testify/require"
)

func testSchema() core.Schema {
	return core.DefaultSchema()
}

func TestCompileAndEvaluateCanonicalExpression(t *testing.T) {
	p, err := Compile("(color == 'red' and weight > 5) or (size == 'L' and weight > 7)", testSchema())
	require.NoError(t, err)

	cases := []struct {
		features core.Features
		want     bool
	}{
		{core.Features{"size": "M", "color": "red", "weight": 6.0}, true},
		{core.Features{"size": "M", "color": "red", "weight": 5.0}, false},
		{core.Features{"size": "L", "color": "blue", "weight": 8.0}, true},
		{core.Features{"size": "L", "color": "blue", "weight": 7.0}, false},
		{core.Features{"size": "S", "color": "green", "weight": 9.0}, false},
	}
	for _, tc := range cases {
		got, err := p.Evaluate(tc.features)
		require.NoError(t, err)
		require.Equal(t, tc.want, got, "features %v", tc.features)
	}
}

func TestEvaluateIgnoresUnknownKeys(t *testing.T) {
	p, err := Compile("weight >= 5", testSchema())
	require.NoError(t, err)

	got, err := p.Evaluate(core.Features{"weight": 5.0, "extra": "ignored", "n": 3})
	require.NoError(t, err)
	require.True(t, got)
}

func TestNotAndPrecedence(t *testing.T) {
	// "and" binds tighter than "or".
	p, err := Compile("color == 'red' or color == 'blue' and weight < 1", testSchema())
	require.NoError(t, err)

	got, err := p.Evaluate(core.Features{"color": "red", "weight": 9.0})
	require.NoError(t, err)
	require.True(t, got)

	got, err = p.Evaluate(core.Features{"color": "blue", "weight": 9.0})
	require.NoError(t, err)
	require.False(t, got)

	p, err = Compile("not (color == 'red')", testSchema())
	require.NoError(t, err)
	got, err = p.Evaluate(core.Features{"color": "green"})
	require.NoError(t, err)
	require.True(t, got)

	p, err = Compile("not not color != 'red'", testSchema())
	require.NoError(t, err)
	got, err = p.Evaluate(core.Features{"color": "red"})
	require.NoError(t, err)
	require.False(t, got)
}

func TestDoubleQuotedLiterals(t *testing.T) {
	p, err := Compile(`size == "L"`, testSchema())
	require.NoError(t, err)
	got, err := p.Evaluate(core.Features{"size": "L"})
	require.NoError(t, err)
	require.True(t, got)
}

func TestNumericOperators(t *testing.T) {
	cases := []struct {
		expression string
		weight     float64
		want       bool
	}{
		{"weight < 5", 4.9, true},
		{"weight < 5", 5.0, false},
		{"weight <= 5", 5.0, true},
		{"weight > 5", 5.0, false},
		{"weight >= 5", 5.0, true},
		{"weight == 5", 5.0, true},
		{"weight != 5", 5.0, false},
		{"weight > -1.5", 0.0, true},
	}
	for _, tc := range cases {
		p, err := Compile(tc.expression, testSchema())
		require.NoError(t, err, tc.expression)
		got, err := p.Evaluate(core.Features{"weight": tc.weight})
		require.NoError(t, err, tc.expression)
		require.Equal(t, tc.want, got, tc.expression)
	}
}

func TestCompileMalformed(t *testing.T) {
	cases := []string{
		"",
		"(color == 'red'",
		"color == 'red')",
		"shape == 'round'",  // unknown feature
		"color = 'red'",     // assignment-style operator
		"color == 'red' &&", // disallowed token
		"weight > ",
		"and weight > 5",
		"weight > 5 weight < 7", // trailing input
		"color == 'red",         // unterminated string
		"weight > 1.2.3",
		"color.lower() == 'red'", // no attribute access or calls
	}
	for _, expression := range cases {
		_, err := Compile(expression, testSchema())
		require.Error(t, err, expression)
		require.True(t, errors.Is(err, core.ErrMalformedExpression), expression)
	}
}

func TestCompileTypeMismatch(t *testing.T) {
	cases := []string{
		"color > 'red'", // relational on categorical
		"size <= 'L'",
		"weight == 'big'", // string literal on numeric
		"color == 5",      // number literal on categorical
	}
	for _, expression := range cases {
		_, err := Compile(expression, testSchema())
		require.Error(t, err, expression)
		require.True(t, errors.Is(err, core.ErrTypeMismatch), expression)
	}
}

func TestEvaluateMissingFeature(t *testing.T) {
	p, err := Compile("weight > 5 and color == 'red'", testSchema())
	require.NoError(t, err)

	_, err = p.Evaluate(core.Features{"weight": 6.0})
	require.Error(t, err)
	require.True(t, errors.Is(err, core.ErrSchemaMismatch))
}

func TestEvaluateRuntimeTypeMismatch(t *testing.T) {
	p, err := Compile("weight > 5", testSchema())
	require.NoError(t, err)

	_, err = p.Evaluate(core.Features{"weight": "heavy"})
	require.Error(t, err)
	require.True(t, errors.Is(err, core.ErrTypeMismatch))
}

func TestEvaluateAcceptsIntegerValues(t *testing.T) {
	p, err := Compile("weight >= 5", testSchema())
	require.NoError(t, err)

	got, err := p.Evaluate(core.Features{"weight": 7})
	require.NoError(t, err)
	require.True(t, got)
}
