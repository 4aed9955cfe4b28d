package dataset

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"refinebench/pkg/core"
	"refinebench/pkg/generator"

	"github.com/stretchr/testify/require"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "examples.jsonl")

	ds, err := generator.Generate(50, generator.DefaultConfig().WithSeed(21))
	require.NoError(t, err)
	require.NoError(t, Save(path, ds))

	loaded, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, ds, loaded)
}

func TestWriteJSONLByteStable(t *testing.T) {
	ds, err := generator.Generate(20, generator.DefaultConfig().WithSeed(5))
	require.NoError(t, err)

	var first, second bytes.Buffer
	require.NoError(t, WriteJSONL(&first, ds))
	require.NoError(t, WriteJSONL(&second, ds))
	require.Equal(t, first.Bytes(), second.Bytes())
}

func TestLoadJSONArray(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "examples.json")

	content := `[
  {"id":"ex-0001","split":"train","features":{"size":"M","color":"red","weight":6},"crowd_label":true,"oracle_label":true},
  {"id":"ex-0002","split":"test","features":{"size":"S","color":"blue","weight":2},"crowd_label":false,"oracle_label":false}
]`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	ds, err := Load(path)
	require.NoError(t, err)
	require.Len(t, ds.Examples, 2)
	require.Equal(t, core.SplitTest, ds.Examples[1].Split)
	require.Equal(t, "red", ds.Examples[0].Features["color"])
	require.Equal(t, 6.0, ds.Examples[0].Features["weight"])
}

func TestLoadDetectsFormatWithoutExtension(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "examples")

	content := `{"id":"ex-0001","split":"train","features":{"size":"M","color":"red","weight":6},"crowd_label":true,"oracle_label":true}` + "\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	ds, err := Load(path)
	require.NoError(t, err)
	require.Len(t, ds.Examples, 1)
}

func TestLoadRejectsDuplicateIDs(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "examples.jsonl")

	lines := `{"id":"ex-0001","split":"train","features":{},"crowd_label":true,"oracle_label":true}
{"id":"ex-0001","split":"test","features":{},"crowd_label":false,"oracle_label":false}`
	require.NoError(t, os.WriteFile(path, []byte(lines), 0o600))

	_, err := Load(path)
	require.Error(t, err)
	require.True(t, errors.Is(err, core.ErrInvalidArgument))
}

func TestLoadRejectsUnknownSplit(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "examples.jsonl")

	line := `{"id":"ex-0001","split":"holdout","features":{},"crowd_label":true,"oracle_label":true}`
	require.NoError(t, os.WriteFile(path, []byte(line), 0o600))

	_, err := Load(path)
	require.Error(t, err)
	require.True(t, errors.Is(err, core.ErrInvalidArgument))
}

func TestReadJSONLSkipsBlankLines(t *testing.T) {
	input := `{"id":"ex-0001","split":"train","features":{},"crowd_label":true,"oracle_label":true}

{"id":"ex-0002","split":"test","features":{},"crowd_label":false,"oracle_label":false}
`
	ds, err := ReadJSONL(bytes.NewBufferString(input))
	require.NoError(t, err)
	require.Len(t, ds.Examples, 2)
}
