// Package dataset reads and writes example record streams. JSONL carries
// one example per line; a top-level JSON array is also accepted.
package dataset

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"refinebench/pkg/core"
)

// Load reads a dataset from disk, detecting JSON versus JSONL by extension
// and falling back to sniffing the first non-space byte.
func Load(path string) (core.Dataset, error) {
	format, err := detectFormat(path)
	if err != nil {
		return core.Dataset{}, err
	}

	file, err := os.Open(path)
	if err != nil {
		return core.Dataset{}, err
	}
	defer file.Close()

	var examples []core.Example
	switch format {
	case "json":
		if err := json.NewDecoder(file).Decode(&examples); err != nil {
			return core.Dataset{}, err
		}
	case "jsonl":
		examples, err = readJSONL(file)
		if err != nil {
			return core.Dataset{}, err
		}
	}

	ds := core.Dataset{Examples: examples}
	if err := validate(ds); err != nil {
		return core.Dataset{}, err
	}
	return ds, nil
}

// Save writes a dataset as JSONL.
func Save(path string, ds core.Dataset) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return WriteJSONL(file, ds)
}

// WriteJSONL writes one example per line. encoding/json sorts map keys,
// so output for a given dataset is byte-stable.
func WriteJSONL(w io.Writer, ds core.Dataset) error {
	writer := bufio.NewWriter(w)
	for _, ex := range ds.Examples {
		line, err := json.Marshal(ex)
		if err != nil {
			return err
		}
		if _, err := writer.Write(line); err != nil {
			return err
		}
		if err := writer.WriteByte('\n'); err != nil {
			return err
		}
	}
	return writer.Flush()
}

// ReadJSONL reads a dataset from a JSONL stream and validates it.
func ReadJSONL(r io.Reader) (core.Dataset, error) {
	examples, err := readJSONL(r)
	if err != nil {
		return core.Dataset{}, err
	}
	ds := core.Dataset{Examples: examples}
	if err := validate(ds); err != nil {
		return core.Dataset{}, err
	}
	return ds, nil
}

func readJSONL(r io.Reader) ([]core.Example, error) {
	scanner := bufio.NewScanner(r)
	buf := make([]byte, 0, 1024*1024)
	scanner.Buffer(buf, 1024*1024)

	var examples []core.Example
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		var ex core.Example
		if err := json.Unmarshal([]byte(line), &ex); err != nil {
			return nil, err
		}
		examples = append(examples, ex)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return examples, nil
}

func detectFormat(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jsonl":
		return "jsonl", nil
	case ".json":
		return "json", nil
	}

	file, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer file.Close()

	reader := bufio.NewReader(file)
	for {
		b, err := reader.ReadByte()
		if err != nil {
			return "", err
		}
		if strings.TrimSpace(string(b)) == "" {
			continue
		}
		if b == '[' {
			return "json", nil
		}
		if b == '{' {
			return "jsonl", nil
		}
		return "", fmt.Errorf("%w: unrecognized dataset format in %s", core.ErrInvalidArgument, path)
	}
}

func validate(ds core.Dataset) error {
	seen := make(map[string]struct{}, len(ds.Examples))
	for i, ex := range ds.Examples {
		if ex.ID == "" {
			return fmt.Errorf("%w: example %d has no id", core.ErrInvalidArgument, i)
		}
		if _, dup := seen[ex.ID]; dup {
			return fmt.Errorf("%w: duplicate example id %q", core.ErrInvalidArgument, ex.ID)
		}
		seen[ex.ID] = struct{}{}
		if !ex.Split.Valid() {
			return fmt.Errorf("%w: example %q has unknown split %q", core.ErrInvalidArgument, ex.ID, ex.Split)
		}
	}
	return nil
}
