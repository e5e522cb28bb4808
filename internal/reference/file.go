package reference

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadFile reads a dataset from a YAML file and validates it.
func LoadFile(path string) (Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Dataset{}, fmt.Errorf("reading dataset: %w", err)
	}
	return Parse(data)
}

// Parse decodes a YAML (or JSON, which is valid YAML) dataset document.
// Unknown keys are rejected so typos in hand-edited files surface early.
func Parse(data []byte) (Dataset, error) {
	var ds Dataset
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&ds); err != nil {
		if err == io.EOF {
			return Dataset{}, fmt.Errorf("parsing dataset: empty document")
		}
		return Dataset{}, fmt.Errorf("parsing dataset: %w", err)
	}
	if err := ds.Validate(); err != nil {
		return Dataset{}, err
	}
	return ds, nil
}

// Encode writes ds as YAML. The output round-trips through Parse.
func Encode(w io.Writer, ds Dataset) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(ds); err != nil {
		return fmt.Errorf("encoding dataset: %w", err)
	}
	return enc.Close()
}
