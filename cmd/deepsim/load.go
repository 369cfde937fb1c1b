package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

type docFormat int

const (
	formatAuto docFormat = iota
	formatJSON
	formatYAML
)

func (f docFormat) String() string {
	switch f {
	case formatJSON:
		return "json"
	case formatYAML:
		return "yaml"
	default:
		return "auto"
	}
}

// formatFor picks a decoder by file extension unless one was requested
func formatFor(path string, f docFormat) docFormat {
	if f != formatAuto {
		return f
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return formatYAML
	}
	return formatJSON
}

// loadDocument reads & decodes the file at path into a document tree
func loadDocument(path string, f docFormat) (interface{}, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var doc interface{}
	switch formatFor(path, f) {
	case formatYAML:
		doc, err = decodeYAML(data)
	default:
		doc, err = decodeJSON(data)
	}
	if err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", path, err)
	}
	return doc, nil
}

// decodeJSON keeps numbers as json.Number so large integers survive intact
func decodeJSON(data []byte) (interface{}, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var doc interface{}
	if err := dec.Decode(&doc); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, errors.New("unexpected data after top-level value")
	}
	return doc, nil
}

func decodeYAML(data []byte) (interface{}, error) {
	var doc interface{}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if err := checkYAMLKeys(doc, ""); err != nil {
		return nil, err
	}
	return doc, nil
}

// checkYAMLKeys rejects mappings yaml.v3 couldn't decode as
// map[string]interface{}, which happens when any key isn't a string. at is
// a slash-separated location used in the error
func checkYAMLKeys(v interface{}, at string) error {
	switch x := v.(type) {
	case map[string]interface{}:
		for k, ch := range x {
			if err := checkYAMLKeys(ch, at+"/"+k); err != nil {
				return err
			}
		}
	case []interface{}:
		for i, ch := range x {
			if err := checkYAMLKeys(ch, fmt.Sprintf("%s/%d", at, i)); err != nil {
				return err
			}
		}
	case map[interface{}]interface{}:
		if at == "" {
			at = "/"
		}
		return fmt.Errorf("mapping at %s has non-string keys", at)
	}
	return nil
}
