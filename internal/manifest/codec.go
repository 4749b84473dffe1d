package manifest

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"os"
)

const xmlHeader = `<?xml version="1.0"?>` + "\n"

// Marshal encodes info as an indented info.xml document.
func Marshal(info *Info) ([]byte, error) {
	body, err := xml.MarshalIndent(info, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding info.xml: %w", err)
	}

	var buf bytes.Buffer
	buf.Grow(len(xmlHeader) + len(body) + 1)
	buf.WriteString(xmlHeader)
	buf.Write(body)
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

// Unmarshal decodes an info.xml document.
func Unmarshal(data []byte) (*Info, error) {
	var info Info
	if err := xml.Unmarshal(data, &info); err != nil {
		return nil, fmt.Errorf("decoding info.xml: %w", err)
	}
	return &info, nil
}

// ParseFile reads and decodes the info.xml at path.
func ParseFile(path string) (*Info, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	info, err := Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("parsing manifest %s: %w", path, err)
	}
	return info, nil
}

// readFile reads the contents of a file at the given path.
func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}
	return data, nil
}
