package codec

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// Format identifies the text document a property map is serialized to.
type Format string

const (
	FormatXML  Format = "xml"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// IPropertySerializer is the interface for all property map serializers
type IPropertySerializer interface {
	// Format returns the document format written by the serializer
	Format() Format
	// Serialize encodes a flat key value map into a document
	Serialize(values map[string]string) ([]byte, error)
	// Deserialize decodes a document into a flat key value map
	Deserialize(b []byte) (map[string]string, error)
}

// NewSerializer creates the serializer for the given format
func NewSerializer(f Format) (IPropertySerializer, error) {
	switch f {
	case FormatXML:
		return NewXMLSerializer(), nil
	case FormatJSON:
		return NewJSONSerializer(), nil
	case FormatYAML:
		return NewYAMLSerializer(), nil
	default:
		return nil, fmt.Errorf("invalid format %s", f)
	}
}

// ParseFormat converts a format name (xml, json, yaml) into a Format
func ParseFormat(name string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(name)))
	switch f {
	case FormatXML, FormatJSON, FormatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("invalid format %s (expected one of: xml, json, yaml)", name)
	}
}

// DetectFormat guesses the format of an uncompressed document. XML is
// recognized by its declaration, a doctype, a comment or the <properties>
// root element, JSON by a leading '{' on a valid JSON document. Everything
// else is treated as YAML, which may itself start with '<' or '{' (e.g. a
// key "<recent>" is written unquoted).
func DetectFormat(b []byte) Format {
	doc := bytes.TrimLeft(b, " \t\r\n\uFEFF") // whitespace and utf-8 bom
	switch {
	case bytes.HasPrefix(doc, []byte("<?xml")),
		bytes.HasPrefix(doc, []byte("<!")),
		bytes.HasPrefix(doc, []byte("<properties")):
		return FormatXML
	case bytes.HasPrefix(doc, []byte("{")) && json.Valid(doc):
		return FormatJSON
	default:
		return FormatYAML
	}
}
