package records

import (
	"bytes"
	"fmt"

	"github.com/ValentinKolb/prefsync/lib/codec"
)

// IDocumentSerializer converts a tree of nodes to and from a text document.
type IDocumentSerializer interface {
	// Format returns the document format written by the serializer
	Format() codec.Format
	// Serialize encodes root and all its descendants
	Serialize(root *Node) ([]byte, error)
	// Deserialize decodes a document and returns its root
	Deserialize(b []byte) (*Node, error)
}

// NewDocumentSerializer returns the serializer for f. Record documents can be
// written as xml or yaml.
func NewDocumentSerializer(f codec.Format) (IDocumentSerializer, error) {
	switch f {
	case codec.FormatXML:
		return NewXMLDocumentSerializer(), nil
	case codec.FormatYAML:
		return NewYAMLDocumentSerializer(), nil
	default:
		return nil, fmt.Errorf("invalid record document format %s (expected one of: xml, yaml)", f)
	}
}

// decodeDocument decompresses data and decodes it with the serializer that
// matches its format. A document starting with '<' is tried as xml first,
// since hand written record files often have no xml declaration. Everything
// else, json included, is read as yaml.
func decodeDocument(data []byte) (*Node, error) {
	doc, err := codec.Decompress(data)
	if err != nil {
		return nil, err
	}

	formats := []codec.Format{codec.FormatYAML}
	if bytes.HasPrefix(bytes.TrimLeft(doc, " \t\r\n\uFEFF"), []byte("<")) {
		formats = []codec.Format{codec.FormatXML, codec.FormatYAML}
	}

	var firstErr error
	for _, f := range formats {
		s, err := NewDocumentSerializer(f)
		if err != nil {
			return nil, err
		}
		root, err := s.Deserialize(doc)
		if err == nil {
			return root, nil
		}
		if firstErr == nil {
			firstErr = fmt.Errorf("cannot deserialize %s document: %w", f, err)
		}
	}
	return nil, firstErr
}
