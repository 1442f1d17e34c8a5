package records

import (
	"bytes"
	"encoding/xml"
	"errors"
	"io"
	"strings"

	"github.com/ValentinKolb/prefsync/lib/codec"
)

// NewXMLDocumentSerializer creates the default serializer. Every node becomes
// an element, its attributes become xml attributes:
//
//	<records>
//	  <Task title="Buy milk" due="2024-05-01"></Task>
//	</records>
func NewXMLDocumentSerializer() IDocumentSerializer {
	return &xmlDocumentSerializerImpl{}
}

// xmlDocumentSerializerImpl implements the IDocumentSerializer interface using encoding/xml
type xmlDocumentSerializerImpl struct {
}

// --------------------------------------------------------------------------
// Interface Methods (docu see records.IDocumentSerializer)
// --------------------------------------------------------------------------

func (x xmlDocumentSerializerImpl) Format() codec.Format {
	return codec.FormatXML
}

func (x xmlDocumentSerializerImpl) Serialize(root *Node) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(xml.Header)

	enc := xml.NewEncoder(&buf)
	enc.Indent("", "  ")
	if err := encodeXMLNode(enc, root); err != nil {
		return nil, err
	}
	if err := enc.Flush(); err != nil {
		return nil, err
	}
	buf.WriteString("\n")
	return buf.Bytes(), nil
}

func (x xmlDocumentSerializerImpl) Deserialize(b []byte) (*Node, error) {
	dec := xml.NewDecoder(bytes.NewReader(b))

	var root *Node
	var stack []*Node
	var text []*strings.Builder

	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			n := NewNode(t.Name.Local)
			for _, a := range t.Attr {
				n.Attrs = append(n.Attrs, Attr{Name: a.Name.Local, Value: a.Value})
			}
			if len(stack) == 0 {
				if root != nil {
					return nil, errors.New("document has more than one root element")
				}
				root = n
			} else {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, n)
			}
			stack = append(stack, n)
			text = append(text, &strings.Builder{})

		case xml.CharData:
			if len(stack) > 0 {
				text[len(text)-1].Write(t)
			}

		case xml.EndElement:
			n := stack[len(stack)-1]
			n.Text = text[len(text)-1].String()
			if len(n.Children) > 0 {
				n.Text = strings.TrimSpace(n.Text)
			}
			stack = stack[:len(stack)-1]
			text = text[:len(text)-1]
		}
	}

	if root == nil {
		return nil, errors.New("document has no root element")
	}
	return root, nil
}

// --------------------------------------------------------------------------
// Helper
// --------------------------------------------------------------------------

func encodeXMLNode(enc *xml.Encoder, n *Node) error {
	start := xml.StartElement{Name: xml.Name{Local: n.Name}}
	for _, a := range n.Attrs {
		start.Attr = append(start.Attr, xml.Attr{Name: xml.Name{Local: a.Name}, Value: a.Value})
	}

	if err := enc.EncodeToken(start); err != nil {
		return err
	}
	if n.Text != "" {
		if err := enc.EncodeToken(xml.CharData(n.Text)); err != nil {
			return err
		}
	}
	for _, c := range n.Children {
		if err := encodeXMLNode(enc, c); err != nil {
			return err
		}
	}
	return enc.EncodeToken(start.End())
}
