package codec

import (
	"bytes"
	"encoding/xml"
	"sort"
)

const propertiesDoctype = `<!DOCTYPE properties SYSTEM "http://java.sun.com/dtd/properties.dtd">`

// NewXMLSerializer creates a serializer for the XML properties document
//
//	<properties>
//	  <entry key="theme">dark</entry>
//	</properties>
//
// which is the format java.util.Properties uses, so existing preference files
// of such applications can be read. XML 1.0 cannot carry most control
// characters, use the json format for values that contain them.
func NewXMLSerializer() IPropertySerializer {
	return &xmlSerializerImpl{}
}

// xmlSerializerImpl implements the IPropertySerializer interface using encoding/xml
type xmlSerializerImpl struct {
}

type xmlProperties struct {
	XMLName xml.Name   `xml:"properties"`
	Comment string     `xml:"comment,omitempty"`
	Entries []xmlEntry `xml:"entry"`
}

type xmlEntry struct {
	Key   string `xml:"key,attr"`
	Value string `xml:",chardata"`
}

// --------------------------------------------------------------------------
// Interface Methods (docu see codec.IPropertySerializer)
// --------------------------------------------------------------------------

func (x xmlSerializerImpl) Format() Format {
	return FormatXML
}

func (x xmlSerializerImpl) Serialize(values map[string]string) ([]byte, error) {
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	doc := xmlProperties{Entries: make([]xmlEntry, 0, len(keys))}
	for _, k := range keys {
		doc.Entries = append(doc.Entries, xmlEntry{Key: k, Value: values[k]})
	}

	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	buf.WriteString(propertiesDoctype)
	buf.WriteString("\n")
	enc := xml.NewEncoder(&buf)
	enc.Indent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return nil, err
	}
	buf.WriteString("\n")
	return buf.Bytes(), nil
}

func (x xmlSerializerImpl) Deserialize(b []byte) (map[string]string, error) {
	var doc xmlProperties
	if err := xml.Unmarshal(b, &doc); err != nil {
		return nil, err
	}
	values := make(map[string]string, len(doc.Entries))
	for _, e := range doc.Entries {
		values[e.Key] = e.Value
	}
	return values, nil
}
