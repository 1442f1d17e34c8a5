package records

import (
	"errors"
	"fmt"

	"github.com/ValentinKolb/prefsync/lib/codec"
)

// ReadRecords decodes the records stored in data. Every direct child of the
// root element whose name matches the element name is decoded into a new
// record from factory, other children are ignored.
//
// Compression and document format are detected from data.
func ReadRecords[T IRecord](data []byte, factory func() T, opts ...Option) ([]T, error) {
	if factory == nil {
		return nil, errors.New("no record factory given")
	}
	o := newOptions(opts)
	name := o.elementName
	if name == "" {
		if name = typeName(factory()); name == "" {
			return nil, errors.New("cannot derive element name from record type, use WithElementName")
		}
	}

	root, err := decodeDocument(data)
	if err != nil {
		return nil, err
	}

	var result []T
	for i, n := range root.ChildrenNamed(name) {
		r := factory()
		if err := r.LoadFromNode(n); err != nil {
			return nil, fmt.Errorf("cannot load %s record %d: %w", name, i, err)
		}
		result = append(result, r)
	}
	return result, nil
}

// WriteRecords encodes all persistable records into a document. Without
// WithElementName every record is written as an element named after its
// own Go type.
func WriteRecords[T IRecord](records []T, opts ...Option) ([]byte, error) {
	o := newOptions(opts)
	if o.serializer == nil {
		return nil, errors.New("no document serializer given")
	}

	root := NewNode(o.rootName)
	for i, r := range records {
		if !r.Persistable() {
			continue
		}
		name := o.elementName
		if name == "" {
			if name = typeName(r); name == "" {
				return nil, fmt.Errorf("cannot derive element name of record %d, use WithElementName", i)
			}
		}
		n := root.AddChild(name)
		if err := r.AppendToNode(n); err != nil {
			return nil, fmt.Errorf("cannot append %s record %d: %w", name, i, err)
		}
	}

	doc, err := o.serializer.Serialize(root)
	if err != nil {
		return nil, fmt.Errorf("cannot serialize %s document: %w", o.serializer.Format(), err)
	}
	return codec.Compress(doc, o.compression)
}
