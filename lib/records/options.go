package records

import (
	"reflect"

	"github.com/ValentinKolb/prefsync/lib/codec"
)

// Option configures how records are read and written.
type Option func(*options)

type options struct {
	elementName string
	rootName    string
	serializer  IDocumentSerializer
	compression codec.Compression
}

func newOptions(opts []Option) *options {
	o := &options{
		rootName:    "records",
		serializer:  NewXMLDocumentSerializer(),
		compression: codec.CompressionNone,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithElementName sets the element name of the records. By default it is the
// name of the record's Go type (without pointer).
func WithElementName(name string) Option {
	return func(o *options) {
		o.elementName = name
	}
}

// WithRootName sets the name of the document's root element, "records" by default.
func WithRootName(name string) Option {
	return func(o *options) {
		o.rootName = name
	}
}

// WithSerializer sets the document serializer used for writing. Reading
// detects the format. The default writes xml.
func WithSerializer(s IDocumentSerializer) Option {
	return func(o *options) {
		o.serializer = s
	}
}

// WithCompression compresses written documents. Reading detects the
// compression. The default writes plain text.
func WithCompression(c codec.Compression) Option {
	return func(o *options) {
		o.compression = c
	}
}

// typeName returns the name of the dynamic type of v, pointers dereferenced.
// It is empty for nil and unnamed types.
func typeName(v any) string {
	t := reflect.TypeOf(v)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil {
		return ""
	}
	return t.Name()
}
