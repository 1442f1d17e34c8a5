package codec

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"slices"

	"github.com/ValentinKolb/prefsync/lib/common"
)

var log = common.GetLogger(common.LoggerCodec)

// Codec reads and writes flat key value maps from and to backing files.
type Codec struct {
	Serializer  IPropertySerializer
	Compression Compression
}

// Default returns the codec used when none is configured: json documents,
// gzip compressed.
func Default() *Codec {
	return &Codec{
		Serializer:  NewJSONSerializer(),
		Compression: CompressionGzip,
	}
}

// New creates a codec for the given format and compression names.
func New(format, compression string) (*Codec, error) {
	f, err := ParseFormat(format)
	if err != nil {
		return nil, err
	}
	s, err := NewSerializer(f)
	if err != nil {
		return nil, err
	}
	c, err := ParseCompression(compression)
	if err != nil {
		return nil, err
	}
	return &Codec{Serializer: s, Compression: c}, nil
}

// --------------------------------------------------------------------------
// Encoding
// --------------------------------------------------------------------------

// Encode serializes and compresses values. Entries with an empty key or an
// empty value are not written, absence is the canonical form of "empty".
func (c *Codec) Encode(values map[string]string) ([]byte, error) {
	doc, err := c.Serializer.Serialize(stripEmpty(values))
	if err != nil {
		return nil, fmt.Errorf("cannot serialize %s document: %w", c.Serializer.Format(), err)
	}
	return Compress(doc, c.Compression)
}

// Decode reverses Encode. Compression and document format are detected from
// the data, so a file written with other settings is still readable. If the
// detected format cannot decode the document, the configured format and YAML
// are tried before giving up.
func (c *Codec) Decode(data []byte) (map[string]string, error) {
	doc, err := Decompress(data)
	if err != nil {
		return nil, err
	}

	var firstErr error
	for _, f := range decodeOrder(DetectFormat(doc), c.Serializer.Format()) {
		s := c.Serializer
		if f != s.Format() {
			if s, err = NewSerializer(f); err != nil {
				return nil, err
			}
		}

		values, err := s.Deserialize(doc)
		if err == nil {
			return stripEmpty(values), nil
		}
		log.Debugf("document is not %s: %v", f, err)
		if firstErr == nil {
			firstErr = fmt.Errorf("cannot deserialize %s document: %w", f, err)
		}
	}
	return nil, firstErr
}

// decodeOrder lists the formats to try, detected first, without duplicates
func decodeOrder(detected, configured Format) []Format {
	order := []Format{detected}
	for _, f := range []Format{configured, FormatYAML} {
		if !slices.Contains(order, f) {
			order = append(order, f)
		}
	}
	return order
}

// --------------------------------------------------------------------------
// Files
// --------------------------------------------------------------------------

// Read loads the map stored at path. A missing file yields an error that
// matches fs.ErrNotExist.
func (c *Codec) Read(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	values, err := c.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("cannot decode %s: %w", path, err)
	}
	return values, nil
}

// Write replaces the file at path with values. The parent directory is
// created if necessary.
func (c *Codec) Write(path string, values map[string]string) error {
	data, err := c.Encode(values)
	if err != nil {
		return err
	}
	return common.WriteFile(path, func(w io.Writer) error {
		_, err := w.Write(data)
		return err
	})
}

// Load is the best-effort variant of Read: any failure is logged and an empty
// map is returned. The file is never modified.
func (c *Codec) Load(path string) map[string]string {
	values, err := c.Read(path)
	switch {
	case err == nil:
		log.Infof("loaded %d values from %s", len(values), path)
		return values
	case errors.Is(err, fs.ErrNotExist):
		log.Debugf("no values stored at %s yet", path)
	default:
		log.Warningf("cannot load values from %s, starting empty: %v", path, err)
	}
	return map[string]string{}
}

// Save is the best-effort variant of Write: a failure is logged and reported
// by the return value only.
func (c *Codec) Save(values map[string]string, path string) bool {
	log.Debugf("storing %d values into %s", len(values), path)
	if err := c.Write(path, values); err != nil {
		log.Warningf("cannot store values into %s: %v", path, err)
		return false
	}
	return true
}

// --------------------------------------------------------------------------
// Helper
// --------------------------------------------------------------------------

func stripEmpty(values map[string]string) map[string]string {
	result := make(map[string]string, len(values))
	for k, v := range values {
		if k != "" && v != "" {
			result[k] = v
		}
	}
	return result
}
