// Package codec reads and writes the backing files of preference stores. A
// backing file holds one flat map from non-empty keys to non-empty string
// values, serialized to a text document and optionally compressed.
//
// Key Components:
//
//   - IPropertySerializer: converts a flat map to and from a document. There are
//     three implementations:
//
//   - xml: the <properties><entry key="..">value</entry></properties> document
//     used by java.util.Properties, for files shared with such applications.
//
//   - json: the default. Round-trips every Unicode string, control characters
//     included.
//
//   - yaml: a plain mapping, the easiest to edit by hand.
//
//   - Compression: none, gzip (default), zstd or lz4. The compression of a file
//     is detected from its magic bytes when reading, the document format from
//     its beginning (DetectFormat). If the detected format cannot decode the
//     document, the configured format and yaml are tried as well. A codec can
//     therefore read files written with any other settings, and changing the
//     configuration never loses data.
//
//   - Codec: ties a serializer and a compression together. Read and Write are
//     strict and return errors. Load and Save are best-effort: a missing,
//     unreadable or corrupt file loads as an empty map, a failed write is
//     logged and reported as false. Neither ever modifies a file it could not
//     read.
//
// Empty keys and empty values are never written and are dropped on read,
// absence is the only representation of "empty".
//
// Writes go to a temporary file next to the target which is flushed, synced and
// renamed over the target, the parent directory is created on demand.
//
// Usage:
//
//	c, err := codec.New("yaml", "zstd")
//	if err != nil { ... }
//	values := c.Load("~/.config/app/preferences")
//	values["theme"] = "dark"
//	c.Save(values, "~/.config/app/preferences")
package codec
