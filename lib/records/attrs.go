package records

import (
	"fmt"

	"github.com/ValentinKolb/prefsync/lib/property/converter"
)

// AppendAttr sets the attribute name on n unless value is empty.
func AppendAttr(n *Node, name, value string) {
	if value != "" {
		n.SetAttr(name, value)
	}
}

// AppendAttrValue encodes v with c and sets it as attribute name. Values that
// encode to the empty string (zero numbers, zero dates, ...) are skipped.
func AppendAttrValue[T any](n *Node, name string, v T, c converter.IConverter[T]) error {
	s, err := c.ToString(v)
	if err != nil {
		return fmt.Errorf("cannot encode attribute %s: %w", name, err)
	}
	AppendAttr(n, name, s)
	return nil
}

// ExtractAttr decodes the attribute name with c. Absent and empty attributes
// yield ok=false and no error.
func ExtractAttr[T any](n *Node, name string, c converter.IConverter[T]) (value T, ok bool, err error) {
	s, present := n.Attr(name)
	if !present || s == "" {
		return value, false, nil
	}
	value, err = c.FromString(s)
	if err != nil {
		return value, false, fmt.Errorf("cannot decode attribute %s=%q: %w", name, s, err)
	}
	return value, true, nil
}

// ExtractAttrString returns the attribute name. Absent and empty attributes
// yield ok=false.
func ExtractAttrString(n *Node, name string) (string, bool) {
	s, present := n.Attr(name)
	return s, present && s != ""
}
