package converter

// IConverter is a bidirectional mapping between a domain type and its string
// representation. Both directions may fail on input they cannot represent.
type IConverter[T any] interface {
	// ToString encodes v. The zero value of T should encode to "" where the
	// type has a natural "unset" state.
	ToString(v T) (string, error)
	// FromString decodes s. Malformed input returns an error.
	FromString(s string) (T, error)
}

// --------------------------------------------------------------------------
// Function based converter
// --------------------------------------------------------------------------

type funcConverterImpl[T any] struct {
	to   func(T) (string, error)
	from func(string) (T, error)
}

// Func builds a converter from a pair of functions.
func Func[T any](to func(T) (string, error), from func(string) (T, error)) IConverter[T] {
	return &funcConverterImpl[T]{to: to, from: from}
}

func (f *funcConverterImpl[T]) ToString(v T) (string, error) {
	return f.to(v)
}

func (f *funcConverterImpl[T]) FromString(s string) (T, error) {
	return f.from(s)
}

// --------------------------------------------------------------------------
// Identity converter
// --------------------------------------------------------------------------

type identityConverterImpl struct{}

// Identity returns the converter that maps every string to itself.
func Identity() IConverter[string] {
	return identityConverterImpl{}
}

func (identityConverterImpl) ToString(v string) (string, error) {
	return v, nil
}

func (identityConverterImpl) FromString(s string) (string, error) {
	return s, nil
}
