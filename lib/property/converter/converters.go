package converter

import (
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cast"
)

// --------------------------------------------------------------------------
// Numbers
// --------------------------------------------------------------------------

// FloatOptions configures the Float converter.
type FloatOptions struct {
	// Precision is the number of digits after the separator, -1 for the shortest exact representation.
	Precision int
	// DecimalSeparator replaces "." in the string representation. Empty means ".".
	DecimalSeparator string
}

// DefaultFloatOptions returns the options used by Float when none are given.
func DefaultFloatOptions() FloatOptions {
	return FloatOptions{Precision: -1, DecimalSeparator: "."}
}

type floatConverterImpl struct {
	opts FloatOptions
}

// Float converts float64 values. Zero is represented by "" and a lone sign
// ("-" or "+") decodes to zero, so a number that is being typed never fails
// on its first keystroke.
func Float(opts FloatOptions) IConverter[float64] {
	if opts.DecimalSeparator == "" {
		opts.DecimalSeparator = "."
	}
	return &floatConverterImpl{opts: opts}
}

func (f *floatConverterImpl) ToString(v float64) (string, error) {
	if v == 0 {
		return "", nil
	}
	s := strconv.FormatFloat(v, 'f', f.opts.Precision, 64)
	if f.opts.DecimalSeparator != "." {
		s = strings.Replace(s, ".", f.opts.DecimalSeparator, 1)
	}
	return s, nil
}

func (f *floatConverterImpl) FromString(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" || s == "-" || s == "+" {
		return 0, nil
	}
	if f.opts.DecimalSeparator != "." {
		if strings.Contains(s, ".") {
			return 0, fmt.Errorf("invalid number %q: unexpected '.'", s)
		}
		s = strings.Replace(s, f.opts.DecimalSeparator, ".", 1)
	}
	v, err := cast.ToFloat64E(s)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q: %w", s, err)
	}
	return v, nil
}

// Int converts decimal int values, "" decodes to zero and zero encodes as
// "0". Leading zeros are ignored ("010" is 10), there is no octal or hex.
func Int() IConverter[int] {
	return Func(
		func(v int) (string, error) {
			return strconv.Itoa(v), nil
		},
		func(s string) (int, error) {
			if s = strings.TrimSpace(s); s == "" {
				return 0, nil
			}
			v, err := strconv.ParseInt(s, 10, 0)
			if err != nil {
				return 0, fmt.Errorf("invalid number %q: %w", s, err)
			}
			return int(v), nil
		},
	)
}

// Bool converts bool values, "" decodes to false and false encodes as "false".
func Bool() IConverter[bool] {
	return Func(
		func(v bool) (string, error) {
			return strconv.FormatBool(v), nil
		},
		func(s string) (bool, error) {
			if s = strings.TrimSpace(s); s == "" {
				return false, nil
			}
			return cast.ToBoolE(s)
		},
	)
}

// Duration converts time.Duration values using Go's duration syntax ("1h30m").
// A plain number is read as nanoseconds, "" decodes to zero and zero
// encodes as "0s".
func Duration() IConverter[time.Duration] {
	return Func(
		func(v time.Duration) (string, error) {
			return v.String(), nil
		},
		func(s string) (time.Duration, error) {
			if s = strings.TrimSpace(s); s == "" {
				return 0, nil
			}
			return cast.ToDurationE(s)
		},
	)
}

// --------------------------------------------------------------------------
// Files
// --------------------------------------------------------------------------

// Path converts file paths. Paths are stored in absolute form, "" stays "".
func Path() IConverter[string] {
	return Func(
		func(v string) (string, error) {
			if v == "" {
				return "", nil
			}
			return filepath.Abs(v)
		},
		func(s string) (string, error) {
			if s == "" {
				return "", nil
			}
			return filepath.Clean(s), nil
		},
	)
}

// --------------------------------------------------------------------------
// Dates
// --------------------------------------------------------------------------

type dateConverterImpl struct {
	format  string
	layouts []string
}

// Date converts time.Time values. Values are written with format and read with
// the first of parseLayouts that matches (format itself if none are given).
// The zero time is represented by "".
func Date(format string, parseLayouts ...string) IConverter[time.Time] {
	if format == "" {
		format = time.DateOnly
	}
	if len(parseLayouts) == 0 {
		parseLayouts = []string{format}
	}
	return &dateConverterImpl{format: format, layouts: parseLayouts}
}

func (d *dateConverterImpl) ToString(v time.Time) (string, error) {
	if v.IsZero() {
		return "", nil
	}
	return v.Format(d.format), nil
}

func (d *dateConverterImpl) FromString(s string) (time.Time, error) {
	if s = strings.TrimSpace(s); s == "" {
		return time.Time{}, nil
	}
	var errs []error
	for _, layout := range d.layouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t, nil
		}
		errs = append(errs, err)
	}
	return time.Time{}, fmt.Errorf("invalid date %q: %w", s, errors.Join(errs...))
}
