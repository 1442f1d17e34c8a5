package converter

import (
	"fmt"

	"github.com/ValentinKolb/prefsync/lib/common"
)

var log = common.GetLogger(common.LoggerConvert)

type swallowingConverterImpl[T any] struct {
	delegate IConverter[T]
	fallback T
}

// Swallowing wraps c so that it never fails. A failed (or panicking) decode
// yields fallback, a failed encode yields "". Failures are logged at debug
// level and counted in the conversion error metric.
func Swallowing[T any](c IConverter[T], fallback T) IConverter[T] {
	return &swallowingConverterImpl[T]{delegate: c, fallback: fallback}
}

func (s *swallowingConverterImpl[T]) ToString(v T) (result string, _ error) {
	defer func() {
		if r := recover(); r != nil {
			s.failed("ToString", v, fmt.Errorf("panic: %v", r))
			result = ""
		}
	}()
	str, err := s.delegate.ToString(v)
	if err != nil {
		s.failed("ToString", v, err)
		return "", nil
	}
	return str, nil
}

func (s *swallowingConverterImpl[T]) FromString(str string) (result T, _ error) {
	defer func() {
		if r := recover(); r != nil {
			s.failed("FromString", str, fmt.Errorf("panic: %v", r))
			result = s.fallback
		}
	}()
	v, err := s.delegate.FromString(str)
	if err != nil {
		s.failed("FromString", str, err)
		return s.fallback, nil
	}
	return v, nil
}

func (s *swallowingConverterImpl[T]) failed(op string, input any, err error) {
	common.ConversionErrors.Inc()
	log.Debugf("cannot convert using %s from %v: %v", op, input, err)
}
