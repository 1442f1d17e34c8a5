package codec

import (
	"encoding/json"
)

// NewJSONSerializer creates a new serializer using json encoding
func NewJSONSerializer() IPropertySerializer {
	return &jsonSerializerImpl{}
}

// jsonSerializerImpl implements the IPropertySerializer interface using json encoding
type jsonSerializerImpl struct {
}

// --------------------------------------------------------------------------
// Interface Methods (docu see codec.IPropertySerializer)
// --------------------------------------------------------------------------

func (j jsonSerializerImpl) Format() Format {
	return FormatJSON
}

func (j jsonSerializerImpl) Serialize(values map[string]string) ([]byte, error) {
	return json.MarshalIndent(values, "", "  ")
}

func (j jsonSerializerImpl) Deserialize(b []byte) (map[string]string, error) {
	values := map[string]string{}
	if err := json.Unmarshal(b, &values); err != nil {
		return nil, err
	}
	return values, nil
}
