package codec

import (
	"gopkg.in/yaml.v3"
)

// NewYAMLSerializer creates a new serializer using yaml encoding
func NewYAMLSerializer() IPropertySerializer {
	return &yamlSerializerImpl{}
}

// yamlSerializerImpl implements the IPropertySerializer interface using yaml encoding
type yamlSerializerImpl struct {
}

// --------------------------------------------------------------------------
// Interface Methods (docu see codec.IPropertySerializer)
// --------------------------------------------------------------------------

func (y yamlSerializerImpl) Format() Format {
	return FormatYAML
}

func (y yamlSerializerImpl) Serialize(values map[string]string) ([]byte, error) {
	return yaml.Marshal(values)
}

func (y yamlSerializerImpl) Deserialize(b []byte) (map[string]string, error) {
	values := map[string]string{}
	if err := yaml.Unmarshal(b, &values); err != nil {
		return nil, err
	}
	return values, nil
}
