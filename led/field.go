package led

import (
	"encoding/json"
	"fmt"
)

// FieldType is the "__type" discriminator of a field instance.
type FieldType string

const (
	FieldInt         FieldType = "Int"
	FieldFloat       FieldType = "Float"
	FieldBool        FieldType = "Bool"
	FieldString      FieldType = "String"
	FieldColor       FieldType = "Color"
	FieldIntArray    FieldType = "Array<Int>"
	FieldFloatArray  FieldType = "Array<Float>"
	FieldBoolArray   FieldType = "Array<Bool>"
	FieldStringArray FieldType = "Array<String>"
	FieldColorArray  FieldType = "Array<Color>"
)

// FieldValue is the decoded "__value" of a field instance. The concrete type
// is one of IntValue, FloatValue, BoolValue, StringValue, ColorValue or the
// matching *Array type; switch on it to read the value.
type FieldValue interface {
	FieldType() FieldType
}

type (
	IntValue    int
	FloatValue  float64
	BoolValue   bool
	StringValue string
	ColorValue  string // hex, e.g. "#FF0000"

	IntArray    []int
	FloatArray  []float64
	BoolArray   []bool
	StringArray []string
	ColorArray  []string
)

func (IntValue) FieldType() FieldType    { return FieldInt }
func (FloatValue) FieldType() FieldType  { return FieldFloat }
func (BoolValue) FieldType() FieldType   { return FieldBool }
func (StringValue) FieldType() FieldType { return FieldString }
func (ColorValue) FieldType() FieldType  { return FieldColor }

func (IntArray) FieldType() FieldType    { return FieldIntArray }
func (FloatArray) FieldType() FieldType  { return FieldFloatArray }
func (BoolArray) FieldType() FieldType   { return FieldBoolArray }
func (StringArray) FieldType() FieldType { return FieldStringArray }
func (ColorArray) FieldType() FieldType  { return FieldColorArray }

// FieldInstance is one custom field value set on an entity.
type FieldInstance struct {
	Identifier string
	DefUID     int
	Value      FieldValue
}

// Type reports the discriminator of the held value.
func (f FieldInstance) Type() FieldType {
	if f.Value == nil {
		return ""
	}
	return f.Value.FieldType()
}

func (f *FieldInstance) UnmarshalJSON(b []byte) error {
	var raw struct {
		Identifier *string         `json:"__identifier"`
		Type       *FieldType      `json:"__type"`
		Value      json.RawMessage `json:"__value"`
		DefUID     int             `json:"defUid"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	if raw.Identifier == nil {
		return missingField("field instance", "__identifier")
	}
	if raw.Type == nil {
		return missingField("field instance", "__type")
	}

	var (
		v   FieldValue
		err error
	)
	switch *raw.Type {
	case FieldInt:
		v, err = decodeValue[IntValue](raw.Value)
	case FieldFloat:
		v, err = decodeValue[FloatValue](raw.Value)
	case FieldBool:
		v, err = decodeValue[BoolValue](raw.Value)
	case FieldString:
		v, err = decodeValue[StringValue](raw.Value)
	case FieldColor:
		v, err = decodeValue[ColorValue](raw.Value)
	case FieldIntArray:
		v, err = decodeValue[IntArray](raw.Value)
	case FieldFloatArray:
		v, err = decodeValue[FloatArray](raw.Value)
	case FieldBoolArray:
		v, err = decodeValue[BoolArray](raw.Value)
	case FieldStringArray:
		v, err = decodeValue[StringArray](raw.Value)
	case FieldColorArray:
		v, err = decodeValue[ColorArray](raw.Value)
	default:
		return fmt.Errorf("%w: %q on field %q", ErrUnknownFieldType, *raw.Type, *raw.Identifier)
	}
	if err != nil {
		return fmt.Errorf("field %q: %w", *raw.Identifier, err)
	}

	*f = FieldInstance{Identifier: *raw.Identifier, DefUID: raw.DefUID, Value: v}
	return nil
}

// decodeValue requires "__value" to be present. An explicit null, which LEd
// writes for unset optional fields, decodes to the zero value.
func decodeValue[T FieldValue](raw json.RawMessage) (FieldValue, error) {
	var v T
	if len(raw) == 0 {
		return nil, missingField("field instance", "__value")
	}
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, err
	}
	return v, nil
}
