package ir

// Value is the payload of a primitive node.  Only the field selected by
// Type is meaningful.
type Value struct {
	Type   Type
	String string
	Int    int32
	Float  float64
	Bool   bool
}

func StringValue(s string) Value {
	return Value{Type: StringType, String: s}
}

func IntValue(i int32) Value {
	return Value{Type: IntType, Int: i}
}

func FloatValue(f float64) Value {
	return Value{Type: FloatType, Float: f}
}

func BoolValue(b bool) Value {
	return Value{Type: BoolType, Bool: b}
}

func NullValue() Value {
	return Value{Type: NullType}
}
