package container

// NullValue is the null/undefined value (type code 0). It carries a name
// but no payload; every conversion fails and its text form is empty.
type NullValue struct {
	base
}

// NewNullValue creates a null value.
func NewNullValue(name string) *NullValue {
	return &NullValue{base: base{name: name, typ: TypeNull}}
}

func (v *NullValue) Size() int { return 0 }

func (v *NullValue) String() string { return "" }

func (v *NullValue) Bytes() []byte { return nil }

func (v *NullValue) Clone() Value {
	c := *v
	return &c
}
