// Package model defines the canonical benchmark payload: one nested record
// type that every serialization format under test must encode, decode, and
// traverse with identical field-level work.
package model

//go:generate msgp

// Vec3 is a plain three-component coordinate value with no owned sub-objects.
type Vec3 struct {
	X float64 `msg:"x" json:"x"`
	Y float64 `msg:"y" json:"y"`
	Z float64 `msg:"z" json:"z"`
}

// NestedObject holds an ordered sequence of Vec3 plus one text identifier.
type NestedObject struct {
	V3s []Vec3 `msg:"v3s" json:"v3s"`
	ID  string `msg:"id" json:"id"`
}

// AnotherObject carries free-text fields (one of which requires escaping in
// text encodings), a boolean, and one owned NestedObject.
type AnotherObject struct {
	String        string       `msg:"string" json:"string"`
	AnotherString string       `msg:"another_string" json:"another_string"`
	EscapedText   string       `msg:"escaped_text" json:"escaped_text"`
	Boolean       bool         `msg:"boolean" json:"boolean"`
	NestedObject  NestedObject `msg:"nested_object" json:"nested_object"`
}

// FixedObject holds three variable-length numeric sequences.
type FixedObject struct {
	IntArray    []int32   `msg:"int_array" json:"int_array"`
	FloatArray  []float32 `msg:"float_array" json:"float_array"`
	DoubleArray []float64 `msg:"double_array" json:"double_array"`
}

// FixedNameObject holds five independent text fields.
type FixedNameObject struct {
	Name0 string `msg:"name0" json:"name0"`
	Name1 string `msg:"name1" json:"name1"`
	Name2 string `msg:"name2" json:"name2"`
	Name3 string `msg:"name3" json:"name3"`
	Name4 string `msg:"name4" json:"name4"`
}

// TestObj is the root record. Field order is part of the cross-format
// contract: every adapter serializes, deserializes, and checksums fields in
// exactly this order.
type TestObj struct {
	FixedObject     FixedObject     `msg:"fixed_object" json:"fixed_object"`
	FixedNameObject FixedNameObject `msg:"fixed_name_object" json:"fixed_name_object"`
	AnotherObject   AnotherObject   `msg:"another_object" json:"another_object"`
	StringArray     []string        `msg:"string_array" json:"string_array"`
	String          string          `msg:"string" json:"string"`
	Number          float64         `msg:"number" json:"number"`
	Boolean         bool            `msg:"boolean" json:"boolean"`
	AnotherBool     bool            `msg:"another_bool" json:"another_bool"`
}
