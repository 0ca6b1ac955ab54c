package model

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tinylib/msgp/msgp"
)

// ==================== Fixture Tests ====================

// TestReferenceFixture verifies the canonical instance carries the exact
// values every adapter round-trips against.
func TestReferenceFixture(t *testing.T) {
	obj := Reference()

	require.Equal(t, []int32{0, 1, 2, 3, 4, 5, 6}, obj.FixedObject.IntArray)
	require.Len(t, obj.FixedObject.FloatArray, 6)
	require.Len(t, obj.FixedObject.DoubleArray, 9)
	require.Equal(t, 3288398.238, obj.FixedObject.DoubleArray[0])
	require.Equal(t, 233e22, obj.FixedObject.DoubleArray[1])

	require.Equal(t, "James", obj.FixedNameObject.Name0)
	require.Equal(t, "Alicia", obj.FixedNameObject.Name4)

	require.Equal(t, "here is some text", obj.AnotherObject.String)
	require.Equal(t, "Hello World", obj.AnotherObject.AnotherString)
	require.Equal(t, `{"some key":"some string value"}`, obj.AnotherObject.EscapedText)
	require.False(t, obj.AnotherObject.Boolean)
	require.Len(t, obj.AnotherObject.NestedObject.V3s, 3)
	require.Equal(t, Vec3{0.12345, 0.23456, 0.001345}, obj.AnotherObject.NestedObject.V3s[0])
	require.Equal(t, "298728949872", obj.AnotherObject.NestedObject.ID)

	require.Equal(t, []string{"Cat", "Dog", "Elephant", "Tiger"}, obj.StringArray)
	require.Equal(t, "Hello world", obj.String)
	require.Equal(t, 3.14, obj.Number)
	require.True(t, obj.Boolean)
	require.False(t, obj.AnotherBool)
}

// TestReferenceIsFresh verifies each call returns an independent instance,
// so one benchmark mutating its copy cannot poison another.
func TestReferenceIsFresh(t *testing.T) {
	a := Reference()
	b := Reference()
	a.FixedObject.IntArray[0] = 99
	a.StringArray[0] = "Mouse"
	require.Equal(t, int32(0), b.FixedObject.IntArray[0])
	require.Equal(t, "Cat", b.StringArray[0])
}

// ==================== Checksum Tests ====================

// TestChecksumDeterministic verifies the exact accumulator value for an
// instance whose float conversions are all unambiguous. 233e22 exceeds the
// uint64 range, so the reference fixture itself only gets compared
// adapter-to-adapter, never against a hardcoded total.
func TestChecksumDeterministic(t *testing.T) {
	obj := Reference()
	obj.FixedObject.DoubleArray[1] = 0

	// int_array 21, double_array 3288426, names 28, strings 60+12+19+11,
	// vec3 sums 0+395+3093, number 3, booleans 1.
	require.Equal(t, uint64(3292069), obj.Checksum())
}

func TestChecksumZeroValue(t *testing.T) {
	var obj TestObj
	require.Equal(t, uint64(0), obj.Checksum())
}

func TestChecksumFieldSensitivity(t *testing.T) {
	base := Reference()
	want := base.Checksum()
	require.Equal(t, want, Reference().Checksum())

	cases := []struct {
		name   string
		mutate func(*TestObj)
	}{
		{"int_array", func(o *TestObj) { o.FixedObject.IntArray[3] += 10 }},
		{"double_array", func(o *TestObj) { o.FixedObject.DoubleArray[0] += 100 }},
		{"name", func(o *TestObj) { o.FixedNameObject.Name2 = "Susannah" }},
		{"nested_string", func(o *TestObj) { o.AnotherObject.String += "!" }},
		{"vec3", func(o *TestObj) { o.AnotherObject.NestedObject.V3s[2].Z += 50 }},
		{"id", func(o *TestObj) { o.AnotherObject.NestedObject.ID += "0" }},
		{"string_array", func(o *TestObj) { o.StringArray[1] = "Doggo" }},
		{"root_string", func(o *TestObj) { o.String += "." }},
		{"number", func(o *TestObj) { o.Number = 42.0 }},
		{"boolean", func(o *TestObj) { o.Boolean = false }},
		{"another_bool", func(o *TestObj) { o.AnotherBool = true }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			obj := Reference()
			tc.mutate(obj)
			require.NotEqual(t, want, obj.Checksum())
		})
	}
}

// ==================== Codec Tests ====================

// TestMarshalUnmarshalRoundTrip verifies the buffer-level codec restores
// every field of the canonical instance.
func TestMarshalUnmarshalRoundTrip(t *testing.T) {
	obj := Reference()
	data, err := obj.MarshalMsg(nil)
	require.NoError(t, err)
	require.NotEmpty(t, data)
	require.GreaterOrEqual(t, obj.Msgsize(), len(data))

	var got TestObj
	left, err := got.UnmarshalMsg(data)
	require.NoError(t, err)
	require.Empty(t, left)
	require.Equal(t, *obj, got)
	require.Equal(t, obj.Checksum(), got.Checksum())
}

// TestEncodeDecodeRoundTrip exercises the streaming codec path.
func TestEncodeDecodeRoundTrip(t *testing.T) {
	obj := Reference()

	var buf bytes.Buffer
	w := msgp.NewWriter(&buf)
	require.NoError(t, obj.EncodeMsg(w))
	require.NoError(t, w.Flush())

	var got TestObj
	require.NoError(t, got.DecodeMsg(msgp.NewReader(&buf)))
	require.Equal(t, *obj, got)
}

// TestMarshalStableBytes verifies repeated marshals of the same instance
// produce identical bytes. Adapters reuse this to prove their serialize
// paths are deterministic.
func TestMarshalStableBytes(t *testing.T) {
	obj := Reference()
	a, err := obj.MarshalMsg(nil)
	require.NoError(t, err)
	b, err := obj.MarshalMsg(nil)
	require.NoError(t, err)
	require.Equal(t, a, b)
}

func TestRoundTripEmptySequences(t *testing.T) {
	obj := TestObj{
		String: "only scalars",
		Number: 1.0,
	}
	data, err := obj.MarshalMsg(nil)
	require.NoError(t, err)

	var got TestObj
	_, err = got.UnmarshalMsg(data)
	require.NoError(t, err)
	require.Equal(t, obj, got)
	require.Empty(t, got.FixedObject.IntArray)
	require.Empty(t, got.StringArray)
	require.Empty(t, got.AnotherObject.NestedObject.V3s)
}

func TestUnmarshalTruncated(t *testing.T) {
	obj := Reference()
	data, err := obj.MarshalMsg(nil)
	require.NoError(t, err)

	var got TestObj
	_, err = got.UnmarshalMsg(data[:len(data)/2])
	require.Error(t, err)
}
