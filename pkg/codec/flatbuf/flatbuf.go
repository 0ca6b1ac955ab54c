// Package flatbuf adapts FlatBuffers to the harness through the generated
// accessors in benchfb.
package flatbuf

import (
	"fmt"

	flatbuffers "github.com/google/flatbuffers/go"

	"github.com/appnet-org/wirebench/pkg/codec"
	"github.com/appnet-org/wirebench/pkg/codec/flatbuf/benchfb"
	"github.com/appnet-org/wirebench/pkg/model"
)

// Codec reuses one builder across Serialize calls; Reset keeps the
// builder's backing array, so steady-state serialization does not grow it.
type Codec struct {
	builder *flatbuffers.Builder
}

// New returns a FlatBuffers codec with a small initial builder.
func New() *Codec { return &Codec{builder: flatbuffers.NewBuilder(1024)} }

// Name implements codec.Codec.
func (c *Codec) Name() string { return "FlatBuffers" }

// Serialize builds the buffer bottom-up: leaf vectors and strings first,
// then the tables that refer to them, the root table last.
func (c *Codec) Serialize(obj *model.TestObj) ([]byte, error) {
	b := c.builder
	b.Reset()

	benchfb.FixedObjectStartIntArrayVector(b, len(obj.FixedObject.IntArray))
	for i := len(obj.FixedObject.IntArray) - 1; i >= 0; i-- {
		b.PrependInt32(obj.FixedObject.IntArray[i])
	}
	intArray := b.EndVector(len(obj.FixedObject.IntArray))

	benchfb.FixedObjectStartFloatArrayVector(b, len(obj.FixedObject.FloatArray))
	for i := len(obj.FixedObject.FloatArray) - 1; i >= 0; i-- {
		b.PrependFloat32(obj.FixedObject.FloatArray[i])
	}
	floatArray := b.EndVector(len(obj.FixedObject.FloatArray))

	benchfb.FixedObjectStartDoubleArrayVector(b, len(obj.FixedObject.DoubleArray))
	for i := len(obj.FixedObject.DoubleArray) - 1; i >= 0; i-- {
		b.PrependFloat64(obj.FixedObject.DoubleArray[i])
	}
	doubleArray := b.EndVector(len(obj.FixedObject.DoubleArray))

	benchfb.FixedObjectStart(b)
	benchfb.FixedObjectAddIntArray(b, intArray)
	benchfb.FixedObjectAddFloatArray(b, floatArray)
	benchfb.FixedObjectAddDoubleArray(b, doubleArray)
	fixed := benchfb.FixedObjectEnd(b)

	name0 := b.CreateString(obj.FixedNameObject.Name0)
	name1 := b.CreateString(obj.FixedNameObject.Name1)
	name2 := b.CreateString(obj.FixedNameObject.Name2)
	name3 := b.CreateString(obj.FixedNameObject.Name3)
	name4 := b.CreateString(obj.FixedNameObject.Name4)

	benchfb.FixedNameObjectStart(b)
	benchfb.FixedNameObjectAddName0(b, name0)
	benchfb.FixedNameObjectAddName1(b, name1)
	benchfb.FixedNameObjectAddName2(b, name2)
	benchfb.FixedNameObjectAddName3(b, name3)
	benchfb.FixedNameObjectAddName4(b, name4)
	names := benchfb.FixedNameObjectEnd(b)

	str := b.CreateString(obj.AnotherObject.String)
	anotherStr := b.CreateString(obj.AnotherObject.AnotherString)
	escaped := b.CreateString(obj.AnotherObject.EscapedText)

	v3s := obj.AnotherObject.NestedObject.V3s
	benchfb.NestedObjectStartV3sVector(b, len(v3s))
	for i := len(v3s) - 1; i >= 0; i-- {
		benchfb.CreateVec3(b, v3s[i].X, v3s[i].Y, v3s[i].Z)
	}
	v3sVec := b.EndVector(len(v3s))
	id := b.CreateString(obj.AnotherObject.NestedObject.ID)

	benchfb.NestedObjectStart(b)
	benchfb.NestedObjectAddV3s(b, v3sVec)
	benchfb.NestedObjectAddId(b, id)
	nested := benchfb.NestedObjectEnd(b)

	benchfb.AnotherObjectStart(b)
	benchfb.AnotherObjectAddString(b, str)
	benchfb.AnotherObjectAddAnotherString(b, anotherStr)
	benchfb.AnotherObjectAddEscapedText(b, escaped)
	benchfb.AnotherObjectAddBoolean(b, obj.AnotherObject.Boolean)
	benchfb.AnotherObjectAddNestedObject(b, nested)
	another := benchfb.AnotherObjectEnd(b)

	offsets := make([]flatbuffers.UOffsetT, len(obj.StringArray))
	for i, s := range obj.StringArray {
		offsets[i] = b.CreateString(s)
	}
	benchfb.TestObjectStartStringArrayVector(b, len(offsets))
	for i := len(offsets) - 1; i >= 0; i-- {
		b.PrependUOffsetT(offsets[i])
	}
	strVec := b.EndVector(len(offsets))

	rootString := b.CreateString(obj.String)

	benchfb.TestObjectStart(b)
	benchfb.TestObjectAddFixedObject(b, fixed)
	benchfb.TestObjectAddFixedNameObject(b, names)
	benchfb.TestObjectAddAnotherObject(b, another)
	benchfb.TestObjectAddStringArray(b, strVec)
	benchfb.TestObjectAddString(b, rootString)
	benchfb.TestObjectAddNumber(b, obj.Number)
	benchfb.TestObjectAddBoolean(b, obj.Boolean)
	benchfb.TestObjectAddAnotherBool(b, obj.AnotherBool)
	root := benchfb.TestObjectEnd(b)

	b.Finish(root)
	return b.FinishedBytes(), nil
}

// Deserialize decodes buf into a fresh TestObj. The generated accessors
// have no verifier, so out-of-range offsets in malformed input surface as
// panics; those are converted to errors here.
func (c *Codec) Deserialize(buf []byte) (obj *model.TestObj, err error) {
	if len(buf) < flatbuffers.SizeUOffsetT {
		return nil, fmt.Errorf("flatbuffers: %w", codec.ErrTruncated)
	}
	defer func() {
		if r := recover(); r != nil {
			obj = nil
			err = fmt.Errorf("flatbuffers: malformed buffer: %v", r)
		}
	}()

	root := benchfb.GetRootAsTestObject(buf, 0)
	out := &model.TestObj{}

	if fixed := root.FixedObject(nil); fixed != nil {
		if n := fixed.IntArrayLength(); n > 0 {
			out.FixedObject.IntArray = make([]int32, n)
			for i := range out.FixedObject.IntArray {
				out.FixedObject.IntArray[i] = fixed.IntArray(i)
			}
		}
		if n := fixed.FloatArrayLength(); n > 0 {
			out.FixedObject.FloatArray = make([]float32, n)
			for i := range out.FixedObject.FloatArray {
				out.FixedObject.FloatArray[i] = fixed.FloatArray(i)
			}
		}
		if n := fixed.DoubleArrayLength(); n > 0 {
			out.FixedObject.DoubleArray = make([]float64, n)
			for i := range out.FixedObject.DoubleArray {
				out.FixedObject.DoubleArray[i] = fixed.DoubleArray(i)
			}
		}
	}

	if names := root.FixedNameObject(nil); names != nil {
		out.FixedNameObject.Name0 = string(names.Name0())
		out.FixedNameObject.Name1 = string(names.Name1())
		out.FixedNameObject.Name2 = string(names.Name2())
		out.FixedNameObject.Name3 = string(names.Name3())
		out.FixedNameObject.Name4 = string(names.Name4())
	}

	if another := root.AnotherObject(nil); another != nil {
		out.AnotherObject.String = string(another.String())
		out.AnotherObject.AnotherString = string(another.AnotherString())
		out.AnotherObject.EscapedText = string(another.EscapedText())
		out.AnotherObject.Boolean = another.Boolean()
		if nested := another.NestedObject(nil); nested != nil {
			if n := nested.V3sLength(); n > 0 {
				out.AnotherObject.NestedObject.V3s = make([]model.Vec3, n)
				var v benchfb.Vec3
				for i := range out.AnotherObject.NestedObject.V3s {
					if nested.V3s(&v, i) {
						out.AnotherObject.NestedObject.V3s[i] = model.Vec3{X: v.X(), Y: v.Y(), Z: v.Z()}
					}
				}
			}
			out.AnotherObject.NestedObject.ID = string(nested.Id())
		}
	}

	if n := root.StringArrayLength(); n > 0 {
		out.StringArray = make([]string, n)
		for i := range out.StringArray {
			out.StringArray[i] = string(root.StringArray(i))
		}
	}
	out.String = string(root.String())
	out.Number = root.Number()
	out.Boolean = root.Boolean()
	out.AnotherBool = root.AnotherBool()
	return out, nil
}

// Checksum reads every field in place. The byte-slice getters return
// views into buf, so strings contribute length without copying.
func (c *Codec) Checksum(buf []byte) (sum uint64, err error) {
	if len(buf) < flatbuffers.SizeUOffsetT {
		return 0, fmt.Errorf("flatbuffers: %w", codec.ErrTruncated)
	}
	defer func() {
		if r := recover(); r != nil {
			sum = 0
			err = fmt.Errorf("flatbuffers: malformed buffer: %v", r)
		}
	}()

	root := benchfb.GetRootAsTestObject(buf, 0)

	if fixed := root.FixedObject(nil); fixed != nil {
		for i, n := 0, fixed.IntArrayLength(); i < n; i++ {
			sum += uint64(int64(fixed.IntArray(i)))
		}
		for i, n := 0, fixed.FloatArrayLength(); i < n; i++ {
			sum += uint64(fixed.FloatArray(i))
		}
		for i, n := 0, fixed.DoubleArrayLength(); i < n; i++ {
			sum += uint64(fixed.DoubleArray(i))
		}
	}

	if names := root.FixedNameObject(nil); names != nil {
		sum += uint64(len(names.Name0()))
		sum += uint64(len(names.Name1()))
		sum += uint64(len(names.Name2()))
		sum += uint64(len(names.Name3()))
		sum += uint64(len(names.Name4()))
	}

	if another := root.AnotherObject(nil); another != nil {
		sum += uint64(len(another.String()))
		sum += uint64(len(another.AnotherString()))
		sum += uint64(len(another.EscapedText()))
		if another.Boolean() {
			sum++
		}
		if nested := another.NestedObject(nil); nested != nil {
			var v benchfb.Vec3
			for i, n := 0, nested.V3sLength(); i < n; i++ {
				if nested.V3s(&v, i) {
					sum += uint64(v.X() + v.Y() + v.Z())
				}
			}
			sum += uint64(len(nested.Id()))
		}
	}

	for i, n := 0, root.StringArrayLength(); i < n; i++ {
		sum += uint64(len(root.StringArray(i)))
	}
	sum += uint64(len(root.String()))
	sum += uint64(root.Number())
	if root.Boolean() {
		sum++
	}
	if root.AnotherBool() {
		sum++
	}
	return sum, nil
}
