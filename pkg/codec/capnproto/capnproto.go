// Package capnproto adapts Cap'n Proto to the harness through the
// hand-maintained accessors in benchcp.
package capnproto

import (
	"fmt"

	capnp "capnproto.org/go/capnp/v3"

	"github.com/appnet-org/wirebench/pkg/codec/capnproto/benchcp"
	"github.com/appnet-org/wirebench/pkg/model"
)

// Codec reuses its single-segment arena across Serialize calls, so only
// the framed output buffer is allocated per call.
type Codec struct {
	arena []byte
}

// New returns a Cap'n Proto codec with an empty arena.
func New() *Codec { return &Codec{} }

// Name implements codec.Codec.
func (c *Codec) Name() string { return "Cap'n Proto" }

// Serialize builds the message in the codec's arena and marshals it with
// standard stream framing.
func (c *Codec) Serialize(obj *model.TestObj) ([]byte, error) {
	msg, seg, err := capnp.NewMessage(capnp.SingleSegment(c.arena[:0]))
	if err != nil {
		return nil, fmt.Errorf("capnp message: %w", err)
	}
	root, err := benchcp.NewRootTestObject(seg)
	if err != nil {
		return nil, fmt.Errorf("capnp root: %w", err)
	}
	if err := populate(root, obj); err != nil {
		return nil, fmt.Errorf("capnp build: %w", err)
	}
	out, err := msg.Marshal()
	if err != nil {
		return nil, fmt.Errorf("capnp marshal: %w", err)
	}
	c.arena = seg.Data()
	return out, nil
}

func populate(root benchcp.TestObject, obj *model.TestObj) error {
	fixed, err := root.NewFixedObject()
	if err != nil {
		return err
	}
	ints, err := fixed.NewIntArray(int32(len(obj.FixedObject.IntArray)))
	if err != nil {
		return err
	}
	for i, v := range obj.FixedObject.IntArray {
		ints.Set(i, v)
	}
	floats, err := fixed.NewFloatArray(int32(len(obj.FixedObject.FloatArray)))
	if err != nil {
		return err
	}
	for i, v := range obj.FixedObject.FloatArray {
		floats.Set(i, v)
	}
	doubles, err := fixed.NewDoubleArray(int32(len(obj.FixedObject.DoubleArray)))
	if err != nil {
		return err
	}
	for i, v := range obj.FixedObject.DoubleArray {
		doubles.Set(i, v)
	}

	names, err := root.NewFixedNameObject()
	if err != nil {
		return err
	}
	if err := names.SetName0(obj.FixedNameObject.Name0); err != nil {
		return err
	}
	if err := names.SetName1(obj.FixedNameObject.Name1); err != nil {
		return err
	}
	if err := names.SetName2(obj.FixedNameObject.Name2); err != nil {
		return err
	}
	if err := names.SetName3(obj.FixedNameObject.Name3); err != nil {
		return err
	}
	if err := names.SetName4(obj.FixedNameObject.Name4); err != nil {
		return err
	}

	another, err := root.NewAnotherObject()
	if err != nil {
		return err
	}
	if err := another.SetString(obj.AnotherObject.String); err != nil {
		return err
	}
	if err := another.SetAnotherString(obj.AnotherObject.AnotherString); err != nil {
		return err
	}
	if err := another.SetEscapedText(obj.AnotherObject.EscapedText); err != nil {
		return err
	}
	another.SetBoolean(obj.AnotherObject.Boolean)

	nested, err := another.NewNestedObject()
	if err != nil {
		return err
	}
	v3s, err := nested.NewV3s(int32(len(obj.AnotherObject.NestedObject.V3s)))
	if err != nil {
		return err
	}
	for i, v := range obj.AnotherObject.NestedObject.V3s {
		el := v3s.At(i)
		el.SetX(v.X)
		el.SetY(v.Y)
		el.SetZ(v.Z)
	}
	if err := nested.SetId(obj.AnotherObject.NestedObject.ID); err != nil {
		return err
	}

	strs, err := root.NewStringArray(int32(len(obj.StringArray)))
	if err != nil {
		return err
	}
	for i, s := range obj.StringArray {
		if err := strs.Set(i, s); err != nil {
			return err
		}
	}

	if err := root.SetString(obj.String); err != nil {
		return err
	}
	root.SetNumber(obj.Number)
	root.SetBoolean(obj.Boolean)
	root.SetAnotherBool(obj.AnotherBool)
	return nil
}

// Deserialize decodes buf into a fresh TestObj. The string getters copy
// text out of the message, so the result does not alias buf.
func (c *Codec) Deserialize(buf []byte) (*model.TestObj, error) {
	msg, err := capnp.Unmarshal(buf)
	if err != nil {
		return nil, fmt.Errorf("capnp unmarshal: %w", err)
	}
	root, err := benchcp.ReadRootTestObject(msg)
	if err != nil {
		return nil, fmt.Errorf("capnp root: %w", err)
	}

	obj := &model.TestObj{}

	fixed, err := root.FixedObject()
	if err != nil {
		return nil, err
	}
	ints, err := fixed.IntArray()
	if err != nil {
		return nil, err
	}
	if n := ints.Len(); n > 0 {
		obj.FixedObject.IntArray = make([]int32, n)
		for i := range obj.FixedObject.IntArray {
			obj.FixedObject.IntArray[i] = ints.At(i)
		}
	}
	floats, err := fixed.FloatArray()
	if err != nil {
		return nil, err
	}
	if n := floats.Len(); n > 0 {
		obj.FixedObject.FloatArray = make([]float32, n)
		for i := range obj.FixedObject.FloatArray {
			obj.FixedObject.FloatArray[i] = floats.At(i)
		}
	}
	doubles, err := fixed.DoubleArray()
	if err != nil {
		return nil, err
	}
	if n := doubles.Len(); n > 0 {
		obj.FixedObject.DoubleArray = make([]float64, n)
		for i := range obj.FixedObject.DoubleArray {
			obj.FixedObject.DoubleArray[i] = doubles.At(i)
		}
	}

	names, err := root.FixedNameObject()
	if err != nil {
		return nil, err
	}
	if obj.FixedNameObject.Name0, err = names.Name0(); err != nil {
		return nil, err
	}
	if obj.FixedNameObject.Name1, err = names.Name1(); err != nil {
		return nil, err
	}
	if obj.FixedNameObject.Name2, err = names.Name2(); err != nil {
		return nil, err
	}
	if obj.FixedNameObject.Name3, err = names.Name3(); err != nil {
		return nil, err
	}
	if obj.FixedNameObject.Name4, err = names.Name4(); err != nil {
		return nil, err
	}

	another, err := root.AnotherObject()
	if err != nil {
		return nil, err
	}
	if obj.AnotherObject.String, err = another.String(); err != nil {
		return nil, err
	}
	if obj.AnotherObject.AnotherString, err = another.AnotherString(); err != nil {
		return nil, err
	}
	if obj.AnotherObject.EscapedText, err = another.EscapedText(); err != nil {
		return nil, err
	}
	obj.AnotherObject.Boolean = another.Boolean()

	nested, err := another.NestedObject()
	if err != nil {
		return nil, err
	}
	v3s, err := nested.V3s()
	if err != nil {
		return nil, err
	}
	if n := v3s.Len(); n > 0 {
		obj.AnotherObject.NestedObject.V3s = make([]model.Vec3, n)
		for i := range obj.AnotherObject.NestedObject.V3s {
			el := v3s.At(i)
			obj.AnotherObject.NestedObject.V3s[i] = model.Vec3{X: el.X(), Y: el.Y(), Z: el.Z()}
		}
	}
	if obj.AnotherObject.NestedObject.ID, err = nested.Id(); err != nil {
		return nil, err
	}

	strs, err := root.StringArray()
	if err != nil {
		return nil, err
	}
	if n := strs.Len(); n > 0 {
		obj.StringArray = make([]string, n)
		for i := range obj.StringArray {
			if obj.StringArray[i], err = strs.At(i); err != nil {
				return nil, err
			}
		}
	}

	if obj.String, err = root.String(); err != nil {
		return nil, err
	}
	obj.Number = root.Number()
	obj.Boolean = root.Boolean()
	obj.AnotherBool = root.AnotherBool()
	return obj, nil
}

// Checksum reads straight out of the unmarshalled message. Text fields go
// through the Bytes getters, so nothing is copied and only lengths count.
func (c *Codec) Checksum(buf []byte) (uint64, error) {
	msg, err := capnp.Unmarshal(buf)
	if err != nil {
		return 0, fmt.Errorf("capnp unmarshal: %w", err)
	}
	root, err := benchcp.ReadRootTestObject(msg)
	if err != nil {
		return 0, fmt.Errorf("capnp root: %w", err)
	}

	var sum uint64

	fixed, err := root.FixedObject()
	if err != nil {
		return 0, err
	}
	ints, err := fixed.IntArray()
	if err != nil {
		return 0, err
	}
	for i := 0; i < ints.Len(); i++ {
		sum += uint64(int64(ints.At(i)))
	}
	floats, err := fixed.FloatArray()
	if err != nil {
		return 0, err
	}
	for i := 0; i < floats.Len(); i++ {
		sum += uint64(floats.At(i))
	}
	doubles, err := fixed.DoubleArray()
	if err != nil {
		return 0, err
	}
	for i := 0; i < doubles.Len(); i++ {
		sum += uint64(doubles.At(i))
	}

	names, err := root.FixedNameObject()
	if err != nil {
		return 0, err
	}
	name0, err := names.Name0Bytes()
	if err != nil {
		return 0, err
	}
	sum += uint64(len(name0))
	name1, err := names.Name1Bytes()
	if err != nil {
		return 0, err
	}
	sum += uint64(len(name1))
	name2, err := names.Name2Bytes()
	if err != nil {
		return 0, err
	}
	sum += uint64(len(name2))
	name3, err := names.Name3Bytes()
	if err != nil {
		return 0, err
	}
	sum += uint64(len(name3))
	name4, err := names.Name4Bytes()
	if err != nil {
		return 0, err
	}
	sum += uint64(len(name4))

	another, err := root.AnotherObject()
	if err != nil {
		return 0, err
	}
	astr, err := another.StringBytes()
	if err != nil {
		return 0, err
	}
	sum += uint64(len(astr))
	astr2, err := another.AnotherStringBytes()
	if err != nil {
		return 0, err
	}
	sum += uint64(len(astr2))
	esc, err := another.EscapedTextBytes()
	if err != nil {
		return 0, err
	}
	sum += uint64(len(esc))
	if another.Boolean() {
		sum++
	}

	nested, err := another.NestedObject()
	if err != nil {
		return 0, err
	}
	v3s, err := nested.V3s()
	if err != nil {
		return 0, err
	}
	for i := 0; i < v3s.Len(); i++ {
		el := v3s.At(i)
		sum += uint64(el.X() + el.Y() + el.Z())
	}
	id, err := nested.IdBytes()
	if err != nil {
		return 0, err
	}
	sum += uint64(len(id))

	strs, err := root.StringArray()
	if err != nil {
		return 0, err
	}
	for i := 0; i < strs.Len(); i++ {
		b, err := strs.BytesAt(i)
		if err != nil {
			return 0, err
		}
		sum += uint64(len(b))
	}

	str, err := root.StringBytes()
	if err != nil {
		return 0, err
	}
	sum += uint64(len(str))
	sum += uint64(root.Number())
	if root.Boolean() {
		sum++
	}
	if root.AnotherBool() {
		sum++
	}
	return sum, nil
}
