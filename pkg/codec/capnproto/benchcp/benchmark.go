// Package benchcp provides Cap'n Proto accessors for the schema in
// ../benchmark.capnp. The layout mirrors capnpc-go output, with pointer
// and data offsets fixed by the schema's field ordinals, and is
// maintained by hand so the build does not depend on the capnp toolchain.
package benchcp

import (
	"math"

	capnp "capnproto.org/go/capnp/v3"
)

type Vec3 capnp.Struct

func NewVec3(s *capnp.Segment) (Vec3, error) {
	st, err := capnp.NewStruct(s, capnp.ObjectSize{DataSize: 24, PointerCount: 0})
	return Vec3(st), err
}

func (s Vec3) X() float64 {
	return math.Float64frombits(capnp.Struct(s).Uint64(0))
}

func (s Vec3) SetX(v float64) {
	capnp.Struct(s).SetUint64(0, math.Float64bits(v))
}

func (s Vec3) Y() float64 {
	return math.Float64frombits(capnp.Struct(s).Uint64(8))
}

func (s Vec3) SetY(v float64) {
	capnp.Struct(s).SetUint64(8, math.Float64bits(v))
}

func (s Vec3) Z() float64 {
	return math.Float64frombits(capnp.Struct(s).Uint64(16))
}

func (s Vec3) SetZ(v float64) {
	capnp.Struct(s).SetUint64(16, math.Float64bits(v))
}

// Vec3_List is a list of Vec3.
type Vec3_List = capnp.StructList[Vec3]

// NewVec3_List creates a new list of Vec3.
func NewVec3_List(s *capnp.Segment, sz int32) (Vec3_List, error) {
	l, err := capnp.NewCompositeList(s, capnp.ObjectSize{DataSize: 24, PointerCount: 0}, sz)
	return capnp.StructList[Vec3](l), err
}

type NestedObject capnp.Struct

func NewNestedObject(s *capnp.Segment) (NestedObject, error) {
	st, err := capnp.NewStruct(s, capnp.ObjectSize{DataSize: 0, PointerCount: 2})
	return NestedObject(st), err
}

func (s NestedObject) V3s() (Vec3_List, error) {
	p, err := capnp.Struct(s).Ptr(0)
	return Vec3_List(p.List()), err
}

func (s NestedObject) HasV3s() bool {
	return capnp.Struct(s).HasPtr(0)
}

func (s NestedObject) SetV3s(v Vec3_List) error {
	return capnp.Struct(s).SetPtr(0, v.ToPtr())
}

// NewV3s sets the v3s field to a newly allocated Vec3_List, preferring
// placement in s's segment.
func (s NestedObject) NewV3s(n int32) (Vec3_List, error) {
	l, err := NewVec3_List(capnp.Struct(s).Segment(), n)
	if err != nil {
		return Vec3_List{}, err
	}
	err = capnp.Struct(s).SetPtr(0, l.ToPtr())
	return l, err
}

func (s NestedObject) Id() (string, error) {
	p, err := capnp.Struct(s).Ptr(1)
	return p.Text(), err
}

func (s NestedObject) HasId() bool {
	return capnp.Struct(s).HasPtr(1)
}

func (s NestedObject) IdBytes() ([]byte, error) {
	p, err := capnp.Struct(s).Ptr(1)
	return p.TextBytes(), err
}

func (s NestedObject) SetId(v string) error {
	return capnp.Struct(s).SetText(1, v)
}

type AnotherObject capnp.Struct

func NewAnotherObject(s *capnp.Segment) (AnotherObject, error) {
	st, err := capnp.NewStruct(s, capnp.ObjectSize{DataSize: 8, PointerCount: 4})
	return AnotherObject(st), err
}

func (s AnotherObject) String() (string, error) {
	p, err := capnp.Struct(s).Ptr(0)
	return p.Text(), err
}

func (s AnotherObject) HasString() bool {
	return capnp.Struct(s).HasPtr(0)
}

func (s AnotherObject) StringBytes() ([]byte, error) {
	p, err := capnp.Struct(s).Ptr(0)
	return p.TextBytes(), err
}

func (s AnotherObject) SetString(v string) error {
	return capnp.Struct(s).SetText(0, v)
}

func (s AnotherObject) AnotherString() (string, error) {
	p, err := capnp.Struct(s).Ptr(1)
	return p.Text(), err
}

func (s AnotherObject) HasAnotherString() bool {
	return capnp.Struct(s).HasPtr(1)
}

func (s AnotherObject) AnotherStringBytes() ([]byte, error) {
	p, err := capnp.Struct(s).Ptr(1)
	return p.TextBytes(), err
}

func (s AnotherObject) SetAnotherString(v string) error {
	return capnp.Struct(s).SetText(1, v)
}

func (s AnotherObject) EscapedText() (string, error) {
	p, err := capnp.Struct(s).Ptr(2)
	return p.Text(), err
}

func (s AnotherObject) HasEscapedText() bool {
	return capnp.Struct(s).HasPtr(2)
}

func (s AnotherObject) EscapedTextBytes() ([]byte, error) {
	p, err := capnp.Struct(s).Ptr(2)
	return p.TextBytes(), err
}

func (s AnotherObject) SetEscapedText(v string) error {
	return capnp.Struct(s).SetText(2, v)
}

func (s AnotherObject) Boolean() bool {
	return capnp.Struct(s).Bit(0)
}

func (s AnotherObject) SetBoolean(v bool) {
	capnp.Struct(s).SetBit(0, v)
}

func (s AnotherObject) NestedObject() (NestedObject, error) {
	p, err := capnp.Struct(s).Ptr(3)
	return NestedObject(p.Struct()), err
}

func (s AnotherObject) HasNestedObject() bool {
	return capnp.Struct(s).HasPtr(3)
}

func (s AnotherObject) SetNestedObject(v NestedObject) error {
	return capnp.Struct(s).SetPtr(3, capnp.Struct(v).ToPtr())
}

// NewNestedObject sets the nestedObject field to a newly allocated
// NestedObject struct, preferring placement in s's segment.
func (s AnotherObject) NewNestedObject() (NestedObject, error) {
	ss, err := NewNestedObject(capnp.Struct(s).Segment())
	if err != nil {
		return NestedObject{}, err
	}
	err = capnp.Struct(s).SetPtr(3, capnp.Struct(ss).ToPtr())
	return ss, err
}

type FixedObject capnp.Struct

func NewFixedObject(s *capnp.Segment) (FixedObject, error) {
	st, err := capnp.NewStruct(s, capnp.ObjectSize{DataSize: 0, PointerCount: 3})
	return FixedObject(st), err
}

func (s FixedObject) IntArray() (capnp.Int32List, error) {
	p, err := capnp.Struct(s).Ptr(0)
	return capnp.Int32List(p.List()), err
}

func (s FixedObject) HasIntArray() bool {
	return capnp.Struct(s).HasPtr(0)
}

func (s FixedObject) SetIntArray(v capnp.Int32List) error {
	return capnp.Struct(s).SetPtr(0, v.ToPtr())
}

// NewIntArray sets the intArray field to a newly allocated
// capnp.Int32List, preferring placement in s's segment.
func (s FixedObject) NewIntArray(n int32) (capnp.Int32List, error) {
	l, err := capnp.NewInt32List(capnp.Struct(s).Segment(), n)
	if err != nil {
		return capnp.Int32List{}, err
	}
	err = capnp.Struct(s).SetPtr(0, l.ToPtr())
	return l, err
}

func (s FixedObject) FloatArray() (capnp.Float32List, error) {
	p, err := capnp.Struct(s).Ptr(1)
	return capnp.Float32List(p.List()), err
}

func (s FixedObject) HasFloatArray() bool {
	return capnp.Struct(s).HasPtr(1)
}

func (s FixedObject) SetFloatArray(v capnp.Float32List) error {
	return capnp.Struct(s).SetPtr(1, v.ToPtr())
}

// NewFloatArray sets the floatArray field to a newly allocated
// capnp.Float32List, preferring placement in s's segment.
func (s FixedObject) NewFloatArray(n int32) (capnp.Float32List, error) {
	l, err := capnp.NewFloat32List(capnp.Struct(s).Segment(), n)
	if err != nil {
		return capnp.Float32List{}, err
	}
	err = capnp.Struct(s).SetPtr(1, l.ToPtr())
	return l, err
}

func (s FixedObject) DoubleArray() (capnp.Float64List, error) {
	p, err := capnp.Struct(s).Ptr(2)
	return capnp.Float64List(p.List()), err
}

func (s FixedObject) HasDoubleArray() bool {
	return capnp.Struct(s).HasPtr(2)
}

func (s FixedObject) SetDoubleArray(v capnp.Float64List) error {
	return capnp.Struct(s).SetPtr(2, v.ToPtr())
}

// NewDoubleArray sets the doubleArray field to a newly allocated
// capnp.Float64List, preferring placement in s's segment.
func (s FixedObject) NewDoubleArray(n int32) (capnp.Float64List, error) {
	l, err := capnp.NewFloat64List(capnp.Struct(s).Segment(), n)
	if err != nil {
		return capnp.Float64List{}, err
	}
	err = capnp.Struct(s).SetPtr(2, l.ToPtr())
	return l, err
}

type FixedNameObject capnp.Struct

func NewFixedNameObject(s *capnp.Segment) (FixedNameObject, error) {
	st, err := capnp.NewStruct(s, capnp.ObjectSize{DataSize: 0, PointerCount: 5})
	return FixedNameObject(st), err
}

func (s FixedNameObject) Name0() (string, error) {
	p, err := capnp.Struct(s).Ptr(0)
	return p.Text(), err
}

func (s FixedNameObject) HasName0() bool {
	return capnp.Struct(s).HasPtr(0)
}

func (s FixedNameObject) Name0Bytes() ([]byte, error) {
	p, err := capnp.Struct(s).Ptr(0)
	return p.TextBytes(), err
}

func (s FixedNameObject) SetName0(v string) error {
	return capnp.Struct(s).SetText(0, v)
}

func (s FixedNameObject) Name1() (string, error) {
	p, err := capnp.Struct(s).Ptr(1)
	return p.Text(), err
}

func (s FixedNameObject) HasName1() bool {
	return capnp.Struct(s).HasPtr(1)
}

func (s FixedNameObject) Name1Bytes() ([]byte, error) {
	p, err := capnp.Struct(s).Ptr(1)
	return p.TextBytes(), err
}

func (s FixedNameObject) SetName1(v string) error {
	return capnp.Struct(s).SetText(1, v)
}

func (s FixedNameObject) Name2() (string, error) {
	p, err := capnp.Struct(s).Ptr(2)
	return p.Text(), err
}

func (s FixedNameObject) HasName2() bool {
	return capnp.Struct(s).HasPtr(2)
}

func (s FixedNameObject) Name2Bytes() ([]byte, error) {
	p, err := capnp.Struct(s).Ptr(2)
	return p.TextBytes(), err
}

func (s FixedNameObject) SetName2(v string) error {
	return capnp.Struct(s).SetText(2, v)
}

func (s FixedNameObject) Name3() (string, error) {
	p, err := capnp.Struct(s).Ptr(3)
	return p.Text(), err
}

func (s FixedNameObject) HasName3() bool {
	return capnp.Struct(s).HasPtr(3)
}

func (s FixedNameObject) Name3Bytes() ([]byte, error) {
	p, err := capnp.Struct(s).Ptr(3)
	return p.TextBytes(), err
}

func (s FixedNameObject) SetName3(v string) error {
	return capnp.Struct(s).SetText(3, v)
}

func (s FixedNameObject) Name4() (string, error) {
	p, err := capnp.Struct(s).Ptr(4)
	return p.Text(), err
}

func (s FixedNameObject) HasName4() bool {
	return capnp.Struct(s).HasPtr(4)
}

func (s FixedNameObject) Name4Bytes() ([]byte, error) {
	p, err := capnp.Struct(s).Ptr(4)
	return p.TextBytes(), err
}

func (s FixedNameObject) SetName4(v string) error {
	return capnp.Struct(s).SetText(4, v)
}

type TestObject capnp.Struct

func NewTestObject(s *capnp.Segment) (TestObject, error) {
	st, err := capnp.NewStruct(s, capnp.ObjectSize{DataSize: 16, PointerCount: 5})
	return TestObject(st), err
}

func NewRootTestObject(s *capnp.Segment) (TestObject, error) {
	st, err := capnp.NewRootStruct(s, capnp.ObjectSize{DataSize: 16, PointerCount: 5})
	return TestObject(st), err
}

func ReadRootTestObject(msg *capnp.Message) (TestObject, error) {
	root, err := msg.Root()
	return TestObject(root.Struct()), err
}

func (s TestObject) FixedObject() (FixedObject, error) {
	p, err := capnp.Struct(s).Ptr(0)
	return FixedObject(p.Struct()), err
}

func (s TestObject) HasFixedObject() bool {
	return capnp.Struct(s).HasPtr(0)
}

func (s TestObject) SetFixedObject(v FixedObject) error {
	return capnp.Struct(s).SetPtr(0, capnp.Struct(v).ToPtr())
}

// NewFixedObject sets the fixedObject field to a newly allocated
// FixedObject struct, preferring placement in s's segment.
func (s TestObject) NewFixedObject() (FixedObject, error) {
	ss, err := NewFixedObject(capnp.Struct(s).Segment())
	if err != nil {
		return FixedObject{}, err
	}
	err = capnp.Struct(s).SetPtr(0, capnp.Struct(ss).ToPtr())
	return ss, err
}

func (s TestObject) FixedNameObject() (FixedNameObject, error) {
	p, err := capnp.Struct(s).Ptr(1)
	return FixedNameObject(p.Struct()), err
}

func (s TestObject) HasFixedNameObject() bool {
	return capnp.Struct(s).HasPtr(1)
}

func (s TestObject) SetFixedNameObject(v FixedNameObject) error {
	return capnp.Struct(s).SetPtr(1, capnp.Struct(v).ToPtr())
}

// NewFixedNameObject sets the fixedNameObject field to a newly allocated
// FixedNameObject struct, preferring placement in s's segment.
func (s TestObject) NewFixedNameObject() (FixedNameObject, error) {
	ss, err := NewFixedNameObject(capnp.Struct(s).Segment())
	if err != nil {
		return FixedNameObject{}, err
	}
	err = capnp.Struct(s).SetPtr(1, capnp.Struct(ss).ToPtr())
	return ss, err
}

func (s TestObject) AnotherObject() (AnotherObject, error) {
	p, err := capnp.Struct(s).Ptr(2)
	return AnotherObject(p.Struct()), err
}

func (s TestObject) HasAnotherObject() bool {
	return capnp.Struct(s).HasPtr(2)
}

func (s TestObject) SetAnotherObject(v AnotherObject) error {
	return capnp.Struct(s).SetPtr(2, capnp.Struct(v).ToPtr())
}

// NewAnotherObject sets the anotherObject field to a newly allocated
// AnotherObject struct, preferring placement in s's segment.
func (s TestObject) NewAnotherObject() (AnotherObject, error) {
	ss, err := NewAnotherObject(capnp.Struct(s).Segment())
	if err != nil {
		return AnotherObject{}, err
	}
	err = capnp.Struct(s).SetPtr(2, capnp.Struct(ss).ToPtr())
	return ss, err
}

func (s TestObject) StringArray() (capnp.TextList, error) {
	p, err := capnp.Struct(s).Ptr(3)
	return capnp.TextList(p.List()), err
}

func (s TestObject) HasStringArray() bool {
	return capnp.Struct(s).HasPtr(3)
}

func (s TestObject) SetStringArray(v capnp.TextList) error {
	return capnp.Struct(s).SetPtr(3, v.ToPtr())
}

// NewStringArray sets the stringArray field to a newly allocated
// capnp.TextList, preferring placement in s's segment.
func (s TestObject) NewStringArray(n int32) (capnp.TextList, error) {
	l, err := capnp.NewTextList(capnp.Struct(s).Segment(), n)
	if err != nil {
		return capnp.TextList{}, err
	}
	err = capnp.Struct(s).SetPtr(3, l.ToPtr())
	return l, err
}

func (s TestObject) String() (string, error) {
	p, err := capnp.Struct(s).Ptr(4)
	return p.Text(), err
}

func (s TestObject) HasString() bool {
	return capnp.Struct(s).HasPtr(4)
}

func (s TestObject) StringBytes() ([]byte, error) {
	p, err := capnp.Struct(s).Ptr(4)
	return p.TextBytes(), err
}

func (s TestObject) SetString(v string) error {
	return capnp.Struct(s).SetText(4, v)
}

func (s TestObject) Number() float64 {
	return math.Float64frombits(capnp.Struct(s).Uint64(0))
}

func (s TestObject) SetNumber(v float64) {
	capnp.Struct(s).SetUint64(0, math.Float64bits(v))
}

func (s TestObject) Boolean() bool {
	return capnp.Struct(s).Bit(64)
}

func (s TestObject) SetBoolean(v bool) {
	capnp.Struct(s).SetBit(64, v)
}

func (s TestObject) AnotherBool() bool {
	return capnp.Struct(s).Bit(65)
}

func (s TestObject) SetAnotherBool(v bool) {
	capnp.Struct(s).SetBit(65, v)
}
