package protobuf

import (
	"math"

	"google.golang.org/protobuf/encoding/protowire"

	"github.com/appnet-org/wirebench/pkg/model"
)

// The encoder always writes every field, zero-valued or not, so each
// iteration performs the same amount of work regardless of payload
// content. Proto3 parsers accept explicit zero values, and the decoder
// below accepts canonical zero-elided buffers as well. Repeated numeric
// fields are written packed; the decoder also accepts the unpacked form.

func sizeVec3() int {
	n := protowire.SizeTag(1) + protowire.SizeFixed64()
	n += protowire.SizeTag(2) + protowire.SizeFixed64()
	n += protowire.SizeTag(3) + protowire.SizeFixed64()
	return n
}

func appendVec3(b []byte, v *model.Vec3) []byte {
	b = protowire.AppendTag(b, 1, protowire.Fixed64Type)
	b = protowire.AppendFixed64(b, math.Float64bits(v.X))
	b = protowire.AppendTag(b, 2, protowire.Fixed64Type)
	b = protowire.AppendFixed64(b, math.Float64bits(v.Y))
	b = protowire.AppendTag(b, 3, protowire.Fixed64Type)
	b = protowire.AppendFixed64(b, math.Float64bits(v.Z))
	return b
}

func sizeNestedObject(o *model.NestedObject) int {
	n := 0
	for range o.V3s {
		n += protowire.SizeTag(1) + protowire.SizeBytes(sizeVec3())
	}
	n += protowire.SizeTag(2) + protowire.SizeBytes(len(o.ID))
	return n
}

func appendNestedObject(b []byte, o *model.NestedObject) []byte {
	for i := range o.V3s {
		b = protowire.AppendTag(b, 1, protowire.BytesType)
		b = protowire.AppendVarint(b, uint64(sizeVec3()))
		b = appendVec3(b, &o.V3s[i])
	}
	b = protowire.AppendTag(b, 2, protowire.BytesType)
	b = protowire.AppendString(b, o.ID)
	return b
}

func sizeAnotherObject(o *model.AnotherObject) int {
	n := protowire.SizeTag(1) + protowire.SizeBytes(len(o.String))
	n += protowire.SizeTag(2) + protowire.SizeBytes(len(o.AnotherString))
	n += protowire.SizeTag(3) + protowire.SizeBytes(len(o.EscapedText))
	n += protowire.SizeTag(4) + protowire.SizeVarint(protowire.EncodeBool(o.Boolean))
	n += protowire.SizeTag(5) + protowire.SizeBytes(sizeNestedObject(&o.NestedObject))
	return n
}

func appendAnotherObject(b []byte, o *model.AnotherObject) []byte {
	b = protowire.AppendTag(b, 1, protowire.BytesType)
	b = protowire.AppendString(b, o.String)
	b = protowire.AppendTag(b, 2, protowire.BytesType)
	b = protowire.AppendString(b, o.AnotherString)
	b = protowire.AppendTag(b, 3, protowire.BytesType)
	b = protowire.AppendString(b, o.EscapedText)
	b = protowire.AppendTag(b, 4, protowire.VarintType)
	b = protowire.AppendVarint(b, protowire.EncodeBool(o.Boolean))
	b = protowire.AppendTag(b, 5, protowire.BytesType)
	b = protowire.AppendVarint(b, uint64(sizeNestedObject(&o.NestedObject)))
	b = appendNestedObject(b, &o.NestedObject)
	return b
}

func packedIntSize(vs []int32) int {
	n := 0
	for _, v := range vs {
		n += protowire.SizeVarint(uint64(int64(v)))
	}
	return n
}

func sizeFixedObject(o *model.FixedObject) int {
	n := protowire.SizeTag(1) + protowire.SizeBytes(packedIntSize(o.IntArray))
	n += protowire.SizeTag(2) + protowire.SizeBytes(4*len(o.FloatArray))
	n += protowire.SizeTag(3) + protowire.SizeBytes(8*len(o.DoubleArray))
	return n
}

func appendFixedObject(b []byte, o *model.FixedObject) []byte {
	b = protowire.AppendTag(b, 1, protowire.BytesType)
	b = protowire.AppendVarint(b, uint64(packedIntSize(o.IntArray)))
	for _, v := range o.IntArray {
		b = protowire.AppendVarint(b, uint64(int64(v)))
	}
	b = protowire.AppendTag(b, 2, protowire.BytesType)
	b = protowire.AppendVarint(b, uint64(4*len(o.FloatArray)))
	for _, v := range o.FloatArray {
		b = protowire.AppendFixed32(b, math.Float32bits(v))
	}
	b = protowire.AppendTag(b, 3, protowire.BytesType)
	b = protowire.AppendVarint(b, uint64(8*len(o.DoubleArray)))
	for _, v := range o.DoubleArray {
		b = protowire.AppendFixed64(b, math.Float64bits(v))
	}
	return b
}

func sizeFixedNameObject(o *model.FixedNameObject) int {
	n := protowire.SizeTag(1) + protowire.SizeBytes(len(o.Name0))
	n += protowire.SizeTag(2) + protowire.SizeBytes(len(o.Name1))
	n += protowire.SizeTag(3) + protowire.SizeBytes(len(o.Name2))
	n += protowire.SizeTag(4) + protowire.SizeBytes(len(o.Name3))
	n += protowire.SizeTag(5) + protowire.SizeBytes(len(o.Name4))
	return n
}

func appendFixedNameObject(b []byte, o *model.FixedNameObject) []byte {
	b = protowire.AppendTag(b, 1, protowire.BytesType)
	b = protowire.AppendString(b, o.Name0)
	b = protowire.AppendTag(b, 2, protowire.BytesType)
	b = protowire.AppendString(b, o.Name1)
	b = protowire.AppendTag(b, 3, protowire.BytesType)
	b = protowire.AppendString(b, o.Name2)
	b = protowire.AppendTag(b, 4, protowire.BytesType)
	b = protowire.AppendString(b, o.Name3)
	b = protowire.AppendTag(b, 5, protowire.BytesType)
	b = protowire.AppendString(b, o.Name4)
	return b
}

func sizeTestObj(o *model.TestObj) int {
	n := protowire.SizeTag(1) + protowire.SizeBytes(sizeFixedObject(&o.FixedObject))
	n += protowire.SizeTag(2) + protowire.SizeBytes(sizeFixedNameObject(&o.FixedNameObject))
	n += protowire.SizeTag(3) + protowire.SizeBytes(sizeAnotherObject(&o.AnotherObject))
	for _, s := range o.StringArray {
		n += protowire.SizeTag(4) + protowire.SizeBytes(len(s))
	}
	n += protowire.SizeTag(5) + protowire.SizeBytes(len(o.String))
	n += protowire.SizeTag(6) + protowire.SizeFixed64()
	n += protowire.SizeTag(7) + protowire.SizeVarint(protowire.EncodeBool(o.Boolean))
	n += protowire.SizeTag(8) + protowire.SizeVarint(protowire.EncodeBool(o.AnotherBool))
	return n
}

func appendTestObj(b []byte, o *model.TestObj) []byte {
	b = protowire.AppendTag(b, 1, protowire.BytesType)
	b = protowire.AppendVarint(b, uint64(sizeFixedObject(&o.FixedObject)))
	b = appendFixedObject(b, &o.FixedObject)
	b = protowire.AppendTag(b, 2, protowire.BytesType)
	b = protowire.AppendVarint(b, uint64(sizeFixedNameObject(&o.FixedNameObject)))
	b = appendFixedNameObject(b, &o.FixedNameObject)
	b = protowire.AppendTag(b, 3, protowire.BytesType)
	b = protowire.AppendVarint(b, uint64(sizeAnotherObject(&o.AnotherObject)))
	b = appendAnotherObject(b, &o.AnotherObject)
	for _, s := range o.StringArray {
		b = protowire.AppendTag(b, 4, protowire.BytesType)
		b = protowire.AppendString(b, s)
	}
	b = protowire.AppendTag(b, 5, protowire.BytesType)
	b = protowire.AppendString(b, o.String)
	b = protowire.AppendTag(b, 6, protowire.Fixed64Type)
	b = protowire.AppendFixed64(b, math.Float64bits(o.Number))
	b = protowire.AppendTag(b, 7, protowire.VarintType)
	b = protowire.AppendVarint(b, protowire.EncodeBool(o.Boolean))
	b = protowire.AppendTag(b, 8, protowire.VarintType)
	b = protowire.AppendVarint(b, protowire.EncodeBool(o.AnotherBool))
	return b
}

func consumeVec3(b []byte, v *model.Vec3) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return protowire.ParseError(n)
		}
		b = b[n:]
		switch {
		case num == 1 && typ == protowire.Fixed64Type:
			u, m := protowire.ConsumeFixed64(b)
			if m < 0 {
				return protowire.ParseError(m)
			}
			v.X = math.Float64frombits(u)
			b = b[m:]
		case num == 2 && typ == protowire.Fixed64Type:
			u, m := protowire.ConsumeFixed64(b)
			if m < 0 {
				return protowire.ParseError(m)
			}
			v.Y = math.Float64frombits(u)
			b = b[m:]
		case num == 3 && typ == protowire.Fixed64Type:
			u, m := protowire.ConsumeFixed64(b)
			if m < 0 {
				return protowire.ParseError(m)
			}
			v.Z = math.Float64frombits(u)
			b = b[m:]
		default:
			m := protowire.ConsumeFieldValue(num, typ, b)
			if m < 0 {
				return protowire.ParseError(m)
			}
			b = b[m:]
		}
	}
	return nil
}

func consumeNestedObject(b []byte, o *model.NestedObject) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return protowire.ParseError(n)
		}
		b = b[n:]
		switch {
		case num == 1 && typ == protowire.BytesType:
			v, m := protowire.ConsumeBytes(b)
			if m < 0 {
				return protowire.ParseError(m)
			}
			var vec model.Vec3
			if err := consumeVec3(v, &vec); err != nil {
				return err
			}
			o.V3s = append(o.V3s, vec)
			b = b[m:]
		case num == 2 && typ == protowire.BytesType:
			v, m := protowire.ConsumeString(b)
			if m < 0 {
				return protowire.ParseError(m)
			}
			o.ID = v
			b = b[m:]
		default:
			m := protowire.ConsumeFieldValue(num, typ, b)
			if m < 0 {
				return protowire.ParseError(m)
			}
			b = b[m:]
		}
	}
	return nil
}

func consumeAnotherObject(b []byte, o *model.AnotherObject) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return protowire.ParseError(n)
		}
		b = b[n:]
		switch {
		case num == 1 && typ == protowire.BytesType:
			v, m := protowire.ConsumeString(b)
			if m < 0 {
				return protowire.ParseError(m)
			}
			o.String = v
			b = b[m:]
		case num == 2 && typ == protowire.BytesType:
			v, m := protowire.ConsumeString(b)
			if m < 0 {
				return protowire.ParseError(m)
			}
			o.AnotherString = v
			b = b[m:]
		case num == 3 && typ == protowire.BytesType:
			v, m := protowire.ConsumeString(b)
			if m < 0 {
				return protowire.ParseError(m)
			}
			o.EscapedText = v
			b = b[m:]
		case num == 4 && typ == protowire.VarintType:
			v, m := protowire.ConsumeVarint(b)
			if m < 0 {
				return protowire.ParseError(m)
			}
			o.Boolean = protowire.DecodeBool(v)
			b = b[m:]
		case num == 5 && typ == protowire.BytesType:
			v, m := protowire.ConsumeBytes(b)
			if m < 0 {
				return protowire.ParseError(m)
			}
			if err := consumeNestedObject(v, &o.NestedObject); err != nil {
				return err
			}
			b = b[m:]
		default:
			m := protowire.ConsumeFieldValue(num, typ, b)
			if m < 0 {
				return protowire.ParseError(m)
			}
			b = b[m:]
		}
	}
	return nil
}

func consumeFixedObject(b []byte, o *model.FixedObject) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return protowire.ParseError(n)
		}
		b = b[n:]
		switch {
		case num == 1 && typ == protowire.BytesType:
			v, m := protowire.ConsumeBytes(b)
			if m < 0 {
				return protowire.ParseError(m)
			}
			for len(v) > 0 {
				u, k := protowire.ConsumeVarint(v)
				if k < 0 {
					return protowire.ParseError(k)
				}
				o.IntArray = append(o.IntArray, int32(u))
				v = v[k:]
			}
			b = b[m:]
		case num == 1 && typ == protowire.VarintType:
			u, m := protowire.ConsumeVarint(b)
			if m < 0 {
				return protowire.ParseError(m)
			}
			o.IntArray = append(o.IntArray, int32(u))
			b = b[m:]
		case num == 2 && typ == protowire.BytesType:
			v, m := protowire.ConsumeBytes(b)
			if m < 0 {
				return protowire.ParseError(m)
			}
			for len(v) > 0 {
				u, k := protowire.ConsumeFixed32(v)
				if k < 0 {
					return protowire.ParseError(k)
				}
				o.FloatArray = append(o.FloatArray, math.Float32frombits(u))
				v = v[k:]
			}
			b = b[m:]
		case num == 2 && typ == protowire.Fixed32Type:
			u, m := protowire.ConsumeFixed32(b)
			if m < 0 {
				return protowire.ParseError(m)
			}
			o.FloatArray = append(o.FloatArray, math.Float32frombits(u))
			b = b[m:]
		case num == 3 && typ == protowire.BytesType:
			v, m := protowire.ConsumeBytes(b)
			if m < 0 {
				return protowire.ParseError(m)
			}
			for len(v) > 0 {
				u, k := protowire.ConsumeFixed64(v)
				if k < 0 {
					return protowire.ParseError(k)
				}
				o.DoubleArray = append(o.DoubleArray, math.Float64frombits(u))
				v = v[k:]
			}
			b = b[m:]
		case num == 3 && typ == protowire.Fixed64Type:
			u, m := protowire.ConsumeFixed64(b)
			if m < 0 {
				return protowire.ParseError(m)
			}
			o.DoubleArray = append(o.DoubleArray, math.Float64frombits(u))
			b = b[m:]
		default:
			m := protowire.ConsumeFieldValue(num, typ, b)
			if m < 0 {
				return protowire.ParseError(m)
			}
			b = b[m:]
		}
	}
	return nil
}

func consumeFixedNameObject(b []byte, o *model.FixedNameObject) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return protowire.ParseError(n)
		}
		b = b[n:]
		if typ == protowire.BytesType && num >= 1 && num <= 5 {
			v, m := protowire.ConsumeString(b)
			if m < 0 {
				return protowire.ParseError(m)
			}
			switch num {
			case 1:
				o.Name0 = v
			case 2:
				o.Name1 = v
			case 3:
				o.Name2 = v
			case 4:
				o.Name3 = v
			case 5:
				o.Name4 = v
			}
			b = b[m:]
			continue
		}
		m := protowire.ConsumeFieldValue(num, typ, b)
		if m < 0 {
			return protowire.ParseError(m)
		}
		b = b[m:]
	}
	return nil
}

func consumeTestObj(b []byte, o *model.TestObj) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return protowire.ParseError(n)
		}
		b = b[n:]
		switch {
		case num == 1 && typ == protowire.BytesType:
			v, m := protowire.ConsumeBytes(b)
			if m < 0 {
				return protowire.ParseError(m)
			}
			if err := consumeFixedObject(v, &o.FixedObject); err != nil {
				return err
			}
			b = b[m:]
		case num == 2 && typ == protowire.BytesType:
			v, m := protowire.ConsumeBytes(b)
			if m < 0 {
				return protowire.ParseError(m)
			}
			if err := consumeFixedNameObject(v, &o.FixedNameObject); err != nil {
				return err
			}
			b = b[m:]
		case num == 3 && typ == protowire.BytesType:
			v, m := protowire.ConsumeBytes(b)
			if m < 0 {
				return protowire.ParseError(m)
			}
			if err := consumeAnotherObject(v, &o.AnotherObject); err != nil {
				return err
			}
			b = b[m:]
		case num == 4 && typ == protowire.BytesType:
			v, m := protowire.ConsumeString(b)
			if m < 0 {
				return protowire.ParseError(m)
			}
			o.StringArray = append(o.StringArray, v)
			b = b[m:]
		case num == 5 && typ == protowire.BytesType:
			v, m := protowire.ConsumeString(b)
			if m < 0 {
				return protowire.ParseError(m)
			}
			o.String = v
			b = b[m:]
		case num == 6 && typ == protowire.Fixed64Type:
			u, m := protowire.ConsumeFixed64(b)
			if m < 0 {
				return protowire.ParseError(m)
			}
			o.Number = math.Float64frombits(u)
			b = b[m:]
		case num == 7 && typ == protowire.VarintType:
			u, m := protowire.ConsumeVarint(b)
			if m < 0 {
				return protowire.ParseError(m)
			}
			o.Boolean = protowire.DecodeBool(u)
			b = b[m:]
		case num == 8 && typ == protowire.VarintType:
			u, m := protowire.ConsumeVarint(b)
			if m < 0 {
				return protowire.ParseError(m)
			}
			o.AnotherBool = protowire.DecodeBool(u)
			b = b[m:]
		default:
			m := protowire.ConsumeFieldValue(num, typ, b)
			if m < 0 {
				return protowire.ParseError(m)
			}
			b = b[m:]
		}
	}
	return nil
}
