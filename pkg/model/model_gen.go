package model

// NOTE: THIS FILE WAS PRODUCED BY THE
// MSGP CODE GENERATION TOOL (github.com/tinylib/msgp)
// DO NOT EDIT

import "github.com/tinylib/msgp/msgp"

// DecodeMsg implements msgp.Decodable
func (z *AnotherObject) DecodeMsg(dc *msgp.Reader) (err error) {
	var field []byte
	_ = field
	var zxvk uint32
	zxvk, err = dc.ReadMapHeader()
	if err != nil {
		return
	}
	for zxvk > 0 {
		zxvk--
		field, err = dc.ReadMapKeyPtr()
		if err != nil {
			return
		}
		switch msgp.UnsafeString(field) {
		case "string":
			z.String, err = dc.ReadString()
			if err != nil {
				return
			}
		case "another_string":
			z.AnotherString, err = dc.ReadString()
			if err != nil {
				return
			}
		case "escaped_text":
			z.EscapedText, err = dc.ReadString()
			if err != nil {
				return
			}
		case "boolean":
			z.Boolean, err = dc.ReadBool()
			if err != nil {
				return
			}
		case "nested_object":
			err = z.NestedObject.DecodeMsg(dc)
			if err != nil {
				return
			}
		default:
			err = dc.Skip()
			if err != nil {
				return
			}
		}
	}
	return
}

// EncodeMsg implements msgp.Encodable
func (z *AnotherObject) EncodeMsg(en *msgp.Writer) (err error) {
	// map header, size 5
	// write "string"
	err = en.Append(0x85, 0xa6, 0x73, 0x74, 0x72, 0x69, 0x6e, 0x67)
	if err != nil {
		return err
	}
	err = en.WriteString(z.String)
	if err != nil {
		return
	}
	// write "another_string"
	err = en.Append(0xae, 0x61, 0x6e, 0x6f, 0x74, 0x68, 0x65, 0x72, 0x5f, 0x73, 0x74, 0x72, 0x69, 0x6e, 0x67)
	if err != nil {
		return err
	}
	err = en.WriteString(z.AnotherString)
	if err != nil {
		return
	}
	// write "escaped_text"
	err = en.Append(0xac, 0x65, 0x73, 0x63, 0x61, 0x70, 0x65, 0x64, 0x5f, 0x74, 0x65, 0x78, 0x74)
	if err != nil {
		return err
	}
	err = en.WriteString(z.EscapedText)
	if err != nil {
		return
	}
	// write "boolean"
	err = en.Append(0xa7, 0x62, 0x6f, 0x6f, 0x6c, 0x65, 0x61, 0x6e)
	if err != nil {
		return err
	}
	err = en.WriteBool(z.Boolean)
	if err != nil {
		return
	}
	// write "nested_object"
	err = en.Append(0xad, 0x6e, 0x65, 0x73, 0x74, 0x65, 0x64, 0x5f, 0x6f, 0x62, 0x6a, 0x65, 0x63, 0x74)
	if err != nil {
		return err
	}
	err = z.NestedObject.EncodeMsg(en)
	if err != nil {
		return
	}
	return
}

// MarshalMsg implements msgp.Marshaler
func (z *AnotherObject) MarshalMsg(b []byte) (o []byte, err error) {
	o = msgp.Require(b, z.Msgsize())
	// map header, size 5
	// string "string"
	o = append(o, 0x85, 0xa6, 0x73, 0x74, 0x72, 0x69, 0x6e, 0x67)
	o = msgp.AppendString(o, z.String)
	// string "another_string"
	o = append(o, 0xae, 0x61, 0x6e, 0x6f, 0x74, 0x68, 0x65, 0x72, 0x5f, 0x73, 0x74, 0x72, 0x69, 0x6e, 0x67)
	o = msgp.AppendString(o, z.AnotherString)
	// string "escaped_text"
	o = append(o, 0xac, 0x65, 0x73, 0x63, 0x61, 0x70, 0x65, 0x64, 0x5f, 0x74, 0x65, 0x78, 0x74)
	o = msgp.AppendString(o, z.EscapedText)
	// string "boolean"
	o = append(o, 0xa7, 0x62, 0x6f, 0x6f, 0x6c, 0x65, 0x61, 0x6e)
	o = msgp.AppendBool(o, z.Boolean)
	// string "nested_object"
	o = append(o, 0xad, 0x6e, 0x65, 0x73, 0x74, 0x65, 0x64, 0x5f, 0x6f, 0x62, 0x6a, 0x65, 0x63, 0x74)
	o, err = z.NestedObject.MarshalMsg(o)
	if err != nil {
		return
	}
	return
}

// UnmarshalMsg implements msgp.Unmarshaler
func (z *AnotherObject) UnmarshalMsg(bts []byte) (o []byte, err error) {
	var field []byte
	_ = field
	var zbzg uint32
	zbzg, bts, err = msgp.ReadMapHeaderBytes(bts)
	if err != nil {
		return
	}
	for zbzg > 0 {
		zbzg--
		field, bts, err = msgp.ReadMapKeyZC(bts)
		if err != nil {
			return
		}
		switch msgp.UnsafeString(field) {
		case "string":
			z.String, bts, err = msgp.ReadStringBytes(bts)
			if err != nil {
				return
			}
		case "another_string":
			z.AnotherString, bts, err = msgp.ReadStringBytes(bts)
			if err != nil {
				return
			}
		case "escaped_text":
			z.EscapedText, bts, err = msgp.ReadStringBytes(bts)
			if err != nil {
				return
			}
		case "boolean":
			z.Boolean, bts, err = msgp.ReadBoolBytes(bts)
			if err != nil {
				return
			}
		case "nested_object":
			bts, err = z.NestedObject.UnmarshalMsg(bts)
			if err != nil {
				return
			}
		default:
			bts, err = msgp.Skip(bts)
			if err != nil {
				return
			}
		}
	}
	o = bts
	return
}

// Msgsize returns an upper bound estimate of the number of bytes occupied by the serialized message
func (z *AnotherObject) Msgsize() (s int) {
	s = 1 + 7 + msgp.StringPrefixSize + len(z.String) + 15 + msgp.StringPrefixSize + len(z.AnotherString) + 13 + msgp.StringPrefixSize + len(z.EscapedText) + 8 + msgp.BoolSize + 14 + z.NestedObject.Msgsize()
	return
}

// DecodeMsg implements msgp.Decodable
func (z *FixedNameObject) DecodeMsg(dc *msgp.Reader) (err error) {
	var field []byte
	_ = field
	var zcmr uint32
	zcmr, err = dc.ReadMapHeader()
	if err != nil {
		return
	}
	for zcmr > 0 {
		zcmr--
		field, err = dc.ReadMapKeyPtr()
		if err != nil {
			return
		}
		switch msgp.UnsafeString(field) {
		case "name0":
			z.Name0, err = dc.ReadString()
			if err != nil {
				return
			}
		case "name1":
			z.Name1, err = dc.ReadString()
			if err != nil {
				return
			}
		case "name2":
			z.Name2, err = dc.ReadString()
			if err != nil {
				return
			}
		case "name3":
			z.Name3, err = dc.ReadString()
			if err != nil {
				return
			}
		case "name4":
			z.Name4, err = dc.ReadString()
			if err != nil {
				return
			}
		default:
			err = dc.Skip()
			if err != nil {
				return
			}
		}
	}
	return
}

// EncodeMsg implements msgp.Encodable
func (z *FixedNameObject) EncodeMsg(en *msgp.Writer) (err error) {
	// map header, size 5
	// write "name0"
	err = en.Append(0x85, 0xa5, 0x6e, 0x61, 0x6d, 0x65, 0x30)
	if err != nil {
		return err
	}
	err = en.WriteString(z.Name0)
	if err != nil {
		return
	}
	// write "name1"
	err = en.Append(0xa5, 0x6e, 0x61, 0x6d, 0x65, 0x31)
	if err != nil {
		return err
	}
	err = en.WriteString(z.Name1)
	if err != nil {
		return
	}
	// write "name2"
	err = en.Append(0xa5, 0x6e, 0x61, 0x6d, 0x65, 0x32)
	if err != nil {
		return err
	}
	err = en.WriteString(z.Name2)
	if err != nil {
		return
	}
	// write "name3"
	err = en.Append(0xa5, 0x6e, 0x61, 0x6d, 0x65, 0x33)
	if err != nil {
		return err
	}
	err = en.WriteString(z.Name3)
	if err != nil {
		return
	}
	// write "name4"
	err = en.Append(0xa5, 0x6e, 0x61, 0x6d, 0x65, 0x34)
	if err != nil {
		return err
	}
	err = en.WriteString(z.Name4)
	if err != nil {
		return
	}
	return
}

// MarshalMsg implements msgp.Marshaler
func (z *FixedNameObject) MarshalMsg(b []byte) (o []byte, err error) {
	o = msgp.Require(b, z.Msgsize())
	// map header, size 5
	// string "name0"
	o = append(o, 0x85, 0xa5, 0x6e, 0x61, 0x6d, 0x65, 0x30)
	o = msgp.AppendString(o, z.Name0)
	// string "name1"
	o = append(o, 0xa5, 0x6e, 0x61, 0x6d, 0x65, 0x31)
	o = msgp.AppendString(o, z.Name1)
	// string "name2"
	o = append(o, 0xa5, 0x6e, 0x61, 0x6d, 0x65, 0x32)
	o = msgp.AppendString(o, z.Name2)
	// string "name3"
	o = append(o, 0xa5, 0x6e, 0x61, 0x6d, 0x65, 0x33)
	o = msgp.AppendString(o, z.Name3)
	// string "name4"
	o = append(o, 0xa5, 0x6e, 0x61, 0x6d, 0x65, 0x34)
	o = msgp.AppendString(o, z.Name4)
	return
}

// UnmarshalMsg implements msgp.Unmarshaler
func (z *FixedNameObject) UnmarshalMsg(bts []byte) (o []byte, err error) {
	var field []byte
	_ = field
	var zajw uint32
	zajw, bts, err = msgp.ReadMapHeaderBytes(bts)
	if err != nil {
		return
	}
	for zajw > 0 {
		zajw--
		field, bts, err = msgp.ReadMapKeyZC(bts)
		if err != nil {
			return
		}
		switch msgp.UnsafeString(field) {
		case "name0":
			z.Name0, bts, err = msgp.ReadStringBytes(bts)
			if err != nil {
				return
			}
		case "name1":
			z.Name1, bts, err = msgp.ReadStringBytes(bts)
			if err != nil {
				return
			}
		case "name2":
			z.Name2, bts, err = msgp.ReadStringBytes(bts)
			if err != nil {
				return
			}
		case "name3":
			z.Name3, bts, err = msgp.ReadStringBytes(bts)
			if err != nil {
				return
			}
		case "name4":
			z.Name4, bts, err = msgp.ReadStringBytes(bts)
			if err != nil {
				return
			}
		default:
			bts, err = msgp.Skip(bts)
			if err != nil {
				return
			}
		}
	}
	o = bts
	return
}

// Msgsize returns an upper bound estimate of the number of bytes occupied by the serialized message
func (z *FixedNameObject) Msgsize() (s int) {
	s = 1 + 6 + msgp.StringPrefixSize + len(z.Name0) + 6 + msgp.StringPrefixSize + len(z.Name1) + 6 + msgp.StringPrefixSize + len(z.Name2) + 6 + msgp.StringPrefixSize + len(z.Name3) + 6 + msgp.StringPrefixSize + len(z.Name4)
	return
}

// DecodeMsg implements msgp.Decodable
func (z *FixedObject) DecodeMsg(dc *msgp.Reader) (err error) {
	var field []byte
	_ = field
	var zwht uint32
	zwht, err = dc.ReadMapHeader()
	if err != nil {
		return
	}
	for zwht > 0 {
		zwht--
		field, err = dc.ReadMapKeyPtr()
		if err != nil {
			return
		}
		switch msgp.UnsafeString(field) {
		case "int_array":
			var zhct uint32
			zhct, err = dc.ReadArrayHeader()
			if err != nil {
				return
			}
			if cap(z.IntArray) >= int(zhct) {
				z.IntArray = (z.IntArray)[:zhct]
			} else {
				z.IntArray = make([]int32, zhct)
			}
			for zcua := range z.IntArray {
				z.IntArray[zcua], err = dc.ReadInt32()
				if err != nil {
					return
				}
			}
		case "float_array":
			var zxhx uint32
			zxhx, err = dc.ReadArrayHeader()
			if err != nil {
				return
			}
			if cap(z.FloatArray) >= int(zxhx) {
				z.FloatArray = (z.FloatArray)[:zxhx]
			} else {
				z.FloatArray = make([]float32, zxhx)
			}
			for zlqf := range z.FloatArray {
				z.FloatArray[zlqf], err = dc.ReadFloat32()
				if err != nil {
					return
				}
			}
		case "double_array":
			var zdaf uint32
			zdaf, err = dc.ReadArrayHeader()
			if err != nil {
				return
			}
			if cap(z.DoubleArray) >= int(zdaf) {
				z.DoubleArray = (z.DoubleArray)[:zdaf]
			} else {
				z.DoubleArray = make([]float64, zdaf)
			}
			for zpks := range z.DoubleArray {
				z.DoubleArray[zpks], err = dc.ReadFloat64()
				if err != nil {
					return
				}
			}
		default:
			err = dc.Skip()
			if err != nil {
				return
			}
		}
	}
	return
}

// EncodeMsg implements msgp.Encodable
func (z *FixedObject) EncodeMsg(en *msgp.Writer) (err error) {
	// map header, size 3
	// write "int_array"
	err = en.Append(0x83, 0xa9, 0x69, 0x6e, 0x74, 0x5f, 0x61, 0x72, 0x72, 0x61, 0x79)
	if err != nil {
		return err
	}
	err = en.WriteArrayHeader(uint32(len(z.IntArray)))
	if err != nil {
		return
	}
	for zjfb := range z.IntArray {
		err = en.WriteInt32(z.IntArray[zjfb])
		if err != nil {
			return
		}
	}
	// write "float_array"
	err = en.Append(0xab, 0x66, 0x6c, 0x6f, 0x61, 0x74, 0x5f, 0x61, 0x72, 0x72, 0x61, 0x79)
	if err != nil {
		return err
	}
	err = en.WriteArrayHeader(uint32(len(z.FloatArray)))
	if err != nil {
		return
	}
	for zcxo := range z.FloatArray {
		err = en.WriteFloat32(z.FloatArray[zcxo])
		if err != nil {
			return
		}
	}
	// write "double_array"
	err = en.Append(0xac, 0x64, 0x6f, 0x75, 0x62, 0x6c, 0x65, 0x5f, 0x61, 0x72, 0x72, 0x61, 0x79)
	if err != nil {
		return err
	}
	err = en.WriteArrayHeader(uint32(len(z.DoubleArray)))
	if err != nil {
		return
	}
	for zeff := range z.DoubleArray {
		err = en.WriteFloat64(z.DoubleArray[zeff])
		if err != nil {
			return
		}
	}
	return
}

// MarshalMsg implements msgp.Marshaler
func (z *FixedObject) MarshalMsg(b []byte) (o []byte, err error) {
	o = msgp.Require(b, z.Msgsize())
	// map header, size 3
	// string "int_array"
	o = append(o, 0x83, 0xa9, 0x69, 0x6e, 0x74, 0x5f, 0x61, 0x72, 0x72, 0x61, 0x79)
	o = msgp.AppendArrayHeader(o, uint32(len(z.IntArray)))
	for zrsw := range z.IntArray {
		o = msgp.AppendInt32(o, z.IntArray[zrsw])
	}
	// string "float_array"
	o = append(o, 0xab, 0x66, 0x6c, 0x6f, 0x61, 0x74, 0x5f, 0x61, 0x72, 0x72, 0x61, 0x79)
	o = msgp.AppendArrayHeader(o, uint32(len(z.FloatArray)))
	for zxpk := range z.FloatArray {
		o = msgp.AppendFloat32(o, z.FloatArray[zxpk])
	}
	// string "double_array"
	o = append(o, 0xac, 0x64, 0x6f, 0x75, 0x62, 0x6c, 0x65, 0x5f, 0x61, 0x72, 0x72, 0x61, 0x79)
	o = msgp.AppendArrayHeader(o, uint32(len(z.DoubleArray)))
	for zdnj := range z.DoubleArray {
		o = msgp.AppendFloat64(o, z.DoubleArray[zdnj])
	}
	return
}

// UnmarshalMsg implements msgp.Unmarshaler
func (z *FixedObject) UnmarshalMsg(bts []byte) (o []byte, err error) {
	var field []byte
	_ = field
	var zobc uint32
	zobc, bts, err = msgp.ReadMapHeaderBytes(bts)
	if err != nil {
		return
	}
	for zobc > 0 {
		zobc--
		field, bts, err = msgp.ReadMapKeyZC(bts)
		if err != nil {
			return
		}
		switch msgp.UnsafeString(field) {
		case "int_array":
			var zsnv uint32
			zsnv, bts, err = msgp.ReadArrayHeaderBytes(bts)
			if err != nil {
				return
			}
			if cap(z.IntArray) >= int(zsnv) {
				z.IntArray = (z.IntArray)[:zsnv]
			} else {
				z.IntArray = make([]int32, zsnv)
			}
			for zkgt := range z.IntArray {
				z.IntArray[zkgt], bts, err = msgp.ReadInt32Bytes(bts)
				if err != nil {
					return
				}
			}
		case "float_array":
			var zema uint32
			zema, bts, err = msgp.ReadArrayHeaderBytes(bts)
			if err != nil {
				return
			}
			if cap(z.FloatArray) >= int(zema) {
				z.FloatArray = (z.FloatArray)[:zema]
			} else {
				z.FloatArray = make([]float32, zema)
			}
			for zpez := range z.FloatArray {
				z.FloatArray[zpez], bts, err = msgp.ReadFloat32Bytes(bts)
				if err != nil {
					return
				}
			}
		case "double_array":
			var zqke uint32
			zqke, bts, err = msgp.ReadArrayHeaderBytes(bts)
			if err != nil {
				return
			}
			if cap(z.DoubleArray) >= int(zqke) {
				z.DoubleArray = (z.DoubleArray)[:zqke]
			} else {
				z.DoubleArray = make([]float64, zqke)
			}
			for zqyh := range z.DoubleArray {
				z.DoubleArray[zqyh], bts, err = msgp.ReadFloat64Bytes(bts)
				if err != nil {
					return
				}
			}
		default:
			bts, err = msgp.Skip(bts)
			if err != nil {
				return
			}
		}
	}
	o = bts
	return
}

// Msgsize returns an upper bound estimate of the number of bytes occupied by the serialized message
func (z *FixedObject) Msgsize() (s int) {
	s = 1 + 10 + msgp.ArrayHeaderSize + (len(z.IntArray) * (msgp.Int32Size)) + 12 + msgp.ArrayHeaderSize + (len(z.FloatArray) * (msgp.Float32Size)) + 13 + msgp.ArrayHeaderSize + (len(z.DoubleArray) * (msgp.Float64Size))
	return
}

// DecodeMsg implements msgp.Decodable
func (z *NestedObject) DecodeMsg(dc *msgp.Reader) (err error) {
	var field []byte
	_ = field
	var zyzr uint32
	zyzr, err = dc.ReadMapHeader()
	if err != nil {
		return
	}
	for zyzr > 0 {
		zyzr--
		field, err = dc.ReadMapKeyPtr()
		if err != nil {
			return
		}
		switch msgp.UnsafeString(field) {
		case "v3s":
			var zywj uint32
			zywj, err = dc.ReadArrayHeader()
			if err != nil {
				return
			}
			if cap(z.V3s) >= int(zywj) {
				z.V3s = (z.V3s)[:zywj]
			} else {
				z.V3s = make([]Vec3, zywj)
			}
			for zjpj := range z.V3s {
				var zgmo uint32
				zgmo, err = dc.ReadMapHeader()
				if err != nil {
					return
				}
				for zgmo > 0 {
					zgmo--
					field, err = dc.ReadMapKeyPtr()
					if err != nil {
						return
					}
					switch msgp.UnsafeString(field) {
					case "x":
						z.V3s[zjpj].X, err = dc.ReadFloat64()
						if err != nil {
							return
						}
					case "y":
						z.V3s[zjpj].Y, err = dc.ReadFloat64()
						if err != nil {
							return
						}
					case "z":
						z.V3s[zjpj].Z, err = dc.ReadFloat64()
						if err != nil {
							return
						}
					default:
						err = dc.Skip()
						if err != nil {
							return
						}
					}
				}
			}
		case "id":
			z.ID, err = dc.ReadString()
			if err != nil {
				return
			}
		default:
			err = dc.Skip()
			if err != nil {
				return
			}
		}
	}
	return
}

// EncodeMsg implements msgp.Encodable
func (z *NestedObject) EncodeMsg(en *msgp.Writer) (err error) {
	// map header, size 2
	// write "v3s"
	err = en.Append(0x82, 0xa3, 0x76, 0x33, 0x73)
	if err != nil {
		return err
	}
	err = en.WriteArrayHeader(uint32(len(z.V3s)))
	if err != nil {
		return
	}
	for ztaf := range z.V3s {
		// map header, size 3
		// write "x"
		err = en.Append(0x83, 0xa1, 0x78)
		if err != nil {
			return err
		}
		err = en.WriteFloat64(z.V3s[ztaf].X)
		if err != nil {
			return
		}
		// write "y"
		err = en.Append(0xa1, 0x79)
		if err != nil {
			return err
		}
		err = en.WriteFloat64(z.V3s[ztaf].Y)
		if err != nil {
			return
		}
		// write "z"
		err = en.Append(0xa1, 0x7a)
		if err != nil {
			return err
		}
		err = en.WriteFloat64(z.V3s[ztaf].Z)
		if err != nil {
			return
		}
	}
	// write "id"
	err = en.Append(0xa2, 0x69, 0x64)
	if err != nil {
		return err
	}
	err = en.WriteString(z.ID)
	if err != nil {
		return
	}
	return
}

// MarshalMsg implements msgp.Marshaler
func (z *NestedObject) MarshalMsg(b []byte) (o []byte, err error) {
	o = msgp.Require(b, z.Msgsize())
	// map header, size 2
	// string "v3s"
	o = append(o, 0x82, 0xa3, 0x76, 0x33, 0x73)
	o = msgp.AppendArrayHeader(o, uint32(len(z.V3s)))
	for zeth := range z.V3s {
		// map header, size 3
		// string "x"
		o = append(o, 0x83, 0xa1, 0x78)
		o = msgp.AppendFloat64(o, z.V3s[zeth].X)
		// string "y"
		o = append(o, 0xa1, 0x79)
		o = msgp.AppendFloat64(o, z.V3s[zeth].Y)
		// string "z"
		o = append(o, 0xa1, 0x7a)
		o = msgp.AppendFloat64(o, z.V3s[zeth].Z)
	}
	// string "id"
	o = append(o, 0xa2, 0x69, 0x64)
	o = msgp.AppendString(o, z.ID)
	return
}

// UnmarshalMsg implements msgp.Unmarshaler
func (z *NestedObject) UnmarshalMsg(bts []byte) (o []byte, err error) {
	var field []byte
	_ = field
	var zsbz uint32
	zsbz, bts, err = msgp.ReadMapHeaderBytes(bts)
	if err != nil {
		return
	}
	for zsbz > 0 {
		zsbz--
		field, bts, err = msgp.ReadMapKeyZC(bts)
		if err != nil {
			return
		}
		switch msgp.UnsafeString(field) {
		case "v3s":
			var zrjx uint32
			zrjx, bts, err = msgp.ReadArrayHeaderBytes(bts)
			if err != nil {
				return
			}
			if cap(z.V3s) >= int(zrjx) {
				z.V3s = (z.V3s)[:zrjx]
			} else {
				z.V3s = make([]Vec3, zrjx)
			}
			for zawn := range z.V3s {
				var zwel uint32
				zwel, bts, err = msgp.ReadMapHeaderBytes(bts)
				if err != nil {
					return
				}
				for zwel > 0 {
					zwel--
					field, bts, err = msgp.ReadMapKeyZC(bts)
					if err != nil {
						return
					}
					switch msgp.UnsafeString(field) {
					case "x":
						z.V3s[zawn].X, bts, err = msgp.ReadFloat64Bytes(bts)
						if err != nil {
							return
						}
					case "y":
						z.V3s[zawn].Y, bts, err = msgp.ReadFloat64Bytes(bts)
						if err != nil {
							return
						}
					case "z":
						z.V3s[zawn].Z, bts, err = msgp.ReadFloat64Bytes(bts)
						if err != nil {
							return
						}
					default:
						bts, err = msgp.Skip(bts)
						if err != nil {
							return
						}
					}
				}
			}
		case "id":
			z.ID, bts, err = msgp.ReadStringBytes(bts)
			if err != nil {
				return
			}
		default:
			bts, err = msgp.Skip(bts)
			if err != nil {
				return
			}
		}
	}
	o = bts
	return
}

// Msgsize returns an upper bound estimate of the number of bytes occupied by the serialized message
func (z *NestedObject) Msgsize() (s int) {
	s = 1 + 4 + msgp.ArrayHeaderSize + (len(z.V3s) * (1 + 2 + msgp.Float64Size + 2 + msgp.Float64Size + 2 + msgp.Float64Size)) + 3 + msgp.StringPrefixSize + len(z.ID)
	return
}

// DecodeMsg implements msgp.Decodable
func (z *TestObj) DecodeMsg(dc *msgp.Reader) (err error) {
	var field []byte
	_ = field
	var zrbe uint32
	zrbe, err = dc.ReadMapHeader()
	if err != nil {
		return
	}
	for zrbe > 0 {
		zrbe--
		field, err = dc.ReadMapKeyPtr()
		if err != nil {
			return
		}
		switch msgp.UnsafeString(field) {
		case "fixed_object":
			err = z.FixedObject.DecodeMsg(dc)
			if err != nil {
				return
			}
		case "fixed_name_object":
			err = z.FixedNameObject.DecodeMsg(dc)
			if err != nil {
				return
			}
		case "another_object":
			err = z.AnotherObject.DecodeMsg(dc)
			if err != nil {
				return
			}
		case "string_array":
			var zmfu uint32
			zmfu, err = dc.ReadArrayHeader()
			if err != nil {
				return
			}
			if cap(z.StringArray) >= int(zmfu) {
				z.StringArray = (z.StringArray)[:zmfu]
			} else {
				z.StringArray = make([]string, zmfu)
			}
			for zaid := range z.StringArray {
				z.StringArray[zaid], err = dc.ReadString()
				if err != nil {
					return
				}
			}
		case "string":
			z.String, err = dc.ReadString()
			if err != nil {
				return
			}
		case "number":
			z.Number, err = dc.ReadFloat64()
			if err != nil {
				return
			}
		case "boolean":
			z.Boolean, err = dc.ReadBool()
			if err != nil {
				return
			}
		case "another_bool":
			z.AnotherBool, err = dc.ReadBool()
			if err != nil {
				return
			}
		default:
			err = dc.Skip()
			if err != nil {
				return
			}
		}
	}
	return
}

// EncodeMsg implements msgp.Encodable
func (z *TestObj) EncodeMsg(en *msgp.Writer) (err error) {
	// map header, size 8
	// write "fixed_object"
	err = en.Append(0x88, 0xac, 0x66, 0x69, 0x78, 0x65, 0x64, 0x5f, 0x6f, 0x62, 0x6a, 0x65, 0x63, 0x74)
	if err != nil {
		return err
	}
	err = z.FixedObject.EncodeMsg(en)
	if err != nil {
		return
	}
	// write "fixed_name_object"
	err = en.Append(0xb1, 0x66, 0x69, 0x78, 0x65, 0x64, 0x5f, 0x6e, 0x61, 0x6d, 0x65, 0x5f, 0x6f, 0x62, 0x6a, 0x65, 0x63, 0x74)
	if err != nil {
		return err
	}
	err = z.FixedNameObject.EncodeMsg(en)
	if err != nil {
		return
	}
	// write "another_object"
	err = en.Append(0xae, 0x61, 0x6e, 0x6f, 0x74, 0x68, 0x65, 0x72, 0x5f, 0x6f, 0x62, 0x6a, 0x65, 0x63, 0x74)
	if err != nil {
		return err
	}
	err = z.AnotherObject.EncodeMsg(en)
	if err != nil {
		return
	}
	// write "string_array"
	err = en.Append(0xac, 0x73, 0x74, 0x72, 0x69, 0x6e, 0x67, 0x5f, 0x61, 0x72, 0x72, 0x61, 0x79)
	if err != nil {
		return err
	}
	err = en.WriteArrayHeader(uint32(len(z.StringArray)))
	if err != nil {
		return
	}
	for zcwz := range z.StringArray {
		err = en.WriteString(z.StringArray[zcwz])
		if err != nil {
			return
		}
	}
	// write "string"
	err = en.Append(0xa6, 0x73, 0x74, 0x72, 0x69, 0x6e, 0x67)
	if err != nil {
		return err
	}
	err = en.WriteString(z.String)
	if err != nil {
		return
	}
	// write "number"
	err = en.Append(0xa6, 0x6e, 0x75, 0x6d, 0x62, 0x65, 0x72)
	if err != nil {
		return err
	}
	err = en.WriteFloat64(z.Number)
	if err != nil {
		return
	}
	// write "boolean"
	err = en.Append(0xa7, 0x62, 0x6f, 0x6f, 0x6c, 0x65, 0x61, 0x6e)
	if err != nil {
		return err
	}
	err = en.WriteBool(z.Boolean)
	if err != nil {
		return
	}
	// write "another_bool"
	err = en.Append(0xac, 0x61, 0x6e, 0x6f, 0x74, 0x68, 0x65, 0x72, 0x5f, 0x62, 0x6f, 0x6f, 0x6c)
	if err != nil {
		return err
	}
	err = en.WriteBool(z.AnotherBool)
	if err != nil {
		return
	}
	return
}

// MarshalMsg implements msgp.Marshaler
func (z *TestObj) MarshalMsg(b []byte) (o []byte, err error) {
	o = msgp.Require(b, z.Msgsize())
	// map header, size 8
	// string "fixed_object"
	o = append(o, 0x88, 0xac, 0x66, 0x69, 0x78, 0x65, 0x64, 0x5f, 0x6f, 0x62, 0x6a, 0x65, 0x63, 0x74)
	o, err = z.FixedObject.MarshalMsg(o)
	if err != nil {
		return
	}
	// string "fixed_name_object"
	o = append(o, 0xb1, 0x66, 0x69, 0x78, 0x65, 0x64, 0x5f, 0x6e, 0x61, 0x6d, 0x65, 0x5f, 0x6f, 0x62, 0x6a, 0x65, 0x63, 0x74)
	o, err = z.FixedNameObject.MarshalMsg(o)
	if err != nil {
		return
	}
	// string "another_object"
	o = append(o, 0xae, 0x61, 0x6e, 0x6f, 0x74, 0x68, 0x65, 0x72, 0x5f, 0x6f, 0x62, 0x6a, 0x65, 0x63, 0x74)
	o, err = z.AnotherObject.MarshalMsg(o)
	if err != nil {
		return
	}
	// string "string_array"
	o = append(o, 0xac, 0x73, 0x74, 0x72, 0x69, 0x6e, 0x67, 0x5f, 0x61, 0x72, 0x72, 0x61, 0x79)
	o = msgp.AppendArrayHeader(o, uint32(len(z.StringArray)))
	for zlsx := range z.StringArray {
		o = msgp.AppendString(o, z.StringArray[zlsx])
	}
	// string "string"
	o = append(o, 0xa6, 0x73, 0x74, 0x72, 0x69, 0x6e, 0x67)
	o = msgp.AppendString(o, z.String)
	// string "number"
	o = append(o, 0xa6, 0x6e, 0x75, 0x6d, 0x62, 0x65, 0x72)
	o = msgp.AppendFloat64(o, z.Number)
	// string "boolean"
	o = append(o, 0xa7, 0x62, 0x6f, 0x6f, 0x6c, 0x65, 0x61, 0x6e)
	o = msgp.AppendBool(o, z.Boolean)
	// string "another_bool"
	o = append(o, 0xac, 0x61, 0x6e, 0x6f, 0x74, 0x68, 0x65, 0x72, 0x5f, 0x62, 0x6f, 0x6f, 0x6c)
	o = msgp.AppendBool(o, z.AnotherBool)
	return
}

// UnmarshalMsg implements msgp.Unmarshaler
func (z *TestObj) UnmarshalMsg(bts []byte) (o []byte, err error) {
	var field []byte
	_ = field
	var zbal uint32
	zbal, bts, err = msgp.ReadMapHeaderBytes(bts)
	if err != nil {
		return
	}
	for zbal > 0 {
		zbal--
		field, bts, err = msgp.ReadMapKeyZC(bts)
		if err != nil {
			return
		}
		switch msgp.UnsafeString(field) {
		case "fixed_object":
			bts, err = z.FixedObject.UnmarshalMsg(bts)
			if err != nil {
				return
			}
		case "fixed_name_object":
			bts, err = z.FixedNameObject.UnmarshalMsg(bts)
			if err != nil {
				return
			}
		case "another_object":
			bts, err = z.AnotherObject.UnmarshalMsg(bts)
			if err != nil {
				return
			}
		case "string_array":
			var zjqz uint32
			zjqz, bts, err = msgp.ReadArrayHeaderBytes(bts)
			if err != nil {
				return
			}
			if cap(z.StringArray) >= int(zjqz) {
				z.StringArray = (z.StringArray)[:zjqz]
			} else {
				z.StringArray = make([]string, zjqz)
			}
			for ztmt := range z.StringArray {
				z.StringArray[ztmt], bts, err = msgp.ReadStringBytes(bts)
				if err != nil {
					return
				}
			}
		case "string":
			z.String, bts, err = msgp.ReadStringBytes(bts)
			if err != nil {
				return
			}
		case "number":
			z.Number, bts, err = msgp.ReadFloat64Bytes(bts)
			if err != nil {
				return
			}
		case "boolean":
			z.Boolean, bts, err = msgp.ReadBoolBytes(bts)
			if err != nil {
				return
			}
		case "another_bool":
			z.AnotherBool, bts, err = msgp.ReadBoolBytes(bts)
			if err != nil {
				return
			}
		default:
			bts, err = msgp.Skip(bts)
			if err != nil {
				return
			}
		}
	}
	o = bts
	return
}

// Msgsize returns an upper bound estimate of the number of bytes occupied by the serialized message
func (z *TestObj) Msgsize() (s int) {
	s = 1 + 13 + z.FixedObject.Msgsize() + 18 + z.FixedNameObject.Msgsize() + 15 + z.AnotherObject.Msgsize() + 13 + msgp.ArrayHeaderSize
	for ztco := range z.StringArray {
		s += msgp.StringPrefixSize + len(z.StringArray[ztco])
	}
	s += 7 + msgp.StringPrefixSize + len(z.String) + 7 + msgp.Float64Size + 8 + msgp.BoolSize + 13 + msgp.BoolSize
	return
}

// DecodeMsg implements msgp.Decodable
func (z *Vec3) DecodeMsg(dc *msgp.Reader) (err error) {
	var field []byte
	_ = field
	var zana uint32
	zana, err = dc.ReadMapHeader()
	if err != nil {
		return
	}
	for zana > 0 {
		zana--
		field, err = dc.ReadMapKeyPtr()
		if err != nil {
			return
		}
		switch msgp.UnsafeString(field) {
		case "x":
			z.X, err = dc.ReadFloat64()
			if err != nil {
				return
			}
		case "y":
			z.Y, err = dc.ReadFloat64()
			if err != nil {
				return
			}
		case "z":
			z.Z, err = dc.ReadFloat64()
			if err != nil {
				return
			}
		default:
			err = dc.Skip()
			if err != nil {
				return
			}
		}
	}
	return
}

// EncodeMsg implements msgp.Encodable
func (z Vec3) EncodeMsg(en *msgp.Writer) (err error) {
	// map header, size 3
	// write "x"
	err = en.Append(0x83, 0xa1, 0x78)
	if err != nil {
		return err
	}
	err = en.WriteFloat64(z.X)
	if err != nil {
		return
	}
	// write "y"
	err = en.Append(0xa1, 0x79)
	if err != nil {
		return err
	}
	err = en.WriteFloat64(z.Y)
	if err != nil {
		return
	}
	// write "z"
	err = en.Append(0xa1, 0x7a)
	if err != nil {
		return err
	}
	err = en.WriteFloat64(z.Z)
	if err != nil {
		return
	}
	return
}

// MarshalMsg implements msgp.Marshaler
func (z Vec3) MarshalMsg(b []byte) (o []byte, err error) {
	o = msgp.Require(b, z.Msgsize())
	// map header, size 3
	// string "x"
	o = append(o, 0x83, 0xa1, 0x78)
	o = msgp.AppendFloat64(o, z.X)
	// string "y"
	o = append(o, 0xa1, 0x79)
	o = msgp.AppendFloat64(o, z.Y)
	// string "z"
	o = append(o, 0xa1, 0x7a)
	o = msgp.AppendFloat64(o, z.Z)
	return
}

// UnmarshalMsg implements msgp.Unmarshaler
func (z *Vec3) UnmarshalMsg(bts []byte) (o []byte, err error) {
	var field []byte
	_ = field
	var ztyy uint32
	ztyy, bts, err = msgp.ReadMapHeaderBytes(bts)
	if err != nil {
		return
	}
	for ztyy > 0 {
		ztyy--
		field, bts, err = msgp.ReadMapKeyZC(bts)
		if err != nil {
			return
		}
		switch msgp.UnsafeString(field) {
		case "x":
			z.X, bts, err = msgp.ReadFloat64Bytes(bts)
			if err != nil {
				return
			}
		case "y":
			z.Y, bts, err = msgp.ReadFloat64Bytes(bts)
			if err != nil {
				return
			}
		case "z":
			z.Z, bts, err = msgp.ReadFloat64Bytes(bts)
			if err != nil {
				return
			}
		default:
			bts, err = msgp.Skip(bts)
			if err != nil {
				return
			}
		}
	}
	o = bts
	return
}

// Msgsize returns an upper bound estimate of the number of bytes occupied by the serialized message
func (z Vec3) Msgsize() (s int) {
	s = 1 + 2 + msgp.Float64Size + 2 + msgp.Float64Size + 2 + msgp.Float64Size
	return
}
