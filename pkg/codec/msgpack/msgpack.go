// Package msgpack adapts MessagePack to the harness through the codec
// methods generated by github.com/tinylib/msgp on the model types.
package msgpack

import (
	"errors"
	"fmt"

	"github.com/tinylib/msgp/msgp"

	"github.com/appnet-org/wirebench/pkg/codec"
	"github.com/appnet-org/wirebench/pkg/model"
)

// Codec encodes through the generated MarshalMsg methods and reuses one
// scratch buffer across Serialize calls.
type Codec struct {
	scratch []byte
}

// New returns a MessagePack codec with empty scratch storage.
func New() *Codec { return &Codec{} }

// Name implements codec.Codec.
func (c *Codec) Name() string { return "MessagePack" }

// Serialize appends the encoded object into the codec's scratch buffer.
// The first call allocates; later calls with similar payloads do not.
func (c *Codec) Serialize(obj *model.TestObj) ([]byte, error) {
	out, err := obj.MarshalMsg(c.scratch[:0])
	if err != nil {
		return nil, fmt.Errorf("msgp marshal: %w", err)
	}
	c.scratch = out
	return out, nil
}

// SerializePrealloc encodes into a fresh buffer sized with Msgsize, the
// worst-case bound the generator derives from the object graph.
func (c *Codec) SerializePrealloc(obj *model.TestObj) ([]byte, error) {
	out, err := obj.MarshalMsg(make([]byte, 0, obj.Msgsize()))
	if err != nil {
		return nil, fmt.Errorf("msgp marshal: %w", err)
	}
	return out, nil
}

// Deserialize decodes buf into a fresh TestObj with the generated
// UnmarshalMsg method.
func (c *Codec) Deserialize(buf []byte) (*model.TestObj, error) {
	obj := &model.TestObj{}
	extra, err := obj.UnmarshalMsg(buf)
	if err != nil {
		return nil, wrapErr("msgp unmarshal", err)
	}
	if len(extra) != 0 {
		return nil, fmt.Errorf("msgp unmarshal: %d trailing bytes", len(extra))
	}
	return obj, nil
}

// Checksum walks the raw buffer with the msgp Bytes helpers, accumulating
// lengths and truncated numeric values without building a TestObj. String
// contents are never copied; only their lengths are read.
func (c *Codec) Checksum(buf []byte) (uint64, error) {
	var sum uint64
	if _, err := walkTestObj(buf, &sum); err != nil {
		return 0, wrapErr("msgp checksum", err)
	}
	return sum, nil
}

func wrapErr(op string, err error) error {
	if errors.Is(err, msgp.ErrShortBytes) {
		return fmt.Errorf("%s: %w", op, codec.ErrTruncated)
	}
	return fmt.Errorf("%s: %w", op, err)
}

func walkTestObj(b []byte, sum *uint64) ([]byte, error) {
	fields, b, err := msgp.ReadMapHeaderBytes(b)
	if err != nil {
		return b, err
	}
	for i := uint32(0); i < fields; i++ {
		var key []byte
		key, b, err = msgp.ReadMapKeyZC(b)
		if err != nil {
			return b, err
		}
		switch msgp.UnsafeString(key) {
		case "fixed_object":
			b, err = walkFixedObject(b, sum)
			if err != nil {
				return b, err
			}
		case "fixed_name_object":
			b, err = walkFixedNameObject(b, sum)
			if err != nil {
				return b, err
			}
		case "another_object":
			b, err = walkAnotherObject(b, sum)
			if err != nil {
				return b, err
			}
		case "string_array":
			var n uint32
			n, b, err = msgp.ReadArrayHeaderBytes(b)
			if err != nil {
				return b, err
			}
			for j := uint32(0); j < n; j++ {
				var s []byte
				s, b, err = msgp.ReadStringZC(b)
				if err != nil {
					return b, err
				}
				*sum += uint64(len(s))
			}
		case "string":
			var s []byte
			s, b, err = msgp.ReadStringZC(b)
			if err != nil {
				return b, err
			}
			*sum += uint64(len(s))
		case "number":
			var f float64
			f, b, err = msgp.ReadFloat64Bytes(b)
			if err != nil {
				return b, err
			}
			*sum += uint64(f)
		case "boolean", "another_bool":
			var v bool
			v, b, err = msgp.ReadBoolBytes(b)
			if err != nil {
				return b, err
			}
			if v {
				*sum++
			}
		default:
			b, err = msgp.Skip(b)
			if err != nil {
				return b, err
			}
		}
	}
	return b, nil
}

func walkFixedObject(b []byte, sum *uint64) ([]byte, error) {
	fields, b, err := msgp.ReadMapHeaderBytes(b)
	if err != nil {
		return b, err
	}
	for i := uint32(0); i < fields; i++ {
		var key []byte
		key, b, err = msgp.ReadMapKeyZC(b)
		if err != nil {
			return b, err
		}
		switch msgp.UnsafeString(key) {
		case "int_array":
			var n uint32
			n, b, err = msgp.ReadArrayHeaderBytes(b)
			if err != nil {
				return b, err
			}
			for j := uint32(0); j < n; j++ {
				var v int32
				v, b, err = msgp.ReadInt32Bytes(b)
				if err != nil {
					return b, err
				}
				*sum += uint64(int64(v))
			}
		case "float_array":
			var n uint32
			n, b, err = msgp.ReadArrayHeaderBytes(b)
			if err != nil {
				return b, err
			}
			for j := uint32(0); j < n; j++ {
				var v float32
				v, b, err = msgp.ReadFloat32Bytes(b)
				if err != nil {
					return b, err
				}
				*sum += uint64(v)
			}
		case "double_array":
			var n uint32
			n, b, err = msgp.ReadArrayHeaderBytes(b)
			if err != nil {
				return b, err
			}
			for j := uint32(0); j < n; j++ {
				var v float64
				v, b, err = msgp.ReadFloat64Bytes(b)
				if err != nil {
					return b, err
				}
				*sum += uint64(v)
			}
		default:
			b, err = msgp.Skip(b)
			if err != nil {
				return b, err
			}
		}
	}
	return b, nil
}

func walkFixedNameObject(b []byte, sum *uint64) ([]byte, error) {
	fields, b, err := msgp.ReadMapHeaderBytes(b)
	if err != nil {
		return b, err
	}
	for i := uint32(0); i < fields; i++ {
		var key []byte
		key, b, err = msgp.ReadMapKeyZC(b)
		if err != nil {
			return b, err
		}
		switch msgp.UnsafeString(key) {
		case "name0", "name1", "name2", "name3", "name4":
			var s []byte
			s, b, err = msgp.ReadStringZC(b)
			if err != nil {
				return b, err
			}
			*sum += uint64(len(s))
		default:
			b, err = msgp.Skip(b)
			if err != nil {
				return b, err
			}
		}
	}
	return b, nil
}

func walkAnotherObject(b []byte, sum *uint64) ([]byte, error) {
	fields, b, err := msgp.ReadMapHeaderBytes(b)
	if err != nil {
		return b, err
	}
	for i := uint32(0); i < fields; i++ {
		var key []byte
		key, b, err = msgp.ReadMapKeyZC(b)
		if err != nil {
			return b, err
		}
		switch msgp.UnsafeString(key) {
		case "string", "another_string", "escaped_text":
			var s []byte
			s, b, err = msgp.ReadStringZC(b)
			if err != nil {
				return b, err
			}
			*sum += uint64(len(s))
		case "boolean":
			var v bool
			v, b, err = msgp.ReadBoolBytes(b)
			if err != nil {
				return b, err
			}
			if v {
				*sum++
			}
		case "nested_object":
			b, err = walkNestedObject(b, sum)
			if err != nil {
				return b, err
			}
		default:
			b, err = msgp.Skip(b)
			if err != nil {
				return b, err
			}
		}
	}
	return b, nil
}

func walkNestedObject(b []byte, sum *uint64) ([]byte, error) {
	fields, b, err := msgp.ReadMapHeaderBytes(b)
	if err != nil {
		return b, err
	}
	for i := uint32(0); i < fields; i++ {
		var key []byte
		key, b, err = msgp.ReadMapKeyZC(b)
		if err != nil {
			return b, err
		}
		switch msgp.UnsafeString(key) {
		case "v3s":
			var n uint32
			n, b, err = msgp.ReadArrayHeaderBytes(b)
			if err != nil {
				return b, err
			}
			for j := uint32(0); j < n; j++ {
				b, err = walkVec3(b, sum)
				if err != nil {
					return b, err
				}
			}
		case "id":
			var s []byte
			s, b, err = msgp.ReadStringZC(b)
			if err != nil {
				return b, err
			}
			*sum += uint64(len(s))
		default:
			b, err = msgp.Skip(b)
			if err != nil {
				return b, err
			}
		}
	}
	return b, nil
}

// walkVec3 sums the three components as floats first so the truncation to
// uint64 happens once per element, matching the model-side accumulation.
func walkVec3(b []byte, sum *uint64) ([]byte, error) {
	fields, b, err := msgp.ReadMapHeaderBytes(b)
	if err != nil {
		return b, err
	}
	var acc float64
	for i := uint32(0); i < fields; i++ {
		var key []byte
		key, b, err = msgp.ReadMapKeyZC(b)
		if err != nil {
			return b, err
		}
		switch msgp.UnsafeString(key) {
		case "x", "y", "z":
			var v float64
			v, b, err = msgp.ReadFloat64Bytes(b)
			if err != nil {
				return b, err
			}
			acc += v
		default:
			b, err = msgp.Skip(b)
			if err != nil {
				return b, err
			}
		}
	}
	*sum += uint64(acc)
	return b, nil
}
