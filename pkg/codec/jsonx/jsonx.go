// Package jsonx adapts JSON to the harness through jsoniter's
// stdlib-compatible configuration, so the wire bytes match what
// encoding/json would produce for the model's struct tags.
package jsonx

import (
	"fmt"
	"io"

	jsoniter "github.com/json-iterator/go"

	"github.com/appnet-org/wirebench/pkg/codec"
	"github.com/appnet-org/wirebench/pkg/model"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Codec is the JSON adapter. jsoniter pools its streams and iterators
// internally, so the codec itself carries no scratch state.
type Codec struct{}

// New returns a JSON codec.
func New() *Codec { return &Codec{} }

// Name implements codec.Codec.
func (c *Codec) Name() string { return "JSON" }

// Serialize encodes obj with the model's json struct tags.
func (c *Codec) Serialize(obj *model.TestObj) ([]byte, error) {
	out, err := json.Marshal(obj)
	if err != nil {
		return nil, fmt.Errorf("json marshal: %w", err)
	}
	return out, nil
}

// Deserialize decodes buf into a fresh TestObj.
func (c *Codec) Deserialize(buf []byte) (*model.TestObj, error) {
	obj := &model.TestObj{}
	if err := json.Unmarshal(buf, obj); err != nil {
		return nil, fmt.Errorf("json unmarshal: %w", err)
	}
	return obj, nil
}

// Checksum walks the buffer with a borrowed iterator, never binding to the
// model types. String fields are unescaped by ReadString, so their logical
// lengths match what the model-side accumulation sees; this is the
// closest JSON gets to a zero-copy traversal.
func (c *Codec) Checksum(buf []byte) (uint64, error) {
	iter := json.BorrowIterator(buf)
	defer json.ReturnIterator(iter)

	var sum uint64
	ok := iter.ReadObjectCB(func(iter *jsoniter.Iterator, key string) bool {
		switch key {
		case "fixed_object":
			return readFixedObject(iter, &sum)
		case "fixed_name_object":
			return readFixedNameObject(iter, &sum)
		case "another_object":
			return readAnotherObject(iter, &sum)
		case "string_array":
			return iter.ReadArrayCB(func(iter *jsoniter.Iterator) bool {
				sum += uint64(len(iter.ReadString()))
				return iter.Error == nil
			})
		case "string":
			sum += uint64(len(iter.ReadString()))
		case "number":
			sum += uint64(iter.ReadFloat64())
		case "boolean", "another_bool":
			if iter.ReadBool() {
				sum++
			}
		default:
			iter.Skip()
		}
		return iter.Error == nil
	})
	if !ok || (iter.Error != nil && iter.Error != io.EOF) {
		err := iter.Error
		if err == nil || err == io.EOF {
			err = codec.ErrTruncated
		}
		return 0, fmt.Errorf("json checksum: %w", err)
	}
	return sum, nil
}

func readFixedObject(iter *jsoniter.Iterator, sum *uint64) bool {
	return iter.ReadObjectCB(func(iter *jsoniter.Iterator, key string) bool {
		switch key {
		case "int_array":
			return iter.ReadArrayCB(func(iter *jsoniter.Iterator) bool {
				*sum += uint64(int64(iter.ReadInt32()))
				return iter.Error == nil
			})
		case "float_array":
			return iter.ReadArrayCB(func(iter *jsoniter.Iterator) bool {
				*sum += uint64(iter.ReadFloat32())
				return iter.Error == nil
			})
		case "double_array":
			return iter.ReadArrayCB(func(iter *jsoniter.Iterator) bool {
				*sum += uint64(iter.ReadFloat64())
				return iter.Error == nil
			})
		default:
			iter.Skip()
		}
		return iter.Error == nil
	})
}

func readFixedNameObject(iter *jsoniter.Iterator, sum *uint64) bool {
	return iter.ReadObjectCB(func(iter *jsoniter.Iterator, key string) bool {
		switch key {
		case "name0", "name1", "name2", "name3", "name4":
			*sum += uint64(len(iter.ReadString()))
		default:
			iter.Skip()
		}
		return iter.Error == nil
	})
}

func readAnotherObject(iter *jsoniter.Iterator, sum *uint64) bool {
	return iter.ReadObjectCB(func(iter *jsoniter.Iterator, key string) bool {
		switch key {
		case "string", "another_string", "escaped_text":
			*sum += uint64(len(iter.ReadString()))
		case "boolean":
			if iter.ReadBool() {
				*sum++
			}
		case "nested_object":
			return readNestedObject(iter, sum)
		default:
			iter.Skip()
		}
		return iter.Error == nil
	})
}

func readNestedObject(iter *jsoniter.Iterator, sum *uint64) bool {
	return iter.ReadObjectCB(func(iter *jsoniter.Iterator, key string) bool {
		switch key {
		case "v3s":
			return iter.ReadArrayCB(func(iter *jsoniter.Iterator) bool {
				var x, y, z float64
				ok := iter.ReadObjectCB(func(iter *jsoniter.Iterator, key string) bool {
					switch key {
					case "x":
						x = iter.ReadFloat64()
					case "y":
						y = iter.ReadFloat64()
					case "z":
						z = iter.ReadFloat64()
					default:
						iter.Skip()
					}
					return iter.Error == nil
				})
				if !ok {
					return false
				}
				*sum += uint64(x + y + z)
				return true
			})
		case "id":
			*sum += uint64(len(iter.ReadString()))
		default:
			iter.Skip()
		}
		return iter.Error == nil
	})
}
