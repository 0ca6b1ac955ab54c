// Package protobuf adapts Protocol Buffers to the harness with a codec
// written directly against protowire, following benchmark.proto in this
// directory. There is no generated message type in the hot path; encode
// sizes the buffer in one pass and fills it in a second.
package protobuf

import (
	"errors"
	"fmt"
	"io"

	"github.com/appnet-org/wirebench/pkg/codec"
	"github.com/appnet-org/wirebench/pkg/model"
)

// Codec reuses one scratch buffer across Serialize calls.
type Codec struct {
	scratch []byte
}

// New returns a Protobuf codec with empty scratch storage.
func New() *Codec { return &Codec{} }

// Name implements codec.Codec.
func (c *Codec) Name() string { return "Protobuf" }

// Serialize sizes the message, then appends it into the scratch buffer.
func (c *Codec) Serialize(obj *model.TestObj) ([]byte, error) {
	n := sizeTestObj(obj)
	b := c.scratch[:0]
	if cap(b) < n {
		b = make([]byte, 0, n)
	}
	b = appendTestObj(b, obj)
	if len(b) != n {
		return nil, fmt.Errorf("proto marshal: sized %d bytes, wrote %d", n, len(b))
	}
	c.scratch = b
	return b, nil
}

// Deserialize decodes buf into a fresh TestObj, copying every string out
// of the buffer.
func (c *Codec) Deserialize(buf []byte) (*model.TestObj, error) {
	obj := &model.TestObj{}
	if err := consumeTestObj(buf, obj); err != nil {
		return nil, wireErr("proto unmarshal", err)
	}
	return obj, nil
}

// Checksum walks the buffer field by field without materializing anything.
func (c *Codec) Checksum(buf []byte) (uint64, error) {
	var sum uint64
	if err := sumTestObj(buf, &sum); err != nil {
		return 0, wireErr("proto checksum", err)
	}
	return sum, nil
}

func wireErr(op string, err error) error {
	if errors.Is(err, io.ErrUnexpectedEOF) {
		return fmt.Errorf("%s: %w", op, codec.ErrTruncated)
	}
	return fmt.Errorf("%s: %w", op, err)
}
