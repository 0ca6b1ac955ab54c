// Package codec defines the contract every serialization format adapter
// implements. Adapters live in subpackages, one per wire format; the
// orchestrator builds the set it benchmarks and treats them uniformly.
package codec

import (
	"errors"

	"github.com/appnet-org/wirebench/pkg/model"
)

// ErrTruncated reports a buffer that ended before its structure did.
var ErrTruncated = errors.New("truncated buffer")

// Codec adapts one serialization format to the harness. Implementations
// own reusable scratch storage, so a buffer returned by Serialize is only
// valid until the next Serialize call on the same codec. None of this is
// safe for concurrent use.
type Codec interface {
	// Name returns the format's display name as it appears in reports.
	Name() string

	// Serialize encodes obj, never mutating it. The returned slice may
	// alias the codec's scratch storage.
	Serialize(obj *model.TestObj) ([]byte, error)

	// Deserialize decodes buf into a fully independent instance, copying
	// every string and numeric array out of the buffer. Truncated or
	// structurally invalid input yields an error, never a partially
	// populated instance.
	Deserialize(buf []byte) (*model.TestObj, error)

	// Checksum visits every field of buf without materializing a TestObj
	// and returns the accumulated value. For any valid buffer the result
	// equals Checksum of the decoded instance on the model side.
	Checksum(buf []byte) (uint64, error)
}

// PreallocSerializer is implemented by codecs that can compute an exact
// size bound up front and encode into a single right-sized allocation.
type PreallocSerializer interface {
	SerializePrealloc(obj *model.TestObj) ([]byte, error)
}
