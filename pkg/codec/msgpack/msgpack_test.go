package msgpack

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/appnet-org/wirebench/pkg/codec"
	"github.com/appnet-org/wirebench/pkg/model"
)

// ==================== Round Trip ====================

func TestSerializeRoundTrip(t *testing.T) {
	c := New()
	ref := model.Reference()

	buf, err := c.Serialize(ref)
	require.NoError(t, err)
	require.NotEmpty(t, buf)

	got, err := c.Deserialize(buf)
	require.NoError(t, err)
	require.Equal(t, ref, got)
}

func TestRoundTripZeroObject(t *testing.T) {
	c := New()

	buf, err := c.Serialize(&model.TestObj{})
	require.NoError(t, err)

	got, err := c.Deserialize(buf)
	require.NoError(t, err)
	require.Empty(t, got.StringArray)
	require.Empty(t, got.FixedObject.IntArray)

	sum, err := c.Checksum(buf)
	require.NoError(t, err)
	require.Zero(t, sum)
}

// ==================== Checksum ====================

func TestChecksumMatchesModel(t *testing.T) {
	c := New()
	ref := model.Reference()

	buf, err := c.Serialize(ref)
	require.NoError(t, err)

	sum, err := c.Checksum(buf)
	require.NoError(t, err)
	require.Equal(t, ref.Checksum(), sum)
}

func TestChecksumSeesEveryField(t *testing.T) {
	c := New()
	ref := model.Reference()

	base, err := c.Checksum(mustSerialize(t, c, ref))
	require.NoError(t, err)

	mutated := model.Reference()
	mutated.FixedNameObject.Name2 += "longer"
	changed, err := c.Checksum(mustSerialize(t, c, mutated))
	require.NoError(t, err)
	require.NotEqual(t, base, changed)
}

// ==================== Buffer Management ====================

func TestSerializeReusesScratch(t *testing.T) {
	c := New()
	ref := model.Reference()

	first, err := c.Serialize(ref)
	require.NoError(t, err)

	second, err := c.Serialize(ref)
	require.NoError(t, err)
	require.Equal(t, first, second)
	require.True(t, &first[0] == &second[0], "second call should reuse the scratch backing array")
}

func TestSerializePreallocMatchesSerialize(t *testing.T) {
	c := New()
	ref := model.Reference()

	streamed, err := c.Serialize(ref)
	require.NoError(t, err)

	prealloc, err := c.SerializePrealloc(ref)
	require.NoError(t, err)
	require.Equal(t, streamed, prealloc)
	require.LessOrEqual(t, len(prealloc), ref.Msgsize())
}

// ==================== Malformed Input ====================

func TestDeserializeTruncated(t *testing.T) {
	c := New()

	buf, err := c.Serialize(model.Reference())
	require.NoError(t, err)

	_, err = c.Deserialize(buf[:len(buf)/2])
	require.ErrorIs(t, err, codec.ErrTruncated)
}

func TestDeserializeTrailingBytes(t *testing.T) {
	c := New()

	buf, err := c.Serialize(model.Reference())
	require.NoError(t, err)

	withTrailer := append(append([]byte{}, buf...), 0xc0)
	_, err = c.Deserialize(withTrailer)
	require.Error(t, err)
}

func TestChecksumTruncated(t *testing.T) {
	c := New()

	buf, err := c.Serialize(model.Reference())
	require.NoError(t, err)

	_, err = c.Checksum(buf[:len(buf)/2])
	require.ErrorIs(t, err, codec.ErrTruncated)
}

func mustSerialize(t *testing.T, c *Codec, obj *model.TestObj) []byte {
	t.Helper()
	buf, err := c.Serialize(obj)
	require.NoError(t, err)
	out := make([]byte, len(buf))
	copy(out, buf)
	return out
}
