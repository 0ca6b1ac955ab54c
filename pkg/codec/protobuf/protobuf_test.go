package protobuf

import (
	"testing"

	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/encoding/protowire"

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
	require.Equal(t, &model.TestObj{}, got)

	sum, err := c.Checksum(buf)
	require.NoError(t, err)
	require.Zero(t, sum)
}

func TestRoundTripNegativeInts(t *testing.T) {
	c := New()
	obj := &model.TestObj{}
	obj.FixedObject.IntArray = []int32{-1, -2147483648, 2147483647}

	buf, err := c.Serialize(obj)
	require.NoError(t, err)

	got, err := c.Deserialize(buf)
	require.NoError(t, err)
	require.Equal(t, obj.FixedObject.IntArray, got.FixedObject.IntArray)

	sum, err := c.Checksum(buf)
	require.NoError(t, err)
	require.Equal(t, obj.Checksum(), sum)
}

// ==================== Encoding ====================

func TestSerializeSizeIsExact(t *testing.T) {
	c := New()
	ref := model.Reference()

	buf, err := c.Serialize(ref)
	require.NoError(t, err)
	require.Equal(t, sizeTestObj(ref), len(buf))
}

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

// ==================== Wire Compatibility ====================

func TestDeserializeSkipsUnknownFields(t *testing.T) {
	c := New()
	ref := model.Reference()

	buf, err := c.Serialize(ref)
	require.NoError(t, err)

	var withUnknown []byte
	withUnknown = protowire.AppendTag(withUnknown, 99, protowire.VarintType)
	withUnknown = protowire.AppendVarint(withUnknown, 12345)
	withUnknown = append(withUnknown, buf...)

	got, err := c.Deserialize(withUnknown)
	require.NoError(t, err)
	require.Equal(t, ref, got)
}

func TestDeserializeAcceptsUnpackedInts(t *testing.T) {
	c := New()

	var inner []byte
	inner = protowire.AppendTag(inner, 1, protowire.VarintType)
	inner = protowire.AppendVarint(inner, uint64(int64(int32(7))))
	neg := int32(-2)
	inner = protowire.AppendTag(inner, 1, protowire.VarintType)
	inner = protowire.AppendVarint(inner, uint64(int64(neg)))

	var outer []byte
	outer = protowire.AppendTag(outer, 1, protowire.BytesType)
	outer = protowire.AppendBytes(outer, inner)

	got, err := c.Deserialize(outer)
	require.NoError(t, err)
	require.Equal(t, []int32{7, -2}, got.FixedObject.IntArray)
}

// ==================== Malformed Input ====================

func TestDeserializeTruncated(t *testing.T) {
	c := New()

	buf, err := c.Serialize(model.Reference())
	require.NoError(t, err)

	_, err = c.Deserialize(buf[:len(buf)/2])
	require.ErrorIs(t, err, codec.ErrTruncated)
}

func TestChecksumTruncated(t *testing.T) {
	c := New()

	buf, err := c.Serialize(model.Reference())
	require.NoError(t, err)

	_, err = c.Checksum(buf[:len(buf)/2])
	require.ErrorIs(t, err, codec.ErrTruncated)
}
