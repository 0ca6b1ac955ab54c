package flatbuf

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
	require.Equal(t, &model.TestObj{}, got)

	sum, err := c.Checksum(buf)
	require.NoError(t, err)
	require.Zero(t, sum)
}

// ==================== Builder Reuse ====================

func TestSerializeIsRepeatable(t *testing.T) {
	c := New()
	ref := model.Reference()

	first, err := c.Serialize(ref)
	require.NoError(t, err)
	firstCopy := append([]byte{}, first...)

	second, err := c.Serialize(ref)
	require.NoError(t, err)
	require.Equal(t, firstCopy, second)
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

// ==================== Malformed Input ====================

func TestDeserializeEmptyBuffer(t *testing.T) {
	c := New()

	_, err := c.Deserialize(nil)
	require.ErrorIs(t, err, codec.ErrTruncated)
}

func TestDeserializeTruncatedDoesNotPanic(t *testing.T) {
	c := New()

	buf, err := c.Serialize(model.Reference())
	require.NoError(t, err)

	for _, cut := range []int{4, 8, len(buf) / 4, len(buf) / 2} {
		_, err := c.Deserialize(buf[:cut])
		require.Error(t, err, "cut at %d bytes", cut)
	}
}

func TestChecksumTruncatedDoesNotPanic(t *testing.T) {
	c := New()

	buf, err := c.Serialize(model.Reference())
	require.NoError(t, err)

	_, err = c.Checksum(buf[:len(buf)/2])
	require.Error(t, err)
}
