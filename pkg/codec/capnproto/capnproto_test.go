package capnproto

import (
	"testing"

	"github.com/stretchr/testify/require"

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

// ==================== Arena Reuse ====================

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

func TestSerializeOutputIndependentOfArena(t *testing.T) {
	c := New()
	ref := model.Reference()

	buf, err := c.Serialize(ref)
	require.NoError(t, err)
	snapshot := append([]byte{}, buf...)

	// Building another message reuses the arena; the previously returned
	// framed buffer must stay intact.
	_, err = c.Serialize(&model.TestObj{})
	require.NoError(t, err)
	require.Equal(t, snapshot, buf)
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

func TestDeserializeTruncated(t *testing.T) {
	c := New()

	buf, err := c.Serialize(model.Reference())
	require.NoError(t, err)

	_, err = c.Deserialize(buf[:len(buf)/2])
	require.Error(t, err)
}

func TestChecksumTruncated(t *testing.T) {
	c := New()

	buf, err := c.Serialize(model.Reference())
	require.NoError(t, err)

	_, err = c.Checksum(buf[:len(buf)/2])
	require.Error(t, err)
}

func TestDeserializeEmptyBuffer(t *testing.T) {
	c := New()

	_, err := c.Deserialize(nil)
	require.Error(t, err)
}
