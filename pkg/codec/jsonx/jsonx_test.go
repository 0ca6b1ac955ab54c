package jsonx

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

func TestSerializeUsesSnakeCaseKeys(t *testing.T) {
	c := New()

	buf, err := c.Serialize(model.Reference())
	require.NoError(t, err)
	require.Contains(t, string(buf), `"fixed_name_object"`)
	require.Contains(t, string(buf), `"another_bool"`)
	require.NotContains(t, string(buf), `"FixedNameObject"`)
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

// The canonical escaped_text value contains quotes that the encoder must
// escape on the wire. The walk counts unescaped lengths, so the result has
// to agree with the model side anyway.
func TestChecksumCountsUnescapedLengths(t *testing.T) {
	c := New()
	obj := &model.TestObj{}
	obj.AnotherObject.EscapedText = "a\"b\\c\nd"

	buf, err := c.Serialize(obj)
	require.NoError(t, err)
	require.Greater(t, len(buf), 0)

	sum, err := c.Checksum(buf)
	require.NoError(t, err)
	require.Equal(t, obj.Checksum(), sum)
	require.Equal(t, uint64(7), sum)
}

func TestChecksumSkipsUnknownFields(t *testing.T) {
	c := New()

	raw := []byte(`{"future_field":[1,2,3],"string":"ab","number":4.9}`)
	sum, err := c.Checksum(raw)
	require.NoError(t, err)
	require.Equal(t, uint64(6), sum)
}

func TestChecksumZeroObject(t *testing.T) {
	c := New()

	buf, err := c.Serialize(&model.TestObj{})
	require.NoError(t, err)

	sum, err := c.Checksum(buf)
	require.NoError(t, err)
	require.Zero(t, sum)
}

// ==================== Malformed Input ====================

func TestDeserializeTruncated(t *testing.T) {
	c := New()

	buf, err := c.Serialize(model.Reference())
	require.NoError(t, err)

	_, err = c.Deserialize(buf[:len(buf)/2])
	require.Error(t, err)
}

func TestDeserializeGarbage(t *testing.T) {
	c := New()

	_, err := c.Deserialize([]byte(`{"fixed_object":`))
	require.Error(t, err)
}

func TestChecksumTruncated(t *testing.T) {
	c := New()

	buf, err := c.Serialize(model.Reference())
	require.NoError(t, err)

	_, err = c.Checksum(buf[:len(buf)/2])
	require.Error(t, err)
}
