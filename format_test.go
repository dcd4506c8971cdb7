package float128_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/db47h/float128"
)

func TestStringSpecialValues(t *testing.T) {
	assert.Equal(t, "NaN", float128.QuietNaN.String())
	assert.Equal(t, "Inf", float128.Inf(false).String())
	assert.Equal(t, "-Inf", float128.Inf(true).String())
}

func TestTextFormatVerbs(t *testing.T) {
	v, err := float128.Parse("1234.5")
	require.NoError(t, err)
	assert.Equal(t, "1234.5", v.Text('f', -1))
	// 'e' format always has an exponent.
	assert.Contains(t, v.Text('e', -1), "e")
}

func TestAppend(t *testing.T) {
	v, err := float128.Parse("2.5")
	require.NoError(t, err)
	buf := []byte("x=")
	buf = v.Append(buf, 'f', -1)
	assert.Equal(t, "x=2.5", string(buf))
}

func TestMarshalUnmarshalText(t *testing.T) {
	v, err := float128.Parse("-98.765")
	require.NoError(t, err)
	b, err := v.MarshalText()
	require.NoError(t, err)

	var got float128.Float128
	require.NoError(t, got.UnmarshalText(b))
	assert.True(t, v.Equal(got))
}

func TestFormatFmtVerb(t *testing.T) {
	v, err := float128.Parse("3.5")
	require.NoError(t, err)
	assert.Equal(t, "3.5", fmt.Sprintf("%v", v))
	assert.Equal(t, "3.5", fmt.Sprintf("%s", v))
}

func TestScanFmtVerb(t *testing.T) {
	var v float128.Float128
	n, err := fmt.Sscan("42.5", &v)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	want, err := float128.Parse("42.5")
	require.NoError(t, err)
	assert.True(t, v.Equal(want))
}

func TestWriteExponentAndSignificandBytes(t *testing.T) {
	v, err := float128.Parse("1")
	require.NoError(t, err)

	var buf [float128.ExponentByteCount]byte
	n := v.WriteExponentBE(buf[:])
	assert.Equal(t, float128.ExponentByteCount, n)
	assert.Equal(t, int16(0), int16(buf[0])<<8|int16(buf[1])) // unbiased exponent of 1.0 is 0

	var sigBuf [float128.SignificandByteCount]byte
	n = v.WriteSignificandBE(sigBuf[:])
	assert.Equal(t, float128.SignificandByteCount, n)
}

func TestExponentAndSignificandBitLength(t *testing.T) {
	v, err := float128.Parse("1")
	require.NoError(t, err)
	assert.GreaterOrEqual(t, v.ExponentShortestBitLength(), 0)
	assert.Greater(t, v.SignificandBitLength(), 0)
}
