package textenc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUTF16RoundTrip(t *testing.T) {
	cases := []string{"", "EMF", "Ünïcödé", "日本語", "emoji \U0001F600 pair"}
	for _, s := range cases {
		enc, err := EncodeUTF16(s)
		require.NoError(t, err)
		got, err := DecodeUTF16(enc)
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}
}

func TestUTF16Terminator(t *testing.T) {
	enc, err := EncodeUTF16Z("abc")
	require.NoError(t, err)
	assert.Equal(t, []byte{'a', 0, 'b', 0, 'c', 0, 0, 0}, enc)
	assert.Equal(t, 3, UTF16Units(enc))

	// Padding after the terminator is ignored.
	enc = append(enc, 'x', 0)
	got, err := DecodeUTF16(enc)
	require.NoError(t, err)
	assert.Equal(t, "abc", got)

	_, err = DecodeUTF16([]byte{'a'})
	assert.ErrorIs(t, err, ErrOddLength)
}

func TestSurrogatePairUnits(t *testing.T) {
	enc, err := EncodeUTF16("\U0001F600")
	require.NoError(t, err)
	assert.Equal(t, 2, UTF16Units(enc))
}

func TestUTF32Conversions(t *testing.T) {
	const telegraph = "Telegraph: Телеграф \U0001F4E0"

	u32, err := EncodeUTF32(telegraph)
	require.NoError(t, err)
	assert.Len(t, u32, 4*len([]rune(telegraph)))
	assert.Equal(t, len([]rune(telegraph)), UTF32Units(u32))

	u16, err := UTF32ToUTF16(u32)
	require.NoError(t, err)
	back, err := UTF16ToUTF32(u16)
	require.NoError(t, err)
	assert.Equal(t, u32, back)

	s, err := DecodeUTF32(append(back, 0, 0, 0, 0))
	require.NoError(t, err)
	assert.Equal(t, telegraph, s)

	_, err = DecodeUTF32([]byte{1, 0, 0})
	assert.ErrorIs(t, err, ErrPartialUnit)
}

func TestANSI(t *testing.T) {
	b, err := EncodeANSI("café €")
	require.NoError(t, err)
	assert.Equal(t, []byte{'c', 'a', 'f', 0xE9, ' ', 0x80}, b)

	s, err := DecodeANSI(append(b, 0, 'z'))
	require.NoError(t, err)
	assert.Equal(t, "café €", s)

	_, err = EncodeANSI("日本")
	assert.Error(t, err)

	plain, err := EncodeANSI("plain")
	require.NoError(t, err)
	assert.Equal(t, []byte("plain"), plain)
}
