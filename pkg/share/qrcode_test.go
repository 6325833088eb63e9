package share_test

import (
	"bytes"
	"encoding/base64"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/utaipei/fundraising/pkg/share"
)

func TestQRCode(t *testing.T) {
	t.Parallel()

	t.Run("renders requested size", func(t *testing.T) {
		t.Parallel()
		data, err := share.QRCode("https://give.utaipei.edu.tw/?project=research", 300)
		require.NoError(t, err)

		img, err := png.Decode(bytes.NewReader(data))
		require.NoError(t, err)
		assert.Equal(t, 300, img.Bounds().Dx())
		assert.Equal(t, 300, img.Bounds().Dy())
	})

	t.Run("default size", func(t *testing.T) {
		t.Parallel()
		data, err := share.QRCode("https://example.com", 0)
		require.NoError(t, err)

		img, err := png.Decode(bytes.NewReader(data))
		require.NoError(t, err)
		assert.Equal(t, share.DefaultQRSize, img.Bounds().Dx())
	})

	t.Run("clamps size", func(t *testing.T) {
		t.Parallel()
		data, err := share.QRCode("https://example.com", 10_000)
		require.NoError(t, err)

		img, err := png.Decode(bytes.NewReader(data))
		require.NoError(t, err)
		assert.Equal(t, share.MaxQRSize, img.Bounds().Dx())
	})

	t.Run("empty content", func(t *testing.T) {
		t.Parallel()
		data, err := share.QRCode(" \t", 256)
		assert.ErrorIs(t, err, share.ErrEmptyContent)
		assert.Nil(t, data)
	})
}

func TestQRCodeDataURI(t *testing.T) {
	t.Parallel()

	uri, err := share.QRCodeDataURI("https://example.com", 128)
	require.NoError(t, err)

	payload, ok := strings.CutPrefix(uri, "data:image/png;base64,")
	require.True(t, ok)
	raw, err := base64.StdEncoding.DecodeString(payload)
	require.NoError(t, err)
	_, err = png.Decode(bytes.NewReader(raw))
	assert.NoError(t, err)

	_, err = share.QRCodeDataURI("", 128)
	assert.ErrorIs(t, err, share.ErrEmptyContent)
}
