package poster

import (
	"bytes"
	"image/png"
	"testing"

	"bizvistar/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQRPosterService_GeneratePoster(t *testing.T) {
	service := NewQRPosterService(&config.Config{
		Poster: &config.PosterConfig{Size: 256, ErrorCorrectionLevel: "M"},
	})

	data, err := service.GeneratePoster("https://bizvistar.test/site/chai-corner")
	require.NoError(t, err)
	require.NotEmpty(t, data)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 256, img.Bounds().Dx())
	assert.Equal(t, 256, img.Bounds().Dy())
}

func TestQRPosterService_GeneratePoster_EmptyURL(t *testing.T) {
	service := NewQRPosterService(nil)

	_, err := service.GeneratePoster("")
	assert.Error(t, err)
}

func TestQRPosterService_DefaultsWithoutConfig(t *testing.T) {
	service := NewQRPosterService(&config.Config{})

	data, err := service.GeneratePoster("https://bizvistar.test/site/chai-corner")
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}
