package launchericon

import (
	"image/color"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderer_Dimensions(t *testing.T) {
	r := NewRenderer()

	for _, size := range []int{1, 2, 5, 10, 48, 72, 96, 144, 192, StoreListingSize} {
		img, err := r.Render(size)
		require.NoError(t, err)
		assert.Equal(t, size, img.Bounds().Dx())
		assert.Equal(t, size, img.Bounds().Dy())
	}
}

func TestRenderer_InvalidSize(t *testing.T) {
	r := NewRenderer()

	for _, size := range []int{0, -1, -512} {
		img, err := r.Render(size)
		assert.ErrorIs(t, err, ErrInvalidSize)
		assert.Nil(t, img)
	}
}

func TestRenderer_Deterministic(t *testing.T) {
	r := NewRenderer()

	for _, d := range Densities() {
		a, err := r.Render(d.Size)
		require.NoError(t, err)
		b, err := r.Render(d.Size)
		require.NoError(t, err)
		assert.Equal(t, a.Pix, b.Pix, "density %s", d.Name)
	}
}

func TestRenderer_Concurrent(t *testing.T) {
	r := NewRenderer()
	want, err := r.Render(96)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := r.Render(96)
			assert.NoError(t, err)
			assert.Equal(t, want.Pix, got.Pix)
		}()
	}
	wg.Wait()
}

func TestRenderer_CrossMetrics(t *testing.T) {
	testCases := []struct {
		size      int
		thickness int
		length    int
	}{
		{size: 48, thickness: 5, length: 21},
		{size: 72, thickness: 8, length: 32},
		{size: 96, thickness: 11, length: 42},
		{size: 144, thickness: 16, length: 63},
		{size: 192, thickness: 21, length: 84},
		{size: 512, thickness: 56, length: 225},
	}
	for _, tc := range testCases {
		thickness, length := CrossMetrics(tc.size)
		assert.Equal(t, tc.thickness, thickness, "size %d", tc.size)
		assert.Equal(t, tc.length, length, "size %d", tc.size)
	}

	for size := 10; size <= 1024; size++ {
		thickness, length := CrossMetrics(size)
		assert.Greater(t, length, thickness, "size %d", size)
	}
}

func TestRenderer_Layers(t *testing.T) {
	assert := assert.New(t)
	r := NewRenderer()

	img, err := r.Render(48)
	require.NoError(t, err)

	// The center is covered by the highlight, drawn on top of the cross.
	assert.Equal(DefaultPalette.Highlight, img.NRGBAAt(24, 24))

	// Cross bars, outside of the highlight.
	assert.Equal(DefaultPalette.Cross, img.NRGBAAt(24, 15))
	assert.Equal(DefaultPalette.Cross, img.NRGBAAt(15, 24))
	assert.Equal(DefaultPalette.Cross, img.NRGBAAt(22, 34))

	// Corners are outside of the diamond.
	assert.Equal(DefaultPalette.Background, img.NRGBAAt(0, 0))
	assert.Equal(DefaultPalette.Background, img.NRGBAAt(47, 47))
	assert.Equal(DefaultPalette.Background, img.NRGBAAt(47, 0))

	// Inside the diamond the overlay is blended with the background.
	c := img.NRGBAAt(24, 2)
	assert.Equal(uint8(0xff), c.A)
	assert.Equal(uint8(0), c.R)
	assert.InDelta(159, int(c.G), 1)
	assert.InDelta(177, int(c.B), 1)
	assert.NotEqual(DefaultPalette.Background, c)
}

func TestRenderer_FlatBackgroundIsOpaque(t *testing.T) {
	img, err := NewRenderer().Render(48)
	require.NoError(t, err)

	for y := 0; y < 48; y++ {
		for x := 0; x < 48; x++ {
			assert.Equal(t, uint8(0xff), img.NRGBAAt(x, y).A, "pixel (%d,%d)", x, y)
		}
	}
}

// The reference drawing computes a per row fade but fills the rows with an
// opaque color. The flat background is the default; the fade is opt-in.
func TestRenderer_Fade(t *testing.T) {
	assert := assert.New(t)

	flat, err := NewRenderer().Render(48)
	require.NoError(t, err)

	r := NewRenderer()
	r.Fade = true
	faded, err := r.Render(48)
	require.NoError(t, err)

	assert.Equal(uint8(255), RowAlpha(0, 48))
	assert.Equal(uint8(155), RowAlpha(47, 48))

	assert.Equal(flat.NRGBAAt(0, 0), faded.NRGBAAt(0, 0))

	bottom := faded.NRGBAAt(0, 47)
	assert.Equal(RowAlpha(47, 48), bottom.A)
	assert.Equal(color.NRGBA{R: 0x00, G: 0xac, B: 0xc1, A: 155}, bottom)

	// The cross and the highlight are opaque on both variants.
	assert.Equal(flat.NRGBAAt(24, 24), faded.NRGBAAt(24, 24))
	assert.Equal(flat.NRGBAAt(24, 15), faded.NRGBAAt(24, 15))
	assert.NotEqual(flat.Pix, faded.Pix)
}
