package chip8

import (
	"fmt"
	"image"
	"image/png"
	"os"

	"golang.org/x/image/draw"
)

// GetFramebufferRGBA renders the 64x32 monochrome framebuffer as RGBA8888
// bytes (length 64*32*4). Lit pixels are white, unlit black, alpha opaque.
func (c *CPU) GetFramebufferRGBA() []byte {
	pixels := make([]byte, VideoWidth*VideoHeight*4)
	for i, px := range c.Video {
		var v byte
		if px != 0 {
			v = 0xFF
		}
		pixels[i*4+0] = v
		pixels[i*4+1] = v
		pixels[i*4+2] = v
		pixels[i*4+3] = 0xFF
	}
	return pixels
}

// GetFramebufferImage returns the framebuffer as a 64x32 *image.RGBA.
func (c *CPU) GetFramebufferImage() *image.RGBA {
	return &image.RGBA{
		Pix:    c.GetFramebufferRGBA(),
		Stride: VideoWidth * 4,
		Rect:   image.Rect(0, 0, VideoWidth, VideoHeight),
	}
}

// SaveScreenshot encodes the framebuffer as a PNG and writes it to filename,
// upscaled by the given integer factor with nearest-neighbor sampling so the
// pixels stay crisp.
func (c *CPU) SaveScreenshot(filename string, scale int) error {
	if scale < 1 {
		return fmt.Errorf("screenshot scale must be >= 1, got %d", scale)
	}
	img := c.GetFramebufferImage()
	if scale > 1 {
		dst := image.NewRGBA(image.Rect(0, 0, VideoWidth*scale, VideoHeight*scale))
		draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
		img = dst
	}
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, img)
}
