package main

import (
	"image"
	"image/color"

	"github.com/golang/freetype/truetype"
	"github.com/hajimehoshi/ebiten"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

const (
	dotSize = 128
)

var (
	COLOR_BACKGROUND = color.RGBA{70, 70, 70, 255}
	COLOR_CLOSED     = color.RGBA{128, 128, 128, 255}
	COLOR_BORDER     = color.RGBA{0, 0, 0, 255}
	COLOR_BANNER     = color.RGBA{0, 0, 0, 190}
)

type Assets struct {
	Font      font.Face
	SmallFont font.Face
	Dot       *ebiten.Image
	Closed    *Nine
}

func LoadAssets() (*Assets, error) {
	tt, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, err
	}
	const dpi = 72
	big := truetype.NewFace(tt, &truetype.Options{
		Size:    40,
		DPI:     dpi,
		Hinting: font.HintingFull,
	})
	small := truetype.NewFace(tt, &truetype.Options{
		Size:    16,
		DPI:     dpi,
		Hinting: font.HintingFull,
	})

	dot, err := ebiten.NewImageFromImage(circleImage(dotSize), ebiten.FilterLinear)
	if err != nil {
		return nil, err
	}
	frame, err := ebiten.NewImageFromImage(frameImage(), ebiten.FilterNearest)
	if err != nil {
		return nil, err
	}

	return &Assets{
		Font:      big,
		SmallFont: small,
		Dot:       dot,
		Closed:    NewNine(frame, 1, 1, 2, 2),
	}, nil
}

// circleImage is a white disc, tinted per tile when drawn.
func circleImage(size int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	r := float64(size) / 2
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dx := float64(x) + .5 - r
			dy := float64(y) + .5 - r
			if dx*dx+dy*dy <= r*r {
				img.Set(x, y, color.White)
			}
		}
	}
	return img
}

// frameImage is a 3x3 nine-slice source: one pixel border around a gray
// center, giving the closed tile look at any size.
func frameImage() image.Image {
	img := image.NewRGBA(image.Rect(0, 0, 3, 3))
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			img.Set(x, y, COLOR_BORDER)
		}
	}
	img.Set(1, 1, COLOR_CLOSED)
	return img
}
