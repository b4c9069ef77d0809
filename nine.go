package main

import (
	"image"

	"github.com/hajimehoshi/ebiten"
)

// Nine draws a nine-slice image stretched to any size: corners keep their
// size, edges stretch along one axis and the center along both.
type Nine struct {
	image               *ebiten.Image
	alpha               float64
	R, G, B, Scale      float64
	positions           [4][2]int
	x, y, width, height int
	// target edges of the three columns / rows on screen
	targetX, targetY [4]float64
}

// NewNine slices img at the given inner corners.
func NewNine(img *ebiten.Image, left, top, right, bottom int) *Nine {
	w, h := img.Size()
	return &Nine{
		image: img,
		alpha: 1,
		R:     1, G: 1, B: 1, Scale: 1,
		positions: [4][2]int{{0, 0}, {left, top}, {right, bottom}, {w, h}},
	}
}

func (n *Nine) SetPosition(x, y int) {
	n.x = x
	n.y = y
	n.SetSize(n.width, n.height)
}

func (n *Nine) SetSize(width, height int) {
	n.width = width
	n.height = height

	n.targetX[0] = float64(n.x)
	n.targetY[0] = float64(n.y)
	n.targetX[1] = float64(n.x) + n.Scale*float64(n.positions[1][0])
	n.targetY[1] = float64(n.y) + n.Scale*float64(n.positions[1][1])
	n.targetX[2] = float64(n.x+n.width) - n.Scale*float64(n.positions[3][0]-n.positions[2][0])
	n.targetY[2] = float64(n.y+n.height) - n.Scale*float64(n.positions[3][1]-n.positions[2][1])
	n.targetX[3] = float64(n.x + n.width)
	n.targetY[3] = float64(n.y + n.height)
}

func (n *Nine) Draw(screen *ebiten.Image) {
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			src := image.Rect(n.positions[col][0], n.positions[row][1], n.positions[col+1][0], n.positions[row+1][1])
			if src.Dx() == 0 || src.Dy() == 0 {
				continue
			}
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Scale(
				(n.targetX[col+1]-n.targetX[col])/float64(src.Dx()),
				(n.targetY[row+1]-n.targetY[row])/float64(src.Dy()))
			op.GeoM.Translate(n.targetX[col], n.targetY[row])
			op.ColorM.Scale(n.R, n.G, n.B, n.alpha)
			screen.DrawImage(n.image.SubImage(src).(*ebiten.Image), op)
		}
	}
}
