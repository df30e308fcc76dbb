package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/blockdrop/game"
)

var (
	background = color.RGBA{0x12, 0x12, 0x18, 0xff}
	wellColor  = color.RGBA{0x1e, 0x1e, 0x28, 0xff}
	ghostColor = color.RGBA{0x80, 0x80, 0x90, 0xff}

	// palette is indexed by color id; 0 is unused.
	palette = [...]color.RGBA{
		{},
		{0x00, 0xd8, 0xf0, 0xff}, // I
		{0x20, 0x50, 0xe8, 0xff}, // J
		{0xf0, 0x90, 0x20, 0xff}, // L
		{0xf0, 0xe0, 0x20, 0xff}, // O
		{0x40, 0xd0, 0x40, 0xff}, // S
		{0xa0, 0x40, 0xe0, 0xff}, // T
		{0xe8, 0x30, 0x30, 0xff}, // Z
	}
)

func colorOf(id uint8) color.Color {
	if int(id) >= len(palette) || id == 0 {
		return ghostColor
	}
	return palette[id]
}

// board draws snapshots at a fixed origin and cell size.
type board struct {
	cell   float32
	ox, oy float32
}

func (b board) pixelSize(width, height int) (int, int) {
	c := int(b.cell)
	return width * c, height * c
}

func (b board) fillCell(screen *ebiten.Image, x, y int, clr color.Color) {
	px := b.ox + float32(x)*b.cell
	py := b.oy + float32(y)*b.cell
	vector.DrawFilledRect(screen, px+1, py+1, b.cell-2, b.cell-2, clr, false)
}

func (b board) strokeCell(screen *ebiten.Image, x, y int, clr color.Color) {
	px := b.ox + float32(x)*b.cell
	py := b.oy + float32(y)*b.cell
	vector.StrokeRect(screen, px+2, py+2, b.cell-4, b.cell-4, 1, clr, false)
}

func (b board) draw(screen *ebiten.Image, snap game.Snapshot) {
	w := float32(snap.Width) * b.cell
	h := float32(snap.Height) * b.cell
	vector.DrawFilledRect(screen, b.ox, b.oy, w, h, wellColor, false)

	for _, c := range snap.Ghost {
		b.strokeCell(screen, c.X, c.Y, ghostColor)
	}
	for _, c := range snap.Well {
		b.fillCell(screen, c.X, c.Y, colorOf(c.Color))
	}
	for _, c := range snap.Active {
		b.fillCell(screen, c.X, c.Y, colorOf(c.Color))
	}
}
