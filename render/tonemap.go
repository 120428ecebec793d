package render

import (
	"image"
	"sync"
)

// ToneMap converts the accumulated grid into an 8-bit RGB image. Each
// pixel depends only on its own cell, so columns are split across
// workers freely; the result is identical for any worker count.
func ToneMap(g *Grid, colorCap float64, workers int) *image.RGBA {
	size := g.Size()
	img := image.NewRGBA(image.Rect(0, 0, size, size))

	if workers <= 1 {
		toneMapColumns(g, img, colorCap, 0, size)
		return img
	}

	var wg sync.WaitGroup
	for _, chunk := range splitChunks(size, workers) {
		wg.Add(1)
		go func(chunk workChunk) {
			defer wg.Done()
			toneMapColumns(g, img, colorCap, chunk.start, chunk.end)
		}(chunk)
	}
	wg.Wait()
	return img
}

func toneMapColumns(g *Grid, img *image.RGBA, colorCap float64, x0, x1 int) {
	size := g.Size()
	for x := x0; x < x1; x++ {
		for y := 0; y < size; y++ {
			img.SetRGBA(x, y, g.At(x, y).ToRGB(colorCap))
		}
	}
}
