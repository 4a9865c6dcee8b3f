package skinviewer

import (
	"image"

	"golang.org/x/image/draw"
)

// blit copies r.Src from src onto r.Dst of dst, compositing over whatever
// is already there. Parts of r.Src outside src are skipped, as a canvas
// would. Scaling, if the rectangles differ in size, is nearest-neighbour:
// skins are pixel art and any smoothing would smear them.
func blit(dst draw.Image, src image.Image, r PartRegion) {
	sb := src.Bounds()
	sr := r.Src.Add(sb.Min)

	if r.Src.Size() != r.Dst.Size() {
		// out of range source pixels read as transparent, which Over ignores
		draw.NearestNeighbor.Scale(dst, r.Dst, src, sr, draw.Over, nil)
		return
	}

	clipped := sr.Intersect(sb)
	if clipped.Empty() {
		return
	}
	dr := image.Rectangle{Min: r.Dst.Min.Add(clipped.Min.Sub(sr.Min))}
	dr.Max = dr.Min.Add(clipped.Size())
	draw.Draw(dst, dr, src, clipped.Min, draw.Over)
}

// DrawLayer draws a base region and then its overlay onto dst.
func DrawLayer(dst draw.Image, src image.Image, l Layer) {
	blit(dst, src, l.Base)
	blit(dst, src, l.Overlay)
}

// Render builds the front-view portrait of tex. The returned image is newly
// allocated and owned by the caller.
func Render(tex image.Image, body BodyType) (*image.NRGBA, error) {
	format := ClassifyImage(tex)
	if format == Unknown {
		size := tex.Bounds().Size()
		return nil, &FormatError{Width: size.X, Height: size.Y}
	}

	g, err := Layout(format, body)
	if err != nil {
		return nil, err
	}

	out := image.NewNRGBA(image.Rectangle{Max: g.Size})
	for _, l := range g.Layers {
		DrawLayer(out, tex, l)
	}
	return out, nil
}

// Upscale enlarges a portrait by an integer factor without smoothing.
func Upscale(im image.Image, n int) *image.NRGBA {
	b := im.Bounds()
	if n < 1 {
		n = 1
	}
	out := image.NewNRGBA(image.Rect(0, 0, b.Dx()*n, b.Dy()*n))
	draw.NearestNeighbor.Scale(out, out.Bounds(), im, b, draw.Src, nil)
	return out
}
