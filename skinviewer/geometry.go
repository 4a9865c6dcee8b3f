package skinviewer

import (
	"image"
)

// Coordinates below are in HD (128x128) texture space and get multiplied by
// the resolution factor, so SD and LD textures share the same layout.
const (
	headSize    = 16
	torsoWidth  = 16
	limbHeight  = 24
	legWidth    = 8
	portraitTop = 16 // head height, where torso and arms start
	legTop      = 40
)

// PartRegion is a single blit: Src in texture space, Dst on the portrait.
type PartRegion struct {
	Src image.Rectangle
	Dst image.Rectangle
}

// Layer is one body part: the base region with the overlay region drawn on
// top of it at the same destination.
type Layer struct {
	Part    string
	Base    PartRegion
	Overlay PartRegion
}

// Geometry is the full layout for one format and body type.
type Geometry struct {
	Format   Format
	Body     BodyType
	Factor   float64
	ArmWidth int
	Size     image.Point

	// Layers in draw order: head, torso, right arm, left arm, right leg, left leg.
	Layers []Layer
}

func rect(x, y, w, h int) image.Rectangle {
	return image.Rect(x, y, x+w, y+h)
}

// Layout computes the geometry for a classified texture. It fails only for
// Unknown.
func Layout(format Format, body BodyType) (Geometry, error) {
	if format == Unknown {
		return Geometry{}, ERR_INVALID_SKIN_FORMAT
	}

	factor := 0.5
	if format == HD {
		factor = 1
	}
	px := func(n int) int {
		return int(float64(n) * factor)
	}

	g := Geometry{
		Format:   format,
		Body:     body,
		Factor:   factor,
		ArmWidth: px(body.armWidth()),
	}
	g.Size = image.Pt(px(torsoWidth)+2*g.ArmWidth, px(2*limbHeight)+px(headSize))

	head := rect(g.ArmWidth, 0, px(headSize), px(headSize))
	torso := rect(g.ArmWidth, px(portraitTop), px(torsoWidth), px(limbHeight))

	g.Layers = []Layer{
		{
			Part: "head",
			Base: PartRegion{
				Src: rect(px(16), px(16), px(headSize), px(headSize)),
				Dst: head,
			},
			Overlay: PartRegion{
				Src: rect(px(80), px(16), px(headSize), px(headSize)),
				Dst: head,
			},
		},
		{
			Part: "torso",
			Base: PartRegion{
				Src: rect(px(40), px(40), px(torsoWidth), px(limbHeight)),
				Dst: torso,
			},
			Overlay: PartRegion{
				Src: rect(px(40), px(72), px(torsoWidth), px(limbHeight)),
				Dst: torso,
			},
		},
	}

	lowRes := format == LD
	g.Layers = append(g.Layers,
		g.arm(px, lowRes, true),
		g.arm(px, lowRes, false),
		g.leg(px, lowRes, true),
		g.leg(px, lowRes, false),
	)

	return g, nil
}

// Low resolution textures have no separate left limbs, so the left arm and
// leg are drawn from the right side's art.
func (g Geometry) arm(px func(int) int, lowRes, isRight bool) Layer {
	h := px(limbHeight)
	dx := 0
	part := "right arm"
	if !isRight {
		dx = px(torsoWidth) + g.ArmWidth
		part = "left arm"
	}
	dst := rect(dx, px(portraitTop), g.ArmWidth, h)

	baseX, baseY, overX, overY := 72, 104, 104, 104
	if isRight || lowRes {
		baseX, baseY, overX, overY = 88, 40, 88, 72
	}

	return Layer{
		Part:    part,
		Base:    PartRegion{Src: rect(px(baseX), px(baseY), g.ArmWidth, h), Dst: dst},
		Overlay: PartRegion{Src: rect(px(overX), px(overY), g.ArmWidth, h), Dst: dst},
	}
}

func (g Geometry) leg(px func(int) int, lowRes, isRight bool) Layer {
	w, h := px(legWidth), px(limbHeight)
	dx := g.ArmWidth
	part := "right leg"
	if !isRight {
		dx += w
		part = "left leg"
	}
	dst := rect(dx, px(legTop), w, h)

	baseX, baseY, overY := 40, 104, 104
	if isRight || lowRes {
		baseX, baseY, overY = 8, 40, 72
	}

	return Layer{
		Part:    part,
		Base:    PartRegion{Src: rect(px(baseX), px(baseY), w, h), Dst: dst},
		Overlay: PartRegion{Src: rect(px(8), px(overY), w, h), Dst: dst},
	}
}
