package skinviewer

import (
	"image"
)

// Format is the resolution class of a skin texture.
type Format int

const (
	Unknown Format = iota
	LD             // 64x32, pre-1.8 skins without overlay rows or separate left limbs
	SD             // 64x64
	HD             // 128x128
)

func (f Format) String() string {
	switch f {
	case LD:
		return "LD"
	case SD:
		return "SD"
	case HD:
		return "HD"
	}
	return ""
}

// Classify works out the format of a texture from its dimensions alone.
func Classify(size image.Point) Format {
	switch {
	case size.X == 64 && size.Y == 32:
		return LD
	case size.X == 128 && size.Y == 128:
		return HD
	case size.X == 64 && size.Y == 64:
		return SD
	}
	return Unknown
}

// ClassifyImage is Classify applied to the bounds of im.
func ClassifyImage(im image.Image) Format {
	return Classify(im.Bounds().Size())
}

// BodyType selects the arm width of the model the skin is drawn for.
type BodyType int

const (
	Classic BodyType = iota
	Slim
)

func (b BodyType) String() string {
	if b == Slim {
		return "slim"
	}
	return "classic"
}

// ParseBodyType maps a model tag onto a BodyType. Only "slim" selects the
// slim model; everything else, including the empty string, is Classic.
func ParseBodyType(tag string) BodyType {
	if tag == "slim" {
		return Slim
	}
	return Classic
}

func (b BodyType) armWidth() int {
	if b == Slim {
		return 6
	}
	return 8
}
