package skinviewer

import (
	"errors"
	"image"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLayoutSize(t *testing.T) {
	for _, tc := range []struct {
		format Format
		body   BodyType
		want   image.Point
	}{
		{HD, Classic, image.Pt(32, 64)},
		{HD, Slim, image.Pt(28, 64)},
		{SD, Classic, image.Pt(16, 32)},
		{SD, Slim, image.Pt(14, 32)},
		{LD, Classic, image.Pt(16, 32)},
		{LD, Slim, image.Pt(14, 32)},
	} {
		g, err := Layout(tc.format, tc.body)
		if err != nil {
			t.Fatalf("Layout(%v, %v): %v", tc.format, tc.body, err)
		}
		if g.Size != tc.want {
			t.Errorf("Layout(%v, %v).Size = %v, want %v", tc.format, tc.body, g.Size, tc.want)
		}
	}
}

func TestLayoutUnknown(t *testing.T) {
	if _, err := Layout(Unknown, Classic); !errors.Is(err, ERR_INVALID_SKIN_FORMAT) {
		t.Errorf("Layout(Unknown) error = %v, want %v", err, ERR_INVALID_SKIN_FORMAT)
	}
}

func region(sx, sy, dx, dy, w, h int) PartRegion {
	return PartRegion{Src: rect(sx, sy, w, h), Dst: rect(dx, dy, w, h)}
}

func TestLayoutHDClassic(t *testing.T) {
	g, err := Layout(HD, Classic)
	if err != nil {
		t.Fatal(err)
	}

	want := []Layer{
		{Part: "head", Base: region(16, 16, 8, 0, 16, 16), Overlay: region(80, 16, 8, 0, 16, 16)},
		{Part: "torso", Base: region(40, 40, 8, 16, 16, 24), Overlay: region(40, 72, 8, 16, 16, 24)},
		{Part: "right arm", Base: region(88, 40, 0, 16, 8, 24), Overlay: region(88, 72, 0, 16, 8, 24)},
		{Part: "left arm", Base: region(72, 104, 24, 16, 8, 24), Overlay: region(104, 104, 24, 16, 8, 24)},
		{Part: "right leg", Base: region(8, 40, 8, 40, 8, 24), Overlay: region(8, 72, 8, 40, 8, 24)},
		{Part: "left leg", Base: region(40, 104, 16, 40, 8, 24), Overlay: region(8, 104, 16, 40, 8, 24)},
	}
	if diff := cmp.Diff(want, g.Layers); diff != "" {
		t.Errorf("HD classic layers mismatch (-want +got):\n%s", diff)
	}
	if g.Factor != 1 || g.ArmWidth != 8 {
		t.Errorf("factor, arm width = %v, %d; want 1, 8", g.Factor, g.ArmWidth)
	}
}

func TestLayoutSDSlim(t *testing.T) {
	g, err := Layout(SD, Slim)
	if err != nil {
		t.Fatal(err)
	}

	want := []Layer{
		{Part: "head", Base: region(8, 8, 3, 0, 8, 8), Overlay: region(40, 8, 3, 0, 8, 8)},
		{Part: "torso", Base: region(20, 20, 3, 8, 8, 12), Overlay: region(20, 36, 3, 8, 8, 12)},
		{Part: "right arm", Base: region(44, 20, 0, 8, 3, 12), Overlay: region(44, 36, 0, 8, 3, 12)},
		{Part: "left arm", Base: region(36, 52, 11, 8, 3, 12), Overlay: region(52, 52, 11, 8, 3, 12)},
		{Part: "right leg", Base: region(4, 20, 3, 20, 4, 12), Overlay: region(4, 36, 3, 20, 4, 12)},
		{Part: "left leg", Base: region(20, 52, 7, 20, 4, 12), Overlay: region(4, 52, 7, 20, 4, 12)},
	}
	if diff := cmp.Diff(want, g.Layers); diff != "" {
		t.Errorf("SD slim layers mismatch (-want +got):\n%s", diff)
	}
}

func TestLayoutLowResReusesRightSide(t *testing.T) {
	g, err := Layout(LD, Classic)
	if err != nil {
		t.Fatal(err)
	}
	parts := map[string]Layer{}
	for _, l := range g.Layers {
		parts[l.Part] = l
	}

	for _, pair := range [][2]string{{"right arm", "left arm"}, {"right leg", "left leg"}} {
		right, left := parts[pair[0]], parts[pair[1]]
		if right.Base.Src != left.Base.Src || right.Overlay.Src != left.Overlay.Src {
			t.Errorf("%s sources = %v/%v, want the %s's %v/%v",
				pair[1], left.Base.Src, left.Overlay.Src, pair[0], right.Base.Src, right.Overlay.Src)
		}
		if right.Base.Dst == left.Base.Dst {
			t.Errorf("%s and %s share destination %v", pair[0], pair[1], right.Base.Dst)
		}
	}
}

func TestLayoutRegionsFitPortrait(t *testing.T) {
	for _, format := range []Format{LD, SD, HD} {
		for _, body := range []BodyType{Classic, Slim} {
			g, err := Layout(format, body)
			if err != nil {
				t.Fatal(err)
			}
			canvas := image.Rectangle{Max: g.Size}
			for _, l := range g.Layers {
				for _, r := range []PartRegion{l.Base, l.Overlay} {
					if !r.Dst.In(canvas) {
						t.Errorf("%v/%v %s: destination %v outside %v", format, body, l.Part, r.Dst, canvas)
					}
					if r.Src.Size() != r.Dst.Size() {
						t.Errorf("%v/%v %s: source %v and destination %v differ in size", format, body, l.Part, r.Src, r.Dst)
					}
				}
			}
		}
	}
}
