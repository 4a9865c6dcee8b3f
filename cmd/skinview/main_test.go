package main

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/lukegb/skinviewer/skinviewer"
	"github.com/lukegb/skinviewer/texture"
)

func TestOutputPath(t *testing.T) {
	for _, tc := range []struct {
		locator string
		enc     skinviewer.Encoding
		want    string
	}{
		{"skins/steve.png", skinviewer.PNG, filepath.Join("out", "steve.png")},
		{"/tmp/alex.tga", skinviewer.WebP, filepath.Join("out", "alex.webp")},
		{"https://example.com/t/abc", skinviewer.PNG, filepath.Join("out", "abc.png")},
	} {
		if got := outputPath("out", tc.locator, tc.enc); got != tc.want {
			t.Errorf("outputPath(%q) = %q, want %q", tc.locator, got, tc.want)
		}
	}
}

func TestRenderOneToFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "steve.png")
	f, err := os.Create(src)
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, image.NewNRGBA(image.Rect(0, 0, 64, 32))); err != nil {
		t.Fatal(err)
	}
	f.Close()

	out := filepath.Join(dir, "portrait.png")
	opts := options{body: skinviewer.Slim, scale: 1, timeout: time.Second}
	c := skinviewer.Compositor{Loader: &texture.Fetcher{}}
	if err := renderOne(c, src, out, opts); err != nil {
		t.Fatalf("renderOne: %v", err)
	}

	rf, err := os.Open(out)
	if err != nil {
		t.Fatal(err)
	}
	defer rf.Close()
	im, err := png.Decode(rf)
	if err != nil {
		t.Fatal(err)
	}
	if got := im.Bounds().Size(); got != image.Pt(14, 32) {
		t.Errorf("portrait size = %v, want 14x32", got)
	}
}
