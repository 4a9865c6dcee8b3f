package skinviewer

import (
	"context"
	"image"
)

// TextureLoader fetches and decodes the texture a locator refers to.
type TextureLoader interface {
	Load(ctx context.Context, locator string) (image.Image, error)
}

// Compositor turns texture locators into encoded portraits. The zero
// Encoding is PNG and a Scale below 2 leaves the portrait at texture size.
type Compositor struct {
	Loader   TextureLoader
	Encoding Encoding
	Scale    int
}

// Compose starts rendering the texture at locator in the background and
// returns immediately. Calls share nothing but the loader.
func (c Compositor) Compose(locator string, body BodyType) *Future {
	f := newFuture()
	go func() {
		f.resolve(c.compose(locator, body))
	}()
	return f
}

func (c Compositor) compose(locator string, body BodyType) (string, error) {
	tex, err := LoadTexture(context.Background(), c.Loader, locator)
	if err != nil {
		return "", err
	}

	im, err := Render(tex, body)
	if err != nil {
		return "", err
	}
	if c.Scale > 1 {
		im = Upscale(im, c.Scale)
	}

	return EncodeDataURL(im, c.Encoding)
}

// LoadTexture loads locator with l, reporting any failure, including a
// loader that hands back neither a texture nor an error, as a *LoadError.
func LoadTexture(ctx context.Context, l TextureLoader, locator string) (image.Image, error) {
	tex, err := l.Load(ctx, locator)
	if err == nil && tex == nil {
		err = ERR_NO_TEXTURE
	}
	if err != nil {
		return nil, &LoadError{Locator: locator, Err: err}
	}
	return tex, nil
}

// Compose renders the texture at locator as a PNG data URL.
func Compose(l TextureLoader, locator string, body BodyType) *Future {
	return Compositor{Loader: l}.Compose(locator, body)
}
