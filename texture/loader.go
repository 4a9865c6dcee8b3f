// Package texture resolves skin texture locators to decoded images.
package texture

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"sync"

	"cloud.google.com/go/storage"
	"github.com/ftrvxmtrx/tga"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
	"google.golang.org/api/option"
)

// DefaultMaxBytes is large enough for any legitimate 128x128 skin in any
// of the registered formats.
const DefaultMaxBytes = 1 << 20

// DefaultMaxPixels bounds the decoded size. Compressed formats can declare
// far more pixels than their byte count suggests.
const DefaultMaxPixels = 512 * 512

var (
	ERR_UNSUPPORTED_LOCATOR = errors.New(`unsupported texture locator`)
	ERR_TOO_LARGE           = errors.New(`texture too large`)
)

// Fetcher loads textures from data URLs, HTTP(S), Cloud Storage and the
// local filesystem. The zero value is usable and loads from every source
// it knows about with http.DefaultClient.
type Fetcher struct {
	Client    *http.Client
	MaxBytes  int64
	MaxPixels int64

	// Schemes restricts which locators are accepted. A nil map allows all;
	// "file" stands for both file:// URLs and bare paths.
	Schemes map[string]bool

	// StorageOptions configure the Cloud Storage client created for the
	// first gs:// locator.
	StorageOptions []option.ClientOption

	gcsMu sync.Mutex
	gcs   *storage.Client
}

func (f *Fetcher) maxBytes() int64 {
	if f.MaxBytes > 0 {
		return f.MaxBytes
	}
	return DefaultMaxBytes
}

func (f *Fetcher) maxPixels() int64 {
	if f.MaxPixels > 0 {
		return f.MaxPixels
	}
	return DefaultMaxPixels
}

func (f *Fetcher) client() *http.Client {
	if f.Client != nil {
		return f.Client
	}
	return http.DefaultClient
}

func (f *Fetcher) allowed(scheme string) bool {
	return f.Schemes == nil || f.Schemes[scheme]
}

func schemeOf(locator string) string {
	i := strings.Index(locator, ":")
	if i <= 1 {
		// no scheme, or a windows drive letter
		return "file"
	}
	scheme := strings.ToLower(locator[:i])
	for _, c := range scheme {
		if !(c >= 'a' && c <= 'z' || c >= '0' && c <= '9' || c == '+' || c == '-' || c == '.') {
			return "file"
		}
	}
	return scheme
}

// Load fetches and decodes the texture at locator.
func (f *Fetcher) Load(ctx context.Context, locator string) (image.Image, error) {
	scheme := schemeOf(locator)
	if !f.allowed(scheme) {
		return nil, fmt.Errorf("texture: %s: %w", scheme, ERR_UNSUPPORTED_LOCATOR)
	}

	var raw []byte
	var err error
	switch scheme {
	case "data":
		raw, err = decodeDataURL(locator)
	case "http", "https":
		raw, err = f.fetchHTTP(ctx, locator)
	case "gs":
		raw, err = f.fetchGCS(ctx, locator)
	case "file":
		raw, err = f.readFile(locator)
	default:
		return nil, fmt.Errorf("texture: %s: %w", scheme, ERR_UNSUPPORTED_LOCATOR)
	}
	if err != nil {
		return nil, err
	}
	if int64(len(raw)) > f.maxBytes() {
		return nil, fmt.Errorf("texture: %d bytes: %w", len(raw), ERR_TOO_LARGE)
	}

	cfg, isTGA, err := decodeConfig(raw)
	if err != nil {
		return nil, fmt.Errorf("texture: decode: %w", err)
	}
	if int64(cfg.Width)*int64(cfg.Height) > f.maxPixels() {
		return nil, fmt.Errorf("texture: %dx%d: %w", cfg.Width, cfg.Height, ERR_TOO_LARGE)
	}

	var img image.Image
	if isTGA {
		img, err = tga.Decode(bytes.NewReader(raw))
	} else {
		img, _, err = image.Decode(bytes.NewReader(raw))
	}
	if err != nil {
		return nil, fmt.Errorf("texture: decode: %w", err)
	}
	return img, nil
}

// decodeConfig reads only the image header. TGA has no magic number, so it
// is tried last, once every registered format has declined.
func decodeConfig(raw []byte) (image.Config, bool, error) {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(raw))
	if err == nil {
		return cfg, false, nil
	}
	if !errors.Is(err, image.ErrFormat) {
		return image.Config{}, false, err
	}

	cfg, tgaErr := tga.DecodeConfig(bytes.NewReader(raw))
	if tgaErr != nil {
		return image.Config{}, false, err
	}
	return cfg, true, nil
}

func (f *Fetcher) readAll(r io.Reader) ([]byte, error) {
	// one byte over the limit is enough to tell it was exceeded
	return io.ReadAll(io.LimitReader(r, f.maxBytes()+1))
}

func (f *Fetcher) fetchHTTP(ctx context.Context, locator string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, locator, nil)
	if err != nil {
		return nil, fmt.Errorf("texture: %w", err)
	}
	resp, err := f.client().Do(req)
	if err != nil {
		return nil, fmt.Errorf("texture: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("texture: GET %s: %s", locator, resp.Status)
	}
	return f.readAll(resp.Body)
}

func (f *Fetcher) storageClient(ctx context.Context) (*storage.Client, error) {
	f.gcsMu.Lock()
	defer f.gcsMu.Unlock()

	if f.gcs == nil {
		c, err := storage.NewClient(ctx, f.StorageOptions...)
		if err != nil {
			return nil, err
		}
		f.gcs = c
	}
	return f.gcs, nil
}

func (f *Fetcher) fetchGCS(ctx context.Context, locator string) ([]byte, error) {
	u, err := url.Parse(locator)
	if err != nil {
		return nil, fmt.Errorf("texture: %w", err)
	}
	object := strings.TrimPrefix(u.Path, "/")
	if u.Host == "" || object == "" {
		return nil, fmt.Errorf("texture: %s: want gs://bucket/object: %w", locator, ERR_UNSUPPORTED_LOCATOR)
	}

	c, err := f.storageClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("texture: storage client: %w", err)
	}
	r, err := c.Bucket(u.Host).Object(object).NewReader(ctx)
	if err != nil {
		return nil, fmt.Errorf("texture: %s: %w", locator, err)
	}
	defer r.Close()
	return f.readAll(r)
}

func (f *Fetcher) readFile(locator string) ([]byte, error) {
	path := locator
	if strings.HasPrefix(strings.ToLower(locator), "file:") {
		u, err := url.Parse(locator)
		if err != nil {
			return nil, fmt.Errorf("texture: %w", err)
		}
		path = u.Path
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("texture: %w", err)
	}
	defer file.Close()
	return f.readAll(file)
}

func decodeDataURL(locator string) ([]byte, error) {
	header, payload, ok := strings.Cut(locator[len("data:"):], ",")
	if !ok {
		return nil, fmt.Errorf("texture: malformed data URL")
	}

	if strings.HasSuffix(header, ";base64") {
		raw, err := base64.StdEncoding.DecodeString(payload)
		if err != nil {
			return nil, fmt.Errorf("texture: data URL: %w", err)
		}
		return raw, nil
	}

	s, err := url.PathUnescape(payload)
	if err != nil {
		return nil, fmt.Errorf("texture: data URL: %w", err)
	}
	return []byte(s), nil
}

// Close releases the Cloud Storage client, if one was created. A later
// gs:// load creates a new one.
func (f *Fetcher) Close() error {
	f.gcsMu.Lock()
	defer f.gcsMu.Unlock()

	if f.gcs == nil {
		return nil
	}
	err := f.gcs.Close()
	f.gcs = nil
	return err
}
