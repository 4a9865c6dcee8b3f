// Command skinview renders skin portraits without a server: each locator
// on the command line is printed as a data URL or written to -o, and
// -watch renders every texture that appears in a directory.
package main

import (
	"context"
	"encoding/base64"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/lukegb/skinviewer/skinviewer"
	"github.com/lukegb/skinviewer/texture"
)

var textureExts = map[string]bool{
	".png": true, ".bmp": true, ".gif": true, ".jpg": true, ".jpeg": true, ".tga": true, ".webp": true,
}

type options struct {
	body     skinviewer.BodyType
	enc      skinviewer.Encoding
	scale    int
	out      string
	watchDir string
	timeout  time.Duration
}

func main() {
	var opts options
	var bodyTag, format string
	flag.StringVar(&bodyTag, "type", "classic", "body type: classic or slim")
	flag.StringVar(&format, "format", "png", "output encoding: png or webp")
	flag.IntVar(&opts.scale, "scale", 1, "integer upscale factor")
	flag.StringVar(&opts.out, "o", "", "output file, or directory when rendering several textures or watching")
	flag.StringVar(&opts.watchDir, "watch", "", "render every texture created in this directory")
	flag.DurationVar(&opts.timeout, "timeout", 30*time.Second, "give up waiting for a texture after this long")
	flag.Parse()

	var err error
	opts.body = skinviewer.ParseBodyType(bodyTag)
	if opts.enc, err = skinviewer.ParseEncoding(format); err != nil {
		log.Fatal(err)
	}

	f := &texture.Fetcher{}
	defer f.Close()
	c := skinviewer.Compositor{Loader: f, Encoding: opts.enc, Scale: opts.scale}

	if opts.watchDir != "" {
		if opts.out == "" {
			log.Fatalln("-watch needs -o <output directory>")
		}
		if err := watch(c, opts); err != nil {
			log.Fatal(err)
		}
		return
	}

	if flag.NArg() == 0 {
		log.Fatalln(os.Args[0], "[-type slim] [-format png|webp] [-scale n] [-o out] <texture>...")
	}

	failed := false
	for _, locator := range flag.Args() {
		out := opts.out
		if out != "" && flag.NArg() > 1 {
			out = outputPath(opts.out, locator, opts.enc)
		}
		if err := renderOne(c, locator, out, opts); err != nil {
			log.Println(locator+":", err)
			failed = true
		}
	}
	if failed {
		os.Exit(1)
	}
}

func outputPath(dir, locator string, enc skinviewer.Encoding) string {
	name := strings.TrimSuffix(filepath.Base(locator), filepath.Ext(locator))
	ext := ".png"
	if enc == skinviewer.WebP {
		ext = ".webp"
	}
	return filepath.Join(dir, name+ext)
}

func renderOne(c skinviewer.Compositor, locator, out string, opts options) error {
	ctx, cancel := context.WithTimeout(context.Background(), opts.timeout)
	defer cancel()

	dataURL, err := c.Compose(locator, opts.body).Wait(ctx)
	if err != nil {
		return err
	}

	if out == "" {
		fmt.Println(dataURL)
		return nil
	}

	_, payload, _ := strings.Cut(dataURL, ",")
	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return err
	}
	return os.WriteFile(out, raw, 0o644)
}

func watch(c skinviewer.Compositor, opts options) error {
	if err := os.MkdirAll(opts.out, 0o755); err != nil {
		return err
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer w.Close()

	if err := w.Add(opts.watchDir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", opts.watchDir, err)
	}
	log.Println("Watching", opts.watchDir, "for textures")

	for {
		select {
		case event, ok := <-w.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
				continue
			}
			if !textureExts[strings.ToLower(filepath.Ext(event.Name))] {
				continue
			}
			out := outputPath(opts.out, event.Name, opts.enc)
			if err := renderOne(c, event.Name, out, opts); err != nil {
				log.Println(event.Name+":", err)
				continue
			}
			log.Println("Rendered", event.Name, "to", out)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			log.Println("watch error:", err)
		}
	}
}
