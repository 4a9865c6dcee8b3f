package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/lukegb/skinviewer/minecraft"
	"github.com/lukegb/skinviewer/mojang"
	"github.com/lukegb/skinviewer/skinviewer"
	"github.com/lukegb/skinviewer/statkeeper"
	"github.com/lukegb/skinviewer/texture"
	"google.golang.org/appengine/v2"
)

type server struct {
	loader        skinviewer.TextureLoader
	profiles      mojang.ProfileRepository
	sessions      minecraft.ProfileClient
	renderTimeout time.Duration
	maxScale      int
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// logRenderError logs a failed render, with the texture's dimensions when
// it was rejected for its format.
func logRenderError(what, locator string, err error) {
	var fe *skinviewer.FormatError
	if errors.As(err, &fe) {
		log.Println(what, locator, err, fe.Detail())
		return
	}
	log.Println(what, locator, err)
}

// renderStatus maps a composition failure onto an HTTP status and counts it.
func renderStatus(err error) int {
	var fe *skinviewer.FormatError
	var le *skinviewer.LoadError
	switch {
	case errors.As(err, &fe):
		statkeeper.GLOBAL.RenderFormatReject()
		return http.StatusUnprocessableEntity
	case errors.As(err, &le):
		statkeeper.GLOBAL.RenderLoadFail()
		return http.StatusBadGateway
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	}
	return http.StatusInternalServerError
}

func (s *server) parseOptions(r *http.Request) (skinviewer.Encoding, int, error) {
	v := r.URL.Query()

	enc, err := skinviewer.ParseEncoding(v.Get("format"))
	if err != nil {
		return 0, 0, err
	}

	scale := 1
	if sv := v.Get("scale"); sv != "" {
		if scale, err = strconv.Atoi(sv); err != nil || scale < 1 || scale > s.maxScale {
			return 0, 0, fmt.Errorf("scale must be between 1 and %d", s.maxScale)
		}
	}
	return enc, scale, nil
}

func HomePage(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("<!DOCTYPE html><html><body><h1>Minecraft Skin Viewer</h1><p>GET /render?src=&lt;texture url&gt;&amp;type=slim or /render/&lt;username&gt;.png</p></body></html>"))
}

func (s *server) RenderPage(w http.ResponseWriter, r *http.Request) {
	v := r.URL.Query()
	src := v.Get("src")
	if src == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "required parameter src missing"})
		return
	}

	enc, scale, err := s.parseOptions(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	statkeeper.GLOBAL.RenderAttempt()
	c := skinviewer.Compositor{Loader: s.loader, Encoding: enc, Scale: scale}
	future := c.Compose(src, skinviewer.ParseBodyType(v.Get("type")))

	ctx, cancel := context.WithTimeout(r.Context(), s.renderTimeout)
	defer cancel()
	image, err := future.Wait(ctx)
	if err != nil {
		logRenderError("error while rendering", src, err)
		writeJSON(w, renderStatus(err), errorResponse{Error: err.Error()})
		return
	}
	statkeeper.GLOBAL.RenderComplete()

	writeJSON(w, http.StatusOK, struct {
		Image string `json:"image"`
	}{
		Image: image,
	})
}

func (s *server) UserRenderPage(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	username := vars["username"]

	enc, err := skinviewer.ParseEncoding(vars["ext"])
	if err != nil {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	_, scale, err := s.parseOptions(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), s.renderTimeout)
	defer cancel()

	// get their uuid from mojang
	user, err := mojang.GetProfileByUsername(ctx, s.profiles, username)
	if err != nil {
		if err == mojang.ERR_NO_SUCH_USER {
			http.Error(w, "no such user", http.StatusNotFound)
			return
		}
		statkeeper.GLOBAL.MojangRequestFail()
		log.Println("error while getting mojang profile", username, err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	statkeeper.GLOBAL.MojangRequestOK()

	// so we can get their skin data
	mcprofile, err := s.sessions.GetProfile(ctx, user.Id)
	if err != nil {
		statkeeper.GLOBAL.McRequestFail()
		log.Println("error while getting minecraft profile", username, user.Id, err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	statkeeper.GLOBAL.McRequestOK()

	skin, err := minecraft.GetSkin(mcprofile)
	if err != nil {
		log.Println("error while choosing skin", username, user.Id, err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	model := skin.Model
	if t := r.URL.Query().Get("type"); t != "" {
		model = t
	}

	statkeeper.GLOBAL.RenderAttempt()
	body, err := s.renderBytes(ctx, skin.Url, skinviewer.ParseBodyType(model), enc, scale)
	if err != nil {
		logRenderError("error while rendering skin "+username, skin.Url, err)
		http.Error(w, err.Error(), renderStatus(err))
		return
	}
	statkeeper.GLOBAL.RenderComplete()

	w.Header().Set("Content-Type", enc.MIMEType())
	w.Write(body)
}

func (s *server) renderBytes(ctx context.Context, locator string, body skinviewer.BodyType, enc skinviewer.Encoding, scale int) ([]byte, error) {
	tex, err := skinviewer.LoadTexture(ctx, s.loader, locator)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, err
	}

	im, err := skinviewer.Render(tex, body)
	if err != nil {
		return nil, err
	}
	if scale > 1 {
		im = skinviewer.Upscale(im, scale)
	}
	return skinviewer.Encode(im, enc)
}

func newRouter(s *server) *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/", HomePage)
	r.HandleFunc("/render", s.RenderPage).Methods(http.MethodGet)
	r.HandleFunc("/render/{username:[A-Za-z0-9_]{1,16}}.{ext:png|webp}", s.UserRenderPage).Methods(http.MethodGet)
	return r
}

func newServer(cfg Config) *server {
	guard := &guardedDialer{
		resolver:     cfg.Resolver,
		allowPrivate: cfg.AllowPrivate,
	}
	client := &http.Client{
		Timeout: cfg.FetchTimeout,
		Transport: &http.Transport{
			DialContext:         guard.DialContext,
			TLSHandshakeTimeout: cfg.FetchTimeout,
		},
	}

	return &server{
		loader: &texture.Fetcher{
			Client:    client,
			MaxBytes:  cfg.MaxTextureBytes,
			MaxPixels: cfg.MaxTexturePixels,
			Schemes:   map[string]bool{"data": true, "http": true, "https": true},
		},
		profiles:      mojang.NewHttpProfileRepository(http.DefaultClient, cfg.MojangServer),
		sessions:      minecraft.NewProfileClient(http.DefaultClient, cfg.SessionServer),
		renderTimeout: cfg.RenderTimeout,
		maxScale:      cfg.MaxScale,
	}
}

func main() {
	cfg, err := parseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	if cfg.StatHatKey != "" {
		statkeeper.GLOBAL = statkeeper.NewStatHatStatKeeper(cfg.StatHatKey)
		log.Println("Reporting stats to StatHat")
	}

	http.Handle("/", newRouter(newServer(cfg)))

	if appengine.IsAppEngine() {
		log.Println("Running on App Engine!")
		appengine.Main()
		return
	}

	log.Println("Going to listen at", cfg.Listen)
	log.Println("Running!")
	err = http.ListenAndServe(cfg.Listen, nil)
	if err != nil {
		log.Fatal("http.ListenAndServe: ", err)
	}
}
