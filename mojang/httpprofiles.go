package mojang

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
)

const (
	MAX_NAMES_PER_REQUEST = 10
	MOJANG_SERVER         = "https://api.mojang.com"
	PROFILE_URL_FMT       = "%s/profiles/minecraft"
	LOG_TAG               = "[HttpProfileRepository]"
)

type HttpProfileRepository struct {
	c      *http.Client
	server string
}

func (hpr HttpProfileRepository) GetProfilesByCriteria(ctx context.Context, pc ProfileCriteria) (profiles []Profile, err error) {
	log.Println(LOG_TAG, "fetching profiles by criteria:", pc)

	for start := 0; start < len(pc); start += MAX_NAMES_PER_REQUEST {
		end := start + MAX_NAMES_PER_REQUEST
		if end > len(pc) {
			end = len(pc)
		}

		var jsonCriteria []byte
		if jsonCriteria, err = json.Marshal(pc[start:end]); err != nil {
			return nil, err
		}

		if res, err := hpr.getProfilesByCriteriaPage(ctx, jsonCriteria); err != nil {
			return profiles, err
		} else {
			profiles = append(profiles, res...)
		}
	}

	return
}

func (hpr HttpProfileRepository) getProfilesByCriteriaPage(ctx context.Context, jsonCriteria []byte) ([]Profile, error) {
	targetUrl := fmt.Sprintf(PROFILE_URL_FMT, hpr.server)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, targetUrl, bytes.NewReader(jsonCriteria))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := hpr.c.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("mojang: POST %s: %s", targetUrl, resp.Status)
	}

	retBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var result []Profile
	if err = json.Unmarshal(retBytes, &result); err != nil {
		return nil, err
	}

	return result, nil
}

func NewHttpProfileRepository(c *http.Client, server string) HttpProfileRepository {
	if c == nil {
		c = http.DefaultClient
	}
	if server == "" {
		server = MOJANG_SERVER
	}
	return HttpProfileRepository{
		c:      c,
		server: strings.TrimSuffix(server, "/"),
	}
}
