package minecraft

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

const (
	SESSION_SERVER  = "https://sessionserver.mojang.com"
	PROFILE_URL_FMT = "%s/session/minecraft/profile/%s"
)

type ProfileClient struct {
	c      *http.Client
	server string
}

func (pc ProfileClient) GetProfile(ctx context.Context, uuid string) (Profile, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf(PROFILE_URL_FMT, pc.server, uuid), nil)
	if err != nil {
		return Profile{}, err
	}

	resp, err := pc.c.Do(req)
	if err != nil {
		return Profile{}, err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNoContent || resp.StatusCode == http.StatusNotFound:
		return Profile{}, ERR_NO_SUCH_PROFILE
	case resp.StatusCode != http.StatusOK:
		return Profile{}, fmt.Errorf("minecraft: GET profile %s: %s", uuid, resp.Status)
	}

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return Profile{}, err
	}

	var profile Profile
	if err = json.Unmarshal(respBytes, &profile); err != nil {
		return Profile{}, err
	}

	return profile, nil
}

func NewProfileClient(c *http.Client, server string) ProfileClient {
	if c == nil {
		c = http.DefaultClient
	}
	if server == "" {
		server = SESSION_SERVER
	}
	return ProfileClient{
		c:      c,
		server: strings.TrimSuffix(server, "/"),
	}
}
