package mojang

import (
	"context"
)

type Profile struct {
	Id   string `json:"id"`
	Name string `json:"name"`
}

// ProfileCriteria is a batch of usernames to look up at once.
type ProfileCriteria []string

type ProfileRepository interface {
	GetProfilesByCriteria(ctx context.Context, pc ProfileCriteria) ([]Profile, error)
}
