package mojang

import (
	"context"
	"strings"
)

func GetProfileByUsername(ctx context.Context, repo ProfileRepository, username string) (Profile, error) {
	profiles, err := repo.GetProfilesByCriteria(ctx, ProfileCriteria{username})
	if err != nil {
		return Profile{}, err
	}

	// the API matches names case-insensitively and may hand back more than we asked for
	var matched []Profile
	for _, p := range profiles {
		if strings.EqualFold(p.Name, username) {
			matched = append(matched, p)
		}
	}

	if len(matched) == 0 {
		return Profile{}, ERR_NO_SUCH_USER
	} else if len(matched) > 1 {
		return Profile{}, ERR_TOO_MANY_RESULTS
	}
	return matched[0], nil
}
