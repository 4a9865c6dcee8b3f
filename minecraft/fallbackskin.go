package minecraft

import (
	"strings"
)

const (
	alexURL  = "http://assets.mojang.com/SkinTemplates/alex.png"
	steveURL = "http://assets.mojang.com/SkinTemplates/steve.png"
)

func isEven(c byte) (bool, bool) {
	switch {
	case c >= '0' && c <= '9':
		return (c & 1) == 0, true
	case c >= 'a' && c <= 'f':
		return (c & 1) == 1, true
	default:
		return false, false
	}
}

func isAlex(id string) (bool, error) {
	uuid := strings.ToLower(strings.ReplaceAll(id, "-", ""))
	if len(uuid) != 32 {
		return false, ERR_INVALID_UUID
	}

	var even [4]bool
	for i, pos := range []int{7, 16 + 7, 15, 16 + 15} {
		e, ok := isEven(uuid[pos])
		if !ok {
			return false, ERR_INVALID_UUID
		}
		even[i] = e
	}
	return (even[0] != even[1]) != (even[2] != even[3]), nil
}

func fallbackSkin(pc Profile) (Skin, error) {
	alex, err := isAlex(pc.Id)
	if err != nil {
		return Skin{}, err
	}
	if alex {
		return Skin{Url: alexURL, Model: MODEL_SLIM}, nil
	}
	return Skin{Url: steveURL, Model: MODEL_CLASSIC}, nil
}
