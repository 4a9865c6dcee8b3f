package minecraft

import (
	"errors"
)

var (
	ERR_HAS_NO_SKIN     = errors.New(`profile has no textures property`)
	ERR_NO_SUCH_PROFILE = errors.New(`no such profile`)
	ERR_INVALID_UUID    = errors.New(`invalid uuid`)
)
