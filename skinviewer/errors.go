package skinviewer

import (
	"errors"
	"fmt"
)

var (
	ERR_INVALID_SKIN_FORMAT = errors.New(`Invalid skin format.`)
	ERR_NO_TEXTURE          = errors.New(`loader returned no texture`)
)

// FormatError is returned when a texture's dimensions match none of the
// known skin formats. It is permanent: retrying with the same texture
// will fail the same way.
type FormatError struct {
	Width, Height int
}

func (e *FormatError) Error() string {
	return ERR_INVALID_SKIN_FORMAT.Error()
}

func (e *FormatError) Is(target error) bool {
	return target == ERR_INVALID_SKIN_FORMAT
}

// Detail describes the rejected texture for logs; the user facing message
// is always the one from Error.
func (e *FormatError) Detail() string {
	return fmt.Sprintf("texture is %dx%d, want 64x32, 64x64 or 128x128", e.Width, e.Height)
}

// LoadError carries a failure to fetch or decode a texture. Its message is
// the underlying error's, unchanged.
type LoadError struct {
	Locator string
	Err     error
}

func (e *LoadError) Error() string {
	return e.Err.Error()
}

func (e *LoadError) Unwrap() error {
	return e.Err
}
