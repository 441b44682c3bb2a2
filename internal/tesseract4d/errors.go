package tesseract4d

import "errors"

var (
	ErrInvalidParam  = errors.New("invalid parameter")
	ErrUnknownParam  = errors.New("unknown parameter")
	ErrNonFinite     = errors.New("projection produced non-finite coordinates")
	ErrUnknownObject = errors.New("object is not a tesseract")
)
