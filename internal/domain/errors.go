package domain

import "errors"

var (
	ErrAlreadyProcessed   = errors.New("key is already a derived variant")
	ErrNoExtension        = errors.New("unable to infer image type")
	ErrUnsupportedType    = errors.New("unsupported image type")
	ErrInvalidImage       = errors.New("invalid image dimensions")
	ErrDecodeImage        = errors.New("decoding image")
	ErrUnknownContentType = errors.New("unknown content type")
	ErrObjectNotFound     = errors.New("object not found")
	ErrInvalidObjectKey   = errors.New("invalid object key")
	ErrInvalidScaleTarget = errors.New("invalid scale target")
	ErrCatalogDisabled    = errors.New("variant catalog disabled")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrTokenInvalid       = errors.New("token invalid")
)
