package utils

import "errors"

var (
	ErrInvalidInput        = errors.New("invalid input")
	ErrMissingLocation     = errors.New("location is required before generating a journey")
	ErrLocationUnavailable = errors.New("location unavailable")
	ErrJourneyFailed       = errors.New("journey generation failed")
	ErrUploadFailed        = errors.New("upload failed")
	ErrNoImageFile         = errors.New("no image file provided")
	ErrUnsupportedImage    = errors.New("unsupported image type")
	ErrImageTooLarge       = errors.New("image exceeds the maximum allowed size")
)
