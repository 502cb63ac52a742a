package services

import "errors"

// Standard errors returned by the service layer.
var (
	// ErrMalformedBody means the multipart stream could not be decoded.
	ErrMalformedBody = errors.New("malformed multipart body")
	// ErrFieldRead means a part's payload could not be fully read.
	ErrFieldRead = errors.New("failed to read field payload")
	// ErrNoFiles means the request carried no part with a filename.
	ErrNoFiles = errors.New("no file fields in request")
)
