package certificate

import "errors"

var (
	// ErrInvalidCertificate is returned when a certificate is missing a required field
	ErrInvalidCertificate = errors.New("invalid certificate")
)
