package service

import "errors"

var (
	// ErrOutOfStock signals a cart or booking request exceeding the live
	// count of available units for a model.
	ErrOutOfStock = errors.New("not enough available units")

	// ErrValidation wraps malformed input caught before the data layer.
	ErrValidation = errors.New("invalid input")

	// ErrInvalidCredentials is returned on a failed admin login.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrInvalidOTP is returned when a checkout confirmation code is
	// wrong, expired or already used.
	ErrInvalidOTP = errors.New("invalid or expired confirmation code")
)
