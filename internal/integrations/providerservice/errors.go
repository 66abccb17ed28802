package providerservice

import "errors"

var (
	// ErrProviderNotFound is returned when the provider does not exist
	ErrProviderNotFound = errors.New("providerservice: provider not found")

	// ErrInvalidResponse is returned when ProviderService answers with an
	// unexpected status or body
	ErrInvalidResponse = errors.New("providerservice: invalid response")

	// ErrInternal is returned on request construction or transport failures
	ErrInternal = errors.New("providerservice: internal error")
)
