package search

import (
	"github.com/cockroachdb/errors"
)

var (
	// ErrUnknownCollectionType means no provider is registered for the collection
	ErrUnknownCollectionType = errors.New("unknown collection type")

	// ErrValidation means the query shape is malformed
	ErrValidation = errors.New("invalid search query")

	// ErrProviderExecution means the store failed while a provider ran a query
	ErrProviderExecution = errors.New("provider execution failed")
)

func unknownCollection(c CollectionType) error {
	return errors.Wrapf(ErrUnknownCollectionType, "no provider registered for collection type %q", string(c))
}

func invalidQuery(format string, args ...any) error {
	return errors.Wrapf(ErrValidation, format, args...)
}

func executionError(cause error, format string, args ...any) error {
	return errors.Mark(errors.Wrapf(cause, format, args...), ErrProviderExecution)
}
