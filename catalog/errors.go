package catalog

import "errors"

var (
	// ErrInvalidOperation is returned when a call targets an operation
	// outside the supported set.
	ErrInvalidOperation = errors.New("catalog: unsupported operation")

	// ErrNoPartnerTag is returned by NewClient when the partner tag is
	// empty.
	ErrNoPartnerTag = errors.New("catalog: partner tag must not be empty")

	// ErrNoBrowseNodeIDs is returned when a browse node lookup has no
	// browse node ids after normalization.
	ErrNoBrowseNodeIDs = errors.New("catalog: at least one browse node id is required")

	// ErrNoItemIDs is returned when an item lookup has no item ids after
	// normalization.
	ErrNoItemIDs = errors.New("catalog: at least one item id is required")

	// ErrNoASIN is returned when a variation lookup has an empty ASIN.
	ErrNoASIN = errors.New("catalog: asin must not be empty")
)
