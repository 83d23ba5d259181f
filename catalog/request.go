package catalog

import "strings"

// Request is the closed set of operation parameter bundles. Exactly three
// types implement it: GetBrowseNodesRequest, GetItemsRequest, and
// GetVariationsRequest.
type Request interface {
	// Operation identifies the remote operation this request targets.
	Operation() Operation

	// build validates and normalizes the parameters into the
	// operation-specific payload fields.
	build() (payload, error)

	// resources returns the request-level Resources override, or nil when
	// the request does not supply one.
	resources() []string
}

// GetBrowseNodesRequest holds the parameters for a browse node lookup.
type GetBrowseNodesRequest struct {
	// BrowseNodeIDs lists the browse nodes to look up. Required.
	BrowseNodeIDs []string

	// LanguagesOfPreference selects the response languages.
	LanguagesOfPreference []string

	// Resources overrides the client's default resource list when
	// non-nil. See the package documentation for the replacement
	// semantics.
	Resources []string
}

// Operation returns OperationGetBrowseNodes.
func (r GetBrowseNodesRequest) Operation() Operation { return OperationGetBrowseNodes }

func (r GetBrowseNodesRequest) build() (payload, error) {
	ids := normalizeIDs(r.BrowseNodeIDs)
	if len(ids) == 0 {
		return payload{}, ErrNoBrowseNodeIDs
	}

	return payload{
		BrowseNodeIDs:         ids,
		LanguagesOfPreference: r.LanguagesOfPreference,
	}, nil
}

func (r GetBrowseNodesRequest) resources() []string { return r.Resources }

// GetItemsRequest holds the parameters for an item lookup.
type GetItemsRequest struct {
	// ItemIDs lists the items to look up. Required.
	ItemIDs []string

	// Condition filters offers by item condition, such as "New".
	Condition string

	// CurrencyOfPreference selects the response currency.
	CurrencyOfPreference string

	// LanguagesOfPreference selects the response languages.
	LanguagesOfPreference []string

	// OfferCount limits the number of offers returned per item.
	OfferCount int

	// Resources overrides the client's default resource list when
	// non-nil.
	Resources []string
}

// Operation returns OperationGetItems.
func (r GetItemsRequest) Operation() Operation { return OperationGetItems }

func (r GetItemsRequest) build() (payload, error) {
	ids := normalizeIDs(r.ItemIDs)
	if len(ids) == 0 {
		return payload{}, ErrNoItemIDs
	}

	return payload{
		ItemIDs:               ids,
		Condition:             r.Condition,
		CurrencyOfPreference:  r.CurrencyOfPreference,
		LanguagesOfPreference: r.LanguagesOfPreference,
		OfferCount:            r.OfferCount,
	}, nil
}

func (r GetItemsRequest) resources() []string { return r.Resources }

// GetVariationsRequest holds the parameters for a variation lookup.
type GetVariationsRequest struct {
	// ASIN is the parent item whose variations are looked up. Required.
	ASIN string

	// Condition filters offers by item condition, such as "New".
	Condition string

	// CurrencyOfPreference selects the response currency.
	CurrencyOfPreference string

	// LanguagesOfPreference selects the response languages.
	LanguagesOfPreference []string

	// OfferCount limits the number of offers returned per variation.
	OfferCount int

	// VariationCount limits the number of variations returned per page.
	VariationCount int

	// VariationPage selects the page of variations to return.
	VariationPage int

	// Resources overrides the client's default resource list when
	// non-nil.
	Resources []string
}

// Operation returns OperationGetVariations.
func (r GetVariationsRequest) Operation() Operation { return OperationGetVariations }

func (r GetVariationsRequest) build() (payload, error) {
	asin := strings.TrimSpace(r.ASIN)
	if asin == "" {
		return payload{}, ErrNoASIN
	}

	return payload{
		ASIN:                  asin,
		Condition:             r.Condition,
		CurrencyOfPreference:  r.CurrencyOfPreference,
		LanguagesOfPreference: r.LanguagesOfPreference,
		OfferCount:            r.OfferCount,
		VariationCount:        r.VariationCount,
		VariationPage:         r.VariationPage,
	}, nil
}

func (r GetVariationsRequest) resources() []string { return r.Resources }
