package catalog

import "strings"

// payload is the canonical request body. Struct field order is the JSON
// serialization order; optional fields carry omitempty so that an unset
// field is absent from the wire payload entirely rather than null — the
// remote service distinguishes the two.
type payload struct {
	ASIN                  string   `json:"ASIN,omitempty"`
	BrowseNodeIDs         []string `json:"BrowseNodeIds,omitempty"`
	ItemIDs               []string `json:"ItemIds,omitempty"`
	Condition             string   `json:"Condition,omitempty"`
	CurrencyOfPreference  string   `json:"CurrencyOfPreference,omitempty"`
	LanguagesOfPreference []string `json:"LanguagesOfPreference,omitempty"`
	OfferCount            int      `json:"OfferCount,omitempty"`
	VariationCount        int      `json:"VariationCount,omitempty"`
	VariationPage         int      `json:"VariationPage,omitempty"`
	PartnerTag            string   `json:"PartnerTag"`
	PartnerType           string   `json:"PartnerType"`
	Marketplace           string   `json:"Marketplace"`
	Resources             []string `json:"Resources,omitempty"`
}

// normalizeIDs trims whitespace from each id and drops empty entries,
// preserving order.
func normalizeIDs(ids []string) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id != "" {
			out = append(out, id)
		}
	}

	if len(out) == 0 {
		return nil
	}

	return out
}
