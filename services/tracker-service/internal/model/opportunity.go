package model

// Opportunity is an externally ingested record passed through verbatim.
type Opportunity map[string]any

type HackathonCategory string

const (
	HackathonCategoryOpen     HackathonCategory = "open"
	HackathonCategoryClosed   HackathonCategory = "closed"
	HackathonCategoryUpcoming HackathonCategory = "upcoming"
)

// HackathonCategories lists the hackathon sources in response order.
var HackathonCategories = []HackathonCategory{
	HackathonCategoryOpen,
	HackathonCategoryClosed,
	HackathonCategoryUpcoming,
}

// WithCategory returns a shallow copy of o tagged with category.
func (o Opportunity) WithCategory(category HackathonCategory) Opportunity {
	out := make(Opportunity, len(o)+1)
	for k, v := range o {
		out[k] = v
	}
	out["category"] = string(category)

	return out
}
