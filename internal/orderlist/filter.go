package orderlist

import "strings"

// Facet is one independent filter dimension of the order list.
type Facet string

const (
	FacetStatus      Facet = "status"
	FacetFulfillment Facet = "fulfillment"
	FacetPayment     Facet = "payment"
)

// Facets in the order their fragments appear in the filter string.
var Facets = []Facet{FacetStatus, FacetFulfillment, FacetPayment}

// Key is the query parameter the backend expects for the facet.
func (f Facet) Key() string {
	switch f {
	case FacetStatus:
		return "status"
	case FacetFulfillment:
		return "fulfillment_status"
	case FacetPayment:
		return "payment_status"
	default:
		return string(f)
	}
}

// FilterState is the dropdown state of a single facet.
// Filter is empty when the facet is inactive.
type FilterState struct {
	Open   bool
	Filter string
}

func (s FilterState) Active() bool { return s.Filter != "" }

type Filters struct {
	Status      FilterState
	Fulfillment FilterState
	Payment     FilterState
}

func (f Filters) Get(facet Facet) FilterState {
	switch facet {
	case FacetStatus:
		return f.Status
	case FacetFulfillment:
		return f.Fulfillment
	case FacetPayment:
		return f.Payment
	default:
		return FilterState{}
	}
}

func (f *Filters) set(facet Facet, s FilterState) {
	switch facet {
	case FacetStatus:
		f.Status = s
	case FacetFulfillment:
		f.Fulfillment = s
	case FacetPayment:
		f.Payment = s
	}
}

// QueryString builds the combined filter string, e.g.
// "&status=pending&payment_status=captured". Values are passed through
// unvalidated and unescaped; inactive facets emit nothing.
func (f Filters) QueryString() string {
	var b strings.Builder
	for _, facet := range Facets {
		s := f.Get(facet)
		if !s.Active() {
			continue
		}
		b.WriteString("&")
		b.WriteString(facet.Key())
		b.WriteString("=")
		b.WriteString(s.Filter)
	}
	return b.String()
}

// FiltersFromValues reads facet values from a lookup such as url.Values.Get.
func FiltersFromValues(get func(key string) string) Filters {
	var f Filters
	for _, facet := range Facets {
		f.set(facet, FilterState{Filter: strings.TrimSpace(get(facet.Key()))})
	}
	return f
}
