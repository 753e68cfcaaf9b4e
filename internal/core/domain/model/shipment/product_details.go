package shipment

import (
	"encoding/json"
	"errors"
	"sort"
	"strings"

	"pharmadmin/internal/core/domain/model/kernel"
	"pharmadmin/internal/pkg/errs"
)

// ProductDetail is one product line inside an in-transit order.
type ProductDetail struct {
	Name     string       `json:"name"`
	Quantity int          `json:"quantity"`
	Price    kernel.Money `json:"price"`
}

// ProductDetailsMap is keyed by product code.
type ProductDetailsMap map[string]ProductDetail

// ParseProductDetails decodes the product_details JSON object. Anything
// other than a JSON object, including an empty string and null, is reported
// as an errs.PayloadIsMalformedError.
func ParseProductDetails(raw string) (ProductDetailsMap, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, errs.NewPayloadIsMalformedErrorWithCause("product_details", errors.New("empty"))
	}

	var details ProductDetailsMap
	if err := json.Unmarshal([]byte(raw), &details); err != nil {
		return nil, errs.NewPayloadIsMalformedErrorWithCause("product_details", err)
	}
	if details == nil {
		return nil, errs.NewPayloadIsMalformedErrorWithCause("product_details", errors.New("not an object"))
	}
	return details, nil
}

// Codes returns the product codes in ascending order.
func (m ProductDetailsMap) Codes() []string {
	codes := make([]string, 0, len(m))
	for code := range m {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// Total sums price × quantity over all products.
func (m ProductDetailsMap) Total() kernel.Money {
	total := kernel.ZeroMoney
	for _, p := range m {
		total = total.Add(p.Price.Times(p.Quantity))
	}
	return total
}
