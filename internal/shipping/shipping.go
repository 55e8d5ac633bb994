package shipping

// Region is the reshaped {code, name} view of a province, regency or
// district returned by the external lookup provider.
type Region struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// QuoteOption is a single priced delivery service.
type QuoteOption struct {
	Service     string  `json:"service"`
	Description string  `json:"description,omitempty"`
	Cost        float64 `json:"cost"`
	ETD         string  `json:"etd,omitempty"`
}

// CourierQuotes groups a courier's services, the shape the storefront
// renders as a picker.
type CourierQuotes struct {
	CourierCode string        `json:"courierCode"`
	CourierName string        `json:"courierName"`
	Services    []QuoteOption `json:"services"`
}

// QuoteRequest asks the provider to price a shipment between two districts.
type QuoteRequest struct {
	OriginDistrictCode      string `json:"origin_district_code"`
	DestinationDistrictCode string `json:"destination_district_code"`
	TotalWeight             int    `json:"total_weight"`
	Courier                 string `json:"courier,omitempty"`
}
