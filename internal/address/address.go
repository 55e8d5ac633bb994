package address

// Address is a saved entry in a user's address book. Orders never reference
// these rows directly; checkout copies the chosen destination into an
// immutable per-order snapshot.
type Address struct {
	ID           int    `json:"addressId"`
	UserID       int    `json:"userId"`
	Recipient    string `json:"recipient"`
	Phone        string `json:"phone"`
	Street       string `json:"street"`
	ProvinceCode string `json:"provinceCode,omitempty"`
	ProvinceName string `json:"provinceName,omitempty"`
	RegencyCode  string `json:"regencyCode,omitempty"`
	RegencyName  string `json:"regencyName,omitempty"`
	DistrictCode string `json:"districtCode,omitempty"`
	DistrictName string `json:"districtName,omitempty"`
	PostalCode   string `json:"postalCode,omitempty"`
	CreatedAt    string `json:"createdAt,omitempty"`
	UpdatedAt    string `json:"updatedAt,omitempty"`
}
