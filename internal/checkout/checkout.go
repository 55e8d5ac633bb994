package checkout

import "github.com/prasetyadw/storefront-backend/internal/order"

// CartItemInput is one (product, quantity) line submitted for checkout.
type CartItemInput struct {
	ProductID int `json:"product_id"`
	Quantity  int `json:"quantity"`
}

// ShippingAddressInput is the destination the buyer typed or picked; it is
// snapshotted verbatim onto the order.
type ShippingAddressInput struct {
	Recipient    string `json:"recipient"`
	Phone        string `json:"phone"`
	Street       string `json:"street"`
	ProvinceCode string `json:"provinceCode"`
	ProvinceName string `json:"provinceName"`
	RegencyCode  string `json:"regencyCode"`
	RegencyName  string `json:"regencyName"`
	DistrictCode string `json:"districtCode"`
	DistrictName string `json:"districtName"`
	PostalCode   string `json:"postalCode"`
}

// ShippingMethodInput is the quote the buyer selected from the rate picker.
type ShippingMethodInput struct {
	CourierCode             string  `json:"courierCode"`
	Service                 string  `json:"service"`
	Cost                    float64 `json:"cost"`
	ETD                     string  `json:"etd"`
	TotalWeight             int     `json:"total_weight"`
	OriginDistrictCode      string  `json:"origin_district_code"`
	DestinationDistrictCode string  `json:"destination_district_code"`
}

type Request struct {
	CartItems              []CartItemInput      `json:"cartItems"`
	ShippingAddress        ShippingAddressInput `json:"shippingAddress"`
	SelectedShippingMethod ShippingMethodInput  `json:"selectedShippingMethod"`
}

type Response struct {
	OrderID             int     `json:"orderId"`
	OrderNumber         string  `json:"orderNumber"`
	TotalAmount         float64 `json:"totalAmount"`
	ShippingCost        float64 `json:"shippingCost"`
	PaymentSessionToken string  `json:"paymentSessionToken"`
	PaymentRedirectURL  string  `json:"paymentRedirectUrl"`
}

func (a ShippingAddressInput) toSnapshot(userID int) order.Address {
	return order.Address{
		UserID:       userID,
		Recipient:    a.Recipient,
		Phone:        a.Phone,
		Street:       a.Street,
		ProvinceCode: a.ProvinceCode,
		ProvinceName: a.ProvinceName,
		RegencyCode:  a.RegencyCode,
		RegencyName:  a.RegencyName,
		DistrictCode: a.DistrictCode,
		DistrictName: a.DistrictName,
		PostalCode:   a.PostalCode,
	}
}
