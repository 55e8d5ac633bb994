package shipping

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Client talks to the external region/rate provider. Every request carries
// the account API key in the `key` header.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		http:    &http.Client{Timeout: timeout},
	}
}

// provider wire shapes
type regionEnvelope struct {
	Data []struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	} `json:"data"`
}

type quoteEnvelope struct {
	Data []struct {
		Code        string  `json:"code"`
		Name        string  `json:"name"`
		Service     string  `json:"service"`
		Description string  `json:"description"`
		Cost        float64 `json:"cost"`
		ETD         string  `json:"etd"`
	} `json:"data"`
}

func (c *Client) Provinces(ctx context.Context) ([]Region, error) {
	return c.regions(ctx, "/destination/province")
}

func (c *Client) Regencies(ctx context.Context, provinceCode string) ([]Region, error) {
	return c.regions(ctx, "/destination/city/"+url.PathEscape(provinceCode))
}

func (c *Client) Districts(ctx context.Context, regencyCode string) ([]Region, error) {
	return c.regions(ctx, "/destination/district/"+url.PathEscape(regencyCode))
}

func (c *Client) regions(ctx context.Context, path string) ([]Region, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("key", c.apiKey)

	res, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("region lookup failed: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("region lookup failed: status %d", res.StatusCode)
	}

	var envelope regionEnvelope
	if err := json.NewDecoder(res.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("region lookup failed: %w", err)
	}

	out := make([]Region, 0, len(envelope.Data))
	for _, d := range envelope.Data {
		out = append(out, Region{Code: strconv.Itoa(d.ID), Name: d.Name})
	}
	return out, nil
}

// Cost prices a shipment and groups the returned services by courier.
func (c *Client) Cost(ctx context.Context, q QuoteRequest) ([]CourierQuotes, error) {
	form := url.Values{}
	form.Set("origin", q.OriginDistrictCode)
	form.Set("destination", q.DestinationDistrictCode)
	form.Set("weight", strconv.Itoa(q.TotalWeight))
	if q.Courier != "" {
		form.Set("courier", q.Courier)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/calculate/district/domestic-cost", strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("key", c.apiKey)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	res, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("shipping quote failed: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("shipping quote failed: status %d", res.StatusCode)
	}

	var envelope quoteEnvelope
	if err := json.NewDecoder(res.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("shipping quote failed: %w", err)
	}

	grouped := make([]CourierQuotes, 0)
	index := make(map[string]int)
	for _, d := range envelope.Data {
		i, ok := index[d.Code]
		if !ok {
			i = len(grouped)
			index[d.Code] = i
			grouped = append(grouped, CourierQuotes{CourierCode: d.Code, CourierName: d.Name})
		}
		grouped[i].Services = append(grouped[i].Services, QuoteOption{
			Service:     d.Service,
			Description: d.Description,
			Cost:        d.Cost,
			ETD:         d.ETD,
		})
	}
	return grouped, nil
}
