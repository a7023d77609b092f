package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"vacationplanner/catalog"
	"vacationplanner/models"
)

// BookingComSource queries the Booking.com hotel search on RapidAPI.
type BookingComSource struct {
	apiKey     string
	host       string
	baseURL    string
	httpClient *http.Client
}

func NewBookingComSource(apiKey, host, baseURL string) *BookingComSource {
	return &BookingComSource{
		apiKey:     apiKey,
		host:       host,
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (s *BookingComSource) Name() string { return "booking.com" }

type bookingSearchResponse struct {
	Result []struct {
		HotelName      string  `json:"hotel_name"`
		Address        string  `json:"address"`
		ReviewScore    float64 `json:"review_score"`
		PriceBreakdown struct {
			GrossPrice float64 `json:"gross_price"`
		} `json:"price_breakdown"`
	} `json:"result"`
}

// QuoteHotel returns the first result whose nightly gross price fits.
func (s *BookingComSource) QuoteHotel(ctx context.Context, q HotelQuery) (*HotelQuote, error) {
	destID, ok := catalog.BookingDestID(q.Destination)
	if !ok {
		return nil, nil
	}

	params := url.Values{}
	params.Set("dest_id", destID)
	params.Set("dest_type", "city")
	params.Set("checkin_date", q.CheckIn.Format(models.DateLayout))
	params.Set("checkout_date", q.CheckOut.Format(models.DateLayout))
	params.Set("adults_number", strconv.Itoa(max(q.GroupSize, 1)))
	params.Set("room_number", "1")
	params.Set("units", "metric")
	params.Set("filter_by_currency", "USD")
	params.Set("locale", "en-us")
	params.Set("order_by", "popularity")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"/v1/hotels/search?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("X-RapidAPI-Key", s.apiKey)
	req.Header.Set("X-RapidAPI-Host", s.host)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("booking.com error (%d): %s", resp.StatusCode, string(body))
	}

	var parsed bookingSearchResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse booking.com response: %w", err)
	}

	for _, h := range parsed.Result {
		price := h.PriceBreakdown.GrossPrice
		if price <= 0 || price > q.MaxPerNight {
			continue
		}
		return &HotelQuote{
			Name:          h.HotelName,
			Category:      q.Category,
			Address:       h.Address,
			PricePerNight: price,
			// review_score is out of 10
			Rating:   h.ReviewScore / 2,
			Provider: "Booking.com - " + q.Destination,
		}, nil
	}
	return nil, nil
}
