package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"vacationplanner/catalog"
	"vacationplanner/models"
)

// ─── Types ────────────────────────────────────────────────────────────────────

type FlightOffer struct {
	Price       float64 `json:"price"`
	Airline     string  `json:"airline"`
	AirlineCode string  `json:"airline_code,omitempty"`
	Currency    string  `json:"currency,omitempty"`
}

type HotelOffer struct {
	Name     string  `json:"name"`
	Total    float64 `json:"total"`
	Rating   float64 `json:"rating"`
	Location string  `json:"location"`
}

// ─── Amadeus Client ───────────────────────────────────────────────────────────

// AmadeusClient talks to the Amadeus self-service APIs with a cached OAuth2
// client-credentials token.
type AmadeusClient struct {
	clientID     string
	clientSecret string
	baseURL      string
	accessToken  string
	tokenExpiry  time.Time
	mu           sync.Mutex
	httpClient   *http.Client
	log          *zap.Logger
}

func NewAmadeusClient(clientID, clientSecret, baseURL string, log *zap.Logger) *AmadeusClient {
	if log == nil {
		log = zap.NewNop()
	}
	return &AmadeusClient{
		clientID:     clientID,
		clientSecret: clientSecret,
		baseURL:      strings.TrimRight(baseURL, "/"),
		httpClient:   &http.Client{Timeout: 30 * time.Second},
		log:          log,
	}
}

func (c *AmadeusClient) Name() string { return "amadeus" }

func (c *AmadeusClient) Configured() bool {
	return c != nil && c.clientID != "" && c.clientSecret != ""
}

// Warmup fetches a token up front so the first plan doesn't pay for it.
func (c *AmadeusClient) Warmup(ctx context.Context) {
	if !c.Configured() {
		c.log.Warn("amadeus credentials not set, flight and hotel prices will be estimated")
		return
	}
	if err := c.refreshToken(ctx); err != nil {
		c.log.Warn("amadeus token pre-warm failed", zap.Error(err))
		return
	}
	c.log.Info("amadeus API authenticated")
}

// ─── OAuth2 Token ─────────────────────────────────────────────────────────────

func (c *AmadeusClient) refreshToken(ctx context.Context) error {
	form := url.Values{}
	form.Set("grant_type", "client_credentials")
	form.Set("client_id", c.clientID)
	form.Set("client_secret", c.clientSecret)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/v1/security/oauth2/token",
		strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("token request failed (%d): %s", resp.StatusCode, string(body))
	}

	var result struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   int    `json:"expires_in"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return fmt.Errorf("failed to parse token response: %w", err)
	}

	c.mu.Lock()
	c.accessToken = result.AccessToken
	c.tokenExpiry = time.Now().Add(time.Duration(result.ExpiresIn-30) * time.Second)
	c.mu.Unlock()
	return nil
}

func (c *AmadeusClient) getToken(ctx context.Context) (string, error) {
	c.mu.Lock()
	expired := time.Now().After(c.tokenExpiry)
	token := c.accessToken
	c.mu.Unlock()

	if expired || token == "" {
		if err := c.refreshToken(ctx); err != nil {
			return "", err
		}
		c.mu.Lock()
		token = c.accessToken
		c.mu.Unlock()
	}
	return token, nil
}

func (c *AmadeusClient) get(ctx context.Context, path string) ([]byte, error) {
	token, err := c.getToken(ctx)
	if err != nil {
		return nil, fmt.Errorf("auth failed: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("amadeus error (%d): %s", resp.StatusCode, string(body))
	}
	return body, nil
}

// ─── Flight Search ────────────────────────────────────────────────────────────

// SearchFlights queries Flight Offers Search for a round trip.
func (c *AmadeusClient) SearchFlights(ctx context.Context, origin, destination string, departure, ret time.Time, adults int) ([]FlightOffer, error) {
	if !c.Configured() {
		return nil, fmt.Errorf("amadeus not configured")
	}
	path := fmt.Sprintf(
		"/v2/shopping/flight-offers?originLocationCode=%s&destinationLocationCode=%s"+
			"&departureDate=%s&returnDate=%s&adults=%d&max=5&currencyCode=USD",
		url.QueryEscape(origin),
		url.QueryEscape(destination),
		departure.Format(models.DateLayout),
		ret.Format(models.DateLayout),
		max(adults, 1),
	)

	body, err := c.get(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("flight search failed: %w", err)
	}
	return parseFlightOffers(body)
}

type amadeusSegment struct {
	CarrierCode string `json:"carrierCode"`
}

type amadeusFlightOffersResponse struct {
	Data []struct {
		Price struct {
			GrandTotal string `json:"grandTotal"`
			Currency   string `json:"currency"`
		} `json:"price"`
		Itineraries []struct {
			Segments []amadeusSegment `json:"segments"`
		} `json:"itineraries"`
		ValidatingAirlineCodes []string `json:"validatingAirlineCodes"`
	} `json:"data"`
}

func parseFlightOffers(data []byte) ([]FlightOffer, error) {
	var resp amadeusFlightOffersResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse flight offers: %w", err)
	}

	offers := make([]FlightOffer, 0, len(resp.Data))
	for _, offer := range resp.Data {
		if len(offer.Itineraries) == 0 {
			continue
		}
		price := parsePrice(offer.Price.GrandTotal)
		if price <= 0 {
			continue
		}

		outbound := offer.Itineraries[0]
		code := ""
		if len(outbound.Segments) > 0 {
			code = outbound.Segments[0].CarrierCode
		} else if len(offer.ValidatingAirlineCodes) > 0 {
			code = offer.ValidatingAirlineCodes[0]
		}

		offers = append(offers, FlightOffer{
			Price:       price,
			Airline:     catalog.AirlineName(code),
			AirlineCode: code,
			Currency:    offer.Price.Currency,
		})
	}
	return offers, nil
}

// QuoteFlight takes the first offer that fits the budget.
func (c *AmadeusClient) QuoteFlight(ctx context.Context, q FlightQuery) (*FlightQuote, error) {
	origin, ok1 := catalog.AirportCode(q.Origin)
	dest, ok2 := catalog.AirportCode(q.Destination)
	if !ok1 || !ok2 {
		return nil, nil
	}
	offers, err := c.SearchFlights(ctx, origin, dest, q.Departure, q.Return, 1)
	if err != nil {
		return nil, err
	}
	for _, o := range offers {
		if o.Price <= q.MaxBudget {
			return &FlightQuote{Airline: o.Airline, Price: o.Price, Currency: o.Currency, Provider: o.Airline}, nil
		}
	}
	return nil, nil
}

// ─── Hotel Search ─────────────────────────────────────────────────────────────

// SearchHotels resolves hotels in the city and then asks for their offers.
func (c *AmadeusClient) SearchHotels(ctx context.Context, airport string, checkIn, checkOut time.Time, adults int) ([]HotelOffer, error) {
	if !c.Configured() {
		return nil, fmt.Errorf("amadeus not configured")
	}

	hotelIDs, err := c.hotelIDsByCity(ctx, catalog.AirportToCity(airport))
	if err != nil {
		return nil, fmt.Errorf("hotel list failed: %w", err)
	}
	if len(hotelIDs) == 0 {
		return nil, nil
	}
	// keep the offers request under the API's id limit
	if len(hotelIDs) > 20 {
		hotelIDs = hotelIDs[:20]
	}
	return c.hotelOffers(ctx, hotelIDs, checkIn, checkOut, adults)
}

type amadeusHotelListResponse struct {
	Data []struct {
		HotelID string `json:"hotelId"`
		Name    string `json:"name"`
	} `json:"data"`
}

func (c *AmadeusClient) hotelIDsByCity(ctx context.Context, cityCode string) ([]string, error) {
	path := fmt.Sprintf("/v1/reference-data/locations/hotels/by-city?cityCode=%s&radius=5&radiusUnit=KM&hotelSource=ALL",
		url.QueryEscape(cityCode))

	body, err := c.get(ctx, path)
	if err != nil {
		return nil, err
	}

	var resp amadeusHotelListResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse hotel list: %w", err)
	}
	ids := make([]string, 0, len(resp.Data))
	for _, h := range resp.Data {
		ids = append(ids, h.HotelID)
	}
	return ids, nil
}

type amadeusHotelOffersResponse struct {
	Data []struct {
		Hotel struct {
			Name     string `json:"name"`
			CityCode string `json:"cityCode"`
			Address  struct {
				Lines    []string `json:"lines"`
				CityName string   `json:"cityName"`
			} `json:"address"`
			Rating string `json:"rating"`
		} `json:"hotel"`
		Available bool `json:"available"`
		Offers    []struct {
			Price struct {
				Total string `json:"total"`
			} `json:"price"`
		} `json:"offers"`
	} `json:"data"`
}

func (c *AmadeusClient) hotelOffers(ctx context.Context, hotelIDs []string, checkIn, checkOut time.Time, adults int) ([]HotelOffer, error) {
	path := fmt.Sprintf("/v3/shopping/hotel-offers?hotelIds=%s&checkInDate=%s&checkOutDate=%s&adults=%d&roomQuantity=1&currency=USD&bestRateOnly=true",
		url.QueryEscape(strings.Join(hotelIDs, ",")),
		checkIn.Format(models.DateLayout),
		checkOut.Format(models.DateLayout),
		max(adults, 1),
	)

	body, err := c.get(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("hotel offers failed: %w", err)
	}

	var resp amadeusHotelOffersResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse hotel offers: %w", err)
	}

	hotels := make([]HotelOffer, 0, len(resp.Data))
	for _, item := range resp.Data {
		if !item.Available || len(item.Offers) == 0 {
			continue
		}
		total := parsePrice(item.Offers[0].Price.Total)
		if total <= 0 {
			continue
		}
		location := strings.Join(item.Hotel.Address.Lines, ", ")
		if location == "" {
			location = item.Hotel.Address.CityName
		}
		if location == "" {
			location = item.Hotel.CityCode
		}
		hotels = append(hotels, HotelOffer{
			Name:     item.Hotel.Name,
			Total:    total,
			Rating:   parseRating(item.Hotel.Rating),
			Location: location,
		})
	}
	return hotels, nil
}

// QuoteHotel takes the first available offer whose nightly rate fits.
func (c *AmadeusClient) QuoteHotel(ctx context.Context, q HotelQuery) (*HotelQuote, error) {
	airport, ok := catalog.AirportCode(q.Destination)
	if !ok {
		return nil, nil
	}
	offers, err := c.SearchHotels(ctx, airport, q.CheckIn, q.CheckOut, q.GroupSize)
	if err != nil {
		return nil, err
	}
	nights := float64(max(models.DaysBetween(q.CheckIn, q.CheckOut), 1))
	for _, h := range offers {
		nightly := h.Total / nights
		if nightly <= q.MaxPerNight {
			return &HotelQuote{
				Name:          h.Name,
				Category:      q.Category,
				Address:       h.Location,
				PricePerNight: nightly,
				Rating:        h.Rating,
				Provider:      "Amadeus",
			}, nil
		}
	}
	return nil, nil
}

// ─── Helpers ──────────────────────────────────────────────────────────────────

func parsePrice(s string) float64 {
	var price float64
	fmt.Sscanf(s, "%f", &price)
	return price
}

// parseRating reads Amadeus star ratings (1-5), defaulting to 4.
func parseRating(s string) float64 {
	var r float64
	fmt.Sscanf(s, "%f", &r)
	if r <= 0 {
		return 4.0
	}
	return min(r, 5)
}
