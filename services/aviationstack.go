package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"vacationplanner/catalog"
)

// AviationStackSource knows schedules but not fares: it names a real
// operating airline for the route and prices it with the heuristic.
type AviationStackSource struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	now        func() time.Time
}

func NewAviationStackSource(apiKey, baseURL string) *AviationStackSource {
	return &AviationStackSource{
		apiKey:     apiKey,
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
		now:        time.Now,
	}
}

func (s *AviationStackSource) Name() string { return "aviationstack" }

type aviationStackResponse struct {
	Data []struct {
		Airline struct {
			Name string `json:"name"`
			Iata string `json:"iata"`
		} `json:"airline"`
	} `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func (s *AviationStackSource) QuoteFlight(ctx context.Context, q FlightQuery) (*FlightQuote, error) {
	origin, ok1 := catalog.AirportCode(q.Origin)
	dest, ok2 := catalog.AirportCode(q.Destination)
	if !ok1 || !ok2 {
		return nil, nil
	}

	params := url.Values{}
	params.Set("access_key", s.apiKey)
	params.Set("dep_iata", origin)
	params.Set("arr_iata", dest)
	params.Set("limit", "5")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"/flights?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("aviationstack error (%d): %s", resp.StatusCode, string(body))
	}

	var parsed aviationStackResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse aviationstack response: %w", err)
	}
	if parsed.Error != nil {
		return nil, fmt.Errorf("aviationstack error %s: %s", parsed.Error.Code, parsed.Error.Message)
	}

	for _, f := range parsed.Data {
		name := f.Airline.Name
		if name == "" && f.Airline.Iata != "" {
			name = catalog.AirlineName(f.Airline.Iata)
		}
		if name == "" {
			continue
		}
		price := estimateFlightPrice(q.Destination, q.Departure, s.now())
		if price > q.MaxBudget {
			return nil, nil
		}
		return &FlightQuote{Airline: name, Price: price, Currency: "USD", Provider: name}, nil
	}
	return nil, nil
}
