package lib

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/YinkaFoster/fostertours/src/config"
	"github.com/YinkaFoster/fostertours/src/types"
	"github.com/tidwall/gjson"
)

const amadeusTokenKey = "amadeus:token"

var amadeusBaseURL = "https://test.api.amadeus.com"

// NewAmadeusBaseURL points the client at a different host, used by tests.
func NewAmadeusBaseURL(base string) {
	amadeusBaseURL = base
}

var amadeusHTTP = &http.Client{Timeout: 30 * time.Second}

// AmadeusToken returns a client-credentials token, cached in redis for the
// lifetime the API granted minus a safety margin.
func AmadeusToken() (string, error) {
	rdb := GetRedisClient()
	if rdb != nil {
		if cached, err := rdb.Get(context.Background(), amadeusTokenKey).Result(); err == nil && cached != "" {
			return cached, nil
		}
	}
	apiKey := config.AmadeusAPIKey()
	apiSecret := config.AmadeusAPISecret()
	if apiKey == "" || apiSecret == "" {
		return "", errors.New("amadeus credentials not configured")
	}
	form := url.Values{}
	form.Set("grant_type", "client_credentials")
	form.Set("client_id", apiKey)
	form.Set("client_secret", apiSecret)
	res, err := amadeusHTTP.Post(
		fmt.Sprintf("%s/v1/security/oauth2/token", amadeusBaseURL),
		"application/x-www-form-urlencoded",
		strings.NewReader(form.Encode()),
	)
	if err != nil {
		return "", err
	}
	defer res.Body.Close()
	body, err := io.ReadAll(res.Body)
	if err != nil {
		return "", err
	}
	if res.StatusCode != http.StatusOK {
		return "", fmt.Errorf("amadeus token request failed with status %d", res.StatusCode)
	}
	token := gjson.GetBytes(body, "access_token").String()
	if token == "" {
		return "", errors.New("amadeus token response missing access_token")
	}
	expiresIn := gjson.GetBytes(body, "expires_in").Int()
	if expiresIn <= 60 {
		expiresIn = 1740
	}
	if rdb != nil {
		ttl := time.Duration(expiresIn-60) * time.Second
		if err := rdb.Set(context.Background(), amadeusTokenKey, token, ttl).Err(); err != nil {
			log.Printf("[amadeus] Failed to cache token: %s\n", err.Error())
		}
	}
	return token, nil
}

func amadeusGet(path string, query url.Values) (gjson.Result, error) {
	token, err := AmadeusToken()
	if err != nil {
		return gjson.Result{}, err
	}
	req, err := http.NewRequest(http.MethodGet, fmt.Sprintf("%s%s?%s", amadeusBaseURL, path, query.Encode()), nil)
	if err != nil {
		return gjson.Result{}, err
	}
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", token))
	res, err := amadeusHTTP.Do(req)
	if err != nil {
		return gjson.Result{}, err
	}
	defer res.Body.Close()
	body, err := io.ReadAll(res.Body)
	if err != nil {
		return gjson.Result{}, err
	}
	if res.StatusCode != http.StatusOK {
		return gjson.Result{}, fmt.Errorf("amadeus %s failed with status %d", path, res.StatusCode)
	}
	return gjson.ParseBytes(body), nil
}

// formatDuration turns an ISO-8601 duration like PT8H30M into "8h 30m".
func formatDuration(iso string) string {
	s := strings.TrimPrefix(iso, "PT")
	s = strings.ToLower(s)
	s = strings.Replace(s, "h", "h ", 1)
	return strings.TrimSpace(s)
}

// AmadeusSearchFlights runs a flight-offers search and maps each offer to
// the response shape the frontend expects.
func AmadeusSearchFlights(origin, destination, date string, passengers int) ([]types.JSONB, error) {
	query := url.Values{}
	query.Set("originLocationCode", origin)
	query.Set("destinationLocationCode", destination)
	query.Set("departureDate", date)
	query.Set("adults", fmt.Sprintf("%d", passengers))
	query.Set("max", "15")
	query.Set("currencyCode", "USD")
	parsed, err := amadeusGet("/v2/shopping/flight-offers", query)
	if err != nil {
		return nil, err
	}
	offers := parsed.Get("data").Array()
	if len(offers) == 0 {
		return nil, errors.New("amadeus returned no flight offers")
	}
	flights := make([]types.JSONB, 0, len(offers))
	for _, offer := range offers {
		segments := offer.Get("itineraries.0.segments").Array()
		if len(segments) == 0 {
			continue
		}
		first := segments[0]
		last := segments[len(segments)-1]
		carrier := offer.Get("validatingAirlineCodes.0").String()
		if carrier == "" {
			carrier = first.Get("carrierCode").String()
		}
		seats := offer.Get("numberOfBookableSeats").Int()
		if seats == 0 {
			seats = 9
		}
		departure := strings.SplitN(first.Get("departure.at").String(), "T", 2)
		arrival := strings.SplitN(last.Get("arrival.at").String(), "T", 2)
		departureTime := ""
		if len(departure) > 1 && len(departure[1]) >= 5 {
			departureTime = departure[1][:5]
		}
		arrivalTime := ""
		if len(arrival) > 1 && len(arrival[1]) >= 5 {
			arrivalTime = arrival[1][:5]
		}
		flights = append(flights, types.JSONB{
			"id":              offer.Get("id").String(),
			"airline":         AirlineName(carrier),
			"airline_code":    carrier,
			"airline_logo":    AirlineLogo(carrier),
			"flight_number":   fmt.Sprintf("%s%s", first.Get("carrierCode").String(), first.Get("number").String()),
			"origin":          origin,
			"destination":     destination,
			"departure_time":  departureTime,
			"arrival_time":    arrivalTime,
			"duration":        formatDuration(offer.Get("itineraries.0.duration").String()),
			"stops":           len(segments) - 1,
			"price":           offer.Get("price.grandTotal").Float(),
			"currency":        offer.Get("price.currency").String(),
			"available_seats": seats,
		})
	}
	if len(flights) == 0 {
		return nil, errors.New("amadeus offers could not be parsed")
	}
	return flights, nil
}

// AmadeusSearchHotels resolves the location keyword to a city code, lists
// hotels there and fetches offers for the stay.
func AmadeusSearchHotels(location, checkIn, checkOut string, guests int) ([]types.JSONB, error) {
	cityQuery := url.Values{}
	cityQuery.Set("keyword", location)
	cityQuery.Set("subType", "CITY")
	cities, err := amadeusGet("/v1/reference-data/locations", cityQuery)
	if err != nil {
		return nil, err
	}
	cityCode := cities.Get("data.0.iataCode").String()
	if cityCode == "" {
		return nil, fmt.Errorf("no city match for %q", location)
	}

	listQuery := url.Values{}
	listQuery.Set("cityCode", cityCode)
	list, err := amadeusGet("/v1/reference-data/locations/hotels/by-city", listQuery)
	if err != nil {
		return nil, err
	}
	hotelIds := []string{}
	for _, h := range list.Get("data").Array() {
		if id := h.Get("hotelId").String(); id != "" {
			hotelIds = append(hotelIds, id)
		}
		if len(hotelIds) == 10 {
			break
		}
	}
	if len(hotelIds) == 0 {
		return nil, fmt.Errorf("no hotels listed for city %s", cityCode)
	}

	offerQuery := url.Values{}
	offerQuery.Set("hotelIds", strings.Join(hotelIds, ","))
	offerQuery.Set("adults", fmt.Sprintf("%d", guests))
	offerQuery.Set("checkInDate", checkIn)
	offerQuery.Set("checkOutDate", checkOut)
	offers, err := amadeusGet("/v3/shopping/hotel-offers", offerQuery)
	if err != nil {
		return nil, err
	}
	results := offers.Get("data").Array()
	if len(results) == 0 {
		return nil, errors.New("amadeus returned no hotel offers")
	}
	hotels := make([]types.JSONB, 0, len(results))
	for _, r := range results {
		hotels = append(hotels, types.JSONB{
			"id":       r.Get("hotel.hotelId").String(),
			"name":     r.Get("hotel.name").String(),
			"location": location,
			"price":    r.Get("offers.0.price.total").Float(),
			"currency": r.Get("offers.0.price.currency").String(),
		})
		if len(hotels) == 10 {
			break
		}
	}
	return hotels, nil
}

// AirlineName maps an IATA carrier code to a display name where known.
func AirlineName(code string) string {
	names := map[string]string{
		"EK": "Emirates",
		"QR": "Qatar Airways",
		"SQ": "Singapore Airlines",
		"LH": "Lufthansa",
		"BA": "British Airways",
		"AA": "American Airlines",
		"UA": "United Airlines",
		"DL": "Delta Air Lines",
		"AF": "Air France",
		"KL": "KLM",
	}
	if name, ok := names[code]; ok {
		return name
	}
	return code
}

func AirlineLogo(code string) string {
	logos := map[string]string{
		"EK": "https://upload.wikimedia.org/wikipedia/commons/d/d0/Emirates_logo.svg",
		"QR": "https://upload.wikimedia.org/wikipedia/en/9/9b/Qatar_Airways_Logo.svg",
		"SQ": "https://upload.wikimedia.org/wikipedia/en/6/6b/Singapore_Airlines_Logo_2.svg",
		"LH": "https://upload.wikimedia.org/wikipedia/commons/b/b8/Lufthansa_Logo_2018.svg",
		"BA": "https://upload.wikimedia.org/wikipedia/en/4/42/British_Airways_Logo.svg",
		"AA": "https://upload.wikimedia.org/wikipedia/en/2/23/American_Airlines_logo_2013.svg",
		"UA": "https://upload.wikimedia.org/wikipedia/en/e/e0/United_Airlines_Logo.svg",
		"DL": "https://upload.wikimedia.org/wikipedia/commons/d/d1/Delta_logo.svg",
		"AF": "https://upload.wikimedia.org/wikipedia/commons/4/44/Air_France_Logo.svg",
		"KL": "https://upload.wikimedia.org/wikipedia/commons/c/c7/KLM_logo.svg",
	}
	return logos[code]
}
