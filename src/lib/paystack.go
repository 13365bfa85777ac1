package lib

import (
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/YinkaFoster/fostertours/src/config"
	"github.com/tidwall/gjson"
)

var paystackBaseURL = "https://api.paystack.co"

// NewPaystackBaseURL points the client at a different host, used by tests.
func NewPaystackBaseURL(base string) {
	paystackBaseURL = base
}

var paystackHTTP = &http.Client{Timeout: 30 * time.Second}

type PaystackInit struct {
	AuthorizationURL string
	AccessCode       string
	Reference        string
}

func paystackRequest(method, path, payload string) (gjson.Result, error) {
	var body io.Reader
	if payload != "" {
		body = strings.NewReader(payload)
	}
	req, err := http.NewRequest(method, fmt.Sprintf("%s%s", paystackBaseURL, path), body)
	if err != nil {
		return gjson.Result{}, err
	}
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", config.PaystackSecretKey()))
	req.Header.Set("Content-Type", "application/json")
	res, err := paystackHTTP.Do(req)
	if err != nil {
		return gjson.Result{}, err
	}
	defer res.Body.Close()
	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return gjson.Result{}, err
	}
	if res.StatusCode != http.StatusOK {
		return gjson.Result{}, fmt.Errorf("paystack %s returned status %d", path, res.StatusCode)
	}
	return gjson.ParseBytes(raw), nil
}

// PaystackInitialize starts a live transaction. Amount is in the major
// unit; Paystack wants the subunit.
func PaystackInitialize(email, reference string, amount float64) (*PaystackInit, error) {
	payload := fmt.Sprintf(`{"email":%q,"amount":%d,"reference":%q}`, email, int64(amount*100), reference)
	parsed, err := paystackRequest(http.MethodPost, "/transaction/initialize", payload)
	if err != nil {
		return nil, err
	}
	return &PaystackInit{
		AuthorizationURL: parsed.Get("data.authorization_url").String(),
		AccessCode:       parsed.Get("data.access_code").String(),
		Reference:        reference,
	}, nil
}

// PaystackVerify returns the processor-side status for a reference.
func PaystackVerify(reference string) (string, error) {
	parsed, err := paystackRequest(http.MethodGet, fmt.Sprintf("/transaction/verify/%s", reference), "")
	if err != nil {
		return "", err
	}
	return parsed.Get("data.status").String(), nil
}
