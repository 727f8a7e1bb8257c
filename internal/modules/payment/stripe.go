package payment

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Intent mirrors the fields of a Stripe payment intent this system reads.
type Intent struct {
	ID           string `json:"id"`
	ClientSecret string `json:"client_secret"`
	Status       string `json:"status"`
	Amount       int64  `json:"amount"`
	Currency     string `json:"currency"`
	CustomerID   string `json:"customer"`
}

const IntentStatusSucceeded = "succeeded"

type Refund struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

type apiErrorBody struct {
	Error struct {
		Type    string `json:"type"`
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// APIError is a non-2xx answer from the payment processor.
type APIError struct {
	StatusCode int
	Type       string
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("stripe: %s (type=%s code=%s status=%d)", e.Message, e.Type, e.Code, e.StatusCode)
}

// StripeClient is a narrow form-encoded REST client for the subset of the
// Stripe API the booking flow needs: customers, payment intents, refunds.
type StripeClient struct {
	baseURL   string
	secretKey string
	http      *http.Client
	loggerf   func(format string, args ...interface{})
}

func NewStripeClient(secretKey, baseURL string, loggerf func(format string, args ...interface{})) *StripeClient {
	if baseURL == "" {
		baseURL = "https://api.stripe.com"
	}
	if loggerf == nil {
		loggerf = func(string, ...interface{}) {}
	}
	return &StripeClient{
		baseURL:   strings.TrimRight(baseURL, "/"),
		secretKey: secretKey,
		http:      &http.Client{Timeout: 30 * time.Second},
		loggerf:   loggerf,
	}
}

type CreateIntentParams struct {
	Amount        float64
	Currency      string
	Metadata      map[string]string
	CustomerEmail string
}

// CreateIntent creates a payment intent for round(amount*100) minor units,
// attaching a freshly created customer when an email is supplied.
func (c *StripeClient) CreateIntent(ctx context.Context, p CreateIntentParams) (*Intent, error) {
	if p.Amount <= 0 || p.Currency == "" {
		return nil, ErrAmountAndCurrencyRequired
	}

	form := url.Values{}
	form.Set("amount", strconv.FormatInt(int64(math.Round(p.Amount*100)), 10))
	form.Set("currency", strings.ToLower(p.Currency))
	form.Set("automatic_payment_methods[enabled]", "true")
	for k, v := range p.Metadata {
		form.Set("metadata["+k+"]", v)
	}

	if p.CustomerEmail != "" {
		customerID, err := c.createCustomer(ctx, p.CustomerEmail)
		if err != nil {
			return nil, err
		}
		form.Set("customer", customerID)
	}

	var intent Intent
	if err := c.post(ctx, "/v1/payment_intents", form, &intent); err != nil {
		return nil, err
	}
	c.loggerf("level=info msg=payment intent created intent_id=%s amount=%d currency=%s", intent.ID, intent.Amount, intent.Currency)
	return &intent, nil
}

func (c *StripeClient) RetrieveIntent(ctx context.Context, id string) (*Intent, error) {
	if id == "" {
		return nil, ErrIntentIDRequired
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/v1/payment_intents/"+url.PathEscape(id), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.secretKey)

	var intent Intent
	if err := c.do(req, &intent); err != nil {
		return nil, err
	}
	return &intent, nil
}

func (c *StripeClient) RefundIntent(ctx context.Context, paymentIntentID, reason string) (*Refund, error) {
	if paymentIntentID == "" {
		return nil, ErrIntentIDRequired
	}

	form := url.Values{}
	form.Set("payment_intent", paymentIntentID)
	if reason != "" {
		form.Set("reason", reason)
	}

	var refund Refund
	if err := c.post(ctx, "/v1/refunds", form, &refund); err != nil {
		return nil, err
	}
	c.loggerf("level=info msg=refund issued refund_id=%s intent_id=%s", refund.ID, paymentIntentID)
	return &refund, nil
}

func (c *StripeClient) createCustomer(ctx context.Context, email string) (string, error) {
	form := url.Values{}
	form.Set("email", email)

	var customer struct {
		ID string `json:"id"`
	}
	if err := c.post(ctx, "/v1/customers", form, &customer); err != nil {
		return "", err
	}
	return customer.ID, nil
}

func (c *StripeClient) post(ctx context.Context, path string, form url.Values, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.secretKey)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Idempotency-Key", uuid.NewString())

	return c.do(req, out)
}

func (c *StripeClient) do(req *http.Request, out interface{}) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var apiErr apiErrorBody
		if err := json.Unmarshal(body, &apiErr); err != nil || apiErr.Error.Message == "" {
			return &APIError{StatusCode: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
		}
		return &APIError{
			StatusCode: resp.StatusCode,
			Type:       apiErr.Error.Type,
			Code:       apiErr.Error.Code,
			Message:    apiErr.Error.Message,
		}
	}

	return json.Unmarshal(body, out)
}
