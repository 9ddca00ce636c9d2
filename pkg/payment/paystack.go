// Package payment talks to the payment provider. The service never initiates
// charges; it only verifies references the customer paid out-of-band.
package payment

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"studiobook/pkg/client"
	"studiobook/pkg/logger"
	"time"
)

const (
	// StatusSuccess is the provider's terminal state for a settled charge.
	StatusSuccess = "success"
	// StatusFailed is what a rejected or unknown reference reports as.
	StatusFailed = "failed"
)

// Verification is the provider's view of one transaction. Amount is in the
// provider's minor currency unit (kobo for NGN), which is also the canonical
// unit bookings store.
type Verification struct {
	Status   string
	Amount   int64
	Currency string
}

// Verifier is the black-box verification call. Transport and availability
// failures return an error; everything the provider actually reports about
// the transaction, including rejections, comes back as a Verification.
type Verifier interface {
	Verify(ctx context.Context, reference string) (*Verification, error)
}

type PaystackClient struct {
	http *client.HttpClient
	log  *logger.Logger
}

func NewPaystackClient(baseURL, secretKey string, timeout time.Duration, log *logger.Logger) *PaystackClient {
	hc := client.NewHttpClient(baseURL, timeout)
	hc.SetHeader("Authorization", "Bearer "+secretKey)

	return &PaystackClient{
		http: hc,
		log:  log,
	}
}

type verifyEnvelope struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Data    struct {
		Status   string `json:"status"`
		Amount   int64  `json:"amount"`
		Currency string `json:"currency"`
	} `json:"data"`
}

func (c *PaystackClient) Verify(ctx context.Context, reference string) (*Verification, error) {
	resp, err := c.http.GET(ctx, "/transaction/verify/"+url.PathEscape(reference))
	if err != nil {
		return nil, fmt.Errorf("paystack verify request failed: %w", err)
	}

	switch {
	case resp.StatusCode >= http.StatusInternalServerError:
		return nil, fmt.Errorf("paystack verify returned %d", resp.StatusCode)
	case resp.StatusCode != http.StatusOK:
		// 4xx means the provider understood us and rejected the reference.
		// That is a verification outcome, not a transport failure.
		c.log.Warn("Paystack rejected reference",
			"reference", reference,
			"status_code", resp.StatusCode,
		)
		return &Verification{Status: StatusFailed}, nil
	}

	var envelope verifyEnvelope
	if err := resp.DecodeJSON(&envelope); err != nil {
		return nil, fmt.Errorf("failed to decode paystack response: %w", err)
	}

	if !envelope.Status {
		return &Verification{Status: StatusFailed}, nil
	}

	return &Verification{
		Status:   envelope.Data.Status,
		Amount:   envelope.Data.Amount,
		Currency: envelope.Data.Currency,
	}, nil
}
