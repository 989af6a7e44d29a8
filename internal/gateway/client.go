package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/clearline-health/eligo/internal/core/domain"
	"github.com/clearline-health/eligo/internal/core/ports/driven"
	"github.com/clearline-health/eligo/internal/logger"
)

const (
	// DefaultTimeout is the per-call HTTP request timeout.
	DefaultTimeout = 30 * time.Second

	// MaxRetries is the maximum number of retries for transport errors
	// where no response was received. Timeouts and received responses are
	// never retried.
	MaxRetries = 2
)

// API operation paths, relative to the configured base URL.
const (
	pathEligibility     = "/api/external/member/eligibility/v3.0"
	pathNetworkStatus   = "/api/external/networkStatus/v4.0"
	pathCopay           = "/api/external/member/copay/v2.0"
	pathCopayEnhanced   = "/api/appservices/copayCoinsuranceDetails/v5.0"
	pathMemberCardImage = "/api/extended/memberIdCard/image/v3.0"
)

// Client calls the eligibility API. Authorization is injected by the
// oauth2 transport of its HTTP client; everything else rides in per-call
// headers.
type Client struct {
	baseURL  string
	clientID string
	env      string
	http     *http.Client
	limiter  *RateLimiter
}

var _ driven.EligibilityGateway = (*Client)(nil)

// NewClient creates a gateway client. httpClient should come from
// NewHTTPClient so requests carry a bearer token.
func NewClient(baseURL, clientID, env string, httpClient *http.Client) *Client {
	return &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		clientID: clientID,
		env:      env,
		http:     httpClient,
		limiter:  NewRateLimiter(),
	}
}

// setHeaders applies the standard request headers. The member card endpoint
// rejects the env header, so it is skipped there.
func (c *Client) setHeaders(req *http.Request, includeEnv bool) {
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-API-Key", c.clientID)
	req.Header.Set("Client-Id", c.clientID)
	if includeEnv {
		req.Header.Set("env", c.env)
	}
}

// post sends one JSON POST and returns the status, response headers, and
// the full body. Transport failures with no response are retried; timeouts,
// token errors, and any received response are not.
func (c *Client) post(ctx context.Context, path string, payload any, includeEnv bool) (int, http.Header, []byte, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return 0, nil, nil, fmt.Errorf("encode payload: %w", err)
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return 0, nil, nil, err
	}

	url := c.baseURL + path
	logger.Debug("POST %s", url)

	var resp *http.Response
	attempt := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
		if err != nil {
			return backoff.Permanent(err)
		}
		c.setHeaders(req, includeEnv)

		r, err := c.http.Do(req)
		if err != nil {
			if isTokenError(err) || isTimeout(err) {
				return backoff.Permanent(err)
			}
			logger.Warn("transport error, will retry: %v", err)
			return err
		}
		resp = r
		return nil
	}

	bo := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), MaxRetries), ctx)
	if err := backoff.Retry(attempt, bo); err != nil {
		return 0, nil, nil, c.wrapTransportError(err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, nil, c.wrapTransportError(err)
	}

	logger.Debug("response status %d (%d bytes)", resp.StatusCode, len(raw))
	return resp.StatusCode, resp.Header, raw, nil
}

// wrapTransportError maps a failed round trip to the canonical error.
// Token sentinels surface unchanged so callers can react to them.
func (c *Client) wrapTransportError(err error) error {
	switch {
	case isTokenError(err):
		if errors.Is(err, domain.ErrTokenExpired) {
			return domain.ErrTokenExpired
		}
		return domain.ErrNoToken
	case isTimeout(err):
		return domain.NewTimeoutError()
	default:
		return domain.NewTransportError(err)
	}
}

func isTokenError(err error) bool {
	return errors.Is(err, domain.ErrNoToken) || errors.Is(err, domain.ErrTokenExpired)
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}

// apiError builds the error for a non-200 response. Some endpoints wrap
// their error object in a single-element array; unwrapArray handles that.
func apiError(status int, raw []byte, unwrapArray bool) *domain.APIError {
	var body domain.Document
	if err := json.Unmarshal(raw, &body); err != nil {
		if unwrapArray {
			var list []domain.Document
			if err := json.Unmarshal(raw, &list); err == nil && len(list) > 0 {
				body = list[0]
			}
		}
		if body == nil {
			body = domain.Document{"message": string(raw)}
		}
	}
	return &domain.APIError{Kind: domain.KindAPI, StatusCode: status, Body: body}
}

// decodeDocument parses a 200 response body.
func decodeDocument(raw []byte) (domain.Document, error) {
	var doc domain.Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, &domain.APIError{
			Kind:       domain.KindMalformed,
			StatusCode: http.StatusOK,
			Body:       domain.Document{"message": fmt.Sprintf("Malformed response body: %s", err)},
		}
	}
	return doc, nil
}

type eligibilityPayload struct {
	MemberID         string `json:"memberId"`
	DateOfBirth      string `json:"dateOfBirth"`
	SearchOption     string `json:"searchOption"`
	PayerID          string `json:"payerID"`
	ProviderLastName string `json:"providerLastName"`
	TaxIDNumber      string `json:"taxIdNumber"`
	FirstName        string `json:"firstName"`
	LastName         string `json:"lastName"`
	ServiceStart     string `json:"serviceStart,omitempty"`
	ServiceEnd       string `json:"serviceEnd,omitempty"`
}

// SearchEligibility runs a member eligibility search.
func (c *Client) SearchEligibility(ctx context.Context, q domain.EligibilityQuery) (domain.Document, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}

	searchOption := q.SearchOption
	if searchOption == "" {
		searchOption = domain.DefaultSearchOption
	}

	payload := eligibilityPayload{
		MemberID:         q.MemberID,
		DateOfBirth:      q.DateOfBirth,
		SearchOption:     searchOption,
		PayerID:          q.PayerID,
		ProviderLastName: q.ProviderLastName,
		TaxIDNumber:      q.TaxIDNumber,
		FirstName:        q.FirstName,
		LastName:         q.LastName,
		ServiceStart:     q.ServiceStart,
		ServiceEnd:       q.ServiceEnd,
	}

	status, _, raw, err := c.post(ctx, pathEligibility, payload, true)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, apiError(status, raw, false)
	}
	return decodeDocument(raw)
}

// CheckNetworkStatus checks a provider's network participation. Optional
// identifiers are omitted entirely when unset; providerMpin rides along
// only when no transaction ID is supplied, which the endpoint requires.
func (c *Client) CheckNetworkStatus(ctx context.Context, q domain.NetworkStatusQuery) (domain.Document, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}

	payload := map[string]any{
		"memberId":           q.MemberID,
		"dateOfBirth":        q.DateOfBirth,
		"providerLastName":   q.ProviderLastName,
		"firstDateOfService": q.FirstDateOfService,
		"lastDateOfService":  q.LastDateOfService,
		"familyIndicator":    "N",
		"payerID":            "",
		"taxIdNumber":        "",
		"firstName":          "",
		"lastName":           "",
	}
	if q.TransactionID != "" {
		payload["transactionId"] = q.TransactionID
	} else {
		payload["providerMpin"] = ""
	}
	if q.ProviderFirstName != "" {
		payload["providerFirstName"] = q.ProviderFirstName
	}
	if q.ProviderTIN != "" {
		payload["providerTin"] = q.ProviderTIN
	}
	if q.ProviderNPI != "" {
		payload["providerNpi"] = q.ProviderNPI
	}
	if q.FirstName != "" {
		payload["firstName"] = q.FirstName
	}

	status, _, raw, err := c.post(ctx, pathNetworkStatus, payload, true)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, apiError(status, raw, true)
	}
	return decodeDocument(raw)
}

// GetCopayCoinsurance fetches copay/coinsurance detail.
func (c *Client) GetCopayCoinsurance(ctx context.Context, q domain.CoverageQuery) (domain.Document, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}

	path := pathCopay
	if q.Enhanced {
		path = pathCopayEnhanced
	}

	payload := map[string]string{
		"patientKey":    q.PatientKey,
		"transactionId": q.TransactionID,
	}

	status, _, raw, err := c.post(ctx, path, payload, true)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, apiError(status, raw, false)
	}
	return decodeDocument(raw)
}

// GetMemberCardImage fetches the member ID card and resolves the response
// shape once: declared image, parseable JSON, or raw bytes typed as
// application/octet-stream.
func (c *Client) GetMemberCardImage(ctx context.Context, req domain.MemberCardRequest) (*domain.CardResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	payload := map[string]string{
		"transactionId": req.TransactionID,
		"memberId":      req.MemberID,
		"dateOfBirth":   req.DateOfBirth,
		"payerId":       req.PayerID,
		"firstName":     req.FirstName,
	}

	status, header, raw, err := c.post(ctx, pathMemberCardImage, payload, false)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, apiError(status, raw, false)
	}

	contentType := header.Get("Content-Type")
	if strings.Contains(strings.ToLower(contentType), "image") {
		return &domain.CardResult{Image: raw, ContentType: contentType}, nil
	}

	var doc domain.Document
	if err := json.Unmarshal(raw, &doc); err == nil {
		return &domain.CardResult{Data: doc}, nil
	}

	if contentType == "" {
		contentType = domain.OctetStream
	}
	return &domain.CardResult{Image: raw, ContentType: contentType}, nil
}
