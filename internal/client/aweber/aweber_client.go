package aweber

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/TWRT/form-integrations/internal/models"
)

const DefaultBaseURL = "https://api.aweber.com/1.0"

// APIError is returned for every non-2xx answer from AWeber.
type APIError struct {
	StatusCode int
	Type       string
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("AWeber error (%d %s): %s", e.StatusCode, e.Type, e.Message)
	}
	return fmt.Sprintf("AWeber returned status: %d", e.StatusCode)
}

type AweberClient struct {
	baseUrl    string
	token      string
	httpClient *http.Client
}

type Option func(*AweberClient)

func WithBaseURL(baseURL string) Option {
	return func(c *AweberClient) {
		if baseURL != "" {
			c.baseUrl = baseURL
		}
	}
}

func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *AweberClient) {
		if httpClient != nil {
			c.httpClient = httpClient
		}
	}
}

func NewAweberClient(token string, opts ...Option) *AweberClient {
	c := &AweberClient{
		baseUrl:    DefaultBaseURL,
		token:      token,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// GetAccountLists fetches one page of the account's lists using AWeber's ws.start/ws.size paging.
func (c *AweberClient) GetAccountLists(ctx context.Context, accountID string, query models.ListsQuery) (*models.ListsPage, error) {
	params := url.Values{}
	params.Set("ws.start", strconv.Itoa(query.Start))
	params.Set("ws.size", strconv.Itoa(query.Size))
	endpoint := c.baseUrl + "/accounts/" + url.PathEscape(accountID) + "/lists?" + params.Encode()

	var collection AweberCollection[AweberList]
	if err := c.get(ctx, endpoint, &collection); err != nil {
		return nil, fmt.Errorf("get account lists (aweber): %w", err)
	}

	page := &models.ListsPage{
		Entries:   make([]models.MailingList, 0, len(collection.Entries)),
		TotalSize: collection.TotalSize,
	}
	for _, l := range collection.Entries {
		page.Entries = append(page.Entries, models.MailingList{
			ID:   string(l.Id),
			Name: l.Name,
		})
	}
	return page, nil
}

// GetAccounts lists the accounts the token has access to. AWeber tokens normally see exactly one.
func (c *AweberClient) GetAccounts(ctx context.Context) ([]AweberAccount, error) {
	var collection AweberCollection[AweberAccount]
	if err := c.get(ctx, c.baseUrl+"/accounts", &collection); err != nil {
		return nil, fmt.Errorf("get accounts (aweber): %w", err)
	}
	return collection.Entries, nil
}

func (c *AweberClient) get(ctx context.Context, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("build request (aweber): %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response body (aweber): %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var aweberErr AweberError
		if err := json.Unmarshal(body, &aweberErr); err == nil {
			apiErr.Type = aweberErr.Error.Type
			apiErr.Message = aweberErr.Error.Message
		}
		return apiErr
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("parse response (aweber): %w", err)
	}
	return nil
}
