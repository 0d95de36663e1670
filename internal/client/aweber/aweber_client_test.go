package aweber

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/TWRT/form-integrations/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetAccountListsSendsPaging(t *testing.T) {
	var gotPath, gotStart, gotSize, gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotStart = r.URL.Query().Get("ws.start")
		gotSize = r.URL.Query().Get("ws.size")
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		_, _ = fmt.Fprint(w, `{
			"entries": [
				{"id": 42, "name": "Newsletter"},
				{"id": "77", "name": "Promotions"}
			],
			"start": 100,
			"total_size": 237
		}`)
	}))
	defer srv.Close()

	c := NewAweberClient("secret", WithBaseURL(srv.URL))
	page, err := c.GetAccountLists(context.Background(), "1234", models.ListsQuery{Start: 100, Size: 100})

	require.NoError(t, err)
	assert.Equal(t, "/accounts/1234/lists", gotPath)
	assert.Equal(t, "100", gotStart)
	assert.Equal(t, "100", gotSize)
	assert.Equal(t, "Bearer secret", gotAuth)
	assert.Equal(t, 237, page.TotalSize)
	assert.Equal(t, []models.MailingList{
		{ID: "42", Name: "Newsletter"},
		{ID: "77", Name: "Promotions"},
	}, page.Entries)
}

func TestGetAccountListsDecodesAweberError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = fmt.Fprint(w, `{"error": {"status": 401, "type": "UnauthorizedError", "message": "Invalid token"}}`)
	}))
	defer srv.Close()

	c := NewAweberClient("bad", WithBaseURL(srv.URL))
	_, err := c.GetAccountLists(context.Background(), "1", models.ListsQuery{Size: 100})

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.Equal(t, "UnauthorizedError", apiErr.Type)
	assert.Equal(t, "Invalid token", apiErr.Message)
}

func TestGetAccountListsNonJSONError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = fmt.Fprint(w, `<html>bad gateway</html>`)
	}))
	defer srv.Close()

	_, err := NewAweberClient("t", WithBaseURL(srv.URL)).GetAccountLists(context.Background(), "1", models.ListsQuery{})

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "AWeber returned status: 502", apiErr.Error())
}

func TestGetAccountListsBadBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = fmt.Fprint(w, `not-json`)
	}))
	defer srv.Close()

	_, err := NewAweberClient("t", WithBaseURL(srv.URL)).GetAccountLists(context.Background(), "1", models.ListsQuery{})

	assert.Error(t, err)
}

func TestGetAccountListsContextCanceled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewAweberClient("t", WithBaseURL(srv.URL)).GetAccountLists(ctx, "1", models.ListsQuery{})

	assert.Error(t, err)
}

func TestGetAccounts(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/accounts", r.URL.Path)
		_, _ = fmt.Fprint(w, `{"entries": [{"id": 98765, "self_link": "https://api.aweber.com/1.0/accounts/98765"}], "total_size": 1}`)
	}))
	defer srv.Close()

	accounts, err := NewAweberClient("t", WithBaseURL(srv.URL)).GetAccounts(context.Background())

	require.NoError(t, err)
	require.Len(t, accounts, 1)
	assert.Equal(t, AweberID("98765"), accounts[0].Id)
}

func TestNewClientDefaults(t *testing.T) {
	c := NewAweberClient("t", WithBaseURL(""), WithHTTPClient(nil))

	assert.Equal(t, DefaultBaseURL, c.baseUrl)
	assert.NotNil(t, c.httpClient)
}
