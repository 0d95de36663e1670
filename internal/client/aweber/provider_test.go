package aweber

import (
	"context"
	"errors"
	"testing"

	"github.com/TWRT/form-integrations/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type accountStub struct {
	accounts map[string]*models.ProviderAccount
	err      error
}

func (s accountStub) Get(ctx context.Context, provider, globalMultiID string) (*models.ProviderAccount, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.accounts[globalMultiID], nil
}

func newStubProvider() *Provider {
	return NewProvider(accountStub{accounts: map[string]*models.ProviderAccount{
		"ok":       {GlobalMultiID: "ok", Provider: Slug, Name: "Main", AccessToken: "tok", AccountID: "123"},
		"no-token": {GlobalMultiID: "no-token", Provider: Slug, AccountID: "456"},
	}})
}

func TestGetAPIWithCredentials(t *testing.T) {
	api, err := newStubProvider().GetAPI(context.Background(), "ok")

	require.NoError(t, err)
	assert.NotNil(t, api)
}

func TestGetAPIWithoutCredentialsIsNil(t *testing.T) {
	p := newStubProvider()

	for _, id := range []string{"", "missing", "no-token"} {
		api, err := p.GetAPI(context.Background(), id)
		require.NoError(t, err)
		assert.Nil(t, api, id)
	}
}

func TestGetAPIStoreError(t *testing.T) {
	p := NewProvider(accountStub{err: errors.New("db closed")})

	api, err := p.GetAPI(context.Background(), "ok")

	assert.Error(t, err)
	assert.Nil(t, api)
}

func TestGetAccountID(t *testing.T) {
	p := newStubProvider()

	id, err := p.GetAccountID(context.Background(), "ok")
	require.NoError(t, err)
	assert.Equal(t, "123", id)

	id, err = p.GetAccountID(context.Background(), "missing")
	require.NoError(t, err)
	assert.Equal(t, "", id)
}

func TestGetSetting(t *testing.T) {
	p := newStubProvider()
	ctx := context.Background()

	v, _ := p.GetSetting(ctx, "api_key", "", "ok")
	assert.Equal(t, "tok", v)
	v, _ = p.GetSetting(ctx, "name", "", "ok")
	assert.Equal(t, "Main", v)
	v, _ = p.GetSetting(ctx, "api_key", "fallback", "no-token")
	assert.Equal(t, "fallback", v)
	v, _ = p.GetSetting(ctx, "unknown", "def", "ok")
	assert.Equal(t, "def", v)
	v, _ = p.GetSetting(ctx, "account_id", "def", "missing")
	assert.Equal(t, "def", v)
}
