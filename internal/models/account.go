package models

import "time"

// ProviderAccount holds the credentials stored under one global multi id.
type ProviderAccount struct {
	GlobalMultiID string    `json:"global_multi_id"`
	Provider      string    `json:"provider"`
	Name          string    `json:"name"`
	AccessToken   string    `json:"-"`
	AccountID     string    `json:"account_id"`
	CreatedAt     time.Time `json:"created_at"`
}
