package aweber

import (
	"bytes"
	"encoding/json"
	"fmt"
)

type AweberErrorDetail struct {
	Status           int    `json:"status"`
	Message          string `json:"message"`
	Type             string `json:"type"`
	DocumentationURL string `json:"documentation_url"`
}

type AweberError struct {
	Error AweberErrorDetail `json:"error"`
}

// AweberID accepts ids sent either as JSON numbers or strings.
type AweberID string

func (id *AweberID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = AweberID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("parse id (aweber): %w", err)
	}
	*id = AweberID(n.String())
	return nil
}

type AweberList struct {
	Id       AweberID `json:"id"`
	Name     string   `json:"name"`
	SelfLink string   `json:"self_link"`
}

type AweberAccount struct {
	Id       AweberID `json:"id"`
	SelfLink string   `json:"self_link"`
}

type AweberCollection[T any] struct {
	Entries            []T    `json:"entries"`
	Start              int    `json:"start"`
	TotalSize          int    `json:"total_size"`
	NextCollectionLink string `json:"next_collection_link"`
}
