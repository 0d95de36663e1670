package models

import "encoding/json"

type MailingList struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ListCatalog maps list ids to names and remembers the order ids were first seen in.
type ListCatalog struct {
	ids   []string
	names map[string]string
}

func NewListCatalog() *ListCatalog {
	return &ListCatalog{names: map[string]string{}}
}

// Set stores name under id. A repeated id keeps its position and takes the new name.
func (c *ListCatalog) Set(id, name string) {
	if _, ok := c.names[id]; !ok {
		c.ids = append(c.ids, id)
	}
	c.names[id] = name
}

func (c *ListCatalog) Name(id string) (string, bool) {
	if c == nil {
		return "", false
	}
	name, ok := c.names[id]
	return name, ok
}

func (c *ListCatalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.ids)
}

func (c *ListCatalog) Lists() []MailingList {
	if c == nil {
		return []MailingList{}
	}
	lists := make([]MailingList, 0, len(c.ids))
	for _, id := range c.ids {
		lists = append(lists, MailingList{ID: id, Name: c.names[id]})
	}
	return lists
}

func (c *ListCatalog) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.Lists())
}

// ListsQuery selects one page of an account's lists.
type ListsQuery struct {
	Start int
	Size  int
}

// ListsPage is one page of lists plus the total the provider reports for the account.
type ListsPage struct {
	Entries   []MailingList
	TotalSize int
}
