// Package models holds the client-side data model of a Brainly collection.
package models

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/brainly/internal/common"
)

// Kind is the closed category of a saved item. Its string value is the
// exact server representation and is compared case-sensitively.
type Kind string

const (
	KindYouTube  Kind = "youtube"
	KindTwitter  Kind = "twitter"
	KindDocument Kind = "document"
	KindLink     Kind = "link"
	KindTag      Kind = "tag"
)

// Kinds returns every kind in display order.
func Kinds() []Kind {
	return []Kind{KindYouTube, KindTwitter, KindDocument, KindLink, KindTag}
}

// ParseKind matches s exactly against the known kinds.
func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds() {
		if string(k) == s {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: %q", common.ErrUnknownKind, s)
}

func (k Kind) Valid() bool {
	_, err := ParseKind(string(k))
	return err == nil
}

// Item is one saved piece of content as returned by the API. Items are
// never edited client-side.
type Item struct {
	ID      string  `json:"_id"`
	Title   string  `json:"title"`
	Link    string  `json:"link"`
	Type    Kind    `json:"type"`
	OwnerID OwnerID `json:"userId"`
}

func (i Item) String() string {
	return fmt.Sprintf("%s\t%-8s\t%s\t%s", i.ID, i.Type, i.Title, i.Link)
}

// OwnerID accepts both a plain id string and a populated user object
// ({"_id": "...", "username": "..."}) on the wire.
type OwnerID string

func (o *OwnerID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*o = ""
		return nil
	}
	if len(b) > 0 && b[0] == '{' {
		var populated struct {
			ID string `json:"_id"`
		}
		if err := json.Unmarshal(b, &populated); err != nil {
			return err
		}
		*o = OwnerID(populated.ID)
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	*o = OwnerID(s)
	return nil
}

// NewContent is the create-request payload.
type NewContent struct {
	Type  Kind   `json:"type"`
	Title string `json:"title"`
	Link  string `json:"link"`
}
