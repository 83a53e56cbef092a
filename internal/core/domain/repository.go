package domain

import (
	"encoding/json"
	"time"
)

// RepositoryItem is a repository as returned by the search API.
// Only FullName and CreatedAt drive the search; the remaining fields are
// passed through for output.
type RepositoryItem struct {
	// FullName is "owner/name".
	FullName string `json:"full_name"`

	// CreatedAt is the repository creation time.
	CreatedAt time.Time `json:"created_at"`

	// HTMLURL is the repository web page.
	HTMLURL string `json:"html_url,omitempty"`

	// Description is the repository description, if any.
	Description string `json:"description,omitempty"`

	// Language is the primary language detected by GitHub.
	Language string `json:"language,omitempty"`

	// Stars is the stargazer count.
	Stars int `json:"stargazers_count"`

	// Raw is the verbatim JSON object from the API response.
	Raw json.RawMessage `json:"-"`
}

// UnmarshalJSON decodes the known fields and keeps the original object in Raw.
func (r *RepositoryItem) UnmarshalJSON(data []byte) error {
	type plain RepositoryItem
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*r = RepositoryItem(p)
	r.Raw = append(json.RawMessage(nil), data...)
	return nil
}

// MarshalJSON returns the verbatim API object when available.
func (r RepositoryItem) MarshalJSON() ([]byte, error) {
	if len(r.Raw) > 0 {
		return r.Raw, nil
	}
	type plain RepositoryItem
	return json.Marshal(plain(r))
}

// EarliestCreated returns the smallest CreatedAt among items.
// The boolean is false when items is empty.
func EarliestCreated(items []RepositoryItem) (time.Time, bool) {
	if len(items) == 0 {
		return time.Time{}, false
	}
	earliest := items[0].CreatedAt
	for _, item := range items[1:] {
		if item.CreatedAt.Before(earliest) {
			earliest = item.CreatedAt
		}
	}
	return earliest, true
}
