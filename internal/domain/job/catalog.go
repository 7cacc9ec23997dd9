package job

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
)

var ErrDuplicateID = errors.New("duplicate job id")

// Catalog is the loaded record set. It is never modified after NewCatalog
// returns, so it can be shared by any number of goroutines.
type Catalog struct {
	postings    []Posting
	fingerprint string
}

func NewCatalog(postings []Posting) (*Catalog, error) {
	seen := make(map[ID]struct{}, len(postings))
	out := make([]Posting, 0, len(postings))
	for i, p := range postings {
		if p.ID != "" {
			if _, ok := seen[p.ID]; ok {
				return nil, fmt.Errorf("%w: %q at index %d", ErrDuplicateID, p.ID, i)
			}
			seen[p.ID] = struct{}{}
		}
		out = append(out, p.clone())
	}
	b, err := json.Marshal(out)
	if err != nil {
		return nil, err
	}
	sum := sha256.Sum256(b)
	return &Catalog{postings: out, fingerprint: hex.EncodeToString(sum[:8])}, nil
}

// Fingerprint identifies the loaded data set; two catalogs with the same
// postings in the same order share it.
func (c *Catalog) Fingerprint() string {
	if c == nil {
		return ""
	}
	return c.fingerprint
}

// All returns the postings in load order. The slice is a fresh copy; the
// postings themselves must be treated as read-only.
func (c *Catalog) All() []Posting {
	if c == nil {
		return []Posting{}
	}
	out := make([]Posting, len(c.postings))
	copy(out, c.postings)
	return out
}

func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.postings)
}
