package job

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// ID is a posting identifier. Data files carry it either as a JSON string or
// as a number; both decode to the same textual form.
type ID string

func (id *ID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*id = ""
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = ID(strings.TrimSpace(s))
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("job id: %w", err)
	}
	*id = ID(n.String())
	return nil
}

func (id ID) String() string {
	return string(id)
}

type Posting struct {
	ID          ID       `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Skills      []string `json:"skills"`
}

// VisibleSkills returns at most limit leading skill labels.
func (p Posting) VisibleSkills(limit int) []string {
	if limit <= 0 || len(p.Skills) == 0 {
		return []string{}
	}
	n := len(p.Skills)
	if n > limit {
		n = limit
	}
	out := make([]string, n)
	copy(out, p.Skills[:n])
	return out
}

func (p Posting) clone() Posting {
	c := p
	if p.Skills != nil {
		c.Skills = make([]string, len(p.Skills))
		copy(c.Skills, p.Skills)
	}
	return c
}
