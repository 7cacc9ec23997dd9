package job

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestPosting_UnmarshalNumericAndStringID(t *testing.T) {
	var ps []Posting
	raw := `[{"id":7,"title":"A","description":"a","skills":["Go"]},{"id":"abc","title":"B","description":"b","skills":[]}]`
	if err := json.Unmarshal([]byte(raw), &ps); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if ps[0].ID != "7" {
		t.Fatalf("expected id 7, got %q", ps[0].ID)
	}
	if ps[1].ID != "abc" {
		t.Fatalf("expected id abc, got %q", ps[1].ID)
	}
}

func TestPosting_VisibleSkills(t *testing.T) {
	p := Posting{Skills: []string{"a", "b", "c", "d", "e", "f"}}
	got := p.VisibleSkills(4)
	if len(got) != 4 {
		t.Fatalf("expected 4 skills, got %d", len(got))
	}
	if got[3] != "d" {
		t.Fatalf("expected d, got %q", got[3])
	}

	got[0] = "mutated"
	if p.Skills[0] != "a" {
		t.Fatalf("visible skills must not alias the posting")
	}

	if n := len(Posting{Skills: []string{"x"}}.VisibleSkills(4)); n != 1 {
		t.Fatalf("expected 1 skill, got %d", n)
	}
}

func TestCatalog_RejectsDuplicateIDs(t *testing.T) {
	_, err := NewCatalog([]Posting{{ID: "1"}, {ID: "1"}})
	if !errors.Is(err, ErrDuplicateID) {
		t.Fatalf("expected ErrDuplicateID, got %v", err)
	}
}

func TestCatalog_AllIsACopy(t *testing.T) {
	src := []Posting{{ID: "1", Title: "one", Skills: []string{"Go"}}}
	c, err := NewCatalog(src)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	src[0].Title = "changed"
	src[0].Skills[0] = "changed"

	all := c.All()
	if all[0].Title != "one" || all[0].Skills[0] != "Go" {
		t.Fatalf("catalog must not alias its input: %+v", all[0])
	}

	all[0] = Posting{ID: "2"}
	if c.All()[0].ID != "1" {
		t.Fatalf("All must return a fresh slice")
	}
	if c.Len() != 1 {
		t.Fatalf("expected len 1, got %d", c.Len())
	}
}

func TestCatalog_Fingerprint(t *testing.T) {
	a, _ := NewCatalog([]Posting{{ID: "1", Title: "one"}, {ID: "2", Title: "two"}})
	b, _ := NewCatalog([]Posting{{ID: "1", Title: "one"}, {ID: "2", Title: "two"}})
	c, _ := NewCatalog([]Posting{{ID: "2", Title: "two"}, {ID: "1", Title: "one"}})

	if a.Fingerprint() == "" {
		t.Fatalf("expected a fingerprint")
	}
	if a.Fingerprint() != b.Fingerprint() {
		t.Fatalf("equal catalogs must share a fingerprint")
	}
	if a.Fingerprint() == c.Fingerprint() {
		t.Fatalf("order must change the fingerprint")
	}
}
