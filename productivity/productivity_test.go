package productivity

import "testing"

func TestLinksHaveRequiredFields(t *testing.T) {
	ls := Links()
	if len(ls) == 0 {
		t.Fatal("expected at least one link")
	}
	for _, l := range ls {
		if l.ID == "" || l.Title == "" || l.URL == "" {
			t.Errorf("link %+v missing a required field", l)
		}
	}
}

func TestQuoteRotationWraps(t *testing.T) {
	n := len(Quotes())

	if got := QuoteAt(0); got != Quotes()[0] {
		t.Errorf("QuoteAt(0) = %+v, want first quote", got)
	}
	if got := QuoteAt(n); got != Quotes()[0] {
		t.Errorf("QuoteAt(%d) should wrap to first quote, got %+v", n, got)
	}
	if got := QuoteAt(-1); got != Quotes()[n-1] {
		t.Errorf("QuoteAt(-1) should wrap to last quote, got %+v", got)
	}
}

func TestNextIndexCyclesThroughAllQuotes(t *testing.T) {
	n := len(Quotes())
	seen := make(map[int]bool)
	i := 0
	for range Quotes() {
		seen[i] = true
		i = NextIndex(i)
	}
	if i != 0 {
		t.Errorf("after %d advances index = %d, want 0", n, i)
	}
	if len(seen) != n {
		t.Errorf("rotation visited %d indexes, want %d", len(seen), n)
	}
}

func TestReturnedSlicesAreCopies(t *testing.T) {
	a := Links()
	a[0].Title = "mutated"
	if Links()[0].Title == "mutated" {
		t.Error("Links should return a copy")
	}

	q := Quotes()
	q[0].Text = "mutated"
	if Quotes()[0].Text == "mutated" {
		t.Error("Quotes should return a copy")
	}
}
