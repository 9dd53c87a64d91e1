package boundaries

import "testing"

func TestName(t *testing.T) {
	if n, ok := Name("france"); !ok || n != "France" {
		t.Errorf("Name(france) = %q/%v", n, ok)
	}
	if _, ok := Name("atlantis"); ok {
		t.Error("unknown code must not resolve")
	}
}

func TestDisplayNameFallback(t *testing.T) {
	if got := DisplayName("uk"); got != "United Kingdom" {
		t.Errorf("DisplayName(uk) = %q", got)
	}
	if got := DisplayName("atlantis"); got != "atlantis" {
		t.Errorf("DisplayName fallback = %q, want raw code", got)
	}
}

func TestAllSorted(t *testing.T) {
	all := All()
	if len(all) == 0 {
		t.Fatal("no registered countries")
	}
	for i := 1; i < len(all); i++ {
		if all[i-1].Name > all[i].Name {
			t.Fatalf("not sorted at %d: %q > %q", i, all[i-1].Name, all[i].Name)
		}
	}
}

func TestSearch(t *testing.T) {
	got := Search("germny", 5)
	if len(got) == 0 || got[0].Code != "germany" {
		t.Errorf("fuzzy search = %+v, want germany first", got)
	}
	if got := Search("", 3); len(got) != 3 {
		t.Errorf("empty query with limit = %d results", len(got))
	}
}
