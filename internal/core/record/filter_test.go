package record

import (
	"strings"
	"testing"
)

func sampleHistory() []Record {
	return []Record{
		{Date: "2024-01-01 09:12", Kind: KindURL, Snippet: "http://evil.example", Score: 12, Verdict: "High Risk"},
		{Date: "2024-01-02 14:30", Kind: KindFile, Score: 88, Verdict: "Safe"},
		{Date: "2024-01-03 08:05", Kind: KindJob, Snippet: "Easy money, no experience needed", Score: 35, Verdict: "High Risk"},
		{Date: "2024-01-04 19:44", Kind: KindURL, Snippet: "https://bbc.com/news", Score: 95, Verdict: "Safe"},
	}
}

func TestFilter_EmptyTermIsIdentity(t *testing.T) {
	h := sampleHistory()
	got := Filter(h, "")
	if len(got) != len(h) {
		t.Fatalf("expected %d records, got %d", len(h), len(got))
	}
	for i := range h {
		if got[i] != h[i] {
			t.Errorf("record %d changed: %+v != %+v", i, got[i], h[i])
		}
	}
}

func TestFilter_CaseInsensitive(t *testing.T) {
	h := sampleHistory()
	terms := []string{"high", "HIGH", "High", "hIgH"}

	want := Filter(h, terms[0])
	for _, term := range terms[1:] {
		got := Filter(h, term)
		if len(got) != len(want) {
			t.Errorf("Filter(h, %q): expected %d records, got %d", term, len(want), len(got))
		}
	}
}

func TestFilter_MatchesAnySearchableField(t *testing.T) {
	h := sampleHistory()

	tests := []struct {
		name string
		term string
		want int
	}{
		{"by kind", "file", 1},
		{"by verdict", "safe", 2},
		{"by snippet", "bbc.com", 1},
		{"partial kind", "ur", 2},
		{"no match", "zz-no-match", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(h, tt.term)
			if len(got) != tt.want {
				t.Errorf("Filter(h, %q): expected %d records, got %d", tt.term, tt.want, len(got))
			}
		})
	}
}

func TestFilter_AbsentSnippetNeverMatchesOnSnippet(t *testing.T) {
	h := []Record{
		{Date: "2024-01-02", Kind: KindFile, Score: 88, Verdict: "Safe"},
	}
	// "evil" matches neither kind nor verdict; the record has no snippet.
	if got := Filter(h, "evil"); len(got) != 0 {
		t.Errorf("expected no match for snippet-only term, got %d records", len(got))
	}
}

func TestFilter_PreservesRelativeOrder(t *testing.T) {
	h := sampleHistory()
	got := Filter(h, "high")

	if len(got) != 2 {
		t.Fatalf("expected 2 records, got %d", len(got))
	}
	if got[0].Date != h[0].Date || got[1].Date != h[2].Date {
		t.Errorf("order not preserved: got %s then %s", got[0].Date, got[1].Date)
	}
}

func TestFilter_IsSubsequence(t *testing.T) {
	h := sampleHistory()

	for _, term := range []string{"", "url", "safe", "e", "x"} {
		got := Filter(h, term)

		// Every filtered record must appear in h, in order.
		j := 0
		for _, r := range got {
			found := false
			for ; j < len(h); j++ {
				if h[j] == r {
					found = true
					j++
					break
				}
			}
			if !found {
				t.Errorf("Filter(h, %q) is not a subsequence of h", term)
				break
			}
		}
	}
}

func TestFilter_EndToEndScenario(t *testing.T) {
	h := []Record{
		{Date: "2024-01-01", Kind: KindURL, Snippet: "http://evil.example", Score: 12, Verdict: "High Risk"},
		{Date: "2024-01-02", Kind: KindFile, Score: 88, Verdict: "Safe"},
	}

	got := Filter(h, "high")
	if len(got) != 1 {
		t.Fatalf("expected exactly 1 record, got %d", len(got))
	}
	if got[0].Snippet != "http://evil.example" {
		t.Errorf("expected the High Risk record, got %+v", got[0])
	}

	if got := Filter(h, "zz-no-match"); len(got) != 0 {
		t.Errorf("expected empty result, got %d records", len(got))
	}
}

func TestFilter_DoesNotMatchDateOrScore(t *testing.T) {
	h := sampleHistory()

	if got := Filter(h, "2024-01-01"); len(got) != 0 {
		t.Errorf("term should not match dates, got %d records", len(got))
	}
	if got := Filter(h, "88"); len(got) != 0 {
		t.Errorf("term should not match scores, got %d records", len(got))
	}
}

func TestFilter_Deterministic(t *testing.T) {
	h := sampleHistory()
	a := Filter(h, "safe")
	b := Filter(h, strings.ToUpper("safe"))

	if len(a) != len(b) {
		t.Fatalf("expected identical results, got %d and %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("record %d differs: %+v != %+v", i, a[i], b[i])
		}
	}
}
