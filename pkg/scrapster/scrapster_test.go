package scrapster

import (
	"testing"

	"github.com/scrapsterhq/scrapster/pkg/candidate"
	"github.com/scrapsterhq/scrapster/pkg/profile"
)

func relevantContext() profile.Context {
	return profile.Context{
		Name:     "Jane Smith",
		JobTitle: "RFID Engineer",
		URL:      "https://example.com/people/jane",
		RawText:  "Jane Smith is a senior RFID engineer with 10 years experience in wireless systems.",
	}
}

func TestResolvePrefersProfileSpecificOverGeneric(t *testing.T) {
	engine := New([]string{"RFID engineer"})
	pc := relevantContext()

	cands := []candidate.Candidate{
		{Value: "support@acme.com", Provenance: candidate.PageText},
		{Value: "jane.smith@acme.com", Provenance: candidate.PageText},
	}

	got := engine.Resolve(pc, cands)
	if got.Email != "jane.smith@acme.com" {
		t.Errorf("Resolve() Email = %q, want jane.smith@acme.com", got.Email)
	}
	if !got.Relevance.IsValid {
		t.Errorf("Resolve() IsValid = false, reason %q", got.Relevance.Reason)
	}
}

func TestResolveDropsCandidatesWithoutNameMatch(t *testing.T) {
	engine := New([]string{"RFID engineer"})
	pc := relevantContext()

	cands := []candidate.Candidate{
		{Value: "bob.jones@other.com", Provenance: candidate.SectionText},
	}

	got := engine.Resolve(pc, cands)
	if got.Email != "" {
		t.Errorf("Resolve() Email = %q, want empty for unrelated candidate", got.Email)
	}
}

func TestResolveNameGateBeatsCompanyDomain(t *testing.T) {
	engine := New([]string{"RFID engineer"})
	pc := relevantContext()
	pc.Company = "Acme Corp"

	// The domain matches the profile's company, but with a known name the
	// candidate must still carry a name token.
	cands := []candidate.Candidate{
		{Value: "hq@acmecorp.com", Provenance: candidate.SectionText},
	}

	got := engine.Resolve(pc, cands)
	if got.Email != "" {
		t.Errorf("Resolve() Email = %q, want empty without a name token", got.Email)
	}
}

func TestResolveCompanyDomainRanksWithoutName(t *testing.T) {
	engine := New([]string{"RFID engineer"})
	pc := relevantContext()
	pc.Name = ""
	pc.Company = "Acme Corp"

	// With no name the gate is off; the company-domain candidate is
	// profile-specific and outranks the higher-tier outside address.
	cands := []candidate.Candidate{
		{Value: "hq@acmecorp.com", Provenance: candidate.PageText},
		{Value: "press@elsewhere.com", Provenance: candidate.SectionText},
	}

	got := engine.Resolve(pc, cands)
	if got.Email != "hq@acmecorp.com" {
		t.Errorf("Resolve() Email = %q, want hq@acmecorp.com", got.Email)
	}
}

func TestResolveUnknownNameSkipsNameGate(t *testing.T) {
	engine := New([]string{"RFID engineer"})
	pc := relevantContext()
	pc.Name = "Unknown"

	cands := []candidate.Candidate{
		{Value: "anyone@somewhere.com", Provenance: candidate.PageText},
	}

	got := engine.Resolve(pc, cands)
	if got.Email != "anyone@somewhere.com" {
		t.Errorf("Resolve() Email = %q, want anyone@somewhere.com", got.Email)
	}
}

func TestResolveInferredIsLastResort(t *testing.T) {
	engine := New([]string{"RFID engineer"})
	pc := relevantContext()

	t.Run("observed wins over inferred", func(t *testing.T) {
		cands := []candidate.Candidate{
			{Value: "jane.smith@guessed.com", Provenance: candidate.Inferred},
			{Value: "jane@observed.com", Provenance: candidate.PageText},
		}
		got := engine.Resolve(pc, cands)
		if got.Email != "jane@observed.com" {
			t.Errorf("Resolve() Email = %q, want jane@observed.com", got.Email)
		}
	})

	t.Run("inferred used when alone", func(t *testing.T) {
		cands := []candidate.Candidate{
			{Value: "jane.smith@guessed.com", Provenance: candidate.Inferred},
		}
		got := engine.Resolve(pc, cands)
		if got.Email != "jane.smith@guessed.com" {
			t.Errorf("Resolve() Email = %q, want jane.smith@guessed.com", got.Email)
		}
	})
}

func TestResolveNoCandidates(t *testing.T) {
	engine := New([]string{"RFID engineer"})
	got := engine.Resolve(relevantContext(), nil)
	if got.Email != "" {
		t.Errorf("Resolve() Email = %q, want empty", got.Email)
	}
	// Relevance is still evaluated: a profile without an email can be
	// worth keeping.
	if !got.Relevance.IsValid {
		t.Errorf("Resolve() IsValid = false, reason %q", got.Relevance.Reason)
	}
}

func TestCollector(t *testing.T) {
	engine := New([]string{"RFID engineer"})
	collector := NewCollector()

	valid := engine.Resolve(relevantContext(), []candidate.Candidate{
		{Value: "jane.smith@acme.com", Provenance: candidate.PageText},
	})

	irrelevant := engine.Resolve(profile.Context{
		Name:    "Shop Bot",
		URL:     "https://shop.example.com/rfid-wallet",
		RawText: "Buy RFID blocking wallet now! Best price, free shipping on every order.",
	}, nil)

	duplicate := valid

	collector.Add(valid)
	collector.Add(irrelevant)
	collector.Add(duplicate)

	if got := collector.Len(); got != 2 {
		t.Errorf("Len() = %d before dedup, want 2", got)
	}

	results := collector.Results()
	if len(results) != 1 {
		t.Fatalf("Results() returned %d profiles, want 1", len(results))
	}
	if results[0].Email != "jane.smith@acme.com" {
		t.Errorf("Results()[0].Email = %q", results[0].Email)
	}
}
