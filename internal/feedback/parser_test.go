package feedback

import "testing"

func TestParseSections_FullReply(t *testing.T) {
	reply := `[LEVEL]: Intermediate
[STRENGTHS]:
- Reads market structure well
- Identifies liquidity sweeps
[WEAKNESSES]:
- Weak risk sizing
[ROADMAP]: Study order blocks for two weeks, then fair value gaps.
[PSYCHOLOGY]: Decisive but occasionally impulsive.`

	got := ParseSections(reply)
	if len(got) != 5 {
		t.Fatalf("sections = %d, want 5", len(got))
	}
	if got[SectionLevel] != "Intermediate" {
		t.Errorf("LEVEL = %q", got[SectionLevel])
	}
	if got[SectionPsychology] != "Decisive but occasionally impulsive." {
		t.Errorf("PSYCHOLOGY = %q", got[SectionPsychology])
	}
	want := "- Reads market structure well\n- Identifies liquidity sweeps"
	if got[SectionStrengths] != want {
		t.Errorf("STRENGTHS = %q, want %q", got[SectionStrengths], want)
	}
}

func TestParseSections_PartialReply(t *testing.T) {
	got := ParseSections("[LEVEL]: Pro\n[STRENGTHS]: A, B, C")
	if len(got) != 2 {
		t.Fatalf("sections = %d, want 2", len(got))
	}
	if got[SectionLevel] != "Pro" {
		t.Errorf("LEVEL = %q, want Pro", got[SectionLevel])
	}
	if got[SectionStrengths] != "A, B, C" {
		t.Errorf("STRENGTHS = %q, want A, B, C", got[SectionStrengths])
	}
	if _, ok := got[SectionRoadmap]; ok {
		t.Error("ROADMAP should be absent")
	}
}

func TestParseSections_CaseAndColonInsensitive(t *testing.T) {
	got := ParseSections("[level] Reads fine without a colon\n[Roadmap]: Mixed case tag")
	if got[SectionLevel] != "Reads fine without a colon" {
		t.Errorf("LEVEL = %q", got[SectionLevel])
	}
	if got[SectionRoadmap] != "Mixed case tag" {
		t.Errorf("ROADMAP = %q", got[SectionRoadmap])
	}
}

func TestParseSections_OutOfOrder(t *testing.T) {
	got := ParseSections("[PSYCHOLOGY]: Calm.\n[LEVEL]: Beginner")
	if got[SectionPsychology] != "Calm." {
		t.Errorf("PSYCHOLOGY = %q", got[SectionPsychology])
	}
	if got[SectionLevel] != "Beginner" {
		t.Errorf("LEVEL = %q", got[SectionLevel])
	}
}

func TestParseSections_StopsAtNextBracket(t *testing.T) {
	got := ParseSections("[LEVEL]: Advanced [see notes]")
	if got[SectionLevel] != "Advanced" {
		t.Errorf("LEVEL = %q, want Advanced", got[SectionLevel])
	}
}

func TestParseSections_EmptyAndUnrecognized(t *testing.T) {
	if got := ParseSections(""); len(got) != 0 {
		t.Errorf("empty input yielded %d sections", len(got))
	}
	if got := ParseSections("The model refused to follow the format."); len(got) != 0 {
		t.Errorf("untagged input yielded %d sections", len(got))
	}
	if got := ParseSections("[SUMMARY]: not one of ours"); len(got) != 0 {
		t.Errorf("unknown tag yielded %d sections", len(got))
	}
}

func TestParse_KeepsRaw(t *testing.T) {
	a := Parse("  [LEVEL]: Pro  ")
	if a.Raw != "[LEVEL]: Pro" {
		t.Errorf("Raw = %q", a.Raw)
	}
	if !a.Has(SectionLevel) || a.Get(SectionLevel) != "Pro" {
		t.Errorf("LEVEL = %q", a.Get(SectionLevel))
	}
	if a.Has(SectionRoadmap) || a.Get(SectionRoadmap) != "" {
		t.Error("absent section should report empty")
	}
}

func TestAnalysis_NilSafe(t *testing.T) {
	var a *Analysis
	if a.Has(SectionLevel) {
		t.Error("nil Analysis should have no sections")
	}
	if a.Get(SectionLevel) != "" {
		t.Error("nil Analysis should return empty text")
	}
}
