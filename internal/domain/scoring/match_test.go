package scoring

import "testing"

func TestMatchPercentage_EmptyRequirements(t *testing.T) {
	skills := []Skill{{Name: "Go", Score: 90, MaxScore: 100}}
	if got := MatchPercentage(skills, nil); got != 0 {
		t.Fatalf("expected 0 for empty requirements, got %d", got)
	}
}

func TestMatchPercentage_PartialCredit(t *testing.T) {
	skills := []Skill{{Name: "React", Score: 80, MaxScore: 100}}
	reqs := []Requirement{
		{Name: "React", Weight: 60, MinScore: 70},
		{Name: "Node.js", Weight: 40, MinScore: 50},
	}
	// React matches: 60 * 0.8 = 48; Node.js missing contributes 0/40.
	if got := MatchPercentage(skills, reqs); got != 48 {
		t.Fatalf("expected 48, got %d", got)
	}
}

func TestMatchPercentage_BelowMinScoreContributesNothing(t *testing.T) {
	skills := []Skill{{Name: "React", Score: 69, MaxScore: 100}}
	reqs := []Requirement{{Name: "React", Weight: 100, MinScore: 70}}
	if got := MatchPercentage(skills, reqs); got != 0 {
		t.Fatalf("expected 0 below min score, got %d", got)
	}
}

func TestMatchPercentage_CaseInsensitiveNames(t *testing.T) {
	skills := []Skill{{Name: "typescript", Score: 90, MaxScore: 100}}
	reqs := []Requirement{{Name: "TypeScript", Weight: 100, MinScore: 50}}
	if got := MatchPercentage(skills, reqs); got != 90 {
		t.Fatalf("expected 90, got %d", got)
	}
}

func TestMatchPercentage_Bounds(t *testing.T) {
	skills := []Skill{
		{Name: "a", Score: 100, MaxScore: 100},
		{Name: "b", Score: 100, MaxScore: 100},
	}
	reqs := []Requirement{
		{Name: "a", Weight: 50, MinScore: 0},
		{Name: "b", Weight: 50, MinScore: 0},
	}
	got := MatchPercentage(skills, reqs)
	if got < 0 || got > 100 {
		t.Fatalf("match %d out of [0,100]", got)
	}
	if got != 100 {
		t.Fatalf("expected perfect match 100, got %d", got)
	}
}

func TestMatchPercentage_MonotonicAboveFloor(t *testing.T) {
	reqs := []Requirement{
		{Name: "Go", Weight: 70, MinScore: 60},
		{Name: "SQL", Weight: 30, MinScore: 40},
	}
	skills := []Skill{
		{Name: "Go", Score: 60, MaxScore: 100},
		{Name: "SQL", Score: 50, MaxScore: 100},
	}
	prev := MatchPercentage(skills, reqs)
	for s := 61; s <= 100; s += 3 {
		skills[0].Score = s
		cur := MatchPercentage(skills, reqs)
		if cur < prev {
			t.Fatalf("match decreased from %d to %d when Go rose to %d", prev, cur, s)
		}
		prev = cur
	}
}

func TestMatchPercentage_DroppingBelowFloorNeverRaises(t *testing.T) {
	reqs := []Requirement{
		{Name: "Go", Weight: 70, MinScore: 60},
		{Name: "SQL", Weight: 30, MinScore: 40},
	}
	above := MatchPercentage([]Skill{
		{Name: "Go", Score: 60, MaxScore: 100},
		{Name: "SQL", Score: 80, MaxScore: 100},
	}, reqs)
	below := MatchPercentage([]Skill{
		{Name: "Go", Score: 59, MaxScore: 100},
		{Name: "SQL", Score: 80, MaxScore: 100},
	}, reqs)
	if below > above {
		t.Fatalf("dropping below min score raised match: %d > %d", below, above)
	}
}

func TestMatchPercentage_MissingSkillDepressesScore(t *testing.T) {
	reqs := []Requirement{
		{Name: "Go", Weight: 50, MinScore: 50},
		{Name: "Kubernetes", Weight: 50, MinScore: 50},
	}
	withBoth := MatchPercentage([]Skill{
		{Name: "Go", Score: 90, MaxScore: 100},
		{Name: "Kubernetes", Score: 90, MaxScore: 100},
	}, reqs)
	withOnlyOne := MatchPercentage([]Skill{
		{Name: "Go", Score: 90, MaxScore: 100},
	}, reqs)
	if withOnlyOne >= withBoth {
		t.Fatalf("missing skill did not depress score: %d >= %d", withOnlyOne, withBoth)
	}
}
