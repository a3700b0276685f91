package scoring

import (
	"errors"
	"testing"
)

func TestReadinessIndex_Empty(t *testing.T) {
	got, err := ReadinessIndex(nil)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got != 0 {
		t.Fatalf("expected 0 for empty skills, got %d", got)
	}
}

func TestReadinessIndex_Average(t *testing.T) {
	skills := []Skill{
		{Name: "JavaScript", Score: 80, MaxScore: 100},
		{Name: "React", Score: 60, MaxScore: 100},
	}
	got, err := ReadinessIndex(skills)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got != 70 {
		t.Fatalf("expected 70, got %d", got)
	}
}

func TestReadinessIndex_NonUnitMaxScore(t *testing.T) {
	skills := []Skill{
		{Name: "Go", Score: 5, MaxScore: 10},
		{Name: "SQL", Score: 75, MaxScore: 100},
	}
	// (0.5 + 0.75) / 2 * 100 = 62.5 -> 63
	got, err := ReadinessIndex(skills)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got != 63 {
		t.Fatalf("expected 63, got %d", got)
	}
}

func TestReadinessIndex_InvalidMaxScore(t *testing.T) {
	_, err := ReadinessIndex([]Skill{{Name: "Go", Score: 10, MaxScore: 0}})
	if !errors.Is(err, ErrInvalidSkill) {
		t.Fatalf("expected ErrInvalidSkill, got %v", err)
	}
}

func TestReadinessIndex_Bounds(t *testing.T) {
	cases := [][]Skill{
		{{Name: "a", Score: 0, MaxScore: 100}},
		{{Name: "a", Score: 100, MaxScore: 100}},
		{{Name: "a", Score: 100, MaxScore: 100}, {Name: "b", Score: 0, MaxScore: 100}},
	}
	for i, skills := range cases {
		got, err := ReadinessIndex(skills)
		if err != nil {
			t.Fatalf("case %d: unexpected err: %v", i, err)
		}
		if got < 0 || got > 100 {
			t.Fatalf("case %d: readiness %d out of [0,100]", i, got)
		}
	}
}

func TestReadinessIndex_Monotonic(t *testing.T) {
	base := []Skill{
		{Name: "a", Score: 30, MaxScore: 100},
		{Name: "b", Score: 55, MaxScore: 100},
		{Name: "c", Score: 70, MaxScore: 100},
	}
	prev, err := ReadinessIndex(base)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	for s := 31; s <= 100; s += 7 {
		base[0].Score = s
		cur, err := ReadinessIndex(base)
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if cur < prev {
			t.Fatalf("readiness decreased from %d to %d when score rose to %d", prev, cur, s)
		}
		prev = cur
	}
}
