package scoring

import "testing"

func TestComputeSkillGaps_PriorityBoundaries(t *testing.T) {
	cases := []struct {
		current int
		want    Priority
	}{
		{current: 55, want: PriorityHigh},   // gap 10
		{current: 60, want: PriorityMedium}, // gap 5
		{current: 64, want: PriorityLow},    // gap 1
	}
	reqs := []Requirement{{Name: "System Design", MinScore: 65, Weight: 100}}
	for _, tc := range cases {
		gaps := ComputeSkillGaps([]Skill{{Name: "System Design", Score: tc.current, MaxScore: 100}}, reqs)
		if len(gaps) != 1 {
			t.Fatalf("current=%d: expected 1 gap, got %d", tc.current, len(gaps))
		}
		if gaps[0].Priority != tc.want {
			t.Fatalf("current=%d: expected priority %q, got %q", tc.current, tc.want, gaps[0].Priority)
		}
	}
}

func TestComputeSkillGaps_ExcludesNonPositive(t *testing.T) {
	reqs := []Requirement{{Name: "Go", MinScore: 60, Weight: 100}}
	for _, score := range []int{60, 75} {
		gaps := ComputeSkillGaps([]Skill{{Name: "Go", Score: score, MaxScore: 100}}, reqs)
		if len(gaps) != 0 {
			t.Fatalf("score=%d: expected no gaps, got %d", score, len(gaps))
		}
	}
}

func TestComputeSkillGaps_MissingSkillCountsFromZero(t *testing.T) {
	reqs := []Requirement{{Name: "Kubernetes", MinScore: 70, Weight: 100}}
	gaps := ComputeSkillGaps(nil, reqs)
	if len(gaps) != 1 {
		t.Fatalf("expected 1 gap, got %d", len(gaps))
	}
	if gaps[0].CurrentScore != 0 || gaps[0].Gap != 70 {
		t.Fatalf("expected current=0 gap=70, got current=%d gap=%d", gaps[0].CurrentScore, gaps[0].Gap)
	}
	if gaps[0].Priority != PriorityHigh {
		t.Fatalf("expected high priority, got %q", gaps[0].Priority)
	}
}

func TestComputeSkillGaps_SortedDescending(t *testing.T) {
	skills := []Skill{
		{Name: "Go", Score: 62, MaxScore: 100},
		{Name: "SQL", Score: 40, MaxScore: 100},
		{Name: "React", Score: 58, MaxScore: 100},
	}
	reqs := []Requirement{
		{Name: "Go", MinScore: 65},
		{Name: "SQL", MinScore: 70},
		{Name: "React", MinScore: 65},
	}
	gaps := ComputeSkillGaps(skills, reqs)
	if len(gaps) != 3 {
		t.Fatalf("expected 3 gaps, got %d", len(gaps))
	}
	for i := 1; i < len(gaps); i++ {
		if gaps[i].Gap > gaps[i-1].Gap {
			t.Fatalf("gaps not sorted descending: %v", gaps)
		}
	}
	if gaps[0].SkillName != "SQL" {
		t.Fatalf("expected SQL to rank first, got %q", gaps[0].SkillName)
	}
}

func TestTargetGaps(t *testing.T) {
	skills := []Skill{
		{Name: "Node.js", Score: 65, MaxScore: 100, TargetScore: 75},
		{Name: "Git", Score: 90, MaxScore: 100, TargetScore: 80},
	}
	gaps := TargetGaps(skills)
	if len(gaps) != 1 {
		t.Fatalf("expected 1 gap, got %d", len(gaps))
	}
	if gaps[0].SkillName != "Node.js" || gaps[0].Gap != 10 || gaps[0].Priority != PriorityHigh {
		t.Fatalf("unexpected gap: %+v", gaps[0])
	}
}
