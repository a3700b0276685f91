package assessment

import (
	"errors"
	"strings"
	"testing"
)

func TestResolveQuiz_CountsExactMatches(t *testing.T) {
	out, err := ResolveQuiz(QuizSession{
		Answers:        []int{0, 2, 1, 3},
		CorrectOptions: []int{0, 2, 2, 3},
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if out.Correct != 3 || out.Total != 4 {
		t.Fatalf("expected 3/4, got %d/%d", out.Correct, out.Total)
	}
}

func TestResolveQuiz_EmptySession(t *testing.T) {
	_, err := ResolveQuiz(QuizSession{})
	if !errors.Is(err, ErrEmptySession) {
		t.Fatalf("expected ErrEmptySession, got %v", err)
	}
}

func TestResolveQuiz_AnswerCountMismatch(t *testing.T) {
	_, err := ResolveQuiz(QuizSession{
		Answers:        []int{0},
		CorrectOptions: []int{0, 1},
	})
	if !errors.Is(err, ErrAnswerCount) {
		t.Fatalf("expected ErrAnswerCount, got %v", err)
	}
}

func TestResolveEventSurvey_MaxPossible(t *testing.T) {
	out, err := ResolveEventSurvey(EventSurvey{
		AnswerPoints:   []int{3, 3, 3},
		Reflection:     strings.Repeat("a", 60),
		RelevantSkills: []string{"React"},
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if out.MaxPossiblePoints != 11 {
		t.Fatalf("expected max possible 3*3+2=11, got %d", out.MaxPossiblePoints)
	}
	if out.RawPoints != 11 {
		t.Fatalf("expected raw 11, got %d", out.RawPoints)
	}
}

func TestResolveEventSurvey_ReflectionBonusThresholds(t *testing.T) {
	cases := []struct {
		length int
		bonus  int
	}{
		{length: 0, bonus: 0},
		{length: 20, bonus: 0},
		{length: 21, bonus: 1},
		{length: 50, bonus: 1},
		{length: 51, bonus: 2},
	}
	for _, tc := range cases {
		out, err := ResolveEventSurvey(EventSurvey{
			AnswerPoints: []int{2, 2, 2},
			Reflection:   strings.Repeat("x", tc.length),
		})
		if err != nil {
			t.Fatalf("length=%d: unexpected err: %v", tc.length, err)
		}
		if got := out.RawPoints - 6; got != tc.bonus {
			t.Fatalf("length=%d: expected bonus %d, got %d", tc.length, tc.bonus, got)
		}
	}
}

func TestResolveEventSurvey_EmptySession(t *testing.T) {
	_, err := ResolveEventSurvey(EventSurvey{Reflection: "long enough reflection text"})
	if !errors.Is(err, ErrEmptySession) {
		t.Fatalf("expected ErrEmptySession, got %v", err)
	}
}

func TestResolveEventSurvey_RejectsOffRubricPoints(t *testing.T) {
	for _, p := range []int{0, 4, -2} {
		_, err := ResolveEventSurvey(EventSurvey{AnswerPoints: []int{2, p}})
		if !errors.Is(err, ErrInvalidPoints) {
			t.Fatalf("points=%d: expected ErrInvalidPoints, got %v", p, err)
		}
	}
}

func TestSurveyQuestions_BaseAndTypeSpecific(t *testing.T) {
	if got := len(SurveyQuestions("webinar")); got != 3 {
		t.Fatalf("expected 3 base questions for unknown type, got %d", got)
	}
	for _, typ := range []string{EventWorkshop, EventBootcamp, EventHackathon} {
		qs := SurveyQuestions(typ)
		if len(qs) != 4 {
			t.Fatalf("%s: expected 4 questions, got %d", typ, len(qs))
		}
		for _, q := range qs {
			for _, opt := range q.Options {
				if opt.Points < 1 || opt.Points > 3 {
					t.Fatalf("%s/%s: option %q has off-rubric points %d", typ, q.ID, opt.Value, opt.Points)
				}
			}
		}
	}
}

func TestPointsForAnswers(t *testing.T) {
	qs := SurveyQuestions(EventWorkshop)
	answers := map[string]string{
		"engagement":    "active",
		"understanding": "good",
		"application":   "with_help",
		"hands_on":      "completed",
	}
	points, ok := PointsForAnswers(qs, answers)
	if !ok {
		t.Fatalf("expected answers to resolve")
	}
	want := []int{3, 2, 2, 3}
	for i := range want {
		if points[i] != want[i] {
			t.Fatalf("question %d: expected %d points, got %d", i, want[i], points[i])
		}
	}

	answers["hands_on"] = "skipped"
	if _, ok := PointsForAnswers(qs, answers); ok {
		t.Fatalf("expected unknown option value to be rejected")
	}
}
