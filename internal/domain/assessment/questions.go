package assessment

// Event types whose completion surveys carry an extra type-specific
// question on top of the shared base set.
const (
	EventWorkshop  = "workshop"
	EventBootcamp  = "bootcamp"
	EventHackathon = "hackathon"
)

type Option struct {
	Value  string
	Label  string
	Points int
}

type Question struct {
	ID      string
	Prompt  string
	Options []Option
}

// SurveyQuestions returns the fixed rubric for an event-completion survey:
// three base questions covering participation, understanding and
// applicability, plus one extra question for known event types. Every
// option is worth 1-3 points.
func SurveyQuestions(eventType string) []Question {
	qs := []Question{
		{
			ID:     "engagement",
			Prompt: "How actively did you participate?",
			Options: []Option{
				{Value: "passive", Label: "Mostly observed", Points: 1},
				{Value: "moderate", Label: "Participated in discussions", Points: 2},
				{Value: "active", Label: "Actively contributed and practiced", Points: 3},
			},
		},
		{
			ID:     "understanding",
			Prompt: "How well do you understand the concepts covered?",
			Options: []Option{
				{Value: "basic", Label: "Basic understanding", Points: 1},
				{Value: "good", Label: "Good understanding, need more practice", Points: 2},
				{Value: "excellent", Label: "Excellent understanding, can apply immediately", Points: 3},
			},
		},
		{
			ID:     "application",
			Prompt: "Can you apply what you learned to real projects?",
			Options: []Option{
				{Value: "not_yet", Label: "Need more learning first", Points: 1},
				{Value: "with_help", Label: "Yes, with some guidance", Points: 2},
				{Value: "independently", Label: "Yes, independently", Points: 3},
			},
		},
	}

	switch eventType {
	case EventHackathon:
		qs = append(qs, Question{
			ID:     "project",
			Prompt: "Did you complete a project during the hackathon?",
			Options: []Option{
				{Value: "no", Label: "Started but did not finish", Points: 1},
				{Value: "partial", Label: "Completed a basic version", Points: 2},
				{Value: "full", Label: "Completed with extra features", Points: 3},
			},
		})
	case EventBootcamp:
		qs = append(qs, Question{
			ID:     "exercises",
			Prompt: "How many exercises did you complete?",
			Options: []Option{
				{Value: "some", Label: "Less than half", Points: 1},
				{Value: "most", Label: "More than half", Points: 2},
				{Value: "all", Label: "All of them", Points: 3},
			},
		})
	case EventWorkshop:
		qs = append(qs, Question{
			ID:     "hands_on",
			Prompt: "Did you complete the hands-on exercises?",
			Options: []Option{
				{Value: "watched", Label: "Only watched the demo", Points: 1},
				{Value: "tried", Label: "Tried some exercises", Points: 2},
				{Value: "completed", Label: "Completed all exercises", Points: 3},
			},
		})
	}

	return qs
}

// PointsForAnswers maps selected option values back to rubric points, in
// question order. Unknown question ids or option values are rejected by
// returning false.
func PointsForAnswers(questions []Question, answers map[string]string) ([]int, bool) {
	points := make([]int, 0, len(questions))
	for _, q := range questions {
		val, ok := answers[q.ID]
		if !ok {
			return nil, false
		}
		found := false
		for _, opt := range q.Options {
			if opt.Value == val {
				points = append(points, opt.Points)
				found = true
				break
			}
		}
		if !found {
			return nil, false
		}
	}
	return points, true
}
