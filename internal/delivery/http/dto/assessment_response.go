package dto

type SurveyOptionResponse struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type SurveyQuestionResponse struct {
	ID      string                 `json:"id"`
	Prompt  string                 `json:"prompt"`
	Options []SurveyOptionResponse `json:"options"`
}

type QuizResultResponse struct {
	Skill    CandidateSkillResponse `json:"skill"`
	Correct  int                    `json:"correct"`
	Total    int                    `json:"total"`
	NewScore int                    `json:"new_score"`
}

type EventResultResponse struct {
	Skills        []CandidateSkillResponse `json:"skills"`
	AffectedNames []string                 `json:"affected_skills"`
	OldReadiness  int                      `json:"old_readiness"`
	NewReadiness  int                      `json:"new_readiness"`
}
