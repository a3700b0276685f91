package handler

import (
	"errors"

	"talent-match/internal/delivery/http/dto"
	"talent-match/internal/delivery/http/middleware"
	"talent-match/internal/domain/assessment"
	"talent-match/internal/pkg/response"
	"talent-match/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type AssessmentHandler struct {
	uc usecase.AssessmentUsecase
}

type submitQuizRequest struct {
	SkillID        uuid.UUID `json:"skill_id"`
	Answers        []int     `json:"answers"`
	CorrectOptions []int     `json:"correct_options"`
}

type completeEventRequest struct {
	EventType      string            `json:"event_type"`
	Answers        map[string]string `json:"answers"`
	Reflection     string            `json:"reflection"`
	RelevantSkills []string          `json:"relevant_skills"`
}

func NewAssessmentHandler(uc usecase.AssessmentUsecase) *AssessmentHandler {
	return &AssessmentHandler{uc: uc}
}

func (h *AssessmentHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/events/:type/questions", h.EventQuestions)
	r.Post("/quiz", h.SubmitQuiz)
	r.Post("/events", h.CompleteEvent)
}

func (h *AssessmentHandler) EventQuestions(c fiber.Ctx) error {
	questions := h.uc.SurveyQuestions(c.Params("type"))

	res := make([]dto.SurveyQuestionResponse, 0, len(questions))
	for _, q := range questions {
		opts := make([]dto.SurveyOptionResponse, 0, len(q.Options))
		for _, opt := range q.Options {
			opts = append(opts, dto.SurveyOptionResponse{Value: opt.Value, Label: opt.Label})
		}
		res = append(res, dto.SurveyQuestionResponse{ID: q.ID, Prompt: q.Prompt, Options: opts})
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}

func (h *AssessmentHandler) SubmitQuiz(c fiber.Ctx) error {
	candidateID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var req submitQuizRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	result, err := h.uc.SubmitQuiz(c.Context(), candidateID, req.SkillID, assessment.QuizSession{
		Answers:        req.Answers,
		CorrectOptions: req.CorrectOptions,
	})
	if err != nil {
		return mapAssessmentUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.QuizResultResponse{
		Skill:    toCandidateSkillResponse(result.Skill),
		Correct:  result.Correct,
		Total:    result.Total,
		NewScore: result.NewScore,
	})
}

func (h *AssessmentHandler) CompleteEvent(c fiber.Ctx) error {
	candidateID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var req completeEventRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	questions := h.uc.SurveyQuestions(req.EventType)
	points, ok := assessment.PointsForAnswers(questions, req.Answers)
	if !ok {
		return middleware.NewAppError(fiber.StatusBadRequest, "Answers do not match the survey", nil, nil)
	}

	result, err := h.uc.CompleteEvent(c.Context(), candidateID, assessment.EventSurvey{
		AnswerPoints:   points,
		Reflection:     req.Reflection,
		RelevantSkills: req.RelevantSkills,
	})
	if err != nil {
		return mapAssessmentUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.EventResultResponse{
		Skills:        toCandidateSkillResponses(result.Skills),
		AffectedNames: result.AffectedNames,
		OldReadiness:  result.OldReadiness,
		NewReadiness:  result.NewReadiness,
	})
}

func mapAssessmentUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrEmptyAssessment):
		return middleware.NewAppError(fiber.StatusBadRequest, "Assessment has no questions", nil, err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	case errors.Is(err, usecase.ErrSkillNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Skill not found", nil, err)
	case errors.Is(err, usecase.ErrNoRelevantSkills):
		return middleware.NewAppError(fiber.StatusUnprocessableEntity, "Event matches none of your skills", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, "", nil, err)
	}
}
