package service

import (
	"context"
	"time"

	"github.com/alexanderramin/surveyforge/internal/config"
	"github.com/alexanderramin/surveyforge/internal/contract"
	"github.com/alexanderramin/surveyforge/internal/domain"
	"github.com/alexanderramin/surveyforge/internal/estimator"
	"github.com/alexanderramin/surveyforge/internal/export"
	"github.com/alexanderramin/surveyforge/internal/prompt"
	"github.com/google/uuid"
)

type generateService struct {
	rate   float64
	policy estimator.DistributionPolicy
	obs    Observer
	now    func() time.Time
}

// NewGenerateService creates a GenerateService using the configured
// estimation policy. A nil observer disables event logging.
func NewGenerateService(cfg config.Config, obs Observer) GenerateService {
	if obs == nil {
		obs = NoopObserver{}
	}
	return &generateService{
		rate:   cfg.Estimator.QuestionsPerMinute,
		policy: cfg.DistributionPolicy(),
		obs:    obs,
		now:    time.Now,
	}
}

func (s *generateService) Generate(ctx context.Context, req contract.GenerateRequest) (*contract.GenerateResult, error) {
	start := s.now()
	survey := req.Survey
	if survey.ID == "" {
		survey.ID = uuid.New().String()
	}
	if survey.CreatedAt.IsZero() {
		survey.CreatedAt = start.UTC()
	}

	result, err := s.generate(&req, &survey)

	event := GenerateEvent{
		RequestID:  survey.DisplayID(),
		LOIMinutes: survey.InterviewLengthMin,
		Detailed:   req.Detailed,
		DurationMs: s.now().Sub(start).Milliseconds(),
		Success:    err == nil,
	}
	if err != nil {
		event.ErrorMsg = err.Error()
	} else {
		event.EstimatedQuestions = result.EstimatedQuestions
	}
	s.obs.OnGenerate(event)

	if err != nil {
		return nil, err
	}
	return result, nil
}

func (s *generateService) generate(req *contract.GenerateRequest, survey *domain.SurveyRequest) (*contract.GenerateResult, error) {
	if err := survey.Validate(); err != nil {
		return nil, err
	}

	estimated, err := estimator.EstimateWithRate(survey.InterviewLengthMin, s.rate)
	if err != nil {
		return nil, err
	}
	dist, err := estimator.EstimateDistributionWithPolicy(survey.InterviewLengthMin, s.policy)
	if err != nil {
		return nil, err
	}

	var text string
	if req.Detailed {
		text, err = prompt.AssembleDetailed(survey, estimated, dist)
	} else {
		text, err = prompt.Assemble(survey, estimated)
	}
	if err != nil {
		return nil, err
	}

	return &contract.GenerateResult{
		Prompt:             text,
		EstimatedQuestions: estimated,
		Distribution:       dist,
		SuggestedFilename:  export.PromptFilename(s.now()),
	}, nil
}
