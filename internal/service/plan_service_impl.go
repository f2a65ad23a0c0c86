package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/focuscoach/internal/domain"
	"github.com/alexanderramin/focuscoach/internal/focus"
)

type planService struct {
	focus    *focus.Manager
	observer UseCaseObserver
}

func NewPlanService(manager *focus.Manager, observers ...UseCaseObserver) PlanService {
	return &planService{focus: manager, observer: useCaseObserverOrNoop(observers)}
}

func (s *planService) CreatePlan(ctx context.Context, task string, profile domain.UserProfile) (plan *domain.PlanResult, err error) {
	fields := map[string]any{"task_type": profile.TaskType}
	defer observe(ctx, s.observer, "create-plan", time.Now(), fields, &err)

	task = strings.TrimSpace(task)
	if task == "" {
		return nil, ErrEmptyTask
	}
	result := s.focus.CreatePersonalizedPlan(task, profile)
	fields["technique"] = string(result.Technique)
	return &result, nil
}

func (s *planService) Techniques() []domain.TechniqueEntry {
	return focus.Techniques()
}

// Technique returns a catalog entry. Valid identifiers without an entry are
// reported as unknown too.
func (s *planService) Technique(id domain.TechniqueID) (domain.TechniqueEntry, error) {
	entry, ok := s.focus.GetTechniqueInfo(id)
	if !ok {
		return domain.TechniqueEntry{}, fmt.Errorf("%q: %w", id, ErrUnknownTechnique)
	}
	return entry, nil
}

// Suggest returns the entry for the suggested technique. Every suggestion
// has a catalog entry.
func (s *planService) Suggest(taskType string, prefs domain.Preferences) domain.TechniqueEntry {
	id := s.focus.SuggestTechnique(taskType, prefs)
	entry, _ := s.focus.GetTechniqueInfo(id)
	return entry
}

func (s *planService) Accommodations(challenge string) []string {
	return s.focus.GetAccommodations(challenge)
}

func (s *planService) SensoryTips(needs []string) []string {
	return s.focus.GetSensoryTips(needs)
}

func (s *planService) Encouragement(mood domain.Mood) string {
	return s.focus.GetEncouragement(mood)
}
