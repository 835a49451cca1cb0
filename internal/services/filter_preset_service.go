package services

import (
	"cmp"
	"context"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/vytor/seasonrank/internal/errors"
	"github.com/vytor/seasonrank/internal/logger"
	"github.com/vytor/seasonrank/internal/models"
	"github.com/vytor/seasonrank/internal/repository"
)

// FilterPresetService manages saved filter presets
type FilterPresetService interface {
	List(ctx context.Context, presetContext string) ([]models.FilterPreset, error)
	Create(ctx context.Context, preset models.FilterPreset) (*models.FilterPreset, error)
	Update(ctx context.Context, preset models.FilterPreset) (*models.FilterPreset, error)
	Delete(ctx context.Context, id string) error
}

type filterPresetService struct {
	presetRepo repository.FilterPresetRepository
	now        func() time.Time
}

// NewFilterPresetService creates a new FilterPresetService
func NewFilterPresetService(presetRepo repository.FilterPresetRepository) FilterPresetService {
	return &filterPresetService{
		presetRepo: presetRepo,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// SortPresets orders presets pinned first, then by sort order, creation time
// and id.
func SortPresets(presets []models.FilterPreset) {
	slices.SortStableFunc(presets, func(a, b models.FilterPreset) int {
		if a.Pinned != b.Pinned {
			if a.Pinned {
				return -1
			}
			return 1
		}
		if c := cmp.Compare(a.SortOrder, b.SortOrder); c != 0 {
			return c
		}
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
}

func (s *filterPresetService) List(ctx context.Context, presetContext string) ([]models.FilterPreset, error) {
	log := logger.FromContext(ctx)
	presetContext = strings.TrimSpace(presetContext)
	log.Debug("listing filter presets: context=%s", presetContext)

	if presetContext == "" {
		return nil, errors.NewValidationError("context", "cannot be empty")
	}

	presets, err := s.presetRepo.List(ctx, presetContext)
	if err != nil {
		log.Error("failed to list filter presets: %v", err)
		return nil, errors.NewStoreError("list filter presets", err)
	}
	if presets == nil {
		presets = []models.FilterPreset{}
	}
	SortPresets(presets)
	return presets, nil
}

func (s *filterPresetService) Create(ctx context.Context, preset models.FilterPreset) (*models.FilterPreset, error) {
	log := logger.FromContext(ctx)
	log.Debug("creating filter preset: context=%s, label=%s", preset.Context, preset.Label)

	if err := validatePreset(&preset); err != nil {
		return nil, err
	}

	now := s.now()
	preset.ID = uuid.NewString()
	preset.CreatedAt = now
	preset.UpdatedAt = now

	if err := s.presetRepo.Insert(ctx, preset); err != nil {
		log.Error("failed to insert filter preset: %v", err)
		return nil, errors.NewStoreError("create filter preset", err)
	}
	return &preset, nil
}

func (s *filterPresetService) Update(ctx context.Context, preset models.FilterPreset) (*models.FilterPreset, error) {
	log := logger.FromContext(ctx)
	log.Debug("updating filter preset: id=%s", preset.ID)

	if preset.ID == "" {
		return nil, errors.NewValidationError("id", "cannot be empty")
	}
	if err := validatePreset(&preset); err != nil {
		return nil, err
	}

	existing, err := s.presetRepo.Get(ctx, preset.ID)
	if err != nil {
		log.Error("failed to get filter preset: %v", err)
		return nil, errors.NewStoreError("update filter preset", err)
	}
	if existing == nil {
		return nil, errors.NewNotFoundError("filter preset", preset.ID)
	}

	preset.CreatedAt = existing.CreatedAt
	preset.UpdatedAt = s.now()

	found, err := s.presetRepo.Update(ctx, preset)
	if err != nil {
		log.Error("failed to update filter preset: %v", err)
		return nil, errors.NewStoreError("update filter preset", err)
	}
	if !found {
		return nil, errors.NewNotFoundError("filter preset", preset.ID)
	}
	return &preset, nil
}

func (s *filterPresetService) Delete(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)
	log.Debug("deleting filter preset: id=%s", id)

	if id == "" {
		return errors.NewValidationError("id", "cannot be empty")
	}

	found, err := s.presetRepo.Delete(ctx, id)
	if err != nil {
		log.Error("failed to delete filter preset: %v", err)
		return errors.NewStoreError("delete filter preset", err)
	}
	if !found {
		return errors.NewNotFoundError("filter preset", id)
	}
	return nil
}

func validatePreset(p *models.FilterPreset) error {
	p.Context = strings.TrimSpace(p.Context)
	p.Label = strings.TrimSpace(p.Label)
	if p.Context == "" {
		return errors.NewValidationError("context", "cannot be empty")
	}
	if p.Label == "" {
		return errors.NewValidationError("label", "cannot be empty")
	}
	return nil
}
