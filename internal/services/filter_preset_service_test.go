package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/vytor/seasonrank/internal/errors"
	"github.com/vytor/seasonrank/internal/models"
	"github.com/vytor/seasonrank/internal/testutil/mocks"
)

var presetClock = time.Date(2024, 6, 2, 9, 30, 0, 0, time.UTC)

func newFilterPresetService() (*filterPresetService, *mocks.MockFilterPresetRepository) {
	repo := new(mocks.MockFilterPresetRepository)
	svc := NewFilterPresetService(repo).(*filterPresetService)
	svc.now = func() time.Time { return presetClock }
	return svc, repo
}

func TestSortPresets(t *testing.T) {
	t1 := presetClock
	t2 := t1.Add(time.Minute)
	t3 := t2.Add(time.Minute)
	presets := []models.FilterPreset{
		{ID: "row1", Pinned: false, SortOrder: 2, CreatedAt: t1},
		{ID: "row2", Pinned: true, SortOrder: 1, CreatedAt: t2},
		{ID: "row3", Pinned: true, SortOrder: 0, CreatedAt: t3},
	}

	SortPresets(presets)

	assert.Equal(t, []string{"row3", "row2", "row1"}, []string{presets[0].ID, presets[1].ID, presets[2].ID})
}

func TestSortPresets_TieBreaks(t *testing.T) {
	presets := []models.FilterPreset{
		{ID: "b", SortOrder: 1, CreatedAt: presetClock},
		{ID: "c", SortOrder: 1, CreatedAt: presetClock.Add(-time.Hour)},
		{ID: "a", SortOrder: 1, CreatedAt: presetClock},
	}

	SortPresets(presets)

	assert.Equal(t, []string{"c", "a", "b"}, []string{presets[0].ID, presets[1].ID, presets[2].ID})
}

func TestFilterPresetService_List(t *testing.T) {
	svc, repo := newFilterPresetService()
	repo.On("List", mock.Anything, "tournament_success").Return([]models.FilterPreset{
		{ID: "x", SortOrder: 5},
		{ID: "y", Pinned: true, SortOrder: 9},
	}, nil)

	presets, err := svc.List(context.Background(), " tournament_success ")

	require.NoError(t, err)
	require.Len(t, presets, 2)
	assert.Equal(t, "y", presets[0].ID)
	repo.AssertExpectations(t)
}

func TestFilterPresetService_ListEmpty(t *testing.T) {
	svc, repo := newFilterPresetService()
	repo.On("List", mock.Anything, "nothing").Return(nil, nil)

	presets, err := svc.List(context.Background(), "nothing")

	require.NoError(t, err)
	assert.NotNil(t, presets)
	assert.Empty(t, presets)

	_, err = svc.List(context.Background(), "")
	assert.True(t, errors.IsValidation(err))
}

func TestFilterPresetService_Create(t *testing.T) {
	svc, repo := newFilterPresetService()
	repo.On("Insert", mock.Anything, mock.MatchedBy(func(p models.FilterPreset) bool {
		_, err := uuid.Parse(p.ID)
		return err == nil && p.Label == "Top 10" && p.Pinned && p.SortOrder == 3 && p.CreatedAt.Equal(presetClock)
	})).Return(nil)

	created, err := svc.Create(context.Background(), models.FilterPreset{
		Context:   "tournament_success",
		Label:     " Top 10 ",
		Pinned:    true,
		SortOrder: 3,
	})

	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, presetClock, created.UpdatedAt)
	repo.AssertExpectations(t)
}

func TestFilterPresetService_CreateValidation(t *testing.T) {
	svc, repo := newFilterPresetService()

	_, err := svc.Create(context.Background(), models.FilterPreset{Label: "x"})
	assert.True(t, errors.IsValidation(err))

	_, err = svc.Create(context.Background(), models.FilterPreset{Context: "c"})
	assert.True(t, errors.IsValidation(err))

	repo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}

func TestFilterPresetService_Update(t *testing.T) {
	svc, repo := newFilterPresetService()
	original := presetClock.Add(-24 * time.Hour)
	repo.On("Get", mock.Anything, "p1").Return(&models.FilterPreset{ID: "p1", CreatedAt: original}, nil)
	repo.On("Update", mock.Anything, mock.MatchedBy(func(p models.FilterPreset) bool {
		return p.ID == "p1" && p.Pinned && p.SortOrder == 0 && p.CreatedAt.Equal(original) && p.UpdatedAt.Equal(presetClock)
	})).Return(true, nil)

	updated, err := svc.Update(context.Background(), models.FilterPreset{ID: "p1", Context: "c", Label: "l", Pinned: true})

	require.NoError(t, err)
	assert.Equal(t, original, updated.CreatedAt)
	repo.AssertExpectations(t)
}

func TestFilterPresetService_UpdateMissing(t *testing.T) {
	svc, repo := newFilterPresetService()
	repo.On("Get", mock.Anything, "gone").Return(nil, nil)

	_, err := svc.Update(context.Background(), models.FilterPreset{ID: "gone", Context: "c", Label: "l"})

	assert.True(t, errors.IsNotFound(err))
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestFilterPresetService_Delete(t *testing.T) {
	svc, repo := newFilterPresetService()
	repo.On("Delete", mock.Anything, "p1").Return(true, nil)
	repo.On("Delete", mock.Anything, "p2").Return(false, nil)
	repo.On("Delete", mock.Anything, "p3").Return(false, fmt.Errorf("disk full"))

	assert.NoError(t, svc.Delete(context.Background(), "p1"))
	assert.True(t, errors.IsNotFound(svc.Delete(context.Background(), "p2")))
	assert.True(t, errors.IsStore(svc.Delete(context.Background(), "p3")))
}
