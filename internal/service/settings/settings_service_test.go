package settings

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockSettingsRepository struct {
	mock.Mock
}

func (m *MockSettingsRepository) GetPricingLevel(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockSettingsRepository) UpdatePricingLevel(ctx context.Context, level int) error {
	args := m.Called(ctx, level)
	return args.Error(0)
}

type MockCache struct {
	mock.Mock
}

func (m *MockCache) GetPricingLevel(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockCache) SetPricingLevel(ctx context.Context, level int) error {
	args := m.Called(ctx, level)
	return args.Error(0)
}

func (m *MockCache) InvalidatePricingLevel(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func TestSettingsService_CurrentPricingLevel_CacheHit(t *testing.T) {
	mockRepo := &MockSettingsRepository{}
	mockCache := &MockCache{}
	service := NewSettingsService(mockRepo, mockCache, 3, nil)

	ctx := context.Background()
	mockCache.On("GetPricingLevel", ctx).Return(7, nil).Once()

	level, err := service.CurrentPricingLevel(ctx)

	assert.NoError(t, err)
	assert.Equal(t, 7, level)
	mockCache.AssertExpectations(t)
	mockRepo.AssertNotCalled(t, "GetPricingLevel")
}

func TestSettingsService_CurrentPricingLevel_CacheMiss(t *testing.T) {
	mockRepo := &MockSettingsRepository{}
	mockCache := &MockCache{}
	service := NewSettingsService(mockRepo, mockCache, 3, nil)

	ctx := context.Background()
	mockCache.On("GetPricingLevel", ctx).Return(0, nil).Once()
	mockRepo.On("GetPricingLevel", ctx).Return(6, nil).Once()
	mockCache.On("SetPricingLevel", ctx, 6).Return(nil).Once()

	level, err := service.CurrentPricingLevel(ctx)

	assert.NoError(t, err)
	assert.Equal(t, 6, level)
	mockCache.AssertExpectations(t)
	mockRepo.AssertExpectations(t)
}

func TestSettingsService_CurrentPricingLevel_DefaultsWhenAbsent(t *testing.T) {
	mockRepo := &MockSettingsRepository{}
	service := NewSettingsService(mockRepo, nil, 3, nil)

	ctx := context.Background()
	mockRepo.On("GetPricingLevel", ctx).Return(0, errors.New("no rows")).Once()

	level, err := service.CurrentPricingLevel(ctx)

	// A missing settings record is not an error for searches.
	assert.NoError(t, err)
	assert.Equal(t, 3, level)
	mockRepo.AssertExpectations(t)
}

func TestSettingsService_CurrentPricingLevel_RejectsGarbageLevel(t *testing.T) {
	mockRepo := &MockSettingsRepository{}
	service := NewSettingsService(mockRepo, nil, 3, nil)

	ctx := context.Background()
	mockRepo.On("GetPricingLevel", ctx).Return(42, nil).Once()

	level, err := service.CurrentPricingLevel(ctx)

	assert.NoError(t, err)
	assert.Equal(t, 3, level)
}

func TestSettingsService_UpdatePricingLevel(t *testing.T) {
	mockRepo := &MockSettingsRepository{}
	mockCache := &MockCache{}
	service := NewSettingsService(mockRepo, mockCache, 3, nil)

	ctx := context.Background()
	mockRepo.On("UpdatePricingLevel", ctx, 9).Return(nil).Once()
	mockCache.On("InvalidatePricingLevel", ctx).Return(nil).Once()

	err := service.UpdatePricingLevel(ctx, 9)

	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
	mockCache.AssertExpectations(t)
}

func TestSettingsService_UpdatePricingLevel_OutOfRange(t *testing.T) {
	mockRepo := &MockSettingsRepository{}
	service := NewSettingsService(mockRepo, nil, 3, nil)

	ctx := context.Background()
	for _, level := range []int{0, -1, 11} {
		err := service.UpdatePricingLevel(ctx, level)
		assert.Error(t, err)
	}
	mockRepo.AssertNotCalled(t, "UpdatePricingLevel")
}
