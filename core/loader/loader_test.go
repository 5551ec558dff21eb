package loader_test

import (
	"errors"
	"testing"

	"sync-actions/core/loader"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockFeature struct {
	mock.Mock
}

func (m *mockFeature) Name() string {
	return m.Called().String(0)
}

func (m *mockFeature) IsEnabled() bool {
	return m.Called().Bool(0)
}

func (m *mockFeature) Load(app fiber.Router) error {
	return m.Called(app).Error(0)
}

func TestManager_LoadAll(t *testing.T) {
	app := fiber.New()

	enabled := new(mockFeature)
	enabled.On("Name").Return("enabled")
	enabled.On("IsEnabled").Return(true)
	enabled.On("Load", app).Return(nil).Once()

	disabled := new(mockFeature)
	disabled.On("Name").Return("disabled")
	disabled.On("IsEnabled").Return(false)

	mgr := loader.NewManager(nil)
	mgr.Register(enabled)
	mgr.Register(disabled)

	assert.Len(t, mgr.Features(), 2)
	assert.NoError(t, mgr.LoadAll(app))

	enabled.AssertExpectations(t)
	disabled.AssertNotCalled(t, "Load", mock.Anything)
}

func TestManager_LoadAllError(t *testing.T) {
	app := fiber.New()

	broken := new(mockFeature)
	broken.On("Name").Return("broken")
	broken.On("IsEnabled").Return(true)
	broken.On("Load", app).Return(errors.New("boom"))

	mgr := loader.NewManager(nil)
	mgr.Register(broken)

	err := mgr.LoadAll(app)
	assert.ErrorContains(t, err, "failed to load feature broken: boom")
}
