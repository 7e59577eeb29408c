package app

import (
	"context"
	"os"
	"testing"

	"cardiodash/domain/cardio"
	"cardiodash/internal/errors"
	"cardiodash/internal/pipeline"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockDatasetLoader struct {
	mock.Mock
}

func (m *MockDatasetLoader) Load(ctx context.Context) (*cardio.Dataset, error) {
	args := m.Called(ctx)
	ds, _ := args.Get(0).(*cardio.Dataset)
	return ds, args.Error(1)
}

func survey() *cardio.Dataset {
	return cardio.NewDataset([]cardio.Record{
		{AgeCategory: "18-24", Sex: "Male", SmokingHistory: "No", HeartDisease: "No", Checkup: "Never", BMI: 22},
		{AgeCategory: "80+", Sex: "Female", SmokingHistory: "Yes", HeartDisease: "Yes", Checkup: "Never", BMI: 30},
	})
}

func TestSummarizeAppliesDefaultsThenOverride(t *testing.T) {
	loader := &MockDatasetLoader{}
	loader.On("Load", mock.Anything).Return(survey(), nil)

	service := NewDashboardService(loader, pipeline.SelectionRequest{Sex: pipeline.Only("Female")}, pipeline.DefaultOptions())

	summary, err := service.Summarize(context.Background(), pipeline.SelectionRequest{})
	require.NoError(t, err)
	assert.Equal(t, 1, summary.KPIs.Total)
	assert.Equal(t, 100.0, summary.KPIs.HeartDiseaseRate)

	summary, err = service.Summarize(context.Background(), pipeline.SelectionRequest{Sex: pipeline.Only("Male", "Female")})
	require.NoError(t, err)
	assert.Equal(t, 2, summary.KPIs.Total)

	loader.AssertNumberOfCalls(t, "Load", 2)
}

func TestChoices(t *testing.T) {
	loader := &MockDatasetLoader{}
	loader.On("Load", mock.Anything).Return(survey(), nil)

	choices, err := NewDashboardService(loader, pipeline.SelectionRequest{SmokingHistory: pipeline.Only("No")}, pipeline.DefaultOptions()).
		Choices(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"18-24", "80+"}, choices.Options.AgeCategory)
	assert.Equal(t, []string{"No", "Yes"}, choices.Options.SmokingHistory)
	assert.Equal(t, []string{"No"}, choices.Defaults.SmokingHistory)
	assert.Equal(t, []string{"Female", "Male"}, choices.Defaults.Sex)
}

func TestSummarizePropagatesLoadFailure(t *testing.T) {
	loader := &MockDatasetLoader{}
	loader.On("Load", mock.Anything).Return(nil, errors.DataUnavailable("survey.csv", os.ErrNotExist))

	_, err := NewDashboardService(loader, pipeline.SelectionRequest{}, pipeline.DefaultOptions()).
		Summarize(context.Background(), pipeline.SelectionRequest{})

	require.Error(t, err)
	assert.True(t, errors.IsDataUnavailable(err))
}
