package query

import (
	"net/url"
	"testing"

	"cardiodash/internal/config"
	"cardiodash/internal/pipeline"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSelection(t *testing.T) {
	values, err := url.ParseQuery("age=18-24&age=25-29,30-34&sex=&smoking=%20No%20")
	require.NoError(t, err)

	req := ParseSelection(values)

	assert.Equal(t, pipeline.Only("18-24", "25-29", "30-34"), req.AgeCategory)
	assert.True(t, req.Sex.Set)
	assert.Empty(t, req.Sex.Values)
	assert.Equal(t, pipeline.Only("No"), req.SmokingHistory)
}

func TestParseSelectionAbsent(t *testing.T) {
	req := ParseSelection(url.Values{})

	assert.Equal(t, pipeline.SelectionRequest{}, req)
}

func TestFromConfig(t *testing.T) {
	req := FromConfig(config.FilterConfig{Sex: []string{"Female"}})

	assert.False(t, req.AgeCategory.Set)
	assert.Equal(t, pipeline.Only("Female"), req.Sex)
	assert.False(t, req.SmokingHistory.Set)
}

func TestEncodeRoundTrip(t *testing.T) {
	req := pipeline.SelectionRequest{
		AgeCategory: pipeline.Only("80+"),
		Sex:         pipeline.FieldFilter{Set: true, Values: []string{}},
	}

	encoded := Encode(req)
	assert.Equal(t, "age=80%2B&sex=", encoded.Encode())
	assert.Equal(t, req, ParseSelection(encoded))
}
