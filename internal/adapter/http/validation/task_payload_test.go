package validation

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nestodo/internal/adapter/http/dto"
	"nestodo/internal/core/domain"
)

func decodeUpdate(t *testing.T, body string) (dto.UpdateTaskRequest, map[string]json.RawMessage) {
	t.Helper()
	var req dto.UpdateTaskRequest
	require.NoError(t, json.Unmarshal([]byte(body), &req))
	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal([]byte(body), &raw))
	return req, raw
}

func TestBuildCreateTaskInput_TrimsTitle(t *testing.T) {
	priority := "LOW"
	input, err := BuildCreateTaskInput(dto.CreateTaskRequest{Title: "  Write  ", TaskListID: 4, Priority: &priority})
	require.NoError(t, err)
	assert.Equal(t, "Write", input.Title)
	assert.Equal(t, uint64(4), input.TaskListID)
	assert.Equal(t, domain.TaskPriorityLow, *input.Priority)
}

func TestBuildCreateTaskInput_RejectsBlankTitle(t *testing.T) {
	_, err := BuildCreateTaskInput(dto.CreateTaskRequest{Title: "   ", TaskListID: 4})
	assert.ErrorIs(t, err, ErrInvalidPayload)
}

func TestBuildUpdateTaskInput_NullClearsField(t *testing.T) {
	req, raw := decodeUpdate(t, `{"description": null, "duration": null}`)

	input, err := BuildUpdateTaskInput(req, raw)
	require.NoError(t, err)
	assert.True(t, input.DescriptionSet)
	assert.Nil(t, input.Description)
	assert.True(t, input.DurationSet)
	assert.Nil(t, input.Duration)
	assert.False(t, input.PrioritySet)
	assert.False(t, input.TagsSet)
}

func TestBuildUpdateTaskInput_Tags(t *testing.T) {
	req, raw := decodeUpdate(t, `{"tags": ["urgent", "home"]}`)

	input, err := BuildUpdateTaskInput(req, raw)
	require.NoError(t, err)
	assert.True(t, input.TagsSet)
	assert.Equal(t, []string{"urgent", "home"}, input.Tags)

	req, raw = decodeUpdate(t, `{"tags": null}`)
	input, err = BuildUpdateTaskInput(req, raw)
	require.NoError(t, err)
	assert.True(t, input.TagsSet)
	assert.Empty(t, input.Tags)
}

func TestBuildUpdateTaskInput_Rejects(t *testing.T) {
	tests := map[string]string{
		"empty body":     `{}`,
		"unknown only":   `{"status": "done"}`,
		"null title":     `{"title": null}`,
		"blank title":    `{"title": "  "}`,
		"null completed": `{"completed": null}`,
	}

	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			req, raw := decodeUpdate(t, body)
			_, err := BuildUpdateTaskInput(req, raw)
			assert.ErrorIs(t, err, ErrInvalidPayload)
		})
	}
}

func TestBuildUpdateSubtaskInput(t *testing.T) {
	var req dto.UpdateSubtaskRequest
	body := `{"completed": true}`
	require.NoError(t, json.Unmarshal([]byte(body), &req))
	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal([]byte(body), &raw))

	input, err := BuildUpdateSubtaskInput(req, raw)
	require.NoError(t, err)
	assert.Nil(t, input.Title)
	assert.True(t, *input.Completed)

	_, err = BuildUpdateSubtaskInput(dto.UpdateSubtaskRequest{}, map[string]json.RawMessage{})
	assert.ErrorIs(t, err, ErrInvalidPayload)
}
