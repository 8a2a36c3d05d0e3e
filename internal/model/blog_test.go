package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBlogResponseDropsInternalFields(t *testing.T) {
	blog := &Blog{
		ID:        "5a422a851b54a676234d17f7",
		Title:     "React patterns",
		Author:    "Michael Chan",
		URL:       "https://reactpatterns.com/",
		Likes:     7,
		Version:   3,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	body, err := json.Marshal(NewBlogResponse(blog))
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(body, &fields))

	assert.Equal(t, "5a422a851b54a676234d17f7", fields["id"])
	assert.Equal(t, "React patterns", fields["title"])
	assert.Equal(t, float64(7), fields["likes"])
	assert.Len(t, fields, 5)
	for _, internal := range []string{"_id", "__v", "version", "created_at", "updated_at"} {
		assert.NotContains(t, fields, internal)
	}
}

func TestNewBlogResponsesNeverNil(t *testing.T) {
	responses := NewBlogResponses(nil)
	require.NotNil(t, responses)

	body, err := json.Marshal(responses)
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(body))
}

func TestLikesOrDefault(t *testing.T) {
	var in BlogInput
	require.NoError(t, json.Unmarshal([]byte(`{"title":"t","author":"a","url":"u"}`), &in))
	assert.Equal(t, 0, in.LikesOrDefault())

	require.NoError(t, json.Unmarshal([]byte(`{"likes":12}`), &in))
	assert.Equal(t, 12, in.LikesOrDefault())
}
