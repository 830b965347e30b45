package handler

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormTypes_JSON(t *testing.T) {
	var req struct {
		Published optBool    `json:"published"`
		Rating    optInt     `json:"rating"`
		Tags      stringList `json:"tags"`
		Specs     stringMap  `json:"specs"`
		Date      optDate    `json:"date"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{
		"published": "true",
		"rating": 4,
		"tags": ["export", " rice "],
		"specs": "{\"origin\":\"India\"}",
		"date": "2024-03-01"
	}`), &req))

	require.NotNil(t, req.Published.ptr())
	assert.True(t, *req.Published.ptr())
	assert.Equal(t, 4, *req.Rating.ptr())
	assert.Equal(t, []string{"export", "rice"}, []string(req.Tags))
	assert.Equal(t, "India", req.Specs["origin"])
	require.NotNil(t, req.Date.t)
	assert.Equal(t, 2024, req.Date.t.Year())
}

func TestFormTypes_Params(t *testing.T) {
	var b optBool
	require.NoError(t, b.UnmarshalParam("false"))
	require.NotNil(t, b.ptr())
	assert.False(t, *b.ptr())

	var unset optBool
	assert.Nil(t, unset.ptr())

	var l stringList
	require.NoError(t, l.UnmarshalParam("a, b,,c"))
	assert.Equal(t, []string{"a", "b", "c"}, []string(l))

	var m stringMap
	require.Error(t, m.UnmarshalParam("{not json"))

	var d optDate
	require.Error(t, d.UnmarshalParam("yesterday"))
}
