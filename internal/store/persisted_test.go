package store

import (
	"encoding/json"
	"testing"

	"github.com/alexanderramin/wcagcheck/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeState_Layout(t *testing.T) {
	st := domain.ProgressState{
		Language:     domain.LangNL,
		ActiveLevels: map[domain.Level]bool{domain.LevelAAA: true, domain.LevelA: true},
		ActiveRoles:  map[domain.Role]bool{domain.RoleContent: true},
		CompletedIDs: map[string]bool{"z": true, "a": true},
		ExpandedID:   "a",
		Label:        "site",
	}
	data, err := EncodeState(st)
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"language": "nl",
		"activeLevels": ["A", "AAA"],
		"activeRoles": ["Content"],
		"completedRules": ["a", "z"],
		"websiteName": "site"
	}`, string(data))
}

func TestEncodeState_EmptySetsAreArrays(t *testing.T) {
	st := domain.ProgressState{Language: domain.LangEN}
	data, err := EncodeState(st)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Equal(t, []any{}, raw["activeLevels"])
	assert.Equal(t, []any{}, raw["activeRoles"])
	assert.Equal(t, []any{}, raw["completedRules"])
}

func TestDecodeState_DeduplicatesCompleted(t *testing.T) {
	st, notes, err := DecodeState([]byte(`{"completedRules":["a","b","a",""]}`))
	require.NoError(t, err)
	assert.Empty(t, notes)
	assert.Equal(t, []string{"a", "b"}, st.CompletedList())
}

func TestDecodeState_MissingFieldsKeepDefaults(t *testing.T) {
	st, _, err := DecodeState([]byte(`{"websiteName":"only-label"}`))
	require.NoError(t, err)

	def := domain.DefaultProgressState()
	assert.Equal(t, def.Language, st.Language)
	assert.Equal(t, def.ActiveLevels, st.ActiveLevels)
	assert.Equal(t, def.ActiveRoles, st.ActiveRoles)
	assert.Equal(t, "only-label", st.Label)
}

func TestDecodeState_EmptyArraysStayEmpty(t *testing.T) {
	st, _, err := DecodeState([]byte(`{"activeLevels":[],"activeRoles":[]}`))
	require.NoError(t, err)
	assert.Empty(t, st.ActiveLevels)
	assert.Empty(t, st.ActiveRoles)
}

func TestDecodeState_DropsUnknownValues(t *testing.T) {
	st, notes, err := DecodeState([]byte(`{
		"language": "fr",
		"activeLevels": ["A", "B"],
		"activeRoles": ["Design", "Manage"]
	}`))
	require.NoError(t, err)

	assert.Equal(t, domain.LangEN, st.Language)
	assert.Equal(t, []domain.Level{domain.LevelA}, st.LevelList())
	assert.Equal(t, []domain.Role{domain.RoleDesign}, st.RoleList())
	assert.Len(t, notes, 3)
}

func TestDecodeState_LegacyEnvelope(t *testing.T) {
	st, _, err := DecodeState([]byte(`{
		"state": {
			"language": "nl",
			"activeLevels": ["AA"],
			"activeRoles": ["Develop"],
			"completedRules": ["captions-prerecorded"],
			"websiteName": "oud.nl",
			"expandedRule": "captions-prerecorded"
		},
		"version": 0
	}`))
	require.NoError(t, err)

	assert.Equal(t, domain.LangNL, st.Language)
	assert.Equal(t, []domain.Level{domain.LevelAA}, st.LevelList())
	assert.Equal(t, []domain.Role{domain.RoleDevelop}, st.RoleList())
	assert.True(t, st.IsCompleted("captions-prerecorded"))
	assert.Equal(t, "oud.nl", st.Label)
	assert.Empty(t, st.ExpandedID, "expanded rule is never restored")
}

func TestDecodeState_InvalidJSON(t *testing.T) {
	_, _, err := DecodeState([]byte(`[1,2,3]`))
	assert.Error(t, err)
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	in := domain.ProgressState{
		Language:     domain.LangNL,
		ActiveLevels: map[domain.Level]bool{domain.LevelAA: true},
		ActiveRoles:  map[domain.Role]bool{domain.RoleDesign: true, domain.RoleContent: true},
		CompletedIDs: map[string]bool{"x": true},
		Label:        "label",
	}
	data, err := EncodeState(in)
	require.NoError(t, err)
	out, notes, err := DecodeState(data)
	require.NoError(t, err)
	assert.Empty(t, notes)
	assert.Equal(t, in, out)
}
