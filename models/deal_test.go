package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeAllTimeLow(t *testing.T) {
	now := time.Now()

	deal := Deal{
		CurrentPrice: 899,
		PriceHistory: PriceHistoryList{
			{Price: 1099, RecordedAt: now.AddDate(0, 0, -21)},
			{Price: 949, RecordedAt: now.AddDate(0, 0, -14)},
			{Price: 899, RecordedAt: now.AddDate(0, 0, -7)},
		},
	}
	assert.True(t, deal.ComputeAllTimeLow())

	deal.CurrentPrice = 950
	assert.False(t, deal.ComputeAllTimeLow())

	// No history means no all-time low.
	assert.False(t, (&Deal{CurrentPrice: 10}).ComputeAllTimeLow())
}

func TestPersonaTagsJSONRoundTrip(t *testing.T) {
	tags := PersonaTags{"Digital Nomad", "Power User"}

	raw, err := tags.Value()
	require.NoError(t, err)

	var decoded PersonaTags
	require.NoError(t, decoded.Scan(raw))
	assert.Equal(t, tags, decoded)

	// nil tags persist as an empty array, not SQL NULL.
	var empty PersonaTags
	raw, err = empty.Value()
	require.NoError(t, err)
	assert.JSONEq(t, "[]", string(raw.([]byte)))
}

func TestDefaultFilterStateIsInert(t *testing.T) {
	state := DefaultFilterState()
	assert.Empty(t, state.Categories)
	assert.Nil(t, state.PriceMin)
	assert.Nil(t, state.PriceMax)
	assert.False(t, state.OnlyHot)
	assert.Equal(t, SortByNewest, state.SortBy)
}

func TestSortKeyValid(t *testing.T) {
	for _, k := range []SortKey{SortByScore, SortByPriceLow, SortByPriceHigh, SortByDiscount, SortByNewest} {
		assert.True(t, k.Valid())
	}
	assert.False(t, SortKey("popularity").Valid())
	assert.False(t, SortKey("").Valid())
}

func TestPersonaReference(t *testing.T) {
	infos := PersonaReference()
	require.Len(t, infos, 7)
	for _, info := range infos {
		assert.True(t, info.Name.Valid())
		assert.NotEmpty(t, info.Description)
		assert.NotEmpty(t, info.SimilarTo, "every persona has at least one similar persona")
	}
}

func TestWatchlistContains(t *testing.T) {
	id := uuid.Must(uuid.NewV7())
	other := uuid.Must(uuid.NewV7())

	list := Watchlist{DealIDs: []uuid.UUID{id}}
	assert.True(t, list.Contains(id))
	assert.False(t, list.Contains(other))
}

func TestQuestionnaireAnswersComplete(t *testing.T) {
	full := QuestionnaireAnswers{
		PrimaryUse: UseWork,
		Budget:     Budget800to1200,
		Priority:   PriorityBattery,
		Importance: ImportanceBuildQuality,
	}
	assert.True(t, full.Complete())

	partial := full
	partial.Importance = ""
	assert.False(t, partial.Complete())
}

func TestUserPreferencesJSONShape(t *testing.T) {
	persona := PersonaDigitalNomad
	state := DefaultFilterState()
	prefs := UserPreferences{Persona: &persona, FilterState: &state}

	raw, err := json.Marshal(prefs)
	require.NoError(t, err)

	var decoded UserPreferences
	require.NoError(t, json.Unmarshal(raw, &decoded))
	require.NotNil(t, decoded.Persona)
	assert.Equal(t, PersonaDigitalNomad, *decoded.Persona)
	require.NotNil(t, decoded.FilterState)
	assert.Equal(t, SortByNewest, decoded.FilterState.SortBy)
}
