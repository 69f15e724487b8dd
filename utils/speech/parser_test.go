package speech

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/receiptstack/receipt-extraction/dto"
)

type fakeRegistry struct {
	cards []dto.Card
	err   error
}

func (f *fakeRegistry) FindActiveCardByLastFour(s string) (*dto.Card, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.cards {
		if f.cards[i].Active && f.cards[i].LastFour == s {
			return &f.cards[i], nil
		}
	}
	return nil, nil
}

func (f *fakeRegistry) ListCandidates(token string) ([]dto.Card, error) {
	if f.err != nil {
		return nil, f.err
	}
	var matches []dto.Card
	for _, card := range f.cards {
		if card.Active && card.LastFour == token {
			matches = append(matches, card)
		}
	}
	return matches, nil
}

func testCard(lastFour string, active bool) dto.Card {
	return dto.Card{
		ID:        "card-" + lastFour,
		LastFour:  lastFour,
		Entity:    "Electrospit",
		CardType:  "Visa",
		Bank:      "Chase",
		Active:    active,
		CreatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestResolveEndingInPhrase(t *testing.T) {
	registry := &fakeRegistry{cards: []dto.Card{testCard("1549", true)}}

	result, err := Resolve("Dinner with Maya ending in 1549", registry)

	require.NoError(t, err)
	assert.Equal(t, "1549", result.LastFour)
	require.NotNil(t, result.MatchedCard)
	assert.Equal(t, "card-1549", result.MatchedCard.ID)
	assert.Equal(t, "Dinner with Maya", result.CleanedMemo)
}

func TestResolveCardPhrase(t *testing.T) {
	registry := &fakeRegistry{cards: []dto.Card{testCard("2211", true)}}

	result, err := Resolve("Team lunch card 2211", registry)

	require.NoError(t, err)
	assert.Equal(t, "2211", result.LastFour)
	require.NotNil(t, result.MatchedCard)
	assert.Equal(t, "Team lunch", result.CleanedMemo)
}

func TestResolveBareToken(t *testing.T) {
	registry := &fakeRegistry{cards: []dto.Card{testCard("1234", true)}}

	result, err := Resolve("Lunch 1234 downtown", registry)

	require.NoError(t, err)
	assert.Equal(t, "1234", result.LastFour)
	assert.Equal(t, "Lunch downtown", result.CleanedMemo)
}

func TestResolveUnknownCardKeepsDigits(t *testing.T) {
	result, err := Resolve("Dinner with Maya ending in 1549", &fakeRegistry{})

	require.NoError(t, err)
	assert.Equal(t, "1549", result.LastFour)
	assert.Nil(t, result.MatchedCard)
	assert.Equal(t, "Dinner with Maya", result.CleanedMemo)
}

func TestResolveInactiveCardDoesNotMatch(t *testing.T) {
	registry := &fakeRegistry{cards: []dto.Card{testCard("1549", false)}}

	result, err := Resolve("Dinner ending in 1549", registry)

	require.NoError(t, err)
	assert.Equal(t, "1549", result.LastFour)
	assert.Nil(t, result.MatchedCard)
}

func TestResolveNoReference(t *testing.T) {
	result, err := Resolve("  Coffee with the design team  ", &fakeRegistry{})

	require.NoError(t, err)
	assert.Empty(t, result.LastFour)
	assert.Nil(t, result.MatchedCard)
	assert.Equal(t, "Coffee with the design team", result.CleanedMemo)
}

func TestResolveRegistryErrorPropagates(t *testing.T) {
	registry := &fakeRegistry{err: errors.New("store closed")}

	_, err := Resolve("Dinner ending in 1549", registry)

	assert.ErrorContains(t, err, "store closed")
}

func TestFindCandidateCardsAppearanceOrder(t *testing.T) {
	registry := &fakeRegistry{cards: []dto.Card{
		testCard("5678", true),
		testCard("1234", true),
	}}

	cards, err := FindCandidateCards("either 1234 or 5678", registry)

	require.NoError(t, err)
	require.Len(t, cards, 2)
	assert.Equal(t, "1234", cards[0].LastFour)
	assert.Equal(t, "5678", cards[1].LastFour)
}

func TestFindCandidateCardsKeepsDuplicates(t *testing.T) {
	registry := &fakeRegistry{cards: []dto.Card{testCard("1234", true)}}

	cards, err := FindCandidateCards("1234 again 1234", registry)

	require.NoError(t, err)
	assert.Len(t, cards, 2)
}

func TestFindCandidateCardsSkipsInactiveAndUnknown(t *testing.T) {
	registry := &fakeRegistry{cards: []dto.Card{
		testCard("1234", false),
		testCard("5678", true),
	}}

	cards, err := FindCandidateCards("1234 then 5678 then 9999", registry)

	require.NoError(t, err)
	require.Len(t, cards, 1)
	assert.Equal(t, "5678", cards[0].LastFour)
}
