package registry

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/receiptstack/receipt-extraction/dto"
)

var (
	ErrCardNotFound  = errors.New("card not found")
	ErrDuplicateCard = errors.New("a card with this last four already exists")
)

var lastFourRegex = regexp.MustCompile(`^\d{4}$`)

// Service owns the card registry. It is the sole writer of card records; the
// extraction core only reads it, and every read goes to the store so
// concurrent mutations are visible on the next lookup.
type Service struct {
	store Store
	log   zerolog.Logger
}

func NewService(store Store, log zerolog.Logger) *Service {
	return &Service{store: store, log: log}
}

// AddCard registers a new card. The last four must be exactly four digits
// and must not collide with an existing card.
func (s *Service) AddCard(lastFour, entity, cardType, bank string) (*dto.Card, error) {
	if !lastFourRegex.MatchString(lastFour) {
		return nil, fmt.Errorf("invalid last four %q: must match ^\\d{4}$", lastFour)
	}

	existing, err := s.store.ListCards()
	if err != nil {
		return nil, fmt.Errorf("listing cards: %w", err)
	}
	for _, card := range existing {
		if card.LastFour == lastFour {
			return nil, ErrDuplicateCard
		}
	}

	card := &dto.Card{
		ID:        uuid.NewString(),
		LastFour:  lastFour,
		Entity:    entity,
		CardType:  cardType,
		Bank:      bank,
		Active:    true,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.store.SaveCard(card); err != nil {
		return nil, fmt.Errorf("saving card: %w", err)
	}

	s.log.Info().Str("card_id", card.ID).Str("last_four", lastFour).Msg("card registered")
	return card, nil
}

// RemoveCard deletes a card by id
func (s *Service) RemoveCard(id string) error {
	if err := s.store.DeleteCard(id); err != nil {
		return err
	}
	s.log.Info().Str("card_id", id).Msg("card removed")
	return nil
}

// ToggleActive flips the active flag of a card
func (s *Service) ToggleActive(id string) (*dto.Card, error) {
	card, err := s.store.GetCard(id)
	if err != nil {
		return nil, err
	}
	card.Active = !card.Active
	if err := s.store.SaveCard(card); err != nil {
		return nil, fmt.Errorf("saving card: %w", err)
	}
	s.log.Info().Str("card_id", id).Bool("active", card.Active).Msg("card toggled")
	return card, nil
}

// ListCards returns every registered card, oldest first.
func (s *Service) ListCards() ([]dto.Card, error) {
	stored, err := s.store.ListCards()
	if err != nil {
		return nil, fmt.Errorf("listing cards: %w", err)
	}
	cards := make([]dto.Card, 0, len(stored))
	for _, c := range stored {
		cards = append(cards, *c)
	}
	sortByCreation(cards)
	return cards, nil
}

// FindActiveCardByLastFour returns the oldest active card with exactly the
// given last four, or nil when none matches. Inactive cards never match: a
// disabled card must not silently auto-tag new transactions.
func (s *Service) FindActiveCardByLastFour(lastFour string) (*dto.Card, error) {
	cards, err := s.ListCards()
	if err != nil {
		return nil, err
	}
	for i := range cards {
		if cards[i].Active && cards[i].LastFour == lastFour {
			return &cards[i], nil
		}
	}
	return nil, nil
}

// ListCandidates returns every active card whose last four equals the token,
// oldest first.
func (s *Service) ListCandidates(token string) ([]dto.Card, error) {
	cards, err := s.ListCards()
	if err != nil {
		return nil, err
	}
	matches := make([]dto.Card, 0)
	for _, card := range cards {
		if card.Active && card.LastFour == token {
			matches = append(matches, card)
		}
	}
	return matches, nil
}

func sortByCreation(cards []dto.Card) {
	sort.SliceStable(cards, func(i, j int) bool {
		return cards[i].CreatedAt.Before(cards[j].CreatedAt)
	})
}
