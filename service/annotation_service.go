package service

import (
	"github.com/rs/zerolog"

	"github.com/receiptstack/receipt-extraction/dto"
	"github.com/receiptstack/receipt-extraction/utils/speech"
)

// AnnotationService resolves spoken receipt annotations against the card
// registry. Each call is independent and side-effect-free, so the live
// transcript flow can re-invoke Resolve on every partial result without
// locking or debouncing; stale results are simply superseded.
type AnnotationService struct {
	registry speech.Registry
	log      zerolog.Logger
}

func NewAnnotationService(registry speech.Registry, log zerolog.Logger) *AnnotationService {
	return &AnnotationService{registry: registry, log: log}
}

// Resolve extracts a card reference from the transcript and matches it
// against the registry.
func (s *AnnotationService) Resolve(transcript string) (dto.CardMatchResult, error) {
	result, err := speech.Resolve(transcript, s.registry)
	if err != nil {
		return dto.CardMatchResult{}, err
	}

	s.log.Debug().
		Str("last_four", result.LastFour).
		Bool("matched", result.MatchedCard != nil).
		Msg("annotation resolved")
	return result, nil
}

// Candidates returns every active card referenced by any 4-digit token in
// the transcript, for the disambiguation UI.
func (s *AnnotationService) Candidates(transcript string) ([]dto.Card, error) {
	return speech.FindCandidateCards(transcript, s.registry)
}
