// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	"github.com/MKhiriev/go-card-portfolio/internal/logger"
	"github.com/MKhiriev/go-card-portfolio/internal/store"
	"github.com/MKhiriev/go-card-portfolio/models"
)

type portfolioService struct {
	ownership store.OwnershipRepository

	// cards indexed by card number - 1
	cards    []models.Card
	currency string

	logger *logger.Logger
}

// NewPortfolioService constructs a PortfolioService. cards is the set
// catalogue in card number order; currency is the ISO 4217 code used for
// appraisals.
func NewPortfolioService(ownership store.OwnershipRepository, cards []models.Card, currency string, logger *logger.Logger) PortfolioService {
	return &portfolioService{
		ownership: ownership,
		cards:     cards,
		currency:  currency,
		logger:    logger,
	}
}

func (p *portfolioService) card(number int) (models.Card, error) {
	if !models.ValidCardNumber(number) || number > len(p.cards) {
		return models.Card{}, fmt.Errorf("%w: %d", store.ErrCardOutOfRange, number)
	}
	return p.cards[number-1], nil
}

func (p *portfolioService) Add(ctx context.Context, user models.User, number int) (models.Card, error) {
	return p.setOwned(ctx, user, number, true)
}

func (p *portfolioService) Remove(ctx context.Context, user models.User, number int) (models.Card, error) {
	return p.setOwned(ctx, user, number, false)
}

func (p *portfolioService) setOwned(ctx context.Context, user models.User, number int, owned bool) (models.Card, error) {
	card, err := p.card(number)
	if err != nil {
		return models.Card{}, err
	}

	current, err := p.ownership.GetOwned(ctx, user.Column, number)
	if err != nil {
		return models.Card{}, fmt.Errorf("error reading ownership of %s: %w", card.Code(), err)
	}
	if current == owned {
		if owned {
			return card, fmt.Errorf("%w: %s", ErrAlreadyOwned, card.Label())
		}
		return card, fmt.Errorf("%w: %s", ErrNotOwned, card.Label())
	}

	if err := p.ownership.SetOwned(ctx, user.Column, number, owned); err != nil {
		p.logger.WithSession(user.SessionID, user.Username).Err(err).
			Str("func", "*portfolioService.setOwned").Int("card", number).Msg("error writing ownership")
		return models.Card{}, fmt.Errorf("error writing ownership of %s: %w", card.Code(), err)
	}

	p.logger.WithSession(user.SessionID, user.Username).Info().Int("card", number).Bool("owned", owned).Msg("ownership changed")
	return card, nil
}

func (p *portfolioService) Owned(ctx context.Context, user models.User) ([]models.Card, models.Completion, error) {
	return p.filter(ctx, user, true)
}

func (p *portfolioService) Needed(ctx context.Context, user models.User) ([]models.Card, models.Completion, error) {
	return p.filter(ctx, user, false)
}

func (p *portfolioService) filter(ctx context.Context, user models.User, owned bool) ([]models.Card, models.Completion, error) {
	entries, err := p.ownership.Snapshot(ctx, user.Column)
	if err != nil {
		return nil, models.Completion{}, fmt.Errorf("error reading portfolio: %w", err)
	}

	var cards []models.Card
	count := 0
	for _, e := range entries {
		if e.Owned {
			count++
		}
		if e.Owned == owned {
			cards = append(cards, e.Card)
		}
	}

	return cards, NewCompletion(count, len(entries)), nil
}

func (p *portfolioService) Appraise(ctx context.Context, user models.User) (models.Appraisal, error) {
	owned, _, err := p.Owned(ctx, user)
	if err != nil {
		return models.Appraisal{}, err
	}

	total := decimal.Zero
	for _, c := range owned {
		total = total.Add(c.MarketValue)
	}

	return models.Appraisal{
		Cards:    owned,
		Total:    total.Round(2),
		Currency: p.currency,
	}, nil
}

func (p *portfolioService) Delete(ctx context.Context, user models.User) error {
	if err := p.ownership.ResetAll(ctx, user.ColumnLabel); err != nil {
		return fmt.Errorf("error deleting portfolio: %w", err)
	}

	p.logger.WithSession(user.SessionID, user.Username).Info().Msg("portfolio deleted")
	return nil
}

// NewCompletion computes the rounded completion percentage of owned out of
// total cards.
func NewCompletion(owned, total int) models.Completion {
	c := models.Completion{Owned: owned, Total: total}
	if total > 0 {
		c.Percent = int(math.Round(float64(owned) * 100 / float64(total)))
	}
	return c
}

// CompletionMessage renders the completion line shown under portfolio
// listings.
func CompletionMessage(c models.Completion) string {
	if c.Complete() {
		return fmt.Sprintf("Congratulations! You have collected all %d cards of the set!", c.Total)
	}
	return fmt.Sprintf("Your collection is %d%% complete (%d/%d)", c.Percent, c.Owned, c.Total)
}
