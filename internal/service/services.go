package service

import (
	"github.com/MKhiriev/go-card-portfolio/internal/config"
	"github.com/MKhiriev/go-card-portfolio/internal/crypto"
	"github.com/MKhiriev/go-card-portfolio/internal/logger"
	"github.com/MKhiriev/go-card-portfolio/internal/store"
	"github.com/MKhiriev/go-card-portfolio/internal/utils"
	"github.com/MKhiriev/go-card-portfolio/models"
)

type Services struct {
	AccountService   AccountService
	PortfolioService PortfolioService
}

func NewServices(storages *store.Storages, cards []models.Card, hasher crypto.PasswordHasher, cfg config.App, logger *logger.Logger) *Services {
	accounts := NewAccountService(
		storages.Credentials,
		storages.Ownership,
		storages.Allocator,
		hasher,
		utils.NewSessionID,
		logger,
	)

	return &Services{
		AccountService:   NewAccountValidationService().Wrap(accounts),
		PortfolioService: NewPortfolioService(storages.Ownership, cards, cfg.Currency, logger),
	}
}
