package services

import (
	"github.com/SscSPs/atm_backend/internal/core/dispenser"
	portsrepo "github.com/SscSPs/atm_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/atm_backend/internal/core/ports/services"
	"github.com/SscSPs/atm_backend/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, d *dispenser.Dispenser) *portssvc.ServiceContainer {
	var options []ServiceOption
	if repos.JournalRepo != nil {
		options = append(options, WithJournalRepository(repos.JournalRepo))
	}

	return &portssvc.ServiceContainer{
		Atm:  NewAtmService(d, repos.AccountRepo, options...),
		Cash: NewCashService(d, options...),
		Auth: NewAuthService(cfg, repos.AccountRepo),
	}
}
