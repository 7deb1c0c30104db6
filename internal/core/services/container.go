package services

import (
	"time"

	"github.com/shopspring/decimal"

	portsrepo "github.com/anthonybir/ipupy-tesoreria-sub014/internal/core/ports/repositories"
	portssvc "github.com/anthonybir/ipupy-tesoreria-sub014/internal/core/ports/services"
)

// ContainerConfig carries the injected knobs the services need. Nothing in
// the core reads configuration globally.
type ContainerConfig struct {
	NationalFundPercent decimal.Decimal
	CurrencyDecimals    int32
	JWTSecret           string
	JWTExpiry           time.Duration
	JWTIssuer           string
}

// NewContainer wires the service facades over the repository provider.
func NewContainer(repos *portsrepo.Provider, cfg ContainerConfig) *portssvc.ServiceContainer {
	authorizer := NewAuthorizationService()
	poster := NewLedgerPoster(repos.Ledger, repos.Fund, cfg.NationalFundPercent, cfg.CurrencyDecimals)

	return &portssvc.ServiceContainer{
		Authorizer: authorizer,
		Report:     NewReportService(repos.Report, repos.Ledger, repos.Church, authorizer, poster, cfg.NationalFundPercent, cfg.CurrencyDecimals),
		Fund:       NewFundService(repos.Fund, repos.Ledger, authorizer),
		Auth:       NewAuthService(repos.User, cfg.JWTSecret, cfg.JWTExpiry, cfg.JWTIssuer),
	}
}
