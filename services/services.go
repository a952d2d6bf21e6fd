package services

import (
	"github.com/blogem/codeauth/metrics"
	"github.com/blogem/codeauth/repositories"
)

// Services holds all service instances
type Services struct {
	Auth AuthService
}

// NewServices creates and initializes all service instances
func NewServices(registry *Registry, repos *repositories.Repositories, m *metrics.Metrics) *Services {
	var audit repositories.AuditRepository
	if repos != nil {
		audit = repos.Audit
	}
	return &Services{
		Auth: NewAuthService(registry, audit, m),
	}
}
