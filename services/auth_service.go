package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/blogem/codeauth/authadapter"
	"github.com/blogem/codeauth/logger"
	"github.com/blogem/codeauth/metrics"
	"github.com/blogem/codeauth/models"
	"github.com/blogem/codeauth/repositories"
)

// outcomeProviderError labels failures raised by a provider hook itself
// (network, malformed responses) rather than by the adapter.
const outcomeProviderError = "provider_error"

// Result is what the account system gets back from a lifecycle call.
type Result struct {
	Identity authadapter.VerifiedIdentity
	// AuthData is the sanitized record to persist for this provider.
	AuthData authadapter.AuthData
	// Unchanged is set when Update skipped resolution for echoed-back data.
	Unchanged bool
}

// AuthService drives the adapter lifecycle on behalf of the account system.
type AuthService interface {
	// Login verifies authData and matches it to an existing linked identity.
	Login(ctx context.Context, provider string, authData authadapter.AuthData) (Result, error)
	// SignUp verifies authData and links the provider for the first time.
	SignUp(ctx context.Context, provider string, authData authadapter.AuthData) (Result, error)
	// Update re-verifies changed auth data. Data equal to stored is not
	// re-verified.
	Update(ctx context.Context, provider string, stored, incoming authadapter.AuthData) (Result, error)
	// ReadBack shapes stored auth data for a client.
	ReadBack(ctx context.Context, provider string, stored authadapter.AuthData) (authadapter.VerifiedIdentity, error)
}

type authService struct {
	registry *Registry
	audit    repositories.AuditRepository
	metrics  *metrics.Metrics
}

// NewAuthService creates a new auth service. audit and m may be nil.
func NewAuthService(registry *Registry, audit repositories.AuditRepository, m *metrics.Metrics) AuthService {
	return &authService{
		registry: registry,
		audit:    audit,
		metrics:  m,
	}
}

func (s *authService) Login(ctx context.Context, provider string, authData authadapter.AuthData) (Result, error) {
	return s.attempt(ctx, provider, models.EventLogin, func(ctx context.Context, a *authadapter.Adapter) (Result, error) {
		res, err := a.BeforeFind(ctx, authData)
		if err != nil {
			return Result{}, err
		}
		return Result{Identity: a.ValidateLogin(res.AuthData), AuthData: res.AuthData}, nil
	})
}

func (s *authService) SignUp(ctx context.Context, provider string, authData authadapter.AuthData) (Result, error) {
	return s.attempt(ctx, provider, models.EventSignUp, func(ctx context.Context, a *authadapter.Adapter) (Result, error) {
		res, err := a.BeforeFind(ctx, authData)
		if err != nil {
			return Result{}, err
		}
		return Result{Identity: a.ValidateSetUp(res.AuthData), AuthData: res.AuthData}, nil
	})
}

func (s *authService) Update(ctx context.Context, provider string, stored, incoming authadapter.AuthData) (Result, error) {
	return s.attempt(ctx, provider, models.EventUpdate, func(ctx context.Context, a *authadapter.Adapter) (Result, error) {
		if incoming.Equal(stored) {
			logger.From(ctx).Debug("auth data unchanged, skipping resolution")
			return Result{Identity: a.AfterFind(stored), AuthData: stored.Clone(), Unchanged: true}, nil
		}

		res, err := a.BeforeFind(ctx, incoming)
		if err != nil {
			return Result{}, err
		}
		return Result{Identity: a.ValidateUpdate(res.AuthData), AuthData: res.AuthData}, nil
	})
}

func (s *authService) ReadBack(ctx context.Context, provider string, stored authadapter.AuthData) (authadapter.VerifiedIdentity, error) {
	res, err := s.attempt(ctx, provider, models.EventReadBack, func(_ context.Context, a *authadapter.Adapter) (Result, error) {
		return Result{Identity: a.AfterFind(stored)}, nil
	})
	return res.Identity, err
}

// attempt resolves the adapter, runs fn and records the outcome.
func (s *authService) attempt(
	ctx context.Context,
	provider, event string,
	fn func(context.Context, *authadapter.Adapter) (Result, error),
) (Result, error) {
	id := uuid.NewString()
	ctx = logger.With(ctx, logger.AttemptID(id), logger.Provider(provider), logger.Event(event))
	log := logger.From(ctx)

	start := time.Now()

	var res Result
	a, err := s.registry.Get(provider)
	if err == nil {
		res, err = fn(ctx, a)
	}
	elapsed := time.Since(start)

	outcome := outcomeOf(err)
	metricProvider := provider
	if a == nil {
		// unknown names would otherwise create unbounded label values
		metricProvider = "unknown"
	}
	s.metrics.Observe(metricProvider, event, outcome, elapsed)
	s.record(ctx, &models.AuthAttempt{
		ID:         id,
		Provider:   provider,
		Event:      event,
		Outcome:    outcome,
		IdentityID: res.Identity.ID,
		Duration:   elapsed,
	})

	if err != nil {
		log.Info("authentication rejected", logger.Outcome(outcome), logger.Duration(elapsed), logger.Err(err))
		return Result{}, err
	}

	log.Info("authentication accepted", logger.IdentityID(res.Identity.ID), logger.Duration(elapsed))
	return res, nil
}

// record stores the attempt. Audit failures never fail authentication.
func (s *authService) record(ctx context.Context, attempt *models.AuthAttempt) {
	if s.audit == nil {
		return
	}
	if err := s.audit.Create(attempt); err != nil {
		logger.From(ctx).Warn("failed to record auth attempt", logger.Err(err))
	}
}

func outcomeOf(err error) string {
	if err == nil {
		return models.OutcomeSuccess
	}
	if kind := authadapter.KindOf(err); kind != authadapter.KindUnknown {
		return kind.String()
	}
	return outcomeProviderError
}
