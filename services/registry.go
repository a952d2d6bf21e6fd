package services

import (
	"context"
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/blogem/codeauth/authadapter"
	"github.com/blogem/codeauth/authenticator"
	"github.com/blogem/codeauth/logger"
)

// Registry holds the configured adapters by name. It is built once at
// start-up and only read afterwards.
type Registry struct {
	adapters map[string]*authadapter.Adapter
}

// NewRegistry registers adapters under their names. Later duplicates win.
func NewRegistry(adapters ...*authadapter.Adapter) *Registry {
	m := make(map[string]*authadapter.Adapter, len(adapters))
	for _, a := range adapters {
		m[a.Name()] = a
	}
	return &Registry{adapters: m}
}

// Get returns the adapter for name, or an ErrNotFound-kind error.
func (r *Registry) Get(name string) (*authadapter.Adapter, error) {
	a, ok := r.adapters[name]
	if !ok {
		return nil, fmt.Errorf("unknown auth provider %q: %w", name, authadapter.ErrNotFound)
	}
	return a, nil
}

// Names lists registered providers in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.adapters))
	for name := range r.adapters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// BuildRegistry creates one adapter per configured provider.
func BuildRegistry(ctx context.Context, providers map[string]authenticator.Config, log *zap.Logger) (*Registry, error) {
	if log == nil {
		log = logger.L()
	}

	adapters := make([]*authadapter.Adapter, 0, len(providers))
	for name, cfg := range providers {
		provider, err := authenticator.New(ctx, cfg)
		if err != nil {
			return nil, fmt.Errorf("provider %s: %w", name, err)
		}

		adapter, err := authadapter.New(name, provider, &cfg.Options,
			authadapter.WithLogger(log.With(logger.Component("authadapter"))))
		if err != nil {
			return nil, err
		}
		adapters = append(adapters, adapter)
	}
	return NewRegistry(adapters...), nil
}
