// Package org binds a live portal connection to an organization-scoped
// snapshot directory. A Context is constructed once by the caller and passed
// into the services explicitly, so two organizations (or two tests) never
// share state.
package org

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/bxgeo/portalmigrate/internal/portal"
	"github.com/bxgeo/portalmigrate/internal/snapshot"
)

// Context is a bound connection to one portal instance plus its local
// snapshot root. It is not mutated after construction.
type Context struct {
	// Name is the organization's label, also its directory name under the
	// data root.
	Name string
	// Portal is the live API connection.
	Portal portal.Portal
	// Store persists this organization's snapshots.
	Store *snapshot.Store
	// AnalysisFolder optionally names the default container for newly
	// created items.
	AnalysisFolder string
	// CommonTags are merged into the tags of every uploaded item.
	CommonTags []string
}

// Option configures a Context during construction.
type Option func(*Context)

// WithAnalysisFolder sets the default folder for created items. The folder
// is created on the portal during construction if it does not already exist.
func WithAnalysisFolder(name string) Option {
	return func(c *Context) { c.AnalysisFolder = name }
}

// WithCommonTags sets tags merged into every uploaded item.
func WithCommonTags(tags ...string) Option {
	return func(c *Context) { c.CommonTags = tags }
}

// New constructs an organization context. The snapshot directory is created
// under dataRoot if absent.
func New(ctx context.Context, p portal.Portal, dataRoot, name string, opts ...Option) (*Context, error) {
	if name == "" {
		return nil, errors.New("organization name is required")
	}

	store, err := snapshot.Open(filepath.Join(dataRoot, name))
	if err != nil {
		return nil, fmt.Errorf("opening snapshot store for %s: %w", name, err)
	}

	oc := &Context{
		Name:   name,
		Portal: p,
		Store:  store,
	}
	for _, opt := range opts {
		opt(oc)
	}

	if oc.AnalysisFolder != "" {
		me, err := p.Me(ctx)
		if err != nil {
			return nil, fmt.Errorf("resolving authenticated user: %w", err)
		}
		if _, err := p.CreateFolder(ctx, me.Username, oc.AnalysisFolder); err != nil {
			// the portal rejects folders that already exist
			var apiErr *portal.APIError
			if !errors.As(err, &apiErr) {
				return nil, fmt.Errorf("creating analysis folder: %w", err)
			}
		}
	}
	return oc, nil
}
