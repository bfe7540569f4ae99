// internal/service/match.go
package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/bxgeo/portalmigrate/internal/model"
	"github.com/bxgeo/portalmigrate/internal/org"
	"github.com/bxgeo/portalmigrate/internal/snapshot"
)

// Match is one email-based correspondence between a source user and a
// target user.
type Match struct {
	Source *model.User
	Target *model.User
}

// MatchService cross-references the snapshotted user lists of two
// organizations.
type MatchService struct {
	logger *slog.Logger
}

// NewMatchService creates a match service.
func NewMatchService(logger *slog.Logger) *MatchService {
	if logger == nil {
		logger = slog.Default()
	}
	return &MatchService{logger: logger}
}

// MatchUsers pairs every source user with the first target user carrying an
// equal email, comparing case-sensitively in snapshot order. Source users
// with no match are omitted from the result; their count is logged. Both
// organizations must have a users snapshot from a prior backup.
func (s *MatchService) MatchUsers(ctx context.Context, source, target *org.Context) ([]Match, error) {
	var sourceUsers []*model.User
	if err := source.Store.Read(ctx, snapshot.CollectionUsers, &sourceUsers); err != nil {
		return nil, fmt.Errorf("loading users snapshot for %s: %w", source.Name, err)
	}

	var targetUsers []*model.User
	if err := target.Store.Read(ctx, snapshot.CollectionUsers, &targetUsers); err != nil {
		return nil, fmt.Errorf("loading users snapshot for %s: %w", target.Name, err)
	}

	matches := make([]Match, 0, len(sourceUsers))
	unmatched := 0
	for _, su := range sourceUsers {
		var matched *model.User
		candidates := 0
		for _, tu := range targetUsers {
			if su.Email == tu.Email {
				candidates++
				if matched == nil {
					matched = tu
				}
			}
		}
		if matched == nil {
			unmatched++
			continue
		}
		if candidates > 1 {
			s.logger.Warn("multiple target users share email, using first in snapshot order",
				"email", su.Email, "candidates", candidates)
		}
		matches = append(matches, Match{Source: su, Target: matched})
	}

	s.logger.Info("matched users by email",
		"source", source.Name, "target", target.Name,
		"matched", len(matches), "unmatched", unmatched)
	return matches, nil
}
