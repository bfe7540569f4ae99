// internal/service/migrate.go
package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/bxgeo/portalmigrate/internal/domain"
	"github.com/bxgeo/portalmigrate/internal/model"
	"github.com/bxgeo/portalmigrate/internal/org"
	"github.com/bxgeo/portalmigrate/internal/portal"
	"github.com/bxgeo/portalmigrate/internal/snapshot"
	"github.com/go-playground/validator/v10"
)

// GroupMigrationService replays group definitions from a source organization
// onto a target portal, translating access levels across deployment
// topologies and restoring ownership and membership.
type GroupMigrationService struct {
	// adminUsername is the migration-admin account that creates groups on
	// the target. Groups the admin already owns are not reassigned.
	adminUsername string
	validate      *validator.Validate
	logger        *slog.Logger
}

// NewGroupMigrationService creates a group migration service.
func NewGroupMigrationService(adminUsername string, logger *slog.Logger) *GroupMigrationService {
	if logger == nil {
		logger = slog.Default()
	}
	return &GroupMigrationService{
		adminUsername: adminUsername,
		validate:      validator.New(),
		logger:        logger,
	}
}

// GroupFailure records why one group's migration was aborted.
type GroupFailure struct {
	GroupID string
	Title   string
	Err     error
}

// MigrateGroupsResult reports the outcome of a migration batch.
type MigrateGroupsResult struct {
	Migrated []*portal.GroupRecord
	Failed   []GroupFailure
}

// MigrateGroups migrates every group in the source organization's groups
// snapshot onto the target portal. The snapshot only enumerates which ids to
// migrate; each group is re-fetched live from the source API so that drift
// since the backup is picked up. A failure aborts that group's migration and
// is recorded; the batch continues with the remaining groups.
func (s *GroupMigrationService) MigrateGroups(ctx context.Context, source *org.Context, target portal.Portal) (*MigrateGroupsResult, error) {
	var groups []model.Group
	if err := source.Store.Read(ctx, snapshot.CollectionGroups, &groups); err != nil {
		return nil, fmt.Errorf("loading groups snapshot for %s: %w", source.Name, err)
	}

	sourceProps, err := source.Portal.Properties(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching source portal properties: %w", err)
	}
	targetProps, err := target.Properties(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching target portal properties: %w", err)
	}

	result := &MigrateGroupsResult{}
	for _, group := range groups {
		created, err := s.migrateGroup(ctx, source, target, sourceProps, targetProps, group.ID)
		if err != nil {
			s.logger.Error("group migration failed",
				"group_id", group.ID, "title", group.Title, "error", err)
			result.Failed = append(result.Failed, GroupFailure{
				GroupID: group.ID,
				Title:   group.Title,
				Err:     err,
			})
			continue
		}
		s.logger.Info("migrated group", "group_id", group.ID, "title", created.Title,
			"access", created.Access, "target_id", created.ID)
		result.Migrated = append(result.Migrated, created)
	}
	return result, nil
}

func (s *GroupMigrationService) migrateGroup(ctx context.Context, source *org.Context, target portal.Portal, sourceProps, targetProps *portal.Properties, id string) (*portal.GroupRecord, error) {
	live, err := s.fetchLiveGroup(ctx, source, id)
	if err != nil {
		return nil, err
	}

	def := TranslateGroup(live, sourceProps, targetProps)
	if err := s.validate.Struct(def); err != nil {
		return nil, fmt.Errorf("validating group definition: %w", err)
	}

	created, err := target.CreateGroup(ctx, def)
	if err != nil {
		return nil, fmt.Errorf("creating group on target: %w", err)
	}

	members, err := source.Portal.GroupMembers(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("fetching group members: %w", err)
	}
	if members.Owner != s.adminUsername {
		if err := target.ReassignGroup(ctx, created.ID, members.Owner); err != nil {
			return nil, fmt.Errorf("reassigning group to %s: %w", members.Owner, err)
		}
	}
	if len(members.Users) > 0 {
		if err := target.AddGroupMembers(ctx, created.ID, members.Users); err != nil {
			return nil, fmt.Errorf("adding %d members: %w", len(members.Users), err)
		}
	}
	return created, nil
}

func (s *GroupMigrationService) fetchLiveGroup(ctx context.Context, source *org.Context, id string) (*portal.GroupRecord, error) {
	found, err := source.Portal.SearchGroups(ctx, fmt.Sprintf("id:%s", id))
	if err != nil {
		return nil, fmt.Errorf("searching source group: %w", err)
	}
	if len(found) == 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrGroupNotFound, id)
	}
	return found[0], nil
}

// TranslateGroup builds a target-compatible group definition from a live
// source group. Field values are copied verbatim except for the access
// level, which is remapped when the two portals disagree on topology:
//
//   - "org" has no equivalent on a single-tenant target, so it widens to
//     "public".
//   - "public" on a single-tenant source narrows back to "org" when the
//     target is a multi-tenant portal with an organization id configured.
//
// Any other combination keeps the source access unchanged.
func TranslateGroup(src *portal.GroupRecord, sourceProps, targetProps *portal.Properties) *portal.GroupDefinition {
	def := &portal.GroupDefinition{
		Title:            src.Title,
		Description:      src.Description,
		Tags:             append([]string(nil), src.Tags...),
		Snippet:          src.Snippet,
		Phone:            src.Phone,
		Access:           src.Access,
		IsInvitationOnly: src.IsInvitationOnly,
	}

	switch {
	case src.Access == portal.AccessOrg &&
		targetProps.PortalMode == portal.ModeSingleTenant:
		def.Access = portal.AccessPublic
	case src.Access == portal.AccessPublic &&
		sourceProps.PortalMode == portal.ModeSingleTenant &&
		targetProps.PortalMode == portal.ModeMultiTenant &&
		targetProps.HasOrgID():
		def.Access = portal.AccessOrg
	}
	return def
}
