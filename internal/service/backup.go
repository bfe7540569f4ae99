// internal/service/backup.go
package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/bxgeo/portalmigrate/internal/model"
	"github.com/bxgeo/portalmigrate/internal/org"
	"github.com/bxgeo/portalmigrate/internal/portal"
	"github.com/bxgeo/portalmigrate/internal/snapshot"
)

// UserSelectorMe resolves to the authenticated identity when passed to
// BackupUserContent.
const UserSelectorMe = "me"

// groupBackupQuery excludes platform-owned groups and the reserved Basemaps
// group from backups.
const groupBackupQuery = "!owner:esri_* & !Basemaps"

// BackupService fetches current users, groups and content from an
// organization's live portal and writes them through its snapshot store,
// replacing any prior snapshot. A transient API failure aborts the whole
// operation; no partial snapshot is written.
type BackupService struct {
	logger *slog.Logger
}

// NewBackupService creates a backup service.
func NewBackupService(logger *slog.Logger) *BackupService {
	if logger == nil {
		logger = slog.Default()
	}
	return &BackupService{logger: logger}
}

// BackupUsers snapshots the organization's full user directory.
func (s *BackupService) BackupUsers(ctx context.Context, o *org.Context) error {
	records, err := o.Portal.SearchUsers(ctx, "")
	if err != nil {
		return fmt.Errorf("searching users: %w", err)
	}

	users := make([]*model.User, 0, len(records))
	for _, rec := range records {
		user, err := model.UserFromRecord(rec)
		if err != nil {
			return fmt.Errorf("normalizing user %s: %w", rec.Username, err)
		}
		users = append(users, user)
	}

	if err := o.Store.Write(ctx, snapshot.CollectionUsers, users); err != nil {
		return fmt.Errorf("writing users snapshot: %w", err)
	}
	s.logger.Info("saved users snapshot", "org", o.Name, "count", len(users))
	return nil
}

// BackupGroups snapshots the organization's groups, excluding system-owned
// groups and the reserved Basemaps group.
func (s *BackupService) BackupGroups(ctx context.Context, o *org.Context) error {
	records, err := o.Portal.SearchGroups(ctx, groupBackupQuery)
	if err != nil {
		return fmt.Errorf("searching groups: %w", err)
	}

	groups := make([]model.Group, 0, len(records))
	for _, rec := range records {
		groups = append(groups, model.GroupFromRecord(rec))
	}

	if err := o.Store.Write(ctx, snapshot.CollectionGroups, groups); err != nil {
		return fmt.Errorf("writing groups snapshot: %w", err)
	}
	s.logger.Info("saved groups snapshot", "org", o.Name, "count", len(groups))
	return nil
}

// BackupUserContent snapshots one user's folders and items into a per-user
// subdirectory of the organization's data directory. The selector is either
// UserSelectorMe or an explicit username.
func (s *BackupService) BackupUserContent(ctx context.Context, o *org.Context, selector string) error {
	var (
		user *portal.UserRecord
		err  error
	)
	if selector == UserSelectorMe {
		user, err = o.Portal.Me(ctx)
	} else {
		user, err = o.Portal.GetUser(ctx, selector)
	}
	if err != nil {
		return fmt.Errorf("resolving user %q: %w", selector, err)
	}

	folders, err := o.Portal.UserFolders(ctx, user.Username)
	if err != nil {
		return fmt.Errorf("fetching folders for %s: %w", user.Username, err)
	}
	items, err := o.Portal.UserItems(ctx, user.Username)
	if err != nil {
		return fmt.Errorf("fetching items for %s: %w", user.Username, err)
	}

	content := &model.UserContent{
		Folders: folders,
		Items:   items,
		UserID:  user.ID,
	}

	sub, err := o.Store.Sub(user.Username)
	if err != nil {
		return fmt.Errorf("opening content store for %s: %w", user.Username, err)
	}
	if err := sub.Write(ctx, snapshot.CollectionContent, content); err != nil {
		return fmt.Errorf("writing content snapshot: %w", err)
	}
	s.logger.Info("saved content snapshot", "org", o.Name, "user", user.Username,
		"folders", len(folders), "items", len(items))
	return nil
}
