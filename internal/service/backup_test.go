package service_test

import (
	"context"
	"testing"

	"github.com/bxgeo/portalmigrate/internal/domain"
	"github.com/bxgeo/portalmigrate/internal/mocks"
	"github.com/bxgeo/portalmigrate/internal/model"
	"github.com/bxgeo/portalmigrate/internal/org"
	"github.com/bxgeo/portalmigrate/internal/portal"
	"github.com/bxgeo/portalmigrate/internal/service"
	"github.com/bxgeo/portalmigrate/internal/snapshot"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestOrg(t *testing.T, name string, p portal.Portal) *org.Context {
	t.Helper()
	oc, err := org.New(context.Background(), p, t.TempDir(), name)
	require.NoError(t, err)
	return oc
}

func TestBackupUsers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	p := mocks.NewMockPortal(ctrl)
	o := newTestOrg(t, "src", p)

	p.EXPECT().
		SearchUsers(gomock.Any(), "").
		Return([]*portal.UserRecord{
			{ID: "u1", Username: "jdoe", FullName: "Doe,John", Email: "jdoe@example.com"},
			{ID: "u2", Username: "asmith", FullName: "Smith,Anna", Email: "asmith@example.com"},
		}, nil)

	svc := service.NewBackupService(nil)
	require.NoError(t, svc.BackupUsers(context.Background(), o))

	var users []*model.User
	require.NoError(t, o.Store.Read(context.Background(), snapshot.CollectionUsers, &users))
	require.Len(t, users, 2)
	assert.Equal(t, "John", users[0].FirstName)
	assert.Equal(t, "Doe", users[0].LastName)
	assert.Equal(t, float64(-1), users[0].Credits)
}

func TestBackupUsersAbortsOnBadRecord(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	p := mocks.NewMockPortal(ctrl)
	o := newTestOrg(t, "src", p)

	p.EXPECT().
		SearchUsers(gomock.Any(), "").
		Return([]*portal.UserRecord{
			{ID: "u1", Username: "ghost", FullName: ""},
		}, nil)

	svc := service.NewBackupService(nil)
	err := svc.BackupUsers(context.Background(), o)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidFullName)

	// a failed backup leaves no partial snapshot behind
	var users []*model.User
	err = o.Store.Read(context.Background(), snapshot.CollectionUsers, &users)
	assert.ErrorIs(t, err, domain.ErrSnapshotNotFound)
}

func TestBackupGroups(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	p := mocks.NewMockPortal(ctrl)
	o := newTestOrg(t, "src", p)

	rec := &portal.GroupRecord{
		ID:      "g1",
		Title:   "Analysts",
		Tags:    []string{"gis"},
		Snippet: "the real snippet",
		Access:  portal.AccessOrg,
	}
	// system-owned groups and Basemaps are filtered remotely
	p.EXPECT().
		SearchGroups(gomock.Any(), "!owner:esri_* & !Basemaps").
		Return([]*portal.GroupRecord{rec}, nil)

	svc := service.NewBackupService(nil)
	require.NoError(t, svc.BackupGroups(context.Background(), o))

	var groups []model.Group
	require.NoError(t, o.Store.Read(context.Background(), snapshot.CollectionGroups, &groups))
	require.Len(t, groups, 1)
	assert.Equal(t, "g1", groups[0].ID)
	assert.Equal(t, []string{"gis"}, groups[0].Snippet)
}

func TestBackupGroupsReplacesPriorSnapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	p := mocks.NewMockPortal(ctrl)
	o := newTestOrg(t, "src", p)

	first := []*portal.GroupRecord{{ID: "g1", Title: "Analysts"}, {ID: "g2", Title: "Crews"}}
	second := []*portal.GroupRecord{{ID: "g1", Title: "Analysts"}}
	gomock.InOrder(
		p.EXPECT().SearchGroups(gomock.Any(), gomock.Any()).Return(first, nil),
		p.EXPECT().SearchGroups(gomock.Any(), gomock.Any()).Return(second, nil),
	)

	svc := service.NewBackupService(nil)
	require.NoError(t, svc.BackupGroups(context.Background(), o))
	require.NoError(t, svc.BackupGroups(context.Background(), o))

	var groups []model.Group
	require.NoError(t, o.Store.Read(context.Background(), snapshot.CollectionGroups, &groups))
	require.Len(t, groups, 1)
}

func TestBackupUserContentForMe(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	p := mocks.NewMockPortal(ctrl)
	o := newTestOrg(t, "src", p)

	me := &portal.UserRecord{ID: "u1", Username: "jdoe", FullName: "Doe,John"}
	folders := []*portal.Folder{{ID: "f1", Title: "analysis", Username: "jdoe"}}
	items := []*portal.ItemRecord{{ID: "i1", Title: "parcels", Type: "Feature Layer"}}

	p.EXPECT().Me(gomock.Any()).Return(me, nil)
	p.EXPECT().UserFolders(gomock.Any(), "jdoe").Return(folders, nil)
	p.EXPECT().UserItems(gomock.Any(), "jdoe").Return(items, nil)

	svc := service.NewBackupService(nil)
	require.NoError(t, svc.BackupUserContent(context.Background(), o, service.UserSelectorMe))

	sub, err := o.Store.Sub("jdoe")
	require.NoError(t, err)

	var content model.UserContent
	require.NoError(t, sub.Read(context.Background(), snapshot.CollectionContent, &content))
	assert.Equal(t, "u1", content.UserID)
	require.Len(t, content.Folders, 1)
	require.Len(t, content.Items, 1)
	assert.Equal(t, "parcels", content.Items[0].Title)
}

func TestBackupUserContentByUsername(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	p := mocks.NewMockPortal(ctrl)
	o := newTestOrg(t, "src", p)

	user := &portal.UserRecord{ID: "u2", Username: "asmith", FullName: "Smith,Anna"}
	p.EXPECT().GetUser(gomock.Any(), "asmith").Return(user, nil)
	p.EXPECT().UserFolders(gomock.Any(), "asmith").Return(nil, nil)
	p.EXPECT().UserItems(gomock.Any(), "asmith").Return(nil, nil)

	svc := service.NewBackupService(nil)
	require.NoError(t, svc.BackupUserContent(context.Background(), o, "asmith"))
}
