package service_test

import (
	"context"
	"testing"

	"github.com/bxgeo/portalmigrate/internal/domain"
	"github.com/bxgeo/portalmigrate/internal/model"
	"github.com/bxgeo/portalmigrate/internal/service"
	"github.com/bxgeo/portalmigrate/internal/snapshot"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeUsers(t *testing.T, store *snapshot.Store, users []*model.User) {
	t.Helper()
	require.NoError(t, store.Write(context.Background(), snapshot.CollectionUsers, users))
}

func TestMatchUsers(t *testing.T) {
	source := newTestOrg(t, "src", nil)
	target := newTestOrg(t, "dst", nil)

	writeUsers(t, source.Store, []*model.User{
		{ID: "s1", Username: "jdoe", Email: "jdoe@example.com"},
		{ID: "s2", Username: "asmith", Email: "asmith@example.com"},
		{ID: "s3", Username: "nobody", Email: "nobody@example.com"},
	})
	writeUsers(t, target.Store, []*model.User{
		{ID: "t1", Username: "j.doe", Email: "jdoe@example.com"},
		{ID: "t2", Username: "a.smith", Email: "asmith@example.com"},
	})

	matches, err := service.NewMatchService(nil).MatchUsers(context.Background(), source, target)
	require.NoError(t, err)
	require.Len(t, matches, 2)
	assert.Equal(t, "s1", matches[0].Source.ID)
	assert.Equal(t, "t1", matches[0].Target.ID)
	assert.Equal(t, "s2", matches[1].Source.ID)
	assert.Equal(t, "t2", matches[1].Target.ID)
}

func TestMatchUsersDuplicateSourceEmails(t *testing.T) {
	source := newTestOrg(t, "src", nil)
	target := newTestOrg(t, "dst", nil)

	// two source users with the same email both match the one target
	writeUsers(t, source.Store, []*model.User{
		{ID: "a", Email: "x@example.com"},
		{ID: "b", Email: "x@example.com"},
	})
	writeUsers(t, target.Store, []*model.User{
		{ID: "c", Email: "x@example.com"},
	})

	matches, err := service.NewMatchService(nil).MatchUsers(context.Background(), source, target)
	require.NoError(t, err)
	require.Len(t, matches, 2)
	assert.Equal(t, "c", matches[0].Target.ID)
	assert.Equal(t, "c", matches[1].Target.ID)
}

func TestMatchUsersFirstTargetWins(t *testing.T) {
	source := newTestOrg(t, "src", nil)
	target := newTestOrg(t, "dst", nil)

	writeUsers(t, source.Store, []*model.User{
		{ID: "a", Email: "x@example.com"},
	})
	writeUsers(t, target.Store, []*model.User{
		{ID: "c", Email: "x@example.com"},
		{ID: "d", Email: "x@example.com"},
	})

	matches, err := service.NewMatchService(nil).MatchUsers(context.Background(), source, target)
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "c", matches[0].Target.ID)
}

func TestMatchUsersIsCaseSensitive(t *testing.T) {
	source := newTestOrg(t, "src", nil)
	target := newTestOrg(t, "dst", nil)

	writeUsers(t, source.Store, []*model.User{
		{ID: "a", Email: "JDoe@Example.com"},
	})
	writeUsers(t, target.Store, []*model.User{
		{ID: "c", Email: "jdoe@example.com"},
	})

	matches, err := service.NewMatchService(nil).MatchUsers(context.Background(), source, target)
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestMatchUsersRequiresSnapshots(t *testing.T) {
	source := newTestOrg(t, "src", nil)
	target := newTestOrg(t, "dst", nil)

	writeUsers(t, source.Store, []*model.User{{ID: "a", Email: "x@example.com"}})

	_, err := service.NewMatchService(nil).MatchUsers(context.Background(), source, target)
	assert.ErrorIs(t, err, domain.ErrSnapshotNotFound)
}
