package accounts

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/lfanzott/schulmanager/internal/common"
	"github.com/lfanzott/schulmanager/internal/csvx"
	"github.com/lfanzott/schulmanager/internal/logging"
	"github.com/stretchr/testify/require"
)

func newTestRepo(t *testing.T) (*FileRepository, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "benutzer.csv")
	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	return NewFileRepository(path, csvx.NewPathLocker(), log), path
}

func TestCreateAndFind(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestRepo(t)

	require.NoError(t, repo.Create(ctx, Account{Name: "alice", Role: RoleUser, PasswordHash: "aa"}))

	got, err := repo.FindByName(ctx, "alice")
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, RoleUser, got.Role)
	require.Equal(t, "aa", got.PasswordHash)

	// lookup is case-insensitive
	got, err = repo.FindByName(ctx, "ALICE")
	require.NoError(t, err)
	require.NotNil(t, got)

	got, err = repo.FindByName(ctx, "bob")
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestCreate_Duplicate(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestRepo(t)

	require.NoError(t, repo.Create(ctx, Account{Name: "alice", Role: RoleUser, PasswordHash: "aa"}))
	err := repo.Create(ctx, Account{Name: "Alice", Role: RoleUser, PasswordHash: "bb"})
	require.ErrorIs(t, err, common.ErrAlreadyExists)
}

func TestLoadAll_FileOrder(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestRepo(t)

	for _, name := range []string{"zoe", "alice", "mallory"} {
		require.NoError(t, repo.Create(ctx, Account{Name: name, Role: RoleUser, PasswordHash: "x"}))
	}

	list, err := repo.LoadAll(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	require.Equal(t, "zoe", list[0].Name)
	require.Equal(t, "alice", list[1].Name)
	require.Equal(t, "mallory", list[2].Name)
}

func TestLoadAll_SkipsMalformedLines(t *testing.T) {
	ctx := context.Background()
	repo, path := newTestRepo(t)

	content := "alice;user;aa\nnot-a-record\nbob;admin;bb\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o660))

	list, err := repo.LoadAll(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, RoleAdmin, list[1].Role)
}

func TestDelete_IdempotentForUnknownUser(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestRepo(t)

	require.NoError(t, repo.Create(ctx, Account{Name: "alice", Role: RoleUser, PasswordHash: "aa"}))
	require.NoError(t, repo.Delete(ctx, "ghost"))
	require.NoError(t, repo.Delete(ctx, "alice"))
	require.NoError(t, repo.Delete(ctx, "alice"))

	list, err := repo.LoadAll(ctx)
	require.NoError(t, err)
	require.Empty(t, list)
}

func TestRename_PreservesRoleAndHash(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestRepo(t)

	require.NoError(t, repo.Create(ctx, Account{Name: "alice", Role: RoleAdmin, PasswordHash: "aa"}))
	require.NoError(t, repo.Rename(ctx, "alice", "alicia"))

	got, err := repo.FindByName(ctx, "alicia")
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, RoleAdmin, got.Role)
	require.Equal(t, "aa", got.PasswordHash)

	old, err := repo.FindByName(ctx, "alice")
	require.NoError(t, err)
	require.Nil(t, old)
}

func TestRename_UnknownUser(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestRepo(t)

	err := repo.Rename(ctx, "ghost", "casper")
	require.ErrorIs(t, err, common.ErrNotFound)
}

func TestUpdatePasswordAndRole(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestRepo(t)

	require.NoError(t, repo.Create(ctx, Account{Name: "alice", Role: RoleUser, PasswordHash: "aa"}))
	require.NoError(t, repo.UpdatePassword(ctx, "alice", "bb"))
	require.NoError(t, repo.UpdateRole(ctx, "alice", RoleAdmin))

	got, err := repo.FindByName(ctx, "alice")
	require.NoError(t, err)
	require.Equal(t, "bb", got.PasswordHash)
	require.Equal(t, RoleAdmin, got.Role)
}
