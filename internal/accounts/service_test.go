package accounts

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/lfanzott/schulmanager/internal/common"
	"github.com/lfanzott/schulmanager/internal/csvx"
	"github.com/lfanzott/schulmanager/internal/encoding"
	"github.com/lfanzott/schulmanager/internal/logging"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) (*Service, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "benutzer.csv")
	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	repo := NewFileRepository(path, csvx.NewPathLocker(), log)
	return NewService(repo), path
}

func sha256hex(t *testing.T, s string) string {
	t.Helper()
	digest, err := encoding.Hash(s, encoding.SHA256)
	require.NoError(t, err)
	return encoding.ToHex(digest)
}

func TestRegisterThenAuthenticate(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	require.NoError(t, svc.Register(ctx, "alice", "pw1", RoleUser))

	role, err := svc.Authenticate(ctx, "alice", "pw1")
	require.NoError(t, err)
	require.Equal(t, RoleUser, role)

	_, err = svc.Authenticate(ctx, "alice", "wrong")
	require.ErrorIs(t, err, common.ErrInvalidCredentials)
}

func TestAuthenticate_UnknownUserSameError(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	_, err := svc.Authenticate(ctx, "nobody", "pw")
	require.ErrorIs(t, err, common.ErrInvalidCredentials)
}

func TestAuthenticate_AgainstHandWrittenRecord(t *testing.T) {
	ctx := context.Background()
	svc, path := newTestService(t)

	line := fmt.Sprintf("alice;user;%s\n", sha256hex(t, "pw1"))
	require.NoError(t, os.WriteFile(path, []byte(line), 0o660))

	role, err := svc.Authenticate(ctx, "alice", "pw1")
	require.NoError(t, err)
	require.Equal(t, RoleUser, role)

	_, err = svc.Authenticate(ctx, "alice", "wrong")
	require.ErrorIs(t, err, common.ErrInvalidCredentials)
}

func TestRegister_ReservedAdminName(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	for _, name := range []string{"admin", "Admin", "ADMIN"} {
		err := svc.Register(ctx, name, "pw", RoleUser)
		require.ErrorIs(t, err, common.ErrReservedUsername, "name %q", name)
	}
}

func TestRegister_Duplicate(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	require.NoError(t, svc.Register(ctx, "alice", "pw1", RoleUser))
	err := svc.Register(ctx, "alice", "pw2", RoleUser)
	require.ErrorIs(t, err, common.ErrAlreadyExists)
}

func TestRegister_RejectsDelimiterInName(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	err := svc.Register(ctx, "ali;ce", "pw", RoleUser)
	require.ErrorIs(t, err, common.ErrMalformedRecord)
}

func TestDelete_SelfAndUnknown(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	require.NoError(t, svc.Register(ctx, "alice", "pw1", RoleUser))

	require.ErrorIs(t, svc.Delete(ctx, "alice", "alice"), common.ErrSelfDelete)
	require.NoError(t, svc.Delete(ctx, "admin", "ghost"))
	require.NoError(t, svc.Delete(ctx, "admin", "alice"))

	exists, err := svc.Exists(ctx, "alice")
	require.NoError(t, err)
	require.False(t, exists)
}

func TestRename_PolicyChecks(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	require.NoError(t, svc.Register(ctx, "alice", "pw1", RoleUser))
	require.NoError(t, svc.Register(ctx, "bob", "pw2", RoleUser))

	require.ErrorIs(t, svc.Rename(ctx, "alice", "admin"), common.ErrReservedUsername)
	require.ErrorIs(t, svc.Rename(ctx, "alice", "bob"), common.ErrAlreadyExists)

	require.NoError(t, svc.Rename(ctx, "alice", "alicia"))
	role, err := svc.Authenticate(ctx, "alicia", "pw1")
	require.NoError(t, err)
	require.Equal(t, RoleUser, role)
}

func TestChangePassword(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	require.NoError(t, svc.Register(ctx, "alice", "old", RoleUser))
	require.NoError(t, svc.ChangePassword(ctx, "alice", "new"))

	_, err := svc.Authenticate(ctx, "alice", "old")
	require.ErrorIs(t, err, common.ErrInvalidCredentials)

	_, err = svc.Authenticate(ctx, "alice", "new")
	require.NoError(t, err)
}

func TestChangeRole(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	require.NoError(t, svc.Register(ctx, "alice", "pw", RoleUser))
	require.NoError(t, svc.ChangeRole(ctx, "alice", RoleAdmin))

	role, err := svc.Authenticate(ctx, "alice", "pw")
	require.NoError(t, err)
	require.Equal(t, RoleAdmin, role)
}

func TestEnsureAdmin(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	created, err := svc.EnsureAdmin(ctx, "changeme")
	require.NoError(t, err)
	require.True(t, created)

	created, err = svc.EnsureAdmin(ctx, "changeme")
	require.NoError(t, err)
	require.False(t, created)

	role, err := svc.Authenticate(ctx, "admin", "changeme")
	require.NoError(t, err)
	require.Equal(t, RoleAdmin, role)
}
