package services

import (
	"context"
	"testing"

	"drivebox/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func newFolderService(t *testing.T) (*FolderService, *FileService) {
	t.Helper()
	setupTestConfig()
	db := setupTestDB(t)
	return NewFolderService(db), NewFileService(db, newFakeStore())
}

func TestCreateAndListFolders(t *testing.T) {
	svc, _ := newFolderService(t)
	owner := uuid.New()
	ctx := context.Background()

	root, err := svc.Create(ctx, owner, "docs", nil)
	require.NoError(t, err)
	require.Equal(t, "docs", root.Name)
	require.Nil(t, root.ParentID)

	child, err := svc.Create(ctx, owner, "2024", &root.ID)
	require.NoError(t, err)
	require.Equal(t, &root.ID, child.ParentID)

	folders, err := svc.List(ctx, owner)
	require.NoError(t, err)
	require.Len(t, folders, 2)

	other, err := svc.List(ctx, uuid.New())
	require.NoError(t, err)
	require.Empty(t, other)
}

func TestCreateFolderUnknownParent(t *testing.T) {
	svc, _ := newFolderService(t)

	missing := uuid.New()
	_, err := svc.Create(context.Background(), uuid.New(), "orphan", &missing)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestRenameFolder(t *testing.T) {
	svc, _ := newFolderService(t)
	owner := uuid.New()
	ctx := context.Background()

	folder, err := svc.Create(ctx, owner, "drafts", nil)
	require.NoError(t, err)

	_, err = svc.Rename(ctx, owner, folder.ID, "final")
	require.NoError(t, err)

	var reloaded models.Folder
	require.NoError(t, svc.db.First(&reloaded, "id = ?", folder.ID).Error)
	require.Equal(t, "final", reloaded.Name)

	_, err = svc.Rename(ctx, uuid.New(), folder.ID, "nope")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteFolderTrashesContainedFiles(t *testing.T) {
	folders, files := newFolderService(t)
	owner := uuid.New()
	ctx := context.Background()

	folder, err := folders.Create(ctx, owner, "docs", nil)
	require.NoError(t, err)

	inFolder := seedFile(t, folders.db, owner, "inside.txt", "text/plain", 10, func(f *models.File) { f.FolderID = &folder.ID })
	outside := seedFile(t, folders.db, owner, "outside.txt", "text/plain", 10)

	require.NoError(t, folders.Delete(ctx, owner, folder.ID))

	listed, err := folders.List(ctx, owner)
	require.NoError(t, err)
	require.Empty(t, listed)

	trashed, err := files.ListTrash(ctx, owner)
	require.NoError(t, err)
	require.Len(t, trashed, 1)
	require.Equal(t, inFolder.ID, trashed[0].ID)

	active, _, err := files.List(ctx, owner, 1, 20, "")
	require.NoError(t, err)
	require.Len(t, active, 1)
	require.Equal(t, outside.ID, active[0].ID)

	require.ErrorIs(t, folders.Delete(ctx, owner, folder.ID), ErrNotFound)
}
