package services

import (
	"context"
	"regexp"
	"testing"
	"time"

	"drivebox/internal/models"

	"github.com/google/uuid"
	dbsql "github.com/kerimovok/go-pkg-database/sql"
	"github.com/stretchr/testify/require"
)

var hexToken32 = regexp.MustCompile(`^[0-9a-f]{32}$`)

func newShareService(t *testing.T) (*ShareService, *FileService, *fakeStore) {
	t.Helper()
	setupTestConfig()
	db := setupTestDB(t)
	store := newFakeStore()
	return NewShareService(db, store), NewFileService(db, store), store
}

func TestGenerateShareToken(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		token, err := GenerateShareToken()
		require.NoError(t, err)
		require.Regexp(t, hexToken32, token)
		require.False(t, seen[token], "tokens must not repeat")
		seen[token] = true
	}
}

func TestCreateShareIssuesTokenAndSignedURL(t *testing.T) {
	shares, files, _ := newShareService(t)
	owner := uuid.New()
	ctx := context.Background()

	file := seedFile(t, files.db, owner, "a.txt", "text/plain", 10)

	before := time.Now().UTC()
	result, err := shares.CreateShare(ctx, owner, file.ID, 60)
	require.NoError(t, err)

	require.Regexp(t, hexToken32, result.Share.Token)
	require.Equal(t, file.ID, result.Share.FileID)
	require.Equal(t, owner, result.Share.UserID)
	require.Contains(t, result.SignedURL, file.StoragePath)

	// expires_at = now + expiresIn.
	require.WithinDuration(t, before.Add(60*time.Second), result.Share.ExpiresAt, 5*time.Second)
}

func TestCreateShareDefaultExpiry(t *testing.T) {
	shares, files, _ := newShareService(t)
	owner := uuid.New()

	file := seedFile(t, files.db, owner, "a.txt", "text/plain", 10)

	result, err := shares.CreateShare(context.Background(), owner, file.ID, 0)
	require.NoError(t, err)
	require.WithinDuration(t, time.Now().UTC().Add(time.Hour), result.Share.ExpiresAt, 5*time.Second)
}

func TestCreateShareEachCallMintsNewToken(t *testing.T) {
	shares, files, _ := newShareService(t)
	owner := uuid.New()

	file := seedFile(t, files.db, owner, "a.txt", "text/plain", 10)

	first, err := shares.CreateShare(context.Background(), owner, file.ID, 60)
	require.NoError(t, err)
	second, err := shares.CreateShare(context.Background(), owner, file.ID, 60)
	require.NoError(t, err)
	require.NotEqual(t, first.Share.Token, second.Share.Token)

	var count int64
	require.NoError(t, shares.db.Model(&models.Share{}).Count(&count).Error)
	require.Equal(t, int64(2), count)
}

func TestCreateShareRequiresOwnership(t *testing.T) {
	shares, files, _ := newShareService(t)
	ctx := context.Background()

	file := seedFile(t, files.db, uuid.New(), "theirs.txt", "text/plain", 10)

	_, err := shares.CreateShare(ctx, uuid.New(), file.ID, 60)
	require.ErrorIs(t, err, ErrNotFound)

	_, err = shares.CreateShare(ctx, uuid.New(), uuid.New(), 60)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestRedeemShareWithinWindow(t *testing.T) {
	shares, files, _ := newShareService(t)
	owner := uuid.New()
	ctx := context.Background()

	file := seedFile(t, files.db, owner, "a.txt", "text/plain", 10)
	created, err := shares.CreateShare(ctx, owner, file.ID, 60)
	require.NoError(t, err)

	result, err := shares.RedeemShare(ctx, created.Share.Token)
	require.NoError(t, err)
	require.Equal(t, file.ID, result.File.ID)
	require.Equal(t, "a.txt", result.File.OriginalName)
	require.Contains(t, result.DownloadURL, file.StoragePath)
}

func TestRedeemShareExpiredAndUnknownAreIdentical(t *testing.T) {
	shares, files, _ := newShareService(t)
	owner := uuid.New()
	ctx := context.Background()

	file := seedFile(t, files.db, owner, "a.txt", "text/plain", 10)
	expired := models.Share{
		BaseModel: dbsql.BaseModel{ID: uuid.New()},
		FileID:    file.ID,
		UserID:    owner,
		Token:     "00112233445566778899aabbccddeeff",
		ExpiresAt: time.Now().UTC().Add(-time.Second),
	}
	require.NoError(t, shares.db.Create(&expired).Error)

	_, expiredErr := shares.RedeemShare(ctx, expired.Token)
	require.ErrorIs(t, expiredErr, ErrShareInvalid)

	_, unknownErr := shares.RedeemShare(ctx, "ffeeddccbbaa99887766554433221100")
	require.ErrorIs(t, unknownErr, ErrShareInvalid)

	// Same failure for both cases so callers cannot probe token existence.
	require.Equal(t, expiredErr, unknownErr)
}

func TestRedeemShareAfterPermanentDelete(t *testing.T) {
	shares, files, _ := newShareService(t)
	owner := uuid.New()
	ctx := context.Background()

	file := seedFile(t, files.db, owner, "a.txt", "text/plain", 10)
	created, err := shares.CreateShare(ctx, owner, file.ID, 60)
	require.NoError(t, err)

	require.NoError(t, files.PermanentlyDelete(ctx, owner, file.ID))

	_, err = shares.RedeemShare(ctx, created.Share.Token)
	require.ErrorIs(t, err, ErrShareInvalid)
}
