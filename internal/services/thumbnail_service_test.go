package services_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"thumbnail-backend/internal/apperrors"
	"thumbnail-backend/internal/models"
	"thumbnail-backend/internal/services"
	"thumbnail-backend/internal/testutil"
)

type fixture struct {
	store      *testutil.MemoryStore
	generator  *testutil.FakeGenerator
	media      *testutil.FakeMedia
	scratchDir string
	service    *services.ThumbnailService
}

func newFixture(t *testing.T) *fixture {
	f := &fixture{
		store:      testutil.NewMemoryStore(),
		generator:  &testutil.FakeGenerator{Image: testutil.PNG},
		media:      &testutil.FakeMedia{},
		scratchDir: filepath.Join(t.TempDir(), "images"),
	}
	f.service = services.NewThumbnailService(f.store, f.generator, f.media, f.scratchDir, nil)
	return f
}

func (f *fixture) scratchFiles(t *testing.T) []string {
	t.Helper()
	entries, err := os.ReadDir(f.scratchDir)
	if os.IsNotExist(err) {
		return nil
	}
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}

var vlogRequest = models.GenerateThumbnailRequest{
	Title:       "My Vlog Ep 1",
	Style:       "minimalist",
	ColorScheme: "pastel",
	AspectRatio: "16:9",
}

func TestGenerate_Success(t *testing.T) {
	f := newFixture(t)
	userID := uuid.New()

	thumb, file, err := f.service.Generate(context.Background(), userID, vlogRequest)

	require.NoError(t, err)
	assert.False(t, thumb.IsGenerating)
	assert.True(t, thumb.ImageURL.Valid)
	assert.NotEmpty(t, thumb.ImageURL.String)
	assert.Equal(t, "Minimalist", thumb.Style)
	assert.Equal(t, f.generator.Prompt, thumb.PromptUsed.String)
	assert.Contains(t, f.generator.Prompt, "My Vlog Ep 1")
	assert.Equal(t, "16:9", f.generator.AspectRatio)

	records := f.store.All()
	require.Len(t, records, 1)
	assert.Equal(t, thumb.ID, records[0].ID)

	// The scratch file stays until the caller has responded.
	require.NotNil(t, file)
	assert.Equal(t, []string{file.Path}, f.media.Uploaded)
	_, err = os.Stat(file.Path)
	require.NoError(t, err)

	f.service.Release(file)
	_, err = os.Stat(file.Path)
	assert.True(t, os.IsNotExist(err))
	assert.Empty(t, f.scratchFiles(t))
}

func TestGenerate_DefaultsAspectRatio(t *testing.T) {
	f := newFixture(t)
	req := vlogRequest
	req.AspectRatio = ""

	thumb, file, err := f.service.Generate(context.Background(), uuid.New(), req)
	require.NoError(t, err)
	defer f.service.Release(file)

	assert.Equal(t, "16:9", thumb.AspectRatio)
	assert.Equal(t, "16:9", f.generator.AspectRatio)
}

func TestGenerate_UnknownStyleNeverCallsModel(t *testing.T) {
	f := newFixture(t)
	req := vlogRequest
	req.Style = "Vaporwave"

	_, file, err := f.service.Generate(context.Background(), uuid.New(), req)

	require.Error(t, err)
	assert.Nil(t, file)
	assert.True(t, apperrors.Is(err, apperrors.KindInvalidInput))
	assert.Equal(t, 0, f.generator.Calls)

	records := f.store.All()
	require.Len(t, records, 1)
	assert.False(t, records[0].IsGenerating)
	assert.False(t, records[0].ImageURL.Valid)
}

func TestGenerate_NoImageMarksRecordFailed(t *testing.T) {
	f := newFixture(t)
	f.generator.Err = apperrors.New(apperrors.KindGeneration, "model response contained no image data", nil)

	_, _, err := f.service.Generate(context.Background(), uuid.New(), vlogRequest)

	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.KindGeneration))
	records := f.store.All()
	require.Len(t, records, 1)
	assert.False(t, records[0].IsGenerating)
	assert.False(t, records[0].ImageURL.Valid)
	assert.Equal(t, 1, f.store.FailCalls)
	assert.Empty(t, f.media.Uploaded)
}

func TestGenerate_TimeoutLeavesNoScratchFile(t *testing.T) {
	f := newFixture(t)
	f.generator.Block = true
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := f.service.Generate(ctx, uuid.New(), vlogRequest)

	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.KindTimeout))
	records := f.store.All()
	require.Len(t, records, 1)
	assert.False(t, records[0].IsGenerating)
	assert.Empty(t, f.scratchFiles(t))
}

func TestGenerate_UploadFailureRemovesScratchFile(t *testing.T) {
	f := newFixture(t)
	f.media.Err = apperrors.New(apperrors.KindUpload, "failed to upload image", nil)

	_, file, err := f.service.Generate(context.Background(), uuid.New(), vlogRequest)

	require.Error(t, err)
	assert.Nil(t, file)
	assert.True(t, apperrors.Is(err, apperrors.KindUpload))
	require.Len(t, f.media.Uploaded, 1)
	_, statErr := os.Stat(f.media.Uploaded[0])
	assert.True(t, os.IsNotExist(statErr))
	assert.False(t, f.store.All()[0].IsGenerating)
}

func TestGenerate_FailsOnlyItsOwnRecord(t *testing.T) {
	f := newFixture(t)
	userID := uuid.New()
	older := models.Thumbnail{ID: uuid.New(), UserID: userID, Title: "older", IsGenerating: true}
	f.store.Put(older)
	f.media.Err = apperrors.New(apperrors.KindUpload, "failed to upload image", nil)

	_, _, err := f.service.Generate(context.Background(), userID, vlogRequest)
	require.Error(t, err)

	got, err := f.store.GetThumbnail(context.Background(), older.ID, userID)
	require.NoError(t, err)
	assert.True(t, got.IsGenerating)
}

func TestGenerate_RecoveryFailureReturnsOriginalError(t *testing.T) {
	f := newFixture(t)
	f.generator.Err = apperrors.New(apperrors.KindGeneration, "model response contained no parts", nil)
	f.store.FailErr = apperrors.New(apperrors.KindStorage, "db down", nil)

	_, _, err := f.service.Generate(context.Background(), uuid.New(), vlogRequest)

	assert.True(t, apperrors.Is(err, apperrors.KindGeneration))
	assert.Equal(t, 1, f.store.FailCalls)
}

func TestGenerate_CreateFailure(t *testing.T) {
	f := newFixture(t)
	f.store.CreateErr = apperrors.New(apperrors.KindStorage, "failed to create thumbnail", nil)

	_, _, err := f.service.Generate(context.Background(), uuid.New(), vlogRequest)

	assert.True(t, apperrors.Is(err, apperrors.KindStorage))
	assert.Equal(t, 0, f.generator.Calls)
	assert.Equal(t, 0, f.store.FailCalls)
}

func TestDelete(t *testing.T) {
	f := newFixture(t)
	userID := uuid.New()
	ctx := context.Background()

	thumb, file, err := f.service.Generate(ctx, userID, vlogRequest)
	require.NoError(t, err)
	f.service.Release(file)

	require.NoError(t, f.service.Delete(ctx, thumb.ID, userID))
	_, err = f.service.Get(ctx, thumb.ID, userID)
	assert.True(t, apperrors.Is(err, apperrors.KindNotFound))
	assert.Equal(t, []string{thumb.ImageURL.String}, f.media.Deleted)

	assert.NoError(t, f.service.Delete(ctx, uuid.New(), userID))
}

func TestDelete_OtherUsersRecordIsUntouched(t *testing.T) {
	f := newFixture(t)
	owner := uuid.New()
	thumb := models.Thumbnail{ID: uuid.New(), UserID: owner, Title: "mine"}
	f.store.Put(thumb)

	require.NoError(t, f.service.Delete(context.Background(), thumb.ID, uuid.New()))

	_, err := f.service.Get(context.Background(), thumb.ID, owner)
	assert.NoError(t, err)
}

func TestList_NewestFirst(t *testing.T) {
	f := newFixture(t)
	userID := uuid.New()
	f.store.Put(models.Thumbnail{ID: uuid.New(), UserID: userID, Title: "first"})
	f.store.Put(models.Thumbnail{ID: uuid.New(), UserID: userID, Title: "second"})
	f.store.Put(models.Thumbnail{ID: uuid.New(), UserID: uuid.New(), Title: "someone else"})

	thumbs, err := f.service.List(context.Background(), userID)

	require.NoError(t, err)
	require.Len(t, thumbs, 2)
	assert.Equal(t, "second", thumbs[0].Title)
	assert.Equal(t, "first", thumbs[1].Title)
}

func TestGenerate_RecordUpdateFailureRemovesUploadedImage(t *testing.T) {
	f := newFixture(t)
	f.store.CompleteErr = apperrors.New(apperrors.KindStorage, "failed to complete thumbnail", nil)

	_, file, err := f.service.Generate(context.Background(), uuid.New(), vlogRequest)

	require.Error(t, err)
	assert.Nil(t, file)
	assert.True(t, apperrors.Is(err, apperrors.KindStorage))
	require.Len(t, f.media.Uploaded, 1)
	require.Len(t, f.media.Deleted, 1)
	assert.Contains(t, f.media.Deleted[0], "https://media.example.com/")
	assert.Equal(t, 1, f.store.FailCalls)
	assert.Empty(t, f.scratchFiles(t))
}
