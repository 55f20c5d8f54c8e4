// Package testutil provides in-memory stand-ins for the database, the image
// model and the media store.
package testutil

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"thumbnail-backend/internal/apperrors"
	"thumbnail-backend/internal/models"
)

// MemoryStore implements services.ThumbnailStore.
type MemoryStore struct {
	mu         sync.Mutex
	thumbnails map[uuid.UUID]models.Thumbnail
	now        time.Time

	CreateErr   error
	CompleteErr error
	FailErr     error
	FailCalls   int
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		thumbnails: make(map[uuid.UUID]models.Thumbnail),
		now:        time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

// tick returns strictly increasing timestamps so ordering is deterministic.
func (m *MemoryStore) tick() time.Time {
	m.now = m.now.Add(time.Second)
	return m.now
}

func (m *MemoryStore) CreateThumbnail(_ context.Context, t *models.Thumbnail) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.CreateErr != nil {
		return m.CreateErr
	}
	t.CreatedAt = m.tick()
	t.UpdatedAt = t.CreatedAt
	m.thumbnails[t.ID] = *t
	return nil
}

func (m *MemoryStore) CompleteThumbnail(_ context.Context, id uuid.UUID, imageURL, promptUsed string) (*models.Thumbnail, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.CompleteErr != nil {
		return nil, m.CompleteErr
	}
	t, ok := m.thumbnails[id]
	if !ok || !t.IsGenerating {
		return nil, apperrors.New(apperrors.KindStorage, "thumbnail is no longer pending", nil)
	}
	t.ImageURL.String, t.ImageURL.Valid = imageURL, true
	t.PromptUsed.String, t.PromptUsed.Valid = promptUsed, true
	t.IsGenerating = false
	t.UpdatedAt = m.tick()
	m.thumbnails[id] = t
	return &t, nil
}

func (m *MemoryStore) FailThumbnail(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.FailCalls++
	if m.FailErr != nil {
		return m.FailErr
	}
	if t, ok := m.thumbnails[id]; ok && t.IsGenerating {
		t.IsGenerating = false
		t.UpdatedAt = m.tick()
		m.thumbnails[id] = t
	}
	return nil
}

func (m *MemoryStore) GetThumbnail(_ context.Context, id, userID uuid.UUID) (*models.Thumbnail, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	t, ok := m.thumbnails[id]
	if !ok || t.UserID != userID {
		return nil, apperrors.New(apperrors.KindNotFound, "thumbnail not found", nil)
	}
	return &t, nil
}

func (m *MemoryStore) ListThumbnails(_ context.Context, userID uuid.UUID) ([]models.Thumbnail, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []models.Thumbnail{}
	for _, t := range m.thumbnails {
		if t.UserID == userID {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (m *MemoryStore) DeleteThumbnail(_ context.Context, id, userID uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if t, ok := m.thumbnails[id]; ok && t.UserID == userID {
		delete(m.thumbnails, id)
	}
	return nil
}

// All returns every stored record regardless of owner.
func (m *MemoryStore) All() []models.Thumbnail {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]models.Thumbnail, 0, len(m.thumbnails))
	for _, t := range m.thumbnails {
		out = append(out, t)
	}
	return out
}

// Put stores t as is.
func (m *MemoryStore) Put(t models.Thumbnail) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if t.CreatedAt.IsZero() {
		t.CreatedAt = m.tick()
	}
	m.thumbnails[t.ID] = t
}

// FakeGenerator implements services.ImageGenerator.
type FakeGenerator struct {
	Image []byte
	Err   error
	// Block, when set, waits for ctx to end and returns its error.
	Block bool

	Calls       int
	Prompt      string
	AspectRatio string
}

func (g *FakeGenerator) GenerateImage(ctx context.Context, prompt, aspectRatio string) ([]byte, error) {
	g.Calls++
	g.Prompt, g.AspectRatio = prompt, aspectRatio
	if g.Block {
		<-ctx.Done()
		return nil, apperrors.New(apperrors.KindTimeout, "image generation timed out", ctx.Err())
	}
	if g.Err != nil {
		return nil, g.Err
	}
	return g.Image, nil
}

// FakeMedia implements services.MediaStore. It records the scratch paths it
// was given so tests can check they were cleaned up.
type FakeMedia struct {
	Err       error
	DeleteErr error

	Uploaded []string
	Deleted  []string
}

func (f *FakeMedia) UploadImage(_ context.Context, userID uuid.UUID, localPath string) (string, error) {
	f.Uploaded = append(f.Uploaded, localPath)
	if f.Err != nil {
		return "", f.Err
	}
	return "https://media.example.com/" + userID.String() + "/" + uuid.NewString() + ".png", nil
}

func (f *FakeMedia) DeleteImage(publicURL string) error {
	f.Deleted = append(f.Deleted, publicURL)
	return f.DeleteErr
}

// PNG is a minimal byte sequence that sniffs as image/png.
var PNG = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")
