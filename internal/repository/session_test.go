package repository

import (
	"context"
	"testing"
	"time"

	"github.com/ifab-lab/workshop-backend/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepo() *SessionRepository {
	return NewSessionRepository(time.Minute, time.Minute)
}

func testSession(id string) *entity.Session {
	return &entity.Session{
		ID:           id,
		CurrentPhase: entity.PhaseAsIs,
		Answers: map[string]entity.Answer{
			"as_is_processo": {Text: "gestione ordini"},
		},
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}
}

func TestCreateAndGet(t *testing.T) {
	repo := newTestRepo()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testSession("s1")))

	got, err := repo.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "s1", got.ID)
	assert.Equal(t, "gestione ordini", got.Answers["as_is_processo"].Text)
}

func TestCreate_Duplicate(t *testing.T) {
	repo := newTestRepo()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testSession("s1")))
	assert.Error(t, repo.Create(ctx, testSession("s1")))
}

func TestGet_NotFound(t *testing.T) {
	_, err := newTestRepo().Get(context.Background(), "missing")

	assert.ErrorIs(t, err, entity.ErrSessionNotFound)
}

func TestUpdate(t *testing.T) {
	repo := newTestRepo()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testSession("s1")))

	updated := testSession("s1")
	updated.CurrentPhase = entity.PhaseToBe
	require.NoError(t, repo.Update(ctx, updated))

	got, err := repo.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, entity.PhaseToBe, got.CurrentPhase)
}

func TestUpdate_NotFound(t *testing.T) {
	err := newTestRepo().Update(context.Background(), testSession("missing"))

	assert.ErrorIs(t, err, entity.ErrSessionNotFound)
}

func TestDelete(t *testing.T) {
	repo := newTestRepo()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testSession("s1")))
	require.NoError(t, repo.Delete(ctx, "s1"))

	_, err := repo.Get(ctx, "s1")
	assert.ErrorIs(t, err, entity.ErrSessionNotFound)

	assert.ErrorIs(t, repo.Delete(context.Background(), "s1"), entity.ErrSessionNotFound)
}

func TestGet_ReturnsIsolatedCopy(t *testing.T) {
	repo := newTestRepo()
	ctx := context.Background()

	original := testSession("s1")
	original.Analysis = &entity.AnalysisResult{
		RawText:  "analisi",
		Sections: map[string]string{"introduzione": "testo"},
	}
	require.NoError(t, repo.Create(ctx, original))

	// Mutating what Create received must not leak into the cache.
	original.Answers["as_is_processo"] = entity.Answer{Text: "cambiata"}

	first, err := repo.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "gestione ordini", first.Answers["as_is_processo"].Text)

	// Mutating a fetched copy must not leak either.
	first.Answers["as_is_processo"] = entity.Answer{Text: "manomessa"}
	first.Analysis.Sections["introduzione"] = "manomessa"

	second, err := repo.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "gestione ordini", second.Answers["as_is_processo"].Text)
	assert.Equal(t, "testo", second.Analysis.Sections["introduzione"])
}
