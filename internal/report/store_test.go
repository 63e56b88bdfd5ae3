package report

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "salespulse/internal/errors"
)

func newTestStore(t *testing.T) *ArtifactStore {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewArtifactStore(t.TempDir(), logger)
}

func TestArtifactStore_SaveAndRead(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	runID := uuid.NewString()

	require.NoError(t, store.SaveRun(ctx, runID, []byte("png-bytes"), []byte("pdf-bytes")))

	chart, err := store.Chart(ctx, runID)
	require.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), chart)

	doc, err := store.Document(ctx, runID)
	require.NoError(t, err)
	assert.Equal(t, []byte("pdf-bytes"), doc)
}

func TestArtifactStore_LatestTracksNewestRun(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	first := uuid.NewString()
	second := uuid.NewString()
	require.NoError(t, store.SaveRun(ctx, first, []byte("chart-1"), []byte("doc-1")))
	require.NoError(t, store.SaveRun(ctx, second, []byte("chart-2"), []byte("doc-2")))

	assert.Equal(t, second, store.LatestRun())

	doc, err := store.Document(ctx, LatestRunID)
	require.NoError(t, err)
	assert.Equal(t, []byte("doc-2"), doc)

	// Earlier runs stay retrievable by their own ID.
	doc, err = store.Document(ctx, first)
	require.NoError(t, err)
	assert.Equal(t, []byte("doc-1"), doc)
}

func TestArtifactStore_LatestBeforeAnyRun(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Document(context.Background(), LatestRunID)

	var notFound *apperrors.NotFoundError
	assert.True(t, errors.As(err, &notFound))
	assert.Empty(t, store.LatestRun())
}

func TestArtifactStore_UnknownRun(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Chart(context.Background(), uuid.NewString())

	var notFound *apperrors.NotFoundError
	assert.True(t, errors.As(err, &notFound))
}

// Non-UUID IDs never reach the filesystem, so a traversal attempt resolves
// to a plain not found.
func TestArtifactStore_RejectsNonUUIDRunID(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	require.NoError(t, store.SaveRun(ctx, uuid.NewString(), []byte("chart"), []byte("doc")))

	for _, id := range []string{"..", "../..", "latest2", "run-1"} {
		_, err := store.Document(ctx, id)

		var notFound *apperrors.NotFoundError
		assert.True(t, errors.As(err, &notFound), "id %q", id)
	}
}
