package vectordb

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cangirhabil/LinguaBot-AI/internal/domain/entities"
)

func doc(tenantID string, index int, question, answer string) entities.Document {
	return entities.NewDocument(entities.FAQ{Question: question, Answer: answer}, tenantID, index)
}

func TestInMemoryStore_NamespaceIsolation(t *testing.T) {
	store := NewInMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Upsert(ctx, "tenant-a",
		[]entities.Document{doc("tenant-a", 0, "A question", "A answer")},
		[][]float32{{1, 0, 0}}))
	require.NoError(t, store.Upsert(ctx, "tenant-b",
		[]entities.Document{doc("tenant-b", 0, "B question", "B answer")},
		[][]float32{{1, 0, 0}}))

	matches, err := store.Query(ctx, "tenant-a", []float32{1, 0, 0}, 10)
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "tenant-a", matches[0].Document.Metadata.TenantID)

	matches, err = store.Query(ctx, "tenant-c", []float32{1, 0, 0}, 10)
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestInMemoryStore_OrdersByScore(t *testing.T) {
	store := NewInMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Upsert(ctx, "t1",
		[]entities.Document{
			doc("t1", 0, "orthogonal", "far"),
			doc("t1", 1, "aligned", "near"),
		},
		[][]float32{{0, 1, 0}, {1, 0, 0}}))

	matches, err := store.Query(ctx, "t1", []float32{1, 0, 0}, 2)
	require.NoError(t, err)
	require.Len(t, matches, 2)
	assert.Equal(t, "t1_1", matches[0].Document.Metadata.RecordID)
	assert.Greater(t, matches[0].Score, matches[1].Score)
}

func TestInMemoryStore_TopKLimit(t *testing.T) {
	store := NewInMemoryStore()
	ctx := context.Background()

	docs := make([]entities.Document, 5)
	vectors := make([][]float32, 5)
	for i := range docs {
		docs[i] = doc("t1", i, "Q", "A")
		vectors[i] = []float32{1, float32(i), 0}
	}
	require.NoError(t, store.Upsert(ctx, "t1", docs, vectors))

	matches, err := store.Query(ctx, "t1", []float32{1, 0, 0}, 3)
	require.NoError(t, err)
	assert.Len(t, matches, 3)
}

func TestInMemoryStore_UpsertOverwritesByRecordID(t *testing.T) {
	store := NewInMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Upsert(ctx, "t1",
		[]entities.Document{doc("t1", 0, "old", "old")},
		[][]float32{{1, 0, 0}}))
	require.NoError(t, store.Upsert(ctx, "t1",
		[]entities.Document{doc("t1", 0, "new", "new")},
		[][]float32{{1, 0, 0}}))

	assert.Equal(t, 1, store.Count("t1"))

	matches, err := store.Query(ctx, "t1", []float32{1, 0, 0}, 1)
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "new", matches[0].Document.Metadata.Question)
}

func TestCosineSimilarity(t *testing.T) {
	assert.InDelta(t, 1.0, cosineSimilarity([]float32{1, 2, 3}, []float32{1, 2, 3}), 1e-9)
	assert.InDelta(t, 0.0, cosineSimilarity([]float32{1, 0}, []float32{0, 1}), 1e-9)
	assert.InDelta(t, -1.0, cosineSimilarity([]float32{1, 0}, []float32{-1, 0}), 1e-9)
	assert.Zero(t, cosineSimilarity([]float32{1, 2}, []float32{1, 2, 3}))
	assert.Zero(t, cosineSimilarity([]float32{0, 0}, []float32{1, 1}))
	assert.Zero(t, cosineSimilarity(nil, nil))
}
