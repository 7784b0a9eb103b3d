package vectordb

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/cangirhabil/LinguaBot-AI/internal/domain/entities"
	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

// SQLiteStore implements ports.VectorStore with SQLite-based persistence.
// Namespace isolation is enforced by the tenant_id column: every query is
// scoped to one tenant. Similarity is brute force, which is adequate for
// the FAQ-sized corpora a single tenant holds.
type SQLiteStore struct {
	mu sync.RWMutex
	db *sql.DB
}

// NewSQLiteStore opens (or creates) the vector database under dataPath.
func NewSQLiteStore(dataPath string) (*SQLiteStore, error) {
	if dataPath == "" {
		dataPath = "./data"
	}
	if err := os.MkdirAll(dataPath, 0755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	db, err := sql.Open("sqlite3", filepath.Join(dataPath, "vectors.db"))
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	store := &SQLiteStore{db: db}
	if err := store.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("initializing schema: %w", err)
	}
	return store, nil
}

// initSchema creates the necessary tables.
func (s *SQLiteStore) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS faq_vectors (
		record_id TEXT NOT NULL,
		tenant_id TEXT NOT NULL,
		question TEXT NOT NULL,
		answer TEXT NOT NULL,
		content TEXT NOT NULL,
		embedding BLOB NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		PRIMARY KEY (tenant_id, record_id)
	);
	CREATE INDEX IF NOT EXISTS idx_faq_vectors_tenant ON faq_vectors(tenant_id);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Upsert writes the batch into the tenant's namespace, replacing records
// that reuse an existing record ID.
func (s *SQLiteStore) Upsert(ctx context.Context, tenantID string, docs []entities.Document, vectors [][]float32) error {
	if len(docs) != len(vectors) {
		return fmt.Errorf("documents and vectors length mismatch: %d vs %d", len(docs), len(vectors))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT OR REPLACE INTO faq_vectors (record_id, tenant_id, question, answer, content, embedding)
		VALUES (?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("preparing statement: %w", err)
	}
	defer stmt.Close()

	for i, doc := range docs {
		embeddingJSON, err := json.Marshal(vectors[i])
		if err != nil {
			return fmt.Errorf("encoding embedding: %w", err)
		}
		_, err = stmt.ExecContext(ctx,
			doc.Metadata.RecordID,
			tenantID,
			doc.Metadata.Question,
			doc.Metadata.Answer,
			doc.Content,
			embeddingJSON,
		)
		if err != nil {
			return fmt.Errorf("inserting record %s: %w", doc.Metadata.RecordID, err)
		}
	}

	return tx.Commit()
}

// Query loads the tenant's records and ranks them by cosine similarity.
func (s *SQLiteStore) Query(ctx context.Context, tenantID string, vector []float32, topK int) ([]entities.Match, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if topK <= 0 {
		topK = 3
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT record_id, question, answer, content, embedding
		FROM faq_vectors WHERE tenant_id = ?
	`, tenantID)
	if err != nil {
		return nil, fmt.Errorf("querying records: %w", err)
	}
	defer rows.Close()

	var matches []entities.Match
	for rows.Next() {
		var meta entities.DocumentMetadata
		var content string
		var embeddingJSON []byte

		if err := rows.Scan(&meta.RecordID, &meta.Question, &meta.Answer, &content, &embeddingJSON); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}
		meta.TenantID = tenantID

		var embedding []float32
		if err := json.Unmarshal(embeddingJSON, &embedding); err != nil {
			continue // Skip corrupted embeddings
		}

		matches = append(matches, entities.Match{
			Document: entities.Document{Content: content, Metadata: meta},
			Score:    cosineSimilarity(vector, embedding),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	sort.Slice(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})
	if len(matches) > topK {
		matches = matches[:topK]
	}
	return matches, nil
}

// Count returns the number of records in a tenant's namespace.
func (s *SQLiteStore) Count(ctx context.Context, tenantID string) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM faq_vectors WHERE tenant_id = ?", tenantID).Scan(&count)
	return count, err
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
