// Package vectordb provides tenant-partitioned vector store adapters.
// Adapters implementing ports.VectorStore.
package vectordb

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/cangirhabil/LinguaBot-AI/internal/domain/entities"
)

// PineconeConfig configures the Pinecone REST client.
type PineconeConfig struct {
	APIKey          string
	IndexName       string
	ControlPlaneURL string // defaults to the public control plane
	Cloud           string // serverless cloud, defaults to aws
	Region          string // serverless region, defaults to us-east-1
	Timeout         time.Duration
}

// Validate checks the fields without which the client cannot operate.
func (c *PineconeConfig) Validate() error {
	if c.APIKey == "" {
		return errors.New("pinecone API key is required")
	}
	if c.IndexName == "" {
		return errors.New("pinecone index name is required")
	}
	return nil
}

// PineconeStore implements ports.VectorStore on a Pinecone serverless
// index. Vectors live in per-tenant namespaces; queries never cross them.
type PineconeStore struct {
	cfg       PineconeConfig
	indexHost string
	client    *http.Client
	logger    *zap.Logger
}

// NewPineconeStore creates a Pinecone store client. EnsureIndex must be
// called before the first Upsert or Query.
func NewPineconeStore(cfg PineconeConfig, logger *zap.Logger) (*PineconeStore, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.ControlPlaneURL == "" {
		cfg.ControlPlaneURL = "https://api.pinecone.io"
	}
	if cfg.Cloud == "" {
		cfg.Cloud = "aws"
	}
	if cfg.Region == "" {
		cfg.Region = "us-east-1"
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 30 * time.Second
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PineconeStore{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
		logger: logger,
	}, nil
}

type indexModel struct {
	Name string `json:"name"`
	Host string `json:"host"`
}

// EnsureIndex makes the backing index usable: it is created once with the
// embedding dimension and cosine metric if absent, otherwise reused, and
// the data-plane host is resolved. Runs at startup, before traffic - index
// creation is not safe to race from the request path.
func (s *PineconeStore) EnsureIndex(ctx context.Context) error {
	var list struct {
		Indexes []indexModel `json:"indexes"`
	}
	if err := s.getJSON(ctx, s.cfg.ControlPlaneURL+"/indexes", &list); err != nil {
		return fmt.Errorf("listing indexes: %w", err)
	}

	for _, idx := range list.Indexes {
		if idx.Name == s.cfg.IndexName {
			return s.setIndexHost(idx.Host)
		}
	}

	s.logger.Info("creating pinecone index",
		zap.String("index", s.cfg.IndexName),
		zap.Int("dimension", entities.EmbeddingDimension))

	create := map[string]any{
		"name":      s.cfg.IndexName,
		"dimension": entities.EmbeddingDimension,
		"metric":    "cosine",
		"spec": map[string]any{
			"serverless": map[string]any{
				"cloud":  s.cfg.Cloud,
				"region": s.cfg.Region,
			},
		},
	}
	var created indexModel
	if err := s.postJSON(ctx, s.cfg.ControlPlaneURL+"/indexes", create, &created); err != nil {
		return fmt.Errorf("creating index %s: %w", s.cfg.IndexName, err)
	}

	if created.Host == "" {
		// Some control-plane responses omit the host until describe.
		if err := s.getJSON(ctx, s.cfg.ControlPlaneURL+"/indexes/"+s.cfg.IndexName, &created); err != nil {
			return fmt.Errorf("describing index %s: %w", s.cfg.IndexName, err)
		}
	}
	return s.setIndexHost(created.Host)
}

func (s *PineconeStore) setIndexHost(host string) error {
	if host == "" {
		return fmt.Errorf("index %s has no data-plane host", s.cfg.IndexName)
	}
	if !strings.HasPrefix(host, "http://") && !strings.HasPrefix(host, "https://") {
		host = "https://" + host
	}
	s.indexHost = host
	return nil
}

type pineconeVector struct {
	ID       string                    `json:"id"`
	Values   []float32                 `json:"values"`
	Metadata entities.DocumentMetadata `json:"metadata"`
}

// Upsert writes the batch into the tenant's namespace.
func (s *PineconeStore) Upsert(ctx context.Context, tenantID string, docs []entities.Document, vectors [][]float32) error {
	if s.indexHost == "" {
		return errors.New("pinecone index not initialized, call EnsureIndex first")
	}
	if len(docs) != len(vectors) {
		return fmt.Errorf("documents and vectors length mismatch: %d vs %d", len(docs), len(vectors))
	}

	records := make([]pineconeVector, len(docs))
	for i, doc := range docs {
		records[i] = pineconeVector{
			ID:       doc.Metadata.RecordID,
			Values:   vectors[i],
			Metadata: doc.Metadata,
		}
	}
	body := map[string]any{
		"vectors":   records,
		"namespace": tenantID,
	}
	if err := s.postJSON(ctx, s.indexHost+"/vectors/upsert", body, nil); err != nil {
		return fmt.Errorf("upserting %d vectors: %w", len(records), err)
	}
	return nil
}

// Query returns the namespace's topK matches, descending by score.
func (s *PineconeStore) Query(ctx context.Context, tenantID string, vector []float32, topK int) ([]entities.Match, error) {
	if s.indexHost == "" {
		return nil, errors.New("pinecone index not initialized, call EnsureIndex first")
	}
	if topK <= 0 {
		topK = 3
	}

	body := map[string]any{
		"vector":          vector,
		"topK":            topK,
		"namespace":       tenantID,
		"includeMetadata": true,
	}
	var out struct {
		Matches []struct {
			ID       string                    `json:"id"`
			Score    float64                   `json:"score"`
			Metadata entities.DocumentMetadata `json:"metadata"`
		} `json:"matches"`
	}
	if err := s.postJSON(ctx, s.indexHost+"/query", body, &out); err != nil {
		return nil, fmt.Errorf("querying namespace %s: %w", tenantID, err)
	}

	matches := make([]entities.Match, 0, len(out.Matches))
	for _, m := range out.Matches {
		matches = append(matches, entities.Match{
			Document: entities.Document{
				Content:  fmt.Sprintf("Question: %s\nAnswer: %s", m.Metadata.Question, m.Metadata.Answer),
				Metadata: m.Metadata,
			},
			Score: m.Score,
		})
	}
	return matches, nil
}

func (s *PineconeStore) getJSON(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	return s.do(req, out)
}

func (s *PineconeStore) postJSON(ctx context.Context, url string, body, out any) error {
	data, err := json.Marshal(body)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return s.do(req, out)
}

func (s *PineconeStore) do(req *http.Request, out any) error {
	req.Header.Set("Api-Key", s.cfg.APIKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("pinecone %s %s failed: %s: %s", req.Method, req.URL.Path, resp.Status, strings.TrimSpace(string(payload)))
	}
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to parse pinecone response: %w", err)
		}
	}
	return nil
}
