// Package entities contains core business entities.
// These are the enterprise business rules - pure domain objects with no external dependencies.
package entities

import "fmt"

// EmbeddingDimension is the vector dimensionality of the embedding model
// (text-embedding-ada-002). The vector index is provisioned with it.
const EmbeddingDimension = 1536

// FAQ is a single question/answer pair submitted for ingestion.
// It has no identity beyond its position in the submitted batch.
type FAQ struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// DocumentMetadata travels with every vector record and is returned
// verbatim by similarity queries.
type DocumentMetadata struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
	TenantID string `json:"tenant_id"`
	RecordID string `json:"record_id"`
}

// Document is the searchable representation of one FAQ for one tenant.
// Entity knows nothing about how it's embedded or stored.
type Document struct {
	Content  string
	Metadata DocumentMetadata
}

// Match is a retrieved document with its similarity score.
type Match struct {
	Document Document
	Score    float64
}

// NewDocument derives the indexed document for a FAQ. The record ID is
// deterministic over tenant and batch position, so re-ingesting the same
// position for the same tenant overwrites rather than accumulates.
func NewDocument(faq FAQ, tenantID string, index int) Document {
	return Document{
		Content: fmt.Sprintf("Question: %s\nAnswer: %s", faq.Question, faq.Answer),
		Metadata: DocumentMetadata{
			Question: faq.Question,
			Answer:   faq.Answer,
			TenantID: tenantID,
			RecordID: fmt.Sprintf("%s_%d", tenantID, index),
		},
	}
}
