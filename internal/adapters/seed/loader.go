// Package seed provides the FAQ seed file loader.
// A seed file is a JSON document holding one tenant's FAQ batch; dropping
// it into the seed directory ingests it without going through the API.
package seed

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cangirhabil/LinguaBot-AI/internal/domain/entities"
)

// seedFile is the on-disk format. TenantID may be omitted, in which case
// the file name (without extension) is the tenant.
type seedFile struct {
	TenantID string         `json:"tenant_id"`
	FAQs     []entities.FAQ `json:"faqs"`
}

// JSONLoader implements ports.SeedLoader for *.json seed files.
type JSONLoader struct{}

// NewJSONLoader creates a new seed file loader.
func NewJSONLoader() *JSONLoader {
	return &JSONLoader{}
}

// Load reads and parses a seed file.
func (l *JSONLoader) Load(ctx context.Context, path string) (string, []entities.FAQ, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", nil, err
	}

	var file seedFile
	if err := json.Unmarshal(data, &file); err != nil {
		return "", nil, fmt.Errorf("parsing seed file %s: %w", path, err)
	}

	tenantID := file.TenantID
	if tenantID == "" {
		base := filepath.Base(path)
		tenantID = strings.TrimSuffix(base, filepath.Ext(base))
	}
	if tenantID == "" {
		return "", nil, fmt.Errorf("seed file %s has no tenant", path)
	}
	return tenantID, file.FAQs, nil
}
