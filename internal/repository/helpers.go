package repository

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/surrealdb/surrealdb.go/pkg/models"

	"github.com/forgo/phonebook/internal/database"
	"github.com/forgo/phonebook/internal/model"
)

// isSchemaViolation checks if an error is a failed field type or assertion
func isSchemaViolation(err error) bool {
	if err == nil || !errors.Is(err, database.ErrQuery) {
		return false
	}
	errStr := err.Error()
	return strings.Contains(errStr, "for field") ||
		strings.Contains(errStr, "but expected")
}

// classifyWriteError turns schema violations into validation errors so they
// reach clients as 400s.
func classifyWriteError(err error) error {
	if isSchemaViolation(err) {
		return &model.ValidationError{Errors: []model.FieldError{{Message: err.Error()}}}
	}
	return err
}

// trimTable strips a "table:" prefix and the ⟨⟩ escaping SurrealDB puts
// around complex record keys.
func trimTable(id, table string) string {
	id = strings.TrimPrefix(id, table+":")
	id = strings.TrimPrefix(id, "⟨")
	id = strings.TrimSuffix(id, "⟩")
	return id
}

// extractRecordKey extracts the key part of a SurrealDB record id
func extractRecordKey(id interface{}) string {
	switch v := id.(type) {
	case string:
		return trimTable(v, PersonTable)
	case models.RecordID:
		return fmt.Sprintf("%v", v.ID)
	case *models.RecordID:
		if v != nil {
			return fmt.Sprintf("%v", v.ID)
		}
	case map[string]interface{}:
		// Handle {"tb": "table", "id": "xxx"} format
		if key, ok := v["id"].(string); ok {
			return key
		}
	}

	// Try JSON marshaling as fallback
	if data, err := json.Marshal(id); err == nil {
		var recordID models.RecordID
		if err := json.Unmarshal(data, &recordID); err == nil && recordID.ID != nil {
			return fmt.Sprintf("%v", recordID.ID)
		}
	}

	return ""
}

// extractCount extracts count from SurrealDB count query result
func extractCount(result interface{}) int {
	if data, ok := result.(map[string]interface{}); ok {
		return extractCountValue(data["count"])
	}
	return extractCountValue(result)
}

// extractCountValue converts various numeric types to int
func extractCountValue(v interface{}) int {
	switch c := v.(type) {
	case float64:
		return int(c)
	case float32:
		return int(c)
	case int:
		return c
	case int64:
		return int(c)
	case uint64:
		return int(c)
	}
	return 0
}

// getString extracts a string value from a map
func getString(m map[string]interface{}, key string) string {
	if v, ok := m[key].(string); ok {
		return v
	}
	return ""
}
