package schema

import (
	"fmt"
	"log"

	"gorm.io/gorm"
)

// Variant is one query in a fallback cascade: most-featureful first
// (richest join, modern column names), degrading toward the guaranteed
// base table.
type Variant struct {
	Name string
	SQL  string
	Args []any
}

// RunCascade executes variants in order and scans the first success into
// dest. A variant is skipped only when it fails with a missing-column or
// missing-table error; anything else (constraint violation, syntax, real
// bug) propagates immediately. Returns the name of the variant that served.
func RunCascade(db *gorm.DB, dest any, variants ...Variant) (string, error) {
	var lastErr error
	for _, v := range variants {
		err := db.Raw(v.SQL, v.Args...).Scan(dest).Error
		if err == nil {
			return v.Name, nil
		}
		if !IsSchemaMismatch(err) {
			return v.Name, err
		}
		log.Printf("[INFO] cascade: variant %q does not match live schema: %v", v.Name, err)
		lastErr = err
	}
	return "", fmt.Errorf("no query variant matches the live schema: %w", lastErr)
}
