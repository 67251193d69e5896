package payments

import "fmt"

// DataIntegrityError means a basket line references a catalog row that no
// longer exists. The whole reconciliation fails; silently dropping the line
// would change the charged amount without the client knowing.
type DataIntegrityError struct {
	Kind string
	ID   int64
}

func (e *DataIntegrityError) Error() string {
	return fmt.Sprintf("basket references %s %d which no longer exists in the catalog", e.Kind, e.ID)
}
