//go:build unit || e2e

package dbtest

import "carseat-rental/internal/infra/db"

// DBLike is what fixtures write through: the pool in e2e runs, or a transaction.
type DBLike = db.DBTX
