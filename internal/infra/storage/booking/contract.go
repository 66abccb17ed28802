package booking

import (
	"context"
	"database/sql"

	"github.com/careslot/booking-service/pkg/dbmetrics"
)

// Reuse the dbmetrics executor interfaces so the repository works both with
// a bare *sql.DB and the metrics wrapper.
type DBExecutor = dbmetrics.DBExecutor
type TxExecutor = dbmetrics.TxExecutor

// TxBeginner can open transactions. Satisfied by *sql.DB and *dbmetrics.DB.
type TxBeginner interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (TxExecutor, error)
}
