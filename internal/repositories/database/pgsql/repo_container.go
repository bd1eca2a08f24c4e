package pgsql

import (
	portsrepo "github.com/defterpro/defter_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		UserRepo:            newPgxUserRepository(dbPool),
		CashTransactionRepo: newPgxCashTransactionRepository(dbPool),
		CustomerRepo:        newPgxCustomerRepository(dbPool),
		ProductRepo:         newPgxProductRepository(dbPool),
		ReceiptRepo:         newPgxReceiptRepository(dbPool),
		ReportingRepo:       newReportingRepository(dbPool),
	}
}
