package services

import (
	portsrepo "github.com/defterpro/defter_backend/internal/core/ports/repositories"
	portssvc "github.com/defterpro/defter_backend/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.User = NewUserService(repos.UserRepo)
	container.CashTransaction = NewCashTransactionService(repos.CashTransactionRepo)
	container.Customer = NewCustomerService(repos.CustomerRepo)
	container.Product = NewProductService(repos.ProductRepo)
	container.Receipt = NewReceiptService(repos.ReceiptRepo, repos.CustomerRepo, repos.ProductRepo)
	container.Reporting = NewReportingService(repos.ReportingRepo)

	return container
}
