package repository

import "context"

// TransactionManager defines the interface for managing database transactions.
// This allows the use case layer to handle transactions without depending on a
// specific DB driver like GORM.
type TransactionManager interface {
	// Execute runs a function within a database transaction. If the function
	// returns an error, the transaction is rolled back and no partial state
	// remains observable. Otherwise it is committed.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides repository instances bound to one specific
// transaction, so every operation inside an Execute callback shares the same
// database transaction.
type RepositoryFactory interface {
	// DeviceRepo returns a DeviceRepository bound to the current transaction.
	DeviceRepo() DeviceRepository

	// ModuleRepo returns a ModuleRepository bound to the current transaction.
	ModuleRepo() ModuleRepository

	// EventRepo returns an EventRepository bound to the current transaction.
	EventRepo() EventRepository
}
