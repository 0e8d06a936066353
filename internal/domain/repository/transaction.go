package repository

import "context"

// TransactionManager runs a unit of work atomically. Repositories obtained from the factory
// inside fn share the transaction; returning an error rolls everything back.
type TransactionManager interface {
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory hands out repositories bound to one transaction.
type RepositoryFactory interface {
	AgentRepo() AgentRepository
	MediaRepo() MediaRepository
	SessionRepo() SessionRepository
}
