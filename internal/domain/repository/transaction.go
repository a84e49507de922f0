package repository

import "context"

// TransactionManager defines the interface for managing database transactions.
// It lets the use case layer run multi-step atomic operations without
// depending on a specific DB driver like GORM.
type TransactionManager interface {
	// Execute runs a function within a database transaction. If the function
	// returns an error the transaction is rolled back, otherwise committed.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides repository instances bound to one transaction,
// so every operation inside the transaction shares the same connection.
type RepositoryFactory interface {
	// NewUserRepository returns a UserRepository bound to the current transaction.
	NewUserRepository() UserRepository

	// NewFollowRepository returns a FollowRepository bound to the current transaction.
	NewFollowRepository() FollowRepository

	// NewRefreshTokenRepository returns a RefreshTokenRepository bound to the current transaction.
	NewRefreshTokenRepository() RefreshTokenRepository

	// NewFeedRepository returns a FeedRepository bound to the current transaction.
	NewFeedRepository() FeedRepository

	// NewGroupRepository returns a GroupRepository bound to the current transaction.
	NewGroupRepository() GroupRepository
}
