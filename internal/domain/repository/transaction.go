package repository

import "context"

// TransactionManager lets usecases run multi-step writes atomically without
// depending on a specific database driver.
type TransactionManager interface {
	// Execute runs fn inside one transaction. An error from fn rolls the
	// transaction back; nil commits it.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory hands out repository instances bound to the transaction
// Execute opened, so every operation inside fn shares one connection.
type RepositoryFactory interface {
	NewUserRepository() UserRepository
	NewAuthRepository() AuthRepository
	NewRefreshTokenRepository() RefreshTokenRepository
	NewBusinessRepository() BusinessRepository
	NewReviewRepository() ReviewRepository
	NewCategoryRepository() CategoryRepository
}
