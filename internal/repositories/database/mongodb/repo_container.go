package mongodb

import (
	"context"

	portsrepo "github.com/SscSPs/healthconnect_wallet/internal/core/ports/repositories"
	"go.mongodb.org/mongo-driver/mongo"
)

// NewRepositoryProvider wires the MongoDB-backed repositories and makes sure
// the indexes they depend on exist.
func NewRepositoryProvider(ctx context.Context, db *mongo.Database) (portsrepo.RepositoryProvider, error) {
	walletRepo := NewMongoWalletRepository(db)
	if err := walletRepo.EnsureIndexes(ctx); err != nil {
		return portsrepo.RepositoryProvider{}, err
	}
	return portsrepo.RepositoryProvider{WalletRepo: walletRepo}, nil
}
