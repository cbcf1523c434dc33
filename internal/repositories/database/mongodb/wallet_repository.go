package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/healthconnect_wallet/internal/apperrors"
	"github.com/SscSPs/healthconnect_wallet/internal/core/domain"
	portsrepo "github.com/SscSPs/healthconnect_wallet/internal/core/ports/repositories"
	"github.com/SscSPs/healthconnect_wallet/internal/models"
	"github.com/SscSPs/healthconnect_wallet/internal/utils/mapping"
	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// WalletsCollection holds one document per wallet with its log embedded.
const WalletsCollection = "wallets"

// MongoWalletRepository stores each wallet as a single document, so the log
// entry and the balance are written by one atomic update.
type MongoWalletRepository struct {
	coll *mongo.Collection
}

// NewMongoWalletRepository creates a repository over db.wallets.
func NewMongoWalletRepository(db *mongo.Database) *MongoWalletRepository {
	return &MongoWalletRepository{coll: db.Collection(WalletsCollection)}
}

var _ portsrepo.WalletRepositoryFacade = (*MongoWalletRepository)(nil)

// EnsureIndexes creates the owner uniqueness index the repository relies on.
func (r *MongoWalletRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "ownerId", Value: 1}, {Key: "ownerType", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("uq_owner"),
		},
		{
			Keys:    bson.D{{Key: "ownerType", Value: 1}, {Key: "createdAt", Value: 1}},
			Options: options.Index().SetName("idx_owner_type"),
		},
	})
	if err != nil {
		return unavailable("create wallet indexes", err)
	}
	return nil
}

func ownerFilter(ownerID string, ownerType domain.OwnerType) bson.D {
	return bson.D{{Key: "ownerId", Value: ownerID}, {Key: "ownerType", Value: string(ownerType)}}
}

func unavailable(op string, err error) error {
	return fmt.Errorf("%w: %s: %v", apperrors.ErrPersistenceUnavailable, op, err)
}

func toDomain(m models.Wallet) domain.Wallet {
	if m.Transactions == nil {
		m.Transactions = []models.Transaction{}
	}
	for i := range m.Transactions {
		m.Transactions[i].WalletID = m.WalletID
	}
	return mapping.ToDomainWallet(m)
}

func (r *MongoWalletRepository) FindWalletByOwner(ctx context.Context, ownerID string, ownerType domain.OwnerType) (*domain.Wallet, error) {
	var m models.Wallet
	err := r.coll.FindOne(ctx, ownerFilter(ownerID, ownerType)).Decode(&m)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrNotFound
		}
		return nil, unavailable(fmt.Sprintf("find wallet %s/%s", ownerType, ownerID), err)
	}
	w := toDomain(m)
	return &w, nil
}

func (r *MongoWalletRepository) ListWalletsByOwnerType(ctx context.Context, ownerType domain.OwnerType) ([]domain.Wallet, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: 1}, {Key: "ownerId", Value: 1}}).
		SetProjection(bson.D{{Key: "transactions", Value: 0}})

	cur, err := r.coll.Find(ctx, bson.D{{Key: "ownerType", Value: string(ownerType)}}, opts)
	if err != nil {
		return nil, unavailable("list wallets", err)
	}
	defer cur.Close(ctx)

	var ms []models.Wallet
	if err := cur.All(ctx, &ms); err != nil {
		return nil, unavailable("decode wallets", err)
	}

	wallets := make([]domain.Wallet, 0, len(ms))
	for _, m := range ms {
		wallets = append(wallets, toDomain(m))
	}
	return wallets, nil
}

func (r *MongoWalletRepository) CountWalletsByOwnerType(ctx context.Context, ownerType domain.OwnerType) (int64, error) {
	n, err := r.coll.CountDocuments(ctx, bson.D{{Key: "ownerType", Value: string(ownerType)}})
	if err != nil {
		return 0, unavailable("count wallets", err)
	}
	return n, nil
}

func (r *MongoWalletRepository) CreateWalletIfAbsent(ctx context.Context, wallet domain.Wallet) (*domain.Wallet, error) {
	m := mapping.ToModelWallet(wallet)
	m.Version = 0

	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var stored models.Wallet
	err := r.coll.FindOneAndUpdate(ctx,
		ownerFilter(wallet.OwnerID, wallet.OwnerType),
		bson.D{{Key: "$setOnInsert", Value: m}},
		opts,
	).Decode(&stored)
	if err != nil {
		// Two concurrent upserts can both miss and race on the unique index;
		// the loser reads the winner's document.
		if mongo.IsDuplicateKeyError(err) {
			return r.FindWalletByOwner(ctx, wallet.OwnerID, wallet.OwnerType)
		}
		return nil, unavailable("upsert wallet", err)
	}

	w := toDomain(stored)
	return &w, nil
}

func (r *MongoWalletRepository) AppendTransaction(ctx context.Context, walletID string, expectedVersion int64, txn domain.Transaction, newBalance decimal.Decimal, updatedAt time.Time) error {
	filter := bson.D{
		{Key: "_id", Value: walletID},
		{Key: "version", Value: expectedVersion},
	}
	if txn.Type == domain.Credit && txn.PaymentID != "" {
		filter = append(filter, bson.E{Key: "transactions", Value: bson.D{{Key: "$not", Value: bson.D{{Key: "$elemMatch", Value: bson.D{
			{Key: "type", Value: string(domain.Credit)},
			{Key: "paymentId", Value: txn.PaymentID},
		}}}}}})
	}

	update := bson.D{
		{Key: "$push", Value: bson.D{{Key: "transactions", Value: mapping.ToModelTransaction(walletID, txn)}}},
		{Key: "$set", Value: bson.D{{Key: "balance", Value: newBalance}, {Key: "updatedAt", Value: updatedAt}}},
		{Key: "$inc", Value: bson.D{{Key: "version", Value: int64(1)}}},
	}

	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return unavailable("append wallet transaction", err)
	}
	if res.MatchedCount == 1 {
		return nil
	}
	return r.explainMiss(ctx, walletID, expectedVersion, txn)
}

// explainMiss works out why a conditional append matched no document.
func (r *MongoWalletRepository) explainMiss(ctx context.Context, walletID string, expectedVersion int64, txn domain.Transaction) error {
	var current struct {
		Version int64 `bson:"version"`
	}
	err := r.coll.FindOne(ctx, bson.D{{Key: "_id", Value: walletID}},
		options.FindOne().SetProjection(bson.D{{Key: "version", Value: 1}}),
	).Decode(&current)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return apperrors.ErrNotFound
	}
	if err != nil {
		return unavailable("read wallet version", err)
	}
	if current.Version != expectedVersion {
		return fmt.Errorf("%w: wallet %s is at version %d, expected %d", apperrors.ErrConflict, walletID, current.Version, expectedVersion)
	}
	return fmt.Errorf("%w: payment %s already credited to wallet %s", apperrors.ErrDuplicate, txn.PaymentID, walletID)
}
