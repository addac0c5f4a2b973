package mongo

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/spendwise/expense-tracker/internal/core/domain"
	"github.com/spendwise/expense-tracker/internal/core/ports"
)

const collectionTransactions = "transactions"

type TransactionRepository struct {
	col *mongo.Collection
	seq *sequence
}

func NewTransactionRepository(db *mongo.Database) *TransactionRepository {
	return &TransactionRepository{col: db.Collection(collectionTransactions), seq: newSequence(db)}
}

// Amounts are stored as decimal strings to avoid float drift.
type transactionDoc struct {
	ID          int64     `bson:"_id"`
	AccountID   int64     `bson:"account_id"`
	Category    string    `bson:"category"`
	Kind        string    `bson:"kind"`
	Date        string    `bson:"date"`
	Amount      string    `bson:"amount"`
	Description string    `bson:"description,omitempty"`
	CreatedAt   time.Time `bson:"created_at"`
	UpdatedAt   time.Time `bson:"updated_at,omitempty"`
}

func (d transactionDoc) toDomain() (*domain.Transaction, error) {
	amount, err := decimal.NewFromString(d.Amount)
	if err != nil {
		return nil, storeErr("decode amount", err)
	}
	return &domain.Transaction{
		ID:          d.ID,
		AccountID:   d.AccountID,
		Category:    d.Category,
		Kind:        d.Kind,
		Date:        d.Date,
		Amount:      amount,
		Description: d.Description,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}, nil
}

func (r *TransactionRepository) Create(ctx context.Context, t *domain.Transaction) (*domain.Transaction, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	id, err := r.seq.next(ctx, collectionTransactions)
	if err != nil {
		return nil, err
	}

	doc := transactionDoc{
		ID:          id,
		AccountID:   t.AccountID,
		Category:    t.Category,
		Kind:        t.Kind,
		Date:        t.Date,
		Amount:      t.Amount.String(),
		Description: t.Description,
		CreatedAt:   t.CreatedAt,
	}
	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		return nil, storeErr("insert transaction", err)
	}

	created := *t
	created.ID = id
	return &created, nil
}

// ListByAccount returns the account's entries ordered by date ascending.
// The date format sorts lexicographically in calendar order.
func (r *TransactionRepository) ListByAccount(ctx context.Context, accountID int64) ([]*domain.Transaction, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx,
		bson.M{"account_id": accountID},
		options.Find().SetSort(bson.D{{Key: "date", Value: 1}, {Key: "_id", Value: 1}}),
	)
	if err != nil {
		return nil, storeErr("list transactions", err)
	}
	defer cur.Close(ctx)

	var out []*domain.Transaction
	for cur.Next(ctx) {
		var doc transactionDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, storeErr("decode transaction", err)
		}
		entry, err := doc.toDomain()
		if err != nil {
			return nil, err
		}
		out = append(out, entry)
	}
	if err := cur.Err(); err != nil {
		return nil, storeErr("list transactions", err)
	}
	return out, nil
}

// Update writes only the supplied patch fields to one row.
func (r *TransactionRepository) Update(ctx context.Context, id int64, patch ports.TransactionPatch) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	set := bson.M{"updated_at": time.Now().UTC()}
	if patch.Category != nil {
		set["category"] = *patch.Category
	}
	if patch.Kind != nil {
		set["kind"] = *patch.Kind
	}
	if patch.Date != nil {
		set["date"] = *patch.Date
	}
	if patch.Amount != nil {
		set["amount"] = patch.Amount.String()
	}
	if patch.Description != nil {
		set["description"] = *patch.Description
	}

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return storeErr("update transaction", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrTransactionNotFound
	}
	return nil
}

func (r *TransactionRepository) Delete(ctx context.Context, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return storeErr("delete transaction", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrTransactionNotFound
	}
	return nil
}

// EnsureIndexes creates the indexes used by the list query.
func (r *TransactionRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "account_id", Value: 1}, {Key: "date", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
