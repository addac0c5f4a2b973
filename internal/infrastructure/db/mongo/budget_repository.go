package mongo

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/spendwise/expense-tracker/internal/core/domain"
)

const collectionBudgets = "budgets"

type BudgetRepository struct {
	col *mongo.Collection
	seq *sequence
}

func NewBudgetRepository(db *mongo.Database) *BudgetRepository {
	return &BudgetRepository{col: db.Collection(collectionBudgets), seq: newSequence(db)}
}

type budgetDoc struct {
	ID        int64     `bson:"_id"`
	AccountID int64     `bson:"account_id"`
	Limit     string    `bson:"limit"`
	CreatedAt time.Time `bson:"created_at"`
	UpdatedAt time.Time `bson:"updated_at,omitempty"`
}

func (d budgetDoc) toDomain() (*domain.Budget, error) {
	limit, err := decimal.NewFromString(d.Limit)
	if err != nil {
		return nil, storeErr("decode limit", err)
	}
	return &domain.Budget{
		ID:        d.ID,
		AccountID: d.AccountID,
		Limit:     limit,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}, nil
}

func (r *BudgetRepository) Create(ctx context.Context, b *domain.Budget) (*domain.Budget, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	id, err := r.seq.next(ctx, collectionBudgets)
	if err != nil {
		return nil, err
	}

	doc := budgetDoc{
		ID:        id,
		AccountID: b.AccountID,
		Limit:     b.Limit.String(),
		CreatedAt: b.CreatedAt,
	}
	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		return nil, storeErr("insert budget", err)
	}

	created := *b
	created.ID = id
	return &created, nil
}

// Latest returns the newest row for the account, id as tie-break.
func (r *BudgetRepository) Latest(ctx context.Context, accountID int64) (*domain.Budget, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.FindOne().SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}})

	var doc budgetDoc
	if err := r.col.FindOne(ctx, bson.M{"account_id": accountID}, opts).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrBudgetNotFound
		}
		return nil, storeErr("find budget", err)
	}
	return doc.toDomain()
}

// List returns the full budget history across accounts, oldest first.
func (r *BudgetRepository) List(ctx context.Context) ([]*domain.Budget, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}}))
	if err != nil {
		return nil, storeErr("list budgets", err)
	}
	defer cur.Close(ctx)

	var out []*domain.Budget
	for cur.Next(ctx) {
		var doc budgetDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, storeErr("decode budget", err)
		}
		b, err := doc.toDomain()
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	if err := cur.Err(); err != nil {
		return nil, storeErr("list budgets", err)
	}
	return out, nil
}

func (r *BudgetRepository) UpdateLimit(ctx context.Context, id int64, limit decimal.Decimal) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"limit": limit.String(), "updated_at": time.Now().UTC()}},
	)
	if err != nil {
		return storeErr("update budget", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrBudgetNotFound
	}
	return nil
}

func (r *BudgetRepository) Delete(ctx context.Context, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return storeErr("delete budget", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrBudgetNotFound
	}
	return nil
}

// EnsureIndexes creates the index used by the Latest query.
func (r *BudgetRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "account_id", Value: 1}, {Key: "created_at", Value: -1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
