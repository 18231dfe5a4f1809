package storage

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/smartbudget/backend/internal/models"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Collection names in Firestore.
const (
	colExpenses   = "expenses"
	colCategories = "categories"
	colBudgets    = "budgets"
	colUsers      = "users"

	// colProbe is only used for the connection round-trip check.
	colProbe = "_healthcheck"
)

// FirestoreStore implements Store on top of a Firestore database.
// Consistency and durability are delegated to Firestore, there are no
// client-side retries.
type FirestoreStore struct {
	client *firestore.Client
}

// NewFirestoreStore wraps an established Firestore client.
func NewFirestoreStore(client *firestore.Client) *FirestoreStore {
	return &FirestoreStore{client: client}
}

// probe verifies that the connection is usable by writing and deleting
// a document.
func (s *FirestoreStore) probe(ctx context.Context) error {
	ref := s.client.Collection(colProbe).Doc("probe")

	if _, err := ref.Set(ctx, map[string]interface{}{"at": time.Now().UTC()}); err != nil {
		return fmt.Errorf("probe write failed: %w", err)
	}

	if _, err := ref.Delete(ctx); err != nil {
		return fmt.Errorf("probe delete failed: %w", err)
	}

	return nil
}

func (s *FirestoreStore) ListExpenses(ctx context.Context) ([]models.Expense, error) {
	iter := s.client.Collection(colExpenses).Documents(ctx)
	defer iter.Stop()

	expenses := make([]models.Expense, 0)
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("listing expenses: %w", err)
		}

		var expense models.Expense
		if err := doc.DataTo(&expense); err != nil {
			return nil, fmt.Errorf("decoding expense %s: %w", doc.Ref.ID, err)
		}
		expense.ID = doc.Ref.ID
		expenses = append(expenses, expense)
	}

	return expenses, nil
}

func (s *FirestoreStore) CreateExpense(ctx context.Context, create models.ExpenseCreate) (models.Expense, error) {
	expense, err := prepareExpense(create)
	if err != nil {
		return models.Expense{}, err
	}

	ref := s.client.Collection(colExpenses).NewDoc()
	expense.ID = ref.ID

	if _, err := ref.Create(ctx, expense); err != nil {
		return models.Expense{}, fmt.Errorf("creating expense: %w", err)
	}

	return expense, nil
}

func (s *FirestoreStore) UpdateExpense(ctx context.Context, id string, update models.ExpenseUpdate) (models.Expense, error) {
	ref := s.client.Collection(colExpenses).Doc(id)

	doc, err := ref.Get(ctx)
	if status.Code(err) == codes.NotFound {
		return models.Expense{}, errExpenseNotFound(id)
	}
	if err != nil {
		return models.Expense{}, fmt.Errorf("reading expense %s: %w", id, err)
	}

	var expense models.Expense
	if err := doc.DataTo(&expense); err != nil {
		return models.Expense{}, fmt.Errorf("decoding expense %s: %w", id, err)
	}
	expense.ID = id

	if err := applyUpdate(&expense, update); err != nil {
		return models.Expense{}, err
	}

	if _, err := ref.Set(ctx, expense); err != nil {
		return models.Expense{}, fmt.Errorf("updating expense %s: %w", id, err)
	}

	return expense, nil
}

func (s *FirestoreStore) DeleteExpense(ctx context.Context, id string) error {
	ref := s.client.Collection(colExpenses).Doc(id)

	// Firestore deletes are no-ops for missing documents, so existence
	// is checked explicitly
	_, err := ref.Get(ctx)
	if status.Code(err) == codes.NotFound {
		return errExpenseNotFound(id)
	}
	if err != nil {
		return fmt.Errorf("reading expense %s: %w", id, err)
	}

	if _, err := ref.Delete(ctx); err != nil {
		return fmt.Errorf("deleting expense %s: %w", id, err)
	}

	return nil
}

func (s *FirestoreStore) ListCategories(ctx context.Context) ([]models.Category, error) {
	iter := s.client.Collection(colCategories).Documents(ctx)
	defer iter.Stop()

	categories := make([]models.Category, 0)
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("listing categories: %w", err)
		}

		var category models.Category
		if err := doc.DataTo(&category); err != nil {
			return nil, fmt.Errorf("decoding category %s: %w", doc.Ref.ID, err)
		}
		category.ID = doc.Ref.ID
		categories = append(categories, category)
	}

	return categories, nil
}

func (s *FirestoreStore) CurrentBudget(ctx context.Context) (models.Budget, error) {
	iter := s.client.Collection(colBudgets).Limit(1).Documents(ctx)
	defer iter.Stop()

	doc, err := iter.Next()
	if err == iterator.Done {
		return models.Budget{}, nil
	}
	if err != nil {
		return models.Budget{}, fmt.Errorf("reading budget: %w", err)
	}

	var budget models.Budget
	if err := doc.DataTo(&budget); err != nil {
		return models.Budget{}, fmt.Errorf("decoding budget %s: %w", doc.Ref.ID, err)
	}
	budget.ID = doc.Ref.ID

	return budget, nil
}

func (s *FirestoreStore) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	_, err := s.GetUserByEmail(ctx, user.Email)
	if err == nil {
		return models.User{}, models.ErrEmailTaken
	}

	ref := s.client.Collection(colUsers).NewDoc()
	user.ID = ref.ID

	if _, err := ref.Create(ctx, user); err != nil {
		return models.User{}, fmt.Errorf("creating user: %w", err)
	}

	return user, nil
}

func (s *FirestoreStore) GetUser(ctx context.Context, id string) (models.User, error) {
	doc, err := s.client.Collection(colUsers).Doc(id).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return models.User{}, errUserNotFound(id)
	}
	if err != nil {
		return models.User{}, fmt.Errorf("reading user %s: %w", id, err)
	}

	var user models.User
	if err := doc.DataTo(&user); err != nil {
		return models.User{}, fmt.Errorf("decoding user %s: %w", id, err)
	}
	user.ID = doc.Ref.ID

	return user, nil
}

func (s *FirestoreStore) GetUserByEmail(ctx context.Context, email string) (models.User, error) {
	iter := s.client.Collection(colUsers).Where("email", "==", email).Limit(1).Documents(ctx)
	defer iter.Stop()

	doc, err := iter.Next()
	if err == iterator.Done {
		return models.User{}, errUserNotFound(email)
	}
	if err != nil {
		return models.User{}, fmt.Errorf("reading user by email: %w", err)
	}

	var user models.User
	if err := doc.DataTo(&user); err != nil {
		return models.User{}, fmt.Errorf("decoding user %s: %w", doc.Ref.ID, err)
	}
	user.ID = doc.Ref.ID

	return user, nil
}

func (s *FirestoreStore) IsMock() bool {
	return false
}

func (s *FirestoreStore) Ping(ctx context.Context) error {
	iter := s.client.Collection(colExpenses).Limit(1).Documents(ctx)
	defer iter.Stop()

	if _, err := iter.Next(); err != nil && err != iterator.Done {
		return fmt.Errorf("pinging firestore: %w", err)
	}

	return nil
}

// Close releases the underlying client.
func (s *FirestoreStore) Close() error {
	return s.client.Close()
}
