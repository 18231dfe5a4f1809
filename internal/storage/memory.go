package storage

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/smartbudget/backend/internal/models"
)

// MemoryStore is the in-memory fallback used when Firestore is not
// available. Data does not survive a restart.
//
// All methods are safe for concurrent use.
type MemoryStore struct {
	mu sync.RWMutex

	expenses   map[string]models.Expense
	categories map[string]models.Category
	budgets    map[string]models.Budget
	users      map[string]models.User
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		expenses:   make(map[string]models.Expense),
		categories: make(map[string]models.Category),
		budgets:    make(map[string]models.Budget),
		users:      make(map[string]models.User),
	}
}

// Seed fills the store with the fixed sample data set so that the API
// returns something useful in mock mode.
func (s *MemoryStore) Seed() *MemoryStore {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.users["user_id_123"] = models.User{
		ID:        "user_id_123",
		Email:     "test@example.com",
		Name:      "Mock User",
		CreatedAt: "2025-10-01",
	}

	s.expenses["exp_001"] = models.Expense{
		ID:          "exp_001",
		UserID:      "user_id_123",
		Amount:      decimal.NewFromFloat(45.50),
		CategoryID:  "cat_food",
		Description: "Groceries at local store",
		Date:        "2025-10-10",
	}
	s.expenses["exp_002"] = models.Expense{
		ID:          "exp_002",
		UserID:      "user_id_123",
		Amount:      decimal.NewFromFloat(15.00),
		CategoryID:  "cat_transport",
		Description: "Bus fare",
		Date:        "2025-10-10",
	}

	s.categories["cat_food"] = models.Category{ID: "cat_food", Name: "Food", Budget: decimal.NewFromInt(150)}
	s.categories["cat_transport"] = models.Category{ID: "cat_transport", Name: "Transportation", Budget: decimal.NewFromInt(50)}
	s.categories["cat_entertainment"] = models.Category{ID: "cat_entertainment", Name: "Entertainment", Budget: decimal.NewFromInt(75)}

	s.budgets["budget_oct_2025"] = models.Budget{
		ID:           "budget_oct_2025",
		UserID:       "user_id_123",
		Month:        "2025-10",
		TotalLimit:   decimal.NewFromInt(400),
		CurrentSpent: decimal.NewFromInt(250),
	}

	return s
}

func (s *MemoryStore) ListExpenses(_ context.Context) ([]models.Expense, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	expenses := make([]models.Expense, 0, len(s.expenses))
	for _, expense := range s.expenses {
		expenses = append(expenses, expense)
	}

	return expenses, nil
}

func (s *MemoryStore) CreateExpense(_ context.Context, create models.ExpenseCreate) (models.Expense, error) {
	expense, err := prepareExpense(create)
	if err != nil {
		return models.Expense{}, err
	}

	expense.ID = uuid.NewString()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.expenses[expense.ID] = expense

	return expense, nil
}

func (s *MemoryStore) UpdateExpense(_ context.Context, id string, update models.ExpenseUpdate) (models.Expense, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	expense, ok := s.expenses[id]
	if !ok {
		return models.Expense{}, errExpenseNotFound(id)
	}

	if err := applyUpdate(&expense, update); err != nil {
		return models.Expense{}, err
	}

	s.expenses[id] = expense
	return expense, nil
}

func (s *MemoryStore) DeleteExpense(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.expenses[id]; !ok {
		return errExpenseNotFound(id)
	}

	delete(s.expenses, id)
	return nil
}

func (s *MemoryStore) ListCategories(_ context.Context) ([]models.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	categories := make([]models.Category, 0, len(s.categories))
	for _, category := range s.categories {
		categories = append(categories, category)
	}

	return categories, nil
}

func (s *MemoryStore) CurrentBudget(_ context.Context) (models.Budget, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	// Arbitrary selection when multiple records exist
	for _, budget := range s.budgets {
		return budget, nil
	}

	return models.Budget{}, nil
}

func (s *MemoryStore) CreateUser(_ context.Context, user models.User) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.users {
		if existing.Email == user.Email {
			return models.User{}, models.ErrEmailTaken
		}
	}

	user.ID = uuid.NewString()
	s.users[user.ID] = user

	return user, nil
}

func (s *MemoryStore) GetUser(_ context.Context, id string) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[id]
	if !ok {
		return models.User{}, errUserNotFound(id)
	}

	return user, nil
}

func (s *MemoryStore) GetUserByEmail(_ context.Context, email string) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, user := range s.users {
		if user.Email == email {
			return user, nil
		}
	}

	return models.User{}, errUserNotFound(email)
}

func (s *MemoryStore) IsMock() bool {
	return true
}

func (s *MemoryStore) Ping(_ context.Context) error {
	return nil
}
