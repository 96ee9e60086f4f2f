package progress

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/cryptofolio/cryptofolio-backend/internal/domain"
)

// MockGoalRepository is a mock implementation of GoalRepository for testing
type MockGoalRepository struct {
	mock.Mock
}

func (m *MockGoalRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Goal, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Goal), args.Error(1)
}

func (m *MockGoalRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Goal, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Goal), args.Error(1)
}

func (m *MockGoalRepository) Create(ctx context.Context, goal *domain.Goal) error {
	args := m.Called(ctx, goal)
	return args.Error(0)
}

func (m *MockGoalRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockPriceTargetRepository is a mock implementation of PriceTargetRepository for testing
type MockPriceTargetRepository struct {
	mock.Mock
}

func (m *MockPriceTargetRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.PriceTarget, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PriceTarget), args.Error(1)
}

func (m *MockPriceTargetRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.PriceTarget, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.PriceTarget), args.Error(1)
}

func (m *MockPriceTargetRepository) Create(ctx context.Context, target *domain.PriceTarget) error {
	args := m.Called(ctx, target)
	return args.Error(0)
}

func (m *MockPriceTargetRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockCryptoRepository is a mock implementation of CryptoRepository for testing
type MockCryptoRepository struct {
	mock.Mock
}

func (m *MockCryptoRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Crypto, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Crypto), args.Error(1)
}

func (m *MockCryptoRepository) GetByTicker(ctx context.Context, ticker string) (*domain.Crypto, error) {
	args := m.Called(ctx, ticker)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Crypto), args.Error(1)
}

func (m *MockCryptoRepository) Create(ctx context.Context, crypto *domain.Crypto) error {
	args := m.Called(ctx, crypto)
	return args.Error(0)
}

func (m *MockCryptoRepository) List(ctx context.Context) ([]*domain.Crypto, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Crypto), args.Error(1)
}

func (m *MockCryptoRepository) ListStale(ctx context.Context, cutoff time.Time, limit int) ([]*domain.Crypto, error) {
	args := m.Called(ctx, cutoff, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Crypto), args.Error(1)
}

func (m *MockCryptoRepository) UpdateMarketData(ctx context.Context, id uuid.UUID, prices domain.Prices, changes domain.PriceChanges, fetchedAt time.Time) error {
	args := m.Called(ctx, id, prices, changes, fetchedAt)
	return args.Error(0)
}

// MockHoldingRepository is a mock implementation of HoldingRepository for testing
type MockHoldingRepository struct {
	mock.Mock
}

func (m *MockHoldingRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Holding, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Holding), args.Error(1)
}

func (m *MockHoldingRepository) Find(ctx context.Context, userID, cryptoID, platformID uuid.UUID) (*domain.Holding, error) {
	args := m.Called(ctx, userID, cryptoID, platformID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Holding), args.Error(1)
}

func (m *MockHoldingRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Holding, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Holding), args.Error(1)
}

func (m *MockHoldingRepository) ListByUserAndCrypto(ctx context.Context, userID, cryptoID uuid.UUID) ([]*domain.Holding, error) {
	args := m.Called(ctx, userID, cryptoID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Holding), args.Error(1)
}

func (m *MockHoldingRepository) ListByUserAndPlatform(ctx context.Context, userID, platformID uuid.UUID) ([]*domain.Holding, error) {
	args := m.Called(ctx, userID, platformID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Holding), args.Error(1)
}

func (m *MockHoldingRepository) Save(ctx context.Context, holding *domain.Holding) error {
	args := m.Called(ctx, holding)
	return args.Error(0)
}

func (m *MockHoldingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockHoldingRepository) ListUserIDs(ctx context.Context) ([]uuid.UUID, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]uuid.UUID), args.Error(1)
}

func TestGoalProgress_HoldingsSpreadAcrossPlatforms(t *testing.T) {
	ctx := context.Background()
	mockGoalRepo := new(MockGoalRepository)
	mockTargetRepo := new(MockPriceTargetRepository)
	mockCryptoRepo := new(MockCryptoRepository)
	mockHoldingRepo := new(MockHoldingRepository)

	service := NewService(mockGoalRepo, mockTargetRepo, mockCryptoRepo, mockHoldingRepo)

	userID := uuid.New()
	cryptoID := uuid.New()
	goalID := uuid.New()

	goal := &domain.Goal{
		ID:           goalID,
		UserID:       userID,
		CryptoID:     cryptoID,
		GoalQuantity: decimal.NewFromInt(10),
	}
	eth := &domain.Crypto{
		ID:     cryptoID,
		Name:   "Ethereum",
		Ticker: "ETH",
		Prices: domain.Prices{
			USD: decimal.NewFromInt(50),
			EUR: decimal.NewFromInt(46),
			BTC: decimal.RequireFromString("0.05"),
		},
	}
	holdings := []*domain.Holding{
		{ID: uuid.New(), UserID: userID, CryptoID: cryptoID, PlatformID: uuid.New(), Quantity: decimal.NewFromInt(3)},
		{ID: uuid.New(), UserID: userID, CryptoID: cryptoID, PlatformID: uuid.New(), Quantity: decimal.NewFromInt(1)},
	}

	mockGoalRepo.On("GetByID", ctx, goalID).Return(goal, nil)
	mockCryptoRepo.On("GetByID", ctx, cryptoID).Return(eth, nil)
	mockHoldingRepo.On("ListByUserAndCrypto", ctx, userID, cryptoID).Return(holdings, nil)

	report, err := service.GoalProgress(ctx, goalID)

	assert.NoError(t, err)
	assert.NotNil(t, report)
	assert.Equal(t, "Ethereum", report.CryptoName)
	assert.True(t, report.ActualQuantity.Equal(decimal.NewFromInt(4)))
	assert.Equal(t, "6", report.RemainingQuantity.String())
	assert.Equal(t, 40.0, report.Progress)
	assert.Equal(t, "300.00", report.MoneyNeeded.StringFixed(2))

	mockGoalRepo.AssertExpectations(t)
	mockCryptoRepo.AssertExpectations(t)
	mockHoldingRepo.AssertExpectations(t)
}

func TestGoalProgress_UnknownGoal(t *testing.T) {
	ctx := context.Background()
	mockGoalRepo := new(MockGoalRepository)
	mockTargetRepo := new(MockPriceTargetRepository)
	mockCryptoRepo := new(MockCryptoRepository)
	mockHoldingRepo := new(MockHoldingRepository)

	service := NewService(mockGoalRepo, mockTargetRepo, mockCryptoRepo, mockHoldingRepo)

	goalID := uuid.New()
	mockGoalRepo.On("GetByID", ctx, goalID).Return(nil, domain.ErrNotFound)

	report, err := service.GoalProgress(ctx, goalID)

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Nil(t, report)
	mockCryptoRepo.AssertNotCalled(t, "GetByID")
	mockHoldingRepo.AssertNotCalled(t, "ListByUserAndCrypto")
}

func TestTargetProgress_PriceBelowTarget(t *testing.T) {
	ctx := context.Background()
	mockGoalRepo := new(MockGoalRepository)
	mockTargetRepo := new(MockPriceTargetRepository)
	mockCryptoRepo := new(MockCryptoRepository)
	mockHoldingRepo := new(MockHoldingRepository)

	service := NewService(mockGoalRepo, mockTargetRepo, mockCryptoRepo, mockHoldingRepo)

	cryptoID := uuid.New()
	targetID := uuid.New()

	target := &domain.PriceTarget{
		ID:       targetID,
		UserID:   uuid.New(),
		CryptoID: cryptoID,
		Target:   decimal.NewFromInt(120),
	}
	sol := &domain.Crypto{
		ID:     cryptoID,
		Name:   "Solana",
		Ticker: "SOL",
		Prices: domain.Prices{
			USD: decimal.NewFromInt(100),
			EUR: decimal.NewFromInt(92),
			BTC: decimal.RequireFromString("0.0016"),
		},
	}

	mockTargetRepo.On("GetByID", ctx, targetID).Return(target, nil)
	mockCryptoRepo.On("GetByID", ctx, cryptoID).Return(sol, nil)

	report, err := service.TargetProgress(ctx, targetID)

	assert.NoError(t, err)
	assert.NotNil(t, report)
	assert.Equal(t, "SOL", report.CryptoTicker)
	assert.Equal(t, "20.00", report.ChangeNeeded.StringFixed(2))

	mockTargetRepo.AssertExpectations(t)
	mockCryptoRepo.AssertExpectations(t)
}
