package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/fsdevblog/qrpay/internal/domain"
	"github.com/fsdevblog/qrpay/internal/repository/repoargs"
	"github.com/fsdevblog/qrpay/internal/service/mocks"
	"github.com/fsdevblog/qrpay/pkg/uow"
	uowmocks "github.com/fsdevblog/qrpay/pkg/uow/mocks"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type LedgerServiceTestSuite struct {
	suite.Suite
	mockCtrl        *gomock.Controller
	mockUOW         *uowmocks.MockUOW
	mockTX          *uowmocks.MockTX
	mockPaymentRepo *mocks.MockPaymentRepository
	mockOrderRepo   *mocks.MockOrderRepository
	mockCatalogRepo *mocks.MockCatalogRepository
	ledgerService   *LedgerService

	businessID uuid.UUID
	productID  uuid.UUID
}

func TestLedgerServiceSuite(t *testing.T) {
	suite.Run(t, new(LedgerServiceTestSuite))
}

func (s *LedgerServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockUOW = uowmocks.NewMockUOW(s.mockCtrl)
	s.mockTX = uowmocks.NewMockTX(s.mockCtrl)
	s.mockPaymentRepo = mocks.NewMockPaymentRepository(s.mockCtrl)
	s.mockOrderRepo = mocks.NewMockOrderRepository(s.mockCtrl)
	s.mockCatalogRepo = mocks.NewMockCatalogRepository(s.mockCtrl)

	s.businessID = uuid.New()
	s.productID = uuid.New()

	// Репозитории вне транзакции запрашиваются при инициализации сервиса.
	s.mockUOW.EXPECT().GetRepository(uow.RepositoryName(repoargs.PaymentRepoName)).
		Return(s.mockPaymentRepo, nil).AnyTimes()
	s.mockUOW.EXPECT().GetRepository(uow.RepositoryName(repoargs.OrderRepoName)).
		Return(s.mockOrderRepo, nil).AnyTimes()

	// Репозитории внутри транзакции.
	s.mockTX.EXPECT().Get(uow.RepositoryName(repoargs.PaymentRepoName)).Return(s.mockPaymentRepo, nil).AnyTimes()
	s.mockTX.EXPECT().Get(uow.RepositoryName(repoargs.OrderRepoName)).Return(s.mockOrderRepo, nil).AnyTimes()
	s.mockTX.EXPECT().Get(uow.RepositoryName(repoargs.CatalogRepoName)).Return(s.mockCatalogRepo, nil).AnyTimes()

	ledgerService, err := NewLedgerService(s.mockUOW, time.Second)
	s.Require().NoError(err)
	s.ledgerService = ledgerService
}

func (s *LedgerServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *LedgerServiceTestSuite) args() RecordPaymentArgs {
	return RecordPaymentArgs{
		ProviderPaymentID: "pay_1",
		ProductID:         s.productID.String(),
		BusinessID:        s.businessID.String(),
		AmountMinor:       15000,
		Currency:          "INR",
		UPITransactionID:  "upi-123",
	}
}

func (s *LedgerServiceTestSuite) expectDo() {
	s.mockUOW.EXPECT().
		Do(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, uow.TX) error) error {
			return fn(ctx, s.mockTX)
		})
}

func (s *LedgerServiceTestSuite) expectSavepoint() {
	s.mockTX.EXPECT().
		Savepoint(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, uow.TX) error) error {
			return fn(ctx, s.mockTX)
		})
}

func (s *LedgerServiceTestSuite) expectAssignment() {
	s.mockCatalogRepo.EXPECT().
		FindBusinessProduct(gomock.Any(), s.businessID, s.productID).
		Return(&domain.BusinessProduct{ID: uuid.New(), BusinessID: s.businessID, ProductID: s.productID}, nil)
}

func (s *LedgerServiceTestSuite) payment(status domain.PaymentStatusType) *domain.Payment {
	return &domain.Payment{
		ID:                uuid.New(),
		CreatedAt:         time.Now(),
		ProviderPaymentID: "pay_1",
		BusinessID:        s.businessID,
		ProductID:         s.productID,
		Amount:            decimal.New(15000, -2),
		Currency:          "INR",
		Status:            status,
	}
}

func (s *LedgerServiceTestSuite) TestRecordCaptured() {
	payment := s.payment(domain.PaymentStatusCaptured)
	order := &domain.Order{ID: uuid.New(), BusinessID: s.businessID, PaymentID: &payment.ID}

	s.expectDo()
	s.expectAssignment()
	s.mockPaymentRepo.EXPECT().
		InsertIfAbsent(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p repoargs.PaymentCreate) (*domain.Payment, error) {
			s.Equal("pay_1", p.ProviderPaymentID)
			s.True(decimal.RequireFromString("150.00").Equal(p.Amount))
			s.Equal(domain.PaymentStatusCaptured, p.Status)
			s.Require().NotNil(p.UPITransactionID)
			s.Equal("upi-123", *p.UPITransactionID)
			s.Nil(p.ProviderReferenceID)
			return payment, nil
		})
	s.expectSavepoint()
	s.mockOrderRepo.EXPECT().
		CreateOrder(gomock.Any(), repoargs.OrderCreate{
			BusinessID: s.businessID,
			PaymentID:  payment.ID,
			Status:     domain.OrderStatusCompleted,
		}).
		Return(order, nil)
	s.mockOrderRepo.EXPECT().
		CreateOrderItem(gomock.Any(), repoargs.OrderItemCreate{
			OrderID:     order.ID,
			ProductID:   s.productID,
			PriceAtTime: payment.Amount,
			Quantity:    1,
		}).
		Return(&domain.OrderItem{ID: uuid.New()}, nil)

	result, err := s.ledgerService.RecordCaptured(context.Background(), s.args())
	s.Require().NoError(err)
	s.Equal(domain.LedgerOutcomeRecorded, result.Outcome)
	s.Equal(payment, result.Payment)
	s.Equal(order, result.Order)
	s.NoError(result.Err)
}

func (s *LedgerServiceTestSuite) TestRecordFailed() {
	payment := s.payment(domain.PaymentStatusFailed)

	s.expectDo()
	s.expectAssignment()
	s.mockPaymentRepo.EXPECT().
		InsertIfAbsent(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p repoargs.PaymentCreate) (*domain.Payment, error) {
			s.Equal(domain.PaymentStatusFailed, p.Status)
			return payment, nil
		})
	// заказ для неуспешного платежа не создается
	s.mockTX.EXPECT().Savepoint(gomock.Any(), gomock.Any()).Times(0)

	result, err := s.ledgerService.RecordFailed(context.Background(), s.args())
	s.Require().NoError(err)
	s.Equal(domain.LedgerOutcomeRecorded, result.Outcome)
	s.Nil(result.Order)
}

func (s *LedgerServiceTestSuite) TestRecordCaptured_Duplicate() {
	s.expectDo()
	s.expectAssignment()
	s.mockPaymentRepo.EXPECT().
		InsertIfAbsent(gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("[repository/inserting payment `pay_1`] %w", domain.ErrDuplicateKey))

	result, err := s.ledgerService.RecordCaptured(context.Background(), s.args())
	s.Require().NoError(err)
	s.Equal(domain.LedgerOutcomeDuplicate, result.Outcome)
	s.Nil(result.Payment)
}

func (s *LedgerServiceTestSuite) TestRecordCaptured_CorrelationNotFound() {
	s.expectDo()
	s.mockCatalogRepo.EXPECT().
		FindBusinessProduct(gomock.Any(), s.businessID, s.productID).
		Return(nil, fmt.Errorf("[repository/finding assignment] %w", domain.ErrRecordNotFound))
	s.mockPaymentRepo.EXPECT().InsertIfAbsent(gomock.Any(), gomock.Any()).Times(0)

	result, err := s.ledgerService.RecordCaptured(context.Background(), s.args())
	s.Require().NoError(err)
	s.Equal(domain.LedgerOutcomeCorrelationNotFound, result.Outcome)
}

func (s *LedgerServiceTestSuite) TestRecordCaptured_UnparsableIDs() {
	cases := []struct {
		name       string
		productID  string
		businessID string
	}{
		{name: "product", productID: "prod_A", businessID: s.businessID.String()},
		{name: "business", productID: s.productID.String(), businessID: "biz_X"},
	}

	for _, tt := range cases {
		s.Run(tt.name, func() {
			args := s.args()
			args.ProductID = tt.productID
			args.BusinessID = tt.businessID

			// хранилище не вызывается
			result, err := s.ledgerService.RecordCaptured(context.Background(), args)
			s.Require().NoError(err)
			s.Equal(domain.LedgerOutcomeCorrelationNotFound, result.Outcome)
		})
	}
}

func (s *LedgerServiceTestSuite) TestRecord_InvalidAmount() {
	cases := []struct {
		name   string
		amount int64
	}{
		{name: "zero", amount: 0},
		{name: "negative", amount: -15000},
		{name: "column overflow", amount: MaxAmountMinor + 1},
		{name: "paise 10^12", amount: 1_000_000_000_000},
	}

	for _, tt := range cases {
		s.Run(tt.name, func() {
			args := s.args()
			args.AmountMinor = tt.amount

			// хранилище не вызывается
			result, err := s.ledgerService.RecordCaptured(context.Background(), args)
			s.Require().NoError(err)
			s.Equal(domain.LedgerOutcomeInvalidAmount, result.Outcome)
			s.Error(result.Err)
			s.Nil(result.Payment)

			result, err = s.ledgerService.RecordFailed(context.Background(), args)
			s.Require().NoError(err)
			s.Equal(domain.LedgerOutcomeInvalidAmount, result.Outcome)
		})
	}
}

func (s *LedgerServiceTestSuite) TestRecordFailed_MaxAmount() {
	payment := s.payment(domain.PaymentStatusFailed)

	s.expectDo()
	s.expectAssignment()
	s.mockPaymentRepo.EXPECT().
		InsertIfAbsent(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p repoargs.PaymentCreate) (*domain.Payment, error) {
			s.True(decimal.RequireFromString("9999999999.99").Equal(p.Amount))
			return payment, nil
		})

	args := s.args()
	args.AmountMinor = MaxAmountMinor
	result, err := s.ledgerService.RecordFailed(context.Background(), args)
	s.Require().NoError(err)
	s.Equal(domain.LedgerOutcomeRecorded, result.Outcome)
}

func (s *LedgerServiceTestSuite) TestRecordCaptured_OrderMaterializationFailed() {
	payment := s.payment(domain.PaymentStatusCaptured)
	itemErr := fmt.Errorf("[repository/creating item] %w: check violation", domain.ErrUnknown)

	s.expectDo()
	s.expectAssignment()
	s.mockPaymentRepo.EXPECT().InsertIfAbsent(gomock.Any(), gomock.Any()).Return(payment, nil)
	s.expectSavepoint()
	s.mockOrderRepo.EXPECT().
		CreateOrder(gomock.Any(), gomock.Any()).
		Return(&domain.Order{ID: uuid.New()}, nil)
	s.mockOrderRepo.EXPECT().
		CreateOrderItem(gomock.Any(), gomock.Any()).
		Return(nil, itemErr)

	result, err := s.ledgerService.RecordCaptured(context.Background(), s.args())
	s.Require().NoError(err)
	s.Equal(domain.LedgerOutcomeOrderMaterializationFailed, result.Outcome)
	s.Equal(payment, result.Payment)
	s.Nil(result.Order)

	var matErr *domain.OrderMaterializationError
	s.Require().ErrorAs(result.Err, &matErr)
	s.Equal("pay_1", matErr.ProviderPaymentID)
	s.ErrorIs(result.Err, itemErr)
}

func (s *LedgerServiceTestSuite) TestRecordCaptured_StorageUnavailable() {
	connErr := errors.New("dial tcp: connection refused")
	s.mockUOW.EXPECT().Do(gomock.Any(), gomock.Any()).Return(connErr)

	result, err := s.ledgerService.RecordCaptured(context.Background(), s.args())
	s.Nil(result)
	s.ErrorIs(err, domain.ErrStorageUnavailable)
	s.ErrorIs(err, connErr)
}

func (s *LedgerServiceTestSuite) TestRecordCaptured_StorageTimeout() {
	s.mockUOW.EXPECT().
		Do(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ func(context.Context, uow.TX) error) error {
			deadline, ok := ctx.Deadline()
			s.True(ok)
			s.WithinDuration(time.Now().Add(time.Second), deadline, time.Second)
			return context.DeadlineExceeded
		})

	_, err := s.ledgerService.RecordCaptured(context.Background(), s.args())
	s.ErrorIs(err, domain.ErrStorageUnavailable)
}

func (s *LedgerServiceTestSuite) TestMaterializeOrder() {
	s.Run("created", func() {
		payment := s.payment(domain.PaymentStatusCaptured)
		order := &domain.Order{ID: uuid.New(), PaymentID: &payment.ID}

		s.expectDo()
		s.mockPaymentRepo.EXPECT().FindByID(gomock.Any(), payment.ID).Return(payment, nil)
		s.mockOrderRepo.EXPECT().
			FindByPaymentID(gomock.Any(), payment.ID).
			Return(nil, fmt.Errorf("[repository/finding order] %w", domain.ErrRecordNotFound))
		s.mockOrderRepo.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).Return(order, nil)
		s.mockOrderRepo.EXPECT().CreateOrderItem(gomock.Any(), gomock.Any()).Return(&domain.OrderItem{}, nil)

		got, created, err := s.ledgerService.MaterializeOrder(context.Background(), payment.ID)
		s.Require().NoError(err)
		s.True(created)
		s.Equal(order, got)
	})

	s.Run("existing", func() {
		payment := s.payment(domain.PaymentStatusCaptured)
		order := &domain.Order{ID: uuid.New(), PaymentID: &payment.ID}

		s.expectDo()
		s.mockPaymentRepo.EXPECT().FindByID(gomock.Any(), payment.ID).Return(payment, nil)
		s.mockOrderRepo.EXPECT().FindByPaymentID(gomock.Any(), payment.ID).Return(order, nil)

		got, created, err := s.ledgerService.MaterializeOrder(context.Background(), payment.ID)
		s.Require().NoError(err)
		s.False(created)
		s.Equal(order, got)
	})

	s.Run("created concurrently", func() {
		payment := s.payment(domain.PaymentStatusCaptured)
		order := &domain.Order{ID: uuid.New(), PaymentID: &payment.ID}

		s.expectDo()
		s.mockPaymentRepo.EXPECT().FindByID(gomock.Any(), payment.ID).Return(payment, nil)
		gomock.InOrder(
			s.mockOrderRepo.EXPECT().
				FindByPaymentID(gomock.Any(), payment.ID).
				Return(nil, domain.ErrRecordNotFound),
			s.mockOrderRepo.EXPECT().
				CreateOrder(gomock.Any(), gomock.Any()).
				Return(nil, fmt.Errorf("[repository/creating order] %w", domain.ErrDuplicateKey)),
			s.mockOrderRepo.EXPECT().
				FindByPaymentID(gomock.Any(), payment.ID).
				Return(order, nil),
		)

		got, created, err := s.ledgerService.MaterializeOrder(context.Background(), payment.ID)
		s.Require().NoError(err)
		s.False(created)
		s.Equal(order, got)
	})

	s.Run("not captured", func() {
		payment := s.payment(domain.PaymentStatusFailed)

		s.expectDo()
		s.mockPaymentRepo.EXPECT().FindByID(gomock.Any(), payment.ID).Return(payment, nil)

		_, _, err := s.ledgerService.MaterializeOrder(context.Background(), payment.ID)
		s.ErrorIs(err, domain.ErrPaymentNotCaptured)
	})

	s.Run("unknown payment", func() {
		id := uuid.New()

		s.expectDo()
		s.mockPaymentRepo.EXPECT().
			FindByID(gomock.Any(), id).
			Return(nil, fmt.Errorf("[repository/finding payment] %w", domain.ErrRecordNotFound))

		_, _, err := s.ledgerService.MaterializeOrder(context.Background(), id)
		s.ErrorIs(err, domain.ErrRecordNotFound)
		s.NotErrorIs(err, domain.ErrStorageUnavailable)
	})
}

func (s *LedgerServiceTestSuite) TestPendingMaterializations() {
	pending := []domain.PendingMaterialization{{PaymentID: uuid.New(), ProviderPaymentID: "pay_9"}}

	s.mockPaymentRepo.EXPECT().
		PendingMaterializations(gomock.Any(), gomock.Any(), uint(10)).
		DoAndReturn(func(_ context.Context, createdBefore time.Time, _ uint) ([]domain.PendingMaterialization, error) {
			s.WithinDuration(time.Now().Add(-5*time.Minute), createdBefore, time.Second)
			return pending, nil
		})

	got, err := s.ledgerService.PendingMaterializations(context.Background(), 5*time.Minute, 10)
	s.Require().NoError(err)
	s.Equal(pending, got)

	s.mockPaymentRepo.EXPECT().
		PendingMaterializations(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, errors.New("timeout"))
	_, err = s.ledgerService.PendingMaterializations(context.Background(), time.Minute, 10)
	s.ErrorIs(err, domain.ErrStorageUnavailable)
}

func (s *LedgerServiceTestSuite) TestCountPendingMaterializations() {
	s.mockPaymentRepo.EXPECT().
		CountPendingMaterializations(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, createdBefore time.Time) (int, error) {
			s.WithinDuration(time.Now().Add(-5*time.Minute), createdBefore, time.Second)
			return 250, nil
		})

	count, err := s.ledgerService.CountPendingMaterializations(context.Background(), 5*time.Minute)
	s.Require().NoError(err)
	s.Equal(250, count)

	s.mockPaymentRepo.EXPECT().
		CountPendingMaterializations(gomock.Any(), gomock.Any()).
		Return(0, errors.New("connection reset"))
	_, err = s.ledgerService.CountPendingMaterializations(context.Background(), time.Minute)
	s.ErrorIs(err, domain.ErrStorageUnavailable)
}
