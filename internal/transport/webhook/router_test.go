package webhook

import (
	"context"
	"fmt"
	"io"
	"testing"

	"github.com/fsdevblog/qrpay/internal/domain"
	"github.com/fsdevblog/qrpay/internal/service"
	"github.com/fsdevblog/qrpay/internal/service/correlation"
	"github.com/fsdevblog/qrpay/internal/service/signature"
	"github.com/fsdevblog/qrpay/internal/transport/webhook/mocks"
	"github.com/golang/mock/gomock"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/suite"
)

const testSecret = "whsec_test"

type RouterTestSuite struct {
	suite.Suite
	mockCtrl    *gomock.Controller
	mockLedger  *mocks.MockLedgerServicer
	mockMetrics *mocks.MockMetricsRecorder
	router      *Router
}

func TestRouterSuite(t *testing.T) {
	suite.Run(t, new(RouterTestSuite))
}

func (s *RouterTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockLedger = mocks.NewMockLedgerServicer(s.mockCtrl)
	s.mockMetrics = mocks.NewMockMetricsRecorder(s.mockCtrl)

	l := logrus.New()
	l.SetOutput(io.Discard)
	s.router = NewRouter(s.mockLedger, testSecret, s.mockMetrics, l)
}

func (s *RouterTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func paymentEvent(event, id string, amount int64, notes, description string) []byte {
	return fmt.Appendf(nil, `{
		"event": %q,
		"payload": {"payment": {"entity": {
			"id": %q,
			"amount": %d,
			"currency": "INR",
			"description": %q,
			"notes": %s,
			"acquirer_data": {"upi_transaction_id": "upi-77", "rrn": "rrn-88"}
		}}}
	}`, event, id, amount, description, notes)
}

func (s *RouterTestSuite) TestCapturedPaymentIsRecorded() {
	body := paymentEvent("payment.captured", "pay_1", 15000, `{"transaction_note": "prod_A|biz_X"}`, "")

	s.mockLedger.EXPECT().
		RecordCaptured(gomock.Any(), service.RecordPaymentArgs{
			ProviderPaymentID:   "pay_1",
			ProductID:           "prod_A",
			BusinessID:          "biz_X",
			AmountMinor:         15000,
			Currency:            "INR",
			UPITransactionID:    "upi-77",
			ProviderReferenceID: "rrn-88",
		}).
		Return(&domain.LedgerResult{Outcome: domain.LedgerOutcomeRecorded}, nil)
	s.mockMetrics.EXPECT().WebhookEvent("payment.captured", "recorded")

	result, err := s.router.Handle(context.Background(), body, signature.Sign(body, testSecret))
	s.Require().NoError(err)
	s.Equal(EventPaymentCaptured, result.Kind)
	s.Equal("pay_1", result.ProviderPaymentID)
	s.Equal(Outcome(domain.LedgerOutcomeRecorded), result.Outcome)
}

func (s *RouterTestSuite) TestFailedPaymentIsRecorded() {
	body := paymentEvent("payment.failed", "pay_2", 500, `{"transaction_note": "prod_A|biz_X"}`, "")

	s.mockLedger.EXPECT().
		RecordFailed(gomock.Any(), gomock.Any()).
		Return(&domain.LedgerResult{Outcome: domain.LedgerOutcomeRecorded}, nil)
	s.mockMetrics.EXPECT().WebhookEvent("payment.failed", "recorded")

	result, err := s.router.Handle(context.Background(), body, signature.Sign(body, testSecret))
	s.Require().NoError(err)
	s.Equal(EventPaymentFailed, result.Kind)
}

func (s *RouterTestSuite) TestNoteFallsBackToDescription() {
	cases := []struct {
		name  string
		notes string
	}{
		{name: "notes array", notes: `[]`},
		{name: "notes null", notes: `null`},
		{name: "notes without note", notes: `{"other": "x"}`},
	}

	for _, tt := range cases {
		s.Run(tt.name, func() {
			body := paymentEvent("payment.captured", "pay_3", 100, tt.notes, "prod_B|biz_Y")

			s.mockLedger.EXPECT().
				RecordCaptured(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, args service.RecordPaymentArgs) (*domain.LedgerResult, error) {
					s.Equal("prod_B", args.ProductID)
					s.Equal("biz_Y", args.BusinessID)
					return &domain.LedgerResult{Outcome: domain.LedgerOutcomeDuplicate}, nil
				})
			s.mockMetrics.EXPECT().WebhookEvent("payment.captured", "duplicate")

			result, err := s.router.Handle(context.Background(), body, signature.Sign(body, testSecret))
			s.Require().NoError(err)
			s.Equal(Outcome(domain.LedgerOutcomeDuplicate), result.Outcome)
		})
	}
}

func (s *RouterTestSuite) TestUndecodableNote() {
	body := paymentEvent("payment.captured", "pay_1", 15000, `{"transaction_note": "prod_A"}`, "")

	s.mockLedger.EXPECT().RecordCaptured(gomock.Any(), gomock.Any()).Times(0)
	s.mockMetrics.EXPECT().WebhookEvent("payment.captured", "decode_failed")

	result, err := s.router.Handle(context.Background(), body, signature.Sign(body, testSecret))
	s.Require().NoError(err)
	s.Equal(OutcomeDecodeFailed, result.Outcome)
	s.ErrorIs(result.Err, correlation.ErrInvalidNote)
}

func (s *RouterTestSuite) TestUnknownEventIsIgnored() {
	body := []byte(`{"event": "refund.processed", "payload": {}}`)

	s.mockMetrics.EXPECT().WebhookEvent("unknown", "ignored")

	result, err := s.router.Handle(context.Background(), body, signature.Sign(body, testSecret))
	s.Require().NoError(err)
	s.Equal(EventUnknown, result.Kind)
	s.Equal(OutcomeIgnored, result.Outcome)
}

func (s *RouterTestSuite) TestMaterializationFailureIsReported() {
	body := paymentEvent("payment.captured", "pay_4", 100, `{"transaction_note": "p|b"}`, "")
	matErr := domain.NewOrderMaterializationError("pay_4", domain.ErrUnknown)

	s.mockLedger.EXPECT().
		RecordCaptured(gomock.Any(), gomock.Any()).
		Return(&domain.LedgerResult{Outcome: domain.LedgerOutcomeOrderMaterializationFailed, Err: matErr}, nil)
	s.mockMetrics.EXPECT().WebhookEvent("payment.captured", "order_materialization_failed")

	result, err := s.router.Handle(context.Background(), body, signature.Sign(body, testSecret))
	s.Require().NoError(err)
	s.Equal(Outcome(domain.LedgerOutcomeOrderMaterializationFailed), result.Outcome)
	s.ErrorIs(result.Err, domain.ErrUnknown)
}

func (s *RouterTestSuite) TestOversizedAmountIsSkipped() {
	body := paymentEvent("payment.captured", "pay_5", 1_000_000_000_000, `{"transaction_note": "p|b"}`, "")

	s.mockLedger.EXPECT().
		RecordCaptured(gomock.Any(), gomock.Any()).
		Return(&domain.LedgerResult{
			Outcome: domain.LedgerOutcomeInvalidAmount,
			Err:     fmt.Errorf("amount %d out of range", int64(1_000_000_000_000)),
		}, nil)
	s.mockMetrics.EXPECT().WebhookEvent("payment.captured", "invalid_amount")

	result, err := s.router.Handle(context.Background(), body, signature.Sign(body, testSecret))
	s.Require().NoError(err)
	s.Equal(Outcome(domain.LedgerOutcomeInvalidAmount), result.Outcome)
	s.Error(result.Err)
}

func (s *RouterTestSuite) TestErrors() {
	valid := paymentEvent("payment.captured", "pay_1", 15000, `{"transaction_note": "prod_A|biz_X"}`, "")
	tampered := append([]byte(nil), valid...)
	tampered[len(tampered)-3] ^= 0x01

	malformed := []byte(`{"event": "payment.captured", "payload": `)
	noID := paymentEvent("payment.captured", "", 15000, `{"transaction_note": "prod_A|biz_X"}`, "")

	cases := []struct {
		name      string
		body      []byte
		signature string
		wantErr   error
	}{
		{name: "missing signature", body: valid, signature: "", wantErr: ErrMissingSignature},
		{name: "blank signature", body: valid, signature: "   ", wantErr: ErrMissingSignature},
		{name: "tampered body", body: tampered, signature: signature.Sign(valid, testSecret), wantErr: ErrInvalidSignature},
		{name: "wrong secret", body: valid, signature: signature.Sign(valid, "other"), wantErr: ErrInvalidSignature},
		{name: "malformed json", body: malformed, signature: signature.Sign(malformed, testSecret), wantErr: ErrMalformedEvent},
		{name: "payment without id", body: noID, signature: signature.Sign(noID, testSecret), wantErr: ErrMalformedEvent},
	}

	for _, tt := range cases {
		s.Run(tt.name, func() {
			// ни журнал, ни метрики не вызываются
			result, err := s.router.Handle(context.Background(), tt.body, tt.signature)
			s.Nil(result)
			s.ErrorIs(err, tt.wantErr)
		})
	}
}

func (s *RouterTestSuite) TestStorageUnavailable() {
	body := paymentEvent("payment.captured", "pay_1", 15000, `{"transaction_note": "prod_A|biz_X"}`, "")

	s.mockLedger.EXPECT().
		RecordCaptured(gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("recording payment: %w", domain.ErrStorageUnavailable))

	result, err := s.router.Handle(context.Background(), body, signature.Sign(body, testSecret))
	s.Nil(result)
	s.ErrorIs(err, domain.ErrStorageUnavailable)
}

func (s *RouterTestSuite) TestParseEventKind() {
	s.Equal(EventPaymentCaptured, ParseEventKind("payment.captured"))
	s.Equal(EventPaymentFailed, ParseEventKind("payment.failed"))
	s.Equal(EventUnknown, ParseEventKind("payment.authorized"))
	s.Equal(EventUnknown, ParseEventKind(""))
	s.Equal("payment.captured", EventPaymentCaptured.String())
}
