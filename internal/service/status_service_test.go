package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"voucher-settlement/internal/core/domain"
	"voucher-settlement/internal/core/ports"
	"voucher-settlement/internal/core/ports/mocks"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type statusTestDeps struct {
	svc         *DisbursementStatusServiceImpl
	gateway     *mocks.MockPaymentGateway
	voucherRepo *mocks.MockVoucherRepository
	locker      *mocks.MockVoucherLocker
	events      *mocks.MockEventPublisher
	ctrl        *gomock.Controller
}

func setupStatusService(t *testing.T) *statusTestDeps {
	ctrl := gomock.NewController(t)
	d := &statusTestDeps{
		gateway:     mocks.NewMockPaymentGateway(ctrl),
		voucherRepo: mocks.NewMockVoucherRepository(ctrl),
		locker:      mocks.NewMockVoucherLocker(ctrl),
		events:      mocks.NewMockEventPublisher(ctrl),
		ctrl:        ctrl,
	}
	d.svc = NewDisbursementStatusService(
		d.gateway, d.voucherRepo, d.locker, d.events, zerolog.Nop(),
	)
	return d
}

func inFlightVoucher(code string, status domain.DisbursementStatus) *domain.Voucher {
	return &domain.Voucher{
		ID:   uuid.New(),
		Code: code,
		Disbursement: &domain.DisbursementRecord{
			Gateway:       "netbank",
			TransactionID: "TXN-001",
			Status:        status,
			Amount:        2500000,
			Currency:      "PHP",
		},
	}
}

func expectLockAcquired(d *statusTestDeps, code string) {
	d.locker.EXPECT().
		Acquire(gomock.Any(), code, statusLockTTL).
		Return(func() {}, true, nil)
}

// ==================== UpdateVoucherStatus Tests ====================

func TestStatusService_UpdateVoucherStatus_NoRecord(t *testing.T) {
	d := setupStatusService(t)
	defer d.ctrl.Finish()

	voucher := &domain.Voucher{ID: uuid.New(), Code: "ABC123"}

	changed, err := d.svc.UpdateVoucherStatus(context.Background(), voucher)
	require.NoError(t, err)
	assert.False(t, changed)
}

func TestStatusService_UpdateVoucherStatus_AlreadyTerminal(t *testing.T) {
	d := setupStatusService(t)
	defer d.ctrl.Finish()

	// No lock, poll, or save expectations: terminal records are never touched.
	voucher := inFlightVoucher("ABC123", domain.DisbursementSettled)

	changed, err := d.svc.UpdateVoucherStatus(context.Background(), voucher)
	require.NoError(t, err)
	assert.False(t, changed)
}

func TestStatusService_UpdateVoucherStatus_LockBusy(t *testing.T) {
	d := setupStatusService(t)
	defer d.ctrl.Finish()

	voucher := inFlightVoucher("ABC123", domain.DisbursementPending)
	d.locker.EXPECT().
		Acquire(gomock.Any(), "ABC123", statusLockTTL).
		Return(nil, false, nil)

	changed, err := d.svc.UpdateVoucherStatus(context.Background(), voucher)
	require.NoError(t, err)
	assert.False(t, changed)
}

func TestStatusService_UpdateVoucherStatus_Unchanged(t *testing.T) {
	d := setupStatusService(t)
	defer d.ctrl.Finish()

	voucher := inFlightVoucher("ABC123", domain.DisbursementPending)
	expectLockAcquired(d, "ABC123")
	d.gateway.EXPECT().
		CheckDisbursementStatus(gomock.Any(), "TXN-001").
		Return(&ports.StatusReport{Status: "PENDING"}, nil)

	// Same normalized status: no save, no event.
	changed, err := d.svc.UpdateVoucherStatus(context.Background(), voucher)
	require.NoError(t, err)
	assert.False(t, changed)
}

func TestStatusService_UpdateVoucherStatus_TransitionToProcessing(t *testing.T) {
	d := setupStatusService(t)
	defer d.ctrl.Finish()

	voucher := inFlightVoucher("ABC123", domain.DisbursementPending)
	expectLockAcquired(d, "ABC123")
	d.gateway.EXPECT().
		CheckDisbursementStatus(gomock.Any(), "TXN-001").
		Return(&ports.StatusReport{Status: "FORSETTLEMENT"}, nil)
	d.voucherRepo.EXPECT().
		SaveDisbursement(gomock.Any(), voucher.ID, gomock.Any()).
		Return(nil)

	// Non-terminal transition: persisted but no finalized event.
	changed, err := d.svc.UpdateVoucherStatus(context.Background(), voucher)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, domain.DisbursementProcessing, voucher.Disbursement.Status)
	require.NotNil(t, voucher.Disbursement.StatusUpdatedAt)
}

func TestStatusService_UpdateVoucherStatus_SettledWithEnrichment(t *testing.T) {
	d := setupStatusService(t)
	defer d.ctrl.Finish()

	raw := json.RawMessage(`{
		"status": "SETTLED",
		"reference_number": "NB-REF-991",
		"sender_name": "Voucher Platform Inc",
		"settlement_rail": "INSTAPAY",
		"fees": [{"amount": {"num": 1000, "cur": "PHP"}}],
		"status_details": [
			{"status": "Pending", "updated": "2026-08-30T10:00:00Z"},
			{"status": "Settled", "updated": "2026-08-30T10:15:00Z"}
		]
	}`)

	voucher := inFlightVoucher("ABC123", domain.DisbursementProcessing)
	expectLockAcquired(d, "ABC123")
	d.gateway.EXPECT().
		CheckDisbursementStatus(gomock.Any(), "TXN-001").
		Return(&ports.StatusReport{Status: "SETTLED", Raw: raw}, nil)
	d.voucherRepo.EXPECT().
		SaveDisbursement(gomock.Any(), voucher.ID, gomock.Any()).
		Return(nil)
	d.events.EXPECT().
		PublishDisbursementFinalized(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, ev domain.DisbursementFinalized) error {
			assert.Equal(t, "ABC123", ev.VoucherCode)
			assert.Equal(t, domain.DisbursementSettled, ev.Status)
			assert.Equal(t, int64(2500000), ev.Amount)
			return nil
		})

	changed, err := d.svc.UpdateVoucherStatus(context.Background(), voucher)
	require.NoError(t, err)
	assert.True(t, changed)

	rec := voucher.Disbursement
	assert.Equal(t, domain.DisbursementSettled, rec.Status)
	require.NotNil(t, rec.SettledAt)
	assert.Equal(t, "2026-08-30T10:15:00Z", *rec.SettledAt)
	assert.Equal(t, "NB-REF-991", rec.ReferenceNumber)
	assert.Equal(t, "Voucher Platform Inc", rec.SenderName)
	assert.Equal(t, domain.RailInstaPay, rec.SettlementRail)
	require.NotNil(t, rec.Fees)
	assert.Equal(t, int64(1000), rec.Fees.Amount)
	assert.Equal(t, "PHP", rec.Fees.Currency)
	require.Len(t, rec.StatusHistory, 2)
	assert.Equal(t, "Pending", rec.StatusHistory[0].Status)
	assert.Equal(t, "2026-08-30T10:00:00Z", rec.StatusHistory[0].Timestamp)
	assert.Equal(t, "Settled", rec.StatusHistory[1].Status)
	assert.Equal(t, "2026-08-30T10:15:00Z", rec.StatusHistory[1].Timestamp)
	assert.Equal(t, raw, rec.Raw)
}

func TestStatusService_EnrichFromNetbank_NoSettledDetail(t *testing.T) {
	rec := &domain.DisbursementRecord{}
	enrichFromNetbank(rec, json.RawMessage(`{
		"reference_number": "NB-REF-992",
		"status_details": [
			{"status": "Pending", "updated": "2026-08-30T10:00:00Z"},
			{"status": "ForSettlement", "updated": "2026-08-30T10:05:00Z"}
		]
	}`))

	assert.Nil(t, rec.SettledAt)
	assert.Equal(t, "NB-REF-992", rec.ReferenceNumber)
	require.Len(t, rec.StatusHistory, 2)
	assert.Equal(t, "ForSettlement", rec.StatusHistory[1].Status)
}

func TestStatusService_UpdateVoucherStatus_EventFailureDoesNotFail(t *testing.T) {
	d := setupStatusService(t)
	defer d.ctrl.Finish()

	voucher := inFlightVoucher("ABC123", domain.DisbursementProcessing)
	expectLockAcquired(d, "ABC123")
	d.gateway.EXPECT().
		CheckDisbursementStatus(gomock.Any(), "TXN-001").
		Return(&ports.StatusReport{Status: "REJECTED"}, nil)
	d.voucherRepo.EXPECT().
		SaveDisbursement(gomock.Any(), voucher.ID, gomock.Any()).
		Return(nil)
	d.events.EXPECT().
		PublishDisbursementFinalized(gomock.Any(), gomock.Any()).
		Return(errors.New("broker down"))

	changed, err := d.svc.UpdateVoucherStatus(context.Background(), voucher)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, domain.DisbursementFailed, voucher.Disbursement.Status)
}

func TestStatusService_UpdateVoucherStatus_GatewayError(t *testing.T) {
	d := setupStatusService(t)
	defer d.ctrl.Finish()

	voucher := inFlightVoucher("ABC123", domain.DisbursementPending)
	expectLockAcquired(d, "ABC123")
	d.gateway.EXPECT().
		CheckDisbursementStatus(gomock.Any(), "TXN-001").
		Return(nil, errors.New("timeout"))

	changed, err := d.svc.UpdateVoucherStatus(context.Background(), voucher)
	require.Error(t, err)
	assert.False(t, changed)
}

// ==================== UpdatePendingVouchers Tests ====================

func TestStatusService_UpdatePendingVouchers_IsolatesFailures(t *testing.T) {
	d := setupStatusService(t)
	defer d.ctrl.Finish()

	good := inFlightVoucher("GOOD01", domain.DisbursementPending)
	bad := inFlightVoucher("BAD001", domain.DisbursementPending)
	bad.Disbursement.TransactionID = "TXN-BAD"
	unchanged := inFlightVoucher("SAME01", domain.DisbursementPending)
	unchanged.Disbursement.TransactionID = "TXN-SAME"

	d.voucherRepo.EXPECT().
		ListPendingDisbursements(gomock.Any(), 50).
		Return([]domain.Voucher{*good, *bad, *unchanged}, nil)

	expectLockAcquired(d, "GOOD01")
	d.gateway.EXPECT().
		CheckDisbursementStatus(gomock.Any(), "TXN-001").
		Return(&ports.StatusReport{Status: "FORSETTLEMENT"}, nil)
	d.voucherRepo.EXPECT().
		SaveDisbursement(gomock.Any(), good.ID, gomock.Any()).
		Return(nil)

	expectLockAcquired(d, "BAD001")
	d.gateway.EXPECT().
		CheckDisbursementStatus(gomock.Any(), "TXN-BAD").
		Return(nil, errors.New("timeout"))

	expectLockAcquired(d, "SAME01")
	d.gateway.EXPECT().
		CheckDisbursementStatus(gomock.Any(), "TXN-SAME").
		Return(&ports.StatusReport{Status: "PENDING"}, nil)

	updated, err := d.svc.UpdatePendingVouchers(context.Background(), 50)
	require.NoError(t, err)
	assert.Equal(t, 1, updated)
}

func TestStatusService_UpdatePendingVouchers_ListFails(t *testing.T) {
	d := setupStatusService(t)
	defer d.ctrl.Finish()

	d.voucherRepo.EXPECT().
		ListPendingDisbursements(gomock.Any(), 50).
		Return(nil, errors.New("db down"))

	updated, err := d.svc.UpdatePendingVouchers(context.Background(), 50)
	require.Error(t, err)
	assert.Zero(t, updated)
}

// ==================== Enricher Registry Tests ====================

func TestStatusService_UnknownGatewayKeepsStatusOnlyUpdate(t *testing.T) {
	d := setupStatusService(t)
	defer d.ctrl.Finish()

	voucher := inFlightVoucher("ABC123", domain.DisbursementPending)
	voucher.Disbursement.Gateway = "acmebank"
	expectLockAcquired(d, "ABC123")
	d.gateway.EXPECT().
		CheckDisbursementStatus(gomock.Any(), "TXN-001").
		Return(&ports.StatusReport{Status: "SETTLED", Raw: json.RawMessage(`{"x":1}`)}, nil)
	d.voucherRepo.EXPECT().
		SaveDisbursement(gomock.Any(), voucher.ID, gomock.Any()).
		Return(nil)
	d.events.EXPECT().
		PublishDisbursementFinalized(gomock.Any(), gomock.Any()).
		Return(nil)

	changed, err := d.svc.UpdateVoucherStatus(context.Background(), voucher)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, domain.DisbursementSettled, voucher.Disbursement.Status)
	assert.Empty(t, voucher.Disbursement.ReferenceNumber)
}

func TestRegisterStatusEnricher(t *testing.T) {
	called := false
	RegisterStatusEnricher("acmebank", func(rec *domain.DisbursementRecord, _ json.RawMessage) {
		called = true
		rec.SenderName = "acme"
	})
	defer func() {
		enricherMu.Lock()
		delete(enrichers, "acmebank")
		enricherMu.Unlock()
	}()

	fn, ok := enricherFor("acmebank")
	require.True(t, ok)
	rec := &domain.DisbursementRecord{}
	fn(rec, nil)
	assert.True(t, called)
	assert.Equal(t, "acme", rec.SenderName)
}

func TestEnrichFromNetbank_MalformedPayloadIsIgnored(t *testing.T) {
	rec := &domain.DisbursementRecord{ReferenceNumber: "KEEP"}
	enrichFromNetbank(rec, json.RawMessage(`not json`))
	assert.Equal(t, "KEEP", rec.ReferenceNumber)

	// Absent fields never erase prior enrichment.
	enrichFromNetbank(rec, json.RawMessage(`{"status_details":[]}`))
	assert.Equal(t, "KEEP", rec.ReferenceNumber)
	assert.Nil(t, rec.SettledAt)
}
