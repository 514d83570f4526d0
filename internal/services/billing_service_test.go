package services

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"menulink/internal/gateway"
	"menulink/internal/models/db_models"
	"menulink/internal/models/request_models"
	"menulink/pkg/testutils"
	"menulink/pkg/utils"
)

type fakeGateway struct {
	order      *gateway.Order
	err        error
	calls      int
	lastAmount int64
}

func (f *fakeGateway) CreateOrder(ctx context.Context, keyID, keySecret string, amountMinor int64, receipt string) (*gateway.Order, error) {
	f.calls++
	f.lastAmount = amountMinor
	if f.err != nil {
		return nil, f.err
	}
	return f.order, nil
}

type fakeMail struct {
	sentTo   []string
	sendErr  error
	lastPlan string
}

func (f *fakeMail) SendMembershipActivated(to, restaurantName, planName string, expiry int64) error {
	f.sentTo = append(f.sentTo, to)
	f.lastPlan = planName
	return f.sendErr
}

func platformRows(paymentType, keyID, keySecret string) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "payment_type", "whatsapp", "admin_email", "razorpay_key_id", "razorpay_key_secret"}).
		AddRow(1, paymentType, "919900000000", "admin@menulink.app", keyID, keySecret)
}

func planRows(id uint, planType string, price int64) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "name", "description", "price", "original_price", "type", "features", "cta", "popular"}).
		AddRow(id, "Pro", "Everything included", price, price, planType, []byte(`["custom domain"]`), "Get Plan", true)
}

func restaurantRows(id, owner uint, membershipType string, expiry *int64) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "owner", "slug", "name", "membership_type", "expiry_date"}).
		AddRow(id, owner, "tandoori-nights", "Tandoori Nights", membershipType, expiry)
}

func pendingOrderRows(id uint, gatewayOrderID string) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "plan_id", "amount_minor", "currency", "receipt", "gateway_order_id", "gateway_payment_id", "status"}).
		AddRow(id, 1, 49900, "INR", "rcpt-test", gatewayOrderID, nil, "created")
}

func TestMembershipExpiry(t *testing.T) {
	now := int64(1_700_000_000_000)

	assert.Equal(t, now+int64(2_592_000_000), membershipExpiry(db_models.PlanMonthly, now))
	assert.Equal(t, now+int64(31_536_000_000), membershipExpiry(db_models.PlanYearly, now))
	// Known issue carried over from the product definition: lifetime records
	// a finite one-year expiry even though gating never reads it.
	assert.Equal(t, now+int64(31_536_000_000), membershipExpiry(db_models.PlanLifetime, now))
}

func TestMembershipTypeFor(t *testing.T) {
	assert.Equal(t, db_models.MembershipBasic, membershipTypeFor(db_models.PlanMonthly))
	assert.Equal(t, db_models.MembershipBasic, membershipTypeFor(db_models.PlanYearly))
	assert.Equal(t, db_models.MembershipLifetime, membershipTypeFor(db_models.PlanLifetime))
}

func TestInitiateOrder_RazorpayPath(t *testing.T) {
	db, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT \* FROM "platform_data"`).
		WillReturnRows(platformRows("razorpay", "rzp_test_key", "rzp_test_secret"))
	mock.ExpectQuery(`SELECT \* FROM "plans"`).
		WillReturnRows(planRows(1, "monthly", 499))

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "plan_orders"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))
	mock.ExpectCommit()

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "plan_orders" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	gw := &fakeGateway{order: &gateway.Order{ID: "order_live_1", Amount: 49900, Currency: "INR", Status: "created"}}
	service := NewBillingService(db, gw, &fakeMail{})

	result, err := service.InitiateOrder(context.Background(), 1)

	assert.NoError(t, err)
	assert.Equal(t, db_models.PaymentRazorpay, result.PaymentType)
	if assert.NotNil(t, result.Razorpay) {
		assert.Equal(t, "rzp_test_key", result.Razorpay.KeyID)
		assert.Equal(t, "order_live_1", result.Razorpay.RazorpayOrderID)
		assert.Equal(t, int64(49900), result.Razorpay.Amount)
		assert.Equal(t, "INR", result.Razorpay.Currency)
	}
	assert.Equal(t, 1, gw.calls)
	assert.Equal(t, int64(49900), gw.lastAmount, "gateway amount must be in paise")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInitiateOrder_PlanNotFound(t *testing.T) {
	db, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT \* FROM "platform_data"`).
		WillReturnRows(platformRows("razorpay", "rzp_test_key", "rzp_test_secret"))
	mock.ExpectQuery(`SELECT \* FROM "plans"`).
		WillReturnError(gorm.ErrRecordNotFound)

	gw := &fakeGateway{}
	service := NewBillingService(db, gw, &fakeMail{})

	_, err := service.InitiateOrder(context.Background(), 42)

	assert.ErrorIs(t, err, utils.ErrPlanNotFound)
	assert.Equal(t, 0, gw.calls)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInitiateOrder_WhatsAppPath(t *testing.T) {
	db, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT \* FROM "platform_data"`).
		WillReturnRows(platformRows("whatsapp", "", ""))
	mock.ExpectQuery(`SELECT \* FROM "plans"`).
		WillReturnRows(planRows(1, "monthly", 499))

	gw := &fakeGateway{}
	service := NewBillingService(db, gw, &fakeMail{})

	result, err := service.InitiateOrder(context.Background(), 1)

	assert.NoError(t, err)
	assert.Equal(t, db_models.PaymentWhatsApp, result.PaymentType)
	if assert.NotNil(t, result.WhatsApp) {
		assert.Equal(t, "919900000000", result.WhatsApp.WhatsApp)
		assert.Equal(t, int64(499), result.WhatsApp.Amount)
	}
	assert.Equal(t, 0, gw.calls, "whatsapp path never touches the gateway")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInitiateOrder_GatewayFailure(t *testing.T) {
	db, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT \* FROM "platform_data"`).
		WillReturnRows(platformRows("razorpay", "rzp_test_key", "rzp_test_secret"))
	mock.ExpectQuery(`SELECT \* FROM "plans"`).
		WillReturnRows(planRows(1, "monthly", 499))

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "plan_orders"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))
	mock.ExpectCommit()

	// The pending order is marked failed before the error surfaces.
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "plan_orders" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	gw := &fakeGateway{err: errors.New("gateway timeout")}
	service := NewBillingService(db, gw, &fakeMail{})

	_, err := service.InitiateOrder(context.Background(), 1)

	assert.ErrorIs(t, err, utils.ErrGatewayFailure)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func verifyRequest(secret string) request_models.VerifyOrderRequest {
	return request_models.VerifyOrderRequest{
		RazorpayOrderID:   "order_live_1",
		RazorpayPaymentID: "pay_live_1",
		RazorpaySignature: utils.SignPayment(secret, "order_live_1", "pay_live_1"),
		PlanID:            1,
		RestaurantID:      5,
	}
}

func TestVerifyPayment_MonthlyActivatesBasic(t *testing.T) {
	db, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT \* FROM "platform_data"`).
		WillReturnRows(platformRows("razorpay", "rzp_test_key", "rzp_test_secret"))
	mock.ExpectQuery(`SELECT \* FROM "plans"`).
		WillReturnRows(planRows(1, "monthly", 499))
	mock.ExpectQuery(`SELECT \* FROM "restaurants"`).
		WillReturnRows(restaurantRows(5, 9, "trial", nil))

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "plan_orders" .* FOR UPDATE`).
		WillReturnRows(pendingOrderRows(7, "order_live_1"))
	mock.ExpectExec(`UPDATE "plan_orders" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE "restaurants" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	mail := &fakeMail{}
	service := NewBillingService(db, &fakeGateway{}, mail)

	err := service.VerifyPayment(context.Background(), 9, verifyRequest("rzp_test_secret"))

	assert.NoError(t, err)
	assert.Equal(t, []string{"admin@menulink.app"}, mail.sentTo)
	assert.Equal(t, "Pro", mail.lastPlan)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVerifyPayment_MailFailureIsNonFatal(t *testing.T) {
	db, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT \* FROM "platform_data"`).
		WillReturnRows(platformRows("razorpay", "rzp_test_key", "rzp_test_secret"))
	mock.ExpectQuery(`SELECT \* FROM "plans"`).
		WillReturnRows(planRows(1, "monthly", 499))
	mock.ExpectQuery(`SELECT \* FROM "restaurants"`).
		WillReturnRows(restaurantRows(5, 9, "trial", nil))

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "plan_orders" .* FOR UPDATE`).
		WillReturnRows(pendingOrderRows(7, "order_live_1"))
	mock.ExpectExec(`UPDATE "plan_orders" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE "restaurants" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	mail := &fakeMail{sendErr: errors.New("smtp down")}
	service := NewBillingService(db, &fakeGateway{}, mail)

	err := service.VerifyPayment(context.Background(), 9, verifyRequest("rzp_test_secret"))

	assert.NoError(t, err, "a failed notification must not undo the activation")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVerifyPayment_InvalidSignatureNoMutation(t *testing.T) {
	db, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT \* FROM "platform_data"`).
		WillReturnRows(platformRows("razorpay", "rzp_test_key", "rzp_test_secret"))

	service := NewBillingService(db, &fakeGateway{}, &fakeMail{})

	request := verifyRequest("rzp_test_secret")
	request.RazorpaySignature = utils.SignPayment("wrong_secret", "order_live_1", "pay_live_1")

	err := service.VerifyPayment(context.Background(), 9, request)

	assert.ErrorIs(t, err, utils.ErrInvalidSignature)
	// No further queries were expected: a bad signature stops before any
	// read or write beyond the config row.
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVerifyPayment_RestaurantNotFoundMutatesNothing(t *testing.T) {
	db, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT \* FROM "platform_data"`).
		WillReturnRows(platformRows("razorpay", "rzp_test_key", "rzp_test_secret"))
	mock.ExpectQuery(`SELECT \* FROM "plans"`).
		WillReturnRows(planRows(1, "monthly", 499))
	mock.ExpectQuery(`SELECT \* FROM "restaurants"`).
		WillReturnError(gorm.ErrRecordNotFound)

	mail := &fakeMail{}
	service := NewBillingService(db, &fakeGateway{}, mail)

	err := service.VerifyPayment(context.Background(), 9, verifyRequest("rzp_test_secret"))

	assert.ErrorIs(t, err, utils.ErrRestaurantNotFound)
	assert.Empty(t, mail.sentTo)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVerifyPayment_NotOwner(t *testing.T) {
	db, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT \* FROM "platform_data"`).
		WillReturnRows(platformRows("razorpay", "rzp_test_key", "rzp_test_secret"))
	mock.ExpectQuery(`SELECT \* FROM "plans"`).
		WillReturnRows(planRows(1, "monthly", 499))
	mock.ExpectQuery(`SELECT \* FROM "restaurants"`).
		WillReturnRows(restaurantRows(5, 9, "trial", nil))

	service := NewBillingService(db, &fakeGateway{}, &fakeMail{})

	err := service.VerifyPayment(context.Background(), 1000, verifyRequest("rzp_test_secret"))

	assert.ErrorIs(t, err, utils.ErrNotOwner)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVerifyPayment_ReplayRejected(t *testing.T) {
	db, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT \* FROM "platform_data"`).
		WillReturnRows(platformRows("razorpay", "rzp_test_key", "rzp_test_secret"))
	mock.ExpectQuery(`SELECT \* FROM "plans"`).
		WillReturnRows(planRows(1, "monthly", 499))
	mock.ExpectQuery(`SELECT \* FROM "restaurants"`).
		WillReturnRows(restaurantRows(5, 9, "basic", nil))

	mock.ExpectBegin()
	paid := sqlmock.NewRows([]string{"id", "plan_id", "amount_minor", "currency", "receipt", "gateway_order_id", "gateway_payment_id", "status"}).
		AddRow(7, 1, 49900, "INR", "rcpt-test", "order_live_1", "pay_live_1", "paid")
	mock.ExpectQuery(`SELECT \* FROM "plan_orders" .* FOR UPDATE`).
		WillReturnRows(paid)
	mock.ExpectRollback()

	mail := &fakeMail{}
	service := NewBillingService(db, &fakeGateway{}, mail)

	err := service.VerifyPayment(context.Background(), 9, verifyRequest("rzp_test_secret"))

	assert.ErrorIs(t, err, utils.ErrPaymentReplayed)
	assert.Empty(t, mail.sentTo)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVerifyPayment_PlanMismatch(t *testing.T) {
	db, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT \* FROM "platform_data"`).
		WillReturnRows(platformRows("razorpay", "rzp_test_key", "rzp_test_secret"))
	mock.ExpectQuery(`SELECT \* FROM "plans"`).
		WillReturnRows(planRows(2, "lifetime", 9999))
	mock.ExpectQuery(`SELECT \* FROM "restaurants"`).
		WillReturnRows(restaurantRows(5, 9, "trial", nil))

	// The stored order was priced for plan 1; the request names plan 2.
	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "plan_orders" .* FOR UPDATE`).
		WillReturnRows(pendingOrderRows(7, "order_live_1"))
	mock.ExpectRollback()

	mail := &fakeMail{}
	service := NewBillingService(db, &fakeGateway{}, mail)

	request := verifyRequest("rzp_test_secret")
	request.PlanID = 2

	err := service.VerifyPayment(context.Background(), 9, request)

	assert.ErrorIs(t, err, utils.ErrPlanMismatch)
	assert.Empty(t, mail.sentTo)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVerifyPayment_OrderNotFound(t *testing.T) {
	db, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT \* FROM "platform_data"`).
		WillReturnRows(platformRows("razorpay", "rzp_test_key", "rzp_test_secret"))
	mock.ExpectQuery(`SELECT \* FROM "plans"`).
		WillReturnRows(planRows(1, "monthly", 499))
	mock.ExpectQuery(`SELECT \* FROM "restaurants"`).
		WillReturnRows(restaurantRows(5, 9, "trial", nil))

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "plan_orders" .* FOR UPDATE`).
		WillReturnError(gorm.ErrRecordNotFound)
	mock.ExpectRollback()

	service := NewBillingService(db, &fakeGateway{}, &fakeMail{})

	err := service.VerifyPayment(context.Background(), 9, verifyRequest("rzp_test_secret"))

	assert.ErrorIs(t, err, utils.ErrOrderNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
