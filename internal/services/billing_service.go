package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"menulink/internal/gateway"
	"menulink/internal/models/db_models"
	"menulink/internal/models/request_models"
	"menulink/internal/models/response_models"
	"menulink/pkg/utils"
)

// CheckoutResult carries whichever checkout shape the configured payment
// method produces.
type CheckoutResult struct {
	PaymentType db_models.PaymentType
	Razorpay    *response_models.RazorpayCheckout
	WhatsApp    *response_models.WhatsAppCheckout
}

type BillingServiceInterface interface {
	InitiateOrder(ctx context.Context, planID uint) (*CheckoutResult, error)
	VerifyPayment(ctx context.Context, accountID uint, request request_models.VerifyOrderRequest) error
}

type BillingService struct {
	db      *gorm.DB
	gateway gateway.OrderCreator
	mail    IMailService
}

func NewBillingService(db *gorm.DB, orderCreator gateway.OrderCreator, mail IMailService) BillingServiceInterface {
	return &BillingService{
		db:      db,
		gateway: orderCreator,
		mail:    mail,
	}
}

// InitiateOrder prices the plan and, on the razorpay path, persists a pending
// PlanOrder before asking the gateway for an order. The pending record is what
// VerifyPayment later consumes, so every checkout leaves a trace even when the
// browser never comes back.
func (b *BillingService) InitiateOrder(ctx context.Context, planID uint) (*CheckoutResult, error) {

	var cfg db_models.PlatformConfig
	err := b.db.WithContext(ctx).First(&cfg, "id = ?", db_models.PlatformConfigID).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.ErrDatabaseError
	}
	hasConfig := err == nil

	var plan db_models.Plan
	if err := b.db.WithContext(ctx).First(&plan, "id = ?", planID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.ErrPlanNotFound
		}
		return nil, utils.ErrDatabaseError
	}

	finalAmount := plan.Price

	if hasConfig && cfg.PaymentType == db_models.PaymentRazorpay &&
		cfg.RazorpayKeyID != "" && cfg.RazorpayKeySecret != "" {

		// Random receipt component; wall-clock receipts collide when two
		// checkouts for the same amount land in the same millisecond.
		receipt := "rcpt-" + uuid.NewString()
		amountMinor := finalAmount * 100 // paise

		order := &db_models.PlanOrder{
			PlanID:      plan.ID,
			AmountMinor: amountMinor,
			Currency:    "INR",
			Receipt:     receipt,
			Status:      db_models.OrderCreated,
		}
		if err := b.db.WithContext(ctx).Create(order).Error; err != nil {
			return nil, utils.ErrDatabaseError
		}

		gatewayOrder, err := b.gateway.CreateOrder(ctx, cfg.RazorpayKeyID, cfg.RazorpayKeySecret, amountMinor, receipt)
		if err != nil {
			_ = b.db.WithContext(ctx).Model(order).
				Update("status", db_models.OrderFailed).Error
			return nil, fmt.Errorf("%w: %v", utils.ErrGatewayFailure, err)
		}

		if err := b.db.WithContext(ctx).Model(order).
			Update("gateway_order_id", gatewayOrder.ID).Error; err != nil {
			return nil, utils.ErrDatabaseError
		}

		return &CheckoutResult{
			PaymentType: db_models.PaymentRazorpay,
			Razorpay: &response_models.RazorpayCheckout{
				KeyID:           cfg.RazorpayKeyID,
				RazorpayOrderID: gatewayOrder.ID,
				Amount:          gatewayOrder.Amount,
				Currency:        gatewayOrder.Currency,
			},
		}, nil
	}

	// whatsapp path: nothing to do server-side, the client templates its own
	// deep link from the platform contact number.
	return &CheckoutResult{
		PaymentType: db_models.PaymentWhatsApp,
		WhatsApp: &response_models.WhatsAppCheckout{
			WhatsApp: cfg.WhatsApp,
			Amount:   finalAmount,
		},
	}, nil
}

// membershipExpiry computes the new expiry for a verified payment.
// Lifetime still records a one-year expiry; gating ignores it for lifetime
// members. Kept as the product defined it.
func membershipExpiry(planType db_models.PlanType, now int64) int64 {
	switch planType {
	case db_models.PlanYearly, db_models.PlanLifetime:
		return now + utils.YearlyPeriodMillis
	default:
		return now + utils.MonthlyPeriodMillis
	}
}

func membershipTypeFor(planType db_models.PlanType) db_models.MembershipType {
	if planType == db_models.PlanLifetime {
		return db_models.MembershipLifetime
	}
	return db_models.MembershipBasic
}

// VerifyPayment checks the gateway signature, then activates the membership
// and consumes the pending order in one transaction. A payment id can only be
// applied once; replays are rejected before any state changes.
func (b *BillingService) VerifyPayment(ctx context.Context, accountID uint, request request_models.VerifyOrderRequest) error {

	var cfg db_models.PlatformConfig
	secret := ""
	err := b.db.WithContext(ctx).First(&cfg, "id = ?", db_models.PlatformConfigID).Error
	if err == nil {
		secret = cfg.RazorpayKeySecret
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return utils.ErrDatabaseError
	}

	if !utils.VerifyPaymentSignature(secret, request.RazorpayOrderID, request.RazorpayPaymentID, request.RazorpaySignature) {
		return utils.ErrInvalidSignature
	}

	var plan db_models.Plan
	if err := b.db.WithContext(ctx).First(&plan, "id = ?", request.PlanID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrPlanNotFound
		}
		return utils.ErrDatabaseError
	}

	now := utils.NowUnixMillis()
	expiry := membershipExpiry(plan.Type, now)

	var restaurant db_models.Restaurant
	if err := b.db.WithContext(ctx).First(&restaurant, "id = ?", request.RestaurantID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrRestaurantNotFound
		}
		return utils.ErrDatabaseError
	}

	if restaurant.Owner != accountID {
		return utils.ErrNotOwner
	}

	newType := membershipTypeFor(plan.Type)

	err = b.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var order db_models.PlanOrder
		// Row lock serializes concurrent verifies of the same order; without
		// it two could both pass the status check below.
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&order, "gateway_order_id = ?", request.RazorpayOrderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.ErrOrderNotFound
			}
			return err
		}

		// The order was priced for one plan at initiation; a payment for it
		// cannot activate a different plan.
		if order.PlanID != plan.ID {
			return utils.ErrPlanMismatch
		}

		if order.Status == db_models.OrderPaid || order.GatewayPaymentID != nil {
			return utils.ErrPaymentReplayed
		}

		if err := tx.Model(&order).Updates(map[string]interface{}{
			"status":             db_models.OrderPaid,
			"gateway_payment_id": request.RazorpayPaymentID,
			"restaurant_id":      restaurant.ID,
			"paid_at":            now,
		}).Error; err != nil {
			// Unique index on gateway_payment_id: the same payment consumed
			// through a different order row.
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return utils.ErrPaymentReplayed
			}
			return err
		}

		return tx.Model(&db_models.Restaurant{}).
			Where("id = ?", restaurant.ID).
			Updates(map[string]interface{}{
				"membership_type": newType,
				"expiry_date":     expiry,
			}).Error
	})
	if err != nil {
		if errors.Is(err, utils.ErrOrderNotFound) || errors.Is(err, utils.ErrPaymentReplayed) ||
			errors.Is(err, utils.ErrPlanMismatch) {
			return err
		}
		return utils.ErrDatabaseError
	}

	if b.mail != nil && cfg.AdminEmail != "" {
		if err := b.mail.SendMembershipActivated(cfg.AdminEmail, restaurant.Name, plan.Name, expiry); err != nil {
			utils.Logger.WithError(err).Warn("admin notification mail failed")
		}
	}

	return nil
}
