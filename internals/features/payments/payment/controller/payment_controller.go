package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"vatplatform_backend/internals/constants"
	paymentDTO "vatplatform_backend/internals/features/payments/payment/dto"
	paymentModel "vatplatform_backend/internals/features/payments/payment/model"
	paymentService "vatplatform_backend/internals/features/payments/payment/service"
	helper "vatplatform_backend/internals/helpers"
)

type PaymentController struct {
	DB       *gorm.DB
	Verifier paymentService.Verifier
}

func NewPaymentController(db *gorm.DB, verifier paymentService.Verifier) *PaymentController {
	return &PaymentController{DB: db, Verifier: verifier}
}

// Create records a pending payment and synchronously asks the provider
// about the referenced transaction. When the provider reports it
// settled, the payment completes and a report payment also completes
// the user's pending_payment report in the same transaction. A provider
// failure surfaces as a generic 500 and leaves the payment pending.
func (ctl *PaymentController) Create(c *fiber.Ctx) error {
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		return err
	}

	var req paymentDTO.CreatePaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if !paymentModel.IsValidType(req.Type) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payment type")
	}
	if req.Amount <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Amount must be positive")
	}
	if req.ProviderRef == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payment reference is required")
	}

	payment := paymentModel.PaymentModel{
		UserID:      userID,
		Amount:      req.Amount,
		Type:        req.Type,
		Status:      paymentModel.StatusPending,
		ProviderRef: req.ProviderRef,
		Credits:     paymentModel.CreditsForTopup(req.Type, req.Amount),
	}
	if err := ctl.DB.Create(&payment).Error; err != nil {
		logrus.WithError(err).Error("payments: insert failed")
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create payment")
	}

	settled, err := ctl.Verifier.IsSettled(req.ProviderRef)
	if err != nil {
		logrus.WithError(err).Error("payments: provider check failed")
		return helper.JsonError(c, fiber.StatusInternalServerError, "Server error")
	}

	if settled {
		if err := paymentService.Settle(ctl.DB, &payment); err != nil {
			logrus.WithError(err).Error("payments: settlement failed")
			return helper.JsonError(c, fiber.StatusInternalServerError, "Server error")
		}
		payment.Status = paymentModel.StatusCompleted
	}

	return helper.JsonCreated(c, "Payment recorded", payment)
}

// List returns the actor's payments; SuperAdmin sees every row.
func (ctl *PaymentController) List(c *fiber.Ctx) error {
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		return err
	}
	role, err := helper.GetUserRole(c)
	if err != nil {
		return err
	}

	paging := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.Model(&paymentModel.PaymentModel{})
	if !constants.CanSeeAllRecords(role) {
		q = q.Where("user_id = ?", userID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		logrus.WithError(err).Error("payments: count failed")
		return helper.JsonError(c, fiber.StatusInternalServerError, "Server error")
	}

	var payments []paymentModel.PaymentModel
	if err := q.Order("created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&payments).Error; err != nil {
		logrus.WithError(err).Error("payments: query failed")
		return helper.JsonError(c, fiber.StatusInternalServerError, "Server error")
	}

	return helper.JsonList(c, "", payments, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// TopUp converts a paid amount into credits at floor(amount/10). Each
// top-up is an independent completed payment row.
func (ctl *PaymentController) TopUp(c *fiber.Ctx) error {
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		return err
	}

	var req paymentDTO.TopUpRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if req.Amount <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Amount must be positive")
	}

	payment := paymentModel.PaymentModel{
		UserID:  userID,
		Amount:  req.Amount,
		Type:    paymentModel.TypeCreditTopup,
		Status:  paymentModel.StatusCompleted,
		Credits: paymentModel.CreditsForTopup(paymentModel.TypeCreditTopup, req.Amount),
	}
	if err := ctl.DB.Create(&payment).Error; err != nil {
		logrus.WithError(err).Error("payments: topup insert failed")
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to top up credits")
	}

	return helper.JsonOK(c, "Credits topped up", fiber.Map{
		"credits": payment.Credits,
	})
}
