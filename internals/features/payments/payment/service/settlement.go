package service

import (
	"errors"
	"time"

	"gorm.io/gorm"

	auditService "vatplatform_backend/internals/features/audit/audit_log/service"
	paymentModel "vatplatform_backend/internals/features/payments/payment/model"
	subscriptionModel "vatplatform_backend/internals/features/payments/subscription/model"
	reportModel "vatplatform_backend/internals/features/reports/report/model"
	alertModel "vatplatform_backend/internals/features/support/alert/model"
)

// Settle marks a verified payment completed and, for report payments,
// completes the single matching pending_payment report and clears its
// watermark. Both writes share one transaction: a crash can no longer
// leave a paid report with a stale watermark.
func Settle(db *gorm.DB, payment *paymentModel.PaymentModel) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(payment).
			Update("status", paymentModel.StatusCompleted).Error; err != nil {
			return err
		}

		if payment.Type == paymentModel.TypeSubscription {
			return activateSubscription(tx, payment)
		}
		if payment.Type != paymentModel.TypeReport {
			return nil
		}

		var report reportModel.ReportModel
		err := tx.Where("user_id = ? AND status = ?", payment.UserID, reportModel.StatusPendingPayment).
			First(&report).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Nothing awaiting payment; the payment still settles.
			return nil
		}
		if err != nil {
			return err
		}

		if err := tx.Model(&report).Updates(map[string]interface{}{
			"status":    reportModel.StatusCompleted,
			"watermark": false,
		}).Error; err != nil {
			return err
		}

		if err := auditService.RecordTx(tx, &payment.UserID, nil, &report.ID, "complete_report", map[string]interface{}{
			"paymentId": payment.ID,
		}); err != nil {
			return err
		}

		return tx.Create(&alertModel.AlertModel{
			UserID:  payment.UserID,
			Type:    alertModel.TypeReportReady,
			Message: "Your compliance report is ready for download",
			Channel: "email",
			Status:  "pending",
		}).Error
	})
}

// activateSubscription records a 30-day active subscription on the
// user's current plan.
func activateSubscription(tx *gorm.DB, payment *paymentModel.PaymentModel) error {
	var plan string
	if err := tx.Table("users").Select("subscription").
		Where("id = ?", payment.UserID).Scan(&plan).Error; err != nil {
		return err
	}
	if plan == "" {
		plan = "standard"
	}

	end := time.Now().AddDate(0, 0, 30)
	return tx.Create(&subscriptionModel.SubscriptionModel{
		UserID:  payment.UserID,
		Plan:    plan,
		Status:  "active",
		EndDate: &end,
	}).Error
}
