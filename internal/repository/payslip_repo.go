package repository

import (
	"errors"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"hrms-backend/internal/models"
)

type PayslipRepository interface {
	Save(payslip *models.Payslip) error
	GetByEmployeeAndPeriod(employeeID uint, year, month int) (*models.Payslip, error)
	ListByPeriod(year, month int) ([]*models.Payslip, error)
	MarkPaid(id uint, transactionID string, paidDate time.Time) error
}

type GormPayslipRepository struct {
	db     *gorm.DB
	logger *logrus.Logger
}

func NewGormPayslipRepository(db *gorm.DB) (*GormPayslipRepository, error) {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	if err := db.AutoMigrate(&models.Payslip{}); err != nil {
		logger.WithError(err).Error("Failed to auto-migrate payslips table")
		return nil, err
	}

	return &GormPayslipRepository{db: db, logger: logger}, nil
}

// Save creates the payslip for a period or replaces an unpaid one. A paid
// payslip is immutable.
func (r *GormPayslipRepository) Save(payslip *models.Payslip) error {
	existing, err := r.GetByEmployeeAndPeriod(payslip.EmployeeID, payslip.Year, payslip.Month)
	if err != nil {
		return err
	}

	if existing != nil {
		if existing.IsPaid() {
			r.logger.WithFields(logrus.Fields{
				"employee_id": payslip.EmployeeID,
				"year":        payslip.Year,
				"month":       payslip.Month,
			}).Warn("Refusing to overwrite paid payslip")
			return errors.New("payslip already paid")
		}
		payslip.ID = existing.ID
		payslip.CreatedAt = existing.CreatedAt
	}

	if result := r.db.Save(payslip); result.Error != nil {
		r.logger.WithError(result.Error).Error("Failed to save payslip")
		return result.Error
	}

	r.logger.WithFields(logrus.Fields{
		"id":          payslip.ID,
		"employee_id": payslip.EmployeeID,
		"year":        payslip.Year,
		"month":       payslip.Month,
		"net_salary":  payslip.NetSalary.String(),
	}).Info("Payslip saved")

	return nil
}

func (r *GormPayslipRepository) GetByEmployeeAndPeriod(employeeID uint, year, month int) (*models.Payslip, error) {
	var payslip models.Payslip
	result := r.db.Where("employee_id = ? AND year = ? AND month = ?", employeeID, year, month).First(&payslip)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if result.Error != nil {
		r.logger.WithError(result.Error).Error("Failed to get payslip")
		return nil, result.Error
	}

	return &payslip, nil
}

func (r *GormPayslipRepository) ListByPeriod(year, month int) ([]*models.Payslip, error) {
	var payslips []*models.Payslip
	result := r.db.Where("year = ? AND month = ?", year, month).
		Order("employee_id ASC").
		Find(&payslips)

	if result.Error != nil {
		r.logger.WithError(result.Error).Error("Failed to list payslips")
		return nil, result.Error
	}

	return payslips, nil
}

func (r *GormPayslipRepository) MarkPaid(id uint, transactionID string, paidDate time.Time) error {
	payslip := &models.Payslip{}
	result := r.db.First(payslip, id)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return errors.New("payslip not found")
	}
	if result.Error != nil {
		return result.Error
	}

	if payslip.IsPaid() {
		// Transaction id attachment is the only permitted mutation.
		return r.db.Model(payslip).Update("transaction_id", transactionID).Error
	}

	updates := map[string]interface{}{
		"payment_status": models.PaymentPaid,
		"transaction_id": transactionID,
		"paid_date":      paidDate,
	}
	if result := r.db.Model(payslip).Updates(updates); result.Error != nil {
		r.logger.WithError(result.Error).Error("Failed to mark payslip paid")
		return result.Error
	}

	r.logger.WithFields(logrus.Fields{
		"id":             id,
		"transaction_id": transactionID,
	}).Info("Payslip marked paid")

	return nil
}
