package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/pennyledger/finance-tracker/internal/domain/entity"
	errs "github.com/pennyledger/finance-tracker/internal/domain/error"
	coreport "github.com/pennyledger/finance-tracker/internal/domain/port/core"
	"github.com/pennyledger/finance-tracker/internal/infrastructure/adapter/model"
)

// TransactionRepository implements the TransactionRepository interface using GORM
type TransactionRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewTransactionRepository creates a new TransactionRepository instance
func NewTransactionRepository(db *gorm.DB, logger coreport.Logger) *TransactionRepository {
	return &TransactionRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// modelToEntity converts a transaction model to an entity
func (r *TransactionRepository) modelToEntity(transactionModel *model.Transaction) *entity.Transaction {
	return &entity.Transaction{
		ID:          transactionModel.ID,
		UserID:      transactionModel.UserID,
		Kind:        entity.Kind(transactionModel.Kind),
		Category:    transactionModel.Category,
		AmountCents: transactionModel.AmountCents,
		Date:        transactionModel.Date,
		Account:     transactionModel.Account,
		CreatedAt:   transactionModel.CreatedAt,
	}
}

// handleDatabaseError standardizes database error handling
func (r *TransactionRepository) handleDatabaseError(operation string, err error, transactionID uint64) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.ErrTransactionNotFound
	}

	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"transaction_id": transactionID,
		"error":          err.Error(),
	})
	return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
}

// Create persists a new transaction and assigns its generated ID
func (r *TransactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	transactionModel := model.Transaction{
		UserID:      transaction.UserID,
		Kind:        string(transaction.Kind),
		Category:    transaction.Category,
		AmountCents: transaction.AmountCents,
		Date:        transaction.Date,
		Account:     transaction.Account,
		CreatedAt:   transaction.CreatedAt,
	}

	// Omit the association so GORM never tries to upsert the owner row
	result := r.db.WithContext(ctx).Omit("User").Create(&transactionModel)
	if result.Error != nil {
		return r.handleDatabaseError("creating transaction", result.Error, 0)
	}

	transaction.ID = transactionModel.ID
	return nil
}

// GetByID retrieves a transaction by ID regardless of owner
func (r *TransactionRepository) GetByID(ctx context.Context, id uint64) (*entity.Transaction, error) {
	var transactionModel model.Transaction
	result := r.db.WithContext(ctx).First(&transactionModel, id)
	if result.Error != nil {
		return nil, r.handleDatabaseError("getting transaction", result.Error, id)
	}

	return r.modelToEntity(&transactionModel), nil
}

// ListByUser returns all transactions owned by the given user in id order.
// The order is explicit so listings and exports are stable across backends.
func (r *TransactionRepository) ListByUser(ctx context.Context, userID uint64) ([]*entity.Transaction, error) {
	var transactionModels []model.Transaction
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&transactionModels)
	if result.Error != nil {
		return nil, r.handleDatabaseError("listing transactions", result.Error, 0)
	}

	transactions := make([]*entity.Transaction, 0, len(transactionModels))
	for i := range transactionModels {
		transactions = append(transactions, r.modelToEntity(&transactionModels[i]))
	}

	return transactions, nil
}

// Delete permanently removes a transaction by ID
func (r *TransactionRepository) Delete(ctx context.Context, id uint64) error {
	result := r.db.WithContext(ctx).Delete(&model.Transaction{}, id)
	if result.Error != nil {
		return r.handleDatabaseError("deleting transaction", result.Error, id)
	}

	if result.RowsAffected == 0 {
		return errs.ErrTransactionNotFound
	}

	return nil
}
