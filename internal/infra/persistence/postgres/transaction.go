// Package postgres implements the domain repositories with GORM on PostgreSQL.
package postgres

import (
	"context"

	"bizease/internal/domain/repository"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type gormTransactionManager struct {
	db *gorm.DB
}

// NewTransactionManager returns a TransactionManager backed by GORM transactions.
func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &gormTransactionManager{db: db}
}

// Execute runs fn inside one transaction. A returned error or a panic rolls it back.
// Errors from fn are returned unwrapped so callers can still match domain sentinels.
func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	var fnErr error
	err := tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		fnErr = fn(&txRepositoryFactory{tx: tx})

		return fnErr
	})
	if fnErr != nil {
		return fnErr
	}
	if err != nil {
		return errors.Wrap(err, "transaction failed")
	}

	return nil
}

// txRepositoryFactory hands out repositories bound to a single transaction.
type txRepositoryFactory struct {
	tx *gorm.DB
}

func (f *txRepositoryFactory) NewUserRepository() repository.UserRepository {
	return NewUserRepository(f.tx)
}

func (f *txRepositoryFactory) NewBusinessRepository() repository.BusinessRepository {
	return NewBusinessRepository(f.tx)
}

func (f *txRepositoryFactory) NewApplicationRepository() repository.ApplicationRepository {
	return NewApplicationRepository(f.tx)
}

func (f *txRepositoryFactory) NewDocumentRepository() repository.DocumentRepository {
	return NewDocumentRepository(f.tx)
}

func (f *txRepositoryFactory) NewSignatureRepository() repository.SignatureRepository {
	return NewSignatureRepository(f.tx)
}

func (f *txRepositoryFactory) NewComplianceRepository() repository.ComplianceRepository {
	return NewComplianceRepository(f.tx)
}
