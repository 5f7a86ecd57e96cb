package postgres

import (
	"context"
	"regexp"
	"testing"
	"time"

	"bizease/internal/domain/entity"
	"bizease/internal/domain/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	db, err := gorm.Open(gormpostgres.New(gormpostgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		_ = sqlDB.Close()
	})

	return db, mock
}

func TestUserRepository_FindByEmail_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "users" WHERE email = $1`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email"}))

	user, err := NewUserRepository(db).FindByEmail(context.Background(), "nobody@example.com")

	assert.Nil(t, user)
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestUserRepository_Create(t *testing.T) {
	t.Run("assigns an id", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "users"`)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		user := &entity.User{Email: "owner@example.com", PasswordHash: "hash", Role: entity.RoleBusiness}
		require.NoError(t, NewUserRepository(db).Create(context.Background(), user))
		assert.NotEqual(t, uuid.Nil, user.ID)
		assert.False(t, user.CreatedAt.IsZero())
	})

	t.Run("duplicate email", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "users"`)).
			WillReturnError(&pgconn.PgError{Code: pgUniqueViolation, ConstraintName: "users_email_key"})

		err := NewUserRepository(db).Create(context.Background(), &entity.User{Email: "owner@example.com", Role: entity.RoleBusiness})
		assert.ErrorIs(t, err, repository.ErrUserEmailTaken)
	})
}

func TestBusinessRepository_CreateConflicts(t *testing.T) {
	tests := []struct {
		name       string
		constraint string
		want       error
	}{
		{name: "second profile for a user", constraint: constraintBusinessUser, want: repository.ErrBusinessAlreadyExists},
		{name: "registration number reused", constraint: "business_profiles_registration_number_key", want: repository.ErrRegistrationNumberConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "business_profiles"`)).
				WillReturnError(&pgconn.PgError{Code: pgUniqueViolation, ConstraintName: tt.constraint})

			err := NewBusinessRepository(db).Create(context.Background(), &entity.BusinessProfile{
				UserID:             uuid.New(),
				BusinessName:       "Acme",
				BusinessType:       entity.BusinessTypeRetail,
				RegistrationNumber: "REG-1",
				DateEstablished:    time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
			})
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestBusinessRepository_Update_Missing(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "business_profiles" SET`)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := NewBusinessRepository(db).Update(context.Background(), &entity.BusinessProfile{ID: uuid.New(), BusinessType: entity.BusinessTypeIT})
	assert.ErrorIs(t, err, repository.ErrBusinessNotFound)
}

func TestApplicationRepository_FindByNumber_PreloadsApprovalType(t *testing.T) {
	db, mock := newMockDB(t)

	appID, businessID, typeID := uuid.New(), uuid.New(), uuid.New()
	now := time.Now().UTC()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "approval_applications" WHERE application_number = $1`)).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "business_id", "approval_type_id", "application_number", "status",
			"submission_date", "approval_date", "rejection_reason", "notes", "created_at", "updated_at",
		}).AddRow(appID.String(), businessID.String(), typeID.String(), "APP-AB12CD34", "submitted",
			now, nil, "", "", now, now))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "approval_types" WHERE "approval_types"."id" = $1`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "department", "fees", "is_active"}).
			AddRow(typeID.String(), "Trade License", "Municipal", "1500.00", true))

	app, err := NewApplicationRepository(db).FindByNumber(context.Background(), "APP-AB12CD34")
	require.NoError(t, err)

	assert.Equal(t, appID, app.ID)
	assert.Equal(t, entity.StatusSubmitted, app.Status)
	require.NotNil(t, app.SubmissionDate)
	assert.Nil(t, app.ApprovalDate)
	require.NotNil(t, app.ApprovalType)
	assert.Equal(t, "Trade License", app.ApprovalType.Name)
}

func TestApplicationRepository_FindByID_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "approval_applications" WHERE id = $1`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := NewApplicationRepository(db).FindByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, repository.ErrApplicationNotFound)
}

func TestApplicationRepository_Create_NumberConflict(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "approval_applications"`)).
		WillReturnError(&pgconn.PgError{Code: pgUniqueViolation, ConstraintName: "approval_applications_application_number_key"})

	err := NewApplicationRepository(db).Create(context.Background(), &entity.ApprovalApplication{
		BusinessID:        uuid.New(),
		ApprovalTypeID:    uuid.New(),
		ApplicationNumber: "APP-AAAAAAAA",
		Status:            entity.StatusDraft,
	})
	assert.ErrorIs(t, err, repository.ErrApplicationNumberConflict)
}

func TestApplicationRepository_MarkSubmitted(t *testing.T) {
	tests := []struct {
		name     string
		affected int64
		want     bool
	}{
		{name: "draft moves to submitted", affected: 1, want: true},
		{name: "already submitted is left alone", affected: 0, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			id := uuid.New()
			mock.ExpectExec(`UPDATE "approval_applications" SET .+ WHERE id = \$\d+ AND status = \$\d+`).
				WillReturnResult(sqlmock.NewResult(0, tt.affected))

			ok, err := NewApplicationRepository(db).MarkSubmitted(context.Background(), id, time.Now())
			require.NoError(t, err)
			assert.Equal(t, tt.want, ok)
		})
	}
}

func TestApplicationRepository_SaveReview_DatabaseError(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "approval_applications" SET`)).
		WillReturnError(errors.New("connection reset"))

	app := &entity.ApprovalApplication{ID: uuid.New(), Status: entity.StatusUnderReview, UpdatedAt: time.Now()}
	ok, err := NewApplicationRepository(db).SaveReview(context.Background(), app, entity.StatusSubmitted)
	assert.False(t, ok)
	assert.Error(t, err)
}

func TestDocumentRepository_CountByApplication(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "application_documents" WHERE application_id = $1`)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

	n, err := NewDocumentRepository(db).CountByApplication(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
}

func TestComplianceRepository_ClaimReminder(t *testing.T) {
	tests := []struct {
		name     string
		affected int64
		want     bool
	}{
		{name: "first claim wins", affected: 1, want: true},
		{name: "already claimed", affected: 0, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			mock.ExpectExec(`UPDATE "compliances" SET "reminder_sent"=\$1 WHERE id = \$2 AND reminder_sent = \$3`).
				WillReturnResult(sqlmock.NewResult(0, tt.affected))

			ok, err := NewComplianceRepository(db).ClaimReminder(context.Background(), uuid.New())
			require.NoError(t, err)
			assert.Equal(t, tt.want, ok)
		})
	}
}

func TestComplianceRepository_ListReminderCandidates(t *testing.T) {
	t.Run("scoped to one business", func(t *testing.T) {
		db, mock := newMockDB(t)
		businessID := uuid.New()
		due := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

		mock.ExpectQuery(`SELECT \* FROM "compliances" WHERE .*due_date <= \$3.* AND business_id = \$4 ORDER BY due_date ASC`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "business_id", "title", "due_date", "is_completed", "reminder_sent"}).
				AddRow(uuid.NewString(), businessID.String(), "GST filing", due, false, false))

		items, err := NewComplianceRepository(db).ListReminderCandidates(context.Background(), repository.ReminderFilter{
			BusinessID:    businessID,
			DueOnOrBefore: due,
		})
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "GST filing", items[0].Title)
	})

	t.Run("all businesses", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(`SELECT \* FROM "compliances" WHERE .*due_date <= \$3 ORDER BY due_date ASC`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		items, err := NewComplianceRepository(db).ListReminderCandidates(context.Background(), repository.ReminderFilter{
			DueOnOrBefore: time.Now(),
		})
		require.NoError(t, err)
		assert.Empty(t, items)
	})
}

func TestComplianceRepository_MarkCompleted_AlreadyDone(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "compliances" SET`)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	ok, err := NewComplianceRepository(db).MarkCompleted(context.Background(), uuid.New(), time.Now())
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestTransactionManager_Execute(t *testing.T) {
	t.Run("commits on success", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "compliances"`)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := NewTransactionManager(db).Execute(context.Background(), func(f repository.RepositoryFactory) error {
			return f.NewComplianceRepository().Create(context.Background(), &entity.Compliance{
				BusinessID: uuid.New(),
				Title:      "Annual return",
				DueDate:    time.Now(),
			})
		})
		assert.NoError(t, err)
	})

	t.Run("rolls back and keeps the callback error", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectBegin()
		mock.ExpectRollback()

		err := NewTransactionManager(db).Execute(context.Background(), func(repository.RepositoryFactory) error {
			return repository.ErrApplicationNotFound
		})
		assert.Equal(t, repository.ErrApplicationNotFound, err)
	})
}
