package producttype_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"sync-actions/feature/producttype"
	"sync-actions/feature/producttype/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}

	return gormDB, mock
}

func TestPlanRepository_Create(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := producttype.NewPlanRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `sync_plans`")).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	err := repo.Create(context.Background(), &models.PlanRecord{
		ID:             "4f1c0f36-8a55-4a53-9d55-1b1f0e3b9d7a",
		ProductTypeKey: "shirts",
		ActionCount:    1,
		Actions:        `[{"action":"changeName","name":"b"}]`,
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPlanRepository_CreateError(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := producttype.NewPlanRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `sync_plans`")).
		WillReturnError(errors.New("duplicate entry"))
	mock.ExpectRollback()

	err := repo.Create(context.Background(), &models.PlanRecord{ID: "x"})
	assert.ErrorContains(t, err, "duplicate entry")
}

func TestPlanRepository_Get(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := producttype.NewPlanRepository(db)

	rows := sqlmock.NewRows([]string{"id", "product_type_key", "previous_snapshot", "next_snapshot", "action_count", "actions", "created_at"}).
		AddRow("p-1", "shirts", "pt/v1.json", "pt/v2.json", 2, `[]`, time.Now())
	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `sync_plans` WHERE id = ?")).
		WillReturnRows(rows)

	plan, err := repo.Get(context.Background(), "p-1")
	require.NoError(t, err)
	assert.Equal(t, "shirts", plan.ProductTypeKey)
	assert.Equal(t, 2, plan.ActionCount)
	assert.Equal(t, "pt/v2.json", plan.NextSnapshot)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPlanRepository_GetNotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := producttype.NewPlanRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `sync_plans` WHERE id = ?")).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, producttype.ErrPlanNotFound)
}

func TestPlanRepository_ListByProductType(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := producttype.NewPlanRepository(db)

	rows := sqlmock.NewRows([]string{"id", "product_type_key", "action_count"}).
		AddRow("p-2", "shirts", 3).
		AddRow("p-1", "shirts", 1)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `sync_plans` WHERE product_type_key = ? ORDER BY created_at DESC")).
		WillReturnRows(rows)

	plans, err := repo.ListByProductType(context.Background(), "shirts", 0)
	require.NoError(t, err)
	require.Len(t, plans, 2)
	assert.Equal(t, "p-2", plans[0].ID)
}

func TestPlanRepository_Disabled(t *testing.T) {
	repo := producttype.NewPlanRepository(nil)

	assert.False(t, repo.Enabled())
	assert.ErrorIs(t, repo.Migrate(), producttype.ErrPlansDisabled)
	assert.ErrorIs(t, repo.Create(context.Background(), &models.PlanRecord{}), producttype.ErrPlansDisabled)
	_, err := repo.Get(context.Background(), "x")
	assert.ErrorIs(t, err, producttype.ErrPlansDisabled)
	_, err = repo.ListByProductType(context.Background(), "x", 1)
	assert.ErrorIs(t, err, producttype.ErrPlansDisabled)
}
