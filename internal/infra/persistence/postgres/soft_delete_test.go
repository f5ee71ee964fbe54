package postgres

import (
	"reflect"
	"strings"
	"testing"

	"directory/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/utils/tests"
)

// openDryRunDB returns a *gorm.DB that builds SQL without executing it,
// so we can assert on the statements the models produce.
func openDryRunDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(tests.DummyDialector{}, &gorm.Config{DryRun: true})
	require.NoError(t, err)

	return db
}

func getModelField(t *testing.T, m any, name string) (reflect.StructField, bool) {
	t.Helper()

	return reflect.TypeOf(m).FieldByName(name)
}

func requireSoftDeleteFilter(t *testing.T, sql string) {
	t.Helper()

	require.Contains(t, sql, "deleted_at", "query must reference deleted_at: %s", sql)
	require.Contains(t, sql, "IS NULL", "query must filter out soft-deleted rows: %s", sql)
}

func TestBusinessQueries_ExcludeSoftDeletedRows(t *testing.T) {
	t.Parallel()

	db := openDryRunDB(t)
	id := uuid.New()

	var count int64
	cases := []struct {
		name string
		sql  string
	}{
		{
			name: "find by id",
			sql:  db.Where("id = ?", id).Find(&model.BusinessModel{}).Statement.SQL.String(),
		},
		{
			name: "find by slug",
			sql:  db.Where("slug = ?", "corner-bakery").Find(&model.BusinessModel{}).Statement.SQL.String(),
		},
		{
			name: "list",
			sql:  db.Model(&model.BusinessModel{}).Where("status IN ?", []string{"active"}).Find(&[]model.BusinessModel{}).Statement.SQL.String(),
		},
		{
			name: "count",
			sql:  db.Model(&model.BusinessModel{}).Count(&count).Statement.SQL.String(),
		},
		{
			name: "slug exists",
			sql:  db.Model(&model.BusinessModel{}).Where("slug = ?", "corner-bakery").Count(&count).Statement.SQL.String(),
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			requireSoftDeleteFilter(t, tc.sql)
		})
	}
}

func TestReviewQueries_ExcludeSoftDeletedRows(t *testing.T) {
	t.Parallel()

	db := openDryRunDB(t)
	businessID := uuid.New()
	userID := uuid.New()

	var count int64
	cases := []struct {
		name string
		sql  string
	}{
		{
			name: "list by business",
			sql:  db.Where("business_id = ?", businessID).Find(&[]model.ReviewModel{}).Statement.SQL.String(),
		},
		{
			name: "list all",
			sql:  db.Find(&[]model.ReviewModel{}).Statement.SQL.String(),
		},
		{
			name: "count",
			sql:  db.Model(&model.ReviewModel{}).Count(&count).Statement.SQL.String(),
		},
		{
			name: "exists by business and user",
			sql:  db.Model(&model.ReviewModel{}).Where("business_id = ? AND user_id = ?", businessID, userID).Count(&count).Statement.SQL.String(),
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			requireSoftDeleteFilter(t, tc.sql)
		})
	}
}

// Deleting must stamp deleted_at instead of removing the row, otherwise
// rating recalculation and moderation history lose their source data.
func TestDelete_StampsDeletedAtInsteadOfRemovingRow(t *testing.T) {
	t.Parallel()

	db := openDryRunDB(t)
	id := uuid.New()

	cases := []struct {
		name string
		sql  string
	}{
		{
			name: "business",
			sql:  db.Delete(&model.BusinessModel{}, "id = ?", id).Statement.SQL.String(),
		},
		{
			name: "review",
			sql:  db.Delete(&model.ReviewModel{}, "id = ?", id).Statement.SQL.String(),
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.True(t, strings.HasPrefix(tc.sql, "UPDATE"), "soft delete must build an UPDATE: %s", tc.sql)
			require.Contains(t, tc.sql, "deleted_at")
			require.NotContains(t, tc.sql, "DELETE FROM")
		})
	}
}

// A soft-deleted business must release its slug so a new listing can
// claim it.
func TestBusinessSlugIndex_OnlyCoversLiveRows(t *testing.T) {
	t.Parallel()

	field, ok := getModelField(t, model.BusinessModel{}, "Slug")
	require.True(t, ok)
	require.Contains(t, field.Tag.Get("gorm"), "where:deleted_at IS NULL")
}

// A soft-deleted review must not block the author from reviewing the same
// business again, so the uniqueness of (business_id, user_id) only applies
// to live rows.
func TestReviewUniqueIndex_OnlyCoversLiveRows(t *testing.T) {
	t.Parallel()

	field, ok := getModelField(t, model.ReviewModel{}, "BusinessID")
	require.True(t, ok)
	require.Contains(t, field.Tag.Get("gorm"), "where:deleted_at IS NULL")

	field, ok = getModelField(t, model.ReviewModel{}, "UserID")
	require.True(t, ok)
	require.Contains(t, field.Tag.Get("gorm"), "where:deleted_at IS NULL")
}
