package queries_test

import (
	"testing"

	"bladeshop/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportOrdersQueryHandler_EmptyDatabase_ReturnsEmptySlice(t *testing.T) {
	db := setupQueryTestDB(t)
	handler := queries.NewExportOrdersQueryHandler(db)

	result, err := handler.Handle(t.Context(), queries.NewExportOrdersQuery())

	require.NoError(t, err)
	assert.NotNil(t, result)
	assert.Empty(t, result)
}

func TestExportOrdersQueryHandler_ReturnsFullRowsSortedByID(t *testing.T) {
	db := setupQueryTestDB(t)
	handler := queries.NewExportOrdersQueryHandler(db)

	photo := "AgACAgIAAxkBAAIB"
	firstID := seedOrder(t, db, "Chef 210", "2025-06-01", "new", &photo)
	secondID := seedOrder(t, db, "Petty 130", "2025-02-15", "done", nil)

	result, err := handler.Handle(t.Context(), queries.NewExportOrdersQuery())

	require.NoError(t, err)
	require.Len(t, result, 2)

	// Export order follows the identifier, not the deadline.
	assert.Equal(t, firstID, result[0].ID)
	assert.Equal(t, "Chef 210", result[0].Title)
	assert.Equal(t, "Gyuto", result[0].Model)
	assert.Equal(t, "AEB-L", result[0].Steel)
	assert.Equal(t, "satin", result[0].BladeFinish)
	assert.Equal(t, "walnut", result[0].HandleMaterial)
	assert.Equal(t, "hidden-tang", result[0].HandleMount)
	assert.Equal(t, "2025-06-01", result[0].Deadline)
	assert.Equal(t, "new", result[0].Status)
	require.NotNil(t, result[0].PhotoFileID)
	assert.Equal(t, photo, *result[0].PhotoFileID)
	assert.False(t, result[0].CreatedAt.IsZero())

	assert.Equal(t, secondID, result[1].ID)
	assert.Equal(t, "Petty 130", result[1].Title)
	assert.Equal(t, "done", result[1].Status)
	assert.Nil(t, result[1].PhotoFileID)
}

func TestExportOrdersQueryHandler_InvalidQuery_ReturnsError(t *testing.T) {
	db := setupQueryTestDB(t)
	handler := queries.NewExportOrdersQueryHandler(db)

	result, err := handler.Handle(t.Context(), queries.ExportOrdersQuery{})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.Contains(t, err.Error(), "must be created via NewExportOrdersQuery constructor")
}
