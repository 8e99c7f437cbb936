package queries_test

import (
	"testing"

	"bladeshop/internal/core/application/usecases/queries"
	"bladeshop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetOrderQuery_NonPositiveID_ReturnsError(t *testing.T) {
	for _, id := range []int64{0, -1} {
		_, err := queries.NewGetOrderQuery(id)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	}
}

func TestGetOrderQueryHandler_ExistingOrder_ReturnsAllFields(t *testing.T) {
	db := setupQueryTestDB(t)
	handler := queries.NewGetOrderQueryHandler(db)

	photo := "AgACAgIAAxkBAAIB"
	id := seedOrder(t, db, "Chef 210", "2025-03-01", "new", &photo)

	query, err := queries.NewGetOrderQuery(id)
	require.NoError(t, err)

	result, err := handler.Handle(t.Context(), query)
	require.NoError(t, err)

	assert.Equal(t, id, result.ID)
	assert.Equal(t, "Chef 210", result.Title)
	assert.Equal(t, "Gyuto", result.Model)
	assert.Equal(t, "AEB-L", result.Steel)
	assert.Equal(t, "satin", result.BladeFinish)
	assert.Equal(t, "walnut", result.HandleMaterial)
	assert.Equal(t, "hidden-tang", result.HandleMount)
	assert.Equal(t, "2025-03-01", result.Deadline)
	assert.Equal(t, "new", result.Status)
	require.NotNil(t, result.PhotoFileID)
	assert.Equal(t, photo, *result.PhotoFileID)
	assert.False(t, result.CreatedAt.IsZero())
}

func TestGetOrderQueryHandler_NoPhoto_ReturnsNilPhotoFileID(t *testing.T) {
	db := setupQueryTestDB(t)
	handler := queries.NewGetOrderQueryHandler(db)

	id := seedOrder(t, db, "Chef 210", "2025-03-01", "new", nil)

	query, err := queries.NewGetOrderQuery(id)
	require.NoError(t, err)

	result, err := handler.Handle(t.Context(), query)
	require.NoError(t, err)
	assert.Nil(t, result.PhotoFileID)
}

func TestGetOrderQueryHandler_NonExistentOrder_ReturnsNotFoundError(t *testing.T) {
	db := setupQueryTestDB(t)
	handler := queries.NewGetOrderQueryHandler(db)

	query, err := queries.NewGetOrderQuery(12345)
	require.NoError(t, err)

	_, err = handler.Handle(t.Context(), query)

	var notFoundErr *errs.ObjectNotFoundError
	require.ErrorAs(t, err, &notFoundErr)
}

func TestGetOrderQueryHandler_InvalidQuery_ReturnsError(t *testing.T) {
	db := setupQueryTestDB(t)
	handler := queries.NewGetOrderQueryHandler(db)

	_, err := handler.Handle(t.Context(), queries.GetOrderQuery{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be created via NewGetOrderQuery constructor")
}
