package postgres

import (
	"context"
	"testing"

	"car-rental-backend/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntegrityRepository_Exists(t *testing.T) {
	db, mock := newMock(t)
	repo := NewIntegrityRepository(db)
	ctx := context.Background()

	mock.ExpectQuery("SELECT EXISTS\\(SELECT 1 FROM clients WHERE id = \\$1\\)").
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectQuery("SELECT EXISTS\\(SELECT 1 FROM insurance_policies WHERE id = \\$1\\)").
		WithArgs(int64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

	found, err := repo.Exists(ctx, domain.EntityClient, 1)
	require.NoError(t, err)
	assert.True(t, found)

	found, err = repo.Exists(ctx, domain.EntityInsurancePolicy, 2)
	require.NoError(t, err)
	assert.False(t, found)

	_, err = repo.Exists(ctx, domain.Entity("spaceship"), 1)
	assert.Error(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIntegrityRepository_HasDependents(t *testing.T) {
	db, mock := newMock(t)
	repo := NewIntegrityRepository(db)

	ref := domain.Reference{From: domain.EntityRentalOrder, Column: "vehicle_id", To: domain.EntityVehicle}
	mock.ExpectQuery("SELECT EXISTS\\(SELECT 1 FROM rental_orders WHERE vehicle_id = \\$1\\)").
		WithArgs(int64(4)).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	found, err := repo.HasDependents(context.Background(), ref, 4)
	require.NoError(t, err)
	assert.True(t, found)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTableNamesCoverEveryReference(t *testing.T) {
	for _, ref := range domain.References {
		_, err := tableFor(ref.From)
		assert.NoError(t, err, ref.From)
		_, err = tableFor(ref.To)
		assert.NoError(t, err, ref.To)
	}
}
