package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"car-rental-backend/internal/logger"
	"car-rental-backend/internal/repository"

	_ "github.com/lib/pq"
)

// DBTX is the query surface shared by *sql.DB and *sql.Tx.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type Store struct {
	db   *sql.DB
	inTx bool

	carModels         repository.CarModelRepository
	vehicles          repository.VehicleRepository
	clients           repository.ClientRepository
	employees         repository.EmployeeRepository
	rentalOrders      repository.RentalOrderRepository
	maintenance       repository.MaintenanceRepository
	fines             repository.FineRepository
	payments          repository.PaymentRepository
	insurancePolicies repository.InsurancePolicyRepository
	reviews           repository.ReviewRepository
	integrity         repository.IntegrityRepository
	reports           repository.ReportRepository
}

var _ repository.Store = (*Store)(nil)

func NewStore(db *sql.DB) *Store {
	return newStore(db, db, false)
}

func newStore(db *sql.DB, q DBTX, inTx bool) *Store {
	return &Store{
		db:                db,
		inTx:              inTx,
		carModels:         NewCarModelRepository(q),
		vehicles:          NewVehicleRepository(q),
		clients:           NewClientRepository(q),
		employees:         NewEmployeeRepository(q),
		rentalOrders:      NewRentalOrderRepository(q),
		maintenance:       NewMaintenanceRepository(q),
		fines:             NewFineRepository(q),
		payments:          NewPaymentRepository(q),
		insurancePolicies: NewInsurancePolicyRepository(q),
		reviews:           NewReviewRepository(q),
		integrity:         NewIntegrityRepository(q),
		reports:           NewReportRepository(q),
	}
}

func (s *Store) CarModels() repository.CarModelRepository                { return s.carModels }
func (s *Store) Vehicles() repository.VehicleRepository                  { return s.vehicles }
func (s *Store) Clients() repository.ClientRepository                    { return s.clients }
func (s *Store) Employees() repository.EmployeeRepository                { return s.employees }
func (s *Store) RentalOrders() repository.RentalOrderRepository          { return s.rentalOrders }
func (s *Store) Maintenance() repository.MaintenanceRepository           { return s.maintenance }
func (s *Store) Fines() repository.FineRepository                        { return s.fines }
func (s *Store) Payments() repository.PaymentRepository                  { return s.payments }
func (s *Store) InsurancePolicies() repository.InsurancePolicyRepository { return s.insurancePolicies }
func (s *Store) Reviews() repository.ReviewRepository                    { return s.reviews }
func (s *Store) Integrity() repository.IntegrityRepository               { return s.integrity }
func (s *Store) Reports() repository.ReportRepository                    { return s.reports }

func (s *Store) WithTx(ctx context.Context, fn func(repository.Store) error) error {
	if s.inTx {
		return fn(s)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		logger.ExitMethodWithError("Store.WithTx", err)
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := fn(newStore(s.db, tx, true)); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		logger.ExitMethodWithError("Store.WithTx", err)
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}
