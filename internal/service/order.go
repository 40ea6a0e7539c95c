package service

import (
	"context"
	"errors"

	"car-rental-backend/internal/domain"
	"car-rental-backend/internal/logger"
	"car-rental-backend/internal/metrics"
	"car-rental-backend/internal/pricing"
	"car-rental-backend/internal/repository"
)

type orderService struct {
	*entityService[domain.RentalOrder, domain.RentalOrderPatch]
}

func NewOrderService(store repository.Store) OrderService {
	return &orderService{
		entityService: newEntityService[domain.RentalOrder, domain.RentalOrderPatch](store, entityConfig[domain.RentalOrder]{
			name:     "orderService",
			entity:   domain.EntityRentalOrder,
			repo:     func(s repository.Store) repository.CRUD[domain.RentalOrder] { return s.RentalOrders() },
			id:       func(o *domain.RentalOrder) *int64 { return &o.ID },
			validate: func(o *domain.RentalOrder) error { return o.Validate() },
			targets:  func(o *domain.RentalOrder) []domain.Target { return o.Targets() },
			transition: func(before, after *domain.RentalOrder) error {
				return before.CheckTransition(*after)
			},
		}),
	}
}

// Create reserves the vehicle and records the order in one transaction. The
// vehicle row stays locked until commit, so two orders for the same vehicle
// cannot both succeed.
func (s *orderService) Create(ctx context.Context, o *domain.RentalOrder) (*domain.RentalOrder, error) {
	const method = "orderService.Create"
	logger.EnterMethod(method, "vehicleID", o.VehicleID, "clientID", o.ClientID)

	if o.OrderStatus == "" {
		o.OrderStatus = domain.OrderStatusOpen
	}
	if o.PaymentStatus == "" {
		o.PaymentStatus = domain.PaymentStatusUnpaid
	}
	if err := o.Validate(); err != nil {
		logger.ExitMethodRejected(method, err)
		return nil, err
	}
	if o.OrderStatus != domain.OrderStatusOpen {
		err := domain.BadRequest("new orders must be %s", domain.OrderStatusOpen)
		logger.ExitMethodRejected(method, err)
		return nil, err
	}

	err := s.store.WithTx(ctx, func(tx repository.Store) error {
		vehicle, err := tx.Vehicles().GetByIDForUpdate(ctx, o.VehicleID)
		if errors.Is(err, domain.ErrNotFound) {
			return domain.BadRequest("vehicle %d does not exist", o.VehicleID)
		}
		if err != nil {
			return err
		}
		if vehicle.Status != domain.VehicleStatusAvailable {
			return domain.BadRequest("vehicle %d is not available (status %s)", vehicle.ID, vehicle.Status)
		}

		if err := checkTargets(ctx, tx.Integrity(), []domain.Target{
			{Entity: domain.EntityClient, ID: o.ClientID},
			{Entity: domain.EntityEmployee, ID: o.EmployeeID},
		}); err != nil {
			return err
		}

		if o.TotalCost == nil {
			model, err := tx.CarModels().GetByID(ctx, vehicle.ModelID)
			if err != nil {
				return err
			}
			quote, err := pricing.QuoteRental(o.StartDate, o.EndDatePlanned, model.DailyRate)
			if err != nil {
				return domain.BadRequest("%v", err)
			}
			o.TotalCost = &quote.Total
		}

		if err := tx.Vehicles().UpdateStatus(ctx, vehicle.ID, domain.VehicleStatusRented); err != nil {
			return err
		}
		return tx.RentalOrders().Create(ctx, o)
	})
	if err != nil {
		return nil, s.exit(method, err, "failed to create rental order")
	}

	metrics.RecordOrderCreated()
	metrics.RecordVehicleStatus(string(domain.VehicleStatusRented))
	logger.ExitMethod(method, "orderID", o.ID, "vehicleID", o.VehicleID)
	return o, nil
}

// Delete removes an order that has no payments, fines or review. An open
// order hands its vehicle back when the vehicle is still marked rented.
func (s *orderService) Delete(ctx context.Context, id int64) error {
	const method = "orderService.Delete"
	logger.EnterMethod(method, "id", id)

	released := false
	err := s.store.WithTx(ctx, func(tx repository.Store) error {
		order, err := tx.RentalOrders().GetByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if err := checkDependents(ctx, tx.Integrity(), domain.EntityRentalOrder, id); err != nil {
			return err
		}

		if order.OrderStatus == domain.OrderStatusOpen {
			vehicle, err := tx.Vehicles().GetByIDForUpdate(ctx, order.VehicleID)
			if err != nil {
				return err
			}
			if vehicle.Status == domain.VehicleStatusRented {
				if err := tx.Vehicles().UpdateStatus(ctx, vehicle.ID, domain.VehicleStatusAvailable); err != nil {
					return err
				}
				released = true
			}
		}

		return tx.RentalOrders().Delete(ctx, id)
	})
	if err != nil {
		return s.exit(method, err, "failed to delete rental order %d", id)
	}

	if released {
		metrics.RecordVehicleStatus(string(domain.VehicleStatusAvailable))
	}
	logger.ExitMethod(method, "id", id, "vehicleReleased", released)
	return nil
}
