package service

import (
	"context"
	"errors"
	"fmt"

	"car-rental-backend/internal/domain"
	"car-rental-backend/internal/logger"
	"car-rental-backend/internal/metrics"
	"car-rental-backend/internal/repository"
)

type patch[E any] interface {
	Apply(e *E)
}

// entityConfig is what differs between record types. Optional hooks may be
// nil.
type entityConfig[E any] struct {
	name   string
	entity domain.Entity
	repo   func(repository.Store) repository.CRUD[E]
	id     func(e *E) *int64

	// defaults fills unset fields before a create.
	defaults func(e *E)
	validate func(e *E) error
	// targets lists the rows e references; each must exist before a write.
	targets func(e *E) []domain.Target
	// transition rejects an update that moves a row from before to after.
	transition func(before, after *E) error
}

type entityService[E any, P patch[E]] struct {
	store repository.Store
	cfg   entityConfig[E]
}

func newEntityService[E any, P patch[E]](store repository.Store, cfg entityConfig[E]) *entityService[E, P] {
	return &entityService[E, P]{store: store, cfg: cfg}
}

func (s *entityService[E, P]) method(op string) string {
	return s.cfg.name + "." + op
}

func (s *entityService[E, P]) List(ctx context.Context) ([]E, error) {
	items, err := s.cfg.repo(s.store).List(ctx)
	if err != nil {
		return nil, wrap(err, "failed to list %ss", s.cfg.entity)
	}
	return items, nil
}

func (s *entityService[E, P]) Get(ctx context.Context, id int64) (*E, error) {
	e, err := s.cfg.repo(s.store).GetByID(ctx, id)
	if err != nil {
		return nil, wrap(err, "failed to get %s %d", s.cfg.entity, id)
	}
	return e, nil
}

func (s *entityService[E, P]) Create(ctx context.Context, e *E) (*E, error) {
	method := s.method("Create")
	logger.EnterMethod(method)

	if s.cfg.defaults != nil {
		s.cfg.defaults(e)
	}
	if err := s.check(e); err != nil {
		logger.ExitMethodRejected(method, err)
		return nil, err
	}

	err := s.store.WithTx(ctx, func(tx repository.Store) error {
		if err := s.checkTargets(ctx, tx, e); err != nil {
			return err
		}
		return s.cfg.repo(tx).Create(ctx, e)
	})
	if err != nil {
		return nil, s.exit(method, err, "failed to create %s", s.cfg.entity)
	}

	logger.ExitMethod(method, "id", *s.cfg.id(e))
	return e, nil
}

func (s *entityService[E, P]) Update(ctx context.Context, id int64, p P) (*E, error) {
	method := s.method("Update")
	logger.EnterMethod(method, "id", id)

	var updated *E
	err := s.store.WithTx(ctx, func(tx repository.Store) error {
		repo := s.cfg.repo(tx)
		current, err := repo.GetByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}

		before := *current
		p.Apply(current)

		if s.cfg.transition != nil {
			if err := s.cfg.transition(&before, current); err != nil {
				return err
			}
		}

		if err := s.check(current); err != nil {
			return err
		}
		if err := s.checkTargets(ctx, tx, current); err != nil {
			return err
		}
		if err := repo.Update(ctx, current); err != nil {
			return err
		}
		updated = current
		return nil
	})
	if err != nil {
		return nil, s.exit(method, err, "failed to update %s %d", s.cfg.entity, id)
	}

	logger.ExitMethod(method, "id", id)
	return updated, nil
}

func (s *entityService[E, P]) Delete(ctx context.Context, id int64) error {
	method := s.method("Delete")
	logger.EnterMethod(method, "id", id)

	err := func() error {
		found, err := s.store.Integrity().Exists(ctx, s.cfg.entity, id)
		if err != nil {
			return err
		}
		if !found {
			return domain.NotFound(s.cfg.entity, id)
		}
		if err := checkDependents(ctx, s.store.Integrity(), s.cfg.entity, id); err != nil {
			return err
		}
		return s.cfg.repo(s.store).Delete(ctx, id)
	}()
	if err != nil {
		return s.exit(method, err, "failed to delete %s %d", s.cfg.entity, id)
	}

	logger.ExitMethod(method, "id", id)
	return nil
}

func (s *entityService[E, P]) check(e *E) error {
	if s.cfg.validate == nil {
		return nil
	}
	return s.cfg.validate(e)
}

func (s *entityService[E, P]) checkTargets(ctx context.Context, store repository.Store, e *E) error {
	if s.cfg.targets == nil {
		return nil
	}
	return checkTargets(ctx, store.Integrity(), s.cfg.targets(e))
}

// exit logs a failed operation at the level its kind deserves and wraps
// infrastructure errors with context.
func (s *entityService[E, P]) exit(method string, err error, format string, args ...any) error {
	if isDomainError(err) {
		logger.ExitMethodRejected(method, err)
		return err
	}
	logger.ExitMethodWithError(method, err)
	return wrap(err, format, args...)
}

// checkTargets fails with NotFound on the first referenced row that does not
// exist.
func checkTargets(ctx context.Context, integrity repository.IntegrityRepository, targets []domain.Target) error {
	for _, t := range targets {
		found, err := integrity.Exists(ctx, t.Entity, t.ID)
		if err != nil {
			return err
		}
		if !found {
			return domain.NotFound(t.Entity, t.ID)
		}
	}
	return nil
}

// checkDependents fails with Conflict on the first kind of row that still
// references entity id.
func checkDependents(ctx context.Context, integrity repository.IntegrityRepository, entity domain.Entity, id int64) error {
	for _, ref := range domain.DependentsOf(entity) {
		found, err := integrity.HasDependents(ctx, ref, id)
		if err != nil {
			return err
		}
		if found {
			metrics.RecordDeleteRejected(string(entity), string(ref.From))
			return domain.Conflict(entity, id, "cannot delete %s %d: it is referenced by at least one %s", entity, id, ref.From)
		}
	}
	return nil
}

func isDomainError(err error) bool {
	var de *domain.Error
	return errors.As(err, &de)
}

// wrap adds context to infrastructure errors. Domain errors are returned as
// they are so callers see their message unchanged.
func wrap(err error, format string, args ...any) error {
	if isDomainError(err) {
		return err
	}
	return fmt.Errorf(format+": %w", append(args, err)...)
}
