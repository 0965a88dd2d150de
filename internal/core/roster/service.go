// Copyright (c) 2026 Cinedex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package roster

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/taibuivan/cinedex/internal/core/movie"
	"github.com/taibuivan/cinedex/internal/core/person"
	"github.com/taibuivan/cinedex/internal/platform/apperr"
	"github.com/taibuivan/cinedex/internal/platform/constants"
	"github.com/taibuivan/cinedex/internal/platform/validate"
)

// # Service Layer

// Service implements the roster verbs for one role type.
//
// Each verb runs in exactly one transaction. Inputs are resolved one by one
// in payload order, then the movie is loaded, then the roster is mutated.
// Nothing is cached between calls.
type Service[A any, I Input] struct {
	descriptor *Descriptor[A, I]
	transactor Transactor
	notifier   Notifier
	logger     *slog.Logger
}

// CrewService serves one technician role.
type CrewService = Service[movie.Credit, CreditInput]

// CastService serves the ranked actor role.
type CastService = Service[movie.CastMember, CastInput]

// NewService constructs a roster service. A nil notifier disables change events.
func NewService[A any, I Input](descriptor *Descriptor[A, I], transactor Transactor, notifier Notifier, logger *slog.Logger) *Service[A, I] {
	return &Service[A, I]{
		descriptor: descriptor,
		transactor: transactor,
		notifier:   notifier,
		logger:     logger,
	}
}

// Descriptor returns the role descriptor this service is bound to.
func (service *Service[A, I]) Descriptor() *Descriptor[A, I] {
	return service.descriptor
}

// # Reads

/*
GetByMovie returns the movie's current roster for the role.

Returns:
  - []Entry: The roster in insertion order, empty (never nil) when there is none
  - error: BAD_REQUEST for a non-positive id, NOT_FOUND for an unknown movie
*/
func (service *Service[A, I]) GetByMovie(ctx context.Context, movieID int64) ([]Entry, error) {
	if err := requirePositive("movie id", movieID); err != nil {
		return nil, err
	}

	var items []A
	err := service.transactor.WithinTx(ctx, func(ctx context.Context, tx Tx) error {
		m, err := tx.Movies().LoadForUpdate(ctx, movieID)
		if err != nil {
			return err
		}

		if err := newAssociations(service.descriptor, tx.Credits()).Hydrate(ctx, m); err != nil {
			return err
		}
		items = *service.descriptor.Roster(m)
		return nil
	})
	if err != nil {
		return nil, service.fail(ctx, "get", movieID, err)
	}

	return service.descriptor.present(items), nil
}

// # Mutations

/*
Replace overwrites the roster with inputs, preserving their order.

An empty, non-nil inputs clears the roster. A nil inputs is rejected with
the role's null message.
*/
func (service *Service[A, I]) Replace(ctx context.Context, movieID int64, inputs []I) ([]Entry, error) {
	return service.mutate(ctx, movieID, inputs, ActionReplaced,
		func(ctx context.Context, assoc *associations[A, I], m *movie.Movie, items []A) ([]A, error) {
			return assoc.ReplaceAll(ctx, m, items)
		})
}

// Add appends inputs to the roster without touching existing rows.
func (service *Service[A, I]) Add(ctx context.Context, movieID int64, inputs []I) ([]Entry, error) {
	return service.mutate(ctx, movieID, inputs, ActionAdded,
		func(ctx context.Context, assoc *associations[A, I], m *movie.Movie, items []A) ([]A, error) {
			return assoc.AddMany(ctx, m, items)
		})
}

// RemoveOne removes the person's rows from the roster. Removing a non-member succeeds.
func (service *Service[A, I]) RemoveOne(ctx context.Context, movieID, personID int64) ([]Entry, error) {
	if err := requirePositive("movie id", movieID); err != nil {
		return nil, err
	}
	if err := requirePositive("person id", personID); err != nil {
		return nil, err
	}

	var items []A
	err := service.transactor.WithinTx(ctx, func(ctx context.Context, tx Tx) error {
		m, assoc, err := service.load(ctx, tx, movieID)
		if err != nil {
			return err
		}

		items, err = assoc.RemoveOne(ctx, m, personID)
		return err
	})
	if err != nil {
		return nil, service.fail(ctx, "remove_one", movieID, err)
	}

	service.announce(ctx, movieID, ActionRemoved, len(items))
	return service.descriptor.present(items), nil
}

// Clear empties the roster. Clearing twice is not an error.
func (service *Service[A, I]) Clear(ctx context.Context, movieID int64) (bool, error) {
	if err := requirePositive("movie id", movieID); err != nil {
		return false, err
	}

	var cleared bool
	err := service.transactor.WithinTx(ctx, func(ctx context.Context, tx Tx) error {
		m, assoc, err := service.load(ctx, tx, movieID)
		if err != nil {
			return err
		}

		cleared, err = assoc.ClearAll(ctx, m)
		return err
	})
	if err != nil {
		return false, service.fail(ctx, "clear", movieID, err)
	}

	service.announce(ctx, movieID, ActionCleared, 0)
	return cleared, nil
}

// # Internals

type applyFunc[A any, I Input] func(ctx context.Context, assoc *associations[A, I], m *movie.Movie, items []A) ([]A, error)

func (service *Service[A, I]) mutate(ctx context.Context, movieID int64, inputs []I, action Action, apply applyFunc[A, I]) ([]Entry, error) {
	if err := service.checkInputs(movieID, inputs); err != nil {
		return nil, err
	}

	var items []A
	err := service.transactor.WithinTx(ctx, func(ctx context.Context, tx Tx) error {
		// Resolution first, strictly in payload order, so ranks and ids line up.
		resolver := NewResolver(tx.Persons(), service.logger)
		persons := make([]*person.Person, 0, len(inputs))
		for _, input := range inputs {
			resolved, err := resolver.Resolve(ctx, input.PersonInput(), service.descriptor.Type)
			if err != nil {
				return err
			}
			persons = append(persons, resolved)
		}

		m, assoc, err := service.load(ctx, tx, movieID)
		if err != nil {
			return err
		}

		built := make([]A, 0, len(inputs))
		for index, input := range inputs {
			built = append(built, service.descriptor.Build(m, persons[index], input))
		}

		items, err = apply(ctx, assoc, m, built)
		return err
	})
	if err != nil {
		return nil, service.fail(ctx, string(action), movieID, err)
	}

	service.announce(ctx, movieID, action, len(items))
	return service.descriptor.present(items), nil
}

// load fetches the movie and hydrates the role's collection.
func (service *Service[A, I]) load(ctx context.Context, tx Tx, movieID int64) (*movie.Movie, *associations[A, I], error) {
	m, err := tx.Movies().LoadForUpdate(ctx, movieID)
	if err != nil {
		return nil, nil, err
	}

	assoc := newAssociations(service.descriptor, tx.Credits())
	if err := assoc.Hydrate(ctx, m); err != nil {
		return nil, nil, err
	}
	return m, assoc, nil
}

func (service *Service[A, I]) checkInputs(movieID int64, inputs []I) error {
	if err := requirePositive("movie id", movieID); err != nil {
		return err
	}
	if inputs == nil {
		return apperr.BadRequest(service.descriptor.NullMessage)
	}

	validator := &validate.Validator{}
	seen := make(map[int64]bool, len(inputs))
	for index, input := range inputs {
		field := fmt.Sprintf("%s[%d]", service.descriptor.Label, index)
		input.Validate(validator, field)

		// A person is credited at most once per role in a single call.
		if id := input.PersonInput().ID; id != nil {
			validator.Custom(field+".person.id", seen[*id], "Person is already listed in this payload")
			seen[*id] = true
		}
	}
	return validator.Err()
}

// fail is the single error boundary: client errors pass through, anything
// else is logged and reported with the role's failure message.
func (service *Service[A, I]) fail(ctx context.Context, operation string, movieID int64, err error) error {
	if apperr.IsClientError(err) {
		return err
	}

	service.logger.ErrorContext(ctx, "roster_operation_failed",
		slog.String("role", service.descriptor.Type.String()),
		slog.String("operation", operation),
		slog.Int64("movie_id", movieID),
		slog.Any("error", err),
	)
	return apperr.InternalMessage(service.descriptor.FailureMessage, err)
}

// announce logs the committed mutation and publishes it. Publishing never
// fails the call.
func (service *Service[A, I]) announce(ctx context.Context, movieID int64, action Action, size int) {
	service.logger.InfoContext(ctx, "roster_"+string(action),
		slog.String("role", service.descriptor.Type.String()),
		slog.Int64("movie_id", movieID),
		slog.Int("size", size),
	)

	if service.notifier == nil {
		return
	}

	// The change is committed; publish even if the caller has gone away.
	notifyCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), constants.NotifyTimeout)
	defer cancel()

	change := Change{MovieID: movieID, Role: service.descriptor.Type, Action: action, Size: size}
	if err := service.notifier.Notify(notifyCtx, change); err != nil {
		service.logger.WarnContext(ctx, "roster_notify_failed",
			slog.String("role", service.descriptor.Type.String()),
			slog.Int64("movie_id", movieID),
			slog.Any("error", err),
		)
	}
}

func requirePositive(name string, id int64) error {
	if id <= 0 {
		return apperr.BadRequest(name + " must be a positive integer")
	}
	return nil
}

// # Service Set

// Services holds one service per registered role type.
type Services struct {
	Registry *Registry
	Cast     *CastService
	crew     map[movie.RoleType]*CrewService
}

// NewServices instantiates the generic service for every descriptor in registry.
func NewServices(registry *Registry, transactor Transactor, notifier Notifier, logger *slog.Logger) *Services {
	services := &Services{
		Registry: registry,
		Cast:     NewService(registry.Cast(), transactor, notifier, logger),
		crew:     make(map[movie.RoleType]*CrewService),
	}

	for _, roleType := range movie.CrewRoleTypes() {
		descriptor, _ := registry.DescriptorFor(roleType)
		services.crew[roleType] = NewService(descriptor, transactor, notifier, logger)
	}

	return services
}

// Crew returns the service for a technician role type.
func (services *Services) Crew(roleType movie.RoleType) (*CrewService, error) {
	service, ok := services.crew[roleType]
	if !ok {
		return nil, apperr.NotFound("Role type " + string(roleType))
	}
	return service, nil
}
