// Copyright (c) 2026 Cinedex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package roster

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/cinedex/internal/platform/apperr"
	"github.com/taibuivan/cinedex/internal/platform/middleware"
	requestutil "github.com/taibuivan/cinedex/internal/platform/request"
	"github.com/taibuivan/cinedex/internal/platform/respond"
	"github.com/taibuivan/cinedex/internal/platform/sec"
)

const (
	paramMovieID  = "movieID"
	paramPersonID = "personID"
	paramRole     = "role"
)

// Handler exposes every roster over HTTP.
//
// # Routes (mounted at /api/v1/movies)
//
//	GET    /{movieID}/{role}             current roster (204 when empty)
//	PUT    /{movieID}/{role}             replace the roster
//	PATCH  /{movieID}/{role}             append to the roster
//	PATCH  /{movieID}/{role}/{personID}  remove one person
//	DELETE /{movieID}/{role}             clear the roster
//
// {role} is "actors" or a crew label such as "directors" or "stuntmen".
type Handler struct {
	services *Services
}

// NewHandler constructs a new [Handler].
func NewHandler(services *Services) *Handler {
	return &Handler{services: services}
}

// Routes returns the movie roster sub-router.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Route("/{"+paramMovieID+"}", func(movieRoute chi.Router) {
		// Static segment wins over {role}, so actors keep their ranked path.
		movieRoute.Route("/actors", func(castRoute chi.Router) {
			mountRoster(castRoute, handler.castService)
		})
		movieRoute.Route("/{"+paramRole+"}", func(crewRoute chi.Router) {
			mountRoster(crewRoute, handler.crewService)
		})
	})

	return router
}

// ListRoles handles GET /api/v1/roles.
func (handler *Handler) ListRoles(writer http.ResponseWriter, request *http.Request) {
	respond.OK(writer, handler.services.Registry.Roles())
}

func (handler *Handler) castService(*http.Request) (*CastService, error) {
	return handler.services.Cast, nil
}

func (handler *Handler) crewService(request *http.Request) (*CrewService, error) {
	label := requestutil.Param(request, paramRole)

	roleType, ok := handler.services.Registry.ByLabel(label)
	if !ok {
		return nil, apperr.NotFound("Role " + label)
	}
	return handler.services.Crew(roleType)
}

// # Generic Handlers

type serviceLookup[A any, I Input] func(request *http.Request) (*Service[A, I], error)

func mountRoster[A any, I Input](router chi.Router, lookup serviceLookup[A, I]) {
	// Public
	router.Get("/", getRoster(lookup))

	// Moderator only
	router.Group(func(moderatorRoute chi.Router) {
		moderatorRoute.Use(middleware.RequireRole(sec.RoleModerator))

		moderatorRoute.Put("/", replaceRoster(lookup))
		moderatorRoute.Patch("/", addToRoster(lookup))
		moderatorRoute.Patch("/{"+paramPersonID+"}", removeFromRoster(lookup))
		moderatorRoute.Delete("/", clearRoster(lookup))
	})
}

func target[A any, I Input](request *http.Request, lookup serviceLookup[A, I]) (*Service[A, I], int64, error) {
	service, err := lookup(request)
	if err != nil {
		return nil, 0, err
	}

	movieID, err := requestutil.Int64Param(request, paramMovieID)
	if err != nil {
		return nil, 0, err
	}
	return service, movieID, nil
}

func getRoster[A any, I Input](lookup serviceLookup[A, I]) http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {
		service, movieID, err := target(request, lookup)
		if err != nil {
			respond.Error(writer, request, err)
			return
		}

		entries, err := service.GetByMovie(request.Context(), movieID)
		if err != nil {
			respond.Error(writer, request, err)
			return
		}
		respond.Collection(writer, entries)
	}
}

func replaceRoster[A any, I Input](lookup serviceLookup[A, I]) http.HandlerFunc {
	return applyPayload(lookup, (*Service[A, I]).Replace)
}

func addToRoster[A any, I Input](lookup serviceLookup[A, I]) http.HandlerFunc {
	return applyPayload(lookup, (*Service[A, I]).Add)
}

func applyPayload[A any, I Input](lookup serviceLookup[A, I], verb func(*Service[A, I], context.Context, int64, []I) ([]Entry, error)) http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {
		service, movieID, err := target(request, lookup)
		if err != nil {
			respond.Error(writer, request, err)
			return
		}

		// A JSON null body decodes to a nil slice, which the service rejects.
		var inputs []I
		if err := requestutil.DecodeJSON(writer, request, &inputs); err != nil {
			respond.Error(writer, request, err)
			return
		}

		entries, err := verb(service, request.Context(), movieID, inputs)
		if err != nil {
			respond.Error(writer, request, err)
			return
		}
		respond.Collection(writer, entries)
	}
}

func removeFromRoster[A any, I Input](lookup serviceLookup[A, I]) http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {
		service, movieID, err := target(request, lookup)
		if err != nil {
			respond.Error(writer, request, err)
			return
		}

		personID, err := requestutil.Int64Param(request, paramPersonID)
		if err != nil {
			respond.Error(writer, request, err)
			return
		}

		entries, err := service.RemoveOne(request.Context(), movieID, personID)
		if err != nil {
			respond.Error(writer, request, err)
			return
		}
		respond.Collection(writer, entries)
	}
}

func clearRoster[A any, I Input](lookup serviceLookup[A, I]) http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {
		service, movieID, err := target(request, lookup)
		if err != nil {
			respond.Error(writer, request, err)
			return
		}

		if _, err := service.Clear(request.Context(), movieID); err != nil {
			respond.Error(writer, request, err)
			return
		}
		respond.NoContent(writer)
	}
}
