// Copyright (c) 2026 Cinedex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package person

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/taibuivan/cinedex/internal/platform/request"
	"github.com/taibuivan/cinedex/internal/platform/respond"
	"github.com/taibuivan/cinedex/pkg/pagination"
	"github.com/taibuivan/cinedex/pkg/slice"
)

// Handler exposes person lookups over HTTP.
type Handler struct {
	service *Service
}

// NewHandler constructs a new [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the person sub-router, mounted at /api/v1/persons.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Get("/", handler.searchPersons)
	router.Get("/{personID}", handler.getPerson)
	return router
}

func (handler *Handler) searchPersons(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)

	filter := Filter{
		Query: request.URL.Query().Get("q"),
	}

	persons, total, err := handler.service.Search(request.Context(), filter, paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	summaries := slice.Map(persons, (*Person).Summary)
	respond.Paginated(writer, summaries, paginationParams.Meta(total))
}

func (handler *Handler) getPerson(writer http.ResponseWriter, request *http.Request) {
	personID, err := requestutil.Int64Param(request, "personID")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	person, err := handler.service.Get(request.Context(), personID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, person.Summary())
}
