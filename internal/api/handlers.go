package api

import (
	"net/http"

	"tcgcatalog/internal/catalog"
	"tcgcatalog/internal/pagination"
	"tcgcatalog/internal/store"
)

const (
	msgSetNotFound      = "Set not found"
	msgCardNotFound     = "Card not found"
	msgEndpointNotFound = "Endpoint not found"
	msgInternal         = "Internal server error"

	// ISO 8601 in UTC with millisecond precision.
	timestampLayout = "2006-01-02T15:04:05.000Z07:00"
)

type healthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{
		Status:    "OK",
		Timestamp: s.now().UTC().Format(timestampLayout),
	})
}

func (s *Server) handleListSets(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	page := pagination.FromQuery(r.URL.Query())

	total, err := s.catalog.CountSets(ctx)
	if err != nil {
		s.internalError(w, r, "counting sets", err)
		return
	}
	sets, err := s.catalog.ListSets(ctx, page.Limit, page.Offset)
	if err != nil {
		s.internalError(w, r, "listing sets", err)
		return
	}
	writeJSON(w, http.StatusOK, pagination.NewEnvelope(sets, total, page))
}

func (s *Server) handleGetSet(w http.ResponseWriter, r *http.Request) {
	set, err := s.catalog.GetSet(r.Context(), r.PathValue("setId"))
	if err != nil {
		s.internalError(w, r, "getting set", err)
		return
	}
	if set == nil {
		writeError(w, http.StatusNotFound, msgSetNotFound)
		return
	}
	writeJSON(w, http.StatusOK, set)
}

func (s *Server) handleGetSetByCode(w http.ResponseWriter, r *http.Request) {
	set, err := s.catalog.GetSetByPTCGOCode(r.Context(), r.PathValue("ptcgoCode"))
	if err != nil {
		s.internalError(w, r, "getting set by code", err)
		return
	}
	if set == nil {
		writeError(w, http.StatusNotFound, msgSetNotFound)
		return
	}
	writeJSON(w, http.StatusOK, set)
}

func (s *Server) handleListCards(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := store.CardFilter{NameContains: query.Get("searchName")}
	s.listCards(w, r, filter, pagination.FromQuery(query))
}

func (s *Server) handleGetCard(w http.ResponseWriter, r *http.Request) {
	card, err := s.catalog.GetCard(r.Context(), r.PathValue("cardId"))
	if err != nil {
		s.internalError(w, r, "getting card", err)
		return
	}
	if card == nil {
		writeError(w, http.StatusNotFound, msgCardNotFound)
		return
	}
	writeJSON(w, http.StatusOK, card)
}

func (s *Server) handleListCardsBySet(w http.ResponseWriter, r *http.Request) {
	set, err := s.catalog.GetSet(r.Context(), r.PathValue("setId"))
	if err != nil {
		s.internalError(w, r, "getting set", err)
		return
	}
	if set == nil {
		writeError(w, http.StatusNotFound, msgSetNotFound)
		return
	}
	filter := store.CardFilter{SetRef: &set.Ref}
	s.listCards(w, r, filter, pagination.FromQuery(r.URL.Query()))
}

func (s *Server) listCards(w http.ResponseWriter, r *http.Request, filter store.CardFilter, page pagination.Request) {
	ctx := r.Context()

	total, err := s.catalog.CountCards(ctx, filter)
	if err != nil {
		s.internalError(w, r, "counting cards", err)
		return
	}
	cards, err := s.catalog.ListCards(ctx, filter, page.Limit, page.Offset)
	if err != nil {
		s.internalError(w, r, "listing cards", err)
		return
	}
	writeJSON(w, http.StatusOK, pagination.NewEnvelope[catalog.Card](cards, total, page))
}

func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, http.StatusNotFound, msgEndpointNotFound)
}

func (s *Server) internalError(w http.ResponseWriter, r *http.Request, op string, err error) {
	s.logger.ErrorContext(r.Context(), op+" failed",
		"error", err,
		"request_id", RequestIDFromContext(r.Context()),
	)
	writeError(w, http.StatusInternalServerError, msgInternal)
}
