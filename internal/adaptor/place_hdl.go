package adaptor

import (
	"encoding/json"
	"net/http"
	"strings"

	"vietnam-places/internal/data/entity"
	"vietnam-places/internal/data/repository"
	"vietnam-places/internal/dto/request"
	"vietnam-places/internal/usecase"
	"vietnam-places/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type PlaceHandler struct {
	service usecase.PlaceService
	log     *zap.Logger
}

func NewPlaceHandler(service usecase.PlaceService, log *zap.Logger) *PlaceHandler {
	return &PlaceHandler{
		service: service,
		log:     log,
	}
}

// Create handles POST /api/places
func (h *PlaceHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.CreatePlaceRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	// Validate request
	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	response, err := h.service.CreatePlace(r.Context(), userID, &req)
	if err != nil {
		h.handleServiceError(w, err, "create place")
		return
	}

	utils.ResponseCreated(w, "Place created", response)
}

// List handles GET /api/places with optional city, type and
// is_visited query filters.
func (h *PlaceHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	filter, errMsg := parsePlaceFilter(r)
	if errMsg != "" {
		utils.ResponseBadRequest(w, errMsg, nil)
		return
	}

	response, err := h.service.ListPlaces(r.Context(), userID, filter)
	if err != nil {
		h.handleServiceError(w, err, "list places")
		return
	}

	utils.ResponseSuccess(w, "Places retrieved", response)
}

// Update handles PATCH /api/places/{id}
func (h *PlaceHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	placeID, ok := utils.ParseInt64(chi.URLParam(r, "id"))
	if !ok {
		utils.ResponseBadRequest(w, "Invalid place id", nil)
		return
	}

	var req request.UpdatePlaceRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	// Validate request
	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	response, err := h.service.UpdatePlace(r.Context(), placeID, userID, &req)
	if err != nil {
		h.handleServiceError(w, err, "update place")
		return
	}

	utils.ResponseSuccess(w, "Place updated", response)
}

// Delete handles DELETE /api/places/{id}. The result is a success
// flag, not an error, so clients check the flag.
func (h *PlaceHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	placeID, ok := utils.ParseInt64(chi.URLParam(r, "id"))
	if !ok {
		utils.ResponseBadRequest(w, "Invalid place id", nil)
		return
	}

	deleted, err := h.service.DeletePlace(r.Context(), placeID, userID)
	if err != nil {
		h.handleServiceError(w, err, "delete place")
		return
	}

	utils.ResponseSuccess(w, "Delete processed", map[string]bool{"success": deleted})
}

// Stats handles GET /api/stats
func (h *PlaceHandler) Stats(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	response, err := h.service.GetStats(r.Context(), userID)
	if err != nil {
		h.handleServiceError(w, err, "get stats")
		return
	}

	utils.ResponseSuccess(w, "Stats computed", response)
}

// parsePlaceFilter reads the optional query parameters. Values outside
// the closed enums are a validation failure, not an empty result.
func parsePlaceFilter(r *http.Request) (*repository.PlaceFilter, string) {
	filter := &repository.PlaceFilter{}

	if cityStr := r.URL.Query().Get("city"); cityStr != "" {
		city := entity.City(cityStr)
		if !city.Valid() {
			return nil, "Unknown city"
		}
		filter.City = &city
	}

	if typeStr := r.URL.Query().Get("type"); typeStr != "" {
		placeType := entity.PlaceType(typeStr)
		if !placeType.Valid() {
			return nil, "Unknown place type"
		}
		filter.Type = &placeType
	}

	visited, ok := utils.ParseOptionalBool(r.URL.Query().Get("is_visited"))
	if !ok {
		return nil, "Invalid is_visited value"
	}
	filter.IsVisited = visited

	return filter, ""
}

// handleServiceError handles different types of errors
func (h *PlaceHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "not found"),
		strings.Contains(errMsg, "access denied"):
		h.log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, errMsg)

	case strings.Contains(errMsg, "validation failed"):
		h.log.Warn(operation+" validation failed", zap.Error(err))
		utils.ResponseBadRequest(w, errMsg, nil)

	default:
		h.log.Error("Failed to "+operation, zap.Error(err), zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
