package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/spksaw/backend/internal/models"
	"github.com/spksaw/backend/internal/services"
	"go.uber.org/zap"
)

// MessageSchoolNotFound is returned when a school id does not resolve
const MessageSchoolNotFound = "Sekolah tidak ditemukan"

// DirectoryService is the interface that wraps read access to the organisational directory.
type DirectoryService interface {
	// Method ListSchools returns schools matching "filter" ordered by name.
	ListSchools(ctx context.Context, filter models.SchoolFilter) ([]models.School, error)
	// Method GetSchool returns school "schoolID" with its principal.
	//
	// If the school does not exist, the error wraps models.ErrNotFound.
	GetSchool(ctx context.Context, schoolID int) (*models.SchoolDetail, error)
	// Method ListSchoolUsers returns members of school "schoolID" filtered by "query".
	//
	// A *services.ValidationError is returned for an unknown role or active flag,
	// and an error wrapping models.ErrNotFound when the school does not exist.
	ListSchoolUsers(ctx context.Context, schoolID int, query services.UserListQuery) ([]models.User, error)
}

// SchoolHandler handles directory HTTP requests
type SchoolHandler struct {
	BaseHandler
	directoryService DirectoryService
}

// NewSchoolHandler creates a new school handler
func NewSchoolHandler(directoryService DirectoryService, logger *zap.Logger) *SchoolHandler {
	return &SchoolHandler{
		BaseHandler:      BaseHandler{Logger: logger},
		directoryService: directoryService,
	}
}

// RegisterRoutes registers school routes
func (h *SchoolHandler) RegisterRoutes(r chi.Router) {
	r.Route("/schools", func(r chi.Router) {
		r.Get("/", h.ListSchools)
		r.Get("/{id}", h.GetSchool)
		r.Get("/{id}/users", h.ListSchoolUsers)
	})
}

// ListSchools handles GET /schools
// @Summary List schools
// @Description List schools ordered by name, optionally filtered by province and district
// @Tags schools
// @Produce json
// @Security BearerAuth
// @Param province query string false "Province (exact match)"
// @Param district query string false "District (exact match)"
// @Success 200 {object} Response{data=[]models.School}
// @Failure 401 {object} Response "Tidak terautentikasi"
// @Failure 403 {object} Response "Akses ditolak"
// @Router /schools [get]
func (h *SchoolHandler) ListSchools(w http.ResponseWriter, r *http.Request) {
	filter := models.SchoolFilter{
		Province: r.URL.Query().Get("province"),
		District: r.URL.Query().Get("district"),
	}

	schools, err := h.directoryService.ListSchools(r.Context(), filter)
	if err != nil {
		h.RespondServerError(w, r, "failed to list schools", err)
		return
	}

	h.RespondSuccess(w, "", schools)
}

// GetSchool handles GET /schools/{id}
// @Summary Get school
// @Description Get a school with its principal
// @Tags schools
// @Produce json
// @Security BearerAuth
// @Param id path int true "School ID"
// @Success 200 {object} Response{data=models.SchoolDetail}
// @Failure 404 {object} Response "Sekolah tidak ditemukan"
// @Router /schools/{id} [get]
func (h *SchoolHandler) GetSchool(w http.ResponseWriter, r *http.Request) {
	schoolID, ok := h.schoolID(w, r)
	if !ok {
		return
	}

	school, err := h.directoryService.GetSchool(r.Context(), schoolID)
	if err != nil {
		h.respondDirectoryError(w, r, "failed to get school", err)
		return
	}

	h.RespondSuccess(w, "", school)
}

// ListSchoolUsers handles GET /schools/{id}/users
// @Summary List school users
// @Description List members of a school, optionally filtered by role and active flag
// @Tags schools
// @Produce json
// @Security BearerAuth
// @Param id path int true "School ID"
// @Param role query string false "Role" Enums(user, school_principal, admin, super_admin)
// @Param active query bool false "Active flag"
// @Success 200 {object} Response{data=[]models.User}
// @Failure 404 {object} Response "Sekolah tidak ditemukan"
// @Failure 422 {object} Response "Data tidak valid"
// @Router /schools/{id}/users [get]
func (h *SchoolHandler) ListSchoolUsers(w http.ResponseWriter, r *http.Request) {
	schoolID, ok := h.schoolID(w, r)
	if !ok {
		return
	}

	query := services.UserListQuery{
		Role:   r.URL.Query().Get("role"),
		Active: r.URL.Query().Get("active"),
	}

	users, err := h.directoryService.ListSchoolUsers(r.Context(), schoolID, query)
	if err != nil {
		h.respondDirectoryError(w, r, "failed to list school users", err)
		return
	}

	h.RespondSuccess(w, "", users)
}

// schoolID parses the {id} path parameter; unparsable ids are reported as not found
func (h *SchoolHandler) schoolID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id <= 0 {
		h.RespondError(w, http.StatusNotFound, MessageSchoolNotFound)
		return 0, false
	}
	return id, true
}

func (h *SchoolHandler) respondDirectoryError(w http.ResponseWriter, r *http.Request, msg string, err error) {
	var validationErr *services.ValidationError
	switch {
	case errors.As(err, &validationErr):
		h.RespondFieldErrors(w, http.StatusUnprocessableEntity, MessageValidationError, validationErr.Fields)
	case errors.Is(err, models.ErrNotFound):
		h.RespondError(w, http.StatusNotFound, MessageSchoolNotFound)
	default:
		h.RespondServerError(w, r, msg, err)
	}
}
