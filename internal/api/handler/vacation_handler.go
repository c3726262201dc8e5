package handler

import (
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/travelist/vacations-system/internal/api/metrics"
	"github.com/travelist/vacations-system/internal/core/domain"
	"github.com/travelist/vacations-system/internal/core/ports"
	"github.com/travelist/vacations-system/internal/infrastructure/storage"
)

const dateLayout = "2006-01-02"

// VacationHandler handles HTTP requests for vacation operations.
type VacationHandler struct {
	service ports.VacationService
	likes   ports.LikeRepository
	images  *storage.ImageStore
	logger  zerolog.Logger
}

func NewVacationHandler(service ports.VacationService, likes ports.LikeRepository, images *storage.ImageStore, logger zerolog.Logger) *VacationHandler {
	return &VacationHandler{service: service, likes: likes, images: images, logger: logger}
}

// --- Request / Response types ---

type vacationRequest struct {
	CountryID   *int     `json:"countryId"`
	Description *string  `json:"description"`
	StartDate   *string  `json:"startDate"`
	EndDate     *string  `json:"endDate"`
	Price       *float64 `json:"price"`
	ImageName   *string  `json:"imageName"`
}

type vacationResponse struct {
	ID          int     `json:"id"`
	CountryID   int     `json:"countryId"`
	Description string  `json:"description"`
	StartDate   string  `json:"startDate"`
	EndDate     string  `json:"endDate"`
	Price       float64 `json:"price"`
	ImageName   *string `json:"imageName,omitempty"`
	LikesCount  int64   `json:"likesCount"`
}

func toVacationResponse(v *domain.Vacation, likesCount int64) vacationResponse {
	return vacationResponse{
		ID:          v.ID,
		CountryID:   v.CountryID,
		Description: v.Description,
		StartDate:   v.StartDate.Format(dateLayout),
		EndDate:     v.EndDate.Format(dateLayout),
		Price:       v.Price,
		ImageName:   v.ImageName,
		LikesCount:  likesCount,
	}
}

// List handles GET /api/vacations. Vacations come back sorted by start date
// ascending with their like counts annotated (zero when nobody liked one).
//
// @Summary      List all vacations
// @Tags         vacations
// @Produce      json
// @Success      200  {array}   vacationResponse
// @Failure      500  {object}  map[string]string
// @Router       /api/vacations [get]
func (h *VacationHandler) List(c echo.Context) error {
	ctx := c.Request().Context()

	vacations, err := h.service.List(ctx)
	if err != nil {
		return err
	}
	counts, err := h.likes.GetLikesCountByVacation(ctx)
	if err != nil {
		return err
	}

	out := make([]vacationResponse, len(vacations))
	for i := range vacations {
		out[i] = toVacationResponse(&vacations[i], counts[vacations[i].ID])
	}
	return c.JSON(http.StatusOK, out)
}

// Get handles GET /api/vacations/:id.
//
// @Summary      Get a vacation by id
// @Tags         vacations
// @Produce      json
// @Param        id   path      int  true  "Vacation ID"
// @Success      200  {object}  vacationResponse
// @Failure      404  {object}  map[string]string
// @Router       /api/vacations/{id} [get]
func (h *VacationHandler) Get(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid vacation id")
	}

	ctx := c.Request().Context()
	vacation, err := h.service.Get(ctx, id)
	if err != nil {
		return err
	}
	counts, err := h.likes.GetLikesCountByVacation(ctx)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toVacationResponse(vacation, counts[vacation.ID]))
}

// Create handles POST /api/vacations (admin only). Accepts either a JSON
// body or multipart/form-data with an optional image part.
//
// @Summary      Create a vacation
// @Tags         vacations
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      vacationRequest  true  "Vacation data"
// @Success      201   {object}  vacationResponse
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /api/vacations [post]
func (h *VacationHandler) Create(c echo.Context) error {
	req, err := h.bindVacation(c)
	if err != nil {
		return err
	}

	input := ports.AddVacationInput{}
	if req.CountryID != nil {
		input.CountryID = *req.CountryID
	}
	if req.Description != nil {
		input.Description = *req.Description
	}
	if req.StartDate != nil {
		input.StartDate, err = parseDate(*req.StartDate)
		if err != nil {
			return err
		}
	}
	if req.EndDate != nil {
		input.EndDate, err = parseDate(*req.EndDate)
		if err != nil {
			return err
		}
	}
	input.Price = req.Price
	if req.ImageName != nil {
		input.ImageName = *req.ImageName
	}

	vacation, err := h.service.Add(c.Request().Context(), input)
	if err != nil {
		return err
	}

	metrics.VacationMutationsTotal.WithLabelValues("create").Inc()
	h.logger.Info().Int("vacation_id", vacation.ID).Msg("vacation created")
	return c.JSON(http.StatusCreated, toVacationResponse(vacation, 0))
}

// Update handles PUT /api/vacations/:id (admin only). Absent fields retain
// their stored values; an explicit empty imageName clears the image.
//
// @Summary      Update a vacation
// @Tags         vacations
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int              true  "Vacation ID"
// @Param        body  body      vacationRequest  true  "Fields to update"
// @Success      200   {object}  vacationResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/vacations/{id} [put]
func (h *VacationHandler) Update(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid vacation id")
	}

	req, err := h.bindVacation(c)
	if err != nil {
		return err
	}

	input := ports.UpdateVacationInput{
		CountryID:   req.CountryID,
		Description: req.Description,
		Price:       req.Price,
		ImageName:   req.ImageName,
	}
	if req.StartDate != nil {
		start, err := parseDate(*req.StartDate)
		if err != nil {
			return err
		}
		input.StartDate = &start
	}
	if req.EndDate != nil {
		end, err := parseDate(*req.EndDate)
		if err != nil {
			return err
		}
		input.EndDate = &end
	}

	ctx := c.Request().Context()
	vacation, err := h.service.Update(ctx, id, input)
	if err != nil {
		return err
	}
	counts, err := h.likes.GetLikesCountByVacation(ctx)
	if err != nil {
		return err
	}

	metrics.VacationMutationsTotal.WithLabelValues("update").Inc()
	return c.JSON(http.StatusOK, toVacationResponse(vacation, counts[vacation.ID]))
}

// Delete handles DELETE /api/vacations/:id (admin only).
//
// @Summary      Delete a vacation
// @Tags         vacations
// @Security     BearerAuth
// @Param        id  path  int  true  "Vacation ID"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /api/vacations/{id} [delete]
func (h *VacationHandler) Delete(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid vacation id")
	}

	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}

	metrics.VacationMutationsTotal.WithLabelValues("delete").Inc()
	return c.NoContent(http.StatusNoContent)
}

// bindVacation reads a vacation payload from either a JSON body or a
// multipart form. In the multipart case an uploaded "image" part is saved to
// the image store and its stored filename takes the place of imageName.
func (h *VacationHandler) bindVacation(c echo.Context) (*vacationRequest, error) {
	contentType := c.Request().Header.Get(echo.HeaderContentType)
	if !strings.HasPrefix(contentType, echo.MIMEMultipartForm) {
		var req vacationRequest
		if err := c.Bind(&req); err != nil {
			return nil, echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
		}
		return &req, nil
	}

	form, err := c.MultipartForm()
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "invalid multipart form")
	}

	req := &vacationRequest{}
	if v, ok := formValue(form.Value, "countryId"); ok {
		id, err := strconv.Atoi(v)
		if err != nil {
			return nil, echo.NewHTTPError(http.StatusBadRequest, "invalid countryId")
		}
		req.CountryID = &id
	}
	if v, ok := formValue(form.Value, "description"); ok {
		req.Description = &v
	}
	if v, ok := formValue(form.Value, "startDate"); ok {
		req.StartDate = &v
	}
	if v, ok := formValue(form.Value, "endDate"); ok {
		req.EndDate = &v
	}
	if v, ok := formValue(form.Value, "price"); ok {
		price, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, echo.NewHTTPError(http.StatusBadRequest, "invalid price")
		}
		req.Price = &price
	}
	if v, ok := formValue(form.Value, "imageName"); ok {
		req.ImageName = &v
	}

	if files := form.File["image"]; len(files) > 0 {
		stored, err := h.saveImage(files[0])
		if err != nil {
			return nil, err
		}
		req.ImageName = &stored
	}
	return req, nil
}

func (h *VacationHandler) saveImage(file *multipart.FileHeader) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", echo.NewHTTPError(http.StatusBadRequest, "cannot read uploaded image")
	}
	defer src.Close()

	stored, err := h.images.Save(file.Filename, src)
	if err != nil {
		h.logger.Error().Err(err).Msg("save image")
		return "", echo.NewHTTPError(http.StatusInternalServerError, "failed to store image")
	}
	return stored, nil
}

func formValue(values map[string][]string, key string) (string, bool) {
	v, ok := values[key]
	if !ok || len(v) == 0 {
		return "", false
	}
	return v[0], true
}

func parseDate(s string) (time.Time, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, echo.NewHTTPError(http.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
	}
	return t, nil
}
