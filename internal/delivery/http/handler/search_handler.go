package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/bridge-site-analyzer/internal/pkg/utils"
	"github.com/bridge-site-analyzer/internal/pkg/validator"
	"github.com/bridge-site-analyzer/internal/usecase"
	"github.com/bridge-site-analyzer/internal/usecase/dto"
)

// SearchHandler - обработчик для поисковых запросов
type SearchHandler struct {
	searchUC *usecase.SearchUseCase
	logger   *zap.Logger
}

// NewSearchHandler - создание нового SearchHandler
func NewSearchHandler(searchUC *usecase.SearchUseCase, logger *zap.Logger) *SearchHandler {
	return &SearchHandler{
		searchUC: searchUC,
		logger:   logger,
	}
}

// Search godoc
// @Summary Поиск места по названию
// @Description Возвращает лучшее совпадение геокодера OpenStreetMap Nominatim. Отсутствие совпадения - 404 LOCATION_NOT_FOUND.
// @Tags Search
// @Produce json
// @Param q query string true "Название места (минимум 2 символа)"
// @Success 200 {object} utils.SuccessResponse{data=domain.GeocodeResult}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 502 {object} utils.ErrorResponse
// @Router /api/v1/search [get]
func (h *SearchHandler) Search(c *fiber.Ctx) error {
	req := dto.SearchRequest{Query: c.Query("q")}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.searchUC.Search(c.UserContext(), req.Query)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result.Result, &utils.Meta{Cached: result.Cached})
}

// ParseCoordinates godoc
// @Summary Разбор координат, введённых вручную
// @Description Принимает строку "lat, lng" (через запятую или пробел) и проверяет диапазоны.
// @Tags Search
// @Produce json
// @Param q query string true "Координаты, например 30.7333, 79.0667"
// @Success 200 {object} utils.SuccessResponse{data=domain.Coordinate}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/coordinates/parse [get]
func (h *SearchHandler) ParseCoordinates(c *fiber.Ctx) error {
	req := dto.ParseCoordinatesRequest{Query: c.Query("q")}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	point, err := usecase.ParseCoordinates(req.Query)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, point, nil)
}
