package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/bridge-site-analyzer/internal/domain"
	"github.com/bridge-site-analyzer/internal/pkg/utils"
	"github.com/bridge-site-analyzer/internal/usecase"
)

// CatalogHandler - обработчик справочника площадок
type CatalogHandler struct {
	catalogUC *usecase.CatalogUseCase
	logger    *zap.Logger
}

func NewCatalogHandler(catalogUC *usecase.CatalogUseCase, logger *zap.Logger) *CatalogHandler {
	return &CatalogHandler{
		catalogUC: catalogUC,
		logger:    logger,
	}
}

// List godoc
// @Summary Справочник площадок
// @Description Записи в исходном порядке. Если заданы lat и lng, у каждой записи есть distance_km.
// @Tags Catalog
// @Produce json
// @Param lat query number false "Широта точки отсчёта"
// @Param lng query number false "Долгота точки отсчёта"
// @Success 200 {object} utils.SuccessResponse{data=[]dto.CatalogEntry}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/catalog [get]
func (h *CatalogHandler) List(c *fiber.Ctx) error {
	var from *domain.Coordinate
	if c.Query("lat") != "" || c.Query("lng") != "" {
		point, err := coordinateFromQuery(c)
		if err != nil {
			return utils.SendError(c, err)
		}
		from = &point
	}

	entries, err := h.catalogUC.List(c.UserContext(), from)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, entries, &utils.Meta{Total: len(entries)})
}

// Get godoc
// @Summary Запись справочника
// @Tags Catalog
// @Produce json
// @Param id path string true "Идентификатор записи"
// @Success 200 {object} utils.SuccessResponse{data=domain.CatalogLocation}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/catalog/{id} [get]
func (h *CatalogHandler) Get(c *fiber.Ctx) error {
	loc, err := h.catalogUC.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, loc, nil)
}
