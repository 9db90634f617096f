package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/bridge-site-analyzer/internal/pkg/errors"
	"github.com/bridge-site-analyzer/internal/pkg/utils"
	"github.com/bridge-site-analyzer/internal/pkg/validator"
	"github.com/bridge-site-analyzer/internal/usecase"
	"github.com/bridge-site-analyzer/internal/usecase/dto"
)

// HistoryHandler - обработчик истории анализов
type HistoryHandler struct {
	historyUC *usecase.HistoryUseCase
	logger    *zap.Logger
}

func NewHistoryHandler(historyUC *usecase.HistoryUseCase, logger *zap.Logger) *HistoryHandler {
	return &HistoryHandler{
		historyUC: historyUC,
		logger:    logger,
	}
}

// Get godoc
// @Summary Сохранённый анализ
// @Description Доступно только при включённой базе данных (DB_ENABLED), иначе 501.
// @Tags History
// @Produce json
// @Param id path string true "UUID анализа"
// @Success 200 {object} utils.SuccessResponse{data=domain.SiteAnalysis}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 501 {object} utils.ErrorResponse
// @Router /api/v1/analyses/{id} [get]
func (h *HistoryHandler) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"id": "must be a UUID",
		}))
	}

	a, err := h.historyUC.Get(c.UserContext(), id)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, a, nil)
}

// List godoc
// @Summary Последние анализы
// @Tags History
// @Produce json
// @Param limit query int false "Количество (1..100)" default(20)
// @Success 200 {object} utils.SuccessResponse{data=[]domain.SiteAnalysis}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 501 {object} utils.ErrorResponse
// @Router /api/v1/analyses [get]
func (h *HistoryHandler) List(c *fiber.Ctx) error {
	req := dto.HistoryListRequest{Limit: c.QueryInt("limit", 20)}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	list, err := h.historyUC.ListRecent(c.UserContext(), req.Limit)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, list, &utils.Meta{Total: len(list)})
}
