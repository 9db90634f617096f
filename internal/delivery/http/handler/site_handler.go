package handler

import (
	"context"
	stderrors "errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/bridge-site-analyzer/internal/domain"
	"github.com/bridge-site-analyzer/internal/pkg/errors"
	"github.com/bridge-site-analyzer/internal/pkg/utils"
	"github.com/bridge-site-analyzer/internal/pkg/validator"
	"github.com/bridge-site-analyzer/internal/usecase"
	"github.com/bridge-site-analyzer/internal/usecase/dto"
)

// SiteHandler - обработчик анализа площадок и выбора в сессиях
type SiteHandler struct {
	analysisUC *usecase.SiteAnalysisUseCase
	tracker    *usecase.SelectionTracker
	timeout    time.Duration
	logger     *zap.Logger
}

// NewSiteHandler - создание нового SiteHandler
func NewSiteHandler(
	analysisUC *usecase.SiteAnalysisUseCase,
	tracker *usecase.SelectionTracker,
	timeout time.Duration,
	logger *zap.Logger,
) *SiteHandler {
	return &SiteHandler{
		analysisUC: analysisUC,
		tracker:    tracker,
		timeout:    timeout,
		logger:     logger,
	}
}

// Analyze godoc
// @Summary Анализ площадки под мост
// @Description Рельеф, геология, сейсмика и ранжирование пяти типов мостов для точки. Точки рядом со справочными площадками берут факторы из справочника.
// @Tags Sites
// @Produce json
// @Param lat query number true "Широта (-90..90)"
// @Param lng query number true "Долгота (-180..180)"
// @Success 200 {object} utils.SuccessResponse{data=domain.SiteAnalysis}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 504 {object} utils.ErrorResponse
// @Router /api/v1/sites/analysis [get]
func (h *SiteHandler) Analyze(c *fiber.Ctx) error {
	point, err := coordinateFromQuery(c)
	if err != nil {
		return utils.SendError(c, err)
	}
	return h.analyze(c, point)
}

// AnalyzePOST godoc
// @Summary Анализ площадки под мост (JSON)
// @Tags Sites
// @Accept json
// @Produce json
// @Param request body dto.AnalyzeRequest true "Координаты площадки"
// @Success 200 {object} utils.SuccessResponse{data=domain.SiteAnalysis}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 504 {object} utils.ErrorResponse
// @Router /api/v1/sites/analysis [post]
func (h *SiteHandler) AnalyzePOST(c *fiber.Ctx) error {
	req, err := parseAnalyzeBody(c)
	if err != nil {
		return utils.SendError(c, err)
	}
	return h.analyze(c, req.Coordinate())
}

func (h *SiteHandler) analyze(c *fiber.Ctx, point domain.Coordinate) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), h.timeout)
	defer cancel()

	start := time.Now()
	result, err := h.analysisUC.Analyze(ctx, point)
	if err != nil {
		return utils.SendError(c, analysisError(err))
	}

	return utils.SendSuccess(c, result.Analysis, &utils.Meta{
		Cached:   result.Cached,
		TimeMSec: float64(time.Since(start).Microseconds()) / 1000,
	})
}

// Select godoc
// @Summary Выбор площадки в сессии
// @Description Последний запрос побеждает: незавершённый предыдущий выбор той же сессии отменяется и получает 409.
// @Tags Sessions
// @Accept json
// @Produce json
// @Param session path string true "Идентификатор сессии"
// @Param request body dto.AnalyzeRequest true "Координаты площадки"
// @Success 200 {object} utils.SuccessResponse{data=dto.SelectionResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 409 {object} utils.ErrorResponse
// @Router /api/v1/sessions/{session}/selection [post]
func (h *SiteHandler) Select(c *fiber.Ctx) error {
	req, err := parseAnalyzeBody(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	ctx, cancel := context.WithTimeout(c.UserContext(), h.timeout)
	defer cancel()

	result, err := h.tracker.Select(ctx, c.Params("session"), req.Coordinate())
	if err != nil {
		return utils.SendError(c, analysisError(err))
	}

	return utils.SendSuccess(c, result, &utils.Meta{Cached: result.Cached})
}

// GetSelection godoc
// @Summary Текущий выбор сессии
// @Tags Sessions
// @Produce json
// @Param session path string true "Идентификатор сессии"
// @Success 200 {object} utils.SuccessResponse{data=domain.SiteAnalysis}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/sessions/{session}/selection [get]
func (h *SiteHandler) GetSelection(c *fiber.Ctx) error {
	session := c.Params("session")
	current, ok := h.tracker.Current(session)
	if !ok {
		return utils.SendError(c, errors.ErrAnalysisNotFound.WithDetails(map[string]interface{}{
			"session": session,
		}))
	}
	return utils.SendSuccess(c, current, nil)
}

// DeleteSelection godoc
// @Summary Сброс выбора сессии
// @Tags Sessions
// @Param session path string true "Идентификатор сессии"
// @Success 204
// @Router /api/v1/sessions/{session}/selection [delete]
func (h *SiteHandler) DeleteSelection(c *fiber.Ctx) error {
	h.tracker.Forget(c.Params("session"))
	return c.SendStatus(fiber.StatusNoContent)
}

func parseAnalyzeBody(c *fiber.Ctx) (*dto.AnalyzeRequest, error) {
	var req dto.AnalyzeRequest
	if err := c.BodyParser(&req); err != nil {
		return nil, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"body": "invalid JSON",
		})
	}
	if err := validator.Validate(&req); err != nil {
		return nil, err
	}
	return &req, nil
}

// coordinateFromQuery читает обязательные lat и lng из query
func coordinateFromQuery(c *fiber.Ctx) (domain.Coordinate, error) {
	lat, err := requiredFloat(c, "lat")
	if err != nil {
		return domain.Coordinate{}, err
	}
	lng, err := requiredFloat(c, "lng")
	if err != nil {
		return domain.Coordinate{}, err
	}
	return domain.Coordinate{Lat: lat, Lng: lng}, nil
}

func requiredFloat(c *fiber.Ctx, key string) (float64, error) {
	raw := c.Query(key)
	if raw == "" {
		return 0, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			key: "required",
		})
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, errors.ErrInvalidCoordinates.WithDetails(map[string]interface{}{
			key: raw,
		})
	}
	return v, nil
}

// analysisError переводит истечение дедлайна в ANALYSIS_TIMEOUT
func analysisError(err error) error {
	if stderrors.Is(err, context.DeadlineExceeded) {
		return errors.ErrAnalysisTimeout
	}
	return err
}
