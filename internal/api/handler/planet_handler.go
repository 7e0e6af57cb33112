package handler

import (
	"errors"

	"holocron-go/internal/api/dto"
	"holocron-go/internal/api/response"
	"holocron-go/internal/service"

	"github.com/gin-gonic/gin"
)

type PlanetHandler struct {
	catalogService *service.CatalogService
}

func NewPlanetHandler(catalogService *service.CatalogService) *PlanetHandler {
	return &PlanetHandler{catalogService: catalogService}
}

// List 获取全部星球
// @Summary 获取星球列表
// @Description 列表字段名为 users，与既有客户端保持一致
// @Tags 星球
// @Produce json
// @Success 200 {object} dto.PlanetListResponse
// @Router /planets [get]
func (h *PlanetHandler) List(c *gin.Context) {
	planets, err := h.catalogService.ListPlanets(c.Request.Context())
	if err != nil {
		response.Abort(c, err)
		return
	}

	response.OK(c, dto.PlanetListResponse{
		Msg:   "GET /planets response",
		Users: planets,
	})
}

// Get 按 ID 获取星球
// @Summary 获取星球详情
// @Description result 字段为至多一个元素的列表
// @Tags 星球
// @Produce json
// @Param planet_id path int true "星球ID"
// @Success 200 {object} dto.PlanetResponse
// @Failure 404 {object} response.ErrorResponse "Planet not found"
// @Router /planets/{planet_id} [get]
func (h *PlanetHandler) Get(c *gin.Context) {
	id, err := parseID(c, "planet_id")
	if err != nil {
		response.Abort(c, err)
		return
	}

	planet, err := h.catalogService.GetPlanet(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrPlanetNotFound) {
			err = response.NotFoundError(err.Error())
		}
		response.Abort(c, err)
		return
	}

	response.OK(c, dto.PlanetResponse{
		Msg:    "GET /planets/<int:planet_id> response",
		Result: planet,
	})
}
