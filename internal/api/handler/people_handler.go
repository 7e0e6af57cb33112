package handler

import (
	"errors"

	"holocron-go/internal/api/dto"
	"holocron-go/internal/api/response"
	"holocron-go/internal/service"

	"github.com/gin-gonic/gin"
)

type PeopleHandler struct {
	catalogService *service.CatalogService
}

func NewPeopleHandler(catalogService *service.CatalogService) *PeopleHandler {
	return &PeopleHandler{catalogService: catalogService}
}

// List 获取全部人物
// @Summary 获取人物列表
// @Tags 人物
// @Produce json
// @Success 200 {object} dto.PeopleListResponse
// @Router /people [get]
func (h *PeopleHandler) List(c *gin.Context) {
	people, err := h.catalogService.ListPeople(c.Request.Context())
	if err != nil {
		response.Abort(c, err)
		return
	}

	response.OK(c, dto.PeopleListResponse{
		Msg:    "GET /people response",
		People: people,
	})
}

// Get 按 ID 获取人物
// @Summary 获取人物详情
// @Description person 字段为至多一个元素的列表
// @Tags 人物
// @Produce json
// @Param people_id path int true "人物ID"
// @Success 200 {object} dto.PersonResponse
// @Failure 404 {object} response.ErrorResponse "Person not found"
// @Router /people/{people_id} [get]
func (h *PeopleHandler) Get(c *gin.Context) {
	id, err := parseID(c, "people_id")
	if err != nil {
		response.Abort(c, err)
		return
	}

	person, err := h.catalogService.GetPerson(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrPersonNotFound) {
			err = response.NotFoundError(err.Error())
		}
		response.Abort(c, err)
		return
	}

	response.OK(c, dto.PersonResponse{
		Msg:    "GET /people/<int:people_id> response",
		Person: person,
	})
}
