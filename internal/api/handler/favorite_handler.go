package handler

import (
	"errors"

	"holocron-go/internal/api/dto"
	"holocron-go/internal/api/response"
	"holocron-go/internal/service"
	"holocron-go/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type FavoriteHandler struct {
	favoriteService *service.FavoriteService
}

func NewFavoriteHandler(favoriteService *service.FavoriteService) *FavoriteHandler {
	return &FavoriteHandler{favoriteService: favoriteService}
}

// AddPlanet 收藏星球
// @Summary 收藏星球
// @Description 不预先校验用户和星球，外键失败时返回 404
// @Tags 收藏
// @Accept json
// @Produce json
// @Param planet_id path int true "星球ID"
// @Param request body dto.UserIDRequest true "用户ID"
// @Success 201 {object} dto.FavoriteCreatedResponse
// @Failure 404 {object} response.ErrorResponse "Please enter the user_id"
// @Router /favorite/planet/{planet_id} [post]
func (h *FavoriteHandler) AddPlanet(c *gin.Context) {
	planetID, err := parseID(c, "planet_id")
	if err != nil {
		response.Abort(c, err)
		return
	}
	userID, body, err := userIDFromBody(c)
	if err != nil {
		response.Abort(c, err)
		return
	}

	fav, err := h.favoriteService.AddPlanet(c.Request.Context(), userID, planetID)
	if err != nil {
		handleFavoriteError(c, err)
		return
	}

	logger.Debug("Favorite planet added",
		zap.Int64("favorite_id", fav.ID),
		zap.Int64("user_id", userID),
		zap.Int64("planet_id", planetID),
	)

	response.Created(c, dto.FavoriteCreatedResponse{
		Msg:    "POST /favorite/planet/<int:planet_id> response",
		Result: body,
	})
}

// AddPeople 收藏人物
// @Summary 收藏人物
// @Description 不预先校验用户和人物，外键失败时返回 404
// @Tags 收藏
// @Accept json
// @Produce json
// @Param people_id path int true "人物ID"
// @Param request body dto.UserIDRequest true "用户ID"
// @Success 201 {object} dto.FavoriteCreatedResponse
// @Failure 404 {object} response.ErrorResponse "Please enter the user_id"
// @Router /favorite/people/{people_id} [post]
func (h *FavoriteHandler) AddPeople(c *gin.Context) {
	peopleID, err := parseID(c, "people_id")
	if err != nil {
		response.Abort(c, err)
		return
	}
	userID, body, err := userIDFromBody(c)
	if err != nil {
		response.Abort(c, err)
		return
	}

	fav, err := h.favoriteService.AddPeople(c.Request.Context(), userID, peopleID)
	if err != nil {
		handleFavoriteError(c, err)
		return
	}

	logger.Debug("Favorite people added",
		zap.Int64("favorite_id", fav.ID),
		zap.Int64("user_id", userID),
		zap.Int64("people_id", peopleID),
	)

	response.Created(c, dto.FavoriteCreatedResponse{
		Msg:    "POST /favorite/people/<int:people_id> response",
		Result: body,
	})
}

// RemovePlanet 取消星球收藏
// @Summary 取消星球收藏
// @Description 存在重复收藏时只删除其中一条
// @Tags 收藏
// @Accept json
// @Produce json
// @Param planet_id path int true "星球ID"
// @Param request body dto.UserIDRequest true "用户ID"
// @Success 200 {object} dto.FavoriteDeletedResponse
// @Failure 404 {object} response.ErrorResponse "Favorite planet not found"
// @Router /favorite/planet/{planet_id} [delete]
func (h *FavoriteHandler) RemovePlanet(c *gin.Context) {
	planetID, err := parseID(c, "planet_id")
	if err != nil {
		response.Abort(c, err)
		return
	}
	userID, _, err := userIDFromBody(c)
	if err != nil {
		response.Abort(c, err)
		return
	}

	if err := h.favoriteService.RemovePlanet(c.Request.Context(), userID, planetID); err != nil {
		handleFavoriteError(c, err)
		return
	}

	response.OK(c, dto.FavoriteDeletedResponse{
		Msg:    "DELETE /favorite/planet/<int:planet_id> response",
		Status: "done",
	})
}

// RemovePeople 取消人物收藏
// @Summary 取消人物收藏
// @Description 存在重复收藏时只删除其中一条
// @Tags 收藏
// @Accept json
// @Produce json
// @Param people_id path int true "人物ID"
// @Param request body dto.UserIDRequest true "用户ID"
// @Success 200 {object} dto.FavoriteDeletedResponse
// @Failure 404 {object} response.ErrorResponse "Favorite people not found"
// @Router /favorite/people/{people_id} [delete]
func (h *FavoriteHandler) RemovePeople(c *gin.Context) {
	peopleID, err := parseID(c, "people_id")
	if err != nil {
		response.Abort(c, err)
		return
	}
	userID, _, err := userIDFromBody(c)
	if err != nil {
		response.Abort(c, err)
		return
	}

	if err := h.favoriteService.RemovePeople(c.Request.Context(), userID, peopleID); err != nil {
		handleFavoriteError(c, err)
		return
	}

	response.OK(c, dto.FavoriteDeletedResponse{
		Msg:    "DELETE /favorite/people/<int:people_id> response",
		Status: "done",
	})
}

func handleFavoriteError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrFavoritePlanetNotFound):
		response.Abort(c, response.NotFoundError(service.ErrFavoritePlanetNotFound.Error()))
	case errors.Is(err, service.ErrFavoritePeopleNotFound):
		response.Abort(c, response.NotFoundError(service.ErrFavoritePeopleNotFound.Error()))
	case errors.Is(err, service.ErrUserOrPlanetNotFound):
		response.Abort(c, response.NotFoundError(service.ErrUserOrPlanetNotFound.Error()))
	case errors.Is(err, service.ErrUserOrPeopleNotFound):
		response.Abort(c, response.NotFoundError(service.ErrUserOrPeopleNotFound.Error()))
	default:
		response.Abort(c, err)
	}
}
