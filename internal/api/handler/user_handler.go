package handler

import (
	"holocron-go/internal/api/dto"
	"holocron-go/internal/api/response"
	"holocron-go/internal/service"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userService *service.UserService
}

func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// List 获取全部用户
// @Summary 获取用户列表
// @Description 响应中不包含密码
// @Tags 用户
// @Produce json
// @Success 200 {object} dto.UserListResponse
// @Router /user [get]
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.userService.ListUsers(c.Request.Context())
	if err != nil {
		response.Abort(c, err)
		return
	}

	response.OK(c, dto.UserListResponse{
		Msg:   "GET /user response",
		Users: users,
	})
}

// Favorites 获取用户的收藏
// @Summary 获取用户收藏
// @Description user_id 通过请求体传入
// @Tags 用户
// @Accept json
// @Produce json
// @Param request body dto.UserIDRequest true "用户ID"
// @Success 200 {object} dto.UserFavoritesResponse
// @Failure 404 {object} response.ErrorResponse "Please enter the user_id"
// @Router /user/favorites [get]
func (h *UserHandler) Favorites(c *gin.Context) {
	userID, _, err := userIDFromBody(c)
	if err != nil {
		response.Abort(c, err)
		return
	}

	favorites, err := h.userService.GetFavorites(c.Request.Context(), userID)
	if err != nil {
		response.Abort(c, err)
		return
	}

	response.OK(c, dto.UserFavoritesResponse{
		Msg:       "GET /user/favorites response",
		Favorites: *favorites,
	})
}
