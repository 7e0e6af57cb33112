package router

import (
	"net/http"
	"strings"

	"holocron-go/internal/api/handler"
	"holocron-go/internal/api/middleware"
	"holocron-go/internal/api/response"
	"holocron-go/internal/config"

	_ "holocron-go/docs"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handlers 业务路由依赖的全部 handler
type Handlers struct {
	People   *handler.PeopleHandler
	Planet   *handler.PlanetHandler
	User     *handler.UserHandler
	Favorite *handler.FavoriteHandler
}

// Route 静态路由表中的一项
type Route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

// Routes 返回全部业务路由
func Routes(h Handlers) []Route {
	return []Route{
		// --- 人物 ---
		{http.MethodGet, "/people", h.People.List},
		{http.MethodGet, "/people/:people_id", h.People.Get},

		// --- 星球 ---
		{http.MethodGet, "/planets", h.Planet.List},
		{http.MethodGet, "/planets/:planet_id", h.Planet.Get},

		// --- 用户 ---
		{http.MethodGet, "/user", h.User.List},
		{http.MethodGet, "/user/favorites", h.User.Favorites},

		// --- 收藏 ---
		{http.MethodPost, "/favorite/planet/:planet_id", h.Favorite.AddPlanet},
		{http.MethodPost, "/favorite/people/:people_id", h.Favorite.AddPeople},
		{http.MethodDelete, "/favorite/planet/:planet_id", h.Favorite.RemovePlanet},
		{http.MethodDelete, "/favorite/people/:people_id", h.Favorite.RemovePeople},
	}
}

// NewEngine 创建Gin引擎并挂载全局中间件
func NewEngine(cors *config.CORSConfig) *gin.Engine {
	r := gin.New()
	// 尾部斜杠由 StripTrailingSlash 统一处理，不做重定向
	r.RedirectTrailingSlash = false
	r.RedirectFixedPath = false

	r.Use(middleware.Recovery())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(cors))
	r.Use(middleware.ErrorHandler())

	r.NoRoute(func(c *gin.Context) {
		response.Fail(c, http.StatusNotFound, "Resource not found")
	})

	return r
}

// Setup 注册业务路由、站点地图、健康检查和 Swagger 文档
func Setup(r *gin.Engine, h Handlers, app config.AppConfig) {
	for _, route := range Routes(h) {
		r.Handle(route.Method, route.Path, route.Handler)
	}

	sitemap := handler.NewSitemapHandler(app, r.Routes)
	r.GET("/", sitemap.Sitemap)
	r.GET("/healthz", sitemap.Health)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

// StripTrailingSlash 去掉路径末尾的斜杠，使 /people/ 与 /people 等价
func StripTrailingSlash(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		if p := req.URL.Path; len(p) > 1 && strings.HasSuffix(p, "/") {
			req.URL.Path = strings.TrimRight(p, "/")
			if req.URL.Path == "" {
				req.URL.Path = "/"
			}
			req.URL.RawPath = ""
		}
		next.ServeHTTP(w, req)
	})
}
