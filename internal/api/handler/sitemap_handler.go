package handler

import (
	"bytes"
	"html/template"
	"net/http"
	"sort"
	"strings"
	"time"

	"holocron-go/internal/api/response"
	"holocron-go/internal/config"

	"github.com/gin-gonic/gin"
)

// SiteEntry 站点地图中的一条路由
type SiteEntry struct {
	Method string
	Path   string
	Link   bool // 无路径参数的 GET 路由可直接点击
}

var sitemapTemplate = template.Must(template.New("sitemap").Parse(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>{{.Name}} API</title></head>
<body style="font-family: sans-serif; max-width: 720px; margin: 2em auto;">
<h1>{{.Name}} API</h1>
<p>Version {{.Version}}. Registered endpoints:</p>
<ul>
{{- range .Entries}}
<li><code>{{.Method}}</code> {{if .Link}}<a href="{{.Path}}">{{.Path}}</a>{{else}}{{.Path}}{{end}}</li>
{{- end}}
</ul>
</body>
</html>
`))

type SitemapHandler struct {
	app    config.AppConfig
	routes func() gin.RoutesInfo
}

// NewSitemapHandler routes 在请求时调用，返回已注册的全部路由
func NewSitemapHandler(app config.AppConfig, routes func() gin.RoutesInfo) *SitemapHandler {
	return &SitemapHandler{app: app, routes: routes}
}

// Sitemap 根路径，列出全部已注册路由
// @Summary 站点地图
// @Tags 系统
// @Produce html
// @Success 200 {string} string "HTML"
// @Router / [get]
func (h *SitemapHandler) Sitemap(c *gin.Context) {
	data := struct {
		Name    string
		Version string
		Entries []SiteEntry
	}{
		Name:    h.app.Name,
		Version: h.app.Version,
		Entries: BuildSitemap(h.routes()),
	}

	var buf bytes.Buffer
	if err := sitemapTemplate.Execute(&buf, data); err != nil {
		response.Abort(c, err)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}

// Health 健康检查接口
// @Summary 健康检查
// @Tags 系统
// @Produce json
// @Success 200 {object} map[string]string
// @Router /healthz [get]
func (h *SitemapHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"service":   h.app.Name,
		"version":   h.app.Version,
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

// BuildSitemap 按路径、方法排序生成站点地图条目
func BuildSitemap(routes gin.RoutesInfo) []SiteEntry {
	entries := make([]SiteEntry, 0, len(routes))
	for _, r := range routes {
		if r.Method == http.MethodHead || r.Method == http.MethodOptions {
			continue
		}
		entries = append(entries, SiteEntry{
			Method: r.Method,
			Path:   r.Path,
			Link:   r.Method == http.MethodGet && !strings.ContainsAny(r.Path, ":*"),
		})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Path != entries[j].Path {
			return entries[i].Path < entries[j].Path
		}
		return entries[i].Method < entries[j].Method
	})
	return entries
}
