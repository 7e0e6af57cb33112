package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"strconv"

	"holocron-go/internal/api/response"

	"github.com/gin-gonic/gin"
)

const (
	msgMissingUserID = "Please enter the user_id"
	msgInvalidUserID = "user_id must be an integer"
	msgInvalidBody   = "Invalid JSON body"
	msgRouteNotFound = "Resource not found"
	userIDField      = "user_id"
)

// readBody 尽力解析 JSON 请求体，不校验 Content-Type
// 空请求体按 {} 处理；无法解析为 JSON 对象时返回 400
func readBody(c *gin.Context) (map[string]interface{}, error) {
	raw, err := io.ReadAll(c.Request.Body)
	if err != nil {
		return nil, response.NewAPIError(msgInvalidBody)
	}

	body := map[string]interface{}{}
	if len(bytes.TrimSpace(raw)) == 0 {
		return body, nil
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&body); err != nil {
		return nil, response.NewAPIError(msgInvalidBody)
	}
	// 只接受单个 JSON 值，后面不能再有其它内容
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, response.NewAPIError(msgInvalidBody)
	}
	if body == nil {
		body = map[string]interface{}{}
	}
	return body, nil
}

// requireUserID 从请求体中取出 user_id，缺失时返回 404
func requireUserID(body map[string]interface{}) (int64, error) {
	v, ok := body[userIDField]
	if !ok {
		return 0, response.NotFoundError(msgMissingUserID)
	}

	switch id := v.(type) {
	case json.Number:
		if n, err := id.Int64(); err == nil {
			return n, nil
		}
	case string:
		if n, err := strconv.ParseInt(id, 10, 64); err == nil {
			return n, nil
		}
	}
	return 0, response.NewAPIError(msgInvalidUserID)
}

// userIDFromBody 组合 readBody 和 requireUserID
func userIDFromBody(c *gin.Context) (int64, map[string]interface{}, error) {
	body, err := readBody(c)
	if err != nil {
		return 0, nil, err
	}
	userID, err := requireUserID(body)
	if err != nil {
		return 0, nil, err
	}
	return userID, body, nil
}

// parseID 解析路径中的非负整数 ID，非法时按路由不存在处理
func parseID(c *gin.Context, name string) (int64, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 63)
	if err != nil {
		return 0, response.NotFoundError(msgRouteNotFound)
	}
	return int64(id), nil
}
