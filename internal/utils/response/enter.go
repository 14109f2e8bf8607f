package response

// File: internal/utils/response/enter.go
// Description: 统一响应格式模块，定义API接口返回数据结构及快捷响应函数
// 客户端通过success字段判断成功与否，HTTP状态码按错误类别区分

import (
	"math"
	"sentinelops/internal/utils/validate"

	"github.com/gin-gonic/gin"
)

// Response API接口统一响应结构体
type Response struct {
	Success bool   `json:"success"` // 是否成功
	Data    any    `json:"data"`    // 响应数据体
	Msg     string `json:"msg"`     // 响应消息描述
}

// response 基础响应函数，构建并返回统一格式的JSON响应
func response(status int, success bool, data any, msg string, c *gin.Context) {
	c.JSON(status, Response{
		Success: success,
		Data:    data,
		Msg:     msg,
	})
}

// Ok 通用成功响应（自定义数据和消息）
func Ok(data any, msg string, c *gin.Context) {
	response(200, true, data, msg, c)
}

// OkWithData 成功响应（仅返回数据，默认消息）
func OkWithData(data any, c *gin.Context) {
	Ok(data, "成功", c)
}

// OkWithMsg 成功响应（仅返回消息，空数据）
func OkWithMsg(msg string, c *gin.Context) {
	Ok(gin.H{}, msg, c)
}

// OkWithCreated 资源创建成功响应（201）
func OkWithCreated(data any, c *gin.Context) {
	response(201, true, data, "成功", c)
}

// OkWithList 列表数据成功响应（包含数据列表和总数）
func OkWithList(list any, count int64, c *gin.Context) {
	Ok(gin.H{"list": list, "count": count}, "成功", c)
}

// OkWithPage 分页数据成功响应（包含列表、总数及页数统计）
func OkWithPage(list any, count int64, page, limit int, c *gin.Context) {
	pages := int64(0)
	if limit > 0 {
		pages = int64(math.Ceil(float64(count) / float64(limit)))
	}
	Ok(gin.H{
		"list":  list,
		"count": count,
		"page":  page,
		"limit": limit,
		"pages": pages,
	}, "成功", c)
}

// Fail 通用失败响应（自定义状态码和消息）
func Fail(status int, msg string, c *gin.Context) {
	response(status, false, nil, msg, c)
}

// FailWithMsg 参数/业务校验失败响应（400）
func FailWithMsg(msg string, c *gin.Context) {
	Fail(400, msg, c)
}

// FailWithError 参数校验失败响应（400，翻译错误对象消息）
func FailWithError(err error, c *gin.Context) {
	msg := validate.ValidateError(err)
	Fail(400, msg, c)
}

// FailWithAuth 认证失败响应（401）
func FailWithAuth(msg string, c *gin.Context) {
	Fail(401, msg, c)
}

// FailWithRole 权限不足响应（403）
func FailWithRole(c *gin.Context) {
	Fail(403, "权限错误", c)
}

// FailWithNotFound 资源不存在响应（404）
func FailWithNotFound(msg string, c *gin.Context) {
	Fail(404, msg, c)
}

// FailWithServer 服务端处理失败响应（500）
func FailWithServer(msg string, c *gin.Context) {
	Fail(500, msg, c)
}
