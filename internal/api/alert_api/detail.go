package alert_api

// File: internal/api/alert_api/detail.go
// Description: 告警详情查询API接口

import (
	"context"
	"encoding/json"
	"sentinelops/internal/es_models"
	"sentinelops/internal/global"
	"sentinelops/internal/middleware"
	"sentinelops/internal/utils/response"

	"github.com/gin-gonic/gin"
	"github.com/olivere/elastic/v7"
	"github.com/sirupsen/logrus"
)

// DetailRequest 告警详情查询请求参数结构体
type DetailRequest struct {
	ID string `uri:"id" binding:"required"` // 告警业务ID（即ES文档ID）
}

// DetailView 告警详情查询接口，按文档ID精确查询
func (AlertApi) DetailView(c *gin.Context) {
	cr := middleware.GetBind[DetailRequest](c)

	res, err := global.ES.Get().
		Index(es_models.AlertModel{}.Index()).
		Id(cr.ID).
		Do(context.Background())
	if err != nil {
		// 文档不存在返回404，其余错误返回500
		if elastic.IsNotFound(err) {
			response.FailWithNotFound("告警不存在", c)
			return
		}
		logrus.Errorf("告警详情查询失败 %s", err)
		response.FailWithServer("告警详情查询失败", c)
		return
	}

	var data es_models.AlertModel
	err = json.Unmarshal(res.Source, &data)
	if err != nil {
		logrus.Errorf("json解析失败 %s %s", err, res.Id)
		response.FailWithServer("数据解析失败", c)
		return
	}
	data.AlertID = res.Id

	response.OkWithData(data, c)
}
