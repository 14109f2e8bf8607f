package threat_api

// File: internal/api/threat_api/list.go
// Description: 威胁评分列表查询API接口，支持分类/源IP/评分区间筛选

import (
	"context"
	"encoding/json"
	"sentinelops/internal/es_models"
	"sentinelops/internal/global"
	"sentinelops/internal/middleware"
	"sentinelops/internal/models"
	"sentinelops/internal/utils/response"

	"github.com/gin-gonic/gin"
	"github.com/olivere/elastic/v7"
	"github.com/sirupsen/logrus"
)

// ListRequest 威胁评分列表查询请求参数结构体
type ListRequest struct {
	models.PageInfo         // 嵌入分页基础参数
	Classification  string  `form:"classification"` // 威胁分类筛选
	SourceIp        string  `form:"sourceIp"`       // 源IP筛选
	MinScore        float64 `form:"minScore"`       // 最低评分筛选
}

// ListView 威胁评分列表查询接口处理函数
func (ThreatApi) ListView(c *gin.Context) {
	cr := middleware.GetBind[ListRequest](c)

	query := elastic.NewBoolQuery()
	if cr.Classification != "" {
		query = query.Filter(elastic.NewTermQuery("classification", cr.Classification))
	}
	if cr.SourceIp != "" {
		query = query.Filter(elastic.NewTermQuery("sourceIp", cr.SourceIp))
	}
	if cr.MinScore > 0 {
		query = query.Filter(elastic.NewRangeQuery("threatScore").Gte(cr.MinScore))
	}

	res, err := global.ES.Search(es_models.ThreatModel{}.Index()).
		Query(query).
		Sort("timestamp", false). // 最新分析结果在前
		Size(cr.GetLimit()).
		From(cr.GetOffset()).
		Do(context.Background())
	if err != nil {
		logrus.Errorf("威胁评分查询失败 %s", err)
		response.FailWithServer("威胁评分查询失败", c)
		return
	}

	count := res.Hits.TotalHits.Value
	var list = make([]es_models.ThreatModel, 0, cr.GetLimit())
	for _, hit := range res.Hits.Hits {
		var data es_models.ThreatModel
		if err := json.Unmarshal(hit.Source, &data); err != nil {
			logrus.Errorf("json解析失败 %s %s %s", err, hit.Source, hit.Id)
			continue
		}
		data.ThreatID = hit.Id
		list = append(list, data)
	}

	response.OkWithPage(list, count, cr.GetPage(), cr.GetLimit(), c)
}
