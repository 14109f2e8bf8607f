package ml_service

// File: internal/service/ml_service/enter.go
// Description: ML威胁评分引擎客户端模块，封装对外部评分引擎的预测、训练
// 及状态查询请求，引擎不可用时提供模拟评分降级，保证分析链路可用

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"sentinelops/internal/global"
	"time"

	"github.com/sirupsen/logrus"
)

// Prediction 威胁评分引擎的预测结果
type Prediction struct {
	SourceIp      string             `json:"source_ip"`      // 被分析的源IP
	ThreatScore   float64            `json:"threat_score"`   // 威胁评分 0-100
	Confidence    float64            `json:"confidence"`     // 模型置信度 0-1
	Features      map[string]float64 `json:"features"`       // 模型输入特征
	RelatedAlerts []string           `json:"related_alerts"` // 关联告警ID
	ModelVersion  string             `json:"model_version"`  // 模型版本
}

// TrainResult 模型训练任务结果
type TrainResult struct {
	JobID   string `json:"job_id"`  // 训练任务ID
	Status  string `json:"status"`  // 任务状态
	Message string `json:"message"` // 任务描述
}

// ModelStatus 模型状态信息
type ModelStatus struct {
	ModelVersion string  `json:"model_version"` // 当前模型版本
	TrainedAt    string  `json:"trained_at"`    // 最近训练时间
	Accuracy     float64 `json:"accuracy"`      // 模型准确率
	SampleCount  int     `json:"sample_count"`  // 训练样本数
	Status       string  `json:"status"`        // 模型状态 ready training unavailable
}

// client 构建带超时的HTTP客户端，外部引擎调用必须有超时保护
func client() *http.Client {
	timeout := global.Config.ML.Timeout
	if timeout <= 0 {
		timeout = 10
	}
	return &http.Client{Timeout: time.Duration(timeout) * time.Second}
}

// postJSON 向评分引擎发送JSON请求并解析响应
func postJSON(path string, body any, out any) error {
	data, err := json.Marshal(body)
	if err != nil {
		return err
	}
	resp, err := client().Post(global.Config.ML.Addr+path, "application/json", bytes.NewReader(data))
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("评分引擎响应异常 %d %s", resp.StatusCode, string(raw))
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// getJSON 向评分引擎发送GET请求并解析响应
func getJSON(path string, out any) error {
	resp, err := client().Get(global.Config.ML.Addr + path)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("评分引擎响应异常 %d %s", resp.StatusCode, string(raw))
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// Predict 请求评分引擎对源IP进行威胁评分
// 引擎未配置或请求失败时降级为模拟评分
func Predict(sourceIp string, relatedAlerts []string) Prediction {
	if global.Config.ML.Addr != "" {
		var pred Prediction
		err := postJSON("/predict", map[string]any{
			"source_ip":      sourceIp,
			"related_alerts": relatedAlerts,
		}, &pred)
		if err == nil {
			return pred
		}
		logrus.Warnf("评分引擎请求失败，使用模拟评分 %s", err)
	}
	return mockPrediction(sourceIp, relatedAlerts)
}

// Train 请求评分引擎启动模型训练任务
func Train() (TrainResult, error) {
	if global.Config.ML.Addr == "" {
		// 引擎未配置，返回模拟训练任务
		return TrainResult{
			JobID:   fmt.Sprintf("train-%d", time.Now().Unix()),
			Status:  "queued",
			Message: "模拟训练任务已入队",
		}, nil
	}
	var result TrainResult
	err := postJSON("/train", map[string]any{}, &result)
	return result, err
}

// Status 查询评分引擎当前模型状态
func Status() ModelStatus {
	if global.Config.ML.Addr != "" {
		var status ModelStatus
		err := getJSON("/model/status", &status)
		if err == nil {
			return status
		}
		logrus.Warnf("评分引擎状态查询失败，返回模拟状态 %s", err)
	}
	return ModelStatus{
		ModelVersion: "mock-1.0.0",
		TrainedAt:    time.Now().AddDate(0, 0, -7).Format("2006-01-02 15:04:05"),
		Accuracy:     0.92,
		SampleCount:  15000,
		Status:       "ready",
	}
}

// mockPrediction 生成模拟威胁评分，关联告警越多评分越高
func mockPrediction(sourceIp string, relatedAlerts []string) Prediction {
	base := 20 + rand.Float64()*30
	base += float64(len(relatedAlerts)) * 8
	if base > 100 {
		base = 100
	}
	return Prediction{
		SourceIp:    sourceIp,
		ThreatScore: base,
		Confidence:  0.5 + rand.Float64()*0.4,
		Features: map[string]float64{
			"alert_count":     float64(len(relatedAlerts)),
			"request_rate":    rand.Float64() * 100,
			"failed_logins":   float64(rand.Intn(20)),
			"unique_ports":    float64(rand.Intn(30)),
			"payload_entropy": rand.Float64() * 8,
		},
		RelatedAlerts: relatedAlerts,
		ModelVersion:  "mock-1.0.0",
	}
}
