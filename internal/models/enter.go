package models

// File: internal/models/enter.go
// Description: 数据库模型公共定义，包含基础模型字段与分页查询参数

import (
	"time"

	"gorm.io/gorm"
)

// Model 基础模型，所有表的公共字段
type Model struct {
	ID        uint           `gorm:"primarykey" json:"id"` // 主键ID
	CreatedAt time.Time      `json:"createdAt"`            // 创建时间
	UpdatedAt time.Time      `json:"updatedAt"`            // 更新时间
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`       // 软删除时间
}

// PageInfo 分页查询公共入参
type PageInfo struct {
	Page  int    `form:"page"`  // 页码，从1开始
	Limit int    `form:"limit"` // 每页条数
	Key   string `form:"key"`   // 模糊搜索关键字
}

// GetPage 返回规范化后的页码
func (p PageInfo) GetPage() int {
	if p.Page <= 0 {
		return 1
	}
	return p.Page
}

// GetLimit 返回规范化后的每页条数
func (p PageInfo) GetLimit() int {
	if p.Limit <= 0 {
		return 20
	}
	if p.Limit > 100 {
		return 100
	}
	return p.Limit
}

// GetOffset 返回偏移量
func (p PageInfo) GetOffset() int {
	return (p.GetPage() - 1) * p.GetLimit()
}
