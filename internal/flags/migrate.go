package flags

// File: internal/flags/migrate.go
// Description: 负责执行GORM自动迁移以创建或更新数据表结构

import (
	"sentinelops/internal/global"
	"sentinelops/internal/models"

	"github.com/sirupsen/logrus"
)

// Migrate 执行数据库表结构自动迁移
func Migrate() {
	// 自动迁移指定的模型结构体到数据库，生成或更新数据表结构
	err := global.DB.AutoMigrate(
		&models.UserModel{},
		&models.VulnerabilityModel{},
		&models.LogModel{},
	)
	if err != nil {
		logrus.Fatalf("表结构迁移失败 %s", err)
	}
	logrus.Infof("表结构迁移成功")
}
