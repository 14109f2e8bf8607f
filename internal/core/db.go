package core

// File: internal/core/db.go
// Description: 数据库核心模块，实现数据库连接初始化、连接池配置及连接有效性检测功能
// 配置了MySQL主机时连接MySQL，否则回退到本地SQLite库（开发模式）

import (
	"sentinelops/internal/global"
	"sync"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// InitDB 初始化数据库连接并配置连接池
func InitDB() (database *gorm.DB) {
	cfg := global.Config.DB

	// 根据配置选择数据库驱动
	var dialector gorm.Dialector
	if cfg.Host != "" {
		dialector = mysql.Open(cfg.Dsn())
	} else {
		// 未配置MySQL主机，使用本地SQLite库
		logrus.Warnf("未配置数据库主机，使用本地SQLite库 sentinel.db")
		dialector = sqlite.Open("sentinel.db")
	}

	database, err := gorm.Open(dialector, &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true, // 迁移时禁用外键约束，提高灵活性
	})
	if err != nil {
		logrus.Fatalf("数据库连接失败 %s", err)
		return
	}

	// 获取底层sql.DB实例以配置连接池
	sqlDB, err := database.DB()
	if err != nil {
		logrus.Fatalf("获取数据库连接实例失败 %s", err)
		return
	}

	// 检测数据库连接有效性
	err = sqlDB.Ping()
	if err != nil {
		logrus.Fatalf("数据库连接有效性检测失败 %s", err)
		return
	}

	// 配置数据库连接池参数（设置默认值）
	if cfg.MaxIdleConns == 0 {
		cfg.MaxIdleConns = 10
	}
	if cfg.MaxOpenConns == 0 {
		cfg.MaxOpenConns = 100
	}
	if cfg.ConnMaxLifetime == 0 {
		cfg.ConnMaxLifetime = 3600
	}
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)                                        // 设置连接池最大空闲连接数
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)                                        // 设置连接池最大打开连接数
	sqlDB.SetConnMaxLifetime(time.Duration(cfg.ConnMaxLifetime) * time.Second)     // 设置连接的最大生命周期
	logrus.Infof("数据库连接成功 最大连接数 %d 最大空闲数 %d", cfg.MaxOpenConns, cfg.MaxIdleConns)

	return
}

var (
	db     *gorm.DB
	onceDB sync.Once
)

// GetDB 获取数据库连接实例（单例模式）
func GetDB() *gorm.DB {
	onceDB.Do(func() {
		db = InitDB()
	})
	return db
}
