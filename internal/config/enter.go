package config

// File: internal/config/enter.go
// Description: 配置模块，定义应用配置结构体及各外部依赖的连接配置

import "fmt"

// Config 应用整体配置结构体
type Config struct {
	System    System   `yaml:"system"`    // 系统配置信息
	Logger    Logger   `yaml:"logger"`    // 日志配置信息
	DB        DB       `yaml:"db"`        // 数据库配置信息
	Redis     Redis    `yaml:"redis"`     // redis配置信息
	ES        ES       `yaml:"es"`        // elasticSearch配置信息
	MQ        MQ       `yaml:"mq"`        // rabbitMQ配置信息
	Jwt       Jwt      `yaml:"jwt"`       // jwt配置信息
	ML        ML       `yaml:"ml"`        // 威胁评分引擎配置信息
	Wazuh     Wazuh    `yaml:"wazuh"`     // Wazuh代理管理API配置信息
	Alert     Alert    `yaml:"alert"`     // 告警/威胁索引配置信息
	WhiteList []string `yaml:"whiteList"` // 路由白名单（免认证路径）
}

// System 系统配置结构体
type System struct {
	WebAddr string `yaml:"webAddr"` // Web服务监听地址
	Mode    string `yaml:"mode"`    // 运行模式 [debug|release|test]
	Captcha bool   `yaml:"captcha"` // 登录是否启用图片验证码
	IPDB    string `yaml:"ipdb"`    // ip2region数据库文件路径（为空则不启用IP归属地解析）
}

// Logger 日志配置结构体
type Logger struct {
	Format  string `yaml:"format"`  // 日志格式 [json|text]
	Level   string `yaml:"level"`   // 日志级别
	AppName string `yaml:"appName"` // 应用名称
	LogPath string `yaml:"logPath"` // 日志文件存储路径
}

// DB 数据库连接配置结构体
// Host为空时使用本地SQLite库（开发模式），否则连接MySQL
type DB struct {
	DbName          string `yaml:"db_name"`         // 数据库名称
	Host            string `yaml:"host"`            // 数据库主机地址
	Port            int    `yaml:"port"`            // 数据库端口
	User            string `yaml:"user"`            // 数据库用户名
	Password        string `yaml:"password"`        // 数据库密码
	MaxIdleConns    int    `yaml:"maxIdleConns"`    // 数据库最大空闲连接数
	MaxOpenConns    int    `yaml:"maxOpenConns"`    // 数据库最大打开连接数
	ConnMaxLifetime int    `yaml:"connMaxLifetime"` // 数据库连接最大生命周期（秒）
}

// Dsn 生成数据库连接DSN字符串
func (cfg DB) Dsn() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DbName,
	)
}

// Redis 配置结构体
type Redis struct {
	Addr     string `yaml:"addr"`     // Redis地址
	Password string `yaml:"password"` // Redis密码
	DB       int    `yaml:"db"`       // Redis数据库索引
}

// ES ElasticSearch配置结构体
type ES struct {
	Addr     string `yaml:"addr"`     // ElasticSearch地址
	Username string `yaml:"username"` // ElasticSearch用户名
	Password string `yaml:"password"` // ElasticSearch密码
}

// MQ rabbitMQ配置结构体
type MQ struct {
	User     string `yaml:"user"`     // 用户名
	Password string `yaml:"password"` // 密码
	Host     string `yaml:"host"`     // 主机地址
	Port     int    `yaml:"port"`     // 端口号
	WsTopic  string `yaml:"wsTopic"`  // WebSocket事件队列名称
}

// Addr 获取rabbitMQ地址
func (m MQ) Addr() string {
	return fmt.Sprintf("amqp://%s:%s@%s:%d/",
		m.User,
		m.Password,
		m.Host,
		m.Port,
	)
}

// Jwt 配置结构体
type Jwt struct {
	Expires int    `yaml:"expires"` // token过期时间,单位秒
	Issuer  string `yaml:"issuer"`  // token签发者
	Secret  string `yaml:"secret"`  // token密钥
}

// ML 威胁评分引擎配置结构体
type ML struct {
	Addr    string `yaml:"addr"`    // 评分引擎地址
	Timeout int    `yaml:"timeout"` // 请求超时时间，单位秒
}

// Wazuh 代理管理API配置结构体
type Wazuh struct {
	Addr     string `yaml:"addr"`     // Wazuh API地址
	User     string `yaml:"user"`     // API用户名
	Password string `yaml:"password"` // API密码
	Timeout  int    `yaml:"timeout"`  // 请求超时时间，单位秒
}

// Alert 索引配置结构体
type Alert struct {
	AlertIndex  string `yaml:"alertIndex"`  // 告警索引名称
	ThreatIndex string `yaml:"threatIndex"` // 威胁评分索引名称
}
