package core

// File: internal/core/ip_addr.go
// Description: IP地址解析核心模块，基于ip2region数据库实现IP地址到地理位置的解析
// 数据库文件路径通过配置指定，未配置或加载失败时降级为不解析

import (
	"fmt"
	"os"
	"sentinelops/internal/global"
	"sentinelops/internal/utils/ip"
	"strings"

	"github.com/lionsoul2014/ip2region/binding/golang/xdb"
	"github.com/sirupsen/logrus"
)

// searcher 全局ip2region数据库搜索器实例
var searcher *xdb.Searcher

// InitIPDB 初始化IP地址数据库，从配置路径加载ip2region.xdb文件
func InitIPDB() {
	path := global.Config.System.IPDB
	if path == "" {
		// 未配置数据库路径，IP归属地解析功能不启用
		return
	}

	// 读取数据库文件内容到内存
	addrDB, err := os.ReadFile(path)
	if err != nil {
		logrus.Warnf("ip地址数据库读取失败 %s，IP归属地解析不启用", err)
		return
	}

	// 从内存缓冲区创建searcher实例
	_searcher, err := xdb.NewWithBuffer(xdb.IPv4, addrDB)
	if err != nil {
		logrus.Warnf("ip地址数据库加载失败 %s，IP归属地解析不启用", err)
		return
	}
	searcher = _searcher
	logrus.Infof("ip地址数据库加载成功 %s", path)
}

// GetIpAddr 根据IP地址解析对应的地理位置信息
func GetIpAddr(_ip string) (addr string) {
	// 内网IP直接返回"内网"
	if ip.HasLocalIPAddr(_ip) {
		return "内网"
	}

	// ip2region数据库未初始化
	if searcher == nil {
		return "未知地址"
	}

	// 从ip2region数据库中查询IP对应的地理位置信息
	region, err := searcher.Search(_ip)
	if err != nil {
		logrus.Warnf("错误的ip地址 %s", err)
		return "异常地址"
	}

	// 分割查询结果（格式：国家|区域|省份|城市|运营商）
	_addrList := strings.Split(region, "|")
	if len(_addrList) != 5 {
		logrus.Warnf("异常的ip地址 %s", _ip)
		return "未知地址"
	}

	// 提取各部分地理信息
	country := _addrList[0]  // 国家
	province := _addrList[2] // 省份
	city := _addrList[3]     // 城市

	// 按优先级格式化地理位置描述
	if province != "0" && city != "0" {
		return fmt.Sprintf("%s·%s", province, city)
	}
	if country != "0" && province != "0" {
		return fmt.Sprintf("%s·%s", country, province)
	}
	if country != "0" {
		return country
	}
	return region
}
