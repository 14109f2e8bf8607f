package ip

// File: internal/utils/ip/enter.go
// Description: IP地址处理工具类，提供本地IP判断功能

import "net"

// HasLocalIPAddr 判断给定IP地址是否为本地IP（私有地址或回环地址）
func HasLocalIPAddr(_ip string) bool {
	ip := net.ParseIP(_ip)
	if ip == nil {
		return false
	}
	// 判断是否为私有地址（RFC1918定义的内网地址）
	if ip.IsPrivate() {
		return true
	}
	// 判断是否为回环地址（127.0.0.0/8或::1/128）
	if ip.IsLoopback() {
		return true
	}
	return false
}
