package user_service

// File: internal/service/user_service/user_create.go
// Description: 用户服务模块，实现用户创建的核心业务逻辑处理

import (
	"fmt"
	"sentinelops/internal/global"
	"sentinelops/internal/models"
	"sentinelops/internal/utils"
	"sentinelops/internal/utils/pwd"
)

// UserCreateRequest 创建用户的业务请求参数结构体
type UserCreateRequest struct {
	Email    string `json:"email"`    // 登录邮箱
	Password string `json:"password"` // 密码
	Name     string `json:"name"`     // 显示名称
	Role     string `json:"role"`     // 用户角色 admin analyst viewer
}

// Create 实现用户创建的业务逻辑
func (u *UserService) Create(req UserCreateRequest) (user models.UserModel, err error) {
	// 校验角色合法性，缺省为analyst
	if req.Role == "" {
		req.Role = models.RoleAnalyst
	}
	if !utils.InList([]string{models.RoleAdmin, models.RoleAnalyst, models.RoleViewer}, req.Role) {
		err = fmt.Errorf("非法的用户角色 %s", req.Role)
		return
	}

	// 检查邮箱是否已注册
	err = global.DB.Take(&user, "email = ?", req.Email).Error
	if err == nil {
		err = fmt.Errorf("%s 邮箱已注册", req.Email)
		return
	}

	// 密码加密处理
	hashPwd, _ := pwd.GenerateFromPassword(req.Password)
	// 构建用户模型实例
	user = models.UserModel{
		Email:    req.Email,
		Password: hashPwd,
		Name:     req.Name,
		Role:     req.Role,
	}
	// 写入数据库创建用户
	err = global.DB.Create(&user).Error
	if err != nil {
		err = fmt.Errorf("用户创建失败 %s", err)
		return
	}
	// 记录用户创建成功日志
	u.log.Infof("%s 用户创建成功", req.Email)
	return
}
