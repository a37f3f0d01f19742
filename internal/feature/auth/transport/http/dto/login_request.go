// Package dto defines data transfer objects for the auth feature's HTTP transport layer.
package dto

// LoginReq represents the login form body.
type LoginReq struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}
