// File: internal/handler/index.go
package handler

import (
	"net/http"

	"blog-api/internal/dto"

	"github.com/labstack/echo/v4"
)

// IndexHandler API 首頁
// @Summary     API Index
// @Tags        health
// @Produce     json
// @Success     200 {object} dto.MessageResponse
// @Router      / [get]
func IndexHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, dto.MessageResponse{Message: "Blog API Index"})
	}
}
