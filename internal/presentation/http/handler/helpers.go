package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/sangkips/promo-kiosk/internal/presentation/http/dto/response"
	"github.com/sangkips/promo-kiosk/pkg/apperror"
)

// handleError writes err as an API error, hiding internal details
func handleError(c *gin.Context, err error) {
	_ = c.Error(err)
	if apperror.IsAppError(err) {
		response.Error(c, err)
		return
	}
	response.Error(c, apperror.ErrInternalServer)
}
