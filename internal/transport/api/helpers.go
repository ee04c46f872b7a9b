package api

import (
	"net/http"

	"github.com/fsdevblog/qrpay/internal/transport/api/middlewares"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// getProfileIDFromContext берет из контекста gin ID текущего профиля. ID устанавливается в
// middlewares.AuthRequired. Если значения в контексте нет, вернется uuid.Nil.
func getProfileIDFromContext(c *gin.Context) uuid.UUID {
	value, exist := c.Get(middlewares.CurrentProfileIDKey)
	if !exist {
		return uuid.Nil
	}
	profileID, ok := value.(uuid.UUID)
	if !ok {
		return uuid.Nil
	}
	return profileID
}

// uuidParam разбирает параметр пути name. Для пустого или неверного значения отвечает 400.
func uuidParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		_ = c.AbortWithError(http.StatusBadRequest, err).SetType(gin.ErrorTypeBind)
		return uuid.Nil, false
	}
	return id, true
}
