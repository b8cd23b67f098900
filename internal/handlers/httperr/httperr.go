package httperr

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/Soufian-A/runners-erp/internal/domain"
	"github.com/Soufian-A/runners-erp/pkg/utils"
)

func Status(err error) int {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrConcurrency):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// Respond writes err with the status of its kind. Unknown errors are logged and hidden from the caller.
func Respond(w http.ResponseWriter, err error) {
	status := Status(err)
	if status == http.StatusInternalServerError {
		zap.L().Error("request failed", zap.Error(err))
		utils.RespondWithError(w, status, "Internal server error")
		return
	}
	utils.RespondWithError(w, status, err.Error())
}
