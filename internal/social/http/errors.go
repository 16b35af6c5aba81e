package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/upchain/social/internal/social/service"
	"github.com/upchain/social/pkg/httpx"
	"github.com/upchain/social/pkg/slogx"
)

// writeServiceError maps the service error taxonomy to HTTP statuses. Every
// path gets an explicit status and a JSON body.
func writeServiceError(ctx context.Context, w http.ResponseWriter, err error) {
	var se *service.Error
	if errors.As(err, &se) && se.Kind != service.KindInternal {
		httpx.WriteError(w, statusFor(se.Kind), se.Msg)
		return
	}

	slogx.FromContext(ctx).Error("request failed", "error", err)

	msg := "internal server error"
	if se != nil {
		msg = se.Msg
	}
	httpx.WriteError(w, http.StatusInternalServerError, msg)
}

func statusFor(k service.Kind) int {
	switch k {
	case service.KindValidation:
		return http.StatusBadRequest
	case service.KindAuth:
		return http.StatusUnauthorized
	case service.KindNotFound:
		return http.StatusNotFound
	case service.KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
