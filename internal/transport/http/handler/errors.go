package handler

import (
	"errors"

	"go-gin-mock-backend/internal/domain"
	httpez "go-gin-mock-backend/internal/transport/http/ez"
)

// mapErr 领域错误 -> 带状态码的 AErr
func mapErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, domain.ErrNotFound):
		return httpez.NotFound(err.Error())
	case errors.Is(err, domain.ErrValidation):
		return httpez.BadRequest(err.Error())
	}
	return httpez.Internal("internal error", err)
}

func pathID(call *httpez.Call) (int, error) {
	id, err := call.Params.Int("id")
	if err != nil {
		return 0, httpez.BadRequest(err.Error())
	}
	return id, nil
}
