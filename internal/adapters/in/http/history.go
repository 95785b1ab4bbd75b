package http

import (
	"net/http"

	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/generated/servers"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// GetHistory handles GET /api/v1/history/{entityType}/{entityId} - the
// transition log, and the replayed status when at is given.
func (s *Server) GetHistory(
	ctx echo.Context,
	entityType servers.GetHistoryParamsEntityType,
	entityID openapi_types.UUID,
	params servers.GetHistoryParams,
) error {
	id, err := toKernelID("entityId", entityID)
	if err != nil {
		return err
	}

	query, err := queries.NewGetHistoryQuery(string(entityType), id, params.At)
	if err != nil {
		return err
	}

	view, err := s.queries.GetHistory.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, toHistory(view))
}
