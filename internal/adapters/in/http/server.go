// Package http exposes the waybill lifecycle over a REST API.
// It translates HTTP requests into commands and queries and maps domain
// errors onto status codes.
package http

import (
	"errors"
	"net/http"

	"waybill/internal/core/application/usecases/commands"
	"waybill/internal/core/application/usecases/queries"
	"waybill/internal/core/domain/model/kernel"
	"waybill/internal/core/domain/model/waybill"
	"waybill/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createWaybillHandler  commands.CreateWaybillCommandHandler
	transferStatusHandler commands.TransferStatusCommandHandler

	// Query handlers
	getWaybillHandler             queries.GetWaybillQueryHandler
	getTransitionHistoryHandler   queries.GetTransitionHistoryQueryHandler
	getUncompletedWaybillsHandler queries.GetUncompletedWaybillsQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createWaybillHandler commands.CreateWaybillCommandHandler,
	transferStatusHandler commands.TransferStatusCommandHandler,
	getWaybillHandler queries.GetWaybillQueryHandler,
	getTransitionHistoryHandler queries.GetTransitionHistoryQueryHandler,
	getUncompletedWaybillsHandler queries.GetUncompletedWaybillsQueryHandler,
) *Server {
	return &Server{
		createWaybillHandler:          createWaybillHandler,
		transferStatusHandler:         transferStatusHandler,
		getWaybillHandler:             getWaybillHandler,
		getTransitionHistoryHandler:   getTransitionHistoryHandler,
		getUncompletedWaybillsHandler: getUncompletedWaybillsHandler,
	}
}

// ErrorResponse is the uniform error body for all endpoints.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreateWaybillRequest is the body of POST /api/v1/waybills.
// ID is optional; a fresh one is generated when omitted.
type CreateWaybillRequest struct {
	ID string `json:"id,omitempty"`
}

// CreateWaybillResponse reports the id of the registered waybill.
type CreateWaybillResponse struct {
	ID string `json:"id"`
}

// TransferRequest is the body of POST /api/v1/waybills/:id/transfer.
type TransferRequest struct {
	TargetStatus string `json:"targetStatus"`
	Operator     string `json:"operator"`
	Remark       string `json:"remark,omitempty"`
}

// WaybillResponse is the projection returned by waybill lookups.
type WaybillResponse struct {
	ID        string `json:"id"`
	Status    string `json:"status"`
	Version   int64  `json:"version"`
	UpdatedAt string `json:"updatedAt"`
}

// TransitionResponse is one recorded transition in a waybill's history.
type TransitionResponse struct {
	FromStatus  string `json:"fromStatus"`
	ToStatus    string `json:"toStatus"`
	Operator    string `json:"operator"`
	OperateTime string `json:"operateTime"`
	Remark      string `json:"remark,omitempty"`
}

// CreateWaybill handles POST /api/v1/waybills - registers a new waybill.
func (s *Server) CreateWaybill(ctx echo.Context) error {
	var req CreateWaybillRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	waybillID := kernel.NewUUID()
	if req.ID != "" {
		parsed, err := kernel.UUIDFromString(req.ID)
		if err != nil {
			return badRequest(ctx, "Invalid waybill id: "+req.ID)
		}
		waybillID = parsed
	}

	cmd, err := commands.NewCreateWaybillCommand(waybillID)
	if err != nil {
		return badRequest(ctx, "Invalid waybill data: "+err.Error())
	}

	if handleErr := s.createWaybillHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return ctx.JSON(http.StatusConflict, ErrorResponse{
			Code:    http.StatusConflict,
			Message: "Failed to create waybill",
		})
	}

	return ctx.JSON(http.StatusCreated, CreateWaybillResponse{ID: waybillID.String()})
}

// TransferStatus handles POST /api/v1/waybills/:id/transfer - requests a status transition.
func (s *Server) TransferStatus(ctx echo.Context) error {
	waybillID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid waybill id: "+ctx.Param("id"))
	}

	var req TransferRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	targetStatus, err := waybill.StatusFromString(req.TargetStatus)
	if err != nil {
		return badRequest(ctx, "Invalid target status: "+req.TargetStatus)
	}

	cmd, err := commands.NewTransferStatusCommand(waybillID, targetStatus, req.Operator, req.Remark)
	if err != nil {
		return badRequest(ctx, "Invalid transfer data: "+err.Error())
	}

	if handleErr := s.transferStatusHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return transferError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusOK)
}

// GetWaybill handles GET /api/v1/waybills/:id - retrieves current waybill state.
func (s *Server) GetWaybill(ctx echo.Context) error {
	waybillID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid waybill id: "+ctx.Param("id"))
	}

	query, err := queries.NewGetWaybillQuery(waybillID)
	if err != nil {
		return badRequest(ctx, "Invalid waybill id: "+err.Error())
	}

	result, err := s.getWaybillHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ctx.JSON(http.StatusNotFound, ErrorResponse{
				Code:    http.StatusNotFound,
				Message: "Waybill not found",
			})
		}
		return internalError(ctx, "Failed to retrieve waybill")
	}

	return ctx.JSON(http.StatusOK, WaybillResponse{
		ID:        result.ID.String(),
		Status:    result.Status.String(),
		Version:   result.Version,
		UpdatedAt: result.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	})
}

// GetTransitionHistory handles GET /api/v1/waybills/:id/history - retrieves the transition log.
func (s *Server) GetTransitionHistory(ctx echo.Context) error {
	waybillID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid waybill id: "+ctx.Param("id"))
	}

	query, err := queries.NewGetTransitionHistoryQuery(waybillID)
	if err != nil {
		return badRequest(ctx, "Invalid waybill id: "+err.Error())
	}

	history, err := s.getTransitionHistoryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to retrieve transition history")
	}

	response := make([]TransitionResponse, len(history))
	for i, entry := range history {
		response[i] = TransitionResponse{
			FromStatus:  entry.FromStatus.String(),
			ToStatus:    entry.ToStatus.String(),
			Operator:    entry.Operator,
			OperateTime: entry.OperateTime.Format("2006-01-02T15:04:05Z07:00"),
			Remark:      entry.Remark,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetUncompletedWaybills handles GET /api/v1/waybills/uncompleted - retrieves in-flight waybills.
func (s *Server) GetUncompletedWaybills(ctx echo.Context) error {
	query := queries.NewGetUncompletedWaybillsQuery()

	waybills, err := s.getUncompletedWaybillsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to retrieve waybills")
	}

	response := make([]WaybillResponse, len(waybills))
	for i, wb := range waybills {
		response[i] = WaybillResponse{
			ID:      wb.ID.String(),
			Status:  wb.Status.String(),
			Version: wb.Version,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// transferError maps transfer outcomes onto status codes: 404 for unknown
// waybills, 422 for rejected transitions, 409 for exhausted retries.
func transferError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, ErrorResponse{
			Code:    http.StatusNotFound,
			Message: "Waybill not found",
		})
	case errors.Is(err, waybill.ErrInvalidTransition):
		return ctx.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Code:    http.StatusUnprocessableEntity,
			Message: err.Error(),
		})
	case errors.Is(err, commands.ErrConcurrencyExceeded):
		return ctx.JSON(http.StatusConflict, ErrorResponse{
			Code:    http.StatusConflict,
			Message: "Concurrent updates exceeded retry limit, try again",
		})
	default:
		return internalError(ctx, "Failed to transfer waybill status")
	}
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func internalError(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
		Code:    http.StatusInternalServerError,
		Message: message,
	})
}
