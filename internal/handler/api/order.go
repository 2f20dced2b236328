package api

import (
	"log/slog"
	"net/http"

	reqdto "order-assembly/internal/handler/dto/request"
	resdto "order-assembly/internal/handler/dto/response"
	"order-assembly/internal/handler/httperr"
	"order-assembly/internal/handler/middleware"
	"order-assembly/internal/pkg/errs"
	"order-assembly/internal/usecase/commands"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	cmds commands.OrderCommands
}

func NewOrderHandler(cmds commands.OrderCommands) *OrderHandler {
	return &OrderHandler{cmds: cmds}
}

// @Summary Assemble order
// @Description Validate, enrich and publish an order submission
// @Tags orders
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body reqdto.AssembleOrderRequest true "Order submission"
// @Success 200 {object} resdto.AssembleOrderResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /orders/assemble [post]
func (h *OrderHandler) Assemble(c *gin.Context) {
	var req reqdto.AssembleOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Malformed request body", nil)
		return
	}

	result, err := h.cmds.Assemble(c.Request.Context(), req)
	if err != nil {
		var stageErr *commands.StageError
		if errors.As(err, &stageErr) {
			httperr.AbortWithError(c, stageErr.Status, stageErr, stageErr.Message, stageErr.Details)
			return
		}
		slog.Error("order assembly failed unexpectedly",
			"request_id", middleware.GetRequestID(c),
			"error", err.Error(),
			"stack", errs.ExtractStackLines(err, 10),
		)
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromAssembleResult(result))
}
