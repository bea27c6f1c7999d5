package server

import (
	"net/http"

	"github.com/afsarahmad786/basicValidation/internal/pipeline"
	"github.com/afsarahmad786/basicValidation/internal/utils"
	"github.com/afsarahmad786/basicValidation/internal/validation"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handler bundles request-time dependencies for the API routes.
type Handler struct {
	registration *pipeline.Pipeline
}

// newHandler constructs a Handler whose registration pipeline validates with
// dispatcher before registering.
func newHandler(dispatcher *validation.Dispatcher) *Handler {
	return &Handler{
		registration: pipeline.New(utils.WithComponent("pipeline"),
			validationStage(dispatcher),
			registrationStage(),
		),
	}
}

func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": true, "status": StatusHealthy})
}

func (h *Handler) register(c *gin.Context) {
	respBuilder := newResponseBuilder()

	input, err := bindRegistrationInput(c)
	if err != nil {
		utils.Logger.Warn("Invalid request body",
			zap.String(utils.FieldRequestID, requestID(c)),
			zap.Error(err))
		c.JSON(http.StatusBadRequest, respBuilder.BuildErrorResponse(
			ErrorCodeInvalidRequestBody,
			MessageInvalidRequestBody,
			err.Error(),
		))
		return
	}

	outcome := h.registration.Execute(c.Request.Context(), &pipeline.Request{
		ID:    requestID(c),
		Input: input,
	})
	if !outcome.Terminated() {
		utils.Logger.Error("Registration pipeline finished without a response",
			zap.String(utils.FieldRequestID, requestID(c)))
		c.JSON(http.StatusInternalServerError, respBuilder.BuildErrorResponse(
			ErrorCodeInternal,
			MessageInternalError,
			nil,
		))
		return
	}

	c.JSON(outcome.Status, outcome.Body)
}
