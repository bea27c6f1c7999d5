package server

import (
	"context"
	"net/http"

	"github.com/afsarahmad786/basicValidation/internal/metrics"
	"github.com/afsarahmad786/basicValidation/internal/pipeline"
	"github.com/afsarahmad786/basicValidation/internal/utils"
	"github.com/afsarahmad786/basicValidation/internal/validation"
	"go.uber.org/zap"
)

// validationStage terminates with 400 and every field error when any rule fails.
func validationStage(dispatcher *validation.Dispatcher) pipeline.Stage {
	return pipeline.NewStage(StageValidate, func(ctx context.Context, req *pipeline.Request) pipeline.Outcome {
		errs := dispatcher.Validate(req.Input)

		failed := make([]string, len(errs))
		for i, fe := range errs {
			failed[i] = fe.Field
		}
		metrics.RecordValidation(failed)

		if len(errs) > 0 {
			utils.Logger.Info("Registration failed validation",
				zap.String(utils.FieldRequestID, req.ID),
				zap.Int(utils.FieldErrCount, len(errs)),
				zap.Strings("fields", errs.Fields()))
			return pipeline.Terminate(http.StatusBadRequest, newResponseBuilder().BuildValidationFailedResponse(errs))
		}
		return pipeline.Continue()
	})
}

// registrationStage accepts a validated registration. Nothing is persisted.
func registrationStage() pipeline.Stage {
	return pipeline.NewStage(StageRegister, func(ctx context.Context, req *pipeline.Request) pipeline.Outcome {
		fields := []zap.Field{
			zap.String(utils.FieldRequestID, req.ID),
			zap.String(utils.FieldUsername, req.Input.Value(FormUsernameField)),
			zap.String(utils.FieldFileType, req.Input.Value(FormFileTypeField)),
		}
		if f := req.Input.File; f != nil {
			fields = append(fields,
				zap.String(utils.FieldFileName, f.Filename),
				zap.Int64("file_size", f.Size))
		}
		utils.Logger.Info("User registered", fields...)

		return pipeline.Terminate(http.StatusOK, newResponseBuilder().BuildRegisterResponse())
	})
}
