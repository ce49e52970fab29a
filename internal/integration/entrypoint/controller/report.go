package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/krigzlist/backend/internal/application/usecase/report"
	domainerror "github.com/krigzlist/backend/internal/domain/error"
	"github.com/krigzlist/backend/internal/integration/entrypoint/dto"
)

// ReportController handles spending analytics endpoints.
type ReportController struct {
	trendsUseCase    *report.GetSpendingTrendsUseCase
	breakdownUseCase *report.GetCategoryBreakdownUseCase
	summaryUseCase   *report.GetSummaryUseCase
}

// NewReportController creates a new report controller instance.
func NewReportController(
	trendsUseCase *report.GetSpendingTrendsUseCase,
	breakdownUseCase *report.GetCategoryBreakdownUseCase,
	summaryUseCase *report.GetSummaryUseCase,
) *ReportController {
	return &ReportController{
		trendsUseCase:    trendsUseCase,
		breakdownUseCase: breakdownUseCase,
		summaryUseCase:   summaryUseCase,
	}
}

// Trends handles GET /reports/trends requests.
func (c *ReportController) Trends(ctx *gin.Context) {
	timeframe := ctx.DefaultQuery("timeframe", string(report.TimeframeDaily))

	output, err := c.trendsUseCase.Execute(ctx.Request.Context(), report.GetSpendingTrendsInput{
		Timeframe: report.Timeframe(timeframe),
	})
	if err != nil {
		var reportErr *domainerror.ReportError
		if errors.As(err, &reportErr) {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: reportErr.Message,
				Code:  string(reportErr.Code),
			})
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to compute spending trends",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTrendsResponse(output))
}

// Breakdown handles GET /reports/breakdown requests.
func (c *ReportController) Breakdown(ctx *gin.Context) {
	output, err := c.breakdownUseCase.Execute(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to compute category breakdown",
		})
		return
	}
	ctx.JSON(http.StatusOK, dto.ToBreakdownResponse(output))
}

// Summary handles GET /reports/summary requests.
func (c *ReportController) Summary(ctx *gin.Context) {
	output, err := c.summaryUseCase.Execute(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to compute summary",
		})
		return
	}
	ctx.JSON(http.StatusOK, dto.ToSummaryResponse(output))
}
