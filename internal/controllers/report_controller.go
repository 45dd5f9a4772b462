package controllers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"forms-backend/internal/repositories"
	"forms-backend/internal/services"
	"forms-backend/pkg/utils"
)

type ReportController struct {
	reportService services.ReportServiceInterface
	logger        *zap.Logger
}

func NewReportController(reportService services.ReportServiceInterface, logger *zap.Logger) *ReportController {
	return &ReportController{reportService: reportService, logger: logger}
}

func (c *ReportController) GetSubmissions(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	kind := ctx.QueryParam("kind")
	format := ctx.QueryParam("format")
	filter := parseReportFilter(ctx)

	switch kind {
	case "applications":
		applications, err := c.reportService.GetApplications(reqCtx, filter)
		if err != nil {
			return utils.ErrorResponse(ctx, err, c.logger)
		}
		if format == "xlsx" {
			rows := make([][]interface{}, 0, len(applications))
			for _, a := range applications {
				rows = append(rows, []interface{}{
					a.ID, a.Name, a.Surname, a.Age, a.Phone, a.Email, a.Province,
					a.Locality, a.NationalID, a.Address, a.ResumeFilename,
					a.CreatedAt.Format(time.RFC3339),
				})
			}
			headers := []string{"ID", "Name", "Surname", "Age", "Phone", "Email", "Province",
				"Locality", "National ID", "Address", "Resume", "Created At"}
			return c.respondWithXLSX(ctx, "applications", headers, rows)
		}
		return utils.SuccessResponse(ctx, applications, "Report generated successfully", http.StatusOK)

	case "contacts", "":
		contacts, err := c.reportService.GetContacts(reqCtx, filter)
		if err != nil {
			return utils.ErrorResponse(ctx, err, c.logger)
		}
		if format == "xlsx" {
			rows := make([][]interface{}, 0, len(contacts))
			for _, s := range contacts {
				age := interface{}(nil)
				if s.Age.Valid {
					age = s.Age.Int64
				}
				rows = append(rows, []interface{}{
					s.ID, s.Name, s.Surname, age, s.Phone, s.Email, s.Province,
					s.Locality, s.CreatedAt.Format(time.RFC3339),
				})
			}
			headers := []string{"ID", "Name", "Surname", "Age", "Phone", "Email", "Province",
				"Locality", "Created At"}
			return c.respondWithXLSX(ctx, "contacts", headers, rows)
		}
		return utils.SuccessResponse(ctx, contacts, "Report generated successfully", http.StatusOK)

	default:
		return utils.ErrorResponse(ctx, echo.NewHTTPError(http.StatusBadRequest, "unknown report kind"), c.logger)
	}
}

func parseReportFilter(ctx echo.Context) repositories.ReportFilter {
	var filter repositories.ReportFilter

	if df := ctx.QueryParam("date_from"); df != "" {
		if t, err := time.Parse(time.RFC3339, df); err == nil {
			filter.DateFrom = &t
		}
	}
	if dt := ctx.QueryParam("date_to"); dt != "" {
		if t, err := time.Parse(time.RFC3339, dt); err == nil {
			filter.DateTo = &t
		}
	}
	if l := ctx.QueryParam("limit"); l != "" {
		if n, err := strconv.ParseUint(l, 10, 64); err == nil {
			filter.Limit = n
		}
	}

	return filter
}

func (c *ReportController) respondWithXLSX(ctx echo.Context, sheetTitle string, headers []string, rows [][]interface{}) error {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)

	style, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
		_ = f.SetCellStyle(sheet, cell, cell, style)
	}

	for rowIdx, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, rowIdx+2)
		_ = f.SetSheetRow(sheet, cell, &row)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	filename := fmt.Sprintf("%s-%s.xlsx", sheetTitle, time.Now().Format("2006-01-02"))
	ctx.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return ctx.Blob(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}
