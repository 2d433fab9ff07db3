package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"

	"retailpulse.com/retailpulse/config"
	"retailpulse.com/retailpulse/utils"
	"retailpulse.com/retailpulse/web/common"
)

const exportSheet = "Attendance"

// ExportAttendance handles GET /api/admin/export/attendance, streaming the
// full attendance log as a spreadsheet.
func (ep *Endpoint) ExportAttendance(c *gin.Context) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(exportSheet)
	if err != nil {
		config.LogError(ep.Logger, "handlers", "ExportAttendance", "new sheet", nil, err)
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse("Something went wrong"))
		return
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	headers := []string{"Staff Phone", "Store", "Login Time", "Status", "Logout Time", "Duration (min)"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(exportSheet, cell, h)
	}

	loc := ep.Cfg.Location()
	for i, a := range ep.Store.GetAllAttendance() {
		row := i + 2
		f.SetCellValue(exportSheet, "A"+fmt.Sprint(row), a.User.Phone)
		f.SetCellValue(exportSheet, "B"+fmt.Sprint(row), a.Store.Name)
		f.SetCellValue(exportSheet, "C"+fmt.Sprint(row), a.LoginTime.In(loc).Format("2006-01-02 15:04"))
		f.SetCellValue(exportSheet, "D"+fmt.Sprint(row), string(a.LoginStatus))
		if a.LogoutTime != nil {
			f.SetCellValue(exportSheet, "E"+fmt.Sprint(row), a.LogoutTime.In(loc).Format("2006-01-02 15:04"))
		}
		f.SetCellValue(exportSheet, "F"+fmt.Sprint(row), utils.Format(a.Duration))
	}

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", "attachment; filename=attendance.xlsx")
	if err := f.Write(c.Writer); err != nil {
		config.LogError(ep.Logger, "handlers", "ExportAttendance", "write workbook", nil, err)
	}
}
