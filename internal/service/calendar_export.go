package service

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"strings"
	"time"

	"guardops-backend/internal/logger"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/xuri/excelize/v2"
)

var hexColorPattern = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// ExportCalendar renders the month's calendar as an XLSX workbook: one row
// per user, one column per day, each cell holding the shift code. OFF days
// stay empty.
func (s *RosterService) ExportCalendar(ctx context.Context, month string, userID *uuid.UUID) ([]byte, string, error) {
	calendar, err := s.Calendar(ctx, month, userID)
	if err != nil {
		return nil, "", err
	}

	content, err := renderCalendarWorkbook(calendar)
	if err != nil {
		logger.WithContext(ctx).WithError(err).WithField("month", calendar.Month).Error("Failed to render calendar workbook")
		return nil, "", err
	}

	return content, fmt.Sprintf("roster-%s.xlsx", calendar.Month), nil
}

type calendarRow struct {
	userID   uuid.UUID
	fullName string
	username string
	byDay    map[int]CalendarEntry
}

func renderCalendarWorkbook(calendar *CalendarResponse) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Roster " + calendar.Month
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("failed to delete default sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#E6F3FF"},
			Pattern: 1,
		},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	headers := []interface{}{"Name", "Username"}
	for day := 1; day <= calendar.Days; day++ {
		headers = append(headers, day)
	}
	if err := f.SetSheetRow(sheetName, "A1", &headers); err != nil {
		return nil, fmt.Errorf("failed to write header: %w", err)
	}
	lastHeader, err := excelize.CoordinatesToCellName(len(headers), 1)
	if err != nil {
		return nil, fmt.Errorf("failed to convert coordinates: %w", err)
	}
	if err := f.SetCellStyle(sheetName, "A1", lastHeader, headerStyle); err != nil {
		return nil, fmt.Errorf("failed to set header style: %w", err)
	}

	rows := groupCalendarRows(calendar.Entries)
	styles := make(map[string]int)

	for i, row := range rows {
		rowNum := i + 2
		values := []interface{}{row.fullName, row.username}
		if err := f.SetSheetRow(sheetName, fmt.Sprintf("A%d", rowNum), &values); err != nil {
			return nil, fmt.Errorf("failed to write row %d: %w", rowNum, err)
		}

		for day := 1; day <= calendar.Days; day++ {
			entry, ok := row.byDay[day]
			if !ok {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(day+2, rowNum)
			if err != nil {
				return nil, fmt.Errorf("failed to convert coordinates: %w", err)
			}
			if err := f.SetCellValue(sheetName, cell, entry.ShiftCode); err != nil {
				return nil, fmt.Errorf("failed to set cell %s: %w", cell, err)
			}

			if !hexColorPattern.MatchString(entry.Color) {
				continue
			}
			styleID, ok := styles[entry.Color]
			if !ok {
				styleID, err = f.NewStyle(&excelize.Style{
					Fill: excelize.Fill{Type: "pattern", Color: []string{entry.Color}, Pattern: 1},
					Alignment: &excelize.Alignment{
						Horizontal: "center",
					},
				})
				if err != nil {
					return nil, fmt.Errorf("failed to create shift style: %w", err)
				}
				styles[entry.Color] = styleID
			}
			if err := f.SetCellStyle(sheetName, cell, cell, styleID); err != nil {
				return nil, fmt.Errorf("failed to set cell style: %w", err)
			}
		}
	}

	if err := f.SetColWidth(sheetName, "A", "A", 28); err != nil {
		return nil, fmt.Errorf("failed to set column width: %w", err)
	}
	if err := f.SetColWidth(sheetName, "B", "B", 18); err != nil {
		return nil, fmt.Errorf("failed to set column width: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// groupCalendarRows builds one row per user ordered by full name
func groupCalendarRows(entries []CalendarEntry) []calendarRow {
	grouped := lo.GroupBy(entries, func(e CalendarEntry) uuid.UUID {
		return e.UserID
	})

	rows := make([]calendarRow, 0, len(grouped))
	for userID, userEntries := range grouped {
		row := calendarRow{
			userID:   userID,
			fullName: userEntries[0].FullName,
			username: userEntries[0].Username,
			byDay:    make(map[int]CalendarEntry, len(userEntries)),
		}
		for _, e := range userEntries {
			if date, err := time.Parse("2006-01-02", e.Date); err == nil {
				row.byDay[date.Day()] = e
			}
		}
		rows = append(rows, row)
	}

	sort.Slice(rows, func(i, j int) bool {
		a, b := strings.ToLower(rows[i].fullName), strings.ToLower(rows[j].fullName)
		if a != b {
			return a < b
		}
		return rows[i].userID.String() < rows[j].userID.String()
	})
	return rows
}
