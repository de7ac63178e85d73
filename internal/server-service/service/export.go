package service

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"server-dashboard/internal/server-service/model"

	"github.com/xuri/excelize/v2"
)

const (
	exportTimeLayout = "2006-01-02 15:04:05"
	exportSheetName  = "Servers"
	csvSeparator     = ';'
)

var exportHeaders = []string{"ID", "Name", "URL", "Type", "Status", "Healthcheck", "Last Checked", "Created At", "Updated At"}

func formatExportTime(t *time.Time) string {
	if t == nil || t.IsZero() {
		return ""
	}
	return t.Format(exportTimeLayout)
}

func exportRow(server model.Server) []string {
	return []string{
		strconv.FormatUint(uint64(server.ID), 10),
		server.Name,
		server.URL,
		server.Type.DisplayName(),
		server.Status,
		server.Healthcheck,
		formatExportTime(server.LastChecked),
		formatExportTime(&server.CreatedAt),
		formatExportTime(&server.UpdatedAt),
	}
}

// generateCSV writes servers separated by ';', values holding the separator, quotes or line breaks are quoted.
func generateCSV(servers []model.Server) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	w.Comma = csvSeparator
	if err := w.Write(exportHeaders); err != nil {
		return nil, err
	}
	for _, server := range servers {
		if err := w.Write(exportRow(server)); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func generateExcelFile(servers []model.Server) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName(f.GetSheetName(0), exportSheetName); err != nil {
		return nil, err
	}
	headers := make([]interface{}, len(exportHeaders))
	for i, h := range exportHeaders {
		headers[i] = h
	}
	if err := f.SetSheetRow(exportSheetName, "A1", &headers); err != nil {
		return nil, err
	}
	for i, server := range servers {
		row := exportRow(server)
		rowData := make([]interface{}, len(row))
		for j, v := range row {
			rowData[j] = v
		}
		rowData[0] = server.ID
		startCell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(exportSheetName, startCell, &rowData); err != nil {
			return nil, err
		}
	}
	return f, nil
}

func generateExcelBytes(servers []model.Server) ([]byte, error) {
	f, err := generateExcelFile(servers)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
