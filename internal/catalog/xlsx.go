package catalog

import (
	"fmt"
	"strings"

	"github.com/keoko/mots/internal/models"
	"github.com/xuri/excelize/v2"
)

// LoadXLSX reads one topic per sheet. Row 1 holds id, name and emoji,
// every following row a source/target pair.
func LoadXLSX(path string) (*Catalog, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	return fromWorkbook(f)
}

func fromWorkbook(f *excelize.File) (*Catalog, error) {
	var topics []models.Topic

	for _, sheet := range f.GetSheetList() {
		rows, err := f.GetRows(sheet)
		if err != nil {
			return nil, fmt.Errorf("failed to get rows of %s: %w", sheet, err)
		}
		if len(rows) == 0 {
			continue
		}

		topic := models.Topic{
			ID:    cell(rows[0], 0),
			Name:  cell(rows[0], 1),
			Emoji: cell(rows[0], 2),
		}
		if topic.ID == "" {
			topic.ID = strings.ToLower(sheet)
		}
		if topic.Name == "" {
			topic.Name = sheet
		}

		for _, row := range rows[1:] {
			target := cell(row, 1)
			if target == "" {
				continue
			}
			topic.Words = append(topic.Words, models.WordPair{
				Source: cell(row, 0),
				Target: target,
			})
		}

		topics = append(topics, topic)
	}

	return New(topics)
}

func cell(row []string, i int) string {
	if i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}
