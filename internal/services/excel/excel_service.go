package excel

import (
	"bytes"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/listingai/listingai-backend/internal/models"
	"github.com/xuri/excelize/v2"
)

// MaxExportListings bounds a single export request
const MaxExportListings = 100

const listingsSheetName = "Listings"

var (
	ErrNoListings       = errors.New("at least one listing is required")
	ErrTooManyListings  = fmt.Errorf("at most %d listings can be exported at once", MaxExportListings)
	filenameUnsafeChars = regexp.MustCompile(`[^a-z0-9]+`)
)

// Service builds spreadsheet exports of generated listings
type Service struct {
	now func() time.Time
}

// NewExcelService creates a new Excel service instance
func NewExcelService() *Service {
	return &Service{now: time.Now}
}

// ExportResult contains the workbook bytes and the suggested download name
type ExportResult struct {
	Filename string
	Data     []byte
	Rows     int
}

var listingColumns = []struct {
	header string
	width  float64
}{
	{"#", 6},
	{"Platform", 18},
	{"Title", 50},
	{"Title Length", 12},
	{"Description", 80},
	{"Bullet Points", 60},
	{"Keywords", 40},
}

// ExportListings writes listings to a single-sheet workbook held in memory
func (s *Service) ExportListings(platform string, listings []models.ListingResult) (*ExportResult, error) {
	if len(listings) == 0 {
		return nil, ErrNoListings
	}
	if len(listings) > MaxExportListings {
		return nil, ErrTooManyListings
	}

	f := excelize.NewFile()
	defer f.Close()

	defaultSheetName := f.GetSheetName(0)
	if err := f.SetSheetName(defaultSheetName, listingsSheetName); err != nil {
		return nil, fmt.Errorf("failed to rename sheet: %w", err)
	}
	f.SetActiveSheet(0)

	for i, col := range listingColumns {
		colLetter := columnToLetter(i + 1)
		if err := f.SetCellValue(listingsSheetName, colLetter+"1", col.header); err != nil {
			return nil, fmt.Errorf("failed to write header: %w", err)
		}
		if err := f.SetColWidth(listingsSheetName, colLetter, colLetter, col.width); err != nil {
			return nil, fmt.Errorf("failed to set column width: %w", err)
		}
	}
	lastCol := columnToLetter(len(listingColumns))

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold: true,
		},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"D9EAD3"},
			Pattern: 1,
		},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}
	if err := f.SetCellStyle(listingsSheetName, "A1", lastCol+"1", headerStyle); err != nil {
		return nil, fmt.Errorf("failed to style header: %w", err)
	}

	wrapStyle, err := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{WrapText: true, Vertical: "top"},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create cell style: %w", err)
	}

	for i, listing := range listings {
		row := strconv.Itoa(i + 2)
		values := []interface{}{
			i + 1,
			platform,
			listing.Title,
			utf8.RuneCountInString(listing.Title),
			listing.Description,
			strings.Join(listing.BulletPoints, "\n"),
			strings.Join(listing.Keywords, ", "),
		}
		for j, v := range values {
			if err := f.SetCellValue(listingsSheetName, columnToLetter(j+1)+row, v); err != nil {
				return nil, fmt.Errorf("failed to write row %d: %w", i+1, err)
			}
		}
		if err := f.SetCellStyle(listingsSheetName, "A"+row, lastCol+row, wrapStyle); err != nil {
			return nil, fmt.Errorf("failed to style row %d: %w", i+1, err)
		}
	}

	if err := f.SetPanes(listingsSheetName, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return nil, fmt.Errorf("failed to freeze header: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write Excel file: %w", err)
	}

	return &ExportResult{
		Filename: s.filename(platform),
		Data:     bytes.Clone(buf.Bytes()),
		Rows:     len(listings),
	}, nil
}

func (s *Service) filename(platform string) string {
	slug := strings.Trim(filenameUnsafeChars.ReplaceAllString(strings.ToLower(platform), "_"), "_")
	if slug == "" {
		slug = "all"
	}
	return fmt.Sprintf("listings_%s_%d.xlsx", slug, s.now().Unix())
}

// Helper function to convert column number to Excel column letter
func columnToLetter(col int) string {
	var result string
	for col > 0 {
		col--
		result = string(rune('A'+col%26)) + result
		col /= 26
	}
	return result
}
