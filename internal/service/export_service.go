package service

//go:generate mockgen -source=export_service.go -destination=mocks/mock_export_service.go -package=mocks

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"fitcoach/fitness-coach/internal/storage"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

var (
	ErrStorageDisabled = errors.New("object storage is not configured")
	ErrInvalidCSV      = errors.New("failed to parse CSV")
)

// ExportHeader is the column order of the CSV export.
var ExportHeader = []string{"Date", "Weight", "BodyFat", "Calories", "Protein", "Carbs", "Fats", "Workouts", "Notes"}

const exportDateLayout = "1/2/2006"

// ExportRow is one day flattened for the CSV export.
type ExportRow struct {
	Date     string   `json:"date"`
	Weight   *float64 `json:"weight"`
	BodyFat  *float64 `json:"bodyFat"`
	Calories float64  `json:"calories"`
	Protein  float64  `json:"protein"`
	Carbs    float64  `json:"carbs"`
	Fats     float64  `json:"fats"`
	Workouts string   `json:"workouts"`
	Notes    string   `json:"notes"`
}

func (r ExportRow) record() []string {
	opt := func(f *float64) string {
		if f == nil {
			return ""
		}
		return num(*f)
	}
	return []string{
		r.Date, opt(r.Weight), opt(r.BodyFat),
		num(r.Calories), num(r.Protein), num(r.Carbs), num(r.Fats),
		r.Workouts, r.Notes,
	}
}

// ArchiveResult points at an uploaded export.
type ArchiveResult struct {
	Key       string    `json:"key"`
	URL       string    `json:"url"`
	Rows      int       `json:"rows"`
	ExpiresAt time.Time `json:"expiresAt"`
}

type ExportService interface {
	Rows(ctx context.Context) ([]ExportRow, error)
	WriteCSV(ctx context.Context, w io.Writer) error
	// Archive uploads the CSV export and returns a temporary download link.
	Archive(ctx context.Context) (*ArchiveResult, error)
	// ParseImport reads a CSV with a header row. Rows are returned, never stored.
	ParseImport(r io.Reader) ([]map[string]string, error)
}

type exportService struct {
	dailyLogs DailyLogService
	storage   storage.FileStorage // nil when no bucket is configured
	prefix    string
	loc       *time.Location
	now       func() time.Time
}

func NewExportService(dailyLogs DailyLogService, fileStorage storage.FileStorage, prefix string, loc *time.Location) ExportService {
	if loc == nil {
		loc = time.Local
	}
	return &exportService{
		dailyLogs: dailyLogs,
		storage:   fileStorage,
		prefix:    prefix,
		loc:       loc,
		now:       time.Now,
	}
}

func (s *exportService) Rows(ctx context.Context) ([]ExportRow, error) {
	views, err := s.dailyLogs.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	rows := make([]ExportRow, 0, len(views))
	for i := range views {
		v := &views[i]
		row := ExportRow{
			Date:     v.Date.In(s.loc).Format(exportDateLayout),
			Weight:   v.Weight,
			BodyFat:  v.BodyFat,
			Calories: v.Totals.Calories,
			Protein:  v.Totals.Protein,
			Carbs:    v.Totals.Carbs,
			Fats:     v.Totals.Fats,
			Workouts: strings.Join(v.WorkoutTypes(), ", "),
		}
		if v.Notes != nil {
			row.Notes = *v.Notes
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func (s *exportService) WriteCSV(ctx context.Context, w io.Writer) error {
	rows, err := s.Rows(ctx)
	if err != nil {
		return err
	}
	return WriteExportCSV(w, rows)
}

// WriteExportCSV encodes rows with the export header.
func WriteExportCSV(w io.Writer, rows []ExportRow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(ExportHeader); err != nil {
		return err
	}
	for _, r := range rows {
		if err := cw.Write(r.record()); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func (s *exportService) Archive(ctx context.Context) (*ArchiveResult, error) {
	if s.storage == nil {
		return nil, ErrStorageDisabled
	}

	rows, err := s.Rows(ctx)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := WriteExportCSV(&buf, rows); err != nil {
		return nil, fmt.Errorf("encode csv: %w", err)
	}

	now := s.now()
	key := path.Join(s.prefix, fmt.Sprintf("fitness_data-%s-%s.csv", now.In(s.loc).Format("20060102-150405"), uuid.NewString()))
	if err := s.storage.PutObject(ctx, key, "text/csv;charset=utf-8", buf.Bytes()); err != nil {
		return nil, err
	}
	url, err := s.storage.GeneratePresignedDownloadURL(ctx, key, storage.DefaultPresignedURLExpiry)
	if err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{"key": key, "rows": len(rows)}).Info("export archived")
	return &ArchiveResult{
		Key:       key,
		URL:       url,
		Rows:      len(rows),
		ExpiresAt: now.Add(storage.DefaultPresignedURLExpiry),
	}, nil
}

func (s *exportService) ParseImport(r io.Reader) ([]map[string]string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return []map[string]string{}, nil
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidCSV, err)
	}

	rows := []map[string]string{}
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidCSV, err)
		}
		row := make(map[string]string, len(header))
		for i, col := range header {
			if i < len(record) {
				row[col] = record[i]
			} else {
				row[col] = ""
			}
		}
		rows = append(rows, row)
	}

	log.WithField("rows", len(rows)).Info("parsed CSV import; rows are not persisted")
	return rows, nil
}
