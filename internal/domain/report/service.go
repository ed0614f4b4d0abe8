package report

import (
	"context"
	"io"
	"time"
)

// Exporter renders a monthly report into a document format.
type Exporter interface {
	Format() Format
	ContentType() string
	Export(w io.Writer, r MonthlyReport) error
}

type ReportService interface {
	ExportMonthly(ctx context.Context, req MonthlyReportRequest) (ExportedReport, error)
	// PurgeArchived removes archived reports older than the retention period.
	PurgeArchived(ctx context.Context, retention time.Duration) (int, error)
}
