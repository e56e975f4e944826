package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/ressKim-io/question-prism/internal/domain/entity"
	"github.com/ressKim-io/question-prism/internal/domain/repository"
	"github.com/ressKim-io/question-prism/internal/domain/service"
	"github.com/ressKim-io/question-prism/internal/infrastructure/metrics"
)

// Export formats
const (
	FormatCSV  = "csv"
	FormatXLSX = "xlsx"
)

// ExportBaseName is the file name used for exported results, without extension
const ExportBaseName = "question_classifications"

// ProgressFunc is called after every finished row
type ProgressFunc func(done, total int)

// BatchOutput represents the output for batch operations
type BatchOutput struct {
	BatchID   uuid.UUID         `json:"batch_id"`
	Filename  string            `json:"filename"`
	Status    string            `json:"status"`
	Total     int               `json:"total"`
	Completed int               `json:"completed"`
	Progress  float64           `json:"progress"`
	Rows      []entity.BatchRow `json:"rows"`
	Error     string            `json:"error,omitempty"`
	CreatedAt string            `json:"created_at"`
	UpdatedAt string            `json:"updated_at"`
}

// ExportOutput is a rendered batch ready for download
type ExportOutput struct {
	Filename    string
	ContentType string
	Data        []byte
}

// BatchUsecase defines the interface for spreadsheet batch business logic
type BatchUsecase interface {
	// Run classifies questions one after another. It returns exactly one
	// row per question whatever the individual outcomes.
	Run(ctx context.Context, questions []string, progress ProgressFunc) []entity.BatchRow

	// Process parses a spreadsheet and runs it synchronously
	Process(ctx context.Context, filename string, data []byte, progress ProgressFunc) (*BatchOutput, error)

	// Start parses a spreadsheet and runs it in the background
	Start(ctx context.Context, filename string, data []byte) (*BatchOutput, error)

	Get(ctx context.Context, id uuid.UUID) (*BatchOutput, error)
	Export(ctx context.Context, id uuid.UUID, format string) (*ExportOutput, error)
	Render(format string, rows []entity.BatchRow) (*ExportOutput, error)
}

type batchUsecase struct {
	pipeline      *Pipeline
	reader        service.SpreadsheetReader
	writer        service.SpreadsheetWriter
	batchRepo     repository.BatchRepository
	ratePerSecond float64
	logger        *zap.Logger
}

// NewBatchUsecase creates a new batch usecase. A non-positive ratePerSecond
// disables throttling between rows.
func NewBatchUsecase(
	pipeline *Pipeline,
	reader service.SpreadsheetReader,
	writer service.SpreadsheetWriter,
	batchRepo repository.BatchRepository,
	ratePerSecond float64,
	logger *zap.Logger,
) BatchUsecase {
	return &batchUsecase{
		pipeline:      pipeline,
		reader:        reader,
		writer:        writer,
		batchRepo:     batchRepo,
		ratePerSecond: ratePerSecond,
		logger:        logger,
	}
}

func (u *batchUsecase) Run(ctx context.Context, questions []string, progress ProgressFunc) []entity.BatchRow {
	rows := make([]entity.BatchRow, 0, len(questions))
	u.run(ctx, questions, func(row entity.BatchRow) {
		rows = append(rows, row)
		if progress != nil {
			progress(len(rows), len(questions))
		}
	})
	return rows
}

func (u *batchUsecase) run(ctx context.Context, questions []string, record func(entity.BatchRow)) {
	var limiter *rate.Limiter
	if u.ratePerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(u.ratePerSecond), 1)
	}

	for _, q := range questions {
		if limiter != nil {
			if err := limiter.Wait(ctx); err != nil {
				metrics.BatchRowsTotal.WithLabelValues("error").Inc()
				record(entity.BatchRow{Question: q, Category: entity.ClassificationErrorPrefix + err.Error()})
				continue
			}
		}

		row := u.classifyRow(ctx, q)
		outcome := "ok"
		if row.Failed() {
			outcome = "error"
		}
		metrics.BatchRowsTotal.WithLabelValues(outcome).Inc()
		record(row)
	}
}

// classifyRow turns a panic while classifying one question into an error
// row so the remaining rows still run.
func (u *batchUsecase) classifyRow(ctx context.Context, question string) (row entity.BatchRow) {
	defer func() {
		if r := recover(); r != nil {
			u.logger.Error("row classification panicked",
				zap.String("question", question),
				zap.Any("panic", r),
			)
			row = entity.BatchRow{Question: question, Category: entity.ClassificationErrorPrefix + fmt.Sprint(r)}
		}
	}()

	c := u.pipeline.Classify(ctx, question, "batch")
	return entity.BatchRow{Question: question, Category: c.BatchLabel()}
}

func (u *batchUsecase) Process(ctx context.Context, filename string, data []byte, progress ProgressFunc) (*BatchOutput, error) {
	batch, err := u.parse(filename, data)
	if err != nil {
		return nil, err
	}

	batch.Status = entity.BatchStatusRunning
	batch.Rows = u.Run(ctx, batch.Questions, progress)
	batch.Completed = len(batch.Rows)
	batch.Status = entity.BatchStatusCompleted
	batch.UpdatedAt = time.Now().UTC()

	return toBatchOutput(batch), nil
}

func (u *batchUsecase) Start(ctx context.Context, filename string, data []byte) (*BatchOutput, error) {
	batch, err := u.parse(filename, data)
	if err != nil {
		return nil, err
	}

	if err := u.batchRepo.Save(ctx, batch); err != nil {
		return nil, fmt.Errorf("failed to save batch: %w", err)
	}

	output := toBatchOutput(batch)
	go u.execute(context.WithoutCancel(ctx), batch)

	return output, nil
}

// execute is the only writer of batch once Start has returned
func (u *batchUsecase) execute(ctx context.Context, batch *entity.Batch) {
	log := u.logger.With(zap.String("batch_id", batch.ID.String()))

	defer func() {
		if r := recover(); r != nil {
			log.Error("batch panicked", zap.Any("panic", r))
			// Every question still gets a row
			for _, q := range batch.Questions[len(batch.Rows):] {
				batch.Record(entity.BatchRow{Question: q, Category: entity.ClassificationErrorPrefix + fmt.Sprint(r)})
			}
			batch.Status = entity.BatchStatusFailed
			batch.Error = fmt.Sprintf("%v", r)
			u.save(ctx, batch, log)
		}
	}()

	batch.Status = entity.BatchStatusRunning
	u.save(ctx, batch, log)

	u.run(ctx, batch.Questions, func(row entity.BatchRow) {
		batch.Record(row)
		u.save(ctx, batch, log)
	})

	batch.Status = entity.BatchStatusCompleted
	batch.UpdatedAt = time.Now().UTC()
	u.save(ctx, batch, log)

	log.Info("batch completed", zap.Int("rows", batch.Completed))
}

func (u *batchUsecase) save(ctx context.Context, batch *entity.Batch, log *zap.Logger) {
	if err := u.batchRepo.Save(ctx, batch); err != nil {
		log.Warn("failed to persist batch progress", zap.Error(err))
	}
}

func (u *batchUsecase) Get(ctx context.Context, id uuid.UUID) (*BatchOutput, error) {
	batch, err := u.batchRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if batch == nil {
		return nil, ErrBatchNotFound
	}

	return toBatchOutput(batch), nil
}

func (u *batchUsecase) Export(ctx context.Context, id uuid.UUID, format string) (*ExportOutput, error) {
	batch, err := u.batchRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if batch == nil {
		return nil, ErrBatchNotFound
	}
	if !batch.IsFinished() {
		return nil, ErrBatchNotFinished
	}

	return u.Render(format, batch.Rows)
}

func (u *batchUsecase) Render(format string, rows []entity.BatchRow) (*ExportOutput, error) {
	format = strings.ToLower(strings.TrimSpace(format))
	if format == "" {
		format = FormatCSV
	}

	var contentType string
	switch format {
	case FormatCSV:
		contentType = "text/csv"
	case FormatXLSX:
		contentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	default:
		return nil, ErrInvalidRequest
	}

	data, err := u.writer.WriteRows(format, rows)
	if err != nil {
		return nil, fmt.Errorf("failed to render %s: %w", format, err)
	}

	return &ExportOutput{
		Filename:    ExportBaseName + "." + format,
		ContentType: contentType,
		Data:        data,
	}, nil
}

func (u *batchUsecase) parse(filename string, data []byte) (*entity.Batch, error) {
	questions, err := u.reader.ReadQuestions(filename, data)
	if err != nil {
		if errors.Is(err, service.ErrUnsupportedFormat) {
			return nil, ErrUnsupportedFile
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}

	kept := questions[:0:0]
	for _, q := range questions {
		if q, ok := entity.NormalizeQuestion(q); ok {
			kept = append(kept, q)
		}
	}
	if len(kept) == 0 {
		return nil, ErrNoQuestions
	}

	return entity.NewBatch(filename, kept), nil
}

func toBatchOutput(b *entity.Batch) *BatchOutput {
	rows := make([]entity.BatchRow, len(b.Rows))
	copy(rows, b.Rows)

	return &BatchOutput{
		BatchID:   b.ID,
		Filename:  b.Filename,
		Status:    string(b.Status),
		Total:     b.Total(),
		Completed: b.Completed,
		Progress:  b.Progress(),
		Rows:      rows,
		Error:     b.Error,
		CreatedAt: b.CreatedAt.Format(time.RFC3339),
		UpdatedAt: b.UpdatedAt.Format(time.RFC3339),
	}
}
