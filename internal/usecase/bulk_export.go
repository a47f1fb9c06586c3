package usecase

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/xavierca1/salary-slips/internal/entity"
)

const errorsManifest = "_errors.txt"

type BulkExportUseCase struct {
	Employees entity.EmployeeRepository
	Renderer  SlipRenderer
	Workers   int
	Logger    *zap.Logger
	Now       func() time.Time
}

func NewBulkExportUseCase(employees entity.EmployeeRepository, renderer SlipRenderer, workers int, logger *zap.Logger) *BulkExportUseCase {
	if workers < 1 {
		workers = 1
	}
	return &BulkExportUseCase{
		Employees: employees,
		Renderer:  renderer,
		Workers:   workers,
		Logger:    orNop(logger),
		Now:       time.Now,
	}
}

type exportItem struct {
	doc     entity.Document
	failure *ItemFailure
}

// Execute renders every requested slip with bounded parallelism and zips the
// successes in request order. Per-employee failures are listed, not fatal.
func (uc *BulkExportUseCase) Execute(ctx context.Context, input BulkExportInput) (*BulkExportOutput, error) {
	period, err := resolvePeriod(input.Month, input.Year, uc.Now())
	if err != nil {
		return nil, err
	}
	ds, ok := uc.Employees.Current()
	if !ok {
		return nil, errNoData
	}

	ids := selectIDs(ds, input.IDs)
	batchID := uuid.New().String()
	log := uc.Logger.With(zap.String("batch_id", batchID), zap.String("format", string(input.Format)))

	items := make([]exportItem, len(ids))
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(uc.Workers)

	for i, id := range ids {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			rec, ok := ds.Find(id)
			if !ok {
				items[i].failure = failureOf(id, "", employeeNotFound(id))
				return nil
			}
			doc, err := renderSlip(uc.Renderer, rec, input.Format, period)
			if err != nil {
				var de *DomainError
				if errors.As(err, &de) {
					return err
				}
				items[i].failure = failureOf(id, rec.Name, err)
				return nil
			}
			items[i].doc = doc
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := &BulkExportOutput{BatchID: batchID, Failures: []ItemFailure{}}
	docs := make([]entity.Document, 0, len(items))
	for _, it := range items {
		if it.failure != nil {
			out.Failures = append(out.Failures, *it.failure)
			continue
		}
		docs = append(docs, it.doc)
	}
	out.Succeeded = len(docs)

	log.Info("bulk export finished",
		zap.Int("requested", len(ids)),
		zap.Int("succeeded", out.Succeeded),
		zap.Int("failed", len(out.Failures)),
	)

	if out.Succeeded == 0 {
		return out, &RenderError{EmployeeID: -1, Code: CodeNothingExported, Message: "Không tạo được phiếu lương nào"}
	}

	content, err := writeArchive(docs, out.Failures, period.Start())
	if err != nil {
		return nil, fmt.Errorf("write archive: %w", err)
	}
	out.Archive = entity.Document{
		FileName:    fmt.Sprintf("PhieuLuong_Thang%d_%d.zip", period.Month, period.Year),
		ContentType: "application/zip",
		Content:     content,
	}
	return out, nil
}

// selectIDs returns the requested ids, or every record when none were given.
func selectIDs(ds *entity.Dataset, requested []int) []int {
	if len(requested) > 0 {
		return requested
	}
	ids := make([]int, ds.Len())
	for i, rec := range ds.Records {
		ids[i] = rec.ID
	}
	return ids
}

func failureOf(id int, name string, err error) *ItemFailure {
	f := &ItemFailure{EmployeeID: id, Name: name, Code: CodeRenderFailed, Message: err.Error()}
	var re *RenderError
	var le *LookupError
	switch {
	case errors.As(err, &re):
		f.Code, f.Message = re.Code, re.Message
	case errors.As(err, &le):
		f.Code, f.Message = le.Code, le.Message
	}
	return f
}

func writeArchive(docs []entity.Document, failures []ItemFailure, modified time.Time) ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	used := make(map[string]int, len(docs))
	add := func(name string, content []byte) error {
		w, err := zw.CreateHeader(&zip.FileHeader{Name: name, Method: zip.Deflate, Modified: modified})
		if err != nil {
			return err
		}
		_, err = w.Write(content)
		return err
	}

	for _, doc := range docs {
		if err := add(uniqueName(used, doc.FileName), doc.Content); err != nil {
			return nil, err
		}
	}

	if len(failures) > 0 {
		var b strings.Builder
		for _, f := range failures {
			fmt.Fprintf(&b, "%d\t%s\t%s\t%s\n", f.EmployeeID, f.Name, f.Code, f.Message)
		}
		if err := add(errorsManifest, []byte(b.String())); err != nil {
			return nil, err
		}
	}

	if err := zw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// uniqueName suffixes repeated file names: a.pdf, a_2.pdf, a_3.pdf.
func uniqueName(used map[string]int, name string) string {
	used[name]++
	n := used[name]
	if n == 1 {
		return name
	}
	ext := path.Ext(name)
	return fmt.Sprintf("%s_%d%s", strings.TrimSuffix(name, ext), n, ext)
}
