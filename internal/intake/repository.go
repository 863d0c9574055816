package intake

import (
	"bytes"
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/url"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/jmcandrew/stevedore/pkg/pagination"
	"github.com/jmcandrew/stevedore/pkg/query"
	"github.com/jmcandrew/stevedore/pkg/repository"
	"github.com/jmcandrew/stevedore/pkg/storage"
)

type repo struct {
	db         *sql.DB
	storage    storage.System
	logger     *slog.Logger
	pagination pagination.Config
}

// New creates an intake repository implementing the System interface.
func New(
	db *sql.DB,
	store storage.System,
	logger *slog.Logger,
	pagination pagination.Config,
) System {
	return &repo{
		db:         db,
		storage:    store,
		logger:     logger.With("system", "intake"),
		pagination: pagination,
	}
}

func (r *repo) Handler(maxUploadSize int64) *Handler {
	return NewHandler(r, r.logger, r.pagination, maxUploadSize)
}

func (r *repo) List(
	ctx context.Context,
	page pagination.PageRequest,
	filters Filters,
) (*pagination.PageResult[Record], error) {
	page.Normalize(r.pagination)

	qb := query.
		NewBuilder(projection, defaultSort).
		WhereSearch(page.Search, "Filename", "Supplier", "Reference")

	filters.Apply(qb)

	if len(page.Sort) > 0 {
		qb.OrderByFields(page.Sort)
	}

	countSQL, countArgs := qb.BuildCount()
	var total int
	if err := r.db.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, fmt.Errorf("count intake records: %w", err)
	}

	pageSQL, pageArgs := qb.BuildPage(page.Page, page.PageSize)
	records, err := repository.QueryMany(ctx, r.db, pageSQL, pageArgs, scanRecord)
	if err != nil {
		return nil, fmt.Errorf("query intake records: %w", err)
	}

	result := pagination.NewPageResult(records, total, page.Page, page.PageSize)
	return &result, nil
}

func (r *repo) Find(ctx context.Context, id uuid.UUID) (*Record, error) {
	q, args := query.NewBuilder(projection).BuildSingle("ID", id)

	rec, err := repository.QueryOne(ctx, r.db, q, args, scanRecord)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &rec, nil
}

func (r *repo) Create(ctx context.Context, cmd CreateCommand) (*Record, error) {
	id := uuid.New()
	key := buildStorageKey(id, sanitizeFilename(cmd.Filename))

	if err := r.storage.Upload(ctx, key, bytes.NewReader(cmd.Data), cmd.ContentType); err != nil {
		return nil, fmt.Errorf("upload intake blob: %w", err)
	}

	q := `
		INSERT INTO intake_records(id, reference, filename, content_type, size_bytes, page_count, storage_key, supplier, doc_type)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, reference, filename, content_type, size_bytes, page_count, storage_key, supplier, doc_type, confidence, issue_count, status, received_at, updated_at`

	insertArgs := []any{
		id,
		cmd.Reference,
		cmd.Filename,
		cmd.ContentType,
		int64(len(cmd.Data)),
		cmd.PageCount,
		key,
		cmd.Supplier,
		cmd.DocType,
	}

	rec, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Record, error) {
		return repository.QueryOne(ctx, tx, q, insertArgs, scanRecord)
	})

	if err != nil {
		if delErr := r.storage.Delete(ctx, key); delErr != nil {
			r.logger.Warn("compensating blob delete failed", "key", key, "error", delErr)
		}
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("intake record created", "id", rec.ID, "filename", rec.Filename)
	return &rec, nil
}

// CreateBatch uploads multiple files with bounded concurrency. Each file
// succeeds or fails independently; results are returned in input order.
func (r *repo) CreateBatch(ctx context.Context, cmds []CreateCommand) []BatchResult {
	results := make([]BatchResult, len(cmds))
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workerCount(len(cmds)))

	for i := range cmds {
		g.Go(func() error {
			if gctx.Err() != nil {
				return gctx.Err()
			}

			result := BatchResult{Filename: cmds[i].Filename}
			rec, err := r.Create(gctx, cmds[i])
			if err != nil {
				result.Error = err.Error()
			} else {
				result.Record = rec
			}

			mu.Lock()
			results[i] = result
			mu.Unlock()
			return nil
		})
	}

	// Per-file errors are reported in results; only context
	// cancellation propagates here.
	if err := g.Wait(); err != nil {
		for i := range results {
			if results[i].Record == nil && results[i].Error == "" {
				results[i] = BatchResult{Filename: cmds[i].Filename, Error: err.Error()}
			}
		}
	}

	return results
}

func (r *repo) Download(ctx context.Context, id uuid.UUID) (*storage.DownloadResult, error) {
	rec, err := r.Find(ctx, id)
	if err != nil {
		return nil, err
	}

	result, err := r.storage.Download(ctx, rec.StorageKey)
	if err != nil {
		return nil, fmt.Errorf("download intake blob %s: %w", rec.StorageKey, err)
	}
	return result, nil
}

func (r *repo) Delete(ctx context.Context, id uuid.UUID) error {
	rec, err := r.Find(ctx, id)
	if err != nil {
		return err
	}

	_, err = repository.WithTx(ctx, r.db, func(tx *sql.Tx) (struct{}, error) {
		if err := repository.ExecExpectOne(
			ctx, tx,
			"DELETE FROM intake_records WHERE id = $1",
			id,
		); err != nil {
			return struct{}{}, err
		}
		return struct{}{}, nil
	})

	if err != nil {
		return repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	if delErr := r.storage.Delete(ctx, rec.StorageKey); delErr != nil {
		r.logger.Warn(
			"blob delete failed after DB delete",
			"key", rec.StorageKey,
			"error", delErr,
		)
	}

	r.logger.Info("intake record deleted", "id", id)
	return nil
}

func workerCount(files int) int {
	return max(min(runtime.NumCPU(), files), 1)
}

func buildStorageKey(id uuid.UUID, filename string) string {
	return fmt.Sprintf("intake/%s/%s", id, filename)
}

func sanitizeFilename(name string) string {
	name = filepath.Base(name)
	if name == "." || name == "" {
		name = "document"
	}
	return url.PathEscape(name)
}
