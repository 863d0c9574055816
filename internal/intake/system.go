package intake

import (
	"context"

	"github.com/google/uuid"

	"github.com/jmcandrew/stevedore/pkg/pagination"
	"github.com/jmcandrew/stevedore/pkg/storage"
)

// System defines the public contract for intake domain operations.
type System interface {
	Handler(maxUploadSize int64) *Handler

	List(
		ctx context.Context,
		page pagination.PageRequest,
		filters Filters,
	) (*pagination.PageResult[Record], error)

	Find(ctx context.Context, id uuid.UUID) (*Record, error)
	Create(ctx context.Context, cmd CreateCommand) (*Record, error)
	CreateBatch(ctx context.Context, cmds []CreateCommand) []BatchResult
	Download(ctx context.Context, id uuid.UUID) (*storage.DownloadResult, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
