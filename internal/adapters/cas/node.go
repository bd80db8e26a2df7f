package cas

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/reach/internal/core/ports"
)

// NodeID is the unique identifier for the report store factory Graft node.
const NodeID graft.ID = "adapter.report_store"

func init() {
	graft.Register(graft.Node[ports.ReportStoreFactory]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ReportStoreFactory, error) {
			return Open, nil
		},
	})
}
