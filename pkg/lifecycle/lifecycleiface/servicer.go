//

package lifecycleiface

import (
	"context"

	"github.com/ajittgosavii/cloudidps/pkg/lifecycle"
)

// Servicer makes working with the Lifecycle Service struct easier
type Servicer interface {
	// StartWorkflow creates and executes a run for the account
	StartWorkflow(ctx context.Context, accountID string, kind lifecycle.Kind) (*lifecycle.Run, error)
	// ResumeWorkflow re-enters a Failed run at its failed step
	ResumeWorkflow(ctx context.Context, runID string) (*lifecycle.Run, error)
	// GetRun returns a run from ID
	GetRun(runID string) (*lifecycle.Run, error)
	// ListRuns Get a list of runs based on a query
	ListRuns(query *lifecycle.Run) (*lifecycle.Runs, error)
}
