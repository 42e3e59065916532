//

package dataiface

import (
	"github.com/ajittgosavii/cloudidps/pkg/lifecycle"
)

// RunData makes working with the lifecycle run Data Layer easier
type RunData interface {
	// Write the Run record in DynamoDB
	// lastModifiedOn is the original lastModifiedOn; writes race-guard on it
	Write(run *lifecycle.Run, lastModifiedOn *int64) error
	// Get the Run record by ID
	Get(runID string) (*lifecycle.Run, error)
	// List Get a list of runs based on a query
	List(query *lifecycle.Run) (*lifecycle.Runs, error)
}
