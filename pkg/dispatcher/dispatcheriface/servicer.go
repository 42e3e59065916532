//

package dispatcheriface

import (
	"context"

	"github.com/ajittgosavii/cloudidps/pkg/dispatcher"
)

// Servicer makes working with the Dispatcher Service struct easier
type Servicer interface {
	// Aggregate runs a query over every account × region unit
	Aggregate(ctx context.Context, input *dispatcher.Input) (*dispatcher.Result, error)
}
