// Package dispatcher fans a query out across the account and region
// matrix with bounded concurrency. Every unit carries its own outcome:
// an aggregate never fails wholesale because one account is broken.
package dispatcher

import (
	"context"
	"sync"
	"time"

	"github.com/ajittgosavii/cloudidps/pkg/account"
	"github.com/ajittgosavii/cloudidps/pkg/cache"
	"github.com/ajittgosavii/cloudidps/pkg/credentials"
	"github.com/ajittgosavii/cloudidps/pkg/credentials/credentialsiface"
	"github.com/ajittgosavii/cloudidps/pkg/errors"
	"github.com/ajittgosavii/cloudidps/pkg/provider"

	"github.com/sirupsen/logrus"
	"go.uber.org/ratelimit"
)

// Unit is one account/region cell of the fan-out matrix.
type Unit struct {
	AccountID string `json:"accountId"`
	Region    string `json:"region"`
}

// QueryFunc executes the provider call for one unit.
type QueryFunc func(ctx context.Context, creds *credentials.Credentials, unit Unit) (interface{}, error)

// Input describes one aggregate query. Scope distinguishes cached
// results for the same kind that differ by query parameters, such as
// a cost report's date window.
type Input struct {
	Accounts     account.Accounts
	Regions      []string // optional narrowing of each account's regions
	ResourceKind provider.ResourceKind
	Scope        string
	Query        QueryFunc
	TTL          time.Duration
	Deadline     time.Time // zero means no deadline
}

// Failure records why one unit produced no row.
type Failure struct {
	Kind    errors.Kind `json:"kind"`
	Message string      `json:"message"`
}

// Result separates succeeded rows from failed units so callers can
// render a usable partial view of an unreachable fleet.
type Result struct {
	Rows    map[Unit]interface{}
	Failed  map[Unit]Failure
	Partial bool
}

// ServiceConfig has the dispatcher's tunables. Workers bounds the
// outbound call rate independently of fleet size.
type ServiceConfig struct {
	Workers          int `env:"DISPATCHER_WORKERS" envDefault:"10"`
	MaxRatePerSecond int `env:"DISPATCHER_MAX_RATE_PER_SECOND" envDefault:"0"`
}

// Service executes aggregate queries through a fixed-size worker pool,
// brokering credentials per account and memoizing rows in the result
// cache.
type Service struct {
	credSvc  credentialsiface.Servicer
	cacheSvc *cache.Cache
	limiter  ratelimit.Limiter
	config   ServiceConfig
}

type workUnit struct {
	unit Unit
	acct *account.Account
}

// Aggregate runs the query over every account × region unit. Units not
// yet started when the deadline passes are recorded as Cancelled, never
// silently dropped.
func (s *Service) Aggregate(ctx context.Context, input *Input) (*Result, error) {
	if input.Query == nil {
		return nil, errors.NewBadRequest("aggregate requires a query function")
	}

	var cancel context.CancelFunc
	if !input.Deadline.IsZero() {
		ctx, cancel = context.WithDeadline(ctx, input.Deadline)
		defer cancel()
	}

	units := buildUnits(input)

	result := &Result{
		Rows:   map[Unit]interface{}{},
		Failed: map[Unit]Failure{},
	}
	var mu sync.Mutex

	queue := make(chan workUnit)
	var wg sync.WaitGroup
	for i := 0; i < s.config.Workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for w := range queue {
				s.execute(ctx, input, w, result, &mu)
			}
		}()
	}

	for _, w := range units {
		queue <- w
	}
	close(queue)
	wg.Wait()

	result.Partial = len(result.Failed) > 0
	return result, nil
}

// execute runs one unit and records its row or failure. A unit whose
// context is already done is marked Cancelled without starting.
func (s *Service) execute(ctx context.Context, input *Input, w workUnit, result *Result, mu *sync.Mutex) {
	log := logrus.WithFields(logrus.Fields{
		"accountId":    w.unit.AccountID,
		"region":       w.unit.Region,
		"resourceKind": input.ResourceKind,
	})

	select {
	case <-ctx.Done():
		mu.Lock()
		result.Failed[w.unit] = Failure{
			Kind:    errors.KindCancelled,
			Message: "deadline passed before the unit started",
		}
		mu.Unlock()
		log.Info("skipped aggregate unit")
		return
	default:
	}

	s.limiter.Take()

	row, err := s.query(ctx, input, w)
	mu.Lock()
	if err != nil {
		result.Failed[w.unit] = Failure{
			Kind:    errors.KindForError(err),
			Message: err.Error(),
		}
	} else {
		result.Rows[w.unit] = row
	}
	mu.Unlock()

	if err != nil {
		log.WithField("errorKind", errors.KindForError(err)).Warn("aggregate unit failed")
	}
}

func (s *Service) query(ctx context.Context, input *Input, w workUnit) (interface{}, error) {
	creds, err := s.credSvc.Credentials(ctx, w.acct)
	if err != nil {
		return nil, err
	}

	key := cache.Key{
		AccountID:    w.unit.AccountID,
		Region:       w.unit.Region,
		ResourceKind: input.ResourceKind,
		Scope:        input.Scope,
	}
	return s.cacheSvc.Fetch(ctx, key, input.TTL, func(ctx context.Context) (interface{}, error) {
		return input.Query(ctx, creds, w.unit)
	})
}

// buildUnits crosses the accounts with their regions, narrowed to the
// requested regions when given. Global resource kinds collapse to one
// unit per account.
func buildUnits(input *Input) []workUnit {
	requested := map[string]bool{}
	for _, r := range input.Regions {
		requested[r] = true
	}

	var units []workUnit
	for i := range input.Accounts {
		acct := &input.Accounts[i]
		if acct.ID == nil {
			continue
		}

		if input.ResourceKind.IsGlobal() {
			units = append(units, workUnit{
				unit: Unit{AccountID: *acct.ID, Region: provider.GlobalRegion},
				acct: acct,
			})
			continue
		}

		for _, region := range acct.Regions {
			if len(requested) > 0 && !requested[region] {
				continue
			}
			units = append(units, workUnit{
				unit: Unit{AccountID: *acct.ID, Region: region},
				acct: acct,
			})
		}
	}
	return units
}

// NewServiceInput Input for creating a new Service
type NewServiceInput struct {
	CredSvc  credentialsiface.Servicer
	CacheSvc *cache.Cache
	Config   ServiceConfig
}

// NewService creates a new instance of the Service
func NewService(input NewServiceInput) *Service {
	config := input.Config
	if config.Workers <= 0 {
		config.Workers = 10
	}

	limiter := ratelimit.NewUnlimited()
	if config.MaxRatePerSecond > 0 {
		limiter = ratelimit.New(config.MaxRatePerSecond)
	}

	return &Service{
		credSvc:  input.CredSvc,
		cacheSvc: input.CacheSvc,
		limiter:  limiter,
		config:   config,
	}
}
