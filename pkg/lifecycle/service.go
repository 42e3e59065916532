package lifecycle

import (
	"context"
	"fmt"
	"time"

	"github.com/ajittgosavii/cloudidps/pkg/account"
	"github.com/ajittgosavii/cloudidps/pkg/account/accountiface"
	"github.com/ajittgosavii/cloudidps/pkg/credentials/credentialsiface"
	"github.com/ajittgosavii/cloudidps/pkg/dispatcher/dispatcheriface"
	"github.com/ajittgosavii/cloudidps/pkg/errors"
	"github.com/ajittgosavii/cloudidps/pkg/provider"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Writer put a run into the data store
type Writer interface {
	Write(run *Run, lastModifiedOn *int64) error
}

// SingleReader Reads run information from the data store
type SingleReader interface {
	Get(runID string) (*Run, error)
}

// MultipleReader reads multiple runs from the data store
type MultipleReader interface {
	List(query *Run) (*Runs, error)
}

// ReaderWriter includes the read and write data layer
type ReaderWriter interface {
	Writer
	SingleReader
	MultipleReader
}

// Eventer for publishing workflow events
type Eventer interface {
	WorkflowStarted(run *Run) error
	WorkflowSucceeded(run *Run) error
	WorkflowFailed(run *Run) error
}

// Notifier tells the account owner about run outcomes
type Notifier interface {
	Notify(ctx context.Context, to string, subject string, body string) error
	NotifyWithAttachment(ctx context.Context, to string, subject string, body string, filename string, attachment []byte) error
}

// Artifacter stores offboarding evidence artifacts
type Artifacter interface {
	StoreJSON(ctx context.Context, key string, value interface{}) (string, error)
	RenderCostReport(cost *provider.CostReport) ([]byte, error)
	StoreCostReport(ctx context.Context, key string, cost *provider.CostReport) (string, error)
}

// ServiceConfig has the orchestrator's tunables
type ServiceConfig struct {
	MgmtAccountID  string        `env:"MGMT_ACCOUNT_ID"`
	AccessRoleName string        `env:"ACCESS_ROLE_NAME" envDefault:"CloudIDP-Access"`
	CostReportDays int           `env:"COST_REPORT_DAYS" envDefault:"90"`
	InventoryTTL   time.Duration `env:"INVENTORY_TTL" envDefault:"60s"`
	MailCostReport bool          `env:"MAIL_COST_REPORT" envDefault:"false"`

	// AccessRoleExternalID is the fleet-wide trust-policy condition used
	// when an account record carries no external id of its own. Loaded
	// from the parameter store, never from plain env, so it carries no
	// env tag.
	AccessRoleExternalID string
}

// Service drives onboarding and offboarding as checkpointed step
// sequences. Steps run strictly sequentially within a run; runs for
// different accounts proceed in parallel.
type Service struct {
	dataSvc     ReaderWriter
	accountSvc  accountiface.Servicer
	credSvc     credentialsiface.Servicer
	dispatchSvc dispatcheriface.Servicer
	providerSvc provider.Provider
	eventSvc    Eventer
	notifySvc   Notifier
	artifactSvc Artifacter
	config      ServiceConfig
}

// startableFrom is the account status each workflow kind may start from.
// Failed accounts re-enter through ResumeWorkflow, never StartWorkflow.
var startableFrom = map[Kind]account.Status{
	KindOnboard:  account.StatusPending,
	KindOffboard: account.StatusActive,
}

// workflowStatus is the account status a running workflow of each kind
// holds while its steps execute.
var workflowStatus = map[Kind]account.Status{
	KindOnboard:  account.StatusOnboarding,
	KindOffboard: account.StatusOffboarding,
}

// StartWorkflow creates a run for the account and executes its steps
// from the beginning. It refuses to start when the account's status
// disallows the workflow or when a run of the same kind is still
// running or waiting on a resume.
func (s *Service) StartWorkflow(ctx context.Context, accountID string, kind Kind) (*Run, error) {
	acct, err := s.accountSvc.Get(accountID)
	if err != nil {
		return nil, err
	}

	from, ok := startableFrom[kind]
	if !ok {
		return nil, errors.NewValidation("run", fmt.Errorf("kind: %q is not a workflow kind", kind))
	}
	current := account.EmptyStatus
	if acct.Status != nil {
		current = *acct.Status
	}
	if current != from {
		return nil, errors.NewStateTransition("account", accountID,
			current.String(), workflowStatus[kind].String())
	}

	if err := s.assertNoActiveRun(accountID, kind); err != nil {
		return nil, err
	}

	run := s.newRun(accountID, kind)
	if err := s.save(run); err != nil {
		return nil, err
	}

	if _, err := s.accountSvc.SetStatus(accountID, workflowStatus[kind], "workflow started"); err != nil {
		return nil, err
	}
	if err := s.eventSvc.WorkflowStarted(run); err != nil {
		return nil, err
	}

	return s.execute(ctx, run, acct)
}

// ResumeWorkflow re-enters a Failed run at its failed step. Completed
// steps are never replayed.
func (s *Service) ResumeWorkflow(ctx context.Context, runID string) (*Run, error) {
	run, err := s.dataSvc.Get(runID)
	if err != nil {
		return nil, err
	}

	if run.Status == nil || *run.Status != StatusFailed {
		status := EmptyStatus
		if run.Status != nil {
			status = *run.Status
		}
		return nil, errors.NewStateTransition("run", runID, status.String(), StatusRunning.String())
	}

	acct, err := s.accountSvc.Get(*run.AccountID)
	if err != nil {
		return nil, err
	}

	// Clear the failed step so the executor re-attempts it
	if step := run.CurrentStep(); step != nil {
		step.Status = StepStatusPending.StepStatusPtr()
		step.ErrorKind = nil
		step.ErrorMessage = nil
		step.StartedAt = nil
		step.FinishedAt = nil
	}
	run.Status = StatusRunning.StatusPtr()
	if err := s.save(run); err != nil {
		return nil, err
	}

	if _, err := s.accountSvc.SetStatus(*run.AccountID, workflowStatus[*run.Kind], "workflow resumed"); err != nil {
		return nil, err
	}
	if err := s.eventSvc.WorkflowStarted(run); err != nil {
		return nil, err
	}

	return s.execute(ctx, run, acct)
}

// GetRun returns a run from ID
func (s *Service) GetRun(runID string) (*Run, error) {
	return s.dataSvc.Get(runID)
}

// ListRuns Get a list of runs based on a query
func (s *Service) ListRuns(query *Run) (*Runs, error) {
	return s.dataSvc.List(query)
}

// execute runs the remaining steps in declared order, checkpointing the
// run record around every step. Cancellation is honored only between
// steps: a started step runs to completion or hard failure.
func (s *Service) execute(ctx context.Context, run *Run, acct *account.Account) (*Run, error) {
	definitions := s.steps(*run.Kind)

	for i := int(*run.CurrentStepIndex); i < len(run.Steps); i++ {
		step := &run.Steps[i]
		if step.Status != nil && *step.Status == StepStatusDone {
			continue
		}

		index := int64(i)
		run.CurrentStepIndex = &index

		select {
		case <-ctx.Done():
			return s.failStep(ctx, run, acct, step,
				errors.NewCancelled(fmt.Sprintf("workflow cancelled before step %q", *step.Name), ctx.Err()))
		default:
		}

		startedAt := time.Now().Unix()
		step.StartedAt = &startedAt
		if err := s.save(run); err != nil {
			return nil, err
		}

		log := logrus.WithFields(logrus.Fields{
			"runId":     *run.ID,
			"accountId": *run.AccountID,
			"kind":      *run.Kind,
			"step":      *step.Name,
		})
		log.Info("executing workflow step")

		err := definitions[i].execute(ctx, acct)
		finishedAt := time.Now().Unix()
		step.FinishedAt = &finishedAt

		if err != nil {
			log.WithField("errorKind", errors.KindForError(err)).Error("workflow step failed")
			return s.failStep(ctx, run, acct, step, err)
		}

		step.Status = StepStatusDone.StepStatusPtr()
		next := index + 1
		run.CurrentStepIndex = &next
		if err := s.save(run); err != nil {
			return nil, err
		}
	}

	return s.complete(ctx, run, acct)
}

// failStep pins the run at the failing step and marks the account
// Failed so an operator can resume it.
func (s *Service) failStep(ctx context.Context, run *Run, acct *account.Account, step *Step, stepErr error) (*Run, error) {
	step.Status = StepStatusFailed.StepStatusPtr()
	step.ErrorKind = ptrString(errors.KindForError(stepErr).String())
	step.ErrorMessage = ptrString(stepErr.Error())
	run.Status = StatusFailed.StatusPtr()

	if err := s.save(run); err != nil {
		return nil, err
	}
	if _, err := s.accountSvc.SetStatus(*run.AccountID, account.StatusFailed, *step.Name); err != nil {
		return nil, err
	}
	if err := s.eventSvc.WorkflowFailed(run); err != nil {
		return nil, err
	}
	s.notifyOwner(ctx, run, acct,
		fmt.Sprintf("CloudIDP %s workflow failed for account %s", *run.Kind, *run.AccountID),
		fmt.Sprintf("Step %q failed: %s. Resume the run once the cause is fixed.", *step.Name, stepErr.Error()))

	return run, errors.NewWorkflowStep(*step.Name, stepErr)
}

// complete marks the run Succeeded. The final step of each sequence has
// already transitioned the account's status.
func (s *Service) complete(ctx context.Context, run *Run, acct *account.Account) (*Run, error) {
	run.Status = StatusSucceeded.StatusPtr()
	finishedOn := time.Now().Unix()
	run.FinishedOn = &finishedOn
	if err := s.save(run); err != nil {
		return nil, err
	}

	if err := s.eventSvc.WorkflowSucceeded(run); err != nil {
		return nil, err
	}
	s.notifyOwner(ctx, run, acct,
		fmt.Sprintf("CloudIDP %s workflow succeeded for account %s", *run.Kind, *run.AccountID),
		fmt.Sprintf("All %d steps completed.", len(run.Steps)))

	return run, nil
}

// assertNoActiveRun rejects a start while a run of the same kind is
// Running or waiting on a resume. Enforced through the run query, not a
// table lock.
func (s *Service) assertNoActiveRun(accountID string, kind Kind) error {
	runs, err := s.dataSvc.List(&Run{AccountID: &accountID, Kind: kind.KindPtr()})
	if err != nil {
		return err
	}
	for _, existing := range *runs {
		if existing.Status == nil {
			continue
		}
		if *existing.Status == StatusRunning || *existing.Status == StatusFailed {
			return errors.NewConflict("run", *existing.ID, errors.ErrWorkflowAlreadyActive)
		}
	}
	return nil
}

func (s *Service) newRun(accountID string, kind Kind) *Run {
	id := uuid.New().String()
	index := int64(0)
	definitions := s.steps(kind)

	steps := make([]Step, 0, len(definitions))
	for _, definition := range definitions {
		name := definition.name
		steps = append(steps, Step{
			Name:   &name,
			Status: StepStatusPending.StepStatusPtr(),
		})
	}

	return &Run{
		ID:               &id,
		AccountID:        &accountID,
		Kind:             kind.KindPtr(),
		Status:           StatusRunning.StatusPtr(),
		Steps:            steps,
		CurrentStepIndex: &index,
	}
}

// save validates and checkpoints the run with optimistic concurrency on
// LastModifiedOn.
func (s *Service) save(run *Run) error {
	var lastModifiedOn *int64
	now := time.Now().Unix()
	if run.LastModifiedOn == nil {
		run.CreatedOn = &now
		run.LastModifiedOn = &now
	} else {
		lastModifiedOn = run.LastModifiedOn
		run.LastModifiedOn = &now
	}

	if err := run.Validate(); err != nil {
		return err
	}
	return s.dataSvc.Write(run, lastModifiedOn)
}

// notifyOwner sends a best-effort mail; a notification failure never
// changes a run's outcome.
func (s *Service) notifyOwner(ctx context.Context, run *Run, acct *account.Account, subject string, body string) {
	if acct.OwnerEmail == nil {
		return
	}
	if err := s.notifySvc.Notify(ctx, *acct.OwnerEmail, subject, body); err != nil {
		logrus.WithFields(logrus.Fields{
			"runId":     *run.ID,
			"accountId": *run.AccountID,
		}).WithError(err).Warn("owner notification failed")
	}
}

func ptrString(s string) *string {
	return &s
}

// NewServiceInput Input for creating a new Service
type NewServiceInput struct {
	DataSvc     ReaderWriter
	AccountSvc  accountiface.Servicer
	CredSvc     credentialsiface.Servicer
	DispatchSvc dispatcheriface.Servicer
	ProviderSvc provider.Provider
	EventSvc    Eventer
	NotifySvc   Notifier
	ArtifactSvc Artifacter
	Config      ServiceConfig
}

// NewService creates a new instance of the Service
func NewService(input NewServiceInput) *Service {
	return &Service{
		dataSvc:     input.DataSvc,
		accountSvc:  input.AccountSvc,
		credSvc:     input.CredSvc,
		dispatchSvc: input.DispatchSvc,
		providerSvc: input.ProviderSvc,
		eventSvc:    input.EventSvc,
		notifySvc:   input.NotifySvc,
		artifactSvc: input.ArtifactSvc,
		config:      input.Config,
	}
}
