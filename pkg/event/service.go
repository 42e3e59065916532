package event

import (
	"github.com/ajittgosavii/cloudidps/pkg/account"
	"github.com/ajittgosavii/cloudidps/pkg/lifecycle"
	"github.com/aws/aws-sdk-go/service/sns/snsiface"
	"github.com/aws/aws-sdk-go/service/sqs/sqsiface"
)

// NewServiceInput are the items required to create a new Eventer service
type NewServiceInput struct {
	SnsClient                   snsiface.SNSAPI
	SqsClient                   sqsiface.SQSAPI
	AccountRegisteredTopicArn   string `env:"ACCOUNT_REGISTERED_TOPIC_ARN" envDefault:"arn:aws:sns:us-east-1:123456789012:account-registered"`
	AccountStatusChangeTopicArn string `env:"ACCOUNT_STATUS_CHANGE_TOPIC_ARN" envDefault:"arn:aws:sns:us-east-1:123456789012:account-status-change"`
	AccountDeregisteredTopicArn string `env:"ACCOUNT_DEREGISTERED_TOPIC_ARN" envDefault:"arn:aws:sns:us-east-1:123456789012:account-deregistered"`
	WorkflowStartedTopicArn     string `env:"WORKFLOW_STARTED_TOPIC_ARN" envDefault:"arn:aws:sns:us-east-1:123456789012:workflow-started"`
	WorkflowSucceededTopicArn   string `env:"WORKFLOW_SUCCEEDED_TOPIC_ARN" envDefault:"arn:aws:sns:us-east-1:123456789012:workflow-succeeded"`
	WorkflowFailedTopicArn      string `env:"WORKFLOW_FAILED_TOPIC_ARN" envDefault:"arn:aws:sns:us-east-1:123456789012:workflow-failed"`
	WorkflowFailedQueueURL      string `env:"WORKFLOW_FAILED_SQS_URL" envDefault:"DefaultWorkflowFailedSQSUrl"`
}

// Service is the public interface for publishing events
type Service struct {
	accountCreate     []Publisher
	accountUpdate     []Publisher
	accountDelete     []Publisher
	workflowStarted   []Publisher
	workflowSucceeded []Publisher
	workflowFailed    []Publisher
}

func (e *Service) publish(i interface{}, p ...Publisher) error {
	for _, n := range p {
		err := n.Publish(i)
		if err != nil {
			return err
		}
	}
	return nil
}

// AccountCreate publish events
func (e *Service) AccountCreate(data *account.Account) error {
	return e.publish(data, e.accountCreate...)
}

// AccountUpdate publish events
func (e *Service) AccountUpdate(data *account.Account) error {
	return e.publish(data, e.accountUpdate...)
}

// AccountDelete publish events
func (e *Service) AccountDelete(data *account.Account) error {
	return e.publish(data, e.accountDelete...)
}

// WorkflowStarted publish events
func (e *Service) WorkflowStarted(run *lifecycle.Run) error {
	return e.publish(run, e.workflowStarted...)
}

// WorkflowSucceeded publish events
func (e *Service) WorkflowSucceeded(run *lifecycle.Run) error {
	return e.publish(run, e.workflowSucceeded...)
}

// WorkflowFailed publish events
func (e *Service) WorkflowFailed(run *lifecycle.Run) error {
	return e.publish(run, e.workflowFailed...)
}

// NewService creates a new instance of Eventer
func NewService(input NewServiceInput) (*Service, error) {
	newEventer := &Service{}

	//////////////////////////////////////////////////////////////////////
	// Account Registry Eventing - SNS
	//////////////////////////////////////////////////////////////////////
	registeredAccountSns, err := NewSnsEvent(input.SnsClient, input.AccountRegisteredTopicArn)
	if err != nil {
		return nil, err
	}

	statusChangeAccountSns, err := NewSnsEvent(input.SnsClient, input.AccountStatusChangeTopicArn)
	if err != nil {
		return nil, err
	}

	deregisteredAccountSns, err := NewSnsEvent(input.SnsClient, input.AccountDeregisteredTopicArn)
	if err != nil {
		return nil, err
	}

	newEventer.accountCreate = []Publisher{
		registeredAccountSns,
	}
	newEventer.accountUpdate = []Publisher{
		statusChangeAccountSns,
	}
	newEventer.accountDelete = []Publisher{
		deregisteredAccountSns,
	}

	//////////////////////////////////////////////////////////////////////
	// Workflow Eventing - SNS
	//////////////////////////////////////////////////////////////////////
	startedWorkflowSns, err := NewSnsEvent(input.SnsClient, input.WorkflowStartedTopicArn)
	if err != nil {
		return nil, err
	}

	succeededWorkflowSns, err := NewSnsEvent(input.SnsClient, input.WorkflowSucceededTopicArn)
	if err != nil {
		return nil, err
	}

	failedWorkflowSns, err := NewSnsEvent(input.SnsClient, input.WorkflowFailedTopicArn)
	if err != nil {
		return nil, err
	}

	//////////////////////////////////////////////////////////////////////
	// Workflow Eventing - SQS
	//////////////////////////////////////////////////////////////////////
	failedWorkflowSqs, err := NewSqsEvent(input.SqsClient, input.WorkflowFailedQueueURL)
	if err != nil {
		return nil, err
	}

	newEventer.workflowStarted = []Publisher{
		startedWorkflowSns,
	}
	newEventer.workflowSucceeded = []Publisher{
		succeededWorkflowSns,
	}
	newEventer.workflowFailed = []Publisher{
		failedWorkflowSns,
		failedWorkflowSqs,
	}

	return newEventer, nil
}
