// Package awscloud implements the provider capability surface with
// aws-sdk-go service clients built per call from session credentials.
package awscloud

import (
	"github.com/ajittgosavii/cloudidps/pkg/awsiface"

	"github.com/aws/aws-sdk-go/aws/session"
)

// ServiceConfig has specific static values for the service configuration
type ServiceConfig struct {
	MgmtAccountID      string `env:"MGMT_ACCOUNT_ID"`
	AccessRoleName     string `env:"ACCESS_ROLE_NAME" envDefault:"CloudIDP-Access"`
	AccessRolePolicy   string `env:"ACCESS_ROLE_POLICY" envDefault:"arn:aws:iam::aws:policy/ReadOnlyAccess"`
	SessionDuration    int64  `env:"SESSION_DURATION" envDefault:"3600"` // 3600 is the role's minimum maximum
	AuditBucket        string `env:"AUDIT_BUCKET" envDefault:"cloudidp-audit-logs"`
	AuditTrailName     string `env:"AUDIT_TRAIL_NAME" envDefault:"cloudidp-audit"`
	ConfigRecorderName string `env:"CONFIG_RECORDER_NAME" envDefault:"default"`
}

// Service implements the engine capability surface against AWS.
type Service struct {
	client clienter
	config ServiceConfig
}

// Name identifies the provider implementation.
func (s *Service) Name() string {
	return "aws"
}

// NewServiceInput are the items needed to create a new service
type NewServiceInput struct {
	Session *session.Session
	Sts     awsiface.STSAPI
	Config  ServiceConfig
}

// NewService creates a new AWS provider service
func NewService(input NewServiceInput) (*Service, error) {
	return &Service{
		client: &client{
			session: input.Session,
			sts:     input.Sts,
		},
		config: input.Config,
	}, nil
}
