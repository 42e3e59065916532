package provider

import (
	"time"

	"github.com/ajittgosavii/cloudidps/pkg/arn"
)

// Value is the opaque credential material for one provider session.
// It is held in memory only and must never be persisted or logged.
type Value struct {
	AccessKeyID     string `json:"-"`
	SecretAccessKey string `json:"-"`
	SessionToken    string `json:"-"`
}

// AssumeRoleInput describes the role to assume for an account session.
type AssumeRoleInput struct {
	AccountID   *string
	RoleArn     *arn.ARN
	ExternalID  *string
	SessionName string
	Duration    int64
}

// RoleCredentials is the result of a role assumption.
type RoleCredentials struct {
	Value     Value
	ExpiresAt time.Time
}

// ListResourcesInput scopes a resource listing to one region and kind.
type ListResourcesInput struct {
	AccountID  string
	Region     string
	Kind       ResourceKind
	MaxResults *int64
	NextToken  *string
}

// Resource is one normalized inventory row.
type Resource struct {
	ID        *string           `json:"id,omitempty"`
	Kind      ResourceKind      `json:"kind,omitempty"`
	AccountID *string           `json:"accountId,omitempty"`
	Region    *string           `json:"region,omitempty"`
	Name      *string           `json:"name,omitempty"`
	State     *string           `json:"state,omitempty"`
	Tags      map[string]string `json:"tags,omitempty"`
}

// ResourcePage is one page of inventory rows.
type ResourcePage struct {
	Resources []Resource `json:"resources"`
	NextToken *string    `json:"nextToken,omitempty"`
}

// CostInput is the time window for a cost read. Granularity follows the
// provider's reporting API; the engine always asks for monthly buckets.
type CostInput struct {
	AccountID   string
	Start       time.Time
	End         time.Time
	Granularity string
}

// CostReport is the spend for one account over a window, broken out by
// provider service.
type CostReport struct {
	AccountID *string            `json:"accountId,omitempty"`
	Start     *time.Time         `json:"start,omitempty"`
	End       *time.Time         `json:"end,omitempty"`
	Amount    *float64           `json:"amount,omitempty"`
	Unit      *string            `json:"unit,omitempty"`
	ByService map[string]float64 `json:"byService,omitempty"`
}

// ServiceInput names a managed service in a region of an account.
type ServiceInput struct {
	AccountID string
	Kind      ServiceKind
	Region    string
}

// AccessRoleInput describes the dedicated access role for an account.
type AccessRoleInput struct {
	AccountID      string
	RoleName       string
	TrustAccountID string
	ExternalID     string
}

// AccessRole is the ensured role inside the account.
type AccessRole struct {
	RoleArn *arn.ARN
	Created bool
}

// TagPolicyInput carries the standard tags to stamp on the access role.
type TagPolicyInput struct {
	AccountID string
	RoleName  string
	Tags      map[string]string
}

// ExportInput scopes a findings export to one region.
type ExportInput struct {
	AccountID   string
	Region      string
	MaxFindings *int64
}

// Finding is one normalized security finding.
type Finding struct {
	ID        *string `json:"id,omitempty"`
	Title     *string `json:"title,omitempty"`
	Severity  *string `json:"severity,omitempty"`
	UpdatedAt *string `json:"updatedAt,omitempty"`
}

// FindingsExport is the archival set of findings for one region.
type FindingsExport struct {
	AccountID *string   `json:"accountId,omitempty"`
	Region    *string   `json:"region,omitempty"`
	Findings  []Finding `json:"findings"`
}

// ArchiveInput scopes an audit log archive to one region.
type ArchiveInput struct {
	AccountID string
	Region    string
}

// Trail records where one audit trail delivers its logs.
type Trail struct {
	Name     *string `json:"name,omitempty"`
	S3Bucket *string `json:"s3Bucket,omitempty"`
}

// ArchiveReceipt records the audit trail locations captured during
// offboarding.
type ArchiveReceipt struct {
	AccountID *string `json:"accountId,omitempty"`
	Region    *string `json:"region,omitempty"`
	Trails    []Trail `json:"trails"`
}
