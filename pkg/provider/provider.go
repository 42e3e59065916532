// Package provider defines the capability surface the engine needs from a
// cloud provider. Engine services depend on these interfaces only; the
// concrete AWS implementation lives in provider/awscloud.
package provider

import (
	"context"
)

// RoleAssumer mints short-lived credentials for a registered account.
type RoleAssumer interface {
	AssumeRole(ctx context.Context, input *AssumeRoleInput) (*RoleCredentials, error)
}

// IdentityVerifier checks that credentials actually belong to the account
// they claim to.
type IdentityVerifier interface {
	VerifyAccess(ctx context.Context, creds Value, accountID string) error
}

// ResourceLister enumerates resources of one kind in one region.
type ResourceLister interface {
	ListResources(ctx context.Context, creds Value, input *ListResourcesInput) (*ResourcePage, error)
}

// CostReader reads spend for an account over a time window.
type CostReader interface {
	GetCost(ctx context.Context, creds Value, input *CostInput) (*CostReport, error)
}

// ServiceEnabler turns managed provider services on and off. Enabling an
// already-enabled service must not error.
type ServiceEnabler interface {
	EnableService(ctx context.Context, creds Value, input *ServiceInput) error
	DisableService(ctx context.Context, creds Value, input *ServiceInput) error
}

// AccessRoleManager maintains the dedicated access role inside an account.
type AccessRoleManager interface {
	EnsureAccessRole(ctx context.Context, creds Value, input *AccessRoleInput) (*AccessRole, error)
	DeleteAccessRole(ctx context.Context, creds Value, input *AccessRoleInput) error
}

// TagPolicyApplier applies the organization's standard tags.
type TagPolicyApplier interface {
	ApplyTagPolicy(ctx context.Context, creds Value, input *TagPolicyInput) error
}

// FindingsExporter pulls current security findings for archival.
type FindingsExporter interface {
	ExportFindings(ctx context.Context, creds Value, input *ExportInput) (*FindingsExport, error)
}

// AuditLogArchiver records where an account's audit trail lives so the
// evidence survives offboarding.
type AuditLogArchiver interface {
	ArchiveAuditLogs(ctx context.Context, creds Value, input *ArchiveInput) (*ArchiveReceipt, error)
}

// Provider is the full capability set an engine deployment runs against.
type Provider interface {
	RoleAssumer
	IdentityVerifier
	ResourceLister
	CostReader
	ServiceEnabler
	AccessRoleManager
	TagPolicyApplier
	FindingsExporter
	AuditLogArchiver
	Name() string
}
