package provider

import "fmt"

// ResourceKind is a class of inventoried resource.
type ResourceKind string

const (
	// ResourceEC2 compute instances
	ResourceEC2 ResourceKind = "EC2"
	// ResourceRDS managed database instances
	ResourceRDS ResourceKind = "RDS"
	// ResourceS3 object storage buckets
	ResourceS3 ResourceKind = "S3"
	// ResourceLambda serverless functions
	ResourceLambda ResourceKind = "Lambda"
	// ResourceDynamoDB key-value tables
	ResourceDynamoDB ResourceKind = "DynamoDB"
)

// ValidResourceKinds has the resource kinds the engine inventories.
var ValidResourceKinds = [5]ResourceKind{
	ResourceEC2,
	ResourceRDS,
	ResourceS3,
	ResourceLambda,
	ResourceDynamoDB,
}

// ResourceCost is the aggregate kind for account spend queries. It is
// not an inventoried resource; spend is read once per account.
const ResourceCost ResourceKind = "Cost"

// GlobalRegion is where region-less provider APIs are addressed.
const GlobalRegion = "us-east-1"

// String returns the string value of the kind
func (k ResourceKind) String() string {
	return string(k)
}

// IsGlobal is true for kinds that are not region scoped. Their listing is
// pinned to GlobalRegion so the fleet does not repeat it per region.
func (k ResourceKind) IsGlobal() bool {
	return k == ResourceS3 || k == ResourceCost
}

// ParseResourceKind - parses the string into a resource kind
func ParseResourceKind(value string) (ResourceKind, error) {
	for _, k := range ValidResourceKinds {
		if string(k) == value {
			return k, nil
		}
	}
	return ResourceKind(""), fmt.Errorf("Cannot parse value %s", value)
}

// ServiceKind is a managed provider service the lifecycle controls.
type ServiceKind string

const (
	// ServiceAuditTrail API call auditing (CloudTrail)
	ServiceAuditTrail ServiceKind = "audit-trail"
	// ServiceConfigCompliance configuration recording (Config)
	ServiceConfigCompliance ServiceKind = "config-compliance"
	// ServiceSecurityFindings finding aggregation (Security Hub)
	ServiceSecurityFindings ServiceKind = "security-findings"
	// ServiceThreatDetection threat detection (GuardDuty)
	ServiceThreatDetection ServiceKind = "threat-detection"
	// ServiceCostReporting spend reporting (Cost Explorer)
	ServiceCostReporting ServiceKind = "cost-reporting"
)

// ValidServiceKinds has the managed service kinds
var ValidServiceKinds = [5]ServiceKind{
	ServiceAuditTrail,
	ServiceConfigCompliance,
	ServiceSecurityFindings,
	ServiceThreatDetection,
	ServiceCostReporting,
}

// String returns the string value of the kind
func (k ServiceKind) String() string {
	return string(k)
}

// IsGlobal is true for services addressed through GlobalRegion.
func (k ServiceKind) IsGlobal() bool {
	return k == ServiceCostReporting
}

// ParseServiceKind - parses the string into a service kind
func ParseServiceKind(value string) (ServiceKind, error) {
	for _, k := range ValidServiceKinds {
		if string(k) == value {
			return k, nil
		}
	}
	return ServiceKind(""), fmt.Errorf("Cannot parse value %s", value)
}
