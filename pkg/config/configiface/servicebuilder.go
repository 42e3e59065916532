//

package configiface

import "github.com/ajittgosavii/cloudidps/pkg/config"

// ServiceBuilder makes working with the ServiceBuilder easier
type ServiceBuilder interface {
	// WithSTS tells the builder to add an AWS STS service to the `ConfigurationBuilder`
	WithSTS() *config.ServiceBuilder
	// WithSNS tells the builder to add an AWS SNS service to the `ConfigurationBuilder`
	WithSNS() *config.ServiceBuilder
	// WithSQS tells the builder to add an AWS SQS service to the `ConfigurationBuilder`
	WithSQS() *config.ServiceBuilder
	// WithDynamoDB tells the builder to add an AWS DynamoDB service to the `ConfigurationBuilder`
	WithDynamoDB() *config.ServiceBuilder
	// WithS3 tells the builder to add an AWS S3 service to the `ConfigurationBuilder`
	WithS3() *config.ServiceBuilder
	// WithSES tells the builder to add an AWS SES service to the `ConfigurationBuilder`
	WithSES() *config.ServiceBuilder
	// WithSSM tells the builder to add an AWS SSM service to the `ConfigurationBuilder`
	WithSSM() *config.ServiceBuilder
	// WithAccountDataService tells the builder to add the account registry data service
	WithAccountDataService() *config.ServiceBuilder
	// WithRunDataService tells the builder to add the lifecycle run data service
	WithRunDataService() *config.ServiceBuilder
	// WithEventService tells the builder to add the event publishing service
	WithEventService() *config.ServiceBuilder
	// WithEmailService tells the builder to add the SES notification service
	WithEmailService() *config.ServiceBuilder
	// WithArtifactService tells the builder to add the artifact storage service
	WithArtifactService() *config.ServiceBuilder
	// WithProviderService tells the builder to add the AWS cloud provider service
	WithProviderService() *config.ServiceBuilder
	// WithCredentialsService tells the builder to add the credential broker
	WithCredentialsService() *config.ServiceBuilder
	// WithDispatcherService tells the builder to add the aggregation dispatcher
	WithDispatcherService() *config.ServiceBuilder
	// WithAccountService tells the builder to add the account registry service
	WithAccountService() *config.ServiceBuilder
	// WithLifecycleService tells the builder to add the workflow orchestrator
	WithLifecycleService() *config.ServiceBuilder
	// Build creates and returns a structue with AWS services
	Build() (*config.ConfigurationBuilder, error)
}
