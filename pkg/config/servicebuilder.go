package config

import (
	"log"
	"reflect"
	"runtime"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbiface"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
	"github.com/aws/aws-sdk-go/service/ses"
	"github.com/aws/aws-sdk-go/service/ses/sesiface"
	"github.com/aws/aws-sdk-go/service/sns"
	"github.com/aws/aws-sdk-go/service/sns/snsiface"
	"github.com/aws/aws-sdk-go/service/sqs"
	"github.com/aws/aws-sdk-go/service/sqs/sqsiface"
	"github.com/aws/aws-sdk-go/service/ssm"
	"github.com/aws/aws-sdk-go/service/ssm/ssmiface"
	"github.com/aws/aws-sdk-go/service/sts"
	"github.com/aws/aws-sdk-go/service/sts/stsiface"

	"github.com/ajittgosavii/cloudidps/pkg/account"
	"github.com/ajittgosavii/cloudidps/pkg/account/accountiface"
	"github.com/ajittgosavii/cloudidps/pkg/cache"
	"github.com/ajittgosavii/cloudidps/pkg/credentials"
	"github.com/ajittgosavii/cloudidps/pkg/credentials/credentialsiface"
	"github.com/ajittgosavii/cloudidps/pkg/data"
	"github.com/ajittgosavii/cloudidps/pkg/dispatcher"
	"github.com/ajittgosavii/cloudidps/pkg/dispatcher/dispatcheriface"
	"github.com/ajittgosavii/cloudidps/pkg/email"
	"github.com/ajittgosavii/cloudidps/pkg/event"
	"github.com/ajittgosavii/cloudidps/pkg/lifecycle"
	"github.com/ajittgosavii/cloudidps/pkg/lifecycle/lifecycleiface"
	"github.com/ajittgosavii/cloudidps/pkg/provider"
	"github.com/ajittgosavii/cloudidps/pkg/provider/awscloud"
	"github.com/ajittgosavii/cloudidps/pkg/report"
)

// AWSSessionKey is the key for the configuration for the AWS session
const AWSSessionKey = "AWSSession"

// ServiceConfigurationError is returned when a service cannot be properly configured.
type ServiceConfigurationError error

// createrFunc internal functions for handling the creation of the services
type createrFunc func(config *ConfigurationBuilder) error

// ServiceBuilder is the default implementation of the `ServiceBuilder`
type ServiceBuilder struct {
	handlers   []createrFunc
	AWSSession *session.Session
	Config     *ConfigurationBuilder
}

// WithSTS tells the builder to add an AWS STS service to the `ConfigurationBuilder`
func (bldr *ServiceBuilder) WithSTS() *ServiceBuilder {
	bldr.handlers = append(bldr.handlers, bldr.createSTS)
	return bldr
}

// WithSNS tells the builder to add an AWS SNS service to the `ConfigurationBuilder`
func (bldr *ServiceBuilder) WithSNS() *ServiceBuilder {
	bldr.handlers = append(bldr.handlers, bldr.createSNS)
	return bldr
}

// WithSQS tells the builder to add an AWS SQS service to the `ConfigurationBuilder`
func (bldr *ServiceBuilder) WithSQS() *ServiceBuilder {
	bldr.handlers = append(bldr.handlers, bldr.createSQS)
	return bldr
}

// WithDynamoDB tells the builder to add an AWS DynamoDB service to the `ConfigurationBuilder`
func (bldr *ServiceBuilder) WithDynamoDB() *ServiceBuilder {
	bldr.handlers = append(bldr.handlers, bldr.createDynamoDB)
	return bldr
}

// WithS3 tells the builder to add an AWS S3 service to the `ConfigurationBuilder`
func (bldr *ServiceBuilder) WithS3() *ServiceBuilder {
	bldr.handlers = append(bldr.handlers, bldr.createS3)
	return bldr
}

// WithSES tells the builder to add an AWS SES service to the `ConfigurationBuilder`
func (bldr *ServiceBuilder) WithSES() *ServiceBuilder {
	bldr.handlers = append(bldr.handlers, bldr.createSES)
	return bldr
}

// WithSSM tells the builder to add an AWS SSM service to the `ConfigurationBuilder`
func (bldr *ServiceBuilder) WithSSM() *ServiceBuilder {
	bldr.handlers = append(bldr.handlers, bldr.createSSM)
	return bldr
}

// WithAccountDataService tells the builder to add the account registry data service
func (bldr *ServiceBuilder) WithAccountDataService() *ServiceBuilder {
	bldr.handlers = append(bldr.handlers, bldr.createAccountDataService)
	return bldr
}

// WithRunDataService tells the builder to add the lifecycle run data service
func (bldr *ServiceBuilder) WithRunDataService() *ServiceBuilder {
	bldr.handlers = append(bldr.handlers, bldr.createRunDataService)
	return bldr
}

// WithEventService tells the builder to add the event publishing service
func (bldr *ServiceBuilder) WithEventService() *ServiceBuilder {
	bldr.handlers = append(bldr.handlers, bldr.createEventService)
	return bldr
}

// WithEmailService tells the builder to add the SES notification service
func (bldr *ServiceBuilder) WithEmailService() *ServiceBuilder {
	bldr.handlers = append(bldr.handlers, bldr.createEmailService)
	return bldr
}

// WithArtifactService tells the builder to add the artifact storage service
func (bldr *ServiceBuilder) WithArtifactService() *ServiceBuilder {
	bldr.handlers = append(bldr.handlers, bldr.createArtifactService)
	return bldr
}

// WithProviderService tells the builder to add the AWS cloud provider service
func (bldr *ServiceBuilder) WithProviderService() *ServiceBuilder {
	bldr.handlers = append(bldr.handlers, bldr.createProviderService)
	return bldr
}

// WithCredentialsService tells the builder to add the credential broker
func (bldr *ServiceBuilder) WithCredentialsService() *ServiceBuilder {
	bldr.handlers = append(bldr.handlers, bldr.createCredentialsService)
	return bldr
}

// WithDispatcherService tells the builder to add the aggregation dispatcher
func (bldr *ServiceBuilder) WithDispatcherService() *ServiceBuilder {
	bldr.handlers = append(bldr.handlers, bldr.createDispatcherService)
	return bldr
}

// WithAccountService tells the builder to add the account registry service
func (bldr *ServiceBuilder) WithAccountService() *ServiceBuilder {
	bldr.handlers = append(bldr.handlers, bldr.createAccountService)
	return bldr
}

// WithLifecycleService tells the builder to add the workflow orchestrator
func (bldr *ServiceBuilder) WithLifecycleService() *ServiceBuilder {
	bldr.handlers = append(bldr.handlers, bldr.createLifecycleService)
	return bldr
}

// AccountService returns the account Service for you
func (bldr *ServiceBuilder) AccountService() accountiface.Servicer {
	var accountSvc accountiface.Servicer
	if err := bldr.Config.GetService(&accountSvc); err != nil {
		panic(err)
	}
	return accountSvc
}

// LifecycleService returns the workflow orchestrator Service for you
func (bldr *ServiceBuilder) LifecycleService() lifecycleiface.Servicer {
	var lifecycleSvc lifecycleiface.Servicer
	if err := bldr.Config.GetService(&lifecycleSvc); err != nil {
		panic(err)
	}
	return lifecycleSvc
}

// DispatcherService returns the aggregation dispatcher Service for you
func (bldr *ServiceBuilder) DispatcherService() dispatcheriface.Servicer {
	var dispatchSvc dispatcheriface.Servicer
	if err := bldr.Config.GetService(&dispatchSvc); err != nil {
		panic(err)
	}
	return dispatchSvc
}

// ProviderService returns the cloud provider Service for you
func (bldr *ServiceBuilder) ProviderService() provider.Provider {
	var providerSvc provider.Provider
	if err := bldr.Config.GetService(&providerSvc); err != nil {
		panic(err)
	}
	return providerSvc
}

// Build creates and returns a structue with AWS services
func (bldr *ServiceBuilder) Build() (*ConfigurationBuilder, error) {

	err := bldr.Config.Build()
	if err != nil {
		// We failed to build the configuration, so honestly there is no
		// point in continuating...
		return bldr.Config, ServiceConfigurationError(err)
	}

	// Create session is done first, and explicitly, because everything else
	// uses it
	err = bldr.createSession(bldr.Config)

	if err != nil {
		log.Printf("Could not create session: %s", err.Error())
		return bldr.Config, ServiceConfigurationError(err)
	}

	// Parameter store values resolve before the service handlers run, so
	// the services they configure see the resolved strings rather than
	// deferred placeholders.
	if bldr.Config.HasDeferredParameterStoreVals() {
		var ssmSvc ssmiface.SSMAPI
		if err := bldr.Config.GetService(&ssmSvc); err != nil {
			bldr.Config.WithService(ssm.New(bldr.AWSSession))
		}
		if err := bldr.Config.RetrieveParameterStoreVals(); err != nil {
			return bldr.Config, ServiceConfigurationError(err)
		}
	}

	for _, f := range bldr.handlers {
		err := f(bldr.Config)
		if err != nil {
			log.Printf("Error while trying to execute handler: %s", runtime.FuncForPC(reflect.ValueOf(f).Pointer()).Name())
			return bldr.Config, ServiceConfigurationError(err)
		}
	}

	// make certain build is called before returning.
	return bldr.Config, nil
}

func (bldr *ServiceBuilder) createSession(config *ConfigurationBuilder) error {
	var err error
	region, err := bldr.Config.GetStringVal("AWS_CURRENT_REGION")
	if err == nil {
		log.Printf("Using AWS region \"%s\" to create session...", region)
		bldr.AWSSession, err = session.NewSession(
			&aws.Config{
				Region: aws.String(region),
			},
		)
	} else {
		log.Println("Creating AWS session using defaults...")
		bldr.AWSSession, err = session.NewSession()
	}
	return err
}

func (bldr *ServiceBuilder) createSTS(config *ConfigurationBuilder) error {
	var stsSvc stsiface.STSAPI
	stsSvc = sts.New(bldr.AWSSession)
	config.WithService(stsSvc)
	return nil
}

func (bldr *ServiceBuilder) createSNS(config *ConfigurationBuilder) error {
	var snsSvc snsiface.SNSAPI
	snsSvc = sns.New(bldr.AWSSession)
	config.WithService(snsSvc)
	return nil
}

func (bldr *ServiceBuilder) createSQS(config *ConfigurationBuilder) error {
	var sqsSvc sqsiface.SQSAPI
	sqsSvc = sqs.New(bldr.AWSSession)
	config.WithService(sqsSvc)
	return nil
}

func (bldr *ServiceBuilder) createDynamoDB(config *ConfigurationBuilder) error {
	var dynamodbSvc dynamodbiface.DynamoDBAPI
	dynamodbSvc = dynamodb.New(bldr.AWSSession)
	config.WithService(dynamodbSvc)
	return nil
}

func (bldr *ServiceBuilder) createS3(config *ConfigurationBuilder) error {
	var s3Svc s3iface.S3API
	s3Svc = s3.New(bldr.AWSSession)
	config.WithService(s3Svc)
	return nil
}

func (bldr *ServiceBuilder) createSES(config *ConfigurationBuilder) error {
	var sesSvc sesiface.SESAPI
	sesSvc = ses.New(bldr.AWSSession)
	config.WithService(sesSvc)
	return nil
}

func (bldr *ServiceBuilder) createSSM(config *ConfigurationBuilder) error {
	var ssmSvc ssmiface.SSMAPI
	ssmSvc = ssm.New(bldr.AWSSession)
	config.WithService(ssmSvc)
	return nil
}

func (bldr *ServiceBuilder) createAccountDataService(config *ConfigurationBuilder) error {
	var dynamodbSvc dynamodbiface.DynamoDBAPI
	err := bldr.Config.GetService(&dynamodbSvc)
	if err != nil {
		log.Println("Could not find DynamoDB service. Call WithDynamoDB() before WithAccountDataService()")
		return err
	}

	dataSvcImpl := &data.Account{}

	err = bldr.Config.Unmarshal(dataSvcImpl)
	if err != nil {
		return err
	}

	dataSvcImpl.DynamoDB = dynamodbSvc

	config.WithService(dataSvcImpl)
	return nil
}

func (bldr *ServiceBuilder) createRunDataService(config *ConfigurationBuilder) error {
	var dynamodbSvc dynamodbiface.DynamoDBAPI
	err := bldr.Config.GetService(&dynamodbSvc)
	if err != nil {
		log.Println("Could not find DynamoDB service. Call WithDynamoDB() before WithRunDataService()")
		return err
	}

	dataSvcImpl := &data.Run{}

	err = bldr.Config.Unmarshal(dataSvcImpl)
	if err != nil {
		return err
	}

	dataSvcImpl.DynamoDB = dynamodbSvc

	config.WithService(dataSvcImpl)
	return nil
}

func (bldr *ServiceBuilder) createEventService(config *ConfigurationBuilder) error {
	var snsSvc snsiface.SNSAPI
	if err := bldr.Config.GetService(&snsSvc); err != nil {
		return err
	}
	var sqsSvc sqsiface.SQSAPI
	if err := bldr.Config.GetService(&sqsSvc); err != nil {
		return err
	}

	eventInput := event.NewServiceInput{}
	if err := bldr.Config.Unmarshal(&eventInput); err != nil {
		return err
	}
	eventInput.SnsClient = snsSvc
	eventInput.SqsClient = sqsSvc

	eventSvc, err := event.NewService(eventInput)
	if err != nil {
		return err
	}

	config.WithService(eventSvc)
	return nil
}

func (bldr *ServiceBuilder) createEmailService(config *ConfigurationBuilder) error {
	var sesSvc sesiface.SESAPI
	if err := bldr.Config.GetService(&sesSvc); err != nil {
		return err
	}

	emailInput := email.NewServiceInput{}
	if err := bldr.Config.Unmarshal(&emailInput); err != nil {
		return err
	}
	emailInput.SesClient = sesSvc

	config.WithService(email.NewService(emailInput))
	return nil
}

func (bldr *ServiceBuilder) createArtifactService(config *ConfigurationBuilder) error {
	var s3Svc s3iface.S3API
	if err := bldr.Config.GetService(&s3Svc); err != nil {
		return err
	}

	reportInput := report.NewServiceInput{}
	if err := bldr.Config.Unmarshal(&reportInput); err != nil {
		return err
	}
	reportInput.S3Client = s3Svc

	config.WithService(report.NewService(reportInput))
	return nil
}

func (bldr *ServiceBuilder) createProviderService(config *ConfigurationBuilder) error {
	var stsSvc stsiface.STSAPI
	if err := bldr.Config.GetService(&stsSvc); err != nil {
		log.Println("Could not find STS service. Call WithSTS() before WithProviderService()")
		return err
	}

	providerConfig := awscloud.ServiceConfig{}
	if err := bldr.Config.Unmarshal(&providerConfig); err != nil {
		return err
	}

	providerSvc, err := awscloud.NewService(awscloud.NewServiceInput{
		Session: bldr.AWSSession,
		Sts:     stsSvc,
		Config:  providerConfig,
	})
	if err != nil {
		return err
	}

	config.WithService(providerSvc)
	return nil
}

func (bldr *ServiceBuilder) createCredentialsService(config *ConfigurationBuilder) error {
	var providerSvc provider.Provider
	if err := bldr.Config.GetService(&providerSvc); err != nil {
		log.Println("Could not find provider service. Call WithProviderService() before WithCredentialsService()")
		return err
	}

	credConfig := credentials.ServiceConfig{}
	if err := bldr.Config.Unmarshal(&credConfig); err != nil {
		return err
	}

	config.WithService(credentials.NewService(credentials.NewServiceInput{
		RoleAssumer: providerSvc,
		Config:      credConfig,
	}))
	return nil
}

func (bldr *ServiceBuilder) createDispatcherService(config *ConfigurationBuilder) error {
	var credSvc credentialsiface.Servicer
	if err := bldr.Config.GetService(&credSvc); err != nil {
		log.Println("Could not find credentials service. Call WithCredentialsService() before WithDispatcherService()")
		return err
	}

	dispatchConfig := dispatcher.ServiceConfig{}
	if err := bldr.Config.Unmarshal(&dispatchConfig); err != nil {
		return err
	}

	config.WithService(dispatcher.NewService(dispatcher.NewServiceInput{
		CredSvc:  credSvc,
		CacheSvc: cache.New(nil),
		Config:   dispatchConfig,
	}))
	return nil
}

func (bldr *ServiceBuilder) createAccountService(config *ConfigurationBuilder) error {
	var dataSvc account.ReaderWriterDeleter
	if err := bldr.Config.GetService(&dataSvc); err != nil {
		log.Println("Could not find account data service. Call WithAccountDataService() before WithAccountService()")
		return err
	}
	var eventSvc account.Eventer
	if err := bldr.Config.GetService(&eventSvc); err != nil {
		log.Println("Could not find event service. Call WithEventService() before WithAccountService()")
		return err
	}

	config.WithService(account.NewService(account.NewServiceInput{
		DataSvc:  dataSvc,
		EventSvc: eventSvc,
	}))
	return nil
}

func (bldr *ServiceBuilder) createLifecycleService(config *ConfigurationBuilder) error {
	var dataSvc lifecycle.ReaderWriter
	if err := bldr.Config.GetService(&dataSvc); err != nil {
		return err
	}
	var accountSvc accountiface.Servicer
	if err := bldr.Config.GetService(&accountSvc); err != nil {
		return err
	}
	var credSvc credentialsiface.Servicer
	if err := bldr.Config.GetService(&credSvc); err != nil {
		return err
	}
	var dispatchSvc dispatcheriface.Servicer
	if err := bldr.Config.GetService(&dispatchSvc); err != nil {
		return err
	}
	var providerSvc provider.Provider
	if err := bldr.Config.GetService(&providerSvc); err != nil {
		return err
	}
	var eventSvc lifecycle.Eventer
	if err := bldr.Config.GetService(&eventSvc); err != nil {
		return err
	}
	var notifySvc lifecycle.Notifier
	if err := bldr.Config.GetService(&notifySvc); err != nil {
		return err
	}
	var artifactSvc lifecycle.Artifacter
	if err := bldr.Config.GetService(&artifactSvc); err != nil {
		return err
	}

	lifecycleConfig := lifecycle.ServiceConfig{}
	if err := bldr.Config.Unmarshal(&lifecycleConfig); err != nil {
		return err
	}
	// The external id comes out of the parameter store, not plain env.
	if externalID, err := bldr.Config.GetStringVal("ACCESS_ROLE_EXTERNAL_ID"); err == nil {
		lifecycleConfig.AccessRoleExternalID = externalID
	}

	config.WithService(lifecycle.NewService(lifecycle.NewServiceInput{
		DataSvc:     dataSvc,
		AccountSvc:  accountSvc,
		CredSvc:     credSvc,
		DispatchSvc: dispatchSvc,
		ProviderSvc: providerSvc,
		EventSvc:    eventSvc,
		NotifySvc:   notifySvc,
		ArtifactSvc: artifactSvc,
		Config:      lifecycleConfig,
	}))
	return nil
}
