package main

import (
	"context"
	"fmt"
	"log"
	"net/url"

	"github.com/ajittgosavii/cloudidps/pkg/api"
	"github.com/ajittgosavii/cloudidps/pkg/config"
	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/awslabs/aws-lambda-go-api-proxy/gorillamux"
)

type workflowControllerConfiguration struct {
	Debug string `env:"DEBUG" envDefault:"false"`
}

var (
	muxLambda *gorillamux.GorillaMuxAdapter
	// Services handles the configuration of the AWS services
	Services *config.ServiceBuilder
	// Settings - the configuration settings for the controller
	Settings *workflowControllerConfiguration
)

var (
	baseRequest url.URL
)

func init() {
	initConfig()

	log.Println("Cold start; creating router for /workflows")
	workflowRoutes := api.Routes{
		api.Route{
			Name:        "GetWorkflows",
			Method:      "GET",
			Pattern:     "/workflows",
			Queries:     api.EmptyQueryString,
			HandlerFunc: GetWorkflows,
		},
		api.Route{
			Name:        "GetWorkflowByID",
			Method:      "GET",
			Pattern:     "/workflows/{runId}",
			Queries:     api.EmptyQueryString,
			HandlerFunc: GetWorkflowByID,
		},
		api.Route{
			Name:        "ResumeWorkflow",
			Method:      "PUT",
			Pattern:     "/workflows/{runId}/resume",
			Queries:     api.EmptyQueryString,
			HandlerFunc: ResumeWorkflow,
		},
		api.Route{
			Name:        "StartWorkflow",
			Method:      "POST",
			Pattern:     "/workflows",
			Queries:     api.EmptyQueryString,
			HandlerFunc: StartWorkflow,
		},
	}
	r := api.NewRouter(workflowRoutes)
	muxLambda = gorillamux.New(r)
}

// initConfig configures package-level variables
// loaded from env vars.
func initConfig() {
	cfgBldr := &config.ConfigurationBuilder{}
	Settings = &workflowControllerConfiguration{}
	if err := cfgBldr.Unmarshal(Settings); err != nil {
		log.Fatalf("Could not load configuration: %s", err.Error())
	}

	// The trust-policy external id is sensitive, so it comes out of the
	// parameter store rather than the lambda environment.
	err := cfgBldr.
		WithEnv("AWS_CURRENT_REGION", "AWS_CURRENT_REGION", "us-east-1").
		WithParameterStoreEnv("ACCESS_ROLE_EXTERNAL_ID", "ACCESS_ROLE_EXTERNAL_ID_SSM_PARAM", "").
		Build()
	if err != nil {
		log.Printf("Error: %+v", err)
	}
	svcBldr := &config.ServiceBuilder{Config: cfgBldr}

	_, err = svcBldr.
		// AWS services...
		WithDynamoDB().
		WithSTS().
		WithSNS().
		WithSQS().
		WithS3().
		WithSES().
		WithSSM().
		// CloudIDP services...
		WithAccountDataService().
		WithRunDataService().
		WithEventService().
		WithEmailService().
		WithArtifactService().
		WithProviderService().
		WithCredentialsService().
		WithDispatcherService().
		WithAccountService().
		WithLifecycleService().
		Build()
	if err != nil {
		panic(err)
	}

	Services = svcBldr
}

// Handler - Handle the lambda function
func Handler(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	// Set baseRequest information lost by integration with gorilla mux
	baseRequest = url.URL{}
	baseRequest.Scheme = req.Headers["X-Forwarded-Proto"]
	baseRequest.Host = req.Headers["Host"]
	baseRequest.Path = fmt.Sprintf("%s%s", req.RequestContext.Stage, req.Path)

	return muxLambda.ProxyWithContext(ctx, req)
}

func main() {
	lambda.Start(Handler)
}
