package main

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"time"

	"github.com/ajittgosavii/cloudidps/pkg/api"
	"github.com/ajittgosavii/cloudidps/pkg/config"
	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/awslabs/aws-lambda-go-api-proxy/gorillamux"
)

type inventoryControllerConfiguration struct {
	Debug        string        `env:"DEBUG" envDefault:"false"`
	InventoryTTL time.Duration `env:"INVENTORY_TTL" envDefault:"60s"`
}

var (
	muxLambda *gorillamux.GorillaMuxAdapter
	// Services handles the configuration of the AWS services
	Services *config.ServiceBuilder
	// Settings - the configuration settings for the controller
	Settings *inventoryControllerConfiguration
)

var (
	baseRequest url.URL
)

func init() {
	initConfig()

	log.Println("Cold start; creating router for /inventory")
	inventoryRoutes := api.Routes{
		api.Route{
			Name:        "GetInventory",
			Method:      "GET",
			Pattern:     "/inventory",
			Queries:     api.EmptyQueryString,
			HandlerFunc: GetInventory,
		},
	}
	r := api.NewRouter(inventoryRoutes)
	muxLambda = gorillamux.New(r)
}

// initConfig configures package-level variables
// loaded from env vars.
func initConfig() {
	cfgBldr := &config.ConfigurationBuilder{}
	Settings = &inventoryControllerConfiguration{}
	if err := cfgBldr.Unmarshal(Settings); err != nil {
		log.Fatalf("Could not load configuration: %s", err.Error())
	}

	// load up the values into the various settings...
	err := cfgBldr.WithEnv("AWS_CURRENT_REGION", "AWS_CURRENT_REGION", "us-east-1").Build()
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
		// CloudIDP services...
		WithAccountDataService().
		WithEventService().
		WithAccountService().
		WithProviderService().
		WithCredentialsService().
		WithDispatcherService().
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
