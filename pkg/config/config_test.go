package config

import (
	"errors"
	"os"
	"strconv"
	"testing"

	"github.com/ajittgosavii/cloudidps/pkg/awsiface/mocks"
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/ssm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type exampleConfig struct {
	StringValue        string   `env:"SOME_STRING_VALUE"`
	ArrayOfStringValue []string `env:"SOME_ARRAY_OF_STRING_VALUE"`
	IntValue           int      `env:"SOME_INT_VALUE"`
}

const (
	ExpectedStrVal          = "foo"
	ExpectedStrDefaultedVal = "defaultfoo"
	ExpectedArrOfStrVal     = "one,two,three,four,five"
	ExpectedIntVal          = 1
)

func init() {
	os.Setenv("SOME_STRING_VALUE", ExpectedStrVal)
	os.Setenv("SOME_INT_VALUE", strconv.Itoa(ExpectedIntVal))
	os.Setenv("SOME_ARRAY_OF_STRING_VALUE", ExpectedArrOfStrVal)
}

type Foo interface {
	GetMessage() string
}

type Baz struct {
	Message string
}

func (b *Baz) GetMessage() string {
	return b.Message
}

type Fuzz interface {
	GetName() string
}

type Wuzz struct {
	Name string
}

func (w *Wuzz) GetName() string {
	return w.Name
}

func TestConfigurationBuilder_Unmarshal(t *testing.T) {
	actualStringVal := os.Getenv("SOME_STRING_VALUE")
	// just checking... ;)
	assert.Equal(t, ExpectedStrVal, actualStringVal)

	actualIntValAsStr := os.Getenv("SOME_INT_VALUE")
	actualIntVal, err := strconv.Atoi(actualIntValAsStr)
	assert.Nil(t, err)
	assert.Equal(t, ExpectedIntVal, actualIntVal)

	var config exampleConfig
	cfgBldr := &ConfigurationBuilder{}

	err = cfgBldr.Unmarshal(&config)
	assert.Nil(t, err)
	assert.Equal(t, ExpectedStrVal, config.StringValue)
	assert.Equal(t, ExpectedIntVal, config.IntValue)

	// Parsing an array
	expectedArrayOfStrings := []string{"one", "two", "three", "four", "five"}
	assert.Equal(t, expectedArrayOfStrings, config.ArrayOfStringValue)
}

func TestConfigurationBuilder_TryToGetWithoutBuilding(t *testing.T) {
	cfg := &ConfigurationBuilder{}
	cfg.WithVal("foo", "bar")

	actualVal, err := cfg.GetStringVal("foo")
	assert.NotNil(t, err)
	expectedErr := ConfigurationError(errors.New("call Build() before attempting to get values"))
	assert.Equal(t, expectedErr.Error(), err.Error())
	assert.True(t, len(actualVal) == 0)
}

func TestConfigurationBuilder_BuildWithValue(t *testing.T) {
	cfg := &ConfigurationBuilder{}
	cfg.WithVal("bar", ExpectedStrVal).Build()

	actualVal, err := cfg.GetStringVal("bar")
	assert.Nil(t, err)
	assert.Equal(t, ExpectedStrVal, actualVal)
}

func TestConfigurationBuilder_BuildWithValueButGetWithError(t *testing.T) {
	cfg := &ConfigurationBuilder{}
	cfg.WithVal("bar", ExpectedStrVal).Build()

	actualVal, err := cfg.GetStringVal("somenonexistantkey")
	assert.NotNil(t, err)
	expectedErr := ConfigurationError(errors.New("no value found in configuration for key: somenonexistantkey"))
	assert.Equal(t, expectedErr.Error(), err.Error())
	assert.True(t, len(actualVal) == 0)
}

func TestConfigurationBuilder_BuildWithEnvVar(t *testing.T) {
	cfg := &ConfigurationBuilder{}
	cfg.WithEnv("bar", "SOME_STRING_VALUE", ExpectedStrVal).Build()

	actualVal, err := cfg.GetStringVal("bar")
	assert.Nil(t, err)
	assert.Equal(t, ExpectedStrVal, actualVal)
}

func TestConfigurationBuilder_BuildWithEnvVarWithDefault(t *testing.T) {
	cfg := &ConfigurationBuilder{}
	cfg.WithEnv("bar", "SOME_STRING_VALUE_THAT_DOES_NOT_EXIST", ExpectedStrDefaultedVal).Build()

	actualVal, err := cfg.GetStringVal("bar")
	assert.Nil(t, err)
	assert.Equal(t, ExpectedStrDefaultedVal, actualVal)
}

func TestConfigurationBuilder_BuildWithService(t *testing.T) {
	cfg := &ConfigurationBuilder{}
	baz := &Baz{Message: "Baz is the jazz!"}
	var iface Foo
	cfg.WithService(baz).Build()

	err := cfg.GetService(&iface)
	assert.Nil(t, err)
	assert.Equal(t, "Baz is the jazz!", iface.GetMessage())
}

func TestConfigurationBuilder_BuildWithMulitpleServices(t *testing.T) {
	cfg := &ConfigurationBuilder{}
	var iface Foo
	var otherIface Fuzz

	baz := &Baz{Message: "Baz is the jazz!"}
	wuz := &Wuzz{Name: "The bear with no hair"}

	cfg.
		WithService(baz).
		WithService(wuz).
		Build()

	err := cfg.GetService(&iface)
	assert.Nil(t, err)
	assert.Equal(t, "Baz is the jazz!", iface.GetMessage())

	err = cfg.GetService(&otherIface)
	assert.Nil(t, err)
	assert.Equal(t, "The bear with no hair", otherIface.GetName())
}

func TestConfigurationBuilder_BuildWithServiceWithError(t *testing.T) {
	cfg := &ConfigurationBuilder{}
	baz := &Baz{Message: "Baz is the jazz!"}
	var otherIface Fuzz

	expectedErr := ConfigurationError(errors.New("no service found in configuration for key type: config.Fuzz"))

	cfg.WithService(baz).Build()

	err := cfg.GetService(&otherIface)
	assert.NotNil(t, err)
	assert.Equal(t, expectedErr.Error(), err.Error())
}

func TestConfigurationBuilder_ParameterStoreVals(t *testing.T) {
	t.Run("env var unset stores the default with nothing deferred", func(t *testing.T) {
		cfg := &ConfigurationBuilder{}
		cfg.WithParameterStoreEnv("ACCESS_ROLE_EXTERNAL_ID", "SOME_SSM_PARAM_THAT_DOES_NOT_EXIST", "").Build()

		assert.False(t, cfg.HasDeferredParameterStoreVals())

		actualVal, err := cfg.GetStringVal("ACCESS_ROLE_EXTERNAL_ID")
		assert.Nil(t, err)
		assert.Equal(t, "", actualVal)
	})

	t.Run("env var set defers until the parameter store resolves it", func(t *testing.T) {
		os.Setenv("SOME_SSM_PARAM_NAME", "/cloudidp/external-id")
		defer os.Unsetenv("SOME_SSM_PARAM_NAME")

		cfg := &ConfigurationBuilder{}
		cfg.WithParameterStoreEnv("ACCESS_ROLE_EXTERNAL_ID", "SOME_SSM_PARAM_NAME", "").Build()

		assert.True(t, cfg.HasDeferredParameterStoreVals())

		mockSSM := &mocks.SSMAPI{}
		mockSSM.On("GetParameters", mock.MatchedBy(func(input *ssm.GetParametersInput) bool {
			return len(input.Names) == 1 && *input.Names[0] == "/cloudidp/external-id"
		})).Return(&ssm.GetParametersOutput{
			Parameters: []*ssm.Parameter{
				{
					Name:  aws.String("/cloudidp/external-id"),
					Value: aws.String("fleet-wide-id"),
				},
			},
		}, nil)
		cfg.WithService(mockSSM)

		err := cfg.RetrieveParameterStoreVals()
		assert.Nil(t, err)
		assert.False(t, cfg.HasDeferredParameterStoreVals())

		actualVal, err := cfg.GetStringVal("ACCESS_ROLE_EXTERNAL_ID")
		assert.Nil(t, err)
		assert.Equal(t, "fleet-wide-id", actualVal)
	})

	t.Run("an invalid parameter falls back to the default", func(t *testing.T) {
		os.Setenv("SOME_SSM_PARAM_NAME", "/cloudidp/missing")
		defer os.Unsetenv("SOME_SSM_PARAM_NAME")

		cfg := &ConfigurationBuilder{}
		cfg.WithParameterStoreEnv("ACCESS_ROLE_EXTERNAL_ID", "SOME_SSM_PARAM_NAME", "fallback-id").Build()

		mockSSM := &mocks.SSMAPI{}
		mockSSM.On("GetParameters", mock.Anything).Return(&ssm.GetParametersOutput{
			InvalidParameters: []*string{aws.String("/cloudidp/missing")},
		}, nil)
		cfg.WithService(mockSSM)

		err := cfg.RetrieveParameterStoreVals()
		assert.Nil(t, err)

		actualVal, err := cfg.GetStringVal("ACCESS_ROLE_EXTERNAL_ID")
		assert.Nil(t, err)
		assert.Equal(t, "fallback-id", actualVal)
	})
}

func TestConfigurationBuilder_Dump(t *testing.T) {
	cfg := &ConfigurationBuilder{}
	cfg.
		WithVal("SOME_STRING_VALUE", "dumped").
		WithVal("SOME_INT_VALUE", 9).
		Build()

	var config exampleConfig
	err := cfg.Dump(&config)
	assert.Nil(t, err)
	assert.Equal(t, "dumped", config.StringValue)
	assert.Equal(t, 9, config.IntValue)
}
