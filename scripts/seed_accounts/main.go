package main

import (
	"io/ioutil"
	"log"
	"os"
	"time"

	"github.com/ajittgosavii/cloudidps/pkg/account"
	"github.com/ajittgosavii/cloudidps/pkg/arn"
	"github.com/ajittgosavii/cloudidps/pkg/data"
	"github.com/ajittgosavii/cloudidps/pkg/errors"

	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/imdario/mergo"
	"gopkg.in/yaml.v2"
)

/*
Loads an accounts.yml seed file into the account registry table.

	defaults:
	  environment: sandbox
	  externalId: CloudIDP-999999999999
	  regions:
	    - us-east-1
	accounts:
	  - id: "123456789012"
	    name: data-platform-dev
	    roleArn: arn:aws:iam::123456789012:role/CloudIDP-Admin
	    ownerEmail: platform@example.com

Each account entry is merged over the defaults block, so shared
settings are written once. The externalId is the role trust condition
(by convention CloudIDP-<management account id>) and is usually set in
defaults for the whole fleet. Records are created in the Pending
status; already-registered accounts are skipped, never overwritten.

Usage:

	ACCOUNT_DB=Accounts go run ./scripts/seed_accounts accounts.yml
*/

type seedAccount struct {
	ID          string                 `yaml:"id"`
	Name        string                 `yaml:"name"`
	RoleArn     string                 `yaml:"roleArn"`
	ExternalID  string                 `yaml:"externalId"`
	Regions     []string               `yaml:"regions"`
	Environment string                 `yaml:"environment"`
	CostCenter  string                 `yaml:"costCenter"`
	OwnerEmail  string                 `yaml:"ownerEmail"`
	Metadata    map[string]interface{} `yaml:"metadata"`
}

type seedFile struct {
	Defaults seedAccount   `yaml:"defaults"`
	Accounts []seedAccount `yaml:"accounts"`
}

func main() {
	path := "accounts.yml"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	raw, err := ioutil.ReadFile(path)
	if err != nil {
		log.Fatalf("Could not read seed file %q: %s", path, err)
	}

	accounts, err := parseSeedFile(raw)
	if err != nil {
		log.Fatalf("Could not parse seed file %q: %s", path, err)
	}

	awsSession := session.Must(session.NewSession())
	dataSvc := &data.Account{
		DynamoDB:  dynamodb.New(awsSession),
		TableName: os.Getenv("ACCOUNT_DB"),
	}

	created, skipped := 0, 0
	for i := range accounts {
		acct := &accounts[i]
		existing, err := dataSvc.Get(*acct.ID)
		if err != nil && errors.KindForError(err) != errors.KindNotFound {
			log.Fatalf("Could not check account %s: %s", *acct.ID, err)
		}
		if existing != nil && err == nil {
			log.Printf("Account %s is already registered; skipping", *acct.ID)
			skipped++
			continue
		}

		if err := dataSvc.Write(acct, nil); err != nil {
			log.Fatalf("Could not write account %s: %s", *acct.ID, err)
		}
		log.Printf("Registered account %s as %s", *acct.ID, account.StatusPending)
		created++
	}

	log.Printf("Seed complete: %d created, %d skipped", created, skipped)
}

// parseSeedFile reads the yaml document and merges each account entry
// over the defaults block.
func parseSeedFile(raw []byte) ([]account.Account, error) {
	file := &seedFile{}
	if err := yaml.Unmarshal(raw, file); err != nil {
		return nil, errors.NewValidation("seed", err)
	}

	now := time.Now().Unix()
	accounts := make([]account.Account, 0, len(file.Accounts))
	for i := range file.Accounts {
		seed := file.Accounts[i]
		if err := mergo.Merge(&seed, file.Defaults); err != nil {
			return nil, errors.NewInternalServer("unable to merge seed defaults", err)
		}

		acct, err := toAccount(seed, now)
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, *acct)
	}
	return accounts, nil
}

func toAccount(seed seedAccount, now int64) (*account.Account, error) {
	roleArn, err := arn.NewFromArn(seed.RoleArn)
	if err != nil {
		return nil, err
	}

	acct := &account.Account{
		ID:             &seed.ID,
		Status:         account.StatusPending.StatusPtr(),
		RoleArn:        roleArn,
		Regions:        seed.Regions,
		CreatedOn:      &now,
		LastModifiedOn: &now,
	}
	if seed.Name != "" {
		acct.Name = &seed.Name
	}
	if seed.ExternalID != "" {
		acct.ExternalID = &seed.ExternalID
	}
	if seed.Environment != "" {
		acct.Environment = &seed.Environment
	}
	if seed.CostCenter != "" {
		acct.CostCenter = &seed.CostCenter
	}
	if seed.OwnerEmail != "" {
		acct.OwnerEmail = &seed.OwnerEmail
	}
	if len(seed.Metadata) > 0 {
		acct.Metadata = seed.Metadata
	}

	if err := acct.Validate(); err != nil {
		return nil, err
	}
	return acct, nil
}
