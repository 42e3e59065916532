package account

import (
	"time"

	"github.com/ajittgosavii/cloudidps/pkg/errors"
	validation "github.com/go-ozzo/ozzo-validation"
)

// Writer put an item into the data store
type Writer interface {
	Write(i *Account, lastModifiedOn *int64) error
}

// Deleter Deletes an Account from the data store
type Deleter interface {
	Delete(i *Account) error
}

// SingleReader Reads Account information from the data store
type SingleReader interface {
	Get(ID string) (*Account, error)
}

// MultipleReader reads multiple accounts from the data store
type MultipleReader interface {
	List(query *Account) (*Accounts, error)
}

// Reader data Layer
type Reader interface {
	SingleReader
	MultipleReader
}

// WriterDeleter data layer
type WriterDeleter interface {
	Writer
	Deleter
}

// ReaderWriterDeleter includes Reader and Writer interfaces
type ReaderWriterDeleter interface {
	Reader
	WriterDeleter
}

// Eventer for publishing account registry events
type Eventer interface {
	AccountCreate(data *Account) error
	AccountUpdate(data *Account) error
	AccountDelete(data *Account) error
}

// Service manages the account registry
type Service struct {
	dataSvc  ReaderWriterDeleter
	eventSvc Eventer
}

// Get returns an account from ID
func (a *Service) Get(ID string) (*Account, error) {

	account, err := a.dataSvc.Get(ID)
	if err != nil {
		return nil, err
	}

	return account, err
}

// Save writes the record to the dataSvc
func (a *Service) Save(data *Account) error {
	var lastModifiedOn *int64
	now := time.Now().Unix()
	if data.LastModifiedOn == nil {
		lastModifiedOn = nil
		data.CreatedOn = &now
		data.LastModifiedOn = &now
	} else {
		lastModifiedOn = data.LastModifiedOn
		data.LastModifiedOn = &now
	}

	err := data.Validate()
	if err != nil {
		return err
	}
	err = a.dataSvc.Write(data, lastModifiedOn)
	if err != nil {
		return err
	}
	return nil
}

// Create registers a new account. The record starts out Pending; an
// onboard workflow moves it to Active.
func (a *Service) Create(data *Account) (*Account, error) {
	err := validation.ValidateStruct(data,
		validation.Field(&data.ID, validateID...),
		validation.Field(&data.Status, validation.By(isNil)),
		validation.Field(&data.StatusReason, validation.By(isNil)),
		validation.Field(&data.CreatedOn, validation.By(isNil)),
		validation.Field(&data.LastModifiedOn, validation.By(isNil)),
	)
	if err != nil {
		return nil, errors.NewValidation("account", err)
	}

	existing, err := a.dataSvc.Get(*data.ID)
	if err == nil && existing != nil {
		return nil, errors.NewAlreadyExists("account", *data.ID)
	}
	if err != nil && errors.KindForError(err) != errors.KindNotFound {
		return nil, err
	}

	data.Status = StatusPending.StatusPtr()
	err = a.Save(data)
	if err != nil {
		return nil, err
	}

	err = a.eventSvc.AccountCreate(data)
	if err != nil {
		return nil, err
	}

	return data, nil
}

// Update the Account record in the registry. Status fields can only be
// changed through SetStatus so the status machine stays authoritative.
func (a *Service) Update(ID string, data *Account) (*Account, error) {
	err := validation.ValidateStruct(data,
		validation.Field(&data.ID, validation.By(isNilOrEqual(ID))),
		validation.Field(&data.Status, validation.By(isNil)),
		validation.Field(&data.StatusReason, validation.By(isNil)),
		validation.Field(&data.ExternalID, validation.By(isNil)),
		validation.Field(&data.CreatedOn, validation.By(isNil)),
		validation.Field(&data.LastModifiedOn, validation.By(isNil)),
	)
	if err != nil {
		return nil, errors.NewValidation("account", err)
	}

	account, err := a.dataSvc.Get(ID)
	if err != nil {
		return nil, err
	}

	if data.Name != nil {
		account.Name = data.Name
	}
	if data.RoleArn != nil {
		account.RoleArn = data.RoleArn
	}
	if data.Regions != nil {
		account.Regions = data.Regions
	}
	if data.Environment != nil {
		account.Environment = data.Environment
	}
	if data.CostCenter != nil {
		account.CostCenter = data.CostCenter
	}
	if data.OwnerEmail != nil {
		account.OwnerEmail = data.OwnerEmail
	}
	if data.Metadata != nil {
		account.Metadata = data.Metadata
	}

	err = a.Save(account)
	if err != nil {
		return nil, err
	}

	err = a.eventSvc.AccountUpdate(account)
	if err != nil {
		return nil, err
	}
	return account, nil
}

// SetStatus transitions the account through the status machine. Only
// transitions in the allowed set succeed; everything else is a state
// error.
func (a *Service) SetStatus(ID string, next Status, reason string) (*Account, error) {
	account, err := a.dataSvc.Get(ID)
	if err != nil {
		return nil, err
	}

	current := EmptyStatus
	if account.Status != nil {
		current = *account.Status
	}
	if !current.CanTransitionTo(next) {
		return nil, errors.NewStateTransition("account", ID, current.String(), next.String())
	}

	account.Status = next.StatusPtr()
	account.StatusReason = &reason
	err = a.Save(account)
	if err != nil {
		return nil, err
	}

	err = a.eventSvc.AccountUpdate(account)
	if err != nil {
		return nil, err
	}
	return account, nil
}

// Delete removes a given account from the registry. Only deregistered
// accounts can be removed.
func (a *Service) Delete(data *Account) error {

	err := validation.ValidateStruct(data,
		validation.Field(&data.Status, validation.NotNil, validation.By(isAccountDeregistered)),
	)
	if err != nil {
		return errors.NewConflict("account", *data.ID, err)
	}

	err = a.dataSvc.Delete(data)
	if err != nil {
		return err
	}

	return a.eventSvc.AccountDelete(data)
}

// List Get a list of accounts based on a query
func (a *Service) List(query *Account) (*Accounts, error) {
	err := validation.ValidateStruct(query,
		validation.Field(&query.ID, validation.By(isNil)),
	)
	if err != nil {
		return nil, errors.NewValidation("account", err)
	}

	accounts, err := a.dataSvc.List(query)
	if err != nil {
		return nil, err
	}

	return accounts, nil
}

// NewServiceInput Input for creating a new Service
type NewServiceInput struct {
	DataSvc  ReaderWriterDeleter
	EventSvc Eventer
}

// NewService creates a new instance of the Service
func NewService(input NewServiceInput) *Service {
	return &Service{
		dataSvc:  input.DataSvc,
		eventSvc: input.EventSvc,
	}
}
