package identity

import (
	"github.com/shopnet/backend/internal/domain/shared"
)

// Aggregate type constant for User
const AggregateTypeUser = "User"

// User domain event types
const (
	EventTypeUserRegistered        = "UserRegistered"
	EventTypeConfirmEmailRequested = "ConfirmEmailRequested"
	EventTypeUserEmailConfirmed    = "UserEmailConfirmed"
	EventTypeUserPasswordChanged   = "UserPasswordChanged"
)

// UserRegisteredEvent is published when a new account is created
type UserRegisteredEvent struct {
	shared.BaseDomainEvent
	Email     string   `json:"email"`
	FirstName string   `json:"first_name"`
	LastName  string   `json:"last_name"`
	UserType  UserType `json:"user_type"`
}

// NewUserRegisteredEvent creates a new UserRegisteredEvent
func NewUserRegisteredEvent(user *User) *UserRegisteredEvent {
	return &UserRegisteredEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeUserRegistered, AggregateTypeUser, user.ID),
		Email:           user.Email,
		FirstName:       user.FirstName,
		LastName:        user.LastName,
		UserType:        user.Type,
	}
}

// ConfirmEmailRequestedEvent is published when a confirmation token is
// issued and its key must be delivered to the user
type ConfirmEmailRequestedEvent struct {
	shared.BaseDomainEvent
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	Key       string `json:"key"`
}

// NewConfirmEmailRequestedEvent creates a new ConfirmEmailRequestedEvent
func NewConfirmEmailRequestedEvent(user *User, token *ConfirmEmailToken) *ConfirmEmailRequestedEvent {
	return &ConfirmEmailRequestedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeConfirmEmailRequested, AggregateTypeUser, user.ID),
		Email:           user.Email,
		FirstName:       user.FirstName,
		Key:             token.Key,
	}
}

// UserEmailConfirmedEvent is published when an account is activated
type UserEmailConfirmedEvent struct {
	shared.BaseDomainEvent
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
}

// NewUserEmailConfirmedEvent creates a new UserEmailConfirmedEvent
func NewUserEmailConfirmedEvent(user *User) *UserEmailConfirmedEvent {
	return &UserEmailConfirmedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeUserEmailConfirmed, AggregateTypeUser, user.ID),
		Email:           user.Email,
		FirstName:       user.FirstName,
	}
}

// UserPasswordChangedEvent is published when a user's password is changed
type UserPasswordChangedEvent struct {
	shared.BaseDomainEvent
	Email string `json:"email"`
}

// NewUserPasswordChangedEvent creates a new UserPasswordChangedEvent
func NewUserPasswordChangedEvent(user *User) *UserPasswordChangedEvent {
	return &UserPasswordChangedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeUserPasswordChanged, AggregateTypeUser, user.ID),
		Email:           user.Email,
	}
}
