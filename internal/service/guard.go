package service

import "github.com/IvanovPete/test-backend/models"

// Action is an operation a caller attempts on a resource.
type Action int

const (
	ActionRead Action = iota
	ActionList
	ActionCreate
	ActionUpdate
	ActionDelete
)

func (a Action) String() string {
	switch a {
	case ActionRead:
		return "read"
	case ActionList:
		return "list"
	case ActionCreate:
		return "create"
	case ActionUpdate:
		return "update"
	case ActionDelete:
		return "delete"
	}
	return "unknown"
}

// Owned is implemented by every resource that has an author.
type Owned interface {
	OwnerID() int64
}

// Authenticate fails with [ErrUnauthorized] when there is no identity.
func Authenticate(identity *models.User) error {
	if identity == nil {
		return ErrUnauthorized
	}
	return nil
}

// Authorize decides whether identity may perform action on resource.
//
// Reads and lists are always allowed. Create needs an identity. Update and
// delete need an identity that owns the resource; resource may be nil only
// for the actions that do not inspect it.
func Authorize(resource Owned, identity *models.User, action Action) error {
	switch action {
	case ActionRead, ActionList:
		return nil
	case ActionCreate:
		return Authenticate(identity)
	case ActionUpdate, ActionDelete:
		if identity == nil {
			return ErrUnauthorized
		}
		if resource == nil || resource.OwnerID() != identity.UserID {
			return ErrForbidden
		}
		return nil
	}

	return ErrForbidden
}
