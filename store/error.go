package store

import (
	"fmt"
)

// NotFound describes a state in which an operation references a name that is
// absent from the store
type NotFound struct {
	Name string
}

func (e *NotFound) Error() string {
	return fmt.Sprintf("no config named %q was found in the store. Run 'kubenv list' to see all stored configs", e.Name)
}

// NameConflict describes a state in which an add collides with a config that
// is already stored under the same name
type NameConflict struct {
	Name string
}

func (e *NameConflict) Error() string {
	return fmt.Sprintf("a config named %q already exists in the store. Run 'kubenv remove %s' first if you want to replace it", e.Name, e.Name)
}

// DuplicateContent describes a state in which an add carries content that is
// already stored under another name. It makes sense to reject this early, as
// two identical configs in the store would make the active marker ambiguous
type DuplicateContent struct {
	Name string
}

func (e *DuplicateContent) Error() string {
	return fmt.Sprintf("identical config content is already stored under the name %q", e.Name)
}

// EmptyStore describes a state in which no config is inside the store.
// It does not matter for some operations (e.g. listing) but is detrimental
// for others (e.g. running the selection prompt)
type EmptyStore struct {
	Store string
}

func (e *EmptyStore) Error() string {
	return fmt.Sprintf("the store at %q is empty. Run 'kubenv add' to populate it", e.Store)
}

// AlreadyActive describes a state in which the config to apply already is
// the one the kubernetes client reads from
type AlreadyActive struct {
	Name string
}

func (e *AlreadyActive) Error() string {
	return fmt.Sprintf("config %q is already active", e.Name)
}
