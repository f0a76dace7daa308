package tracker

import "fmt"

// MissingFieldError reports a goal definition missing a mandatory or
// kind-required field. Field carries the wire-format key name so UI
// surfaces can point at the offending field.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("goal definition missing required field %q", e.Field)
}

// KindNotAllowedError reports a goal kind incompatible with the tracker
// type it was attached to.
type KindNotAllowedError struct {
	Kind Kind
	Type Type
}

func (e *KindNotAllowedError) Error() string {
	return fmt.Sprintf("goal kind %q is not allowed for tracker type %q", e.Kind, e.Type)
}

// TypeMismatchError reports an entry value that does not parse to the
// tracker's type.
type TypeMismatchError struct {
	Type Type
	Raw  string
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("value %q does not parse as tracker type %q", e.Raw, e.Type)
}
