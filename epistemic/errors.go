package epistemic

import "errors"

// Errors returned by the evaluator and the model/wire codecs. Callers match
// them with errors.Is; evaluation propagates them unrecovered.
var (
	// ErrInvalidModel is returned by Evaluate when its model argument is nil.
	ErrInvalidModel = errors.New("not a kripke model")

	// ErrInvalidWff is returned by Evaluate when its formula argument is nil.
	ErrInvalidWff = errors.New("not a well-formed formula")

	// ErrStateNotFound is returned when a world index is out of range or
	// refers to a deleted world.
	ErrStateNotFound = errors.New("state not found")

	// ErrInvalidFormula is returned when a formula node appears in a
	// position its kind does not allow, e.g. a bare agent group where a
	// boolean subformula is expected.
	ErrInvalidFormula = errors.New("invalid formula")

	// ErrEmptyGroup is returned when a group operator resolves to an empty
	// agent set; distributed knowledge has no defined value there.
	ErrEmptyGroup = errors.New("empty agent group")

	// ErrBadWireFormat is returned by Serialize and Deserialize for
	// identifiers or tokens that do not fit the wire format.
	ErrBadWireFormat = errors.New("malformed model string")

	// ErrParse is returned by the formula parser.
	ErrParse = errors.New("parse error")
)
