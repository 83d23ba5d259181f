package catalog

import "fmt"

// Operation identifies one remote operation. The set is closed: the three
// constants below are the only valid values.
type Operation int

const (
	// OperationGetBrowseNodes looks up browse nodes by id.
	OperationGetBrowseNodes Operation = iota + 1

	// OperationGetItems looks up catalog items by id.
	OperationGetItems

	// OperationGetVariations looks up the variations of one item.
	OperationGetVariations
)

// targetPrefix is the service identifier prefix for the X-Amz-Target
// header.
const targetPrefix = "com.amazon.paapi5.v1.ProductAdvertisingAPIv1."

// ParseOperation maps an operation name such as "GetItems" to its
// Operation value. Unknown names return ErrInvalidOperation.
func ParseOperation(name string) (Operation, error) {
	switch name {
	case "GetBrowseNodes":
		return OperationGetBrowseNodes, nil
	case "GetItems":
		return OperationGetItems, nil
	case "GetVariations":
		return OperationGetVariations, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrInvalidOperation, name)
}

// String returns the operation name used in endpoint paths and targets.
func (op Operation) String() string {
	switch op {
	case OperationGetBrowseNodes:
		return "GetBrowseNodes"
	case OperationGetItems:
		return "GetItems"
	case OperationGetVariations:
		return "GetVariations"
	}

	return fmt.Sprintf("Operation(%d)", int(op))
}

// Target returns the X-Amz-Target header value for the operation.
func (op Operation) Target() string {
	return targetPrefix + op.String()
}

// Valid reports whether op is one of the supported operations.
func (op Operation) Valid() bool {
	switch op {
	case OperationGetBrowseNodes, OperationGetItems, OperationGetVariations:
		return true
	}

	return false
}
