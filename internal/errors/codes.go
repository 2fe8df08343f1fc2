package errors

// Error codes surfaced by the ROBDD toolchain.
//
// Error code ranges (a subset of the teacher's convention, trimmed to what
// this domain needs):
// E0100-E0199: Parser errors (spec.md §7 ParseError)
// E0600-E0699: Invariant violations (spec.md §7 InvariantViolation — programmer errors)
// E0900-E0999: Resource exhaustion (spec.md §7 ResourceExhaustion)

const (
	// E0100: malformed formula text (unknown token, bad precedence, unterminated expression)
	ErrorParse = "E0100"

	// E0600: a caller violated a Node Store precondition (e.g. asked for the
	// child of a leaf handle, or interned with an out-of-order variable).
	// These never occur through the Driver; they indicate a bug in the
	// code calling the core directly.
	ErrorInvariantViolation = "E0600"

	// E0900: the Node Store's arena reached its configured node-count
	// ceiling and could not allocate a new node.
	ErrorResourceExhaustion = "E0900"
)

// GetErrorDescription returns a human-readable description of the error code.
func GetErrorDescription(code string) string {
	switch code {
	case ErrorParse:
		return "The formula text does not match the grammar"
	case ErrorInvariantViolation:
		return "A Node Store precondition was violated by the caller"
	case ErrorResourceExhaustion:
		return "The Node Store could not allocate a new node"
	default:
		return "Unknown error code"
	}
}

// GetErrorCategory returns the category of the error based on its code.
func GetErrorCategory(code string) string {
	switch {
	case code >= "E0100" && code < "E0200":
		return "Parser"
	case code >= "E0600" && code < "E0700":
		return "Invariant Violation"
	case code >= "E0900" && code < "E1000":
		return "Resource Exhaustion"
	default:
		return "Unknown"
	}
}
