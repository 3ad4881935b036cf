package importer

// Report is the success shape. Inserted always equals TotalRows under the
// all-or-nothing policy; Skipped is kept in the shape for forward
// compatibility and is structurally zero.
type Report struct {
	TotalRows int `json:"totalRows"`
	Inserted  int `json:"inserted"`
	Skipped   int `json:"skipped"`
}

// Rejection is the failure shape. A header-contract failure carries no
// Errors list, since no row was ever addressed.
type Rejection struct {
	Message string      `json:"message"`
	Errors  []Violation `json:"errors,omitempty"`
}

// Outcome is the single result of one import request: exactly one of
// Report or Rejection is set, never both.
type Outcome struct {
	Report    *Report    `json:"report,omitempty"`
	Rejection *Rejection `json:"rejection,omitempty"`
}

const rejectionMessage = "import rejected: fix the listed errors and resubmit the file"

func NewCommitted(totalRows int) *Outcome {
	return &Outcome{Report: &Report{
		TotalRows: totalRows,
		Inserted:  totalRows,
		Skipped:   0,
	}}
}

func NewRejected(violations []Violation) *Outcome {
	return &Outcome{Rejection: &Rejection{
		Message: rejectionMessage,
		Errors:  violations,
	}}
}

// NewDryRun reports a clean validation pass with nothing persisted.
func NewDryRun(totalRows int) *Outcome {
	return &Outcome{Report: &Report{TotalRows: totalRows}}
}

func NewHeaderRejected() *Outcome {
	return &Outcome{Rejection: &Rejection{Message: HeaderContractMessage}}
}

func NewFileRejected(message string) *Outcome {
	return &Outcome{Rejection: &Rejection{Message: message}}
}

func (o *Outcome) IsRejected() bool {
	return o.Rejection != nil
}
