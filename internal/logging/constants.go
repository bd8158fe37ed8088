package logging

// Standardized field names for structured logging, so that ledger events can be
// filtered consistently regardless of which component emitted them.
const (
	FieldFile      = "file_path"
	FieldComponent = "component"
	FieldOperation = "operation"
	FieldChoice    = "choice"
	FieldCategory  = "category"
	FieldKind      = "kind"
	FieldCount     = "count"
	FieldSkipped   = "skipped"
	FieldLine      = "line"
	FieldMonths    = "months"
	FieldDelimiter = "delimiter"
	FieldLayout    = "date_layout"
	FieldEntry     = "transaction"
)
