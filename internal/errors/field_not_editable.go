package errors

// FieldNotEditable rejects an update that names a field outside the
// editable whitelist, identifiers and timestamps included.
func FieldNotEditable(field string) *ValidationError {
	return NewValidationError(field, "This field is not editable.")
}
