package models

// ListFilter narrows and paginates feed requests. Nil fields are omitted from
// the outgoing query string entirely; they are never sent as empty or
// zero-valued parameters.
type ListFilter struct {
	Page     *int
	Limit    *int
	Category *string
	Search   *string
	Status   *string
}
