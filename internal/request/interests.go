package request

import (
	"scoring-gateway/internal/field"
)

// ClientsInterestsRequest is the argument schema of the clients_interests
// method.
type ClientsInterestsRequest struct {
	clientIDs *field.Field
	date      *field.Field

	fields []*field.Field
}

// NewClientsInterestsRequest builds an empty interests schema.
func NewClientsInterestsRequest() *ClientsInterestsRequest {
	r := &ClientsInterestsRequest{
		clientIDs: field.ClientIDs("client_ids", true, false),
		date:      field.Date("date", false, true),
	}
	r.fields = []*field.Field{r.clientIDs, r.date}
	return r
}

// Populate assigns the declared fields from the argument map. An absent
// client_ids surfaces as a presence failure through the non-nullable field.
func (r *ClientsInterestsRequest) Populate(args map[string]any) error {
	for _, f := range r.fields {
		if err := f.Set(args[f.Name()]); err != nil {
			return err
		}
	}
	return nil
}

// ClientIDs returns the validated ids in request order, duplicates included.
func (r *ClientsInterestsRequest) ClientIDs() []int64 {
	items, ok := r.clientIDs.Get().([]any)
	if !ok {
		return nil
	}
	ids := make([]int64, 0, len(items))
	for _, item := range items {
		if n, ok := field.IntForm(item); ok {
			ids = append(ids, n)
		}
	}
	return ids
}

// Date returns the validated date string, or "" when absent.
func (r *ClientsInterestsRequest) Date() string { return stringValue(r.date) }
