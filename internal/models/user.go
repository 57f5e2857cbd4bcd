package models

// User is a storefront account record. It is currently only exposed through
// the /schema viewer endpoint; no user endpoints exist.
type User struct {
	Name  string `json:"name" bson:"name"`
	Email string `json:"email" bson:"email"`
}
