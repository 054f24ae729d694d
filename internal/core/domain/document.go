package domain

// Document is the plain persisted record shape shared by all entities.
// Timestamps are unix seconds; UpdatedAt stays nil until the first
// modification.
type Document struct {
	ID        string `json:"id" bson:"_id"`
	CreatedAt *int64 `json:"created_at" bson:"created_at"`
	UpdatedAt *int64 `json:"updated_at" bson:"updated_at"`
}

// AccountDocument is the persisted form of an Account.
type AccountDocument struct {
	Document `bson:",inline"`
	Email    string `json:"email" bson:"email"`
	Password string `json:"password" bson:"password"`
	Role     Role   `json:"role" bson:"role"`
}

// Entity is the behaviour every domain entity exposes to the persistence
// layer: a stable string identifier and synchronous self-validation.
type Entity interface {
	UID() string
	Validate() error
}
