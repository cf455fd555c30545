package ports

// IDKind names the entity an identifier is generated for.
type IDKind string

const (
	IDKindQuestion IDKind = "question"
	IDKindSection  IDKind = "section"
	IDKindSession  IDKind = "session"
)

// IDGenerator hands out identifiers that are unique for the lifetime of a
// session. Implementations must be safe for concurrent use.
type IDGenerator interface {
	NewID(kind IDKind) string
}
