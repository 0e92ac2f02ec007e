package category

// Category is a node in the catalog's category tree. ParentID is nil
// for root categories. Cycle prevention is the backend's job; the
// gateway only navigates the tree.
type Category struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Slug     string `json:"slug"`
	ParentID *int64 `json:"parentId,omitempty"`
	Status   string `json:"status"`
	ImageURL string `json:"imageUrl,omitempty"`
}

const (
	StatusActive   = "ACTIVE"
	StatusInactive = "INACTIVE"
)
