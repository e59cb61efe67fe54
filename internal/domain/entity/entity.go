package entity

import "time"

// Birthday is one member's stored birth date plus notification bookkeeping.
// BirthDate holds DD-MM, or domain.PlaceholderDate when the member is
// registered but the date is not known yet.
type Birthday struct {
	MemberID   string     `json:"member_id" db:"member_id"`
	BirthDate  string     `json:"birth_date" db:"birth_date"`
	NotifiedAt *time.Time `json:"notified_at,omitempty" db:"notified_at"`
	CreatedAt  time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at" db:"updated_at"`
}

// HasKnownDate reports whether a real birth date has been set.
func (b *Birthday) HasKnownDate() bool {
	return b.BirthDate != "" && b.BirthDate != "00-00"
}

// Tribute is one colleague's celebratory message for a celebrant.
// SenderName is a snapshot taken at submission time, not a live reference.
type Tribute struct {
	ID          int64     `json:"id" db:"id"`
	CelebrantID string    `json:"celebrant_id" db:"celebrant_id"`
	SenderID    string    `json:"sender_id" db:"sender_id"`
	SenderName  string    `json:"sender_name" db:"sender_name"`
	Message     string    `json:"message" db:"message"`
	MediaURL    string    `json:"media_url,omitempty" db:"media_url"`
	SubmittedOn string    `json:"submitted_on" db:"submitted_on"`
	Delivered   bool      `json:"delivered" db:"delivered"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// Description is a short "what makes them great" blurb. It feeds the poem
// prompt and is also shown verbatim in the celebration thread.
type Description struct {
	ID          int64     `json:"id" db:"id"`
	CelebrantID string    `json:"celebrant_id" db:"celebrant_id"`
	SenderID    string    `json:"sender_id" db:"sender_id"`
	SenderName  string    `json:"sender_name" db:"sender_name"`
	Text        string    `json:"text" db:"text"`
	SubmittedOn string    `json:"submitted_on" db:"submitted_on"`
	Delivered   bool      `json:"delivered" db:"delivered"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}
