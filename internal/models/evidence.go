package models

type EvidenceKind string

const (
	EvidenceKindPhoneMessage  EvidenceKind = "phone_message"
	EvidenceKindSocialPost    EvidenceKind = "social_post"
	EvidenceKindSearchHistory EvidenceKind = "search_history"
	EvidenceKindPurchase      EvidenceKind = "purchase"
	EvidenceKindPoliceRecord  EvidenceKind = "police_record"
)

// Evidence is the common projection over the five evidence kinds so the
// aggregator can be written once. OwnerID is an associative person link, not
// ownership in the containment sense.
type Evidence interface {
	EvidenceID() string
	OwnerID() string
	Value() int64
	Kind() EvidenceKind
}

// PhoneMessage is an intercepted text message.
type PhoneMessage struct {
	ID            string `db:"id"`
	PersonID      string `db:"person_id"`
	Sender        string `db:"sender"`
	Recipient     string `db:"recipient"`
	Message       string `db:"message"`
	SentAt        string `db:"sent_at"`
	EvidenceValue int64  `db:"evidence_value"`
}

func (m PhoneMessage) EvidenceID() string { return m.ID }
func (m PhoneMessage) OwnerID() string    { return m.PersonID }
func (m PhoneMessage) Value() int64       { return m.EvidenceValue }
func (m PhoneMessage) Kind() EvidenceKind { return EvidenceKindPhoneMessage }

// SocialPost is a public social media post.
type SocialPost struct {
	ID            string `db:"id"`
	PersonID      string `db:"person_id"`
	Handle        string `db:"handle"`
	Content       string `db:"content"`
	PostedAt      string `db:"posted_at"`
	EvidenceValue int64  `db:"evidence_value"`
}

func (p SocialPost) EvidenceID() string { return p.ID }
func (p SocialPost) OwnerID() string    { return p.PersonID }
func (p SocialPost) Value() int64       { return p.EvidenceValue }
func (p SocialPost) Kind() EvidenceKind { return EvidenceKindSocialPost }

// SearchHistoryEntry is a browser search history entry.
type SearchHistoryEntry struct {
	ID            string `db:"id"`
	PersonID      string `db:"person_id"`
	Query         string `db:"query"`
	SearchedAt    string `db:"searched_at"`
	EvidenceValue int64  `db:"evidence_value"`
}

func (e SearchHistoryEntry) EvidenceID() string { return e.ID }
func (e SearchHistoryEntry) OwnerID() string    { return e.PersonID }
func (e SearchHistoryEntry) Value() int64       { return e.EvidenceValue }
func (e SearchHistoryEntry) Kind() EvidenceKind { return EvidenceKindSearchHistory }

// Purchase is a store purchase record.
type Purchase struct {
	ID            string `db:"id"`
	PersonID      string `db:"person_id"`
	Item          string `db:"item"`
	Store         string `db:"store"`
	PurchasedAt   string `db:"purchased_at"`
	EvidenceValue int64  `db:"evidence_value"`
}

func (p Purchase) EvidenceID() string { return p.ID }
func (p Purchase) OwnerID() string    { return p.PersonID }
func (p Purchase) Value() int64       { return p.EvidenceValue }
func (p Purchase) Kind() EvidenceKind { return EvidenceKindPurchase }

// PoliceRecord is a prior offense on file. Unlike the other kinds, a police
// record only counts as evidence against its own subject.
type PoliceRecord struct {
	ID            string `db:"id"`
	PersonID      string `db:"person_id"`
	CaseNumber    string `db:"case_number"`
	Offense       string `db:"offense"`
	RecordedAt    string `db:"recorded_at"`
	EvidenceValue int64  `db:"evidence_value"`
}

func (r PoliceRecord) EvidenceID() string { return r.ID }
func (r PoliceRecord) OwnerID() string    { return r.PersonID }
func (r PoliceRecord) Value() int64       { return r.EvidenceValue }
func (r PoliceRecord) Kind() EvidenceKind { return EvidenceKindPoliceRecord }
