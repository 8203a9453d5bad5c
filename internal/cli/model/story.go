package model

// Status описывает исход одной попытки генерации.
type Status string

const (
	StatusSuccess Status = "success"
	StatusFailed  Status = "failed"
)

// FailureKind уточняет причину неудачи, заполняется только при StatusFailed.
type FailureKind string

const (
	FailureGuardrailBlock FailureKind = "guardrail_block"
	FailureTimeout        FailureKind = "timeout"
	FailureTechnical      FailureKind = "technical_error"
)

// StoryParams — неизменяемые параметры генерации, сохраняются вместе с записью
// и используются для повтора и проверки доступности по возрастному рейтингу.
type StoryParams struct {
	Genre      string `json:"genre"`
	Character1 string `json:"character1"`
	Character2 string `json:"character2"`
	Keyword1   string `json:"keyword1"`
	Keyword2   string `json:"keyword2"`
	Keyword3   string `json:"keyword3"`
	AgeRating  string `json:"ageRating"`
}

// StoryRecord - one saved generation attempt (successful or failed).
// The JSON shape matches the persisted savedStories collection.
type StoryRecord struct {
	ID        string `json:"id"`
	Timestamp int64  `json:"timestamp"` // epoch milliseconds, creation time
	Content   string `json:"content"`

	Status      Status      `json:"status"`
	FailureKind FailureKind `json:"failureType,omitempty"`

	StoryParams

	// ProfileID is empty for records created without an active profile
	// (the global/unscoped context). ProfileName is a display snapshot
	// taken at creation time and is never re-derived.
	ProfileID   string `json:"profileId,omitempty"`
	ProfileName string `json:"profileName,omitempty"`
}

// Failed reports whether the record represents a failed attempt.
func (r StoryRecord) Failed() bool { return r.Status == StatusFailed }
