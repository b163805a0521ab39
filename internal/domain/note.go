package domain

// Note is a free-form note card. TS is a unix timestamp in milliseconds,
// matching the persisted document shape. New notes are prepended so the list
// reads newest first.
type Note struct {
	Title string `json:"title"`
	Tag   string `json:"tag"`
	Body  string `json:"body"`
	TS    int64  `json:"ts"`
}
